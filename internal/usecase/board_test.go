package usecase

import (
	"math/rand"
	"testing"

	"github.com/defective-development/ehswellnessbingo/internal/domain"
	"github.com/defective-development/ehswellnessbingo/internal/repository"
)

func TestGenerateBoard_ShapeAndFreeCenter(t *testing.T) {
	u, _ := newTestUsecase()
	prompts := repository.DefaultSnapshot().Prompts

	board := u.generateBoard(prompts, "Math Department")
	if len(board) != domain.BoardSize {
		t.Fatalf("expected %d tiles, got %d", domain.BoardSize, len(board))
	}
	for i, tile := range board {
		if i == domain.FreeIndex {
			if !tile.IsFree || tile.Text != "FREE" {
				t.Fatalf("center tile not free: %+v", tile)
			}
			continue
		}
		if tile.IsFree {
			t.Fatalf("tile %d marked free", i)
		}
		if tile.SelectedBy == nil || len(tile.SelectedBy) != 0 {
			t.Fatalf("tile %d: expected empty non-nil selectedBy, got %v", i, tile.SelectedBy)
		}
	}
}

func TestGenerateBoard_SameSeedSameBoard(t *testing.T) {
	store := newMemStore()
	prompts := repository.DefaultSnapshot().Prompts

	a := NewBingoUsecaseWithRand(store, rand.New(rand.NewSource(42))).generateBoard(prompts, "Art Department")
	b := NewBingoUsecaseWithRand(store, rand.New(rand.NewSource(42))).generateBoard(prompts, "Art Department")
	for i := range a {
		if a[i].Text != b[i].Text {
			t.Fatalf("seeded boards diverge at tile %d: %q vs %q", i, a[i].Text, b[i].Text)
		}
	}
}

func TestGenerateBoard_ContentVariesPerCall(t *testing.T) {
	u, _ := newTestUsecase()
	prompts := repository.DefaultSnapshot().Prompts

	a := u.generateBoard(prompts, "Art Department")
	b := u.generateBoard(prompts, "Art Department")
	same := true
	for i := range a {
		if a[i].Text != b[i].Text {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("two generations produced identical content")
	}
}

func TestGenerateBoard_PadsShortPool(t *testing.T) {
	u, _ := newTestUsecase()
	prompts := map[string][]string{
		"Tiny Team": {"one", "two", "three"},
	}

	board := u.generateBoard(prompts, "Tiny Team")
	placeholders := 0
	for i, tile := range board {
		if i == domain.FreeIndex {
			continue
		}
		if tile.Text == placeholderText {
			placeholders++
		}
	}
	// 24 non-free tiles, 3 real prompts.
	if placeholders != 21 {
		t.Fatalf("expected 21 placeholder tiles, got %d", placeholders)
	}
}

func TestGenerateBoard_UnknownTeamUsesGenericOnly(t *testing.T) {
	u, _ := newTestUsecase()
	prompts := repository.DefaultSnapshot().Prompts
	generic := map[string]bool{}
	for _, p := range prompts[domain.GenericPool] {
		generic[p] = true
	}

	board := u.generateBoard(prompts, "No Such Department")
	for i, tile := range board {
		if i == domain.FreeIndex {
			continue
		}
		if !generic[tile.Text] && tile.Text != placeholderText {
			t.Fatalf("tile %d carries non-generic prompt %q", i, tile.Text)
		}
	}
}
