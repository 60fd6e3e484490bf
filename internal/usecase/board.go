package usecase

import (
	"time"

	"github.com/defective-development/ehswellnessbingo/internal/domain"
)

const (
	freeTileText    = "FREE"
	placeholderText = "Generic activity"
)

// generateBoard builds a fresh 25-tile board from the team's prompt pool
// followed by the generic pool. The pool is shuffled with an unbiased
// permutation, the center cell is always the free tile, and pools shorter
// than the board are padded with a placeholder. Content is randomized per
// call; only the shape is deterministic.
func (u *BingoUsecase) generateBoard(prompts map[string][]string, team string) []domain.Tile {
	teamPool := prompts[team]
	generic := prompts[domain.GenericPool]
	pool := make([]string, 0, len(teamPool)+len(generic))
	pool = append(pool, teamPool...)
	pool = append(pool, generic...)
	u.rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	board := make([]domain.Tile, domain.BoardSize)
	for i := range board {
		if i == domain.FreeIndex {
			board[i] = domain.Tile{Text: freeTileText, IsFree: true, SelectedBy: []string{}}
			continue
		}
		text := placeholderText
		if i < len(pool) {
			text = pool[i]
		}
		board[i] = domain.Tile{Text: text, SelectedBy: []string{}}
	}
	return board
}

// ensureBoard lazily creates the board for a (building, group) pair,
// creating it at most once per key.
func (u *BingoUsecase) ensureBoard(s *domain.Snapshot, building, group string) []domain.Tile {
	if s.TeamBoards[building] == nil {
		s.TeamBoards[building] = map[string]domain.TeamBoard{}
	}
	tb, ok := s.TeamBoards[building][group]
	if !ok {
		tb = domain.TeamBoard{
			Board:       u.generateBoard(s.Prompts, group),
			LastUpdated: time.Now().UTC(),
		}
		s.TeamBoards[building][group] = tb
	}
	return tb.Board
}
