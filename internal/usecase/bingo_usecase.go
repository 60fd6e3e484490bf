// Package usecase implements the group allocation and shared-board engine:
// packing users into capacity-bounded groups, generating boards, and
// mutating shared state through the store's transaction boundary.
package usecase

import (
	"context"
	"errors"
	"math/rand"
	"sort"
	"time"

	"github.com/defective-development/ehswellnessbingo/internal/domain"
	"github.com/defective-development/ehswellnessbingo/internal/repository"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrWrongPassword = errors.New("wrong password")
	ErrUserExists    = errors.New("user exists")
	ErrNoCapacity    = errors.New("no group capacity")
)

// buildings is the static building catalog.
var buildings = []string{
	"Edina High School",
	"South View Middle School",
	"Valley View Middle School",
	"Other",
}

type BingoUsecase struct {
	Store repository.Store
	rand  *rand.Rand
}

func NewBingoUsecase(s repository.Store) *BingoUsecase {
	return NewBingoUsecaseWithRand(s, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewBingoUsecaseWithRand injects the permutation source so tests can pin a
// seed and assert exact board content.
func NewBingoUsecaseWithRand(s repository.Store, r *rand.Rand) *BingoUsecase {
	return &BingoUsecase{Store: s, rand: r}
}

// LoginResult is the payload both login phases return.
type LoginResult struct {
	Board    []domain.Tile `json:"board"`
	Team     string        `json:"team"`
	Building string        `json:"building"`
	Bingos   int           `json:"bingos"`
}

// TeamScore is one scoreboard row.
type TeamScore struct {
	Team    string `json:"team"`
	Bingos  int    `json:"bingos"`
	Members int    `json:"members"`
}

// Login authenticates an existing user and returns their locked building,
// group and board, creating the board lazily if it does not exist yet.
// Unknown usernames return ErrNotFound so the caller can fall through to
// Register.
func (u *BingoUsecase) Login(ctx context.Context, username, password string) (LoginResult, error) {
	var res LoginResult
	err := u.Store.Update(ctx, func(s *domain.Snapshot) error {
		user, ok := s.Users[username]
		if !ok {
			return ErrNotFound
		}
		if user.Password != password {
			return ErrWrongPassword
		}
		board := u.ensureBoard(s, user.Building, user.Team)
		res = LoginResult{Board: board, Team: user.Team, Building: user.Building, Bingos: user.Bingos}
		return nil
	})
	return res, err
}

// Register creates a new user, assigns them to the first group instance
// with room, and creates that group's board if it is the first member.
func (u *BingoUsecase) Register(ctx context.Context, username, password, building, team string) (LoginResult, error) {
	var res LoginResult
	err := u.Store.Update(ctx, func(s *domain.Snapshot) error {
		if _, ok := s.Users[username]; ok {
			return ErrUserExists
		}
		group, err := AssignGroup(s.Users, building, team)
		if err != nil {
			return err
		}
		s.Users[username] = domain.User{Password: password, Building: building, Team: group}
		board := u.ensureBoard(s, building, group)
		res = LoginResult{Board: board, Team: group, Building: building}
		return nil
	})
	return res, err
}

// TeamBoard returns the board for a (building, group) key.
func (u *BingoUsecase) TeamBoard(ctx context.Context, building, team string) (domain.TeamBoard, error) {
	snap, err := u.Store.Load(ctx)
	if err != nil {
		return domain.TeamBoard{}, err
	}
	tb, ok := snap.TeamBoards[building][team]
	if !ok {
		return domain.TeamBoard{}, ErrNotFound
	}
	return tb, nil
}

// ToggleTile adds or removes the username in a tile's selectedBy set. Both
// directions are idempotent, and every successful call stamps the board's
// lastUpdated even when the set did not change.
func (u *BingoUsecase) ToggleTile(ctx context.Context, username, building, team string, row, col int, selected bool) (domain.Tile, error) {
	var out domain.Tile
	err := u.Store.Update(ctx, func(s *domain.Snapshot) error {
		tb, ok := s.TeamBoards[building][team]
		if !ok {
			return ErrNotFound
		}
		if row < 0 || row >= domain.GridSize || col < 0 || col >= domain.GridSize {
			return ErrNotFound
		}
		idx := row*domain.GridSize + col
		if idx >= len(tb.Board) {
			return ErrNotFound
		}
		tile := tb.Board[idx]
		if selected {
			if !containsUser(tile.SelectedBy, username) {
				tile.SelectedBy = append(tile.SelectedBy, username)
			}
		} else {
			tile.SelectedBy = removeUser(tile.SelectedBy, username)
		}
		tb.Board[idx] = tile
		tb.LastUpdated = time.Now().UTC()
		s.TeamBoards[building][team] = tb
		out = tile
		return nil
	})
	return out, err
}

// NewBoard regenerates the board for the user's building and the given
// group label. The username must exist.
func (u *BingoUsecase) NewBoard(ctx context.Context, username, team string) ([]domain.Tile, error) {
	var out []domain.Tile
	err := u.Store.Update(ctx, func(s *domain.Snapshot) error {
		user, ok := s.Users[username]
		if !ok {
			return ErrNotFound
		}
		if s.TeamBoards[user.Building] == nil {
			s.TeamBoards[user.Building] = map[string]domain.TeamBoard{}
		}
		tb := domain.TeamBoard{
			Board:       u.generateBoard(s.Prompts, team),
			LastUpdated: time.Now().UTC(),
		}
		s.TeamBoards[user.Building][team] = tb
		out = tb.Board
		return nil
	})
	return out, err
}

// UpdateBingos increments the bingo count of every user in the exact
// (building, group) pair.
func (u *BingoUsecase) UpdateBingos(ctx context.Context, building, team string) error {
	return u.Store.Update(ctx, func(s *domain.Snapshot) error {
		for name, user := range s.Users {
			if user.Building == building && user.Team == team {
				user.Bingos++
				s.Users[name] = user
			}
		}
		return nil
	})
}

// Scoreboard folds the building's users by group label, summing bingos and
// counting members. Rows sort by bingos descending, then team name
// ascending so equal scores have a stable order.
func (u *BingoUsecase) Scoreboard(ctx context.Context, building string) ([]TeamScore, error) {
	snap, err := u.Store.Load(ctx)
	if err != nil {
		return nil, err
	}
	byTeam := map[string]*TeamScore{}
	for _, user := range snap.Users {
		if user.Building != building {
			continue
		}
		score, ok := byTeam[user.Team]
		if !ok {
			score = &TeamScore{Team: user.Team}
			byTeam[user.Team] = score
		}
		score.Bingos += user.Bingos
		score.Members++
	}
	rankings := make([]TeamScore, 0, len(byTeam))
	for _, score := range byTeam {
		rankings = append(rankings, *score)
	}
	sort.Slice(rankings, func(i, j int) bool {
		if rankings[i].Bingos != rankings[j].Bingos {
			return rankings[i].Bingos > rankings[j].Bingos
		}
		return rankings[i].Team < rankings[j].Team
	})
	return rankings, nil
}

// Teams lists the team catalog, sorted by name.
func (u *BingoUsecase) Teams(ctx context.Context) ([]string, error) {
	snap, err := u.Store.Load(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(snap.Teams))
	for name := range snap.Teams {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Buildings lists the static building catalog.
func (u *BingoUsecase) Buildings() []string {
	out := make([]string, len(buildings))
	copy(out, buildings)
	return out
}

func containsUser(names []string, username string) bool {
	for _, n := range names {
		if n == username {
			return true
		}
	}
	return false
}

func removeUser(names []string, username string) []string {
	out := names[:0]
	for _, n := range names {
		if n != username {
			out = append(out, n)
		}
	}
	return out
}
