package domain

import "time"

const (
	// BoardSize is the number of tiles on every board.
	BoardSize = 25
	// GridSize is the side length of the board grid.
	GridSize = 5
	// FreeIndex is the center cell, always the single free tile.
	FreeIndex = 12
)

// Tile is one board cell. SelectedBy holds the usernames that have marked
// the cell; it is never nil and carries no duplicates.
type Tile struct {
	Text       string   `json:"text"`
	IsFree     bool     `json:"isFree"`
	SelectedBy []string `json:"selectedBy"`
}

// TeamBoard is the shared board for one (building, group) pair.
type TeamBoard struct {
	Board       []Tile    `json:"board"`
	LastUpdated time.Time `json:"lastUpdated"`
}
