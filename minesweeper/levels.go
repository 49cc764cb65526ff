package minesweeper

import (
	"fmt"
)

// Level is one of the three fixed board difficulties.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelExpert       Level = "expert"
)

// Levels lists all difficulties in display order.
var Levels = []Level{LevelBeginner, LevelIntermediate, LevelExpert}

// Board describes the fixed grid configuration for a level.
type Board struct {
	Rows  int `json:"rows"`
	Cols  int `json:"cols"`
	Mines int `json:"mines"`
}

// Boards maps each level to its board configuration.
var Boards = map[Level]Board{
	LevelBeginner:     {Rows: 9, Cols: 9, Mines: 10},
	LevelIntermediate: {Rows: 16, Cols: 16, Mines: 40},
	LevelExpert:       {Rows: 16, Cols: 30, Mines: 99},
}

// ParseLevel validates a level string from a client submission.
func ParseLevel(s string) (Level, error) {
	switch Level(s) {
	case LevelBeginner, LevelIntermediate, LevelExpert:
		return Level(s), nil
	}
	return "", fmt.Errorf("unknown minesweeper level %q", s)
}
