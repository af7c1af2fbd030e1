package config

import (
	"fmt"
	"strings"
)

// Difficulty names a board preset.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyExpert       Difficulty = "expert"
	DifficultyCustom       Difficulty = "custom"
)

// Difficulties returns the built-in difficulties in menu order.
func Difficulties() []Difficulty {
	return []Difficulty{
		DifficultyBeginner,
		DifficultyIntermediate,
		DifficultyExpert,
		DifficultyCustom,
	}
}

// ParseDifficulty accepts a difficulty name, case-insensitively, plus the
// short forms b, i, e and c.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "beginner", "b", "easy":
		return DifficultyBeginner, nil
	case "intermediate", "i", "normal":
		return DifficultyIntermediate, nil
	case "expert", "e", "hard":
		return DifficultyExpert, nil
	case "custom", "c":
		return DifficultyCustom, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownPreset, s)
	}
}
