package models

import "strings"

// Difficulty is how the client rated the previous block.
type Difficulty string

const (
	DifficultyEasy      Difficulty = "easy"
	DifficultyJustRight Difficulty = "just-right"
	DifficultyHard      Difficulty = "hard"
)

// ParseDifficulty maps a form value to a Difficulty. Anything that is not easy
// or hard counts as just-right.
func ParseDifficulty(raw string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "easy":
		return DifficultyEasy
	case "hard":
		return DifficultyHard
	default:
		return DifficultyJustRight
	}
}

// Enjoyment is how much the client liked the previous block.
type Enjoyment string

const (
	EnjoymentLoved    Enjoyment = "loved"
	EnjoymentNeutral  Enjoyment = "neutral"
	EnjoymentDisliked Enjoyment = "disliked"
)

// ParseEnjoyment maps a form value to an Enjoyment, defaulting to neutral.
func ParseEnjoyment(raw string) Enjoyment {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "loved":
		return EnjoymentLoved
	case "disliked":
		return EnjoymentDisliked
	default:
		return EnjoymentNeutral
	}
}

// Mode selects where the source text comes from.
type Mode string

const (
	// ModeTemplate seeds from the style template when no previous block is given.
	ModeTemplate Mode = "template"
	// ModeProgress only ever uses the supplied previous block.
	ModeProgress Mode = "progress"
)

// ParseMode maps a form value to a Mode, defaulting to template.
func ParseMode(raw string) Mode {
	if strings.EqualFold(strings.TrimSpace(raw), string(ModeProgress)) {
		return ModeProgress
	}
	return ModeTemplate
}
