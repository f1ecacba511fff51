// Package progression computes the next block's prescription for a single
// exercise from how hard the client found the last one.
package progression

import (
	"math"

	"github.com/meltforce/nextblock/internal/models"
)

const (
	DefaultSets = 3
	DefaultReps = 6

	MinSets = 2
	MaxSets = 6
	MinReps = 3
	MaxReps = 12

	// RPE targets move in half steps and stay inside this band.
	rpeStep    = 0.5
	MaxRPEEasy = 9.0
	MinRPEHard = 6.0
)

// Load multipliers per difficulty.
const (
	easyLoadFactor      = 1.05
	hardLoadFactor      = 0.95
	justRightLoadFactor = 1.02
)

// Progress returns the next prescription for e. Exactly one of load, reps or
// sets moves per call: load when it is known, otherwise reps and then sets
// within their bounds. Missing sets and reps are filled with the defaults.
// The input entry is not modified.
func Progress(e models.ExerciseEntry, d models.Difficulty) models.ExerciseEntry {
	next := e.Clone()
	if next.Sets == nil {
		next.Sets = models.IntPtr(DefaultSets)
	}
	if next.Reps == nil {
		next.Reps = models.IntPtr(DefaultReps)
	}

	switch d {
	case models.DifficultyEasy:
		switch {
		case hasLoad(next):
			*next.Load = Round1(*next.Load * easyLoadFactor)
		case *next.Reps < MaxReps:
			*next.Reps++
		case *next.Sets < MaxSets:
			*next.Sets++
		}
		if next.RPE != nil {
			*next.RPE = math.Min(MaxRPEEasy, *next.RPE+rpeStep)
		}
	case models.DifficultyHard:
		switch {
		case hasLoad(next):
			*next.Load = Round1(*next.Load * hardLoadFactor)
		case *next.Sets > MinSets:
			*next.Sets--
		}
		if next.RPE != nil {
			*next.RPE = math.Max(MinRPEHard, *next.RPE-rpeStep)
		}
	default:
		if hasLoad(next) {
			*next.Load = Round1(*next.Load * justRightLoadFactor)
		}
	}
	return next
}

// Round1 rounds x to one decimal place, halves away from zero.
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func hasLoad(e models.ExerciseEntry) bool {
	return e.Load != nil && !math.IsInf(*e.Load, 0) && !math.IsNaN(*e.Load)
}
