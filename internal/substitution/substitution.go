// Package substitution decides which exercises to flag for a swap and what to
// offer instead.
package substitution

import (
	"regexp"
	"strings"

	"github.com/meltforce/nextblock/internal/models"
)

// Risk patterns per injury flag, matched against the exercise name.
var (
	kneeRiskRe     = regexp.MustCompile(`(?i)squat|lunge|step|split`)
	backRiskRe     = regexp.MustCompile(`(?i)deadlift|good ?morning|barbell row|back squat`)
	shoulderRiskRe = regexp.MustCompile(`(?i)press|overhead|ohp|snatch`)
)

// ShouldFlag reports whether an exercise should be offered a swap: its name
// contains a disliked term, or it loads a region the injury flags protect.
func ShouldFlag(e models.ExerciseEntry, disliked []string, flags models.InjuryFlags) bool {
	return IsDisliked(e.Name, disliked) || IsRisky(e.Name, flags)
}

// IsDisliked reports whether the lower-cased name contains any disliked term.
func IsDisliked(name string, disliked []string) bool {
	lower := strings.ToLower(name)
	for _, term := range disliked {
		term = strings.ToLower(term)
		if term != "" && strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// IsRisky reports whether the name matches the risk pattern of a set flag.
func IsRisky(name string, flags models.InjuryFlags) bool {
	return (flags.AvoidKnee && kneeRiskRe.MatchString(name)) ||
		(flags.AvoidBack && backRiskRe.MatchString(name)) ||
		(flags.AvoidShoulder && shoulderRiskRe.MatchString(name))
}

// alternative maps a lift keyword to close variations.
type alternative struct {
	keyword string
	options []string
}

// alternatives is searched in order; the first keyword contained in the name
// wins, so "back squat" must stay ahead of "squat".
var alternatives = []alternative{
	{"back squat", []string{"front squat", "goblet squat", "hack squat (machine)"}},
	{"squat", []string{"front squat", "goblet squat", "leg press"}},
	{"deadlift", []string{"trap bar deadlift", "RDL", "semi-sumo deadlift"}},
	{"bench", []string{"DB bench", "incline DB press", "machine chest press"}},
	{"overhead press", []string{"DB shoulder press", "seated machine press"}},
	{"lunge", []string{"split squat", "reverse lunge", "leg press single-leg"}},
	{"row", []string{"chest-supported row", "seated cable row", "single-arm DB row"}},
}

// SuggestAlternatives returns swap options for an exercise. Names that match
// no known lift get three generic suggestions.
func SuggestAlternatives(name string) []string {
	lower := strings.ToLower(name)
	for _, alt := range alternatives {
		if strings.Contains(lower, alt.keyword) {
			return append([]string(nil), alt.options...)
		}
	}
	return []string{"variation of " + name, "machine alternative", "unilateral version"}
}
