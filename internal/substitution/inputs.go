package substitution

import (
	"regexp"
	"strings"

	"github.com/meltforce/nextblock/internal/models"
)

var (
	kneeNoteRe     = regexp.MustCompile(`(?i)knee|patella|itb|quad`)
	backNoteRe     = regexp.MustCompile(`(?i)back|disc|spine|lumbar`)
	shoulderNoteRe = regexp.MustCompile(`(?i)shoulder|rotator|ac joint`)

	dislikedSepRe = regexp.MustCompile(`[,\n]+`)
)

// InjuryFlagsFromNotes derives injury flags from a free-text injury note by
// keyword.
func InjuryFlagsFromNotes(notes string) models.InjuryFlags {
	return models.InjuryFlags{
		AvoidKnee:     kneeNoteRe.MatchString(notes),
		AvoidBack:     backNoteRe.MatchString(notes),
		AvoidShoulder: shoulderNoteRe.MatchString(notes),
	}
}

// ParseDisliked splits a comma or newline separated list of disliked
// exercises into lower-cased, trimmed, non-empty terms.
func ParseDisliked(text string) []string {
	var terms []string
	for _, part := range dislikedSepRe.Split(strings.ToLower(text), -1) {
		if part = strings.TrimSpace(part); part != "" {
			terms = append(terms, part)
		}
	}
	return terms
}
