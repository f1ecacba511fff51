package parser

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/meltforce/nextblock/internal/models"
)

// ParseExerciseLine reads one exercise line of the form
//
//	<name> [<sets>x<reps>] [@ RPE <n>] [<n> kg]
//
// Every trailing token is optional but they must appear in that order at the
// end of the line. A fragment that does not form a complete token stays part
// of the name. ok is false when nothing is left for the name.
func ParseExerciseLine(line string) (entry models.ExerciseEntry, ok bool) {
	line = strings.TrimSpace(line)
	rest := line

	if r, load, found := cutLoad(rest); found {
		rest = r
		entry.Load = models.FloatPtr(load)
	}
	if r, rpe, found := cutRPE(rest); found {
		rest = r
		entry.RPE = models.FloatPtr(rpe)
	}
	if r, sets, reps, found := cutSetsReps(rest); found {
		rest = r
		entry.Sets = models.IntPtr(sets)
		entry.Reps = models.IntPtr(reps)
	}

	entry.Name = strings.TrimSpace(rest)
	if entry.Name == "" {
		return models.ExerciseEntry{}, false
	}
	entry.Raw = line
	return entry, true
}

// cutLoad removes a trailing "<n> kg" token: whitespace, a decimal, optional
// whitespace, then "kg".
func cutLoad(s string) (rest string, load float64, ok bool) {
	body, found := cutSuffixFold(s, "kg")
	if !found {
		return s, 0, false
	}
	body = trimRightSpace(body)
	before, num := splitTrailing(body, isDecimalByte)
	if num == "" || !endsWithSpace(before) {
		return s, 0, false
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return s, 0, false
	}
	return trimRightSpace(before), v, true
}

// cutRPE removes a trailing "@ RPE <n>" token. Whitespace around "@" and
// before the number is optional.
func cutRPE(s string) (rest string, rpe float64, ok bool) {
	before, num := splitTrailing(s, isDecimalByte)
	if num == "" {
		return s, 0, false
	}
	body, found := cutSuffixFold(trimRightSpace(before), "rpe")
	if !found {
		return s, 0, false
	}
	body, found = strings.CutSuffix(trimRightSpace(body), "@")
	if !found {
		return s, 0, false
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return s, 0, false
	}
	return trimRightSpace(body), v, true
}

// cutSetsReps removes a trailing "<sets>x<reps>" token, which must be preceded
// by whitespace.
func cutSetsReps(s string) (rest string, sets, reps int, ok bool) {
	before, repsStr := splitTrailing(s, isDigitByte)
	if repsStr == "" || before == "" {
		return s, 0, 0, false
	}
	if x := before[len(before)-1]; x != 'x' && x != 'X' {
		return s, 0, 0, false
	}
	before, setsStr := splitTrailing(before[:len(before)-1], isDigitByte)
	if setsStr == "" || !endsWithSpace(before) {
		return s, 0, 0, false
	}
	sets, err := strconv.Atoi(setsStr)
	if err != nil {
		return s, 0, 0, false
	}
	reps, err = strconv.Atoi(repsStr)
	if err != nil {
		return s, 0, 0, false
	}
	return trimRightSpace(before), sets, reps, true
}

// splitTrailing splits s before the longest suffix whose bytes all satisfy keep.
func splitTrailing(s string, keep func(byte) bool) (before, suffix string) {
	i := len(s)
	for i > 0 && keep(s[i-1]) {
		i--
	}
	return s[:i], s[i:]
}

// cutSuffixFold is strings.CutSuffix with ASCII case folding.
func cutSuffixFold(s, suffix string) (string, bool) {
	if len(s) < len(suffix) || !strings.EqualFold(s[len(s)-len(suffix):], suffix) {
		return s, false
	}
	return s[:len(s)-len(suffix)], true
}

func endsWithSpace(s string) bool {
	r, size := utf8.DecodeLastRuneInString(s)
	return size > 0 && unicode.IsSpace(r)
}

func trimRightSpace(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

func isDigitByte(c byte) bool { return c >= '0' && c <= '9' }

func isDecimalByte(c byte) bool { return isDigitByte(c) || c == '.' }
