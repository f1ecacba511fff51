package parser

import (
	"regexp"
	"strings"

	"github.com/meltforce/nextblock/internal/models"
)

// defaultDayTitle names the day opened for exercises that appear before any header.
const defaultDayTitle = "Day 1"

// dayHeaderRe matches: "Day 1 – Lower", "day2", "DAY 3"
var dayHeaderRe = regexp.MustCompile(`(?i)^day\s*\d+`)

// dashChars are the separators that, together with the word "day", also mark a
// header: "Lower Body - Day A", "Push — day".
const dashChars = "-–—"

// IsDayHeader reports whether a trimmed line opens a new day.
func IsDayHeader(line string) bool {
	if dayHeaderRe.MatchString(line) {
		return true
	}
	return strings.ContainsAny(line, dashChars) && strings.Contains(strings.ToLower(line), "day")
}

// Parse turns free-form block text into days of exercise entries. It never
// fails: lines it cannot read as an exercise are skipped.
func Parse(text string) models.Block {
	var b builder
	for _, line := range strings.Split(text, "\n") {
		b.add(line)
	}
	return b.block()
}

// builder accumulates days line by line.
type builder struct {
	days []models.Day
}

func (b *builder) add(raw string) {
	line := strings.TrimSpace(raw)

	// Blank lines separate days visually but carry no meaning
	if line == "" {
		return
	}

	if IsDayHeader(line) {
		b.days = append(b.days, models.Day{Title: line})
		return
	}

	if len(b.days) == 0 {
		b.days = append(b.days, models.Day{Title: defaultDayTitle})
	}

	entry, ok := ParseExerciseLine(line)
	if !ok {
		return
	}
	cur := &b.days[len(b.days)-1]
	cur.Items = append(cur.Items, entry)
}

func (b *builder) block() models.Block {
	return models.Block{Days: b.days}
}
