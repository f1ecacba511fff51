// Package render turns a progressed block back into coach-facing text.
package render

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/meltforce/nextblock/internal/models"
)

// Document is everything that goes into one rendered block.
type Document struct {
	Client     string   `json:"client,omitempty"`
	Style      string   `json:"style"`
	Days       []Day    `json:"days"`
	Notes      string   `json:"notes,omitempty"`
	Guidelines []string `json:"guidelines"`
}

// Day is a titled list of rendered exercise lines.
type Day struct {
	Title string `json:"title"`
	Lines []Line `json:"lines"`
}

// Line is one exercise with its swap advice. Alternatives are only printed
// when Flagged is set.
type Line struct {
	Entry        models.ExerciseEntry `json:"entry"`
	Flagged      bool                 `json:"flagged"`
	Alternatives []string             `json:"alternatives,omitempty"`
}

// FormatEntry renders an entry in the same grammar the parser reads, e.g.
// "Back Squat 4x6 @ RPE7.5 105kg".
func FormatEntry(e models.ExerciseEntry) string {
	parts := []string{e.Name}
	if e.Sets != nil && e.Reps != nil {
		parts = append(parts, strconv.Itoa(*e.Sets)+"x"+strconv.Itoa(*e.Reps))
	}
	if e.RPE != nil {
		parts = append(parts, "@ RPE"+formatRPE(*e.RPE))
	}
	if e.Load != nil && !math.IsInf(*e.Load, 0) && !math.IsNaN(*e.Load) {
		parts = append(parts, strconv.FormatFloat(*e.Load, 'f', -1, 64)+"kg")
	}
	return strings.Join(parts, " ")
}

// formatRPE prints one decimal and drops a trailing ".0": 7 -> "7", 7.5 -> "7.5".
func formatRPE(v float64) string {
	s := strconv.FormatFloat(math.Round(v*10)/10, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}

// FormatLine renders one bullet line, with the swap suggestion when flagged.
func FormatLine(l Line) string {
	s := "• " + FormatEntry(l.Entry)
	if l.Flagged {
		s += "  → consider swap: " + strings.Join(l.Alternatives, " / ")
	}
	return s
}

// RenderBlock lays out the full document: header, one section per day, coach
// notes and guidelines.
func RenderBlock(doc Document) string {
	var out []string
	if client := strings.TrimSpace(doc.Client); client != "" {
		out = append(out, "Client: "+client)
	}
	out = append(out, "Style: "+doc.Style, "")

	for _, day := range doc.Days {
		out = append(out, day.Title)
		for _, l := range day.Lines {
			out = append(out, FormatLine(l))
		}
		out = append(out, "")
	}

	if notes := strings.TrimSpace(doc.Notes); notes != "" {
		out = append(out, "Coach notes:", notes, "")
	}

	out = append(out, "Guidelines:")
	out = append(out, doc.Guidelines...)
	return strings.Join(out, "\n")
}

// Guideline lines, included when their condition holds.
const (
	GuidelineEasy     = "- Last block felt easy → progress volume/load more aggressively this week."
	GuidelineHard     = "- Last block felt hard → hold volume or reduce load; prioritise form and consistency."
	GuidelineLoved    = "- Keep favourite lifts where possible."
	GuidelineDisliked = "- Swap disliked lifts for close variations."
	GuidelineInjury   = "- Respect current niggles: adjust ROM, tempo, or swap as noted."
)

// Guidelines picks the guideline lines for the client's feedback. Any injury
// text at all adds the injury reminder.
func Guidelines(d models.Difficulty, e models.Enjoyment, injuries string) []string {
	var lines []string
	switch d {
	case models.DifficultyEasy:
		lines = append(lines, GuidelineEasy)
	case models.DifficultyHard:
		lines = append(lines, GuidelineHard)
	}
	switch e {
	case models.EnjoymentLoved:
		lines = append(lines, GuidelineLoved)
	case models.EnjoymentDisliked:
		lines = append(lines, GuidelineDisliked)
	}
	if injuries != "" {
		lines = append(lines, GuidelineInjury)
	}
	return lines
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// Filename returns the download name for a client's block:
// "Sarah K." -> "Sarah_K._next_block.txt", "" -> "next_block.txt". The client
// is trimmed the same way RenderBlock trims it for the header.
func Filename(client string) string {
	client = strings.TrimSpace(client)
	if client == "" {
		return "next_block.txt"
	}
	return whitespaceRe.ReplaceAllString(client, "_") + "_next_block.txt"
}
