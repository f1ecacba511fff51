// Package generator runs one "generate next block" pass: pick the source
// text, parse it, progress and screen every exercise, and render the result.
package generator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/meltforce/nextblock/internal/catalog"
	"github.com/meltforce/nextblock/internal/models"
	"github.com/meltforce/nextblock/internal/parser"
	"github.com/meltforce/nextblock/internal/progression"
	"github.com/meltforce/nextblock/internal/render"
	"github.com/meltforce/nextblock/internal/substitution"
)

// Request holds the builder form's fields as the coach typed them.
type Request struct {
	Client        string `json:"client"`
	Style         string `json:"style"`
	Mode          string `json:"mode"`
	PreviousBlock string `json:"previous_block"`
	Difficulty    string `json:"difficulty"`
	Enjoyment     string `json:"enjoyment"`
	Disliked      string `json:"disliked"`
	Injuries      string `json:"injuries"`
	Notes         string `json:"notes"`
}

// Result is one generated block.
type Result struct {
	ID           uuid.UUID          `json:"id"`
	Style        string             `json:"style"`
	Source       string             `json:"source"`
	UsedTemplate bool               `json:"used_template"`
	Difficulty   models.Difficulty  `json:"difficulty"`
	Enjoyment    models.Enjoyment   `json:"enjoyment"`
	InjuryFlags  models.InjuryFlags `json:"injury_flags"`
	Days         []render.Day       `json:"days"`
	Guidelines   []string           `json:"guidelines"`
	Exercises    int                `json:"exercises"`
	Flagged      int                `json:"flagged"`
	Text         string             `json:"text"`
	Filename     string             `json:"filename"`
}

// Generator produces next blocks. It is safe for concurrent use as long as
// its catalog source is.
type Generator struct {
	catalog catalog.Source
	log     *slog.Logger
}

// New creates a Generator that seeds template-mode requests from src.
func New(src catalog.Source, log *slog.Logger) *Generator {
	return &Generator{catalog: src, log: log}
}

// Catalog returns the generator's current template catalog.
func (g *Generator) Catalog(ctx context.Context) (*catalog.Catalog, error) {
	return g.catalog.Catalog(ctx)
}

// Generate runs a full pass for req. A blank style means catalog.DefaultStyle.
// It fails only when a template is needed and the catalog cannot be loaded or
// lacks the style (catalog.ErrUnknownStyle); unreadable lines are dropped and
// an empty source still renders the header and guidelines.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	style := strings.TrimSpace(req.Style)
	if style == "" {
		style = catalog.DefaultStyle
	}

	source := req.PreviousBlock
	usedTemplate := false
	if models.ParseMode(req.Mode) == models.ModeTemplate && strings.TrimSpace(source) == "" {
		c, err := g.catalog.Catalog(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading catalog: %w", err)
		}
		tpl, ok := c.Template(style)
		if !ok {
			return nil, fmt.Errorf("%w: %q", catalog.ErrUnknownStyle, style)
		}
		source = tpl.Text
		usedTemplate = true
	}

	difficulty := models.ParseDifficulty(req.Difficulty)
	enjoyment := models.ParseEnjoyment(req.Enjoyment)
	flags := substitution.InjuryFlagsFromNotes(req.Injuries)
	disliked := substitution.ParseDisliked(req.Disliked)

	block := parser.Parse(source)
	days := Plan(block, difficulty, disliked, flags)
	guidelines := render.Guidelines(difficulty, enjoyment, req.Injuries)

	res := &Result{
		ID:           uuid.New(),
		Style:        style,
		Source:       source,
		UsedTemplate: usedTemplate,
		Difficulty:   difficulty,
		Enjoyment:    enjoyment,
		InjuryFlags:  flags,
		Days:         days,
		Guidelines:   guidelines,
		Exercises:    block.ExerciseCount(),
		Filename:     render.Filename(req.Client),
	}
	for _, d := range days {
		for _, l := range d.Lines {
			if l.Flagged {
				res.Flagged++
			}
		}
	}
	res.Text = render.RenderBlock(render.Document{
		Client:     req.Client,
		Style:      style,
		Days:       days,
		Notes:      req.Notes,
		Guidelines: guidelines,
	})

	g.log.Info("block generated",
		"id", res.ID,
		"style", style,
		"template", usedTemplate,
		"difficulty", difficulty,
		"days", len(days),
		"exercises", res.Exercises,
		"flagged", res.Flagged,
	)
	return res, nil
}

// Plan progresses every entry of b and screens it for a swap. Screening looks
// at the exercise as it was written in the previous block.
func Plan(b models.Block, d models.Difficulty, disliked []string, flags models.InjuryFlags) []render.Day {
	days := make([]render.Day, 0, len(b.Days))
	for _, day := range b.Days {
		rd := render.Day{Title: day.Title, Lines: make([]render.Line, 0, len(day.Items))}
		for _, it := range day.Items {
			line := render.Line{Entry: progression.Progress(it, d)}
			if substitution.ShouldFlag(it, disliked, flags) {
				line.Flagged = true
				line.Alternatives = substitution.SuggestAlternatives(it.Name)
			}
			rd.Lines = append(rd.Lines, line)
		}
		days = append(days, rd)
	}
	return days
}
