package cards

import (
	"fmt"
	"strings"

	"github.com/csheth/ideascout/internal/ideas"
)

// Input is the form context shown on every card.
type Input struct {
	Industry        string
	TechnologyFocus string
}

// Section is one labelled block of a card.
type Section struct {
	Key      string
	Title    string
	Body     string
	Fallback bool
}

// Card is the display form of one idea.
type Card struct {
	Index        int
	Title        string
	Subtitle     string
	Badge        string
	Tagline      Section
	Sections     []Section
	Affordances  []string
	NamedByModel bool
}

// Badge and footer labels shared by every card.
const (
	GeneratedBadge = "AI Generated"
	SaveLabel      = "Save Idea"
	ExportLabel    = "Export"
)

type sectionSpec struct {
	key      string
	title    string
	fallback string
}

var taglineSpec = sectionSpec{ideas.FieldTagline, "Tagline", "No tagline available"}

var sectionSpecs = []sectionSpec{
	{ideas.FieldProblem, "Problem", "No problem description available"},
	{ideas.FieldSolution, "Solution", "No solution description available"},
	{ideas.FieldUniqueValueProposition, "Unique Value Proposition", "No unique value proposition available"},
	{ideas.FieldTargetMarket, "Target Market", "No target market information available"},
	{ideas.FieldBusinessModel, "Business Model", "No business model information available"},
}

// Build maps ideas to cards in response order. Missing fields are replaced by
// per-section fallback text; no section is ever dropped.
func Build(input Input, list []ideas.Idea) []Card {
	subtitle := fmt.Sprintf("%s × %s", strings.TrimSpace(input.Industry), strings.TrimSpace(input.TechnologyFocus))
	out := make([]Card, 0, len(list))
	for idx, idea := range list {
		title, named := idea.Field(ideas.FieldName)
		if !named {
			title = fmt.Sprintf("Startup Idea %d", idx+1)
		}
		card := Card{
			Index:        idx,
			Title:        strings.TrimSpace(title),
			Subtitle:     subtitle,
			Badge:        GeneratedBadge,
			Tagline:      buildSection(idea, taglineSpec),
			Sections:     make([]Section, 0, len(sectionSpecs)),
			Affordances:  []string{SaveLabel, ExportLabel},
			NamedByModel: named,
		}
		for _, spec := range sectionSpecs {
			card.Sections = append(card.Sections, buildSection(idea, spec))
		}
		out = append(out, card)
	}
	return out
}

func buildSection(idea ideas.Idea, spec sectionSpec) Section {
	value, ok := idea.Field(spec.key)
	if !ok {
		return Section{Key: spec.key, Title: spec.title, Body: spec.fallback, Fallback: true}
	}
	return Section{Key: spec.key, Title: spec.title, Body: strings.TrimSpace(value)}
}

// FallbackCount reports how many of a card's fields used fallback text.
func (c Card) FallbackCount() int {
	count := 0
	if c.Tagline.Fallback {
		count++
	}
	for _, section := range c.Sections {
		if section.Fallback {
			count++
		}
	}
	return count
}
