package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/csheth/ideascout/internal/cards"
	"github.com/csheth/ideascout/internal/ideas"
)

func TestPageLayoutUpdate(t *testing.T) {
	tests := []struct {
		name                               string
		width, height                      int
		wantViewportW, wantViewportH       int
		wantInputWidth, wantProgressBarLen int
	}{
		{"wide", 100, 32, 96, 20, 60, 72},
		{"narrow", 50, 30, 46, 18, 38, 38},
		{"tiny", 10, 4, minViewportWidth, 5, 32, 32},
		{"huge", 240, 60, 236, 48, 60, 72},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := newPageLayout()
			layout.Update(tt.width, tt.height)
			if layout.viewportWidth != tt.wantViewportW || layout.viewportHeight != tt.wantViewportH {
				t.Fatalf("viewport = %dx%d, want %dx%d", layout.viewportWidth, layout.viewportHeight, tt.wantViewportW, tt.wantViewportH)
			}
			if layout.inputWidth != tt.wantInputWidth {
				t.Fatalf("inputWidth = %d, want %d", layout.inputWidth, tt.wantInputWidth)
			}
			if layout.barWidth != tt.wantProgressBarLen {
				t.Fatalf("barWidth = %d, want %d", layout.barWidth, tt.wantProgressBarLen)
			}
		})
	}
}

func TestBuildResultsContentAnchors(t *testing.T) {
	list, err := ideas.Normalize([]byte(`[{"name":"Alpha","tagline":"first"},{"name":"Beta"}]`))
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	built := cards.Build(cards.Input{Industry: "Healthcare", TechnologyFocus: "AI"}, list)

	view := buildResultsContent(built, 80)
	if len(view.anchors) != 2 {
		t.Fatalf("expected 2 anchors, got %d", len(view.anchors))
	}
	if view.anchors[0] != 0 || view.anchors[1] <= view.anchors[0] {
		t.Fatalf("anchors not increasing: %v", view.anchors)
	}
	lines := strings.Split(view.content, "\n")
	if !strings.Contains(lines[view.anchors[1]+1], "Beta") {
		t.Fatalf("second anchor should point at the Beta card, got %q", lines[view.anchors[1]+1])
	}
	alpha := strings.Index(view.content, "Alpha")
	beta := strings.Index(view.content, "Beta")
	if alpha < 0 || beta < 0 || alpha > beta {
		t.Fatal("cards should render in response order")
	}
	if !strings.Contains(view.content, "Healthcare × AI") {
		t.Fatal("card subtitle missing")
	}
	if !strings.Contains(view.content, "No tagline available") {
		t.Fatal("second card should use the tagline fallback")
	}
}

func TestRenderCardFitsWidth(t *testing.T) {
	long := strings.Repeat("word ", 60)
	list, err := ideas.Normalize([]byte(`[{"problem":"` + long + `"}]`))
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	card := cards.Build(cards.Input{Industry: "Retail", TechnologyFocus: "IoT"}, list)[0]

	rendered := renderCard(card, 60)
	for _, line := range strings.Split(rendered, "\n") {
		if w := lipgloss.Width(line); w > 60 {
			t.Fatalf("line wider than 60 columns (%d): %q", w, line)
		}
	}
	for _, want := range []string{"Startup Idea 1", cards.GeneratedBadge, "Problem", "Business Model", cards.ExportLabel} {
		if !strings.Contains(rendered, want) {
			t.Fatalf("card missing %q", want)
		}
	}
}

func TestClampInt(t *testing.T) {
	if clampInt(5, 10, 20) != 10 || clampInt(25, 10, 20) != 20 || clampInt(15, 10, 20) != 15 {
		t.Fatal("clampInt bounds wrong")
	}
}
