// Package guide lists the key bindings available on each screen.
package guide

// Step is one binding and what it does.
type Step struct {
	Keys        string
	Description string
}

// Screen selects which set of bindings to describe.
type Screen int

const (
	Form Screen = iota
	Results
)

// Metadata carries the state that changes which bindings apply.
type Metadata struct {
	Screen     Screen
	HasResults bool
	Failed     bool
}

// Build returns the bindings for the given screen in display order.
func Build(meta Metadata) []Step {
	if meta.Screen == Results {
		return []Step{
			{Keys: "↑/↓ pgup/pgdn", Description: "Scroll through the generated ideas"},
			{Keys: "[ ]", Description: "Jump to the previous or next idea"},
			{Keys: "g G", Description: "Go to the first or last line"},
			{Keys: "i e tab", Description: "Edit the request and generate again"},
			{Keys: "n", Description: "Start a new request with empty fields"},
			{Keys: "? f1", Description: "Toggle this help"},
			{Keys: "q esc", Description: "Quit"},
		}
	}

	steps := []Step{
		{Keys: "tab shift+tab", Description: "Move between Industry and Technology Focus"},
		{Keys: "enter", Description: "Generate ideas once both fields are filled"},
		{Keys: "ctrl+r", Description: "Clear both fields and any results"},
	}
	switch {
	case meta.Failed:
		steps = append(steps, Step{Keys: "esc", Description: "Dismiss the error"})
	case meta.HasResults:
		steps = append(steps, Step{Keys: "esc", Description: "Return to the generated ideas"})
	default:
		steps = append(steps, Step{Keys: "esc", Description: "Quit"})
	}
	return append(steps, Step{Keys: "f1", Description: "Toggle this help"})
}
