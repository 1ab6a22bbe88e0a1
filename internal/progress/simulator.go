// Package progress simulates feedback for a request of unknown length. The
// percent it reports is cosmetic: it follows a decelerating schedule that
// stalls at 90 and only reaches 100 when the caller stops it.
package progress

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	// PercentInterval is the period of the percent tick loop.
	PercentInterval = 300 * time.Millisecond
	// ElapsedInterval is the period of the elapsed-seconds tick loop.
	ElapsedInterval = time.Second
	// Ceiling is where the schedule stops advancing on its own.
	Ceiling = 90.0
	// Complete is the value forced when the simulation stops.
	Complete = 100.0
)

// Next applies one step of the deceleration schedule. The last band is
// clamped so float drift cannot carry the value past Ceiling.
func Next(percent float64) float64 {
	switch {
	case percent < 30:
		return percent + 1
	case percent < 60:
		return percent + 0.7
	case percent < 85:
		return percent + 0.3
	case percent < Ceiling:
		return min(percent+0.1, Ceiling)
	default:
		return percent
	}
}

// FormatElapsed renders seconds as "1m 5s" or "42s".
func FormatElapsed(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	minutes := seconds / 60
	rest := seconds % 60
	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, rest)
	}
	return fmt.Sprintf("%ds", rest)
}

// PercentTickMsg advances the percent loop of one generation.
type PercentTickMsg struct {
	Generation int
}

// ElapsedTickMsg advances the elapsed loop of one generation.
type ElapsedTickMsg struct {
	Generation int
}

// Simulator owns the progress state of one request at a time. Each Start opens
// a new generation; tick messages carry the generation they were scheduled
// for, and any tick from a closed generation is dropped without re-arming, so
// Stop is enough to end both loops.
type Simulator struct {
	percent         float64
	elapsed         int
	generation      int
	running         bool
	percentInterval time.Duration
	elapsedInterval time.Duration
}

// New returns an idle simulator using the default intervals.
func New() Simulator {
	return Simulator{
		percentInterval: PercentInterval,
		elapsedInterval: ElapsedInterval,
	}
}

// WithIntervals overrides the tick periods.
func (s Simulator) WithIntervals(percent, elapsed time.Duration) Simulator {
	s.percentInterval = percent
	s.elapsedInterval = elapsed
	return s
}

// Percent returns the current simulated percent in [0, 100].
func (s *Simulator) Percent() float64 { return s.percent }

// Elapsed returns whole seconds since Start.
func (s *Simulator) Elapsed() int { return s.elapsed }

// Running reports whether a generation is live.
func (s *Simulator) Running() bool { return s.running }

// Generation returns the tag of the current (or last) generation.
func (s *Simulator) Generation() int { return s.generation }

// Start resets the state to zero and schedules the first tick of both loops.
func (s *Simulator) Start() tea.Cmd {
	s.generation++
	s.percent = 0
	s.elapsed = 0
	s.running = true
	return tea.Batch(s.percentTick(), s.elapsedTick())
}

// Stop closes the live generation and forces percent to 100. It is safe to
// call when nothing is running.
func (s *Simulator) Stop() {
	if s.running {
		s.generation++
	}
	s.running = false
	s.percent = Complete
}

// Update consumes tick messages for the live generation and re-arms the loop
// that produced them. Messages from other generations return nil.
func (s *Simulator) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PercentTickMsg:
		if !s.accepts(msg.Generation) {
			return nil
		}
		s.percent = Next(s.percent)
		return s.percentTick()
	case ElapsedTickMsg:
		if !s.accepts(msg.Generation) {
			return nil
		}
		s.elapsed++
		return s.elapsedTick()
	}
	return nil
}

func (s *Simulator) accepts(generation int) bool {
	return s.running && generation == s.generation
}

func (s *Simulator) percentTick() tea.Cmd {
	generation := s.generation
	interval := s.percentInterval
	if interval <= 0 {
		interval = PercentInterval
	}
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return PercentTickMsg{Generation: generation}
	})
}

func (s *Simulator) elapsedTick() tea.Cmd {
	generation := s.generation
	interval := s.elapsedInterval
	if interval <= 0 {
		interval = ElapsedInterval
	}
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return ElapsedTickMsg{Generation: generation}
	})
}
