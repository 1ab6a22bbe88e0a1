package tui

import (
	"context"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/csheth/ideascout/internal/ideas"
	"github.com/csheth/ideascout/internal/progress"
)

// lifecycle is the request state machine. Loading holds two resources, the
// request context and the progress simulator; both are acquired in submit and
// released only in leaveLoading, which every exit from Loading goes through.
type lifecycle struct {
	state     requestState
	results   []ideas.Idea
	err       string
	requestID string
	input     ideas.Request
	cancel    context.CancelFunc
	sim       progress.Simulator
	submitted int
}

func newLifecycle(sim progress.Simulator) lifecycle {
	return lifecycle{state: stateIdle, sim: sim}
}

// submit enters Loading and returns the commands that drive it. A submit
// while Loading is ignored.
func (l *lifecycle) submit(client ideas.Client, jobs *jobBus, timeout time.Duration, input ideas.Request) tea.Cmd {
	if l.state == stateLoading {
		log.Printf("[lifecycle] submit ignored: request %s still in flight", l.requestID)
		return nil
	}
	if timeout <= 0 {
		timeout = ideas.DefaultTimeout
	}
	ctx, cancel := context.WithCancel(context.Background())
	l.state = stateLoading
	l.err = ""
	l.results = nil
	l.input = input
	l.requestID = uuid.NewString()
	l.cancel = cancel
	l.submitted++
	log.Printf("[lifecycle] request %s: industry=%q technology_focus=%q", l.requestID, input.Industry, input.TechnologyFocus)
	return tea.Batch(
		l.sim.Start(),
		jobs.Start(ctx, jobKindGenerate, generateJob(client, timeout, l.requestID, input)),
	)
}

// complete applies a job result. It reports false for results that do not
// belong to the in-flight request.
func (l *lifecycle) complete(msg generateResultMsg) bool {
	if l.state != stateLoading || msg.requestID != l.requestID {
		log.Printf("[lifecycle] dropping stale result for request %s", msg.requestID)
		return false
	}
	l.leaveLoading()
	if msg.err != nil {
		l.state = stateFailed
		l.err = failureMessage(msg.err)
		l.results = nil
		log.Printf("[lifecycle] request %s failed: %v", l.requestID, msg.err)
		return true
	}
	results := msg.ideas
	if results == nil {
		results = []ideas.Idea{}
	}
	l.state = stateSucceeded
	l.results = results
	log.Printf("[lifecycle] request %s succeeded with %d idea(s)", l.requestID, len(results))
	return true
}

func (l *lifecycle) leaveLoading() {
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.sim.Stop()
}

// dismissError returns Failed to Idle without touching results.
func (l *lifecycle) dismissError() bool {
	if l.state != stateFailed {
		return false
	}
	l.state = stateIdle
	l.err = ""
	l.results = nil
	return true
}

// reset discards everything, abandoning an in-flight request if there is one.
func (l *lifecycle) reset() {
	if l.state == stateLoading {
		log.Printf("[lifecycle] request %s abandoned by reset", l.requestID)
		l.leaveLoading()
	}
	l.state = stateIdle
	l.err = ""
	l.results = nil
	l.requestID = ""
	l.input = ideas.Request{}
}

// teardown releases Loading resources when the program exits.
func (l *lifecycle) teardown() {
	if l.state == stateLoading {
		log.Printf("[lifecycle] request %s abandoned on exit", l.requestID)
		l.leaveLoading()
	}
}

func (l *lifecycle) loading() bool {
	return l.state == stateLoading
}
