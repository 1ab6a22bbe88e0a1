package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/ideascout/internal/ideas"
)

const unknownErrorMessage = "An unknown error occurred"

type generateResultMsg struct {
	requestID string
	ideas     []ideas.Idea
	err       error
}

func generateJob(client ideas.Client, timeout time.Duration, requestID string, input ideas.Request) jobRunner {
	req := input
	return func(parent context.Context) (tea.Msg, error) {
		ctx, cancel := context.WithTimeout(parent, timeout)
		defer cancel()
		results, err := client.Generate(ctx, requestID, req)
		if err != nil {
			return generateResultMsg{requestID: requestID, err: err}, err
		}
		return generateResultMsg{requestID: requestID, ideas: results}, nil
	}
}

// failureMessage maps a generation error to the text shown in the banner.
func failureMessage(err error) string {
	var statusErr *ideas.StatusError
	var transportErr *ideas.TransportError
	var shapeErr *ideas.ShapeError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &statusErr):
		return statusErr.Error()
	case errors.As(err, &shapeErr):
		return unknownErrorMessage
	case errors.As(err, &transportErr):
		if msg := strings.TrimSpace(transportErr.Error()); msg != "" {
			return msg
		}
		return unknownErrorMessage
	default:
		if msg := strings.TrimSpace(err.Error()); msg != "" {
			return msg
		}
		return unknownErrorMessage
	}
}
