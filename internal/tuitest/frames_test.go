package tuitest

import (
	"bytes"
	"testing"
)

func TestParseFramesSplitsOnClear(t *testing.T) {
	raw := []byte("\x1b[2J\x1b[Hfirst  \r\n\x1b[1mbold\x1b[0m\n\n\x1b[2J\x1b[Hsecond")
	frames := parseFrames(raw)
	if len(frames) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(frames))
	}
	if frames[0].Plain != "first\nbold" {
		t.Fatalf("unexpected first frame %q", frames[0].Plain)
	}
	rec := &Recording{Raw: raw, Frames: frames}
	last, ok := rec.FinalFrame()
	if !ok || last.Plain != "second" {
		t.Fatalf("unexpected final frame %q", last.Plain)
	}
	if frame, ok := rec.FirstFrameContaining("bold"); !ok || frame.Index != 0 {
		t.Fatal("expected bold in the first frame")
	}
	if !rec.Contains("second") || rec.Contains("\x1b") {
		t.Fatal("plain transcript should hold text without escapes")
	}
}

func TestTerminalResponderAnswersProbes(t *testing.T) {
	var replies bytes.Buffer
	tr := newTerminalResponder(&replies)

	tr.Process([]byte("junk\x1b]11;"))
	tr.Process([]byte("?\x07more\x1b[6n"))

	want := "\x1b]11;rgb:0000/0000/0000\x07\x1b[1;1R"
	if replies.String() != want {
		t.Fatalf("replies = %q, want %q", replies.String(), want)
	}
}
