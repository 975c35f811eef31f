package progress

import (
	"bytes"
	"testing"
)

func TestCIReporterPhases(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{Out: &buf}

	r.Phase("Rendering pages", 2)
	r.Step("index.html")
	r.Step("projects/alpha.html")
	r.Phase("Copying assets", 1)
	r.Step("assets/alpha/1.png")
	r.Finish()

	want := "Rendering pages (2)\n" +
		"  [1/2] index.html\n" +
		"  [2/2] projects/alpha.html\n" +
		"Copying assets (1)\n" +
		"  [1/1] assets/alpha/1.png\n" +
		"Site build complete\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestTerminalReporterPhases(t *testing.T) {
	var buf bytes.Buffer
	r := &TerminalReporter{Out: &buf}

	r.Step("before any phase")
	r.Phase("Rendering pages", 1)
	r.Step("index.html")
	if r.bar == nil {
		t.Fatal("expected a bar during a phase")
	}
	r.Finish()
	if r.bar != nil {
		t.Error("expected Finish to drop the bar")
	}
}

func TestNewReporterInCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter().(*CIReporter); !ok {
		t.Error("expected CIReporter when CI is set")
	}
}

func TestNewReporterInTerminal(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("GITHUB_ACTIONS", "")
	if _, ok := NewReporter().(*TerminalReporter); !ok {
		t.Fatal("expected TerminalReporter outside CI")
	}
}
