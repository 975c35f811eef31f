package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Reporter provides progress feedback during a site build. A build runs in
// phases (pages, then assets); each phase counts its own steps.
type Reporter interface {
	Phase(name string, total int)
	Step(item string)
	Finish()
}

// NewReporter returns a CIReporter writing to stderr when the CI or
// GITHUB_ACTIONS environment variable is set, and a TerminalReporter
// otherwise.
func NewReporter() Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIReporter{Out: os.Stderr}
	}
	return &TerminalReporter{Out: os.Stderr}
}

// TerminalReporter draws one progress bar per phase.
type TerminalReporter struct {
	Out io.Writer
	bar *progressbar.ProgressBar
}

func (r *TerminalReporter) Phase(name string, total int) {
	r.finishBar()
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription(name),
		progressbar.OptionSetWriter(r.Out),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Step(item string) {
	if r.bar != nil {
		_ = r.bar.Add(1)
	}
}

func (r *TerminalReporter) Finish() { r.finishBar() }

func (r *TerminalReporter) finishBar() {
	if r.bar != nil {
		_ = r.bar.Finish()
		r.bar = nil
	}
}

// CIReporter prints one line per step, prefixed with the phase counter.
type CIReporter struct {
	Out     io.Writer
	phase   string
	current int
	total   int
}

func (r *CIReporter) Phase(name string, total int) {
	r.phase, r.current, r.total = name, 0, total
	fmt.Fprintf(r.Out, "%s (%d)\n", name, total)
}

func (r *CIReporter) Step(item string) {
	r.current++
	fmt.Fprintf(r.Out, "  [%d/%d] %s\n", r.current, r.total, item)
}

func (r *CIReporter) Finish() {
	fmt.Fprintln(r.Out, "Site build complete")
}

// Nop discards all progress.
type Nop struct{}

func (Nop) Phase(string, int) {}
func (Nop) Step(string)       {}
func (Nop) Finish()           {}
