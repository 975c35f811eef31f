// Package page holds the two page controllers: the project listing and the
// case-study detail page. Controllers catch load and lookup failures and log
// them; nothing they do returns an error to the caller.
package page

import (
	"go.uber.org/zap"
)

// Outcome tells the transport how a page render ended. It never changes
// what was rendered.
type Outcome int

const (
	Rendered Outcome = iota
	NoProject
	NotFound
	LoadFailed
)

func (o Outcome) String() string {
	switch o {
	case Rendered:
		return "rendered"
	case NoProject:
		return "no-project"
	case NotFound:
		return "not-found"
	case LoadFailed:
		return "load-failed"
	default:
		return "unknown"
	}
}

func orNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
