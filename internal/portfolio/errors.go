package portfolio

import "fmt"

// LoadError reports that the dataset could not be fetched or parsed.
type LoadError struct {
	Source string
	Status int // HTTP status when the transport answered, 0 otherwise
	Err    error
}

func (e *LoadError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("loading projects from %s: status %d", e.Source, e.Status)
	}
	return fmt.Sprintf("loading projects from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// NotFoundError reports that no project carries the requested slug.
type NotFoundError struct {
	Slug string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("project not found: %s", e.Slug)
}
