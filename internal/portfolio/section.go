package portfolio

// Section is an optional, ordered block of content. It is either Present
// with at least one item or Absent; an empty collection is Absent.
type Section[T any] struct {
	items []T
}

// SectionOf wraps items as a Section.
func SectionOf[T any](items []T) Section[T] {
	if len(items) == 0 {
		return Section[T]{}
	}
	return Section[T]{items: items}
}

// Present reports whether the section has content.
func (s Section[T]) Present() bool { return len(s.items) > 0 }

// Items returns the section content in display order.
func (s Section[T]) Items() []T { return s.items }

// TextSection treats a single string as a one-item section.
func TextSection(s string) Section[string] {
	if s == "" {
		return Section[string]{}
	}
	return Section[string]{items: []string{s}}
}
