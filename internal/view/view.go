// Package view defines the capability set renderers use to mutate a page,
// along with an HTML document implementation and a recording implementation.
//
// A target names an element in the page. A bare name such as "p-name"
// matches the first element carrying a data-p-name attribute, or an element
// whose id is "p-name". A name=value pair such as "sec=tools" matches the
// first element whose data-sec attribute equals "tools". Operations on a
// target that does not exist are ignored.
package view

// View is the set of mutations a renderer may perform.
type View interface {
	SetText(target, text string)
	SetVisible(target string, visible bool)
	SetChildren(target string, children []Node)
	SetAttr(target, key, value string)
	SetClass(target, class string, on bool)
}

// Shell covers the document-level side effects of a page: its title, meta
// tags and the data/class attributes on <body>.
type Shell interface {
	SetTitle(title string)
	SetMeta(name, content string)
	BodyData(key string) string
	SetBodyData(key, value string)
	AddBodyClass(class string)
}

// Page is a full page: element-level view plus document shell.
type Page interface {
	View
	Shell
}

// Attr is a single element attribute.
type Attr struct {
	Key string `json:"k"`
	Val string `json:"v"`
}

// Node is a detached element tree handed to SetChildren.
type Node struct {
	Tag      string `json:"tag"`
	Class    string `json:"class,omitempty"`
	Attrs    []Attr `json:"attrs,omitempty"`
	Text     string `json:"text,omitempty"`
	Children []Node `json:"children,omitempty"`
}

// El builds an element with the given class and children.
func El(tag, class string, children ...Node) Node {
	return Node{Tag: tag, Class: class, Children: children}
}

// TextEl builds an element holding only text.
func TextEl(tag, class, text string) Node {
	return Node{Tag: tag, Class: class, Text: text}
}

// WithAttr returns a copy of n with an extra attribute.
func (n Node) WithAttr(key, val string) Node {
	attrs := make([]Attr, len(n.Attrs), len(n.Attrs)+1)
	copy(attrs, n.Attrs)
	n.Attrs = append(attrs, Attr{Key: key, Val: val})
	return n
}

// Attr returns the value of the named attribute, if set.
func (n Node) Attr(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
