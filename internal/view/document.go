package view

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is a parsed HTML page that implements Page.
type Document struct {
	root *html.Node
}

// Parse reads an HTML skeleton into a Document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}
	return &Document{root: root}, nil
}

// ParseString is Parse over an in-memory skeleton.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// String returns the rendered document, or "" if rendering fails.
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

func (d *Document) SetText(target, text string) {
	n := d.find(target)
	if n == nil {
		return
	}
	removeChildren(n)
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

func (d *Document) SetVisible(target string, visible bool) {
	n := d.find(target)
	if n == nil {
		return
	}
	setDisplayNone(n, !visible)
}

func (d *Document) SetChildren(target string, children []Node) {
	n := d.find(target)
	if n == nil {
		return
	}
	removeChildren(n)
	for _, c := range children {
		n.AppendChild(build(c))
	}
}

func (d *Document) SetAttr(target, key, value string) {
	n := d.find(target)
	if n == nil {
		return
	}
	setAttr(n, key, value)
}

func (d *Document) SetClass(target, class string, on bool) {
	n := d.find(target)
	if n == nil {
		return
	}
	toggleClass(n, class, on)
}

// SetTitle replaces the text of <title>, creating it inside <head> if absent.
func (d *Document) SetTitle(title string) {
	t := findFirst(d.root, func(n *html.Node) bool { return n.DataAtom == atom.Title })
	if t == nil {
		head := findFirst(d.root, func(n *html.Node) bool { return n.DataAtom == atom.Head })
		if head == nil {
			return
		}
		t = &html.Node{Type: html.ElementNode, Data: "title", DataAtom: atom.Title}
		head.AppendChild(t)
	}
	removeChildren(t)
	t.AppendChild(&html.Node{Type: html.TextNode, Data: title})
}

// SetMeta updates the content of an existing <meta name=...> tag.
func (d *Document) SetMeta(name, content string) {
	m := findFirst(d.root, func(n *html.Node) bool {
		if n.DataAtom != atom.Meta {
			return false
		}
		v, ok := getAttr(n, "name")
		return ok && v == name
	})
	if m == nil {
		return
	}
	setAttr(m, "content", content)
}

func (d *Document) BodyData(key string) string {
	if b := d.body(); b != nil {
		v, _ := getAttr(b, "data-"+key)
		return v
	}
	return ""
}

func (d *Document) SetBodyData(key, value string) {
	if b := d.body(); b != nil {
		setAttr(b, "data-"+key, value)
	}
}

func (d *Document) AddBodyClass(class string) {
	if b := d.body(); b != nil {
		toggleClass(b, class, true)
	}
}

func (d *Document) body() *html.Node {
	return findFirst(d.root, func(n *html.Node) bool { return n.DataAtom == atom.Body })
}

func (d *Document) find(target string) *html.Node {
	name, value, hasValue := strings.Cut(target, "=")
	key := "data-" + name
	return findFirst(d.root, func(n *html.Node) bool {
		for _, a := range n.Attr {
			if a.Key == key && (!hasValue || a.Val == value) {
				return true
			}
			if !hasValue && a.Key == "id" && a.Val == name {
				return true
			}
		}
		return false
	})
}

// findFirst walks the tree depth-first in document order.
func findFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, match); found != nil {
			return found
		}
	}
	return nil
}

func removeChildren(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
}

func build(el Node) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     el.Tag,
		DataAtom: atom.Lookup([]byte(el.Tag)),
	}
	if el.Class != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: el.Class})
	}
	for _, a := range el.Attrs {
		n.Attr = append(n.Attr, html.Attribute{Key: a.Key, Val: a.Val})
	}
	if el.Text != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: el.Text})
	}
	for _, c := range el.Children {
		n.AppendChild(build(c))
	}
	return n
}

func getAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func removeAttr(n *html.Node, key string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}

func toggleClass(n *html.Node, class string, on bool) {
	current, _ := getAttr(n, "class")
	var kept []string
	for _, c := range strings.Fields(current) {
		if c != class {
			kept = append(kept, c)
		}
	}
	if on {
		kept = append(kept, class)
	}
	if len(kept) == 0 {
		removeAttr(n, "class")
		return
	}
	setAttr(n, "class", strings.Join(kept, " "))
}

// setDisplayNone adds or removes the display declaration in the inline style,
// leaving any other declarations in place.
func setDisplayNone(n *html.Node, hidden bool) {
	current, _ := getAttr(n, "style")
	var decls []string
	for _, d := range strings.Split(current, ";") {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		prop, _, _ := strings.Cut(d, ":")
		if strings.EqualFold(strings.TrimSpace(prop), "display") {
			continue
		}
		decls = append(decls, d)
	}
	if hidden {
		decls = append(decls, "display:none")
	}
	if len(decls) == 0 {
		removeAttr(n, "style")
		return
	}
	setAttr(n, "style", strings.Join(decls, ";"))
}
