package view

// OpKind names a recorded mutation.
type OpKind string

const (
	OpText     OpKind = "text"
	OpVisible  OpKind = "visible"
	OpChildren OpKind = "children"
	OpAttr     OpKind = "attr"
	OpClass    OpKind = "class"
)

// Op is one recorded mutation. It doubles as the patch format sent to live
// gallery clients.
type Op struct {
	Kind     OpKind `json:"op"`
	Target   string `json:"target"`
	Key      string `json:"key,omitempty"`
	Value    string `json:"value"`
	On       bool   `json:"on"`
	Children []Node `json:"children,omitempty"`
}

// Recorder is a View that keeps both the log of operations and the
// resulting projection of every target it has touched.
type Recorder struct {
	ops      []Op
	text     map[string]string
	visible  map[string]bool
	children map[string][]Node
	attrs    map[string]map[string]string
	classes  map[string]map[string]bool
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		text:     make(map[string]string),
		visible:  make(map[string]bool),
		children: make(map[string][]Node),
		attrs:    make(map[string]map[string]string),
		classes:  make(map[string]map[string]bool),
	}
}

func (r *Recorder) SetText(target, text string) {
	r.ops = append(r.ops, Op{Kind: OpText, Target: target, Value: text})
	r.text[target] = text
}

func (r *Recorder) SetVisible(target string, visible bool) {
	r.ops = append(r.ops, Op{Kind: OpVisible, Target: target, On: visible})
	r.visible[target] = visible
}

func (r *Recorder) SetChildren(target string, children []Node) {
	cp := append([]Node(nil), children...)
	r.ops = append(r.ops, Op{Kind: OpChildren, Target: target, Children: cp})
	r.children[target] = cp
}

func (r *Recorder) SetAttr(target, key, value string) {
	r.ops = append(r.ops, Op{Kind: OpAttr, Target: target, Key: key, Value: value})
	if r.attrs[target] == nil {
		r.attrs[target] = make(map[string]string)
	}
	r.attrs[target][key] = value
}

func (r *Recorder) SetClass(target, class string, on bool) {
	r.ops = append(r.ops, Op{Kind: OpClass, Target: target, Key: class, On: on})
	if r.classes[target] == nil {
		r.classes[target] = make(map[string]bool)
	}
	r.classes[target][class] = on
}

// Ops returns every operation recorded since the last Flush.
func (r *Recorder) Ops() []Op { return r.ops }

// Flush returns the pending operations and clears the log. The projection
// is kept.
func (r *Recorder) Flush() []Op {
	ops := r.ops
	r.ops = nil
	return ops
}

// Text returns the last text set on target.
func (r *Recorder) Text(target string) string { return r.text[target] }

// Visible reports the last visibility set on target; ok is false if it was
// never set.
func (r *Recorder) Visible(target string) (visible, ok bool) {
	visible, ok = r.visible[target]
	return visible, ok
}

// Children returns the last children set on target.
func (r *Recorder) Children(target string) []Node { return r.children[target] }

// Attr returns the last value set for key on target.
func (r *Recorder) Attr(target, key string) (string, bool) {
	v, ok := r.attrs[target][key]
	return v, ok
}

// HasClass reports whether class is currently switched on for target.
func (r *Recorder) HasClass(target, class string) bool {
	return r.classes[target][class]
}

// PageRecorder adds a recorded Shell to Recorder.
type PageRecorder struct {
	*Recorder
	Title       string
	Meta        map[string]string
	Body        map[string]string
	BodyClasses []string
}

// NewPageRecorder returns a PageRecorder whose body carries the given data
// attributes.
func NewPageRecorder(body map[string]string) *PageRecorder {
	b := make(map[string]string, len(body))
	for k, v := range body {
		b[k] = v
	}
	return &PageRecorder{Recorder: NewRecorder(), Meta: make(map[string]string), Body: b}
}

func (p *PageRecorder) SetTitle(title string)         { p.Title = title }
func (p *PageRecorder) SetMeta(name, content string)  { p.Meta[name] = content }
func (p *PageRecorder) BodyData(key string) string    { return p.Body[key] }
func (p *PageRecorder) SetBodyData(key, value string) { p.Body[key] = value }
func (p *PageRecorder) AddBodyClass(class string)     { p.BodyClasses = append(p.BodyClasses, class) }
