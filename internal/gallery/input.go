package gallery

// EventType distinguishes pointer clicks from key presses.
type EventType string

const (
	Click EventType = "click"
	Key   EventType = "key"
)

// Keys the gallery reacts to.
const (
	KeyEscape     = "Escape"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)

// ThumbClick is the click target reported for any thumbnail; Index carries
// which one.
const ThumbClick = thumbTarget

// Event is one user input. For clicks Target names what was clicked; a click
// on the lightbox backdrop (outside its image) is reported with Target
// "lightbox".
type Event struct {
	Type   EventType `json:"type"`
	Target string    `json:"target,omitempty"`
	Key    string    `json:"key,omitempty"`
	Index  int       `json:"index,omitempty"`
}

// Binding is an input a client should listen for.
type Binding string

const (
	BindThumbs   Binding = "thumbs"
	BindPrev     Binding = "prev"
	BindNext     Binding = "next"
	BindMain     Binding = "main"
	BindClose    Binding = "lightbox-close"
	BindBackdrop Binding = "lightbox-backdrop"
	BindKeys     Binding = "keys"
)

// Bindings lists the inputs the gallery handles in its current state. An
// Empty gallery binds nothing.
func (g *Gallery) Bindings() []Binding {
	if g.State() == Empty {
		return nil
	}
	return []Binding{BindThumbs, BindPrev, BindNext, BindMain, BindClose, BindBackdrop, BindKeys}
}

// Dispatch routes an input to the matching transition. Arrow keys drive the
// carousel whether or not the lightbox is open. It reports whether the event
// was handled.
func (g *Gallery) Dispatch(ev Event) bool {
	if g.State() == Empty {
		return false
	}
	switch ev.Type {
	case Key:
		switch ev.Key {
		case KeyEscape:
			g.CloseLightbox()
		case KeyArrowLeft:
			g.Prev()
		case KeyArrowRight:
			g.Next()
		default:
			return false
		}
	case Click:
		switch ev.Target {
		case ThumbClick:
			g.SelectIndex(ev.Index)
		case TargetPrev:
			g.Prev()
		case TargetNext:
			g.Next()
		case TargetMain:
			g.OpenLightbox()
		case TargetLBClose, TargetLightbox:
			g.CloseLightbox()
		default:
			return false
		}
	default:
		return false
	}
	return true
}
