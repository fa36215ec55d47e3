package ui

// Opt is a bit set of widget and container options.
type Opt uint16

const (
	OptAlignCenter Opt = 1 << iota
	OptAlignRight
	OptNoInteract
	OptNoFrame
	OptNoResize
	OptNoScroll
	OptNoClose
	OptNoTitle
	OptHoldFocus
	OptAutoSize
	OptPopup
	OptClosed
	OptExpanded
)

// Res is the result bit set returned by widgets.
type Res uint8

const (
	ResActive Res = 1 << iota
	ResSubmit
	ResChange
)

// Icon names a glyph the renderer maps to a sprite. Zero means no icon.
type Icon int

const (
	IconClose Icon = iota + 1
	IconCheck
	IconCollapsed
	IconExpanded
	IconMax
)

func (i Icon) String() string {
	switch i {
	case IconClose:
		return "close"
	case IconCheck:
		return "check"
	case IconCollapsed:
		return "collapsed"
	case IconExpanded:
		return "expanded"
	default:
		return "none"
	}
}

// ClipResult classifies a rectangle against the current clip rectangle.
type ClipResult uint8

const (
	ClipNone ClipResult = iota // fully visible
	ClipPart
	ClipAll // fully hidden
)
