package ui

// ColorID indexes the style's colour table.
type ColorID int

const (
	ColorText ColorID = iota
	ColorBorder
	ColorWindowBG
	ColorTitleBG
	ColorTitleText
	ColorPanelBG
	ColorButton
	ColorButtonHover
	ColorButtonFocus
	ColorBase
	ColorBaseHover
	ColorBaseFocus
	ColorScrollBase
	ColorScrollThumb
	ColorMax
)

var colorNames = [ColorMax]string{
	"text", "border", "windowbg", "titlebg", "titletext", "panelbg",
	"button", "buttonhover", "buttonfocus",
	"base", "basehover", "basefocus",
	"scrollbase", "scrollthumb",
}

func (c ColorID) String() string {
	if c < 0 || c >= ColorMax {
		return "unknown"
	}
	return colorNames[c]
}

// ColorByName resolves a lower-case colour role name such as "windowbg".
func ColorByName(name string) (ColorID, bool) {
	for i, n := range colorNames {
		if n == name {
			return ColorID(i), true
		}
	}
	return 0, false
}

// Font is an opaque handle passed back to the host's measurement
// functions and carried by text commands. It must be comparable; a pointer
// is the usual choice.
type Font any

// Style is the flat theme shared by every widget. Hosts may edit it at any
// time, including mid-frame.
type Style struct {
	Font          Font
	Size          Vec2 // default widget content size
	Padding       int
	Spacing       int
	Indent        int
	TitleHeight   int
	ScrollbarSize int
	ThumbSize     int
	MinWindowSize Vec2 // smallest size a window can be resized to
	Colors        [ColorMax]Color
}

// DefaultStyle returns the stock dark theme.
func DefaultStyle() Style {
	return Style{
		Size:          Vec2{68, 10},
		Padding:       5,
		Spacing:       4,
		Indent:        24,
		TitleHeight:   24,
		ScrollbarSize: 12,
		ThumbSize:     8,
		MinWindowSize: Vec2{96, 64},
		Colors: [ColorMax]Color{
			ColorText:        {230, 230, 230, 255},
			ColorBorder:      {25, 25, 25, 255},
			ColorWindowBG:    {50, 50, 50, 255},
			ColorTitleBG:     {25, 25, 25, 255},
			ColorTitleText:   {240, 240, 240, 255},
			ColorPanelBG:     {0, 0, 0, 0},
			ColorButton:      {75, 75, 75, 255},
			ColorButtonHover: {95, 95, 95, 255},
			ColorButtonFocus: {115, 115, 115, 255},
			ColorBase:        {30, 30, 30, 255},
			ColorBaseHover:   {35, 35, 35, 255},
			ColorBaseFocus:   {40, 40, 40, 255},
			ColorScrollBase:  {43, 43, 43, 255},
			ColorScrollThumb: {30, 30, 30, 255},
		},
	}
}
