package retained

// Edges holds one Length per box edge.
type Edges struct {
	Top, Right, Bottom, Left Length
}

// Uniform returns Edges with l on every side.
func Uniform(l Length) Edges {
	return Edges{Top: l, Right: l, Bottom: l, Left: l}
}

// Symmetric returns Edges with v on top/bottom and h on left/right.
func Symmetric(v, h Length) Edges {
	return Edges{Top: v, Right: h, Bottom: v, Left: h}
}

// AlignH positions children along the horizontal axis.
type AlignH uint8

const (
	AlignLeft AlignH = iota
	AlignCenter
	AlignRight
)

// AlignV positions children along the vertical axis.
type AlignV uint8

const (
	AlignTop AlignV = iota
	AlignMiddle
	AlignBottom
)

// Color is a straight-alpha RGBA color with components in [0,1].
type Color struct {
	R, G, B, A float32
}

// ColorFromRGBA unpacks 0xRRGGBBAA.
func ColorFromRGBA(c uint32) Color {
	return Color{
		R: float32(c>>24&0xFF) / 255,
		G: float32(c>>16&0xFF) / 255,
		B: float32(c>>8&0xFF) / 255,
		A: float32(c&0xFF) / 255,
	}
}

// RGBA packs c into 0xRRGGBBAA.
func (c Color) RGBA() uint32 {
	return uint32(clampUnit(c.R)*255+0.5)<<24 |
		uint32(clampUnit(c.G)*255+0.5)<<16 |
		uint32(clampUnit(c.B)*255+0.5)<<8 |
		uint32(clampUnit(c.A)*255+0.5)
}

// IsTransparent reports whether c has no coverage.
func (c Color) IsTransparent() bool { return c.A <= 0 }

// Style is the visual description of one widget. A Style is owned by exactly
// one widget; assign a new value to reconfigure it.
type Style struct {
	Padding Edges
	Border  Edges
	Margin  Edges

	AlignH AlignH
	AlignV AlignV

	// Width and Height request a content box size; undefined means the
	// layout pass decides.
	Width  Length
	Height Length

	Background  Color
	Foreground  Color
	BorderColor Color
	FontSize    Length

	// Transparency fades the widget and its subtree: 0 is opaque, 1 is
	// invisible.
	Transparency float32
}

// DefaultStyle returns an opaque style with white text and every length
// undefined.
func DefaultStyle() Style {
	return Style{
		Foreground: Color{R: 1, G: 1, B: 1, A: 1},
	}
}

// Opacity returns 1 - Transparency, clamped to [0,1].
func (s *Style) Opacity() float32 {
	return 1 - clampUnit(s.Transparency)
}

// SetOpacity sets Transparency from an opacity in [0,1].
func (s *Style) SetOpacity(v float32) {
	s.Transparency = 1 - clampUnit(v)
}

func clampUnit(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
