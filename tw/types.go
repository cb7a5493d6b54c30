package tw

// Unit identifies how a Dimension value is measured.
type Unit uint8

const (
	// UnitNone marks an unset or "auto" value.
	UnitNone Unit = iota
	UnitPercent
	UnitPx
	UnitIn
	UnitCm
	UnitMm
)

func (u Unit) String() string {
	switch u {
	case UnitPercent:
		return "%"
	case UnitPx:
		return "px"
	case UnitIn:
		return "in"
	case UnitCm:
		return "cm"
	case UnitMm:
		return "mm"
	default:
		return ""
	}
}

// Dimension is a unit-tagged value as written in a class, e.g. 50% or 2cm.
type Dimension struct {
	Value float32
	Unit  Unit
}

func px(v float32) *Dimension  { return &Dimension{Value: v, Unit: UnitPx} }
func pct(v float32) *Dimension { return &Dimension{Value: v, Unit: UnitPercent} }

// StyleProperties represents concrete style values.
// A nil field means the property was not set by any class.
type StyleProperties struct {
	// Colors (RGBA, 0xRRGGBBAA)
	BackgroundColor *uint32
	TextColor       *uint32
	Opacity         *float32

	// Typography
	FontSize *Dimension

	// Spacing
	PaddingTop    *Dimension
	PaddingRight  *Dimension
	PaddingBottom *Dimension
	PaddingLeft   *Dimension
	MarginTop     *Dimension
	MarginRight   *Dimension
	MarginBottom  *Dimension
	MarginLeft    *Dimension

	// Borders
	BorderTop    *Dimension
	BorderRight  *Dimension
	BorderBottom *Dimension
	BorderLeft   *Dimension

	// Sizing
	Width  *Dimension
	Height *Dimension

	// Alignment of children
	AlignH *string // "left", "center", "right"
	AlignV *string // "top", "center", "bottom"

	// Overflow
	OverflowX *string // "visible", "hidden", "scroll"
	OverflowY *string
}

// Merge copies the non-nil properties of src into p.
func (p *StyleProperties) Merge(src StyleProperties) {
	mergeStyleProperties(p, &src)
}

// IsEmpty reports whether no property is set.
func (p StyleProperties) IsEmpty() bool {
	return p == StyleProperties{}
}

func mergeStyleProperties(dst, src *StyleProperties) {
	if src.BackgroundColor != nil {
		dst.BackgroundColor = src.BackgroundColor
	}
	if src.TextColor != nil {
		dst.TextColor = src.TextColor
	}
	if src.Opacity != nil {
		dst.Opacity = src.Opacity
	}
	if src.FontSize != nil {
		dst.FontSize = src.FontSize
	}

	if src.PaddingTop != nil {
		dst.PaddingTop = src.PaddingTop
	}
	if src.PaddingRight != nil {
		dst.PaddingRight = src.PaddingRight
	}
	if src.PaddingBottom != nil {
		dst.PaddingBottom = src.PaddingBottom
	}
	if src.PaddingLeft != nil {
		dst.PaddingLeft = src.PaddingLeft
	}
	if src.MarginTop != nil {
		dst.MarginTop = src.MarginTop
	}
	if src.MarginRight != nil {
		dst.MarginRight = src.MarginRight
	}
	if src.MarginBottom != nil {
		dst.MarginBottom = src.MarginBottom
	}
	if src.MarginLeft != nil {
		dst.MarginLeft = src.MarginLeft
	}

	if src.BorderTop != nil {
		dst.BorderTop = src.BorderTop
	}
	if src.BorderRight != nil {
		dst.BorderRight = src.BorderRight
	}
	if src.BorderBottom != nil {
		dst.BorderBottom = src.BorderBottom
	}
	if src.BorderLeft != nil {
		dst.BorderLeft = src.BorderLeft
	}

	if src.Width != nil {
		dst.Width = src.Width
	}
	if src.Height != nil {
		dst.Height = src.Height
	}
	if src.AlignH != nil {
		dst.AlignH = src.AlignH
	}
	if src.AlignV != nil {
		dst.AlignV = src.AlignV
	}
	if src.OverflowX != nil {
		dst.OverflowX = src.OverflowX
	}
	if src.OverflowY != nil {
		dst.OverflowY = src.OverflowY
	}
}

// ThemeConfig holds the consumer's theme configuration.
// This is registered via SetConfig() at app startup.
type ThemeConfig struct {
	ClassMap    map[string]StyleProperties
	Breakpoints BreakpointConfig
}

// registeredConfig holds the consumer's theme configuration.
// If nil, falls back to the framework defaults.
var registeredConfig *ThemeConfig

// SetConfig registers the consumer's theme configuration.
// This should be called at app startup before any parsing occurs.
func SetConfig(config ThemeConfig) {
	registeredConfig = &config
}

// ResetConfig drops a registered theme and restores the framework defaults.
func ResetConfig() {
	registeredConfig = nil
}

// GetClassMap returns the registered ClassMap or falls back to the framework default.
func GetClassMap() map[string]StyleProperties {
	if registeredConfig != nil && registeredConfig.ClassMap != nil {
		return registeredConfig.ClassMap
	}
	return ClassMap
}

// GetBreakpoints returns the registered breakpoints or falls back to the framework default.
func GetBreakpoints() BreakpointConfig {
	if registeredConfig != nil {
		return registeredConfig.Breakpoints
	}
	return DefaultBreakpoints()
}
