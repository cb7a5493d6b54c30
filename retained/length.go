package retained

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agiangrant/nucleus/tw"
)

// LengthKind identifies the unit a Length is measured in.
type LengthKind uint8

const (
	// LengthUndefined always resolves to 0.
	LengthUndefined LengthKind = iota
	LengthPercent
	LengthPixel
	LengthInch
	LengthCentimeter
	LengthMillimeter
)

func (k LengthKind) String() string {
	switch k {
	case LengthUndefined:
		return "undefined"
	case LengthPercent:
		return "percent"
	case LengthPixel:
		return "pixel"
	case LengthInch:
		return "inch"
	case LengthCentimeter:
		return "centimeter"
	case LengthMillimeter:
		return "millimeter"
	default:
		return "LengthKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Length is a magnitude tagged with its unit. The zero value is undefined.
type Length struct {
	Kind  LengthKind
	Value float32
}

// Pct returns a percentage length.
func Pct(v float32) Length { return Length{Kind: LengthPercent, Value: v} }

// Px returns a device pixel length.
func Px(v float32) Length { return Length{Kind: LengthPixel, Value: v} }

// In returns a physical inch length.
func In(v float32) Length { return Length{Kind: LengthInch, Value: v} }

// Cm returns a physical centimeter length.
func Cm(v float32) Length { return Length{Kind: LengthCentimeter, Value: v} }

// Mm returns a physical millimeter length.
func Mm(v float32) Length { return Length{Kind: LengthMillimeter, Value: v} }

// IsDefined reports whether l has a unit.
func (l Length) IsDefined() bool { return l.Kind != LengthUndefined }

func (l Length) String() string {
	v := strconv.FormatFloat(float64(l.Value), 'f', -1, 32)
	switch l.Kind {
	case LengthUndefined:
		return "auto"
	case LengthPercent:
		return v + "%"
	case LengthPixel:
		return v + "px"
	case LengthInch:
		return v + "in"
	case LengthCentimeter:
		return v + "cm"
	case LengthMillimeter:
		return v + "mm"
	default:
		return fmt.Sprintf("%s(%s)", l.Kind, v)
	}
}

// ParseLength parses literals such as "50%", "12px", "2in", "1.5cm" and
// "3mm". A bare number is pixels; "" and "auto" are undefined.
func ParseLength(s string) (Length, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "auto" {
		return Length{}, nil
	}
	d, ok := tw.ParseDimension(s)
	if !ok {
		return Length{}, fmt.Errorf("%w: %q", ErrInvalidLength, s)
	}
	return lengthFromDimension(d), nil
}

// MarshalText implements encoding.TextMarshaler.
func (l Length) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Length) UnmarshalText(text []byte) error {
	parsed, err := ParseLength(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

func lengthFromDimension(d tw.Dimension) Length {
	switch d.Unit {
	case tw.UnitPercent:
		return Pct(d.Value)
	case tw.UnitPx:
		return Px(d.Value)
	case tw.UnitIn:
		return In(d.Value)
	case tw.UnitCm:
		return Cm(d.Value)
	case tw.UnitMm:
		return Mm(d.Value)
	default:
		return Length{}
	}
}

// meterToInch is applied per centimeter with a 0.01 factor.
const meterToInch = 39.3701

// Surface describes the rendering target.
type Surface struct {
	Width  float32 // pixels
	Height float32 // pixels
	DPI    float32
}

// Resolve converts l into a fraction of pixels, the extent of the axis it is
// measured along. Percentages resolve to value/100 independent of the axis;
// callers scale them by the reference extent they apply to.
//
// Resolve panics with a *UnitError for kinds it does not implement.
func (s Surface) Resolve(l Length, pixels float32) float32 {
	switch l.Kind {
	case LengthUndefined:
		return 0
	case LengthPercent:
		return l.Value / 100
	case LengthPixel:
		return l.Value / pixels
	case LengthInch:
		return (l.Value * s.DPI) / pixels
	case LengthCentimeter:
		return float32((float64(l.Value*s.DPI) * meterToInch * 0.01) / float64(pixels))
	case LengthMillimeter:
		return float32((float64(l.Value*s.DPI) * meterToInch * 0.001) / float64(pixels))
	default:
		panic(&UnitError{Kind: l.Kind})
	}
}

// ResolveX resolves l against the horizontal axis.
func (s Surface) ResolveX(l Length) float32 {
	return s.Resolve(l, s.Width)
}

// ResolveY resolves l against the vertical axis.
func (s Surface) ResolveY(l Length) float32 {
	return s.Resolve(l, s.Height)
}

// PixelsX converts a horizontal fraction back into pixels.
func (s Surface) PixelsX(f float32) float32 {
	return f * s.Width
}

// PixelsY converts a vertical fraction back into pixels.
func (s Surface) PixelsY(f float32) float32 {
	return f * s.Height
}

// Valid reports whether the surface has a usable size and density.
func (s Surface) Valid() bool {
	return s.Width > 0 && s.Height > 0 && s.DPI > 0
}
