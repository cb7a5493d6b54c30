package tw

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Breakpoint represents responsive breakpoint
type Breakpoint int

const (
	BreakpointBase Breakpoint = iota
	BreakpointSM               // ≥640px
	BreakpointMD               // ≥768px
	BreakpointLG               // ≥1024px
	BreakpointXL               // ≥1280px
	Breakpoint2XL              // ≥1536px
)

// ComputedStyles represents styles organized by breakpoint
type ComputedStyles struct {
	// Base styles (always apply)
	Base StyleProperties

	// Responsive variants (apply at different breakpoints)
	SM  StyleProperties
	MD  StyleProperties
	LG  StyleProperties
	XL  StyleProperties
	XXL StyleProperties
}

// ParsedClass represents a class with its variant modifiers
type ParsedClass struct {
	Breakpoint     Breakpoint
	BaseClass      string
	ArbitraryValue *ArbitraryValue // For arbitrary values like w-[33%]
	Unsupported    bool            // a variant prefix this parser does not know
}

// ArbitraryValue represents a runtime-parsed arbitrary value
type ArbitraryValue struct {
	Property string // e.g., "w", "bg", "pl"
	Value    string // e.g., "33%", "#1da1f2", "2cm"
}

// ParseClasses parses a class string and returns computed styles.
// Unknown classes are ignored.
// Example: "bg-gray-900 p-4 md:p-8 w-[50%] pl-[1cm]"
func ParseClasses(classStr string) ComputedStyles {
	var computed ComputedStyles

	for _, class := range strings.Fields(classStr) {
		parsed := parseClass(class)
		if parsed.Unsupported {
			continue
		}

		var partial StyleProperties
		if parsed.ArbitraryValue != nil {
			partial = parseArbitraryValue(parsed.ArbitraryValue)
		} else {
			var ok bool
			partial, ok = GetClassMap()[parsed.BaseClass]
			if !ok {
				continue
			}
		}

		target := getTargetProperties(&computed, parsed)
		target.Merge(partial)
	}

	return computed
}

// ParseStrict is ParseClasses but fails on the first class it cannot use.
func ParseStrict(classStr string) (ComputedStyles, error) {
	for _, class := range strings.Fields(classStr) {
		parsed := parseClass(class)
		if parsed.Unsupported {
			return ComputedStyles{}, fmt.Errorf("tw: unsupported variant in %q", class)
		}
		if parsed.ArbitraryValue != nil {
			if parseArbitraryValue(parsed.ArbitraryValue).IsEmpty() {
				return ComputedStyles{}, fmt.Errorf("tw: invalid arbitrary value %q", class)
			}
			continue
		}
		if _, ok := GetClassMap()[parsed.BaseClass]; !ok {
			return ComputedStyles{}, fmt.Errorf("tw: unknown class %q", class)
		}
	}
	return ParseClasses(classStr), nil
}

func getTargetProperties(cs *ComputedStyles, pc ParsedClass) *StyleProperties {
	return cs.variant(pc.Breakpoint)
}

// parseClass splits a class into variant modifiers and base utility
// "md:p-4" → ParsedClass{Breakpoint: MD, BaseClass: "p-4"}
// "w-[33%]" → ParsedClass{ArbitraryValue: {Property: "w", Value: "33%"}}
func parseClass(class string) ParsedClass {
	parts := strings.Split(class, ":")

	pc := ParsedClass{
		Breakpoint: BreakpointBase,
		BaseClass:  parts[len(parts)-1], // Last part is always the base utility
	}

	for i := 0; i < len(parts)-1; i++ {
		switch parts[i] {
		case "sm":
			pc.Breakpoint = BreakpointSM
		case "md":
			pc.Breakpoint = BreakpointMD
		case "lg":
			pc.Breakpoint = BreakpointLG
		case "xl":
			pc.Breakpoint = BreakpointXL
		case "2xl":
			pc.Breakpoint = Breakpoint2XL
		default:
			pc.Unsupported = true
		}
	}

	// Check if base class is an arbitrary value: property-[value]
	if strings.Contains(pc.BaseClass, "[") && strings.HasSuffix(pc.BaseClass, "]") {
		pc.ArbitraryValue = extractArbitraryValue(pc.BaseClass)
		pc.BaseClass = ""
	}

	return pc
}

// extractArbitraryValue parses arbitrary value syntax
// "w-[33%]" → ArbitraryValue{Property: "w", Value: "33%"}
// "bg-[#1da1f2]" → ArbitraryValue{Property: "bg", Value: "#1da1f2"}
func extractArbitraryValue(class string) *ArbitraryValue {
	bracketIdx := strings.Index(class, "[")
	if bracketIdx == -1 {
		return nil
	}

	property := strings.TrimSuffix(class[:bracketIdx], "-")
	value := strings.TrimSuffix(class[bracketIdx+1:], "]")

	return &ArbitraryValue{
		Property: property,
		Value:    value,
	}
}

// parseArbitraryValue converts arbitrary value to StyleProperties at runtime
func parseArbitraryValue(arb *ArbitraryValue) StyleProperties {
	var partial StyleProperties

	switch arb.Property {
	case "w":
		partial.Width = parseDimension(arb.Value)
	case "h":
		partial.Height = parseDimension(arb.Value)

	case "p", "px", "py", "pt", "pr", "pb", "pl":
		d := parseDimension(arb.Value)
		if d == nil {
			break
		}
		top, right, bottom, left := edgesFor(arb.Property[1:])
		if top {
			partial.PaddingTop = d
		}
		if right {
			partial.PaddingRight = d
		}
		if bottom {
			partial.PaddingBottom = d
		}
		if left {
			partial.PaddingLeft = d
		}

	case "m", "mx", "my", "mt", "mr", "mb", "ml":
		d := parseDimension(arb.Value)
		if d == nil {
			break
		}
		top, right, bottom, left := edgesFor(arb.Property[1:])
		if top {
			partial.MarginTop = d
		}
		if right {
			partial.MarginRight = d
		}
		if bottom {
			partial.MarginBottom = d
		}
		if left {
			partial.MarginLeft = d
		}

	case "border", "border-x", "border-y", "border-t", "border-r", "border-b", "border-l":
		d := parseDimension(arb.Value)
		if d == nil {
			break
		}
		top, right, bottom, left := edgesFor(strings.TrimPrefix(strings.TrimPrefix(arb.Property, "border"), "-"))
		if top {
			partial.BorderTop = d
		}
		if right {
			partial.BorderRight = d
		}
		if bottom {
			partial.BorderBottom = d
		}
		if left {
			partial.BorderLeft = d
		}

	case "bg":
		partial.BackgroundColor = parseColor(arb.Value)
	case "text":
		// text-[#fff] is a color, text-[22px] a font size
		if strings.HasPrefix(arb.Value, "#") {
			partial.TextColor = parseColor(arb.Value)
		} else {
			partial.FontSize = parseDimension(arb.Value)
		}
	case "opacity":
		if v := parseFloat(arb.Value); v != nil {
			if *v > 1 {
				*v /= 100
			}
			partial.Opacity = v
		}
	}

	return partial
}

// edgesFor maps a spacing axis suffix ("", "x", "y", "t", "r", "b", "l")
// to the edges it touches.
func edgesFor(axis string) (top, right, bottom, left bool) {
	switch axis {
	case "":
		return true, true, true, true
	case "x":
		return false, true, false, true
	case "y":
		return true, false, true, false
	case "t":
		return true, false, false, false
	case "r":
		return false, true, false, false
	case "b":
		return false, false, true, false
	case "l":
		return false, false, false, true
	}
	return false, false, false, false
}

// ParseDimension parses a dimension literal such as "50%", "12px", "2in",
// "1.5cm", "3mm" or "2rem". A bare number is taken as pixels.
func ParseDimension(value string) (Dimension, bool) {
	d := parseDimension(value)
	if d == nil {
		return Dimension{}, false
	}
	return *d, true
}

// parseDimension parses CSS dimension values (px, %, in, cm, mm, rem)
func parseDimension(value string) *Dimension {
	value = strings.TrimSpace(value)

	var numStr string
	var multiplier float32 = 1.0
	unit := UnitPx

	switch {
	case strings.HasSuffix(value, "px"):
		numStr = strings.TrimSuffix(value, "px")
	case strings.HasSuffix(value, "%"):
		numStr = strings.TrimSuffix(value, "%")
		unit = UnitPercent
	case strings.HasSuffix(value, "in"):
		numStr = strings.TrimSuffix(value, "in")
		unit = UnitIn
	case strings.HasSuffix(value, "cm"):
		numStr = strings.TrimSuffix(value, "cm")
		unit = UnitCm
	case strings.HasSuffix(value, "mm"):
		numStr = strings.TrimSuffix(value, "mm")
		unit = UnitMm
	case strings.HasSuffix(value, "rem"):
		numStr = strings.TrimSuffix(value, "rem")
		multiplier = 16.0 // 1rem = 16px
	case strings.HasSuffix(value, "em"):
		numStr = strings.TrimSuffix(value, "em")
		multiplier = 16.0
	default:
		numStr = value
	}

	num, ok := parseFinite(numStr)
	if !ok {
		return nil
	}
	return &Dimension{Value: num * multiplier, Unit: unit}
}

// ParseColor parses a #RGB, #RRGGBB or #RRGGBBAA literal into 0xRRGGBBAA.
func ParseColor(value string) (uint32, bool) {
	c := parseColor(value)
	if c == nil {
		return 0, false
	}
	return *c, true
}

// parseColor parses color values (#hex)
func parseColor(value string) *uint32 {
	value = strings.TrimSpace(value)
	if !strings.HasPrefix(value, "#") {
		return nil
	}
	hex := value[1:]

	// Expand shorthand: #RGB → #RRGGBB
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return nil
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil
	}
	color := uint32(v)
	return &color
}

// parseFloat parses a float value
func parseFloat(value string) *float32 {
	v, ok := parseFinite(value)
	if !ok {
		return nil
	}
	return &v
}

// parseFinite rejects NaN and infinities, which strconv accepts by name.
func parseFinite(value string) (float32, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 32)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return float32(v), true
}
