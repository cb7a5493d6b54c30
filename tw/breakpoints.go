package tw

import "fmt"

// BreakpointConfig holds the minimum surface width, in pixels, at which each
// responsive prefix starts to apply. Variants stack upwards: a width that
// reaches md also gets the sm styles.
type BreakpointConfig struct {
	SM  float32 `toml:"sm"`
	MD  float32 `toml:"md"`
	LG  float32 `toml:"lg"`
	XL  float32 `toml:"xl"`
	XXL float32 `toml:"2xl"`
}

// DefaultBreakpoints returns 640, 768, 1024, 1280 and 1536.
func DefaultBreakpoints() BreakpointConfig {
	return BreakpointConfig{SM: 640, MD: 768, LG: 1024, XL: 1280, XXL: 1536}
}

// thresholds lists the prefixes in ascending order with their minimum width.
func (c BreakpointConfig) thresholds() [5]struct {
	bp    Breakpoint
	width float32
} {
	return [5]struct {
		bp    Breakpoint
		width float32
	}{
		{BreakpointSM, c.SM},
		{BreakpointMD, c.MD},
		{BreakpointLG, c.LG},
		{BreakpointXL, c.XL},
		{Breakpoint2XL, c.XXL},
	}
}

// Set assigns the threshold named by a theme key: sm, md, lg, xl or 2xl.
func (c *BreakpointConfig) Set(name string, width float32) error {
	switch name {
	case "sm":
		c.SM = width
	case "md":
		c.MD = width
	case "lg":
		c.LG = width
	case "xl":
		c.XL = width
	case "2xl":
		c.XXL = width
	default:
		return fmt.Errorf("unknown breakpoint %q", name)
	}
	return nil
}

// ActiveBreakpoint returns the largest prefix whose threshold width reaches,
// or BreakpointBase below sm.
func (c BreakpointConfig) ActiveBreakpoint(width float32) Breakpoint {
	active := BreakpointBase
	for _, t := range c.thresholds() {
		if width >= t.width {
			active = t.bp
		}
	}
	return active
}

// variant returns the styles recorded under bp.
func (cs *ComputedStyles) variant(bp Breakpoint) *StyleProperties {
	switch bp {
	case BreakpointSM:
		return &cs.SM
	case BreakpointMD:
		return &cs.MD
	case BreakpointLG:
		return &cs.LG
	case BreakpointXL:
		return &cs.XL
	case Breakpoint2XL:
		return &cs.XXL
	default:
		return &cs.Base
	}
}

// ResolveForWidth starts from the base styles and layers every variant whose
// threshold width reaches, smallest first. Unset properties of a variant
// leave earlier values in place.
func (cs *ComputedStyles) ResolveForWidth(width float32, config BreakpointConfig) StyleProperties {
	result := cs.Base
	for _, t := range config.thresholds() {
		if width >= t.width {
			mergeStyleProperties(&result, cs.variant(t.bp))
		}
	}
	return result
}
