package tw

import (
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ThemeFile is the theme.toml layout.
//
//	[breakpoints]
//	md = 800.0
//
//	[spacing]
//	"18" = "72px"
//
//	[colors]
//	brand = "#1da1f2"
//
//	[utilities]
//	card = ["p-4", "bg-gray-800"]
type ThemeFile struct {
	Breakpoints map[string]float32  `toml:"breakpoints"`
	Spacing     map[string]string   `toml:"spacing"`
	Colors      map[string]string   `toml:"colors"`
	Utilities   map[string][]string `toml:"utilities"`
}

// LoadTheme reads a theme.toml from fsys and builds the resulting configuration
// (defaults + overrides). It does not register it; pass the result to SetConfig.
func LoadTheme(fsys fs.FS, path string) (ThemeConfig, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return ThemeConfig{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var file ThemeFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return ThemeConfig{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return BuildTheme(file)
}

// BuildTheme merges a parsed theme file over the framework defaults.
func BuildTheme(file ThemeFile) (ThemeConfig, error) {
	spacing := DefaultSpacing()
	for key, raw := range file.Spacing {
		d := parseDimension(raw)
		if d == nil || d.Unit != UnitPx {
			return ThemeConfig{}, fmt.Errorf("theme: spacing %q: %q is not a pixel value", key, raw)
		}
		spacing[key] = d.Value
	}

	colors := DefaultColors()
	for name, raw := range file.Colors {
		c := parseColor(raw)
		if c == nil {
			return ThemeConfig{}, fmt.Errorf("theme: color %q: invalid value %q", name, raw)
		}
		colors[name] = *c
	}

	breakpoints := DefaultBreakpoints()
	for name, v := range file.Breakpoints {
		if err := breakpoints.Set(name, v); err != nil {
			return ThemeConfig{}, fmt.Errorf("theme: %w", err)
		}
	}

	classMap := BuildClassMap(spacing, colors)

	// Utilities may reference each other; resolve them in name order against
	// the map built so far.
	names := make([]string, 0, len(file.Utilities))
	for name := range file.Utilities {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		var props StyleProperties
		for _, class := range file.Utilities[name] {
			pc := parseClass(class)
			if pc.Unsupported || pc.Breakpoint != BreakpointBase {
				return ThemeConfig{}, fmt.Errorf("theme: utility %q: variants are not allowed (%q)", name, class)
			}
			if pc.ArbitraryValue != nil {
				props.Merge(parseArbitraryValue(pc.ArbitraryValue))
				continue
			}
			partial, ok := classMap[pc.BaseClass]
			if !ok {
				return ThemeConfig{}, fmt.Errorf("theme: utility %q: unknown class %q", name, class)
			}
			props.Merge(partial)
		}
		classMap[strings.TrimSpace(name)] = props
	}

	return ThemeConfig{ClassMap: classMap, Breakpoints: breakpoints}, nil
}
