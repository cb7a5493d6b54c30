package tw

import "strconv"

// DefaultSpacing is the spacing scale in pixels, keyed by the class suffix
// (p-4 is 16px).
func DefaultSpacing() map[string]float32 {
	spacing := map[string]float32{"px": 1}
	for _, step := range []float32{0, 0.5, 1, 1.5, 2, 2.5, 3, 3.5, 4, 5, 6, 7, 8, 9, 10, 11, 12, 14, 16, 20, 24, 28, 32, 36, 40, 44, 48, 52, 56, 60, 64, 72, 80, 96} {
		spacing[strconv.FormatFloat(float64(step), 'f', -1, 32)] = step * 4
	}
	return spacing
}

// DefaultColors is the built-in palette, keyed by the class suffix
// (bg-gray-800).
func DefaultColors() map[string]uint32 {
	return map[string]uint32{
		"transparent": 0x00000000,
		"black":       0x000000FF,
		"white":       0xFFFFFFFF,
		"magenta":     0xFF00FFFF,
		"gray-100":    0xF3F4F6FF,
		"gray-300":    0xD1D5DBFF,
		"gray-500":    0x6B7280FF,
		"gray-700":    0x374151FF,
		"gray-800":    0x1F2937FF,
		"gray-900":    0x111827FF,
		"red-500":     0xEF4444FF,
		"green-500":   0x22C55EFF,
		"blue-500":    0x3B82F6FF,
		"blue-600":    0x2563EBFF,
		"yellow-400":  0xFACC15FF,
		"fuchsia-500": 0xD946EFFF,
	}
}

var fractions = map[string]float32{
	"1/2":  50,
	"1/3":  100.0 / 3,
	"2/3":  200.0 / 3,
	"1/4":  25,
	"3/4":  75,
	"1/5":  20,
	"2/5":  40,
	"3/5":  60,
	"4/5":  80,
	"full": 100,
}

// ClassMap is the framework default utility table.
var ClassMap = BuildClassMap(DefaultSpacing(), DefaultColors())

// BuildClassMap generates the utility table for a spacing scale and palette.
func BuildClassMap(spacing map[string]float32, colors map[string]uint32) map[string]StyleProperties {
	m := make(map[string]StyleProperties, len(spacing)*20+len(colors)*2+64)

	for key, v := range spacing {
		d := px(v)
		m["p-"+key] = StyleProperties{PaddingTop: d, PaddingRight: d, PaddingBottom: d, PaddingLeft: d}
		m["px-"+key] = StyleProperties{PaddingRight: d, PaddingLeft: d}
		m["py-"+key] = StyleProperties{PaddingTop: d, PaddingBottom: d}
		m["pt-"+key] = StyleProperties{PaddingTop: d}
		m["pr-"+key] = StyleProperties{PaddingRight: d}
		m["pb-"+key] = StyleProperties{PaddingBottom: d}
		m["pl-"+key] = StyleProperties{PaddingLeft: d}

		m["m-"+key] = StyleProperties{MarginTop: d, MarginRight: d, MarginBottom: d, MarginLeft: d}
		m["mx-"+key] = StyleProperties{MarginRight: d, MarginLeft: d}
		m["my-"+key] = StyleProperties{MarginTop: d, MarginBottom: d}
		m["mt-"+key] = StyleProperties{MarginTop: d}
		m["mr-"+key] = StyleProperties{MarginRight: d}
		m["mb-"+key] = StyleProperties{MarginBottom: d}
		m["ml-"+key] = StyleProperties{MarginLeft: d}

		m["w-"+key] = StyleProperties{Width: d}
		m["h-"+key] = StyleProperties{Height: d}
	}

	for key, v := range fractions {
		d := pct(v)
		m["w-"+key] = StyleProperties{Width: d}
		m["h-"+key] = StyleProperties{Height: d}
	}

	for _, w := range []float32{0, 1, 2, 4, 8} {
		d := px(w)
		suffix := "-" + strconv.Itoa(int(w))
		if w == 1 {
			suffix = ""
		}
		m["border"+suffix] = StyleProperties{BorderTop: d, BorderRight: d, BorderBottom: d, BorderLeft: d}
		m["border-x"+suffix] = StyleProperties{BorderRight: d, BorderLeft: d}
		m["border-y"+suffix] = StyleProperties{BorderTop: d, BorderBottom: d}
		m["border-t"+suffix] = StyleProperties{BorderTop: d}
		m["border-r"+suffix] = StyleProperties{BorderRight: d}
		m["border-b"+suffix] = StyleProperties{BorderBottom: d}
		m["border-l"+suffix] = StyleProperties{BorderLeft: d}
	}

	for name, c := range colors {
		color := c
		m["bg-"+name] = StyleProperties{BackgroundColor: &color}
		m["text-"+name] = StyleProperties{TextColor: &color}
	}

	for _, o := range []int{0, 5, 10, 20, 25, 30, 40, 50, 60, 70, 75, 80, 90, 95, 100} {
		v := float32(o) / 100
		m["opacity-"+strconv.Itoa(o)] = StyleProperties{Opacity: &v}
	}

	for _, fs := range []struct {
		name string
		size float32
	}{{"xs", 12}, {"sm", 14}, {"base", 16}, {"lg", 18}, {"xl", 20}, {"2xl", 24}, {"3xl", 30}, {"4xl", 36}} {
		m["text-"+fs.name] = StyleProperties{FontSize: px(fs.size)}
	}

	m["justify-start"] = StyleProperties{AlignH: strPtr("left")}
	m["justify-center"] = StyleProperties{AlignH: strPtr("center")}
	m["justify-end"] = StyleProperties{AlignH: strPtr("right")}
	m["items-start"] = StyleProperties{AlignV: strPtr("top")}
	m["items-center"] = StyleProperties{AlignV: strPtr("center")}
	m["items-end"] = StyleProperties{AlignV: strPtr("bottom")}

	for _, mode := range []string{"visible", "hidden", "scroll"} {
		m["overflow-"+mode] = StyleProperties{OverflowX: strPtr(mode), OverflowY: strPtr(mode)}
		m["overflow-x-"+mode] = StyleProperties{OverflowX: strPtr(mode)}
		m["overflow-y-"+mode] = StyleProperties{OverflowY: strPtr(mode)}
	}

	return m
}

func strPtr(s string) *string { return &s }
