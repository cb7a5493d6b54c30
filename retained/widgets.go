package retained

// ImageHandle is a decoded or decodable image owned by the resource layer.
type ImageHandle interface {
	Name() string
	// Size returns the intrinsic size in pixels.
	Size() (width, height int)
}

// FontHandle is a loaded font owned by the resource layer.
type FontHandle interface {
	Name() string
	Family() string
}

// ResourceProvider resolves resource names to handles.
type ResourceProvider interface {
	Image(name string) (ImageHandle, bool)
	Font(name string) (FontHandle, bool)
}

// WidgetImage draws an image into its content box. With only one of
// Style.Width and Style.Height set, the layout pass keeps the aspect ratio.
type WidgetImage struct {
	Widget

	image ImageHandle
}

// NewImage creates a detached image widget.
func NewImage(id string, img ImageHandle) *WidgetImage {
	w := &WidgetImage{image: img}
	w.init(w, id)
	return w
}

// NewImageIn creates an image widget and attaches it to parent.
func NewImageIn(parent Element, id string, img ImageHandle) (*WidgetImage, error) {
	w := NewImage(id, img)
	if err := Attach(parent, w); err != nil {
		return nil, err
	}
	return w, nil
}

// Image returns the current handle, possibly nil.
func (w *WidgetImage) Image() ImageHandle { return w.image }

// SetImage replaces the image handle.
func (w *WidgetImage) SetImage(img ImageHandle) *WidgetImage {
	w.image = img
	return w
}

// intrinsic returns the image size in pixels, zero without an image.
func (w *WidgetImage) intrinsic() (float32, float32) {
	if w.image == nil {
		return 0, 0
	}
	iw, ih := w.image.Size()
	return float32(iw), float32(ih)
}

// WidgetText draws a run of text with a font at Style.FontSize.
type WidgetText struct {
	Widget

	font FontHandle
	text string
}

// DefaultFontSize applies when Style.FontSize is undefined.
var DefaultFontSize = Px(16)

// lineHeight is the line box height as a multiple of the font size.
const lineHeight = 1.25

// NewText creates a detached text widget.
func NewText(id string, font FontHandle, text string) *WidgetText {
	w := &WidgetText{font: font, text: text}
	w.init(w, id)
	return w
}

// NewTextIn creates a text widget and attaches it to parent.
func NewTextIn(parent Element, id string, font FontHandle, text string) (*WidgetText, error) {
	w := NewText(id, font, text)
	if err := Attach(parent, w); err != nil {
		return nil, err
	}
	return w, nil
}

// Text returns the displayed text.
func (w *WidgetText) Text() string { return w.text }

// SetText replaces the displayed text.
func (w *WidgetText) SetText(text string) *WidgetText {
	w.text = text
	return w
}

// Font returns the font handle, possibly nil.
func (w *WidgetText) Font() FontHandle { return w.font }

// SetFont replaces the font handle.
func (w *WidgetText) SetFont(font FontHandle) *WidgetText {
	w.font = font
	return w
}

// fontSize returns the font size as a fraction of the surface height.
func (w *WidgetText) fontSize(s Surface) float32 {
	size := w.Style.FontSize
	if !size.IsDefined() {
		size = DefaultFontSize
	}
	return s.ResolveY(size)
}

// lines counts the text lines, at least one.
func (w *WidgetText) lines() int {
	n := 1
	for _, r := range w.text {
		if r == '\n' {
			n++
		}
	}
	return n
}
