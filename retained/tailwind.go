package retained

import "github.com/agiangrant/nucleus/tw"

// SetClasses styles the widget from a class string. The classes are parsed
// once; every layout pass rebuilds Style from DefaultStyle plus the classes
// active for the surface width, so direct Style edits on a class-styled widget
// do not survive the next layout.
func (w *Widget) SetClasses(classes string) *Widget {
	w.classes = classes
	if classes == "" {
		w.computed = nil
		return w
	}
	styles := tw.ParseClasses(classes)
	w.computed = &styles
	return w
}

// Classes returns the class string set with SetClasses.
func (w *Widget) Classes() string {
	return w.classes
}

// applyClasses rebuilds Style for the given surface width. It returns the
// resolved properties so containers can pick up overflow settings.
func (w *Widget) applyClasses(width float32, bp tw.BreakpointConfig) (tw.StyleProperties, bool) {
	if w.computed == nil {
		return tw.StyleProperties{}, false
	}
	props := w.computed.ResolveForWidth(width, bp)
	style := DefaultStyle()
	style.Apply(props)
	w.Style = style
	return props, true
}

// Apply overrides the fields of s that are set in props.
func (s *Style) Apply(props tw.StyleProperties) {
	if props.BackgroundColor != nil {
		s.Background = ColorFromRGBA(*props.BackgroundColor)
	}
	if props.TextColor != nil {
		s.Foreground = ColorFromRGBA(*props.TextColor)
	}
	if props.Opacity != nil {
		s.SetOpacity(*props.Opacity)
	}
	if props.FontSize != nil {
		s.FontSize = lengthFromDimension(*props.FontSize)
	}

	applyEdge(&s.Padding.Top, props.PaddingTop)
	applyEdge(&s.Padding.Right, props.PaddingRight)
	applyEdge(&s.Padding.Bottom, props.PaddingBottom)
	applyEdge(&s.Padding.Left, props.PaddingLeft)
	applyEdge(&s.Margin.Top, props.MarginTop)
	applyEdge(&s.Margin.Right, props.MarginRight)
	applyEdge(&s.Margin.Bottom, props.MarginBottom)
	applyEdge(&s.Margin.Left, props.MarginLeft)
	applyEdge(&s.Border.Top, props.BorderTop)
	applyEdge(&s.Border.Right, props.BorderRight)
	applyEdge(&s.Border.Bottom, props.BorderBottom)
	applyEdge(&s.Border.Left, props.BorderLeft)
	applyEdge(&s.Width, props.Width)
	applyEdge(&s.Height, props.Height)

	if props.AlignH != nil {
		switch *props.AlignH {
		case "center":
			s.AlignH = AlignCenter
		case "right":
			s.AlignH = AlignRight
		default:
			s.AlignH = AlignLeft
		}
	}
	if props.AlignV != nil {
		switch *props.AlignV {
		case "center":
			s.AlignV = AlignMiddle
		case "bottom":
			s.AlignV = AlignBottom
		default:
			s.AlignV = AlignTop
		}
	}
}

func applyEdge(dst *Length, d *tw.Dimension) {
	if d != nil {
		*dst = lengthFromDimension(*d)
	}
}

// StyleFromClasses builds a Style from classes as they apply at the given
// surface width.
func StyleFromClasses(classes string, width float32) Style {
	styles := tw.ParseClasses(classes)
	style := DefaultStyle()
	style.Apply(styles.ResolveForWidth(width, tw.GetBreakpoints()))
	return style
}
