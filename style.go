package textinput

// TextStyle is the styling hook consumed by the render collaborator. Colors
// are packed RGBA (0xRRGGBBAA), matching the engine-side color format.
type TextStyle struct {
	FontSize   float32
	Color      uint32
	FontFamily string // theme key ("sans", "mono", ...) or empty for default
}

// defaultPlaceholderColor is a mid gray, used when no placeholder style is
// configured.
const defaultPlaceholderColor uint32 = 0x9b9b9bff

// DefaultTextStyle returns the widget's fallback style.
func DefaultTextStyle() TextStyle {
	return TextStyle{
		FontSize: 14,
		Color:    0xffffffff,
	}
}

// DefaultPlaceholderStyle derives the placeholder style from a base style:
// same font, grayed out.
func DefaultPlaceholderStyle(base TextStyle) TextStyle {
	base.Color = defaultPlaceholderColor
	return base
}
