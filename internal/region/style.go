package region

import (
	"maps"
	"slices"
)

// Attribute names understood by every surface.
const (
	AttrFill           = "fill"
	AttrStroke         = "stroke"
	AttrStrokeWidth    = "stroke-width"
	AttrStrokeLinejoin = "stroke-linejoin"
)

// Style maps visual attribute names to values. Treat it as immutable: the
// renderer keeps private copies and hands out copies.
type Style map[string]string

// DefaultStyle is applied to every shape at render time and on pointer-leave.
func DefaultStyle() Style {
	return Style{
		AttrFill:           "#d8d8d8",
		AttrStroke:         "#ffffff",
		AttrStrokeWidth:    "1",
		AttrStrokeLinejoin: "round",
	}
}

// HoverStyle is applied to all shapes of a region on pointer-enter.
func HoverStyle() Style {
	return Style{AttrFill: "#25669e"}
}

// Clone returns a copy that shares nothing with s.
func (s Style) Clone() Style {
	if s == nil {
		return nil
	}
	return maps.Clone(s)
}

// Get returns the value of attribute name.
func (s Style) Get(name string) (string, bool) {
	v, ok := s[name]
	return v, ok
}

// Keys returns the attribute names in sorted order.
func (s Style) Keys() []string {
	return slices.Sorted(maps.Keys(s))
}

// Merge returns a new style holding s overlaid with o.
func (s Style) Merge(o Style) Style {
	out := make(Style, len(s)+len(o))
	maps.Copy(out, s)
	maps.Copy(out, o)
	return out
}
