package region

import (
	"slices"
	"testing"
)

func TestStyleMerge(t *testing.T) {
	merged := DefaultStyle().Merge(HoverStyle())
	if merged[AttrFill] != "#25669e" {
		t.Errorf("fill = %s, want #25669e", merged[AttrFill])
	}
	if merged[AttrStroke] != "#ffffff" {
		t.Errorf("stroke = %s, want #ffffff", merged[AttrStroke])
	}
}

func TestStyleKeys(t *testing.T) {
	want := []string{"fill", "stroke", "stroke-linejoin", "stroke-width"}
	if got := DefaultStyle().Keys(); !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestStyleCloneNil(t *testing.T) {
	var s Style
	if s.Clone() != nil {
		t.Error("Clone() of nil style should be nil")
	}
}
