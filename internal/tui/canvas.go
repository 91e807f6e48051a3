package tui

import (
	"fmt"
	"maps"

	"regionmap/internal/pathdata"
	"regionmap/internal/region"
)

// Backend opens terminal canvases.
type Backend struct{}

// Open implements region.Backend.
func (Backend) Open(spec region.SurfaceSpec) (region.Surface, error) {
	if spec.Mount == "" {
		return nil, fmt.Errorf("%w: empty mount", region.ErrInvalidMount)
	}
	return &Canvas{spec: spec}, nil
}

// Canvas holds flattened outlines in viewbox units, bottom first.
type Canvas struct {
	spec   region.SurfaceSpec
	shapes []*shape
}

// Path implements region.Surface.
func (c *Canvas) Path(cmds string) (region.Handle, error) {
	segs, err := pathdata.Parse(cmds)
	if err != nil {
		return nil, err
	}
	sh := &shape{idx: len(c.shapes), lines: pathdata.Flatten(segs), attrs: region.Style{}}
	c.shapes = append(c.shapes, sh)
	return sh, nil
}

// hitTest returns the topmost shape whose outline contains p.
func (c *Canvas) hitTest(p pathdata.Point) *shape {
	for i := len(c.shapes) - 1; i >= 0; i-- {
		if pathdata.Contains(c.shapes[i].lines, p) {
			return c.shapes[i]
		}
	}
	return nil
}

type shape struct {
	idx   int
	lines [][]pathdata.Point
	attrs region.Style
	enter region.PointerFunc
	leave region.PointerFunc
}

func (s *shape) Attr(st region.Style) region.Handle {
	maps.Copy(s.attrs, st)
	return s
}

func (s *shape) OnPointerEnter(fn region.PointerFunc) { s.enter = fn }
func (s *shape) OnPointerLeave(fn region.PointerFunc) { s.leave = fn }

func (s *shape) fireEnter(ev *region.PointerEvent) {
	if s.enter != nil {
		s.enter(ev)
	}
}

func (s *shape) fireLeave(ev *region.PointerEvent) {
	if s.leave != nil {
		s.leave(ev)
	}
}

func (s *shape) fill() string {
	if v, ok := s.attrs[region.AttrFill]; ok && v != "none" {
		return v
	}
	return ""
}

func (s *shape) stroked() bool {
	w, ok := s.attrs[region.AttrStrokeWidth]
	return ok && w != "0" && s.attrs[region.AttrStroke] != "none"
}
