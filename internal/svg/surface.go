// Package svg is a drawing surface that keeps paths in memory and writes them
// out as an SVG document or a self-contained HTML page.
package svg

import (
	"fmt"
	"maps"
	"slices"

	"regionmap/internal/pathdata"
	"regionmap/internal/region"
)

// Backend opens SVG surfaces. When Mounts is non-empty, only those mount ids
// resolve.
type Backend struct {
	Mounts []string
}

// Open implements region.Backend.
func (b Backend) Open(spec region.SurfaceSpec) (region.Surface, error) {
	if spec.Mount == "" {
		return nil, fmt.Errorf("%w: empty mount", region.ErrInvalidMount)
	}
	if len(b.Mounts) > 0 && !slices.Contains(b.Mounts, spec.Mount) {
		return nil, fmt.Errorf("%w: %q not found", region.ErrInvalidMount, spec.Mount)
	}
	return &Surface{spec: spec}, nil
}

// Surface collects drawn paths in draw order.
type Surface struct {
	spec  region.SurfaceSpec
	paths []*Path
}

// Spec returns the parameters the surface was opened with.
func (s *Surface) Spec() region.SurfaceSpec { return s.spec }

// Path implements region.Surface. Command strings that do not parse are
// rejected.
func (s *Surface) Path(cmds string) (region.Handle, error) {
	if _, err := pathdata.Parse(cmds); err != nil {
		return nil, err
	}
	p := &Path{id: fmt.Sprintf("%s-path-%d", s.spec.Mount, len(s.paths)), d: cmds, attrs: region.Style{}}
	s.paths = append(s.paths, p)
	return p, nil
}

// Paths returns the drawn paths, bottom first.
func (s *Surface) Paths() []*Path {
	return slices.Clone(s.paths)
}

// Path is one <path> element.
type Path struct {
	id    string
	d     string
	attrs region.Style
	enter []region.PointerFunc
	leave []region.PointerFunc
}

// Attr merges st into the element's attributes.
func (p *Path) Attr(st region.Style) region.Handle {
	maps.Copy(p.attrs, st)
	return p
}

func (p *Path) OnPointerEnter(fn region.PointerFunc) { p.enter = append(p.enter, fn) }
func (p *Path) OnPointerLeave(fn region.PointerFunc) { p.leave = append(p.leave, fn) }

// Enter replays a pointer-enter on the element.
func (p *Path) Enter(ev *region.PointerEvent) {
	for _, fn := range p.enter {
		fn(ev)
	}
}

// Leave replays a pointer-leave on the element.
func (p *Path) Leave(ev *region.PointerEvent) {
	for _, fn := range p.leave {
		fn(ev)
	}
}

// ID is the element id.
func (p *Path) ID() string { return p.id }

// D is the path data attribute.
func (p *Path) D() string { return p.d }

// Attrs returns a copy of the current attributes.
func (p *Path) Attrs() region.Style { return p.attrs.Clone() }
