package region

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// HoverFunc is called after a region has been restyled. shape is the exact
// outline the pointer entered or left.
type HoverFunc func(shape *Shape, ev *PointerEvent)

// Config configures a Renderer. Mount, Width and Height are required; every
// other field has a default.
type Config struct {
	Mount  string
	Width  int
	Height int

	// DefaultStyle defaults to DefaultStyle().
	DefaultStyle Style
	// HoverStyle defaults to HoverStyle().
	HoverStyle Style

	OnHoverEnter HoverFunc
	OnHoverLeave HoverFunc

	// Logger receives draw diagnostics. Defaults to log.Default().
	Logger *log.Logger
}

// Validate checks the required fields.
func (c Config) Validate() error {
	if c.Mount == "" {
		return fmt.Errorf("%w: empty mount", ErrInvalidMount)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	return nil
}

// Renderer owns the surface, the rendered regions and all their shapes.
type Renderer struct {
	surface  Surface
	regions  []*Region
	byID     map[string]*Region
	shapes   []*Shape
	defStyle Style
	hovStyle Style
	onEnter  HoverFunc
	onLeave  HoverFunc
	logger   *log.Logger
	diags    []*DrawError
}

// New opens a surface through b and draws every definition in order with the
// default style. It fails only when the surface cannot be created; outlines
// the surface rejects are skipped and reported by Diagnostics.
func New(b Backend, cfg Config, defs []Definition) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Renderer{
		byID:     make(map[string]*Region, len(defs)),
		defStyle: cfg.DefaultStyle.Clone(),
		hovStyle: cfg.HoverStyle.Clone(),
		onEnter:  cfg.OnHoverEnter,
		onLeave:  cfg.OnHoverLeave,
		logger:   cfg.Logger,
	}
	if r.defStyle == nil {
		r.defStyle = DefaultStyle()
	}
	if r.hovStyle == nil {
		r.hovStyle = HoverStyle()
	}
	if r.logger == nil {
		r.logger = log.Default()
	}

	surface, err := b.Open(SurfaceSpec{
		Mount:     cfg.Mount,
		Width:     cfg.Width,
		Height:    cfg.Height,
		ViewBox:   ViewBox,
		DeviceBox: DeviceBox,
	})
	if err != nil {
		return nil, fmt.Errorf("open surface %q: %w", cfg.Mount, err)
	}
	r.surface = surface

	r.regions = make([]*Region, 0, len(defs))
	for _, d := range defs {
		r.renderRegion(d)
	}
	r.logger.Debug("map rendered", "mount", cfg.Mount, "regions", len(r.regions), "shapes", len(r.shapes), "failed", len(r.diags))
	return r, nil
}

func (r *Renderer) renderRegion(d Definition) {
	reg := &Region{ID: d.ID, Name: d.Name}
	if _, dup := r.byID[d.ID]; dup {
		r.logger.Warn("duplicate region id", "id", d.ID, "name", d.Name)
	} else {
		r.byID[d.ID] = reg
	}
	r.regions = append(r.regions, reg)

	for i, raw := range d.Paths {
		if s := r.draw(reg, KindPath, i, raw); s != nil {
			reg.Paths = append(reg.Paths, s)
		}
	}
	// Closed outlines rely on the surface closing a move-to/line-to figure.
	for i, raw := range d.Polygons {
		if s := r.draw(reg, KindPolygon, i, "M"+raw); s != nil {
			reg.Polygons = append(reg.Polygons, s)
		}
	}
}

func (r *Renderer) draw(reg *Region, kind Kind, index int, cmds string) *Shape {
	h, err := r.surface.Path(cmds)
	if err != nil {
		de := &DrawError{RegionID: reg.ID, Kind: kind, Index: index, Err: err}
		r.diags = append(r.diags, de)
		r.logger.Warn("outline skipped", "region", reg.ID, "kind", kind, "index", index, "err", err)
		return nil
	}
	s := &Shape{handle: h, region: reg, kind: kind, index: index, commands: cmds}
	h.Attr(r.defStyle.Clone())
	h.OnPointerEnter(func(ev *PointerEvent) { r.pointerEnter(s, ev) })
	h.OnPointerLeave(func(ev *PointerEvent) { r.pointerLeave(s, ev) })
	r.shapes = append(r.shapes, s)
	return s
}

func (r *Renderer) pointerEnter(s *Shape, ev *PointerEvent) {
	s.region.apply(r.hovStyle, Highlighted)
	if r.onEnter != nil {
		r.onEnter(s, ev)
	}
}

func (r *Renderer) pointerLeave(s *Shape, ev *PointerEvent) {
	s.region.apply(r.defStyle, Normal)
	if r.onLeave != nil {
		r.onLeave(s, ev)
	}
}

// Regions returns the rendered regions in definition order.
func (r *Renderer) Regions() []*Region {
	out := make([]*Region, len(r.regions))
	copy(out, r.regions)
	return out
}

// Region looks a region up by id. With duplicate ids the first one wins.
func (r *Renderer) Region(id string) (*Region, bool) {
	reg, ok := r.byID[id]
	return reg, ok
}

// Shapes returns every shape in draw order.
func (r *Renderer) Shapes() []*Shape {
	out := make([]*Shape, len(r.shapes))
	copy(out, r.shapes)
	return out
}

// Surface returns the surface the renderer draws on.
func (r *Renderer) Surface() Surface { return r.surface }

// Diagnostics lists outlines that failed to draw.
func (r *Renderer) Diagnostics() []*DrawError {
	out := make([]*DrawError, len(r.diags))
	copy(out, r.diags)
	return out
}

// DefaultStyle returns a copy of the style used for unhovered shapes.
func (r *Renderer) DefaultStyle() Style { return r.defStyle.Clone() }

// HoverStyle returns a copy of the style used for hovered regions.
func (r *Renderer) HoverStyle() Style { return r.hovStyle.Clone() }
