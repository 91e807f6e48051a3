// Package region binds region definitions to shapes on a drawing surface and
// keeps the shapes of each region highlighted together while the pointer is
// over any one of them.
package region

// Definition is the immutable input for one region. Paths hold raw path
// commands drawn as given; Polygons hold point sequences such as
// "10,10L20,10L20,20" that are drawn as closed figures.
type Definition struct {
	ID       string   `toml:"id" json:"id"`
	Name     string   `toml:"name" json:"name"`
	Paths    []string `toml:"paths" json:"paths,omitempty"`
	Polygons []string `toml:"polygons" json:"polygons,omitempty"`
}

// Kind tells open outlines from closed ones.
type Kind int

const (
	KindPath Kind = iota
	KindPolygon
)

func (k Kind) String() string {
	if k == KindPolygon {
		return "polygon"
	}
	return "path"
}

// State is the hover state of a region.
type State int

const (
	Normal State = iota
	Highlighted
)

func (s State) String() string {
	if s == Highlighted {
		return "highlighted"
	}
	return "normal"
}

// Region is a rendered definition. Its shape slices are filled once, during
// construction of the renderer, and never change afterwards.
type Region struct {
	ID       string
	Name     string
	Paths    []*Shape
	Polygons []*Shape

	state State
}

// Shapes returns open outlines followed by closed outlines, in draw order
// within each kind.
func (r *Region) Shapes() []*Shape {
	out := make([]*Shape, 0, len(r.Paths)+len(r.Polygons))
	out = append(out, r.Paths...)
	return append(out, r.Polygons...)
}

// State reports whether the region is currently highlighted.
func (r *Region) State() State { return r.state }

// Highlighted is shorthand for State() == Highlighted.
func (r *Region) Highlighted() bool { return r.state == Highlighted }

func (r *Region) apply(st Style, next State) {
	for _, s := range r.Paths {
		s.handle.Attr(st.Clone())
	}
	for _, s := range r.Polygons {
		s.handle.Attr(st.Clone())
	}
	r.state = next
}

// Shape is the renderer's handle on one drawn outline.
type Shape struct {
	handle   Handle
	region   *Region
	kind     Kind
	index    int
	commands string
}

// Region returns the owning region.
func (s *Shape) Region() *Region { return s.region }

// Handle returns the surface handle the shape was drawn as.
func (s *Shape) Handle() Handle { return s.handle }

// Kind reports whether the shape came from an open or a closed outline.
func (s *Shape) Kind() Kind { return s.kind }

// Index is the position of the outline within its definition.
func (s *Shape) Index() int { return s.index }

// Commands returns the command string passed to the surface.
func (s *Shape) Commands() string { return s.commands }
