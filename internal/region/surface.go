package region

// Fixed coordinate contract of every map: logical units of the viewbox are
// scaled into the device box.
const (
	ViewBox   = "0 0 1134 620"
	DeviceBox = "700 700"

	ViewBoxWidth  = 1134
	ViewBoxHeight = 620
)

// SurfaceSpec describes the surface a renderer asks its backend to create.
type SurfaceSpec struct {
	Mount     string
	Width     int
	Height    int
	ViewBox   string
	DeviceBox string
}

// PointerEvent is delivered by a surface when the pointer crosses a shape
// boundary. X and Y are in viewbox units; Native carries the surface's own
// event value, if any.
type PointerEvent struct {
	X, Y   float64
	Native any
}

// PointerFunc handles pointer events for one handle.
type PointerFunc func(ev *PointerEvent)

// Backend creates drawing surfaces.
type Backend interface {
	Open(spec SurfaceSpec) (Surface, error)
}

// Surface draws paths. Path returns an error when it cannot parse cmds.
type Surface interface {
	Path(cmds string) (Handle, error)
}

// Handle is the surface's reference to one drawn path.
type Handle interface {
	// Attr applies st to the path and returns the handle for chaining.
	Attr(st Style) Handle
	OnPointerEnter(fn PointerFunc)
	OnPointerLeave(fn PointerFunc)
}
