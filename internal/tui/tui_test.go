package tui

import (
	"errors"
	"io"
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"regionmap/internal/pathdata"
	"regionmap/internal/region"
)

var halves = []region.Definition{
	{ID: "W", Name: "West", Polygons: []string{"0,0L567,0L567,620L0,620"}},
	{ID: "E", Name: "East", Paths: []string{"M567,0L1134,0L1134,620L567,620Z"}},
}

func newTestModel(t *testing.T, defs []region.Definition) (Model, *region.Renderer, *Session) {
	t.Helper()
	sess := NewSession(log.New(io.Discard))
	r, err := region.New(Backend{}, region.Config{
		Mount:        "terminal",
		Width:        700,
		Height:       700,
		OnHoverEnter: sess.OnEnter,
		OnHoverLeave: sess.OnLeave,
		Logger:       log.New(io.Discard),
	}, defs)
	if err != nil {
		t.Fatalf("region.New() error: %v", err)
	}
	m := New(r, sess)
	m.width, m.height = 80, 27
	return m, r, sess
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion}
}

func TestOpenRequiresMount(t *testing.T) {
	if _, err := (Backend{}).Open(region.SurfaceSpec{}); !errors.Is(err, region.ErrInvalidMount) {
		t.Errorf("Open() error = %v, want ErrInvalidMount", err)
	}
}

func TestCanvasRejectsMalformedPath(t *testing.T) {
	c := &Canvas{}
	if _, err := c.Path("M0,0L"); err == nil {
		t.Error("Path() accepted malformed commands")
	}
	if len(c.shapes) != 0 {
		t.Errorf("shapes = %d, want 0", len(c.shapes))
	}
}

func TestHitTestTopmost(t *testing.T) {
	c := &Canvas{}
	c.Path("M0,0L100,0L100,100L0,100Z")
	c.Path("M50,50L150,50L150,150L50,150Z")

	tests := []struct {
		p    pathdata.Point
		want int
	}{
		{pathdata.Point{X: 10, Y: 10}, 0},
		{pathdata.Point{X: 75, Y: 75}, 1},
		{pathdata.Point{X: 140, Y: 140}, 1},
		{pathdata.Point{X: 500, Y: 500}, -1},
	}
	for _, tt := range tests {
		got := c.hitTest(tt.p)
		idx := -1
		if got != nil {
			idx = got.idx
		}
		if idx != tt.want {
			t.Errorf("hitTest(%v) = %d, want %d", tt.p, idx, tt.want)
		}
	}
}

func TestViewportRoundTrip(t *testing.T) {
	m := Model{zoom: 1.5, offsetX: 3, offsetY: -2}
	v := m.viewport(80, 24)
	p := v.fromCell(40, 12)
	mx, my := v.toMicro(p)
	if mx != 81 || my != 50 {
		t.Errorf("toMicro(fromCell(40,12)) = %d,%d, want 81,50", mx, my)
	}
}

func TestPointerTracksRegions(t *testing.T) {
	m, r, sess := newTestModel(t, halves)
	west, _ := r.Region("W")
	east, _ := r.Region("E")

	m = m.trackPointer(motion(10, 13))
	if !west.Highlighted() || east.Highlighted() {
		t.Fatalf("after west move: west=%v east=%v", west.State(), east.State())
	}
	if cur := sess.Current(); cur == nil || cur.Region() != west {
		t.Fatalf("session current = %v, want west shape", cur)
	}
	if !strings.Contains(m.status, "West (W)") {
		t.Errorf("status = %q, want west region", m.status)
	}

	m = m.trackPointer(motion(70, 13))
	if west.Highlighted() || !east.Highlighted() {
		t.Fatalf("after east move: west=%v east=%v", west.State(), east.State())
	}
	if got := m.canvas.shapes[0].attrs[region.AttrFill]; got != "#d8d8d8" {
		t.Errorf("west fill = %s, want #d8d8d8", got)
	}
	if got := m.canvas.shapes[1].attrs[region.AttrFill]; got != "#25669e" {
		t.Errorf("east fill = %s, want #25669e", got)
	}

	// header row is outside the map
	m = m.trackPointer(motion(10, 0))
	if west.Highlighted() || east.Highlighted() {
		t.Error("regions still highlighted after leaving the map")
	}
	if sess.Current() != nil {
		t.Error("session still has a current shape")
	}
	if m.status != "" {
		t.Errorf("status = %q, want empty", m.status)
	}
}

func TestPointerEventCarriesViewBoxCoords(t *testing.T) {
	var got *region.PointerEvent
	r, err := region.New(Backend{}, region.Config{
		Mount: "t", Width: 1, Height: 1,
		OnHoverEnter: func(_ *region.Shape, ev *region.PointerEvent) { got = ev },
		Logger:       log.New(io.Discard),
	}, halves)
	if err != nil {
		t.Fatalf("region.New() error: %v", err)
	}
	m := New(r, nil)
	m.width, m.height = 80, 27
	m.trackPointer(motion(70, 13))

	if got == nil {
		t.Fatal("enter callback not called")
	}
	if got.X < 567 || got.X > 1134 || got.Y < 0 || got.Y > 620 {
		t.Errorf("event at %.1f,%.1f, want inside the east half", got.X, got.Y)
	}
	if _, ok := got.Native.(tea.MouseMsg); !ok {
		t.Errorf("Native = %T, want tea.MouseMsg", got.Native)
	}
}

func TestUpdateDispatchesMouse(t *testing.T) {
	m, r, _ := newTestModel(t, halves)
	next, _ := m.Update(motion(10, 13))
	m = next.(Model)
	west, _ := r.Region("W")
	if !west.Highlighted() {
		t.Error("Update did not dispatch pointer-enter")
	}
}

func TestRasterOwners(t *testing.T) {
	m, _, _ := newTestModel(t, halves)
	br := m.raster(20, 6)
	if br.owner[3][2] != 0 || br.m[3][2] == 0 {
		t.Errorf("cell 2,3 owner=%d mask=%x, want west with pixels", br.owner[3][2], br.m[3][2])
	}
	if br.owner[3][17] != 1 || br.m[3][17] == 0 {
		t.Errorf("cell 17,3 owner=%d mask=%x, want east with pixels", br.owner[3][17], br.m[3][17])
	}

	out := m.renderMap(20, 6)
	if n := len(strings.Split(out, "\n")); n != 6 {
		t.Errorf("renderMap lines = %d, want 6", n)
	}
}

func TestOutlineStyle(t *testing.T) {
	tests := []struct {
		name  string
		attrs region.Style
		want  lipgloss.TerminalColor
	}{
		{name: "fill", attrs: region.Style{region.AttrFill: "#25669e", region.AttrStroke: "#ffffff"}, want: lipgloss.Color("#25669e")},
		{name: "stroke only", attrs: region.Style{region.AttrFill: "none", region.AttrStroke: "#ff0000"}, want: lipgloss.Color("#ff0000")},
		{name: "white stroke", attrs: region.Style{region.AttrStroke: "#ffffff"}, want: edgeFg},
		{name: "bare", attrs: region.Style{}, want: edgeFg},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outlineStyle(&shape{attrs: tt.attrs}).GetForeground()
			if got != tt.want {
				t.Errorf("outlineStyle() foreground = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestZoomKeys(t *testing.T) {
	m, _, _ := newTestModel(t, halves)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	m = next.(Model)
	if math.Abs(m.zoom-1.2) > 1e-9 {
		t.Errorf("zoom = %v, want 1.2", m.zoom)
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'0'}})
	m = next.(Model)
	if m.zoom != 1.0 {
		t.Errorf("zoom after reset = %v, want 1", m.zoom)
	}
}

func TestViewRenders(t *testing.T) {
	m, _, _ := newTestModel(t, halves)
	if out := m.View(); !strings.Contains(out, "regionmap") {
		t.Error("View() missing header")
	}
	m.showTable = true
	if out := m.View(); !strings.Contains(out, "West") {
		t.Error("table view missing region name")
	}
}
