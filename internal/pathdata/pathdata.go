// Package pathdata reads path command strings (M, L, H, V, C, S, Q, T, A, Z in
// absolute and relative form) and flattens them into polylines.
package pathdata

import (
	"fmt"
	"math"
	"strconv"
)

// Point is a position in path coordinates.
type Point struct{ X, Y float64 }

// Segment is one command with its operands, as written.
type Segment struct {
	Cmd  byte
	Args []float64
}

// SyntaxError reports where a command string stopped making sense.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("path data: offset %d: %s", e.Offset, e.Msg)
}

// operand count per command
var arity = map[byte]int{
	'M': 2, 'L': 2, 'H': 1, 'V': 1, 'C': 6, 'S': 4, 'Q': 4, 'T': 2, 'A': 7, 'Z': 0,
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 32
	}
	return c
}

func isSep(c byte) bool {
	return c == ' ' || c == ',' || c == '\t' || c == '\n' || c == '\r'
}

// Parse splits cmds into segments. Repeated operand groups after a command
// become repeated segments; extra pairs after a move-to are line-tos.
func Parse(cmds string) ([]Segment, error) {
	var segs []Segment
	i := 0
	skip := func() {
		for i < len(cmds) && isSep(cmds[i]) {
			i++
		}
	}
	skip()
	if i == len(cmds) {
		return nil, &SyntaxError{Offset: 0, Msg: "empty path"}
	}
	if upper(cmds[i]) != 'M' {
		return nil, &SyntaxError{Offset: i, Msg: "path must start with a move-to"}
	}
	for {
		skip()
		if i == len(cmds) {
			break
		}
		c := cmds[i]
		n, ok := arity[upper(c)]
		if !ok {
			return nil, &SyntaxError{Offset: i, Msg: fmt.Sprintf("unknown command %q", c)}
		}
		i++
		if n == 0 {
			segs = append(segs, Segment{Cmd: c})
			continue
		}
		first := true
		for {
			skip()
			if i == len(cmds) || !startsNumber(cmds[i]) {
				if first {
					return nil, &SyntaxError{Offset: i, Msg: fmt.Sprintf("command %q without operands", c)}
				}
				break
			}
			args := make([]float64, n)
			for k := range n {
				skip()
				read := readNumber
				if upper(c) == 'A' && (k == 3 || k == 4) {
					read = readFlag
				}
				v, next, err := read(cmds, i)
				if err != nil {
					return nil, err
				}
				args[k] = v
				i = next
			}
			cmd := c
			if !first && upper(c) == 'M' {
				// implicit line-to keeps the relative/absolute case
				cmd = c - 1
			}
			segs = append(segs, Segment{Cmd: cmd, Args: args})
			first = false
		}
	}
	return segs, nil
}

func startsNumber(c byte) bool {
	return (c >= '0' && c <= '9') || c == '-' || c == '+' || c == '.'
}

// readFlag reads an arc flag, a single 0 or 1 that needs no separator
// from what follows ("a5,5 0 01 10,10").
func readFlag(s string, i int) (float64, int, error) {
	if i < len(s) && (s[i] == '0' || s[i] == '1') {
		return float64(s[i] - '0'), i + 1, nil
	}
	return 0, i, &SyntaxError{Offset: i, Msg: "expected arc flag"}
}

func readNumber(s string, i int) (float64, int, error) {
	start := i
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	digits, dot := 0, false
mantissa:
	for i < len(s) {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			digits++
		case c == '.' && !dot:
			dot = true
		default:
			break mantissa
		}
		i++
	}
	if digits == 0 {
		return 0, start, &SyntaxError{Offset: start, Msg: "expected number"}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '-' || s[j] == '+') {
			j++
		}
		k := j
		for k < len(s) && s[k] >= '0' && s[k] <= '9' {
			k++
		}
		if k > j {
			i = k
		}
	}
	v, err := strconv.ParseFloat(s[start:i], 64)
	if err != nil {
		return 0, start, &SyntaxError{Offset: start, Msg: err.Error()}
	}
	return v, i, nil
}

// curveSteps is the number of chords used per curve segment.
const curveSteps = 8

// Flatten converts segments into absolute polylines, one per subpath. A
// subpath ends at the next move-to or close-path; close-path appends the start
// point, and drawing on after it opens a new subpath at that point.
func Flatten(segs []Segment) [][]Point {
	var out [][]Point
	var cur []Point
	var pos, start, ctrl Point
	var prev byte

	flush := func() {
		if len(cur) > 0 {
			out = append(out, cur)
		}
		cur = nil
	}
	for _, sg := range segs {
		a := sg.Args
		rel := sg.Cmd >= 'a'
		abs := func(x, y float64) Point {
			if rel {
				return Point{pos.X + x, pos.Y + y}
			}
			return Point{x, y}
		}
		if cur == nil && upper(sg.Cmd) != 'M' && upper(sg.Cmd) != 'Z' {
			cur = []Point{pos}
		}
		switch upper(sg.Cmd) {
		case 'M':
			flush()
			pos = abs(a[0], a[1])
			start = pos
			cur = []Point{pos}
		case 'L', 'T':
			p := abs(a[len(a)-2], a[len(a)-1])
			if upper(sg.Cmd) == 'T' {
				c := reflect(ctrl, pos, prev, 'Q', 'T')
				cur = append(cur, quad(pos, c, p)...)
				ctrl = c
			} else {
				cur = append(cur, p)
			}
			pos = p
		case 'H':
			x := a[0]
			if rel {
				x += pos.X
			}
			pos = Point{x, pos.Y}
			cur = append(cur, pos)
		case 'V':
			y := a[0]
			if rel {
				y += pos.Y
			}
			pos = Point{pos.X, y}
			cur = append(cur, pos)
		case 'C':
			c1, c2, p := abs(a[0], a[1]), abs(a[2], a[3]), abs(a[4], a[5])
			cur = append(cur, cubic(pos, c1, c2, p)...)
			ctrl, pos = c2, p
		case 'S':
			c1 := reflect(ctrl, pos, prev, 'C', 'S')
			c2, p := abs(a[0], a[1]), abs(a[2], a[3])
			cur = append(cur, cubic(pos, c1, c2, p)...)
			ctrl, pos = c2, p
		case 'Q':
			c, p := abs(a[0], a[1]), abs(a[2], a[3])
			cur = append(cur, quad(pos, c, p)...)
			ctrl, pos = c, p
		case 'A':
			pos = abs(a[5], a[6])
			cur = append(cur, pos)
		case 'Z':
			if len(cur) > 0 && cur[len(cur)-1] != start {
				cur = append(cur, start)
			}
			flush()
			pos = start
		}
		prev = upper(sg.Cmd)
	}
	flush()
	return out
}

func reflect(ctrl, pos Point, prev, a, b byte) Point {
	if prev != a && prev != b {
		return pos
	}
	return Point{2*pos.X - ctrl.X, 2*pos.Y - ctrl.Y}
}

func cubic(p0, p1, p2, p3 Point) []Point {
	pts := make([]Point, 0, curveSteps)
	for i := 1; i <= curveSteps; i++ {
		t := float64(i) / curveSteps
		u := 1 - t
		pts = append(pts, Point{
			X: u*u*u*p0.X + 3*u*u*t*p1.X + 3*u*t*t*p2.X + t*t*t*p3.X,
			Y: u*u*u*p0.Y + 3*u*u*t*p1.Y + 3*u*t*t*p2.Y + t*t*t*p3.Y,
		})
	}
	return pts
}

func quad(p0, p1, p2 Point) []Point {
	pts := make([]Point, 0, curveSteps)
	for i := 1; i <= curveSteps; i++ {
		t := float64(i) / curveSteps
		u := 1 - t
		pts = append(pts, Point{
			X: u*u*p0.X + 2*u*t*p1.X + t*t*p2.X,
			Y: u*u*p0.Y + 2*u*t*p1.Y + t*t*p2.Y,
		})
	}
	return pts
}

// Bounds returns the bounding box of all polylines. ok is false when there
// are no points.
func Bounds(lines [][]Point) (minPt, maxPt Point, ok bool) {
	minPt = Point{math.Inf(1), math.Inf(1)}
	maxPt = Point{math.Inf(-1), math.Inf(-1)}
	for _, l := range lines {
		for _, p := range l {
			minPt.X = math.Min(minPt.X, p.X)
			minPt.Y = math.Min(minPt.Y, p.Y)
			maxPt.X = math.Max(maxPt.X, p.X)
			maxPt.Y = math.Max(maxPt.Y, p.Y)
			ok = true
		}
	}
	return minPt, maxPt, ok
}

// Contains reports whether p is inside the closed polylines using the
// even-odd rule.
func Contains(lines [][]Point, p Point) bool {
	in := false
	for _, ring := range lines {
		n := len(ring)
		for i := range n {
			a, b := ring[i], ring[(i+1)%n]
			if (a.Y > p.Y) != (b.Y > p.Y) {
				x := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
				if p.X < x {
					in = !in
				}
			}
		}
	}
	return in
}
