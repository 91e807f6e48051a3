package svg

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"strings"

	"regionmap/internal/region"
)

// ErrNotSVG is returned when a renderer was not built on an SVG surface.
var ErrNotSVG = errors.New("renderer does not draw on an svg surface")

const hoverScript = `
    (function () {
      var root = document.getElementById(%q);
      var styles = %s;
      function paint(idx, st) {
        root.querySelectorAll('path[data-region="' + idx + '"]').forEach(function (p) {
          Object.keys(st).forEach(function (k) { p.setAttribute(k, st[k]); });
        });
      }
      root.querySelectorAll('path[data-region]').forEach(function (p) {
        p.addEventListener('mouseenter', function () {
          paint(p.dataset.region, styles.hover);
          root.dispatchEvent(new CustomEvent('regionenter', { detail: { id: p.dataset.id, name: p.dataset.name, path: p.id } }));
        });
        p.addEventListener('mouseleave', function () {
          paint(p.dataset.region, styles.normal);
          root.dispatchEvent(new CustomEvent('regionleave', { detail: { id: p.dataset.id, name: p.dataset.name, path: p.id } }));
        });
      });
    })();`

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
  body { margin: 0; font-family: sans-serif; }
  #status { padding: 4px 8px; color: #6b7280; min-height: 1.2em; }
  path[data-region] { cursor: pointer; }
</style>
</head>
<body>
<div id="status"></div>
%s
<script>%s
    document.getElementById(%q).addEventListener('regionenter', function (e) {
      document.getElementById('status').textContent = e.detail.name || e.detail.id;
    });
    document.getElementById(%q).addEventListener('regionleave', function () {
      document.getElementById('status').textContent = '';
    });
</script>
</body>
</html>
`

// WriteSVG writes the current state of r's surface as a standalone SVG.
func WriteSVG(w io.Writer, r *region.Renderer) error {
	s, ok := r.Surface().(*Surface)
	if !ok {
		return ErrNotSVG
	}
	var buf bytes.Buffer
	writeSVG(&buf, s, r)
	_, err := w.Write(buf.Bytes())
	return err
}

// WriteHTML writes a page embedding the SVG and a script that repeats the
// renderer's hover behavior in the browser.
func WriteHTML(w io.Writer, r *region.Renderer, title string) error {
	s, ok := r.Surface().(*Surface)
	if !ok {
		return ErrNotSVG
	}
	var doc bytes.Buffer
	writeSVG(&doc, s, r)

	styles, err := json.Marshal(map[string]region.Style{
		"normal": r.DefaultStyle(),
		"hover":  r.HoverStyle(),
	})
	if err != nil {
		return fmt.Errorf("encode styles: %w", err)
	}
	mount := s.spec.Mount
	script := fmt.Sprintf(hoverScript, mount, styles)
	_, err = fmt.Fprintf(w, pageTemplate, html.EscapeString(title), doc.String(), script, mount, mount)
	return err
}

// writeSVG tags each path with its region's position in r.Regions() as
// data-region, so regions sharing an id still highlight on their own.
func writeSVG(buf *bytes.Buffer, s *Surface, r *region.Renderer) {
	owner := make(map[region.Handle]*region.Shape, len(r.Shapes()))
	for _, sh := range r.Shapes() {
		owner[sh.Handle()] = sh
	}
	index := make(map[*region.Region]int, len(r.Regions()))
	for i, reg := range r.Regions() {
		index[reg] = i
	}

	dw, dh := deviceSize(s.spec.DeviceBox)
	fmt.Fprintf(buf, `<svg xmlns="http://www.w3.org/2000/svg" id="%s" width="%d" height="%d">`+"\n",
		html.EscapeString(s.spec.Mount), s.spec.Width, s.spec.Height)
	fmt.Fprintf(buf, `  <svg viewBox="%s" width="%s" height="%s">`+"\n", s.spec.ViewBox, dw, dh)
	for _, p := range s.paths {
		buf.WriteString(`    <path id="` + html.EscapeString(p.id) + `" d="` + html.EscapeString(p.d) + `"`)
		for _, k := range p.attrs.Keys() {
			if !attrName(k) {
				continue
			}
			fmt.Fprintf(buf, ` %s="%s"`, k, html.EscapeString(p.attrs[k]))
		}
		if sh, ok := owner[region.Handle(p)]; ok {
			reg := sh.Region()
			fmt.Fprintf(buf, ` data-region="%d" data-id="%s" data-name="%s" data-kind="%s"`,
				index[reg], html.EscapeString(reg.ID), html.EscapeString(reg.Name), sh.Kind())
		}
		buf.WriteString("/>\n")
	}
	buf.WriteString("  </svg>\n</svg>\n")
}

// attrName reports whether k can be written as an XML attribute name.
// Style keys outside that set are dropped from the document.
func attrName(k string) bool {
	if k == "" {
		return false
	}
	for i, c := range k {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_', c == ':':
		case i > 0 && (c >= '0' && c <= '9' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return true
}

func deviceSize(box string) (string, string) {
	f := strings.Fields(box)
	if len(f) != 2 {
		return "100%", "100%"
	}
	return f[0], f[1]
}
