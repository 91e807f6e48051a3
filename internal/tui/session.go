package tui

import (
	"fmt"

	"github.com/charmbracelet/log"

	"regionmap/internal/region"
)

// Session collects what the renderer's hover callbacks report, for the
// status line.
type Session struct {
	logger  *log.Logger
	current *region.Shape
	enters  int
}

// NewSession returns a session logging hover changes at debug level.
func NewSession(l *log.Logger) *Session {
	if l == nil {
		l = log.Default()
	}
	return &Session{logger: l}
}

// OnEnter is a region.HoverFunc.
func (s *Session) OnEnter(sh *region.Shape, ev *region.PointerEvent) {
	s.current = sh
	s.enters++
	s.logger.Debug("region enter", "id", sh.Region().ID, "kind", sh.Kind(), "index", sh.Index())
}

// OnLeave is a region.HoverFunc.
func (s *Session) OnLeave(sh *region.Shape, ev *region.PointerEvent) {
	if s.current == sh {
		s.current = nil
	}
	s.logger.Debug("region leave", "id", sh.Region().ID, "kind", sh.Kind(), "index", sh.Index())
}

// Current returns the shape under the pointer, if any.
func (s *Session) Current() *region.Shape { return s.current }

// Status describes the hovered outline.
func (s *Session) Status() string {
	if s.current == nil {
		return ""
	}
	reg := s.current.Region()
	name := reg.Name
	if name == "" {
		name = reg.ID
	}
	return fmt.Sprintf("%s (%s)  %s #%d", name, reg.ID, s.current.Kind(), s.current.Index()+1)
}
