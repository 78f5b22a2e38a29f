package main

import (
	"fmt"
	"strings"
	"time"

	"sceneview/editor"
	"sceneview/renderer"
)

// statusLine builds the window title from editor and renderer state.
type statusLine struct {
	parts []string

	frames   int
	since    time.Time
	fps      float64
	interval time.Duration
}

func newStatusLine() *statusLine {
	return &statusLine{since: time.Now(), interval: 500 * time.Millisecond}
}

// tick counts a frame and reports whether the title should be refreshed.
func (s *statusLine) tick(now time.Time) bool {
	s.frames++
	elapsed := now.Sub(s.since)
	if elapsed < s.interval {
		return false
	}
	s.fps = float64(s.frames) / elapsed.Seconds()
	s.frames = 0
	s.since = now
	return true
}

func (s *statusLine) add(format string, args ...any) {
	s.parts = append(s.parts, fmt.Sprintf(format, args...))
}

func (s *statusLine) text(base string, ed *editor.Editor, stats renderer.Stats) string {
	s.parts = s.parts[:0]
	s.add("%s", base)
	s.add("%s", ed.Pipeline)
	s.add("%s", ed.Mode)
	if ent := ed.Selection.Entity(ed.Scene); ent != nil {
		s.add("selected %s (%d)", ent.Name, ent.ObjectID)
	} else if ed.Selection.HasSelection() {
		s.add("selected %#x", ed.Selection.ID)
	}
	s.add("%d/%d drawn", stats.Drawn, stats.Entities)
	s.add("%.0f fps", s.fps)
	if ed.StatusText != "" {
		s.add("%s", ed.StatusText)
	}
	return strings.Join(s.parts, " | ")
}
