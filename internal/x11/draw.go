package x11

import (
	"time"

	"github.com/makeafish/xfish/internal/geometry"
)

// Defaults for a draw invocation, matching the classic window.
const (
	DefaultWidth  = 520
	DefaultHeight = 320
	DefaultTitle  = "X11:11 makeafish"
	DefaultPace   = 7 * time.Millisecond
)

// Options configure one draw invocation. Zero values fall back to the
// package defaults.
type Options struct {
	Width  uint16
	Height uint16
	Title  string
	Pace   time.Duration
}

func (o Options) withDefaults() Options {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Pace == 0 {
		o.Pace = DefaultPace
	}
	return o
}

// Draw connects to the X server at address, shows a window and renders set on
// exposure, returning when the window manager requests a close or the session
// fails. The connection is torn down on every path.
func Draw(address string, set geometry.DrawingSet, opts Options) error {
	opts = opts.withDefaults()

	s, err := Connect(address)
	if err != nil {
		return err
	}
	defer s.Close()

	win, gc, err := s.CreateWindow(opts.Width, opts.Height, opts.Title)
	if err != nil {
		return err
	}

	// The window and its properties must reach the server before we start
	// waiting for events.
	s.Conn.Sync()

	return NewRenderer(s, win, gc, set, opts.Pace).Run()
}
