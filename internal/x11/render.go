package x11

import (
	"fmt"
	"log"
	"time"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/makeafish/xfish/internal/geometry"
)

// protoConn is the slice of the X connection the render loop touches. The
// only implementation outside tests wraps *xgb.Conn.
type protoConn interface {
	WaitForEvent() (xgb.Event, xgb.Error)
	// PolyLine issues a checked connected-line draw and waits for the server
	// to accept it, which doubles as the per-stroke flush.
	PolyLine(drawable xproto.Drawable, gc xproto.Gcontext, pts []xproto.Point) error
}

type xgbConn struct {
	c *xgb.Conn
}

func (x xgbConn) WaitForEvent() (xgb.Event, xgb.Error) {
	return x.c.WaitForEvent()
}

func (x xgbConn) PolyLine(drawable xproto.Drawable, gc xproto.Gcontext, pts []xproto.Point) error {
	return xproto.PolyLineChecked(x.c, xproto.CoordModeOrigin, drawable, gc, pts).Check()
}

// Renderer is the event loop for one mapped window. It blocks at a single
// receive point and redraws the full drawing set on exposure, pausing after
// each polyline so the drawing appears stroke by stroke.
type Renderer struct {
	conn  protoConn
	win   xproto.Window
	gc    xproto.Gcontext
	atoms Atoms
	set   geometry.DrawingSet
	pace  time.Duration
	sleep func(time.Duration)
}

// NewRenderer prepares the render loop for a window built by CreateWindow.
// The drawing set is treated as immutable; every exposure redraws the same
// strokes.
func NewRenderer(s *Session, win xproto.Window, gc xproto.Gcontext, set geometry.DrawingSet, pace time.Duration) *Renderer {
	return &Renderer{
		conn:  xgbConn{s.Conn},
		win:   win,
		gc:    gc,
		atoms: s.Atoms,
		set:   set,
		pace:  pace,
		sleep: time.Sleep,
	}
}

// Run blocks on the event stream until the window manager asks the window to
// close (nil) or the session fails (error). There are no retries: a protocol
// error or a dead connection terminates the loop immediately.
func (r *Renderer) Run() error {
	for {
		ev, xerr := r.conn.WaitForEvent()
		if ev == nil && xerr == nil {
			// xgb signals a closed connection with a double nil.
			return fmt.Errorf("x server closed the connection")
		}
		if xerr != nil {
			return fmt.Errorf("x protocol error: %s", xerr.Error())
		}

		switch e := ev.(type) {
		case xproto.ExposeEvent:
			if e.Window != r.win {
				continue
			}
			if err := r.drawAll(); err != nil {
				return err
			}
		case xproto.ClientMessageEvent:
			if r.isCloseRequest(e) {
				log.Printf("window was asked to close")
				return nil
			}
		default:
			log.Printf("ignoring event: %s", ev)
		}
	}
}

// isCloseRequest reports whether e is the window manager's WM_DELETE_WINDOW
// message for our window.
func (r *Renderer) isCloseRequest(e xproto.ClientMessageEvent) bool {
	return e.Format == 32 &&
		e.Window == r.win &&
		len(e.Data.Data32) > 0 &&
		e.Data.Data32[0] == uint32(r.atoms.WMDeleteWindow)
}

func (r *Renderer) drawAll() error {
	for _, pl := range r.set {
		pts := make([]xproto.Point, len(pl))
		for i, p := range pl {
			pts[i] = xproto.Point{X: p.X, Y: p.Y}
		}
		if err := r.conn.PolyLine(xproto.Drawable(r.win), r.gc, pts); err != nil {
			return fmt.Errorf("poly line: %w", err)
		}
		r.sleep(r.pace)
	}
	return nil
}
