package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// CreateWindow creates the top-level window and its graphics context. The
// order matters: create, titles, WM_PROTOCOLS, map, then the GC. Advertising
// WM_DELETE_WINDOW in WM_PROTOCOLS is what makes the window manager send a
// polite close request instead of killing the client.
//
// Requests are checked individually, so a failure aborts setup at the exact
// step that caused it. The caller must still Sync the connection before
// relying on the window being visible.
func (s *Session) CreateWindow(width, height uint16, title string) (xproto.Window, xproto.Gcontext, error) {
	win, err := xproto.NewWindowId(s.Conn)
	if err != nil {
		return 0, 0, fmt.Errorf("allocate window id: %w", err)
	}

	err = xproto.CreateWindowChecked(s.Conn,
		s.Screen.RootDepth, win, s.Screen.Root,
		0, 0, width, height, 0,
		xproto.WindowClassInputOutput, s.Screen.RootVisual,
		xproto.CwBackPixel|xproto.CwEventMask,
		[]uint32{
			s.Screen.WhitePixel,
			xproto.EventMaskExposure | xproto.EventMaskStructureNotify,
		}).Check()
	if err != nil {
		return 0, 0, fmt.Errorf("create window: %w", err)
	}

	// Legacy 8-bit title, then the UTF-8 form preferred by modern WMs.
	err = xproto.ChangePropertyChecked(s.Conn, xproto.PropModeReplace, win,
		xproto.AtomWmName, xproto.AtomString, 8,
		uint32(len(title)), []byte(title)).Check()
	if err != nil {
		return 0, 0, fmt.Errorf("set WM_NAME: %w", err)
	}
	err = xproto.ChangePropertyChecked(s.Conn, xproto.PropModeReplace, win,
		s.Atoms.NetWMName, s.Atoms.UTF8String, 8,
		uint32(len(title)), []byte(title)).Check()
	if err != nil {
		return 0, 0, fmt.Errorf("set _NET_WM_NAME: %w", err)
	}

	protocols := make([]byte, 4)
	xgb.Put32(protocols, uint32(s.Atoms.WMDeleteWindow))
	err = xproto.ChangePropertyChecked(s.Conn, xproto.PropModeReplace, win,
		s.Atoms.WMProtocols, xproto.AtomAtom, 32, 1, protocols).Check()
	if err != nil {
		return 0, 0, fmt.Errorf("set WM_PROTOCOLS: %w", err)
	}

	if err := xproto.MapWindowChecked(s.Conn, win).Check(); err != nil {
		return 0, 0, fmt.Errorf("map window: %w", err)
	}

	gc, err := xproto.NewGcontextId(s.Conn)
	if err != nil {
		return 0, 0, fmt.Errorf("allocate gc id: %w", err)
	}
	// Graphics exposures off: draw requests must not feed exposure events
	// back into the loop they are drawn from.
	err = xproto.CreateGCChecked(s.Conn, gc, xproto.Drawable(win),
		xproto.GcForeground|xproto.GcGraphicsExposures,
		[]uint32{s.Screen.BlackPixel, 0}).Check()
	if err != nil {
		return 0, 0, fmt.Errorf("create gc: %w", err)
	}

	return win, gc, nil
}
