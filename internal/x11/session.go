// Package x11 implements the windowing-protocol client: session setup, window
// and graphics-context creation, the WM_DELETE_WINDOW handshake and the
// event-driven render loop.
package x11

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
)

// Atoms holds the interned atom ids needed for window-manager interop.
type Atoms struct {
	UTF8String     xproto.Atom
	WMDeleteWindow xproto.Atom
	WMProtocols    xproto.Atom
	NetWMName      xproto.Atom
}

// Session is a live connection to an X server plus the selected screen and
// the interned atom table. A session serves exactly one draw invocation and
// owns its server-side resources until Close.
type Session struct {
	XU     *xgbutil.XUtil
	Conn   *xgb.Conn
	Screen *xproto.ScreenInfo
	Atoms  Atoms
}

// NormalizeDisplay appends the default display qualifier when the address has
// none, so callers may pass a bare hostname. Addresses that already carry a
// qualifier pass through unchanged.
func NormalizeDisplay(address string) string {
	if !strings.Contains(address, ":") {
		return address + ":0.0"
	}
	return address
}

// Connect opens a connection to the X server at address, selects the
// server-designated default screen and interns the WM interop atoms.
// Failures are returned as-is; there is no retry.
func Connect(address string) (*Session, error) {
	xu, err := xgbutil.NewConnDisplay(NormalizeDisplay(address))
	if err != nil {
		return nil, fmt.Errorf("connect to %q: %w", address, err)
	}
	conn := xu.Conn()

	atoms, err := internAtoms(conn)
	if err != nil {
		conn.Close()
		return nil, err
	}

	return &Session{
		XU:     xu,
		Conn:   conn,
		Screen: xu.Screen(),
		Atoms:  atoms,
	}, nil
}

// internAtoms resolves the four interop atoms in one batch: every request is
// issued before the first reply is awaited.
func internAtoms(conn *xgb.Conn) (Atoms, error) {
	names := [...]string{"UTF8_STRING", "WM_DELETE_WINDOW", "WM_PROTOCOLS", "_NET_WM_NAME"}

	var cookies [len(names)]xproto.InternAtomCookie
	for i, name := range names {
		cookies[i] = xproto.InternAtom(conn, false, uint16(len(name)), name)
	}

	var resolved [len(names)]xproto.Atom
	for i, cookie := range cookies {
		reply, err := cookie.Reply()
		if err != nil {
			return Atoms{}, fmt.Errorf("intern atom %s: %w", names[i], err)
		}
		resolved[i] = reply.Atom
	}

	return Atoms{
		UTF8String:     resolved[0],
		WMDeleteWindow: resolved[1],
		WMProtocols:    resolved[2],
		NetWMName:      resolved[3],
	}, nil
}

// Close disconnects from the X server. Server-side resources created by this
// session are reclaimed with the connection.
func (s *Session) Close() {
	s.Conn.Close()
}
