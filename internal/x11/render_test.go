package x11

import (
	"strings"
	"testing"
	"time"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/makeafish/xfish/internal/geometry"
)

const testDeleteAtom xproto.Atom = 99

type step struct {
	ev   xgb.Event
	xerr xgb.Error
}

// fakeConn feeds a scripted event sequence to the render loop and records
// draw requests. An exhausted script behaves like a closed connection.
type fakeConn struct {
	steps []step
	draws [][]xproto.Point
}

func (f *fakeConn) WaitForEvent() (xgb.Event, xgb.Error) {
	if len(f.steps) == 0 {
		return nil, nil
	}
	s := f.steps[0]
	f.steps = f.steps[1:]
	return s.ev, s.xerr
}

func (f *fakeConn) PolyLine(_ xproto.Drawable, _ xproto.Gcontext, pts []xproto.Point) error {
	f.draws = append(f.draws, pts)
	return nil
}

type fakeXError struct {
	msg string
}

func (e fakeXError) ImplementsError()   {}
func (e fakeXError) SequenceId() uint16 { return 0 }
func (e fakeXError) BadId() uint32      { return 0 }
func (e fakeXError) Error() string      { return e.msg }

func newTestRenderer(conn *fakeConn, set geometry.DrawingSet) (*Renderer, *int) {
	sleeps := 0
	r := &Renderer{
		conn:  conn,
		win:   1,
		gc:    2,
		atoms: Atoms{WMDeleteWindow: testDeleteAtom},
		set:   set,
		pace:  time.Millisecond,
		sleep: func(time.Duration) { sleeps++ },
	}
	return r, &sleeps
}

func expose(win xproto.Window) xgb.Event {
	return xproto.ExposeEvent{Window: win}
}

func closeRequest(win xproto.Window, atom xproto.Atom) xgb.Event {
	return xproto.ClientMessageEvent{
		Format: 32,
		Window: win,
		Data:   xproto.ClientMessageDataUnionData32New([]uint32{uint32(atom), 0, 0, 0, 0}),
	}
}

func TestRun_ExposeDrawsSetThenCloses(t *testing.T) {
	set := geometry.Parse("0,0,10,0,10,10\n")
	conn := &fakeConn{steps: []step{
		{ev: expose(1)},
		{ev: closeRequest(1, testDeleteAtom)},
	}}
	r, sleeps := newTestRenderer(conn, set)

	if err := r.Run(); err != nil {
		t.Fatalf("expected clean close, got %v", err)
	}
	if len(conn.draws) != 1 {
		t.Fatalf("expected 1 draw call, got %d", len(conn.draws))
	}
	want := []xproto.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}
	got := conn.draws[0]
	if len(got) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("point %d: expected %v, got %v", i, want[i], got[i])
		}
	}
	if *sleeps != 1 {
		t.Fatalf("expected 1 pacing delay, got %d", *sleeps)
	}
}

func TestRun_PacingOncePerPolyline(t *testing.T) {
	set := geometry.Parse("0,0,1,1\n2,2,3,3\n4,4,5,5")
	conn := &fakeConn{steps: []step{
		{ev: expose(1)},
		{ev: closeRequest(1, testDeleteAtom)},
	}}
	r, sleeps := newTestRenderer(conn, set)

	if err := r.Run(); err != nil {
		t.Fatalf("expected clean close, got %v", err)
	}
	if len(conn.draws) != 3 {
		t.Fatalf("expected 3 draw calls, got %d", len(conn.draws))
	}
	if *sleeps != 3 {
		t.Fatalf("expected 3 pacing delays, got %d", *sleeps)
	}
}

func TestRun_EmptySetExposesWithoutDrawing(t *testing.T) {
	conn := &fakeConn{steps: []step{
		{ev: expose(1)},
		{ev: closeRequest(1, testDeleteAtom)},
	}}
	r, sleeps := newTestRenderer(conn, nil)

	if err := r.Run(); err != nil {
		t.Fatalf("expected clean close, got %v", err)
	}
	if len(conn.draws) != 0 {
		t.Fatalf("expected 0 draw calls, got %d", len(conn.draws))
	}
	if *sleeps != 0 {
		t.Fatalf("expected 0 pacing delays, got %d", *sleeps)
	}
}

func TestRun_ExposeForOtherWindowIgnored(t *testing.T) {
	set := geometry.Parse("0,0,1,1")
	conn := &fakeConn{steps: []step{
		{ev: expose(7)},
		{ev: closeRequest(1, testDeleteAtom)},
	}}
	r, _ := newTestRenderer(conn, set)

	if err := r.Run(); err != nil {
		t.Fatalf("expected clean close, got %v", err)
	}
	if len(conn.draws) != 0 {
		t.Fatalf("foreign expose must not draw, got %d draws", len(conn.draws))
	}
}

func TestRun_MismatchedClientMessageIgnored(t *testing.T) {
	conn := &fakeConn{steps: []step{
		{ev: closeRequest(7, testDeleteAtom)},   // wrong window
		{ev: closeRequest(1, testDeleteAtom+1)}, // wrong atom
		{ev: closeRequest(1, testDeleteAtom)},
	}}
	r, _ := newTestRenderer(conn, nil)

	if err := r.Run(); err != nil {
		t.Fatalf("expected the final matching message to close cleanly, got %v", err)
	}
}

func TestRun_UnknownEventIgnored(t *testing.T) {
	conn := &fakeConn{steps: []step{
		{ev: xproto.ConfigureNotifyEvent{Window: 1}},
		{ev: closeRequest(1, testDeleteAtom)},
	}}
	r, _ := newTestRenderer(conn, nil)

	if err := r.Run(); err != nil {
		t.Fatalf("expected clean close after ignored event, got %v", err)
	}
}

func TestRun_ProtocolErrorIsTerminal(t *testing.T) {
	set := geometry.Parse("0,0,1,1")
	conn := &fakeConn{steps: []step{
		{xerr: fakeXError{msg: "BadWindow"}},
		{ev: expose(1)}, // must never be reached
	}}
	r, _ := newTestRenderer(conn, set)

	err := r.Run()
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "BadWindow") {
		t.Fatalf("expected error detail to be carried, got %v", err)
	}
	if len(conn.draws) != 0 {
		t.Fatalf("no events may be processed after a protocol error, got %d draws", len(conn.draws))
	}
}

func TestRun_DeadConnectionIsTerminal(t *testing.T) {
	conn := &fakeConn{}
	r, _ := newTestRenderer(conn, nil)

	err := r.Run()
	if err == nil || !strings.Contains(err.Error(), "closed the connection") {
		t.Fatalf("expected closed-connection error, got %v", err)
	}
}
