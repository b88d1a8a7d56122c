package x11

import (
	"testing"
	"time"
)

func TestNormalizeDisplay_AppendsDefaultQualifier(t *testing.T) {
	if got := NormalizeDisplay("192.168.1.20"); got != "192.168.1.20:0.0" {
		t.Fatalf("expected default qualifier appended, got %q", got)
	}
}

func TestNormalizeDisplay_PassesQualifiedAddressThrough(t *testing.T) {
	for _, addr := range []string{"host:1", "host:0.0", ":0"} {
		if got := NormalizeDisplay(addr); got != addr {
			t.Fatalf("expected %q unchanged, got %q", addr, got)
		}
	}
}

func TestOptions_Defaults(t *testing.T) {
	o := Options{}.withDefaults()
	if o.Width != DefaultWidth || o.Height != DefaultHeight {
		t.Fatalf("expected %dx%d, got %dx%d", DefaultWidth, DefaultHeight, o.Width, o.Height)
	}
	if o.Title != DefaultTitle {
		t.Fatalf("expected default title, got %q", o.Title)
	}
	if o.Pace != DefaultPace {
		t.Fatalf("expected default pace, got %v", o.Pace)
	}
}

func TestOptions_ExplicitValuesKept(t *testing.T) {
	o := Options{Width: 100, Height: 50, Title: "t", Pace: time.Second}.withDefaults()
	if o.Width != 100 || o.Height != 50 || o.Title != "t" || o.Pace != time.Second {
		t.Fatalf("explicit options were overridden: %+v", o)
	}
}
