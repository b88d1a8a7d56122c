// Package client runs one full draw invocation: select the drawing data,
// parse it and render it on a remote X server.
package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/makeafish/xfish/internal/config"
	"github.com/makeafish/xfish/internal/fishdata"
	"github.com/makeafish/xfish/internal/geometry"
	"github.com/makeafish/xfish/internal/x11"
)

// SuccessMessage is returned to the caller after a clean window close.
const SuccessMessage = "Understandable, have a nice fish"

// Run draws at the given X server address and blocks until the window is
// closed or the session fails. An empty mode falls back to the configured
// default data mode.
func Run(cfg *config.Config, address, mode string) error {
	if strings.TrimSpace(address) == "" {
		return fmt.Errorf("need address")
	}
	if mode == "" {
		mode = cfg.DataMode
	}

	set := geometry.Parse(fishdata.Select(mode))

	return x11.Draw(address, set, x11.Options{
		Width:  uint16(cfg.Window.Width),
		Height: uint16(cfg.Window.Height),
		Title:  cfg.Title,
		Pace:   time.Duration(cfg.PaceMs) * time.Millisecond,
	})
}
