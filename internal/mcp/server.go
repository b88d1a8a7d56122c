// Package mcp exposes the draw trigger as MCP tools so the client can be
// driven by MCP hosts over stdio.
package mcp

import (
	"context"
	"fmt"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/makeafish/xfish/internal/client"
	"github.com/makeafish/xfish/internal/config"
	"github.com/makeafish/xfish/internal/fishdata"
	"github.com/makeafish/xfish/internal/geometry"
)

const (
	ServerName    = "xfish"
	ServerVersion = "0.1.0"
)

// Server is the MCP server wrapping the draw client.
type Server struct {
	mcpServer *mcpsdk.Server
	cfg       *config.Config

	// draw runs one full draw invocation; replaced in tests.
	draw func(address, mode string) error
}

// NewServer creates an MCP server for the given config.
func NewServer(cfg *config.Config) *Server {
	s := &Server{cfg: cfg}
	s.draw = func(address, mode string) error {
		return client.Run(cfg, address, mode)
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "draw_fish",
		Description: "Open a window on the X server at the given address and draw a fish line by line. Blocks until the remote window manager closes the window, then reports the outcome. Mode 'bad' draws the embedded fallback data set instead of generating a fresh fish.",
	}, s.handleDrawFish)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "preview_data",
		Description: "Return the drawing data that a draw_fish call would render, as newline-separated rows of comma-separated x,y coordinates, without contacting any X server.",
	}, s.handlePreviewData)
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) handleDrawFish(_ context.Context, _ *mcpsdk.CallToolRequest, args DrawFishInput) (*mcpsdk.CallToolResult, DrawFishOutput, error) {
	if strings.TrimSpace(args.Address) == "" {
		return nil, DrawFishOutput{}, fmt.Errorf("need address")
	}

	if err := s.draw(args.Address, args.Mode); err != nil {
		return nil, DrawFishOutput{}, err
	}

	return nil, DrawFishOutput{Message: client.SuccessMessage}, nil
}

func (s *Server) handlePreviewData(_ context.Context, _ *mcpsdk.CallToolRequest, args PreviewDataInput) (*mcpsdk.CallToolResult, PreviewDataOutput, error) {
	mode := args.Mode
	if mode == "" {
		mode = s.cfg.DataMode
	}

	set := geometry.Parse(fishdata.Select(mode))
	return nil, PreviewDataOutput{
		Polylines: len(set),
		Points:    set.PointCount(),
		Data:      set.String(),
	}, nil
}
