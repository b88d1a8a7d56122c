package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/makeafish/xfish/internal/client"
	"github.com/makeafish/xfish/internal/config"
	"github.com/makeafish/xfish/internal/server"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "serve":
		os.Exit(runServe(os.Args[2:]))
	case "draw":
		os.Exit(runDraw(os.Args[2:]))
	case "data":
		os.Exit(runData(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "mcp":
		os.Exit(runMCP(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: xfish <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  serve               Start the HTTP trigger server (foreground)")
	fmt.Fprintln(w, "  draw                Draw on an X server directly")
	fmt.Fprintln(w, "  data preview        Render the drawing data as ASCII in the terminal")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config print        Print the effective configuration")
	fmt.Fprintln(w, "  config validate     Validate the configuration file")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  mcp serve           Start the MCP server (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'xfish <command> --help' for command-specific options.")
}

func runServe(args []string) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	listen := fs.String("listen", "", "Listen address (overrides config)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: xfish serve [-listen addr]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Serve draw triggers over HTTP. A request to /?address=<xserver> opens a")
		fmt.Fprintln(os.Stderr, "window on that X server and draws; the request completes when the window")
		fmt.Fprintln(os.Stderr, "is closed.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *listen != "" {
		cfg.Listen = *listen
	}

	srv := server.New(cfg)
	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start trigger server: %v", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Printf("shutting down")
	srv.Stop()
	return 0
}

func runDraw(args []string) int {
	fs := flag.NewFlagSet("draw", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	address := fs.String("address", "", "X server address (host or host:display)")
	mode := fs.String("mode", "", "Drawing-data mode ('bad' selects the embedded fallback set)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: xfish draw -address <xserver> [-mode bad]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Open a window on the given X server and draw. Blocks until the window")
		fmt.Fprintln(os.Stderr, "manager closes the window.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if *address == "" {
		fmt.Fprintln(os.Stderr, "need address")
		fs.Usage()
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := client.Run(cfg, *address, *mode); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Println(client.SuccessMessage)
	return 0
}
