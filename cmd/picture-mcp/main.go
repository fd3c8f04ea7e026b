package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/ironsheep/picture-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			printVersion(os.Stdout)
			return
		case "--help", "-h", "help":
			printHelp(os.Stdout)
			return
		default:
			fmt.Fprintf(os.Stderr, "picture-mcp: unknown argument %q (try --help)\n", os.Args[1])
			os.Exit(2)
		}
	}

	// stdout carries the protocol
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg := server.LoadConfig()
	if cfg.Debug {
		log.Printf("picture-mcp %s (built %s, commit %s): dppx=%g probe workers=%d",
			Version, BuildTime, GitCommit, cfg.DevicePixelRatio, cfg.ProbeWorkers)
	}

	if err := server.New(cfg).Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "picture-mcp %s\n", Version)
	fmt.Fprintf(w, "  Build time: %s\n", BuildTime)
	fmt.Fprintf(w, "  Git commit: %s\n", GitCommit)
}

// printHelp lists the tools straight from the server's definitions so the
// text cannot drift from what tools/list reports.
func printHelp(w io.Writer) {
	fmt.Fprintln(w, "picture-mcp - responsive image source selection over MCP (stdin/stdout)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: picture-mcp [--version | --help]")
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Tools:")
	for _, tool := range server.GetToolDefinitions() {
		fmt.Fprintf(tw, "  %s\t%s\n", tool.Name, tool.Description)
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "Environment:")
	fmt.Fprintln(tw, "  PICTURE_MCP_LOG_LEVEL=debug\tLog picture lifecycle events to stderr")
	fmt.Fprintln(tw, "  PICTURE_MCP_DEVICE_PIXEL_RATIO=<ratio>\tPlatform pixel ratio when a picture sets none (default 1)")
	fmt.Fprintln(tw, "  PICTURE_MCP_PROBE_WORKERS=<n>\tConcurrent image probes per manifest (default 4)")
	tw.Flush()
}
