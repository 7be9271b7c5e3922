// Command surfaceinfo inspects the surface registries and checks raw pixel
// files against a format through the capi boundary.
//
// Usage:
//
//	surfaceinfo formats
//	surfaceinfo errors
//	surfaceinfo check -w 1920 -h 1080 -format RGBA8888 frame.raw
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/gogpu/surface"
	"github.com/gogpu/surface/capi"
)

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("surfaceinfo: %v", err)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: surfaceinfo <formats|errors|check> [flags]")
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		usage(out)
		return fmt.Errorf("missing command")
	}
	switch args[0] {
	case "formats":
		return listFormats(out)
	case "errors":
		return listErrors(out)
	case "check":
		return check(args[1:], out)
	case "-h", "--help", "help":
		usage(out)
		return nil
	default:
		usage(out)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func listFormats(out io.Writer) error {
	for _, f := range surface.Formats() {
		fmt.Fprintf(out, "%d\t%s\t%d bpp\talpha=%t\n",
			f.Code(), f.Name(), f.BytesPerPixel(), f.HasAlpha())
	}
	return nil
}

func listErrors(out io.Writer) error {
	for _, k := range surface.ErrorKinds() {
		fmt.Fprintf(out, "%d\t%s\n", k.Code(), k.Name())
	}
	return nil
}

func check(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(out)
	var (
		width   = fs.Uint("w", 0, "surface width in pixels")
		height  = fs.Uint("h", 0, "surface height in pixels")
		format  = fs.String("format", "RGBA8888", "pixel format name")
		verbose = fs.Bool("v", false, "enable debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("check: expected one file argument")
	}
	if *width > math.MaxUint32 || *height > math.MaxUint32 {
		return fmt.Errorf("check: dimensions %dx%d out of range (max %d)", *width, *height, uint64(math.MaxUint32))
	}
	if *verbose {
		surface.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	data, err := os.ReadFile(filepath.Clean(fs.Arg(0)))
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}

	h, status := capi.SurfaceNewFromBuf(uint32(*width), uint32(*height), data, uint64(len(data)), append([]byte(*format), 0))
	if status != capi.StatusOK {
		name, _ := capi.ErrorName(status)
		return fmt.Errorf("check: %s: errno(%d): %s", fs.Arg(0), status, name)
	}
	defer capi.SurfaceFree(h)

	s, _ := capi.Lookup(h)
	fmt.Fprintf(out, "%s: ok %s\n", fs.Arg(0), s)
	return nil
}
