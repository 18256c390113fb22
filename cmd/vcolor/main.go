// Command vcolor parses hex colors and prints them in every color space
// vmath supports.
//
// Usage:
//
//	vcolor [-format text|json|yaml] [-v] <color>...
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/vmath"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// report is one decoded color in every supported space.
type report struct {
	Input  string     `json:"input" yaml:"input"`
	Hex    string     `json:"hex" yaml:"hex"`
	RGBA   [4]uint8   `json:"rgba" yaml:"rgba,flow"`
	HSV    [3]float32 `json:"hsv" yaml:"hsv,flow"`
	XYZ    [3]float32 `json:"xyz" yaml:"xyz,flow"`
	CIELAB [3]float32 `json:"cielab" yaml:"cielab,flow"`
	OKLab  [3]float32 `json:"oklab" yaml:"oklab,flow"`
	Linear [4]float32 `json:"linear" yaml:"linear,flow"`
}

func newReport(input string, c vmath.Color) report {
	r := report{Input: input, Hex: c.Hex(), RGBA: [4]uint8{c.R, c.G, c.B, c.A}}
	r.HSV[0], r.HSV[1], r.HSV[2] = c.ToHSV()
	r.XYZ[0], r.XYZ[1], r.XYZ[2] = c.ToXYZ()
	r.CIELAB[0], r.CIELAB[1], r.CIELAB[2] = c.ToCIELAB()
	r.OKLab[0], r.OKLab[1], r.OKLab[2] = c.ToOKLab()
	lin := c.Linear()
	r.Linear = [4]float32{lin.X, lin.Y, lin.Z, lin.W}
	return r
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("vcolor", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		format  = fs.String("format", "text", "output format: text, json or yaml")
		verbose = fs.Bool("v", false, "log debug output to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "usage: vcolor [-format text|json|yaml] [-v] <color>...")
		return 2
	}
	if *verbose {
		vmath.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		defer vmath.SetLogger(nil)
	}

	reports := make([]report, 0, fs.NArg())
	for _, arg := range fs.Args() {
		c, err := vmath.ParseHex(arg)
		if err != nil {
			fmt.Fprintf(stderr, "vcolor: %v\n", err)
			return 1
		}
		reports = append(reports, newReport(arg, c))
	}

	if err := write(stdout, *format, reports); err != nil {
		fmt.Fprintf(stderr, "vcolor: %v\n", err)
		return 1
	}
	return 0
}

var errUnknownFormat = errors.New("unknown format")

func write(w io.Writer, format string, reports []report) error {
	switch format {
	case "text":
		for _, r := range reports {
			writeText(w, r)
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w %q", errUnknownFormat, format)
	}
}

func writeText(w io.Writer, r report) {
	fmt.Fprintf(w, "%s\n", r.Input)
	fmt.Fprintf(w, "  hex     %s\n", r.Hex)
	fmt.Fprintf(w, "  rgba    %d %d %d %d\n", r.RGBA[0], r.RGBA[1], r.RGBA[2], r.RGBA[3])
	fmt.Fprintf(w, "  hsv     %.1f %.3f %.3f\n", r.HSV[0], r.HSV[1], r.HSV[2])
	fmt.Fprintf(w, "  xyz     %.3f %.3f %.3f\n", r.XYZ[0], r.XYZ[1], r.XYZ[2])
	fmt.Fprintf(w, "  cielab  %.3f %.3f %.3f\n", r.CIELAB[0], r.CIELAB[1], r.CIELAB[2])
	fmt.Fprintf(w, "  oklab   %.4f %.4f %.4f\n", r.OKLab[0], r.OKLab[1], r.OKLab[2])
	fmt.Fprintf(w, "  linear  %.4f %.4f %.4f %.4f\n", r.Linear[0], r.Linear[1], r.Linear[2], r.Linear[3])
}
