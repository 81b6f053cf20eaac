package prog

import (
	"flag"
	"io"
)

// Flags keeps command-line flags.
type Flags struct {
	Log, CPUProfile string

	Help, Version, BuildInfo, JSON bool

	// Format is the output format of the showcase: "text", "json" or "yaml".
	Format string
	// Color controls styled output: "auto", "always" or "never".
	Color string
}

func newFlagSet(f *Flags) *flag.FlagSet {
	fs := flag.NewFlagSet("conslist", flag.ContinueOnError)
	// Error and usage will be printed explicitly.
	fs.SetOutput(io.Discard)

	fs.StringVar(&f.Log, "log", "", "a file to write debug log to")
	fs.StringVar(&f.CPUProfile, "cpuprofile", "", "write cpu profile to file")

	fs.BoolVar(&f.Help, "help", false, "show usage help and quit")
	fs.BoolVar(&f.Version, "version", false, "show version and quit")
	fs.BoolVar(&f.BuildInfo, "buildinfo", false, "show build info and quit")
	fs.BoolVar(&f.JSON, "json", false, "show output in JSON. Useful with -buildinfo")

	fs.StringVar(&f.Format, "format", "text", "output format of the showcase: text, json or yaml")
	fs.StringVar(&f.Color, "color", "auto", "when to style output: auto, always or never")

	return fs
}
