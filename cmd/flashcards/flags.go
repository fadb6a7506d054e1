package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	quiet   bool
	verbose bool
}

// layoutFlags holds card arrangement flags.
type layoutFlags struct {
	grid       string
	sequential bool
	imageSize  int
}

// pageFlags holds page layout flags.
type pageFlags struct {
	size        string
	orientation string
	margin      float64
}

// templateFlags holds template source flags.
type templateFlags struct {
	dir      string
	builtin  bool
	fallback bool
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common    commonFlags
	output    string
	outDir    string
	title     string
	timeout   string
	htmlOnly  bool
	layout    layoutFlags
	page      pageFlags
	templates templateFlags

	// set reports whether a flag was given on the command line, so zero
	// values ("--sequential=false", "--margin 0") still override the deck.
	set func(name string) bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs and timing")
}

// addLayoutFlags adds layout flags to a FlagSet.
func addLayoutFlags(fs *flag.FlagSet, f *layoutFlags) {
	fs.StringVar(&f.grid, "grid", "", "cards per page as columns x rows: 1x2, 2x3")
	fs.BoolVar(&f.sequential, "sequential", false, "one continuous flow, no pages")
	fs.IntVar(&f.imageSize, "image-size", 0, "spacer size in pixels for cards without image")
}

// addPageFlags adds page layout flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "page size: a4, letter, legal")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in inches (0-3.0)")
}

// addTemplateFlags adds template source flags to a FlagSet.
func addTemplateFlags(fs *flag.FlagSet, f *templateFlags) {
	fs.StringVar(&f.dir, "templates", "", "template directory")
	fs.BoolVar(&f.builtin, "builtin-templates", false, "use compiled-in templates only")
	fs.BoolVar(&f.fallback, "fallback-templates", false, "use compiled-in copies of missing templates")
}

// newBuildFlagSet registers the build flags bound to f.
func newBuildFlagSet(f *buildFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)

	fs.StringVarP(&f.output, "output", "o", "", "output base name (.htm/.pdf appended)")
	fs.StringVar(&f.outDir, "out-dir", "", "output directory")
	fs.StringVar(&f.title, "title", "", "document title")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF rendering timeout (e.g., 30s, 2m)")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "write HTML only, skip PDF")

	addCommonFlags(fs, &f.common)
	addLayoutFlags(fs, &f.layout)
	addPageFlags(fs, &f.page)
	addTemplateFlags(fs, &f.templates)
	return fs
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string, stderr io.Writer) (*buildFlags, []string, error) {
	f := &buildFlags{}
	fs := newBuildFlagSet(f)
	fs.SetOutput(stderr)
	fs.Usage = func() { printBuildUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	f.set = fs.Changed
	return f, fs.Args(), nil
}

// initFlags holds flags for the init command.
type initFlags struct {
	common commonFlags
	force  bool
}

// newInitFlagSet registers the init flags bound to f.
func newInitFlagSet(f *initFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	fs.BoolVarP(&f.force, "force", "f", false, "overwrite existing files")
	addCommonFlags(fs, &f.common)
	return fs
}

// parseInitFlags parses init command flags and returns positional args.
func parseInitFlags(args []string, stderr io.Writer) (*initFlags, []string, error) {
	f := &initFlags{}
	fs := newInitFlagSet(f)
	fs.SetOutput(stderr)

	fs.Usage = func() { printInitUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
