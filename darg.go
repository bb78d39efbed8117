package darg

import (
	"github.com/jasonwhite/darg/core"
	"github.com/jasonwhite/darg/display"
)

// New returns an empty model to populate through the builder API.
//
// Usage:
//
//	var cfg struct {
//		Help    bool
//		Threads uint
//		Files   []string
//	}
//
//	model := darg.New()
//	model.Flag(&cfg.Help, "help", "h").Help("Display this help and exit")
//	model.Option(&cfg.Threads, "threads", "t").Meta("N")
//	model.Argument(&cfg.Files, "file", darg.OneOrMore)
//
//	if err := model.Parse(os.Args[1:]); err != nil {
//		fmt.Fprintln(os.Stderr, err)
//		os.Exit(2)
//	}
var New = core.New

// FromStruct derives a model from a tagged struct. Each exported field
// carrying an `option` or `argument` tag becomes one spec bound to that
// field; see core.FromStruct for the tag reference.
//
// Usage:
//
//	var cfg struct {
//		Help    bool     `option:"help,h" help:"Display this help and exit"`
//		Threads uint     `option:"threads,t" meta:"N" help:"Number of worker threads"`
//		Files   []string `argument:"file" mult:"1..*" help:"Files to process"`
//	}
//
//	model, err := darg.FromStruct(&cfg)
var FromStruct = core.FromStruct

// Parse derives a model from a tagged struct and immediately binds tokens
// against it. Tokens are conventionally os.Args[1:]. The struct fields
// keep their pre-set values as defaults wherever no token binds them.
func Parse(target any, tokens []string) error {
	model, err := core.FromStruct(target)
	if err != nil {
		return err
	}
	return model.Parse(tokens)
}

// Usage renders the one-line summary derived from the model, word-wrapped
// at 80 columns with continuation lines aligned under the program name.
// It is pure and may be computed ahead of any parse call.
var Usage = display.Usage

// Help renders the full help text: the usage line plus aligned argument
// and option sections with their help text.
var Help = display.Help

// Version returns a formatted version string, falling back to the module
// version recorded in build metadata when version is empty.
var Version = display.Version
