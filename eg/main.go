package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/jasonwhite/darg"
	"github.com/jasonwhite/darg/display"
)

type config struct {
	Help    bool     `option:"help,h" help:"Display this help and exit"`
	Version bool     `option:"version" help:"Display the version and exit"`
	Threads uint     `option:"threads,t" meta:"N" help:"Number of worker threads"`
	Verbose bool     `option:"verbose,v" help:"Enable verbose output"`
	Files   []string `argument:"file" mult:"1..*" help:"Files to process"`
}

func main() {
	cfg := config{Threads: 1}

	model, err := darg.FromStruct(&cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Help and version must work without the required positional, so peek
	// at them before enforcing the full model.
	for _, arg := range os.Args[1:] {
		switch arg {
		case "-h", "--help":
			fmt.Println(darg.Help(model, "darg-demo"))
			return
		case "--version":
			version, err := darg.Version("darg-demo", "1.0.0")
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			fmt.Println(version)
			return
		}
	}

	if err := model.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usageLine(model))
		os.Exit(2)
	}

	fmt.Printf("threads=%d verbose=%v files=%v\n", cfg.Threads, cfg.Verbose, cfg.Files)
}

// usageLine wraps the usage summary to the real terminal width when one is
// available, falling back to the default column otherwise.
func usageLine(m *darg.Model) string {
	width := display.DefaultWidth
	if w, _, err := term.GetSize(int(os.Stderr.Fd())); err == nil && w > 0 {
		width = w
	}
	return display.UsageWidth(m, "darg-demo", width)
}
