// Package darg binds a flat list of command-line tokens to a statically
// declared configuration value.
//
// A caller declares, for each field of a configuration type, whether it is
// a named option (--threads, -t) or a positional argument, along with a
// multiplicity bounding how many values the field may consume. The engine
// then consumes a token list and produces either a fully populated
// configuration value or a descriptive parse error. A usage line and help
// body are derived from the same declarations.
//
// Models are built either explicitly through the builder API or derived
// from a tagged struct, and never perform I/O: parsing reports every
// failure through the returned error, and rendering returns plain text for
// the caller to print.
package darg

//go:generate gomarkdoc ./ -o docs/darg.md
