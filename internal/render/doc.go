// Package render formats indexspace and partition values for human
// consumption: locale-grouped numbers for large Index magnitudes, ANSI
// stripping when output isn't a terminal, and word-wrapped diagnostic
// blocks, in the style the gridpartition CLI and test failure messages use.
package render
