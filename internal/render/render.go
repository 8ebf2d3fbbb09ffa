package render

import (
    "fmt"
    "strings"

    "github.com/acarl005/stripansi"
    "golang.org/x/text/language"
    "golang.org/x/text/message"

    "github.com/tawesoft/gridspace/ds/indexspace"
    "github.com/tawesoft/gridspace/ks"
)

// Options controls how values are rendered for display.
type Options struct {
    // Locale selects the number-grouping convention for large Index
    // magnitudes. The zero value is language.English.
    Locale language.Tag

    // Color, if false, strips any ANSI escape sequences from the result -
    // appropriate when stdout isn't a terminal.
    Color bool

    // WrapColumns word-wraps multi-line diagnostic blocks to this many
    // columns. Zero disables wrapping.
    WrapColumns int
}

func (o Options) printer() *message.Printer {
    tag := o.Locale
    if (tag == language.Tag{}) {
        tag = language.English
    }
    return message.NewPrinter(tag)
}

func (o Options) finish(s string) string {
    if !o.Color {
        s = stripansi.Strip(s)
    }
    if o.WrapColumns > 0 {
        s = ks.WrapBlock(s, o.WrapColumns)
    }
    return s
}

// Index renders a single index value with locale-grouped digits, e.g.
// "1,048,576" under language.English.
func Index(o Options, v indexspace.Index) string {
    p := o.printer()
    switch v {
    case indexspace.NegInfinity:
        return "-inf"
    case indexspace.PosInfinity:
        return "+inf"
    default:
        return p.Sprintf("%d", int64(v))
    }
}

// Interval renders an IndexInterval in half-open mathematical notation,
// with locale-grouped endpoints.
func Interval(o Options, iv indexspace.IndexInterval) string {
    if iv.IsEmpty() {
        return "[)"
    }
    return fmt.Sprintf("[%s, %s)", Index(o, iv.Origin), Index(o, iv.End()))
}

// Box renders a Box as the cross product of its per-dimension intervals.
func Box(o Options, b indexspace.Box) string {
    parts := make([]string, len(b))
    for i, iv := range b {
        parts[i] = Interval(o, iv)
    }
    return o.finish(strings.Join(parts, " x "))
}

// CellIndices renders a grid cell index tuple, e.g. "(2, -1, 0)".
func CellIndices(o Options, idx []indexspace.Index) string {
    parts := make([]string, len(idx))
    for i, v := range idx {
        parts[i] = Index(o, v)
    }
    return o.finish("(" + strings.Join(parts, ", ") + ")")
}

// Transform renders a short diagnostic summary of an IndexTransform's
// domain and output rank.
func Transform(o Options, t indexspace.IndexTransform) string {
    return o.finish(fmt.Sprintf(
        "domain %s -> %d output dim(s)", Box(o, t.Domain), t.OutputRank(),
    ))
}
