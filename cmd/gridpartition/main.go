// Command gridpartition partitions a rectangular index-space domain over a
// regular or irregular grid and prints the resulting cells or coalesced
// cell-index ranges.
//
// The transform is always the identity map: one output dimension per input
// dimension, every one of them also a grid dimension. This keeps the demo's
// flag surface small; build an [indexspace.IndexTransform] directly and call
// [partition.Partition] or [partition.GetGridCellRanges] for anything more
// elaborate.
package main

import (
    "errors"
    "flag"
    "fmt"
    "os"
    "strconv"
    "strings"

    "github.com/alessio/shellescape"

    "github.com/tawesoft/gridspace/ds/grid"
    "github.com/tawesoft/gridspace/ds/indexspace"
    "github.com/tawesoft/gridspace/ds/partition"
    "github.com/tawesoft/gridspace/internal/render"
    "github.com/tawesoft/gridspace/operator"
)

const (
    modeShowBoxes = 1 << iota
    modeShowCells
    modeVerbose
)

var errBadFlag = errors.New("gridpartition: bad flag value")

func main() {
    if err := run(os.Args[1:]); err != nil {
        fmt.Fprintln(os.Stderr, "gridpartition:", err)
        os.Exit(1)
    }
}

func run(args []string) error {
    fs := flag.NewFlagSet("gridpartition", flag.ContinueOnError)
    domainFlag := fs.String("domain", "0:10,0:10", "comma-separated lo:hi half-open intervals, one per dimension")
    cellSizeFlag := fs.String("cellsize", "", "comma-separated positive cell sizes for a regular grid, one per dimension")
    splitsFlag := fs.String("splits", "", "semicolon-separated, comma-separated split points for an irregular grid, one group per dimension")
    rangesFlag := fs.Bool("ranges", false, "coalesce output into cell-index ranges instead of listing every cell")
    colorFlag := fs.Bool("color", true, "allow ANSI color in output")
    widthFlag := fs.Int("width", 0, "word-wrap diagnostic output to this many columns (0 disables)")
    verboseFlag := fs.Bool("verbose", false, "print the equivalent shell-escaped invocation before running")

    if err := fs.Parse(args); err != nil {
        return err
    }

    mode := operator.BitwiseOr(modeShowCells, 0)
    if *rangesFlag {
        mode = operator.BitwiseOr(operator.BitwiseAnd(mode, ^modeShowCells), modeShowBoxes)
    }
    if *verboseFlag {
        mode = operator.BitwiseOr(mode, modeVerbose)
    }

    opts := render.Options{Color: *colorFlag, WrapColumns: *widthFlag}

    if (mode & modeVerbose) != 0 {
        fmt.Println("equivalent invocation:", shellescape.QuoteCommand(append([]string{"gridpartition"}, args...)))
    }

    domain, err := parseDomain(*domainFlag)
    if err != nil {
        return err
    }

    rank := domain.Rank()
    outputMaps := make([]indexspace.OutputIndexMap, rank)
    gridDims := make([]int, rank)
    for d := 0; d < rank; d++ {
        m, err := indexspace.SingleInputDimensionMap(0, 1, d)
        if err != nil {
            return err
        }
        outputMaps[d] = m
        gridDims[d] = d
    }

    transform, err := indexspace.NewIndexTransform(domain, outputMaps)
    if err != nil {
        return err
    }

    g, err := buildGrid(rank, *cellSizeFlag, *splitsFlag)
    if err != nil {
        return err
    }

    var stats render.Stats

    if (mode & modeShowBoxes) != 0 {
        gridBounds, ok := g.Bounds()
        if !ok {
            return fmt.Errorf("%w: -ranges requires a bounded grid; pass -splits instead of -cellsize, or supply finite split points", errBadFlag)
        }
        err = partition.GetGridCellRanges(transform, gridDims, gridBounds, g, func(b indexspace.Box) error {
            stats.AddBox()
            fmt.Println(render.Box(opts, b))
            return nil
        })
    } else {
        err = partition.Partition(transform, gridDims, g, func(idx []indexspace.Index, ct indexspace.IndexTransform) error {
            stats.AddBox()
            volume := int64(1)
            for _, iv := range ct.Domain {
                volume *= int64(iv.Size)
            }
            stats.AddCell(volume)
            fmt.Printf("%s: %s\n", render.CellIndices(opts, idx), render.Transform(opts, ct))
            return nil
        })
    }
    if err != nil {
        return err
    }

    fmt.Println(opts.Summary(stats))
    return nil
}

func parseDomain(s string) (indexspace.Box, error) {
    parts := strings.Split(s, ",")
    b := make(indexspace.Box, 0, len(parts))
    for _, p := range parts {
        lohi := strings.SplitN(p, ":", 2)
        if len(lohi) != 2 {
            return nil, fmt.Errorf("%w: domain interval %q must be lo:hi", errBadFlag, p)
        }
        lo, err := strconv.ParseInt(strings.TrimSpace(lohi[0]), 10, 64)
        if err != nil {
            return nil, fmt.Errorf("%w: domain interval %q: %v", errBadFlag, p, err)
        }
        hi, err := strconv.ParseInt(strings.TrimSpace(lohi[1]), 10, 64)
        if err != nil {
            return nil, fmt.Errorf("%w: domain interval %q: %v", errBadFlag, p, err)
        }
        iv, err := indexspace.NewIndexInterval(indexspace.Index(lo), indexspace.Index(hi-lo))
        if err != nil {
            return nil, err
        }
        b = append(b, iv)
    }
    return b, nil
}

func buildGrid(rank int, cellSizeFlag, splitsFlag string) (grid.Grid, error) {
    if (cellSizeFlag != "") && (splitsFlag != "") {
        return nil, fmt.Errorf("%w: -cellsize and -splits are mutually exclusive", errBadFlag)
    }
    if splitsFlag != "" {
        groups := strings.Split(splitsFlag, ";")
        if len(groups) != rank {
            return nil, fmt.Errorf("%w: -splits has %d dimension group(s), domain has rank %d", errBadFlag, len(groups), rank)
        }
        pts := make([][]indexspace.Index, rank)
        for d, g := range groups {
            if g == "" {
                continue
            }
            for _, s := range strings.Split(g, ",") {
                v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
                if err != nil {
                    return nil, fmt.Errorf("%w: -splits dim %d: %v", errBadFlag, d, err)
                }
                pts[d] = append(pts[d], indexspace.Index(v))
            }
        }
        irr, err := grid.NewIrregularGrid(pts)
        if err != nil {
            return nil, err
        }
        return irr, nil
    }

    sizes := make([]indexspace.Index, rank)
    for i := range sizes {
        sizes[i] = 1
    }
    if cellSizeFlag != "" {
        parts := strings.Split(cellSizeFlag, ",")
        if len(parts) != rank {
            return nil, fmt.Errorf("%w: -cellsize has %d value(s), domain has rank %d", errBadFlag, len(parts), rank)
        }
        for i, p := range parts {
            v, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
            if err != nil {
                return nil, fmt.Errorf("%w: -cellsize: %v", errBadFlag, err)
            }
            sizes[i] = indexspace.Index(v)
        }
    }
    reg, err := grid.NewRegularGrid(sizes)
    if err != nil {
        return nil, err
    }
    return reg, nil
}
