package render

import (
    "fmt"

    "github.com/tawesoft/gridspace/operator"
)

// Stats accumulates summary counters over a Partition or GetGridCellRanges
// run, for a one-line "M box(es), N cell(s), ..." footer (see [Options.Summary]).
type Stats struct {
    Boxes         int
    Cells         int64
    PointsCovered int64
}

// AddBox records one emitted box or cell-transform callback.
func (s *Stats) AddBox() {
    s.Boxes = operator.Add(s.Boxes, 1)
}

// AddCell records one emitted cell, together with the number of input
// points its restricted transform's domain covers.
func (s *Stats) AddCell(volume int64) {
    s.Cells = operator.Add(s.Cells, int64(1))
    s.PointsCovered = operator.Add(s.PointsCovered, volume)
}

// AverageCellVolume returns the mean number of points per emitted cell, or
// zero if no cells were recorded.
func (s Stats) AverageCellVolume() float64 {
    if !operator.IsStrictlyPositive(s.Cells) {
        return 0
    }
    return operator.Div(float64(s.PointsCovered), float64(s.Cells))
}

// Summary renders a one-line footer describing s.
func (o Options) Summary(s Stats) string {
    return o.finish(fmt.Sprintf(
        "%d box(es), %d cell(s), %.1f points/cell average",
        s.Boxes, s.Cells, s.AverageCellVolume(),
    ))
}
