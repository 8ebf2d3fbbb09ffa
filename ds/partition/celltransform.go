package partition

import (
    "github.com/tawesoft/gridspace/ds/indexspace"
)

// buildCellTransform assembles the restricted cell transform for one chosen
// combination of per-set candidates (chosen[i] corresponds to plan.sets[i]).
// Its domain has one dimension per unbound original input dim, one per
// strided connected set with a shared input dim, and one auxiliary
// dimension per index-array connected set (sized to that set's chosen row
// count) - not one per grid dimension, since grid dims sharing a connected
// set are coupled, not independent (see DESIGN.md).
func buildCellTransform(plan *Plan, chosen []candidate) indexspace.IndexTransform {
    domain := make(indexspace.Box, 0, plan.Transform.Rank())
    outputMaps := make([]indexspace.OutputIndexMap, plan.Transform.Rank())

    for _, d := range plan.unboundInputDims {
        localPos := len(domain)
        domain = append(domain, plan.Transform.Domain[d])
        m, _ := indexspace.SingleInputDimensionMap(0, 1, localPos)
        outputMaps[d] = m
    }

    for i, cs := range plan.sets {
        cand := chosen[i]
        if cs.isIndexArray {
            if len(cs.inputDims) == 0 {
                continue
            }
            localPos := len(domain)
            rows := cand.rows
            domain = append(domain, indexspace.IndexInterval{Origin: 0, Size: indexspace.Index(len(rows))})

            for j, d := range cs.inputDims {
                data := make([]indexspace.Index, len(rows))
                for r, row := range rows {
                    data[r] = row[j]
                }
                arr, _ := indexspace.NewIndexArray(
                    []indexspace.Index{0},
                    []indexspace.Index{indexspace.Index(len(rows))},
                    data,
                )
                m, _ := indexspace.IndexArrayMap(0, 1, arr, []int{localPos})
                outputMaps[d] = m
            }
        } else {
            if len(cs.inputDims) == 0 {
                // a singleton Constant grid dim: no original input dim to restrict.
                continue
            }
            localPos := len(domain)
            domain = append(domain, cand.inputInterval)
            m, _ := indexspace.SingleInputDimensionMap(0, 1, localPos)
            outputMaps[cs.inputDims[0]] = m
        }
    }

    // NewIndexTransform cannot fail here: every dimension and array shape is
    // constructed consistently above.
    tr, _ := indexspace.NewIndexTransform(domain, outputMaps)
    return tr
}
