package automorphism

import "sort"

type labelledNeighbour struct {
	pos  int
	rank int
}

// ConnectivityComparator returns a CompareMappedFunc that compares the
// adjacency matrices of two labellings row by row: first the row size, then
// neighbour positions, then edge ranks (edgeRank may be nil). Larger wins.
func ConnectivityComparator(edgeRank EdgeRankFunc) CompareMappedFunc {
	return func(g Graph, a, b []int) int {
		rowsA := labelledRows(g, a, edgeRank)
		rowsB := labelledRows(g, b, edgeRank)
		for i := range rowsA {
			ra, rb := rowsA[i], rowsB[i]
			if len(ra) != len(rb) {
				return sign(len(ra) - len(rb))
			}
			for j := range ra {
				if ra[j].pos != rb[j].pos {
					return sign(ra[j].pos - rb[j].pos)
				}
				if ra[j].rank != rb[j].rank {
					return sign(ra[j].rank - rb[j].rank)
				}
			}
		}

		return 0
	}
}

// labelledRows lists, per label position, the positions and edge ranks of
// the neighbours among the labelled vertices, sorted by position.
func labelledRows(g Graph, labelling []int, edgeRank EdgeRankFunc) [][]labelledNeighbour {
	pos := make([]int, g.Order())
	for i := range pos {
		pos[i] = -1
	}
	for p, v := range labelling {
		pos[v] = p
	}

	rows := make([][]labelledNeighbour, len(labelling))
	for e := 0; e < g.Size(); e++ {
		u, v := g.Endpoints(e)
		pu, pv := pos[u], pos[v]
		if pu < 0 || pv < 0 {
			continue
		}
		r := 0
		if edgeRank != nil {
			r = edgeRank(g, e)
		}
		rows[pu] = append(rows[pu], labelledNeighbour{pos: pv, rank: r})
		rows[pv] = append(rows[pv], labelledNeighbour{pos: pu, rank: r})
	}
	for _, row := range rows {
		sort.Slice(row, func(i, j int) bool { return row[i].pos < row[j].pos })
	}

	return rows
}

func sign(d int) int {
	switch {
	case d > 0:
		return 1
	case d < 0:
		return -1
	default:
		return 0
	}
}
