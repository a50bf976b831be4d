package timetable

import "sort"

// LaidOutItem is an appointment or break with its resolved position on
// the day grid: absolute minute bounds, vertical pixel geometry and the
// sub-column it occupies inside its overlap cluster. Widths are
// percentages of the staff column.
type LaidOutItem struct {
	Appointment

	StartMinutes int `json:"start_minutes"`
	EndMinutes   int `json:"end_minutes"`

	TopOffset float64 `json:"top_offset"`
	Height    float64 `json:"height"`

	ColumnIndex int     `json:"column_index"`
	ColumnCount int     `json:"column_count"`
	WidthPct    float64 `json:"width_pct"`
	LeftPct     float64 `json:"left_pct"`
}

// Layout packs one staff column's appointments (normally already run
// through WithBreaks) into render-ready items.
//
// Clustering is greedy: items are taken in start order and join the
// first existing cluster containing any item they overlap, else open a
// new one. A cluster therefore holds a transitive chain of overlaps,
// not a pairwise clique, and every member gets its own sub-column in
// insertion order. Two members that do not overlap each other still
// occupy separate columns when a third item chains them together.
// That mirrors how simple calendar UIs render and is kept on purpose,
// even though a real graph coloring could pack tighter.
func Layout(items []Appointment, cfg GridConfig) []LaidOutItem {
	if len(items) == 0 {
		return nil
	}
	cfg = cfg.withDefaults()

	out := make([]LaidOutItem, 0, len(items))
	for _, it := range items {
		out = append(out, LaidOutItem{
			Appointment:  it,
			StartMinutes: ToMinutes(it.Start),
			EndMinutes:   ToMinutes(it.End),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartMinutes < out[j].StartMinutes
	})

	// Clusters hold indexes into out.
	var clusters [][]int
	for i := range out {
		placed := false

		for ci := range clusters {
			for _, mi := range clusters[ci] {
				if Overlaps(out[i].StartMinutes, out[i].EndMinutes, out[mi].StartMinutes, out[mi].EndMinutes) {
					out[i].ColumnIndex = len(clusters[ci])
					clusters[ci] = append(clusters[ci], i)
					placed = true
					break
				}
			}
			if placed {
				break // first matching cluster wins, never bridge two
			}
		}

		if !placed {
			clusters = append(clusters, []int{i})
		}
	}

	gridStart := cfg.StartHour * 60
	step := float64(cfg.StepMinutes)
	slotPx := float64(cfg.SlotHeightPx)

	for _, members := range clusters {
		width := 100.0 / float64(len(members))

		for _, mi := range members {
			it := &out[mi]
			it.ColumnCount = len(members)
			it.WidthPct = width
			it.LeftPct = width * float64(it.ColumnIndex)
			it.TopOffset = float64(it.StartMinutes-gridStart) / step * slotPx
			it.Height = float64(it.EndMinutes-it.StartMinutes) / step * slotPx
		}
	}

	return out
}
