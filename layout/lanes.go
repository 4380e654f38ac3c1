// Package layout assigns display lanes to overlapping time intervals and
// maps them to pixel geometry for calendar rendering. Every function is
// pure; callers lay out each calendar day as its own independent batch.
package layout

import "sort"

// Interval is one event to lay out, with times in minutes from midnight.
// A zero or negative duration is valid input and occupies [Start, End).
type Interval struct {
	ID    string
	Start int
	End   int
}

// ComputeLanes assigns each interval the first lane it fits into, scanning
// lanes in order after sorting by (start, end, id). Two intervals share a
// lane only if the later one starts at or after the earlier one ends, so
// overlapping intervals always land on different lanes while back-to-back
// intervals may stack into the same lane.
//
// The lane count is never below one, so callers can divide a column extent
// by it without guarding against zero. Duplicate ids keep the last
// assignment written.
func ComputeLanes(intervals []Interval) (map[string]int, int) {
	laneByID := make(map[string]int, len(intervals))
	if len(intervals) == 0 {
		return laneByID, 1
	}

	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if a.End != b.End {
			return a.End < b.End
		}
		return a.ID < b.ID
	})

	var laneEnds []int
	for _, iv := range sorted {
		lane := -1
		for i, end := range laneEnds {
			if iv.Start >= end {
				lane = i
				break
			}
		}
		if lane == -1 {
			laneEnds = append(laneEnds, iv.End)
			lane = len(laneEnds) - 1
		} else {
			laneEnds[lane] = iv.End
		}
		laneByID[iv.ID] = lane
	}

	count := len(laneEnds)
	if count < 1 {
		count = 1
	}
	return laneByID, count
}
