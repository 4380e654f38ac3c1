package layout

// Scale carries the pixel constants a calendar surface renders with.
type Scale struct {
	PxPerHour float64 // vertical: pixels per hour of the time axis
	MinSizePx float64 // floor on the time-axis extent of a chip
	LaneGapPx float64 // gap between adjacent lanes
}

// Box is an absolute position and size inside a calendar cell, in pixels.
type Box struct {
	Top    float64 `json:"top"`
	Left   float64 `json:"left"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// timeExtent converts a minute range to (position, size) along the time
// axis. Size is floored so very short events stay visible and clickable.
func (s Scale) timeExtent(startMin, endMin, dayStartMin int) (float64, float64) {
	offset := float64(startMin-dayStartMin) / 60 * s.PxPerHour
	size := float64(endMin-startMin) / 60 * s.PxPerHour
	if size < s.MinSizePx {
		size = s.MinSizePx
	}
	return offset, size
}

// laneExtent divides the cross-axis extent equally among lanes and places
// the given lane, keeping the configured gap between neighbours.
func (s Scale) laneExtent(lane, laneCount int, crossExtent float64) (float64, float64) {
	if laneCount < 1 {
		laneCount = 1
	}
	slot := crossExtent / float64(laneCount)
	offset := float64(lane) * slot
	size := slot - s.LaneGapPx
	if size < 0 {
		size = 0
	}
	return offset, size
}

// VerticalBox positions a chip in a day column: time runs top to bottom,
// lanes split the column width. dayStartMin is the first visible minute of
// the column; columnWidth is its inner width in pixels.
func (s Scale) VerticalBox(startMin, endMin, dayStartMin int, lane, laneCount int, columnWidth float64) Box {
	top, height := s.timeExtent(startMin, endMin, dayStartMin)
	left, width := s.laneExtent(lane, laneCount, columnWidth)
	return Box{Top: top, Left: left, Width: width, Height: height}
}

// HorizontalBox positions a chip on a single-day timeline: time runs left
// to right, lanes split the row height.
func (s Scale) HorizontalBox(startMin, endMin, dayStartMin int, lane, laneCount int, rowHeight float64) Box {
	left, width := s.timeExtent(startMin, endMin, dayStartMin)
	top, height := s.laneExtent(lane, laneCount, rowHeight)
	return Box{Top: top, Left: left, Width: width, Height: height}
}
