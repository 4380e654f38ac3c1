package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shiftflow/layout"
)

func TestVerticalBox(t *testing.T) {
	scale := layout.Scale{PxPerHour: 60, MinSizePx: 12, LaneGapPx: 2}

	tests := map[string]struct {
		startMin, endMin int
		lane, laneCount  int
		columnWidth      float64
		want             layout.Box
	}{
		"FullHourSingleLane": {
			// 09:00-10:00 from a midnight-based column.
			startMin: 540, endMin: 600,
			lane: 0, laneCount: 1, columnWidth: 100,
			want: layout.Box{Top: 540, Left: 0, Width: 98, Height: 60},
		},
		"FifteenMinutesKeepsNaturalSize": {
			// 15 minutes at 60 px/h is 15 px, above the 12 px floor.
			startMin: 540, endMin: 555,
			lane: 0, laneCount: 1, columnWidth: 100,
			want: layout.Box{Top: 540, Left: 0, Width: 98, Height: 15},
		},
		"FiveMinutesHitsFloor": {
			startMin: 540, endMin: 545,
			lane: 0, laneCount: 1, columnWidth: 100,
			want: layout.Box{Top: 540, Left: 0, Width: 98, Height: 12},
		},
		"SecondLaneOfTwo": {
			startMin: 570, endMin: 630,
			lane: 1, laneCount: 2, columnWidth: 100,
			want: layout.Box{Top: 570, Left: 50, Width: 48, Height: 60},
		},
		"ZeroLaneCountTreatedAsOne": {
			startMin: 0, endMin: 60,
			lane: 0, laneCount: 0, columnWidth: 100,
			want: layout.Box{Top: 0, Left: 0, Width: 98, Height: 60},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := scale.VerticalBox(tc.startMin, tc.endMin, 0, tc.lane, tc.laneCount, tc.columnWidth)
			assert.InDelta(t, tc.want.Top, got.Top, 1e-9)
			assert.InDelta(t, tc.want.Left, got.Left, 1e-9)
			assert.InDelta(t, tc.want.Width, got.Width, 1e-9)
			assert.InDelta(t, tc.want.Height, got.Height, 1e-9)
		})
	}
}

func TestVerticalBoxDayStartOffset(t *testing.T) {
	scale := layout.Scale{PxPerHour: 60, MinSizePx: 12, LaneGapPx: 2}

	// Column starts at 06:00, so 09:00 sits three hours down.
	got := scale.VerticalBox(540, 600, 360, 0, 1, 100)
	assert.InDelta(t, 180.0, got.Top, 1e-9)
	assert.InDelta(t, 60.0, got.Height, 1e-9)
}

func TestHorizontalBoxSwapsAxes(t *testing.T) {
	scale := layout.Scale{PxPerHour: 60, MinSizePx: 12, LaneGapPx: 2}

	got := scale.HorizontalBox(570, 630, 0, 1, 2, 80)
	assert.InDelta(t, 570.0, got.Left, 1e-9)
	assert.InDelta(t, 60.0, got.Width, 1e-9)
	assert.InDelta(t, 40.0, got.Top, 1e-9)
	assert.InDelta(t, 38.0, got.Height, 1e-9)
}

func TestHorizontalBoxMinWidthFloor(t *testing.T) {
	scale := layout.Scale{PxPerHour: 60, MinSizePx: 12, LaneGapPx: 2}

	// One minute of timeline is 1 px, the floor lifts it to 12.
	got := scale.HorizontalBox(540, 541, 0, 0, 1, 80)
	assert.InDelta(t, 12.0, got.Width, 1e-9)
}

func TestClockMinutes(t *testing.T) {
	tests := map[string]struct {
		in   string
		want int
	}{
		"MorningShift":   {"09:00", 540},
		"HalfPast":       {"09:30", 570},
		"Midnight":       {"00:00", 0},
		"EndOfDay":       {"23:59", 1439},
		"SingleDigit":    {"9:05", 545},
		"Empty":          {"", 0},
		"Garbage":        {"later", 0},
		"MissingMinutes": {"09", 0},
		"NegativeHour":   {"-1:30", 0},
		"MinutesTooBig":  {"09:75", 0},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, layout.ClockMinutes(tc.in))
		})
	}
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "09:00", layout.FormatMinutes(540))
	assert.Equal(t, "09:05", layout.FormatMinutes(545))
	assert.Equal(t, "00:00", layout.FormatMinutes(0))
	assert.Equal(t, "23:59", layout.FormatMinutes(1439))
}
