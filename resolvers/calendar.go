package resolvers

import (
	"time"

	"shiftflow/config"
	"shiftflow/layout"
	"shiftflow/models"
	"shiftflow/services/schedule"
	"shiftflow/utils"
)

// ScaleFromConfig builds the pixel scale calendar chips are laid out with.
// The same constants reach clients through page URLs so server geometry
// and client rendering agree.
func ScaleFromConfig() layout.Scale {
	return layout.Scale{
		PxPerHour: config.AppConfig.LayoutPxPerHour,
		MinSizePx: config.AppConfig.LayoutMinChipPx,
		LaneGapPx: config.AppConfig.LayoutLaneGapPx,
	}
}

// BuildCalendar lays out the visible shifts for the resolved view. The
// unavailable set marks month cells on the availability calendar; nil is
// fine elsewhere.
func BuildCalendar(query schedule.ViewQuery, shifts []models.Shift, today time.Time, unavailable map[string]bool) models.Calendar {
	switch query.View {
	case models.ViewDay:
		day := buildDayTimeline(query.Anchor, shifts, today)
		return models.Calendar{View: models.ViewDay, Day: &day}
	case models.ViewMonth:
		return models.Calendar{
			View:  models.ViewMonth,
			Weeks: buildMonthGrid(query.Start, query.End, shifts, today, unavailable),
		}
	default:
		return models.Calendar{
			View: models.ViewWeek,
			Week: buildWeekColumns(query.Start, shifts, today),
		}
	}
}

// bucketByDate groups shifts per date, preserving calendar order.
func bucketByDate(shifts []models.Shift) map[string][]models.Shift {
	byDate := make(map[string][]models.Shift)
	for _, s := range shifts {
		byDate[s.Date] = append(byDate[s.Date], s)
	}
	return byDate
}

// layoutChips assigns lanes to one day's shifts and maps each onto its
// pixel box. vertical selects week-column geometry; the day timeline runs
// horizontally.
func layoutChips(shifts []models.Shift, vertical bool) ([]models.ShiftChip, int) {
	intervals := make([]layout.Interval, 0, len(shifts))
	for _, s := range shifts {
		intervals = append(intervals, layout.Interval{ID: s.ID, Start: s.StartMinutes(), End: s.EndMinutes()})
	}
	lanes, laneCount := layout.ComputeLanes(intervals)

	scale := ScaleFromConfig()
	chips := make([]models.ShiftChip, 0, len(shifts))
	for _, s := range shifts {
		lane := lanes[s.ID]
		var box layout.Box
		if vertical {
			box = scale.VerticalBox(s.StartMinutes(), s.EndMinutes(), 0, lane, laneCount, config.AppConfig.LayoutColumnWidth)
		} else {
			box = scale.HorizontalBox(s.StartMinutes(), s.EndMinutes(), 0, lane, laneCount, config.AppConfig.LayoutTimelineRow)
		}
		chips = append(chips, models.ShiftChip{
			ShiftID:   s.ID,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Lane:      lane,
			LaneCount: laneCount,
			Box:       box,
		})
	}
	return chips, laneCount
}

func buildDayTimeline(anchor time.Time, shifts []models.Shift, today time.Time) models.DayColumn {
	date := anchor.Format(utils.DateLayout)
	var dayShifts []models.Shift
	for _, s := range shifts {
		if s.Date == date {
			dayShifts = append(dayShifts, s)
		}
	}
	chips, laneCount := layoutChips(dayShifts, false)
	return models.DayColumn{
		Date:      date,
		Today:     date == today.Format(utils.DateLayout),
		LaneCount: laneCount,
		Chips:     chips,
	}
}

func buildWeekColumns(start time.Time, shifts []models.Shift, today time.Time) []models.DayColumn {
	byDate := bucketByDate(shifts)
	todayISO := today.Format(utils.DateLayout)

	columns := make([]models.DayColumn, 0, 7)
	for i := 0; i < 7; i++ {
		date := start.AddDate(0, 0, i).Format(utils.DateLayout)
		chips, laneCount := layoutChips(byDate[date], true)
		columns = append(columns, models.DayColumn{
			Date:      date,
			Today:     date == todayISO,
			LaneCount: laneCount,
			Chips:     chips,
		})
	}
	return columns
}

// buildMonthGrid covers the month bounds with whole Monday-started weeks;
// leading and trailing cells belong to adjacent months. Cells list shift
// ids up to the configured cap and count the hidden remainder.
func buildMonthGrid(start, end time.Time, shifts []models.Shift, today time.Time, unavailable map[string]bool) [][]models.MonthCell {
	byDate := bucketByDate(shifts)
	todayISO := today.Format(utils.DateLayout)
	limit := config.AppConfig.MonthCellChipLimit

	var weeks [][]models.MonthCell
	for monday := schedule.MondayOf(start); !monday.After(end); monday = monday.AddDate(0, 0, 7) {
		week := make([]models.MonthCell, 0, 7)
		for i := 0; i < 7; i++ {
			day := monday.AddDate(0, 0, i)
			date := day.Format(utils.DateLayout)

			cellShifts := byDate[date]
			ids := make([]string, 0, len(cellShifts))
			for _, s := range cellShifts {
				ids = append(ids, s.ID)
			}
			overflow := 0
			if limit > 0 && len(ids) > limit {
				overflow = len(ids) - limit
				ids = ids[:limit]
			}

			week = append(week, models.MonthCell{
				Date:        date,
				InMonth:     day.Month() == start.Month(),
				Today:       date == todayISO,
				ShiftIDs:    ids,
				Overflow:    overflow,
				Unavailable: unavailable[date],
			})
		}
		weeks = append(weeks, week)
	}
	return weeks
}
