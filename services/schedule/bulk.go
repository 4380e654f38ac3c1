package schedule

import (
	"sort"
	"strings"
	"time"

	shiftRepo "shiftflow/database/repository/shift"
	"shiftflow/models"
	"shiftflow/utils"
)

// NormalizeSelection merges comma-separated and repeated shift_ids form
// values into a deduplicated, sorted id list.
func NormalizeSelection(values []string) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" || seen[part] {
				continue
			}
			seen[part] = true
			ids = append(ids, part)
		}
	}
	sort.Strings(ids)
	return ids
}

// blockedByUnavailability partitions drafts into publishable ids and ids
// blocked by an assigned employee being unavailable on the shift date.
func (s *DefaultScheduleService) blockedByUnavailability(drafts []models.Shift) (publishable, blocked []string, err error) {
	if len(drafts) == 0 {
		return nil, nil, nil
	}

	minDate, maxDate := drafts[0].Date, drafts[0].Date
	for _, shift := range drafts[1:] {
		if shift.Date < minDate {
			minDate = shift.Date
		}
		if shift.Date > maxDate {
			maxDate = shift.Date
		}
	}
	records, err := s.UnavailabilityRepo.FindInRange(minDate, maxDate)
	if err != nil {
		return nil, nil, err
	}
	unavailable := make(map[string]map[string]bool)
	for _, record := range records {
		if unavailable[record.Date] == nil {
			unavailable[record.Date] = make(map[string]bool)
		}
		unavailable[record.Date][record.EmployeeID] = true
	}

	for _, shift := range drafts {
		isBlocked := false
		for _, employeeID := range shift.AssignedEmployeeIDs {
			if unavailable[shift.Date][employeeID] {
				isBlocked = true
				break
			}
		}
		if isBlocked {
			blocked = append(blocked, shift.ID)
		} else {
			publishable = append(publishable, shift.ID)
		}
	}
	return publishable, blocked, nil
}

func (s *DefaultScheduleService) publishDrafts(managerID string, drafts []models.Shift) (BulkResult, error) {
	publishable, blocked, err := s.blockedByUnavailability(drafts)
	if err != nil {
		return BulkResult{}, err
	}
	if len(publishable) > 0 {
		if _, err := s.ShiftRepo.SetStatus(managerID, publishable, models.ShiftStatusPublished); err != nil {
			return BulkResult{}, err
		}
		for _, shift := range drafts {
			if containsID(publishable, shift.ID) {
				shift.Status = models.ShiftStatusPublished
				s.notifyPublished(shift)
			}
		}
	}
	return BulkResult{ShiftIDs: publishable, Blocked: blocked}, nil
}

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

// PublishRange publishes all drafts in the inclusive date range, skipping
// shifts blocked by assigned-employee unavailability.
func (s *DefaultScheduleService) PublishRange(managerID string, start, end time.Time) (BulkResult, error) {
	drafts, err := s.ShiftRepo.Find(shiftRepo.Filter{
		ManagerID: managerID,
		DateFrom:  start.Format(utils.DateLayout),
		DateTo:    end.Format(utils.DateLayout),
		Status:    models.ShiftStatusDraft,
	})
	if err != nil {
		return BulkResult{}, err
	}
	return s.publishDrafts(managerID, drafts)
}

// DeleteDraftsInRange soft-deletes all drafts in the inclusive date range.
func (s *DefaultScheduleService) DeleteDraftsInRange(managerID string, start, end time.Time) (BulkResult, error) {
	drafts, err := s.ShiftRepo.Find(shiftRepo.Filter{
		ManagerID: managerID,
		DateFrom:  start.Format(utils.DateLayout),
		DateTo:    end.Format(utils.DateLayout),
		Status:    models.ShiftStatusDraft,
	})
	if err != nil {
		return BulkResult{}, err
	}
	ids := shiftIDs(drafts)
	if len(ids) > 0 {
		if _, err := s.ShiftRepo.SoftDelete(managerID, ids); err != nil {
			return BulkResult{}, err
		}
	}
	return BulkResult{ShiftIDs: ids}, nil
}

// PublishSelected publishes the drafts among the given shift ids.
func (s *DefaultScheduleService) PublishSelected(managerID string, shiftIDList []string) (BulkResult, error) {
	shifts, err := s.ShiftRepo.FindByIDs(managerID, shiftIDList)
	if err != nil {
		return BulkResult{}, err
	}
	var drafts []models.Shift
	for _, shift := range shifts {
		if shift.Status == models.ShiftStatusDraft {
			drafts = append(drafts, shift)
		}
	}
	return s.publishDrafts(managerID, drafts)
}

// DeleteSelected soft-deletes the given shifts, published ones included.
func (s *DefaultScheduleService) DeleteSelected(managerID string, shiftIDList []string) (BulkResult, error) {
	shifts, err := s.ShiftRepo.FindByIDs(managerID, shiftIDList)
	if err != nil {
		return BulkResult{}, err
	}
	ids := shiftIDs(shifts)
	if len(ids) > 0 {
		if _, err := s.ShiftRepo.SoftDelete(managerID, ids); err != nil {
			return BulkResult{}, err
		}
	}
	return BulkResult{ShiftIDs: ids}, nil
}

func shiftIDs(shifts []models.Shift) []string {
	ids := make([]string, 0, len(shifts))
	for _, shift := range shifts {
		ids = append(ids, shift.ID)
	}
	return ids
}
