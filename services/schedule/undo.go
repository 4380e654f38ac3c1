package schedule

import (
	"sort"
	"strings"

	"shiftflow/models"
)

// Undo reverts a recorded action. create hides the created shifts, delete
// restores them, publish reverts them to draft. A zero count means the
// record went stale (shifts changed since), which callers report as
// nothing to undo.
func (s *DefaultScheduleService) Undo(managerID string, action models.LastAction) (UndoResult, error) {
	kind := strings.ToLower(action.Action)
	ids := cleanIDList(action.ShiftIDs)
	sort.Strings(ids)
	if len(ids) == 0 {
		return UndoResult{Action: kind}, nil
	}

	var count int64
	var err error
	switch kind {
	case models.ActionCreate:
		count, err = s.ShiftRepo.SoftDelete(managerID, ids)
	case models.ActionDelete:
		count, err = s.ShiftRepo.Restore(managerID, ids)
	case models.ActionPublish:
		count, err = s.revertPublished(managerID, ids)
	default:
		return UndoResult{Action: kind}, nil
	}
	if err != nil {
		return UndoResult{}, err
	}
	return UndoResult{Action: kind, Count: count}, nil
}

// revertPublished only reverts shifts that are still published; drafts and
// re-deleted shifts among the ids are left alone.
func (s *DefaultScheduleService) revertPublished(managerID string, ids []string) (int64, error) {
	shifts, err := s.ShiftRepo.FindByIDs(managerID, ids)
	if err != nil {
		return 0, err
	}
	var published []string
	for _, shift := range shifts {
		if shift.Status == models.ShiftStatusPublished {
			published = append(published, shift.ID)
		}
	}
	if len(published) == 0 {
		return 0, nil
	}
	return s.ShiftRepo.SetStatus(managerID, published, models.ShiftStatusDraft)
}
