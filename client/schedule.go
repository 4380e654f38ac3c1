package client

import (
	"context"
	"fmt"
	"net/url"

	"shiftflow/models"
)

// ManagerSchedule is a loaded manager calendar page. Mutations reach the
// server through the URL templates the page carries; after one succeeds
// the caller re-fetches (the redirect URL keeps the saved shift visible).
type ManagerSchedule struct {
	client *Client
	Page   *models.ManagerSchedulePage
}

// ManagerSchedule fetches the manager calendar for a view state.
func (c *Client) ManagerSchedule(ctx context.Context, state ViewState) (*ManagerSchedule, error) {
	var page models.ManagerSchedulePage
	if err := c.getJSON(ctx, state.URL(ManagerShiftsPath), nil, &page); err != nil {
		return nil, err
	}
	return &ManagerSchedule{client: c, Page: &page}, nil
}

// ViewState reads the page's navigation state back.
func (s *ManagerSchedule) ViewState() ViewState { return ManagerViewState(s.Page) }

// Toasts converts the page's flash messages.
func (s *ManagerSchedule) Toasts() []Toast { return FlashToasts(s.Page.Flashes) }

// urlFor resolves one of the page's action URL templates.
func (s *ManagerSchedule) urlFor(action string) (string, error) {
	target, ok := s.Page.URLs[action]
	if !ok || target == "" {
		return "", fmt.Errorf("client: page carries no URL for %q", action)
	}
	return target, nil
}

func (s *ManagerSchedule) resourceURL(action, id string) (string, error) {
	template, err := s.urlFor(action)
	if err != nil {
		return "", err
	}
	return ResourceURL(template, id), nil
}

// ShiftForm carries the shift modal's fields. Values stay raw strings;
// the server is the validation authority and round-trips them back on
// failure.
type ShiftForm struct {
	Date        string
	StartTime   string
	EndTime     string
	PositionID  string
	Capacity    string
	Publish     bool
	EmployeeIDs []string
}

// FormFromState refills a form from round-tripped state after a failed
// save.
func FormFromState(state *models.ShiftFormState) ShiftForm {
	if state == nil {
		return ShiftForm{}
	}
	return ShiftForm{
		Date:        state.Date,
		StartTime:   state.StartTime,
		EndTime:     state.EndTime,
		PositionID:  state.PositionID,
		Capacity:    state.Capacity,
		Publish:     state.Publish,
		EmployeeIDs: state.EmployeeIDs,
	}
}

func (f ShiftForm) values() url.Values {
	form := url.Values{}
	form.Set("date", f.Date)
	form.Set("start_time", f.StartTime)
	form.Set("end_time", f.EndTime)
	form.Set("position_id", f.PositionID)
	form.Set("capacity", f.Capacity)
	if f.Publish {
		form.Set("publish", "1")
	}
	for _, id := range f.EmployeeIDs {
		form.Add("employee_ids", id)
	}
	return form
}

// CreateShift saves a new shift. A false OK means validation failed; the
// rejected input waits in the next page's form-state island.
func (s *ManagerSchedule) CreateShift(ctx context.Context, form ShiftForm) (*ActionResult, error) {
	return s.postAction(ctx, "create_shift", "", form.values())
}

// UpdateShift saves changes to a shift.
func (s *ManagerSchedule) UpdateShift(ctx context.Context, id string, form ShiftForm) (*ActionResult, error) {
	return s.postAction(ctx, "update_shift", id, form.values())
}

// DeleteShift soft-deletes a shift. Undo can restore it.
func (s *ManagerSchedule) DeleteShift(ctx context.Context, id string) (*ActionResult, error) {
	return s.postAction(ctx, "delete_shift", id, nil)
}

// PublishShift publishes one shift. Blocked or already-published outcomes
// arrive as flashes on the redirect.
func (s *ManagerSchedule) PublishShift(ctx context.Context, id string) (*ActionResult, error) {
	return s.postAction(ctx, "publish_shift", id, nil)
}

// ShiftDetails fetches the popup payload for one shift.
func (s *ManagerSchedule) ShiftDetails(ctx context.Context, id string) (*models.ShiftDetails, error) {
	target, err := s.resourceURL("shift_details", id)
	if err != nil {
		return nil, err
	}
	var details models.ShiftDetails
	if err := s.client.getJSON(ctx, target, nil, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// Undo reverts the manager's last create, delete, or publish. One-shot.
func (s *ManagerSchedule) Undo(ctx context.Context) (*ActionResult, error) {
	return s.postAction(ctx, "undo", "", nil)
}

// PublishAll publishes every draft in the page's visible range; drafts
// with an unavailable assignee stay draft and are reported by flash.
func (s *ManagerSchedule) PublishAll(ctx context.Context) (*ActionResult, error) {
	return s.bulkAction(ctx, "publish", nil)
}

// DeleteDrafts soft-deletes every draft in the page's visible range.
func (s *ManagerSchedule) DeleteDrafts(ctx context.Context) (*ActionResult, error) {
	return s.bulkAction(ctx, "delete_drafts", nil)
}

// PublishSelected publishes the selected shifts.
func (s *ManagerSchedule) PublishSelected(ctx context.Context, shiftIDs []string) (*ActionResult, error) {
	return s.bulkAction(ctx, "publish_selected", shiftIDs)
}

// DeleteSelected deletes the selected shifts, published ones included.
func (s *ManagerSchedule) DeleteSelected(ctx context.Context, shiftIDs []string) (*ActionResult, error) {
	return s.bulkAction(ctx, "delete_selected", shiftIDs)
}

// bulkAction posts an action against the page URL. The current view query
// rides along because the range actions operate on the visible period.
func (s *ManagerSchedule) bulkAction(ctx context.Context, action string, shiftIDs []string) (*ActionResult, error) {
	pageURL, err := s.urlFor("page")
	if err != nil {
		return nil, err
	}
	form := url.Values{}
	form.Set("action", action)
	for _, id := range shiftIDs {
		form.Add("shift_ids", id)
	}

	var result ActionResult
	if err := s.client.postForm(ctx, s.ViewState().URL(pageURL), form, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *ManagerSchedule) postAction(ctx context.Context, action, id string, form url.Values) (*ActionResult, error) {
	var target string
	var err error
	if id == "" {
		target, err = s.urlFor(action)
	} else {
		target, err = s.resourceURL(action, id)
	}
	if err != nil {
		return nil, err
	}

	var result ActionResult
	if err := s.client.postForm(ctx, target, form, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
