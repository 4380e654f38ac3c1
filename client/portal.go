package client

import (
	"context"
	"fmt"
	"net/url"

	"shiftflow/models"
)

// EmployeeSchedule is a loaded "my shifts" page.
type EmployeeSchedule struct {
	client *Client
	Page   *models.EmployeeSchedulePage
}

// EmployeeSchedule fetches the employee calendar. Only View and Date of
// the state apply; the portal has no filters.
func (c *Client) EmployeeSchedule(ctx context.Context, state ViewState) (*EmployeeSchedule, error) {
	var page models.EmployeeSchedulePage
	if err := c.getJSON(ctx, state.URL(EmployeeShiftsPath), nil, &page); err != nil {
		return nil, err
	}
	return &EmployeeSchedule{client: c, Page: &page}, nil
}

// Shifts decodes the page's shift island.
func (s *EmployeeSchedule) Shifts() []models.EmployeeShiftPayload {
	return Island(s.Page.Islands, models.IslandShifts, []models.EmployeeShiftPayload{})
}

// Toasts converts the page's flash messages.
func (s *EmployeeSchedule) Toasts() []Toast { return FlashToasts(s.Page.Flashes) }

// UnavailabilityCalendar is a loaded availability page. Month view only.
type UnavailabilityCalendar struct {
	client *Client
	Page   *models.UnavailabilityPage
}

// UnavailabilityCalendar fetches the availability calendar anchored on a
// date ("" for the current month).
func (c *Client) UnavailabilityCalendar(ctx context.Context, date string) (*UnavailabilityCalendar, error) {
	query := url.Values{}
	if date != "" {
		query.Set("date", date)
	}
	var page models.UnavailabilityPage
	if err := c.getJSON(ctx, UnavailabilityPath, query, &page); err != nil {
		return nil, err
	}
	return &UnavailabilityCalendar{client: c, Page: &page}, nil
}

// UnavailableDays decodes the marked dates island.
func (cal *UnavailabilityCalendar) UnavailableDays() []string {
	return Island(cal.Page.Islands, models.IslandUnavailableDays, []string{})
}

// ToggleResult reports a date's new availability mark.
type ToggleResult struct {
	OK          bool   `json:"ok"`
	Date        string `json:"date"`
	Unavailable bool   `json:"unavailable"`
}

// Toggle flips the caller's availability mark for a date. Existing
// assignments are untouched; the mark only blocks future assignment and
// publishing.
func (cal *UnavailabilityCalendar) Toggle(ctx context.Context, date string) (*ToggleResult, error) {
	target, ok := cal.Page.URLs["toggle"]
	if !ok || target == "" {
		return nil, fmt.Errorf("client: page carries no URL for %q", "toggle")
	}
	form := url.Values{}
	form.Set("date", date)

	var result ToggleResult
	if err := cal.client.postForm(ctx, target, form, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
