package client

import (
	"net/url"

	"shiftflow/models"
)

// ViewState is the calendar navigation state a URL round-trips: view,
// anchor date, and the active filters. Navigation is a fresh page-state
// GET of the URL it builds.
type ViewState struct {
	View      string
	Date      string // "2006-01-02" anchor; empty lets the server pick today
	Positions []string
	Status    string
	Show      string // "understaffed" or empty
}

// ManagerViewState reads the navigation state back off a loaded manager
// page.
func ManagerViewState(page *models.ManagerSchedulePage) ViewState {
	if page == nil {
		return ViewState{}
	}
	show := ""
	if page.Understaffed {
		show = "understaffed"
	}
	return ViewState{
		View:      page.View,
		Date:      page.Anchor,
		Positions: page.SelectedPositions,
		Status:    page.Status,
		Show:      show,
	}
}

// Query encodes the state as calendar query parameters. Empty fields are
// omitted; positions repeat.
func (v ViewState) Query() url.Values {
	q := url.Values{}
	if v.View != "" {
		q.Set("view", v.View)
	}
	if v.Date != "" {
		q.Set("date", v.Date)
	}
	for _, id := range v.Positions {
		if id != "" {
			q.Add("positions", id)
		}
	}
	if v.Status != "" {
		q.Set("status", v.Status)
	}
	if v.Show != "" {
		q.Set("show", v.Show)
	}
	return q
}

// URL builds the page URL for this state on the given path.
func (v ViewState) URL(path string) string {
	q := v.Query()
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

// WithView returns a copy anchored on the same date in another view.
func (v ViewState) WithView(view string) ViewState {
	v.View = view
	return v
}

// WithDate returns a copy anchored on another date.
func (v ViewState) WithDate(date string) ViewState {
	v.Date = date
	return v
}
