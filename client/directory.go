package client

import (
	"context"
	"fmt"
	"net/url"

	"shiftflow/models"
)

// Directory is a loaded employee administration page.
type Directory struct {
	client *Client
	Page   *models.EmployeeDirectoryPage
}

// EmployeeDirectory fetches the directory, optionally filtered by a
// search query and a position id.
func (c *Client) EmployeeDirectory(ctx context.Context, q, positionID string) (*Directory, error) {
	query := url.Values{}
	if q != "" {
		query.Set("q", q)
	}
	if positionID != "" {
		query.Set("position", positionID)
	}
	var page models.EmployeeDirectoryPage
	if err := c.getJSON(ctx, ManagerEmployeesPath, query, &page); err != nil {
		return nil, err
	}
	return &Directory{client: c, Page: &page}, nil
}

// OneTimeCredentials decodes the freshly generated login credentials, if
// the previous action stashed any. They appear exactly once.
func (d *Directory) OneTimeCredentials() *models.OneTimeCredentials {
	return Island[*models.OneTimeCredentials](d.Page.Islands, models.IslandOneTimeCredentials, nil)
}

// Toasts converts the page's flash messages.
func (d *Directory) Toasts() []Toast { return FlashToasts(d.Page.Flashes) }

func (d *Directory) urlFor(action string) (string, error) {
	target, ok := d.Page.URLs[action]
	if !ok || target == "" {
		return "", fmt.Errorf("client: page carries no URL for %q", action)
	}
	return target, nil
}

func (d *Directory) resourceURL(action, id string) (string, error) {
	template, err := d.urlFor(action)
	if err != nil {
		return "", err
	}
	return ResourceURL(template, id), nil
}

// EmployeeForm carries the directory editor's fields.
type EmployeeForm struct {
	FullName   string
	Email      string
	Phone      string
	PositionID string
}

func (f EmployeeForm) values() url.Values {
	form := url.Values{}
	form.Set("full_name", f.FullName)
	form.Set("email", f.Email)
	form.Set("phone", f.Phone)
	form.Set("position_id", f.PositionID)
	return form
}

// CreateEmployee registers a new employee account. The generated login
// credentials wait in the next directory page's one-time island.
func (d *Directory) CreateEmployee(ctx context.Context, form EmployeeForm) (*ActionResult, error) {
	target, err := d.urlFor("create")
	if err != nil {
		return nil, err
	}
	var result ActionResult
	if err := d.client.postForm(ctx, target, form.values(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// EmployeeDetails fetches one employee's edit-form payload.
func (d *Directory) EmployeeDetails(ctx context.Context, id string) (*models.EmployeeDetails, error) {
	target, err := d.resourceURL("details", id)
	if err != nil {
		return nil, err
	}
	var details models.EmployeeDetails
	if err := d.client.getJSON(ctx, target, nil, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// UpdateEmployee saves changes to an employee and returns the refreshed
// directory row.
func (d *Directory) UpdateEmployee(ctx context.Context, id string, form EmployeeForm) (*models.EmployeeSummary, error) {
	target, err := d.resourceURL("update", id)
	if err != nil {
		return nil, err
	}
	var result struct {
		OK       bool                   `json:"ok"`
		Employee models.EmployeeSummary `json:"employee"`
	}
	if err := d.client.postForm(ctx, target, form.values(), &result); err != nil {
		return nil, err
	}
	return &result.Employee, nil
}

// ResetPassword issues a new temporary password for an employee. The
// credentials wait in the next directory page's one-time island.
func (d *Directory) ResetPassword(ctx context.Context, id string) (*ActionResult, error) {
	target, err := d.resourceURL("reset_password", id)
	if err != nil {
		return nil, err
	}
	var result ActionResult
	if err := d.client.postForm(ctx, target, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteEmployee removes an employee account and its assignments.
func (d *Directory) DeleteEmployee(ctx context.Context, id string) (*ActionResult, error) {
	target, err := d.resourceURL("delete", id)
	if err != nil {
		return nil, err
	}
	var result ActionResult
	if err := d.client.postForm(ctx, target, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
