package client

import (
	"context"
	"io"
	"net/url"

	"shiftflow/models"
)

// ActionResult is the mutation envelope. A false OK with a Redirect means
// the action was rejected and the messages travel as flashes on the next
// page load.
type ActionResult struct {
	OK       bool   `json:"ok"`
	Redirect string `json:"redirect"`
}

// LoginPage is the login bootstrap response.
type LoginPage struct {
	OK       bool `json:"ok"`
	ShowDemo bool `json:"show_demo"`
}

// LoginPage fetches the login page state. The GET also issues the CSRF
// cookie, so it must run before the first POST of a fresh Client.
func (c *Client) LoginPage(ctx context.Context) (*LoginPage, error) {
	var page LoginPage
	if err := c.getJSON(ctx, LoginPath, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Login authenticates with an email (or username) and password. Success
// stores the session cookie in the jar; the redirect points at the
// caller's home calendar.
func (c *Client) Login(ctx context.Context, username, password string) (*ActionResult, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var result ActionResult
	if err := c.postForm(ctx, LoginPath, form, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DemoLogin signs in as the seeded demo account for role ("manager" or
// "employee"). Fails when demo mode is off.
func (c *Client) DemoLogin(ctx context.Context, role string) (*ActionResult, error) {
	var result ActionResult
	if err := c.getJSON(ctx, demoLoginPath(role), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Logout destroys the session.
func (c *Client) Logout(ctx context.Context) (*ActionResult, error) {
	var result ActionResult
	if err := c.postForm(ctx, LogoutPath, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Home resolves the signed-in caller's landing URL by role.
func (c *Client) Home(ctx context.Context) (*ActionResult, error) {
	var result ActionResult
	if err := c.getJSON(ctx, HomePath, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Profile returns the signed-in account.
func (c *Client) Profile(ctx context.Context) (*models.Employee, error) {
	var account models.Employee
	if err := c.getJSON(ctx, ProfilePath, nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// RegisterDevice stores the caller's push token.
func (c *Client) RegisterDevice(ctx context.Context, token string) error {
	form := url.Values{}
	form.Set("token", token)
	return c.postForm(ctx, DevicePath, form, nil)
}

// UploadAvatar uploads a profile photo and returns its delivery URL.
func (c *Client) UploadAvatar(ctx context.Context, filename string, file io.Reader) (string, error) {
	var result struct {
		OK        bool   `json:"ok"`
		AvatarURL string `json:"avatar_url"`
	}
	if err := c.postFile(ctx, AvatarPath, "avatar", filename, file, &result); err != nil {
		return "", err
	}
	return result.AvatarURL, nil
}
