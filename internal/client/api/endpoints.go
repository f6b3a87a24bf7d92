package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/dropwatch/internal/client/session"
)

// Login authenticates and stores the issued token, user and role in the
// session.
func (c *Client) Login(ctx context.Context, in LoginRequest) (*LoginResponse, error) {
	resp, err := c.Post(ctx, "/auth/login", in)
	if err != nil {
		return nil, err
	}

	var out LoginResponse
	if err := c.decode(ctx, "/auth/login", resp, &out); err != nil {
		return nil, err
	}
	if !out.Success || out.Token == "" {
		c.sink.ShowError("Login failed")
		return nil, ErrLoginRejected
	}

	role := out.UserType
	if role == "" {
		role = in.UserType
	}

	c.session.SetToken(ctx, out.Token)
	c.session.SetUser(ctx, map[string]any{"user_id": out.UserID, "user_type": role})
	c.session.SetRole(ctx, role)
	c.sink.ShowSuccess("Login successful")

	return &out, nil
}

func (c *Client) Health(ctx context.Context) (*Health, error) {
	var out Health
	if err := c.getInto(ctx, "/health", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	var out Stats
	if err := c.getInto(ctx, "/stats", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) StudentDashboard(ctx context.Context, studentID int) (*StudentProfile, error) {
	var out StudentProfile
	if err := c.getInto(ctx, fmt.Sprintf("/students/%d/dashboard", studentID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) StudentPerformance(ctx context.Context, studentID int) (Record, error) {
	var out Record
	if err := c.getInto(ctx, fmt.Sprintf("/students/%d/performance", studentID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) StudentResources(ctx context.Context, studentID int) ([]Record, error) {
	var out struct {
		Resources []Record `json:"resources"`
	}
	if err := c.getInto(ctx, fmt.Sprintf("/students/%d/resources", studentID), &out); err != nil {
		return nil, err
	}
	return out.Resources, nil
}

func (c *Client) TeacherDashboard(ctx context.Context, teacherID int) (Record, error) {
	var out Record
	if err := c.getInto(ctx, fmt.Sprintf("/teachers/%d/dashboard", teacherID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) TeacherStudents(ctx context.Context, teacherID int, q StudentQuery) (*StudentPage, error) {
	params := url.Values{}
	q.encode(params, "risk_filter")
	var out StudentPage
	if err := c.getInto(ctx, withQuery(fmt.Sprintf("/teachers/%d/students", teacherID), params), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) TeacherStudent(ctx context.Context, teacherID, studentID int) (*StudentProfile, error) {
	var out StudentProfile
	if err := c.getInto(ctx, fmt.Sprintf("/teachers/%d/student/%d", teacherID, studentID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ParentChildren(ctx context.Context, parentID int) ([]Record, error) {
	var out struct {
		Children []Record `json:"children"`
	}
	if err := c.getInto(ctx, fmt.Sprintf("/parents/%d/children", parentID), &out); err != nil {
		return nil, err
	}
	return out.Children, nil
}

func (c *Client) ParentChild(ctx context.Context, parentID, studentID int) (*StudentProfile, error) {
	var out StudentProfile
	if err := c.getInto(ctx, fmt.Sprintf("/parents/%d/child/%d", parentID, studentID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminDashboard(ctx context.Context) (Record, error) {
	var out Record
	if err := c.getInto(ctx, "/admin/dashboard", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AdminStudents(ctx context.Context, q StudentQuery) (*StudentPage, error) {
	params := url.Values{}
	q.encode(params, "risk")
	var out StudentPage
	if err := c.getInto(ctx, withQuery("/admin/students", params), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RiskSummary(ctx context.Context) ([]Record, error) {
	var out struct {
		Report []Record `json:"report"`
	}
	if err := c.getInto(ctx, "/admin/reports/risk-summary", &out); err != nil {
		return nil, err
	}
	return out.Report, nil
}

// DashboardEndpoint is the main dashboard route for a role and user id.
func DashboardEndpoint(role session.Role, id int) (string, bool) {
	switch role {
	case session.RoleTeacher:
		return fmt.Sprintf("/teachers/%d/dashboard", id), true
	case session.RoleStudent:
		return fmt.Sprintf("/students/%d/dashboard", id), true
	case session.RoleParent:
		return fmt.Sprintf("/parents/%d/children", id), true
	case session.RoleAdmin:
		return "/admin/dashboard", true
	}
	return "", false
}

func (c *Client) getInto(ctx context.Context, endpoint string, dst any) error {
	resp, err := c.Get(ctx, endpoint)
	if err != nil {
		return err
	}
	return c.decode(ctx, endpoint, resp, dst)
}

// decode reports a body that does not fit dst like any other failure.
func (c *Client) decode(ctx context.Context, endpoint string, resp *Response, dst any) error {
	if err := resp.Decode(dst); err != nil {
		c.fail(ctx, c.log.With("endpoint", endpoint), err)
		return err
	}
	return nil
}

func (q StudentQuery) encode(v url.Values, riskParam string) {
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PerPage > 0 {
		v.Set("per_page", strconv.Itoa(q.PerPage))
	}
	if q.Risk != "" {
		v.Set(riskParam, string(q.Risk))
	}
	if q.Branch != "" {
		v.Set("branch", q.Branch)
	}
	if q.Year > 0 {
		v.Set("year", strconv.Itoa(q.Year))
	}
}

func withQuery(endpoint string, v url.Values) string {
	if len(v) == 0 {
		return endpoint
	}
	return endpoint + "?" + v.Encode()
}
