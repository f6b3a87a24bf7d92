package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"

	"github.com/dmitrijs2005/dropwatch/internal/client/api"
	"github.com/dmitrijs2005/dropwatch/internal/client/format"
	"github.com/dmitrijs2005/dropwatch/internal/client/recommend"
	"github.com/dmitrijs2005/dropwatch/internal/client/session"
)

// Dashboard shows the main view for the logged-in role.
func (a *App) Dashboard(ctx context.Context) error {
	if _, err := a.session.RequireAuth(ctx); err != nil {
		fmt.Fprintln(a.out, "Please log in first")
		return err
	}

	u, _ := a.currentUser(ctx)
	id, err := strconv.Atoi(u.ID)
	if err != nil {
		fmt.Fprintf(a.out, "User id %q is not numeric, log in again\n", u.ID)
		return fmt.Errorf("user id %q is not numeric: %w", u.ID, err)
	}

	role := a.session.Role(ctx)
	switch role {
	case session.RoleStudent:
		p, err := a.api.StudentDashboard(ctx, id)
		if err != nil {
			return err
		}
		return a.printProfile(p)

	case session.RoleParent:
		children, err := a.api.ParentChildren(ctx, id)
		if err != nil {
			return err
		}
		return a.printStudents(children)
	}

	endpoint, ok := api.DashboardEndpoint(role, id)
	if !ok {
		fmt.Fprintf(a.out, "No dashboard for role %q\n", role)
		return fmt.Errorf("%w: %q", errUnknownRole, role)
	}
	return a.Get(ctx, endpoint)
}

// Get prints the response of an arbitrary API path.
func (a *App) Get(ctx context.Context, path string) error {
	resp, err := a.api.Get(ctx, path)
	if err != nil {
		return err
	}
	if !resp.JSON {
		fmt.Fprintln(a.out, resp.Data)
		return nil
	}

	b, err := json.MarshalIndent(resp.Data, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, string(b))
	return nil
}

func (a *App) Health(ctx context.Context) error {
	h, err := a.api.Health(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "API: %s, database: %s\n", h.Status, h.Database)
	return nil
}

func (a *App) Stats(ctx context.Context) error {
	s, err := a.api.Stats(ctx)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(s.Statistics))
	for k := range s.Statistics {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		fmt.Fprintf(a.out, "%-20s %s\n", k, format.CompactNumber(s.Statistics[k]))
	}
	return nil
}

// Recs renders recommendation text. With no text given it is read from
// input until an empty line.
func (a *App) Recs(ctx context.Context, text string) error {
	if text == "" {
		var err error
		text, err = GetMultiline(a.reader, "Paste recommendations", a.out)
		if err != nil {
			return err
		}
	}
	d := recommend.Decode(text)
	a.log.Debug(ctx, "recommendations decoded", "kind", d.Kind.String(), "items", len(d.Items))
	return recommend.Render(a.out, d.Items)
}

func (a *App) printProfile(p *api.StudentProfile) error {
	fmt.Fprintf(a.out, "%s (%s)\n", p.Student.String("name"), p.Student.String("student_id"))
	fmt.Fprintf(a.out, "Attendance: %s\n", format.Percentage(p.Student["attendance_percentage"]))
	fmt.Fprintf(a.out, "Risk:       %s, score %s\n", format.Badge(p.Risk()), p.Score())
	fmt.Fprintln(a.out, "Recommendations:")
	return recommend.Render(a.out, p.Recommendations())
}

func (a *App) printStudents(rows []api.Record) error {
	if len(rows) == 0 {
		fmt.Fprintln(a.out, "No students found")
		return nil
	}
	for _, r := range rows {
		fmt.Fprintf(a.out, "%-8s %-30s %s\n",
			r.String("student_id"),
			format.Truncate(r.String("name"), 30),
			format.Badge(r.Risk()),
		)
	}
	return nil
}
