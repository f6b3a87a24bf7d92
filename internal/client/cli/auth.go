package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/dropwatch/internal/client/api"
	"github.com/dmitrijs2005/dropwatch/internal/client/format"
	"github.com/dmitrijs2005/dropwatch/internal/client/session"
	"github.com/dmitrijs2005/dropwatch/internal/client/validate"
	"github.com/dmitrijs2005/dropwatch/internal/shared"
)

// getSimpleText, getPassword and now are indirections used to facilitate
// testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	now           = time.Now
)

var (
	errUserIDRequired = errors.New("user id is required")
	errUnknownRole    = errors.New("unknown role")
)

// user is the record stored in the session at login.
type user struct {
	ID   string
	Role session.Role
}

func (a *App) currentUser(ctx context.Context) (user, bool) {
	var raw struct {
		UserID   any          `json:"user_id"`
		UserType session.Role `json:"user_type"`
	}
	if !a.session.User(ctx, &raw) {
		return user{}, false
	}
	u := user{Role: raw.UserType}
	switch id := raw.UserID.(type) {
	case nil:
	case string:
		u.ID = id
	case float64:
		u.ID = strconv.FormatFloat(id, 'f', -1, 64)
	default:
		u.ID = fmt.Sprint(id)
	}
	return u, true
}

// Login prompts for user id, role and password and authenticates against
// the API. On success the session holds the token, user and role, and the
// destination dashboard is printed.
//
// The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	userID, err := getSimpleText(a.reader, "Enter user id", a.out)
	if err != nil {
		return err
	}
	if !validate.Required(userID) {
		fmt.Fprintln(a.out, "User id is required")
		return errUserIDRequired
	}

	roleText, err := getSimpleText(a.reader, "Enter role ("+roleList()+")", a.out)
	if err != nil {
		return err
	}
	role := session.Role(strings.ToLower(roleText))
	if !role.Valid() {
		fmt.Fprintf(a.out, "Unknown role %q\n", roleText)
		return fmt.Errorf("%w: %q", errUnknownRole, roleText)
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	if _, err := a.api.Login(ctx, api.LoginRequest{UserID: userID, UserType: role, Password: string(password)}); err != nil {
		a.log.Warn(ctx, "login unsuccessful", "user_id", userID, "role", role, "error", err)
		return err
	}

	fmt.Fprintf(a.out, "Continue at %s\n", a.session.Destination(ctx))
	return nil
}

// Logout clears the stored session.
func (a *App) Logout(ctx context.Context) error {
	page := a.session.Logout(ctx)
	fmt.Fprintf(a.out, "Logged out. Continue at %s\n", page)
	return nil
}

// Whoami prints the stored identity and, for JWT tokens, their expiry.
func (a *App) Whoami(ctx context.Context) error {
	if _, err := a.session.RequireAuth(ctx); err != nil {
		fmt.Fprintln(a.out, "Not logged in")
		return err
	}

	u, _ := a.currentUser(ctx)
	fmt.Fprintf(a.out, "User:      %s\n", u.ID)
	fmt.Fprintf(a.out, "Role:      %s\n", a.session.Role(ctx))
	fmt.Fprintf(a.out, "Dashboard: %s\n", a.session.Destination(ctx))

	claims, err := a.session.Claims(ctx)
	switch {
	case errors.Is(err, session.ErrOpaqueToken):
		fmt.Fprintln(a.out, "Token:     opaque")
	case err != nil:
		return err
	case claims.ExpiresAt != nil:
		fmt.Fprintf(a.out, "Expires:   %s\n", format.Date(claims.ExpiresAt.Time.UTC().Format(time.RFC3339)))
	}
	return nil
}

func roleList() string {
	roles := session.Roles()
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	return strings.Join(names, "/")
}
