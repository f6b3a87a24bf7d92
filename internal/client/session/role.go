package session

// Role is the dashboard audience a user logs in as.
type Role string

const (
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
	RoleParent  Role = "parent"
	RoleAdmin   Role = "admin"
)

// LoginPage is the destination for anonymous users and unknown roles.
const LoginPage = "login.html"

var dashboards = map[Role]string{
	RoleTeacher: "index.html",
	RoleStudent: "student.html",
	RoleParent:  "parent.html",
	RoleAdmin:   "admin.html",
}

// Roles lists the known roles in display order.
func Roles() []Role {
	return []Role{RoleTeacher, RoleStudent, RoleParent, RoleAdmin}
}

func (r Role) Valid() bool {
	_, ok := dashboards[r]
	return ok
}

// DashboardFor maps a role to its post-login destination.
func DashboardFor(r Role) string {
	if page, ok := dashboards[r]; ok {
		return page
	}
	return LoginPage
}
