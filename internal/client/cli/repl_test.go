package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) isLoggedIn(context.Context) bool { return f.loggedIn }
func (f *fakeExec) Login(context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Whoami(context.Context) error { f.calls = append(f.calls, "whoami"); return nil }
func (f *fakeExec) Dashboard(context.Context) error {
	f.calls = append(f.calls, "dashboard")
	return nil
}
func (f *fakeExec) Get(_ context.Context, path string) error {
	f.calls = append(f.calls, "get "+path)
	return nil
}
func (f *fakeExec) Health(context.Context) error { f.calls = append(f.calls, "health"); return nil }
func (f *fakeExec) Stats(context.Context) error  { f.calls = append(f.calls, "stats"); return nil }
func (f *fakeExec) Recs(_ context.Context, text string) error {
	f.calls = append(f.calls, "recs "+text)
	return nil
}

func capturePrintln(t *testing.T) *strings.Builder {
	t.Helper()
	var out strings.Builder
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) { return fmt.Fprintln(&out, a...) }
	t.Cleanup(func() { printlnFn = orig })
	return &out
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	out := capturePrintln(t)

	input := strings.Join([]string{
		"help",
		"login",
		"help",
		"whoami",
		"d",
		"dashboard",
		"get /teachers/1/students?page=2",
		"health",
		"stats",
		"recs Call parents | Book counselling",
		"   ",
		"foobar",
		"logout",
		"exit",
		"health",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func(context.Context) string { return "(teacher 1)" }, bufio.NewReader(strings.NewReader(input)))

	assert.Equal(t, []string{
		"login",
		"whoami",
		"dashboard",
		"dashboard",
		"get /teachers/1/students?page=2",
		"health",
		"stats",
		"recs Call parents | Book counselling",
		"logout",
	}, exec.calls)

	printed := out.String()
	assert.Contains(t, printed, "Available commands: login, health, stats, recs [text], exit")
	assert.Contains(t, printed, "Available commands: whoami, (d)ashboard")
	assert.Contains(t, printed, "Unknown command: foobar")
	assert.Contains(t, printed, "dropwatch (teacher 1)> ")
	assert.Contains(t, printed, "Bye!")
}

func TestRunREPL_UsageAndEOF(t *testing.T) {
	out := capturePrintln(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func(context.Context) string { return "" }, bufio.NewReader(strings.NewReader("get\nstats")))

	assert.Equal(t, []string{"stats"}, exec.calls, "last line without newline still runs")
	assert.Contains(t, out.String(), "Usage: get <path>")
	assert.Contains(t, out.String(), "dropwatch> ")
	assert.NotContains(t, out.String(), "Bye!")
}

func TestRunREPL_StopsOnCancel(t *testing.T) {
	capturePrintln(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	runREPL(ctx, exec, func(context.Context) string { return "" }, bufio.NewReader(strings.NewReader("health\n")))

	assert.Empty(t, exec.calls)
}
