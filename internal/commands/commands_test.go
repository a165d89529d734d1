package commands_test

import (
	"bytes"
	"context"
	"flag"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/api/googleapi"

	"taskctl/internal/cache"
	"taskctl/internal/commands"
	"taskctl/internal/config"
	"taskctl/internal/credentials"
	"taskctl/internal/exitcode"
	"taskctl/internal/service"
	"taskctl/internal/store"
	"taskctl/internal/testutil"
)

var now = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

// newEnv builds an Env over svc. The session is authenticated when token is set.
func newEnv(t *testing.T, svc *testutil.FakeService, token string) *commands.Env {
	t.Helper()
	tokens := credentials.NewMemoryStore(token)
	if token != "" {
		svc.SetToken(token)
	}
	env := commands.NewEnv(store.New(svc, svc), tokens, zap.NewNop())
	env.Now = func() time.Time { return now }
	t.Cleanup(env.Close)
	return env
}

// runCommand parses flags like the dispatcher does and runs cmd.
func runCommand(t *testing.T, cmd commands.Command, env *commands.Env, args []string, quiet bool) (stdout, stderr string, code int) {
	t.Helper()

	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cmd.RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))

	var outBuf, errBuf bytes.Buffer
	cfg := &config.Config{
		Dir:   t.TempDir(),
		Quiet: quiet,
	}

	code = cmd.Run(context.Background(), cfg, env, fs.Args(), &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func seed(svc *testutil.FakeService) {
	svc.AddTask(service.Task{Title: "Buy milk", Priority: service.PriorityLow, Status: service.StatusTodo, DueDate: "2026-10-20"})
	svc.AddTask(service.Task{Title: "Write report", Description: "quarterly numbers", Priority: service.PriorityHigh, Status: service.StatusInProgress})
	svc.AddTask(service.Task{Title: "Fix bike", Priority: service.PriorityHigh, Status: service.StatusDone})
}

func notFound() error {
	return &googleapi.Error{Code: 404, Message: "Task not found"}
}

// Tests for version command
func TestVersionCommand(t *testing.T) {
	stdout, stderr, code := runCommand(t, &commands.VersionCmd{}, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "taskctl 0.1.0\n" {
		t.Errorf("expected version output, got %q", stdout)
	}
}

// Tests for help command
func TestHelpCommand(t *testing.T) {
	stdout, stderr, code := runCommand(t, &commands.HelpCmd{}, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	testutil.Golden(t, "help", []byte(stdout))
}

// Tests for list command
func TestListCommand_AllTasks(t *testing.T) {
	svc := testutil.NewFakeService()
	seed(svc)

	stdout, stderr, code := runCommand(t, &commands.ListCmd{}, newEnv(t, svc, "tok"), nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}

	expected := "  ID  STATUS       PRIORITY  DUE         TITLE\n" +
		"   1  TODO         LOW       2026-10-20  Buy milk\n" +
		"   2  IN_PROGRESS  HIGH      -           Write report\n" +
		"   3  DONE         HIGH      -           Fix bike\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestListCommand_Filters(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		titles []string
	}{
		{"status", []string{"--status", "done"}, []string{"Fix bike"}},
		{"priority", []string{"--priority", "HIGH"}, []string{"Write report", "Fix bike"}},
		{"search description", []string{"--search", "QUARTERLY"}, []string{"Write report"}},
		{"positional search", []string{"milk"}, []string{"Buy milk"}},
		{"combined", []string{"--priority", "high", "-s", "bike"}, []string{"Fix bike"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := testutil.NewFakeService()
			seed(svc)

			stdout, _, code := runCommand(t, &commands.ListCmd{}, newEnv(t, svc, "tok"), tt.args, false)
			require.Equal(t, exitcode.Success, code)

			lines := strings.Split(strings.TrimSpace(stdout), "\n")[1:]
			require.Len(t, lines, len(tt.titles))
			for i, title := range tt.titles {
				assert.True(t, strings.HasSuffix(lines[i], title), "line %q", lines[i])
			}
		})
	}
}

func TestListCommand_InvalidStatus(t *testing.T) {
	svc := testutil.NewFakeService()

	_, stderr, code := runCommand(t, &commands.ListCmd{}, newEnv(t, svc, "tok"), []string{"--status", "someday"}, false)

	assert.Equal(t, exitcode.UserError, code)
	assert.Equal(t, "error: invalid status: someday\n", stderr)
	assert.Empty(t, svc.Requests())
}

func TestListCommand_Empty(t *testing.T) {
	svc := testutil.NewFakeService()

	stdout, _, code := runCommand(t, &commands.ListCmd{}, newEnv(t, svc, "tok"), nil, false)
	assert.Equal(t, exitcode.Success, code)
	assert.Equal(t, "no tasks found\n", stdout)

	stdout, _, _ = runCommand(t, &commands.ListCmd{}, newEnv(t, svc, "tok"), nil, true)
	assert.Empty(t, stdout)
}

func TestListCommand_BackendError(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.ListTasksErr = &googleapi.Error{Code: 500}

	_, stderr, code := runCommand(t, &commands.ListCmd{}, newEnv(t, svc, "tok"), nil, false)

	assert.Equal(t, exitcode.BackendError, code)
	assert.Equal(t, "error: backend error: failed to load tasks\n", stderr)
}

func TestListCommand_Unauthorized(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.ListTasksErr = &googleapi.Error{Code: 401, Message: "Unauthorized"}

	_, stderr, code := runCommand(t, &commands.ListCmd{}, newEnv(t, svc, "tok"), nil, false)

	assert.Equal(t, exitcode.AuthError, code)
	assert.Equal(t, "error: session expired (run: taskctl login)\n", stderr)
}

func TestListCommand_RequiresAuthUnlessOffline(t *testing.T) {
	cmd := &commands.ListCmd{}
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	cmd.RegisterFlags(fs)
	require.NoError(t, fs.Parse(nil))
	assert.Equal(t, commands.Authenticated, cmd.Requires())

	fs = flag.NewFlagSet("list", flag.ContinueOnError)
	cmd.RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--offline"}))
	assert.Equal(t, commands.Session, cmd.Requires())
}

func TestListCommand_OfflineReadsSnapshot(t *testing.T) {
	svc := testutil.NewFakeService()
	seed(svc)

	c, err := cache.Open(filepath.Join(t.TempDir(), "cache.db"), zap.NewNop())
	require.NoError(t, err)

	env := newEnv(t, svc, "tok")
	env.AttachCache(context.Background(), c)

	_, _, code := runCommand(t, &commands.ListCmd{}, env, nil, false)
	require.Equal(t, exitcode.Success, code)

	// Backend goes away; the snapshot still answers
	svc.ListTasksErr = &googleapi.Error{Code: 500}
	stdout, stderr, code := runCommand(t, &commands.ListCmd{}, env, []string{"--offline", "--status", "DONE"}, false)

	assert.Equal(t, exitcode.Success, code)
	assert.Contains(t, stderr, "snapshot from")
	assert.Contains(t, stdout, "Fix bike")
	assert.NotContains(t, stdout, "Buy milk")
}

func TestListCommand_OfflineWithoutSnapshot(t *testing.T) {
	svc := testutil.NewFakeService()

	c, err := cache.Open(filepath.Join(t.TempDir(), "cache.db"), zap.NewNop())
	require.NoError(t, err)
	env := newEnv(t, svc, "")
	env.AttachCache(context.Background(), c)

	_, stderr, code := runCommand(t, &commands.ListCmd{}, env, []string{"--offline"}, false)

	assert.Equal(t, exitcode.UserError, code)
	assert.Equal(t, "error: no snapshot yet (run: taskctl list)\n", stderr)

	_, stderr, code = runCommand(t, &commands.ListCmd{}, newEnv(t, svc, ""), []string{"--offline"}, false)
	assert.Equal(t, exitcode.BackendError, code)
	assert.Equal(t, "error: offline snapshot unavailable\n", stderr)
}

// Tests for show command
func TestShowCommand(t *testing.T) {
	svc := testutil.NewFakeService()
	seed(svc)

	stdout, stderr, code := runCommand(t, &commands.ShowCmd{}, newEnv(t, svc, "tok"), []string{"1"}, false)

	assert.Equal(t, exitcode.Success, code)
	assert.Empty(t, stderr)
	expected := "ID:          1\n" +
		"Title:       Buy milk\n" +
		"Status:      To do\n" +
		"Priority:    LOW\n" +
		"Due:         2026-10-20 (2 days from now)\n"
	assert.Equal(t, expected, stdout)
}

func TestShowCommand_Errors(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		err    error
		code   int
		stderr string
	}{
		{"missing id", nil, nil, exitcode.UserError, "error: task id required\n"},
		{"bad id", []string{"abc"}, nil, exitcode.UserError, "error: invalid task id: abc\n"},
		{"zero id", []string{"0"}, nil, exitcode.UserError, "error: invalid task id: 0\n"},
		{"not found", []string{"9"}, notFound(), exitcode.UserError, "error: Task not found\n"},
		{"server error", []string{"9"}, &googleapi.Error{Code: 502}, exitcode.BackendError, "error: backend error: failed to load task\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := testutil.NewFakeService()
			svc.GetTaskErr = tt.err

			_, stderr, code := runCommand(t, &commands.ShowCmd{}, newEnv(t, svc, "tok"), tt.args, false)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.stderr, stderr)
		})
	}
}

// Tests for add command
func TestAddCommand(t *testing.T) {
	svc := testutil.NewFakeService()
	seed(svc)
	env := newEnv(t, svc, "tok")

	stdout, stderr, code := runCommand(t, &commands.AddCmd{}, env,
		[]string{"--priority", "urgent", "--due", "2026-11-01", "-d", "before friday", "Call", "the", "bank"}, false)

	require.Equal(t, exitcode.Success, code, stderr)
	assert.Equal(t, "created task 4\n", stdout)

	got, err := svc.GetTask(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "Call the bank", got.Title)
	assert.Equal(t, "before friday", got.Description)
	assert.Equal(t, service.PriorityUrgent, got.Priority)
	assert.Equal(t, service.StatusTodo, got.Status)
	assert.Equal(t, "2026-11-01", got.DueDate)
	assert.Nil(t, got.AssignedUser)

	tasks := env.Store.State().Tasks.Tasks
	require.Len(t, tasks, 1)
	assert.True(t, tasks[0].HasID(4))
}

func TestAddCommand_Validation(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		stderr string
	}{
		{"no title", nil, "error: title required\n"},
		{"blank title", []string{"  "}, "error: title required\n"},
		{"bad priority", []string{"--priority", "asap", "x"}, "error: invalid priority: asap\n"},
		{"bad date", []string{"--due", "tomorrow", "x"}, "error: invalid date: tomorrow\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := testutil.NewFakeService()
			_, stderr, code := runCommand(t, &commands.AddCmd{}, newEnv(t, svc, "tok"), tt.args, false)
			assert.Equal(t, exitcode.UserError, code)
			assert.Equal(t, tt.stderr, stderr)
			assert.Empty(t, svc.Requests())
		})
	}
}

func TestAddCommand_ServerValidationMessage(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.CreateTaskErr = &googleapi.Error{Code: 400, Message: "title is required"}

	_, stderr, code := runCommand(t, &commands.AddCmd{}, newEnv(t, svc, "tok"), []string{"x"}, false)

	assert.Equal(t, exitcode.UserError, code)
	assert.Equal(t, "error: title is required\n", stderr)
}

// Tests for edit command
func TestEditCommand_MergesChanges(t *testing.T) {
	svc := testutil.NewFakeService()
	seed(svc)

	stdout, stderr, code := runCommand(t, &commands.EditCmd{}, newEnv(t, svc, "tok"),
		[]string{"--status", "blocked", "--assignee", "7", "2", "Write", "final", "report"}, false)

	require.Equal(t, exitcode.Success, code, stderr)
	assert.Equal(t, "ok\n", stdout)
	assert.Equal(t, []string{"get", "update"}, svc.Requests())

	got, err := svc.GetTask(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Write final report", got.Title)
	assert.Equal(t, "quarterly numbers", got.Description)
	assert.Equal(t, service.PriorityHigh, got.Priority)
	assert.Equal(t, service.StatusBlocked, got.Status)
	require.NotNil(t, got.AssignedUser)
	assert.Equal(t, int64(7), *got.AssignedUser)
}

func TestEditCommand_Unassign(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask(service.Task{Title: "a", AssignedUser: service.Int64(3)})

	_, _, code := runCommand(t, &commands.EditCmd{}, newEnv(t, svc, "tok"), []string{"--unassign", "1"}, false)
	require.Equal(t, exitcode.Success, code)

	got, err := svc.GetTask(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, got.AssignedUser)
}

func TestEditCommand_NothingToChange(t *testing.T) {
	svc := testutil.NewFakeService()
	seed(svc)

	_, stderr, code := runCommand(t, &commands.EditCmd{}, newEnv(t, svc, "tok"), []string{"1"}, false)

	assert.Equal(t, exitcode.UserError, code)
	assert.Equal(t, "error: nothing to change\n", stderr)
	assert.Empty(t, svc.Requests())
}

func TestEditCommand_NotFound(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.GetTaskErr = notFound()

	_, stderr, code := runCommand(t, &commands.EditCmd{}, newEnv(t, svc, "tok"), []string{"5", "new"}, false)

	assert.Equal(t, exitcode.UserError, code)
	assert.Equal(t, "error: Task not found\n", stderr)
	assert.Equal(t, []string{"get"}, svc.Requests())
}

// Tests for status and done commands
func TestStatusCommand(t *testing.T) {
	svc := testutil.NewFakeService()
	seed(svc)

	stdout, _, code := runCommand(t, &commands.StatusCmd{}, newEnv(t, svc, "tok"), []string{"1", "in-progress"}, false)

	assert.Equal(t, exitcode.Success, code)
	assert.Equal(t, "ok\n", stdout)
	got, err := svc.GetTask(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, service.StatusInProgress, got.Status)
}

func TestStatusCommand_Validation(t *testing.T) {
	svc := testutil.NewFakeService()
	env := newEnv(t, svc, "tok")

	_, stderr, code := runCommand(t, &commands.StatusCmd{}, env, []string{"1"}, false)
	assert.Equal(t, exitcode.UserError, code)
	assert.Equal(t, "error: status required\n", stderr)

	_, stderr, code = runCommand(t, &commands.StatusCmd{}, env, []string{"1", "later"}, false)
	assert.Equal(t, exitcode.UserError, code)
	assert.Equal(t, "error: invalid status: later\n", stderr)
	assert.Empty(t, svc.Requests())
}

func TestDoneCommand(t *testing.T) {
	svc := testutil.NewFakeService()
	seed(svc)

	stdout, _, code := runCommand(t, &commands.DoneCmd{}, newEnv(t, svc, "tok"), []string{"#1"}, true)

	assert.Equal(t, exitcode.Success, code)
	assert.Empty(t, stdout)
	got, err := svc.GetTask(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, service.StatusDone, got.Status)
}

// Tests for rm command
func TestRmCommand(t *testing.T) {
	svc := testutil.NewFakeService()
	seed(svc)
	env := newEnv(t, svc, "tok")
	require.NoError(t, env.Store.FetchAll(context.Background()))

	stdout, _, code := runCommand(t, &commands.RmCmd{}, env, []string{"2"}, false)

	assert.Equal(t, exitcode.Success, code)
	assert.Equal(t, "ok\n", stdout)
	_, found := store.FindTask(env.Store.State().Tasks.Tasks, 2)
	assert.False(t, found)
	assert.Len(t, env.Store.State().Tasks.Tasks, 2)
}

func TestRmCommand_Failure(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.DeleteTaskErr = &googleapi.Error{Code: 500}

	_, stderr, code := runCommand(t, &commands.RmCmd{}, newEnv(t, svc, "tok"), []string{"2"}, false)

	assert.Equal(t, exitcode.BackendError, code)
	assert.Equal(t, "error: backend error: failed to delete task\n", stderr)
}

// Tests for login, signup, logout and whoami
func TestLoginCommand(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddUser("alice", "secret")
	env := newEnv(t, svc, "")

	stdout, stderr, code := runCommand(t, &commands.LoginCmd{}, env, []string{"--user", "alice", "--password", "secret"}, false)

	assert.Equal(t, exitcode.Success, code)
	assert.Empty(t, stderr)
	assert.Equal(t, "logged in as alice\n", stdout)
	assert.True(t, env.Store.State().Auth.IsAuthenticated)
}

func TestLoginCommand_PasswordFromEnv(t *testing.T) {
	t.Setenv(config.EnvPassword, "secret")
	svc := testutil.NewFakeService()
	svc.AddUser("alice", "secret")

	_, _, code := runCommand(t, &commands.LoginCmd{}, newEnv(t, svc, ""), []string{"-u", "alice"}, true)
	assert.Equal(t, exitcode.Success, code)
}

func TestLoginCommand_Failures(t *testing.T) {
	t.Setenv(config.EnvPassword, "")

	tests := []struct {
		name   string
		args   []string
		err    error
		code   int
		stderr string
	}{
		{"no user", []string{"--password", "x"}, nil, exitcode.UserError, "error: username or email required (use --user)\n"},
		{"no password", []string{"--user", "alice"}, nil, exitcode.UserError, "error: password required (use --password or TASKCTL_PASSWORD)\n"},
		{"wrong password", []string{"--user", "alice", "--password", "nope"}, nil, exitcode.AuthError, "error: login failed\n"},
		{"server message", []string{"--user", "alice", "--password", "nope"}, &googleapi.Error{Code: 401, Message: "Bad credentials"}, exitcode.AuthError, "error: Bad credentials\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := testutil.NewFakeService()
			svc.AddUser("alice", "secret")
			svc.LoginErr = tt.err
			env := newEnv(t, svc, "")

			_, stderr, code := runCommand(t, &commands.LoginCmd{}, env, tt.args, false)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.stderr, stderr)
			assert.False(t, env.Store.State().Auth.IsAuthenticated)
		})
	}
}

func TestSignupCommand(t *testing.T) {
	svc := testutil.NewFakeService()

	stdout, stderr, code := runCommand(t, &commands.SignupCmd{}, newEnv(t, svc, ""),
		[]string{"--username", "bob", "--email", "bob@example.com", "--password", "pw"}, false)

	require.Equal(t, exitcode.Success, code, stderr)
	assert.Equal(t, "account created (run: taskctl login --user bob)\n", stdout)
	assert.Equal(t, []service.SignupRequest{{
		Name: "bob", Username: "bob", Email: "bob@example.com", Password: "pw",
	}}, svc.Signups())
}

func TestSignupCommand_Failures(t *testing.T) {
	svc := testutil.NewFakeService()
	_, stderr, code := runCommand(t, &commands.SignupCmd{}, newEnv(t, svc, ""), []string{"--username", "bob"}, false)
	assert.Equal(t, exitcode.UserError, code)
	assert.Equal(t, "error: --email required\n", stderr)

	svc.SignupErr = &googleapi.Error{Code: 400, Message: "Username is already taken!"}
	_, stderr, code = runCommand(t, &commands.SignupCmd{}, newEnv(t, svc, ""),
		[]string{"--username", "bob", "--email", "b@x", "--password", "pw"}, false)
	assert.Equal(t, exitcode.UserError, code)
	assert.Equal(t, "error: Username is already taken!\n", stderr)
}

func TestLogoutCommand(t *testing.T) {
	svc := testutil.NewFakeService()
	env := newEnv(t, svc, "tok")

	stdout, _, code := runCommand(t, &commands.LogoutCmd{}, env, nil, false)
	assert.Equal(t, exitcode.Success, code)
	assert.Equal(t, "ok\n", stdout)
	assert.False(t, env.Store.State().Auth.IsAuthenticated)
	assert.False(t, svc.IsAuthenticated())

	stdout, _, code = runCommand(t, &commands.LogoutCmd{}, env, nil, false)
	assert.Equal(t, exitcode.Success, code)
	assert.Equal(t, "not logged in\n", stdout)
}

func TestWhoamiCommand(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "alice",
		IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
	})
	signed, err := tok.SignedString([]byte("k"))
	require.NoError(t, err)

	stdout, stderr, code := runCommand(t, &commands.WhoamiCmd{}, newEnv(t, testutil.NewFakeService(), signed), nil, false)

	assert.Equal(t, exitcode.Success, code)
	assert.Equal(t, "user:    alice\nissued:  2 hours ago\nexpires: 1 hour ago\n", stdout)
	assert.Equal(t, "warning: token has expired (run: taskctl login)\n", stderr)
}

func TestWhoamiCommand_OpaqueAndMissingToken(t *testing.T) {
	stdout, _, code := runCommand(t, &commands.WhoamiCmd{}, newEnv(t, testutil.NewFakeService(), "opaque"), nil, false)
	assert.Equal(t, exitcode.Success, code)
	assert.Equal(t, "logged in (token has no readable claims)\n", stdout)

	_, stderr, code := runCommand(t, &commands.WhoamiCmd{}, newEnv(t, testutil.NewFakeService(), ""), nil, false)
	assert.Equal(t, exitcode.AuthError, code)
	assert.Equal(t, "error: not logged in (run: taskctl login)\n", stderr)
}

func TestEnv_AttachCacheHydratesAuthenticatedStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.db")

	c, err := cache.Open(path, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, c.Save(ctx, []service.Task{{ID: service.Int64(5), Title: "cached"}}))

	env := newEnv(t, testutil.NewFakeService(), "tok")
	env.AttachCache(ctx, c)

	tasks := env.Store.State().Tasks.Tasks
	require.Len(t, tasks, 1)
	assert.Equal(t, "cached", tasks[0].Title)
}
