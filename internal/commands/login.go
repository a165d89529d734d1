package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"taskctl/internal/config"
	"taskctl/internal/exitcode"
	"taskctl/internal/service"
)

func init() {
	Register(&LoginCmd{})
}

// LoginCmd implements the login command.
type LoginCmd struct {
	user     string
	password string
}

func (c *LoginCmd) Name() string          { return "login" }
func (c *LoginCmd) Aliases() []string     { return []string{"signin"} }
func (c *LoginCmd) Synopsis() string      { return "Sign in and store the access token" }
func (c *LoginCmd) Usage() string         { return "taskctl login --user <name|email> [--password <p>]" }
func (c *LoginCmd) Requires() Requirement { return Session }

func (c *LoginCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.user, "user", "", "")
	fs.StringVar(&c.user, "u", "", "")
	fs.StringVar(&c.password, "password", "", "")
	fs.StringVar(&c.password, "p", "", "")
}

func (c *LoginCmd) Run(ctx context.Context, cfg *config.Config, env *Env, args []string, out, errOut io.Writer) int {
	user := strings.TrimSpace(c.user)
	if user == "" && len(args) > 0 {
		user = args[0]
	}
	if user == "" {
		fmt.Fprintln(errOut, "error: username or email required (use --user)")
		return exitcode.UserError
	}

	password := c.password
	if password == "" {
		password = os.Getenv(config.EnvPassword)
	}
	if password == "" {
		fmt.Fprintf(errOut, "error: password required (use --password or %s)\n", config.EnvPassword)
		return exitcode.UserError
	}

	err := env.Store.Login(ctx, service.LoginRequest{UsernameOrEmail: user, Password: password})
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", env.Store.State().Auth.Error)
		return exitcode.AuthError
	}

	if !cfg.Quiet {
		name := env.Store.State().Auth.User
		if name == "" {
			name = user
		}
		fmt.Fprintf(out, "logged in as %s\n", name)
	}
	return exitcode.Success
}
