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
	Register(&SignupCmd{})
}

// SignupCmd implements the signup command.
type SignupCmd struct {
	name     string
	username string
	email    string
	password string
}

func (c *SignupCmd) Name() string      { return "signup" }
func (c *SignupCmd) Aliases() []string { return []string{"register"} }
func (c *SignupCmd) Synopsis() string  { return "Create an account" }
func (c *SignupCmd) Usage() string {
	return "taskctl signup --username <u> --email <e> [--name <n>] [--password <p>]"
}
func (c *SignupCmd) Requires() Requirement { return Session }

func (c *SignupCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.name, "name", "", "")
	fs.StringVar(&c.username, "username", "", "")
	fs.StringVar(&c.email, "email", "", "")
	fs.StringVar(&c.password, "password", "", "")
}

func (c *SignupCmd) Run(ctx context.Context, cfg *config.Config, env *Env, args []string, out, errOut io.Writer) int {
	req := service.SignupRequest{
		Name:     strings.TrimSpace(c.name),
		Username: strings.TrimSpace(c.username),
		Email:    strings.TrimSpace(c.email),
		Password: c.password,
	}
	if req.Password == "" {
		req.Password = os.Getenv(config.EnvPassword)
	}
	if req.Name == "" {
		req.Name = req.Username
	}

	switch {
	case req.Username == "":
		fmt.Fprintln(errOut, "error: --username required")
		return exitcode.UserError
	case req.Email == "":
		fmt.Fprintln(errOut, "error: --email required")
		return exitcode.UserError
	case req.Password == "":
		fmt.Fprintf(errOut, "error: password required (use --password or %s)\n", config.EnvPassword)
		return exitcode.UserError
	}

	if err := env.Store.Signup(ctx, req); err != nil {
		return reportError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "account created (run: taskctl login --user %s)\n", req.Username)
	}
	return exitcode.Success
}
