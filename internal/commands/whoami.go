package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"taskctl/internal/config"
	"taskctl/internal/credentials"
	"taskctl/internal/exitcode"
)

func init() {
	Register(&WhoamiCmd{})
}

// WhoamiCmd prints the identity in the stored token. It does not contact
// the backend.
type WhoamiCmd struct{}

func (c *WhoamiCmd) Name() string          { return "whoami" }
func (c *WhoamiCmd) Aliases() []string     { return nil }
func (c *WhoamiCmd) Synopsis() string      { return "Show the signed-in user" }
func (c *WhoamiCmd) Usage() string         { return "taskctl whoami [common flags]" }
func (c *WhoamiCmd) Requires() Requirement { return Session }

func (c *WhoamiCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *WhoamiCmd) Run(ctx context.Context, cfg *config.Config, env *Env, args []string, out, errOut io.Writer) int {
	tok, err := env.Tokens.Token()
	if errors.Is(err, credentials.ErrNoToken) {
		fmt.Fprintln(errOut, "error: not logged in (run: taskctl login)")
		return exitcode.AuthError
	}
	if err != nil {
		fmt.Fprintf(errOut, "error: failed to read token: %v\n", err)
		return exitcode.AuthError
	}

	claims, err := credentials.ParseClaims(tok.AccessToken)
	if err != nil {
		fmt.Fprintln(out, "logged in (token has no readable claims)")
		return exitcode.Success
	}

	now := env.Now()
	fmt.Fprintf(out, "user:    %s\n", claims.Subject)
	if !claims.IssuedAt.IsZero() {
		fmt.Fprintf(out, "issued:  %s\n", humanize.RelTime(claims.IssuedAt, now, "ago", "from now"))
	}
	if !claims.ExpiresAt.IsZero() {
		fmt.Fprintf(out, "expires: %s\n", humanize.RelTime(claims.ExpiresAt, now, "ago", "from now"))
	}
	if claims.Expired(now) {
		fmt.Fprintln(errOut, "warning: token has expired (run: taskctl login)")
	}
	return exitcode.Success
}
