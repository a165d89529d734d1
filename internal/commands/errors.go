package commands

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"taskctl/internal/exitcode"
	"taskctl/internal/gateway"
)

// reportError prints a failed store operation and returns its exit code.
func reportError(errOut io.Writer, err error) int {
	switch code := gateway.StatusCode(err); {
	case code == http.StatusUnauthorized:
		fmt.Fprintln(errOut, "error: session expired (run: taskctl login)")
		return exitcode.AuthError
	case code == http.StatusForbidden:
		fmt.Fprintf(errOut, "error: forbidden: %v\n", err)
		return exitcode.AuthError
	case code >= 400 && code < 500:
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	default:
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}
}

// parseID parses the task id argument.
func parseID(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("task id required")
	}
	id, err := strconv.ParseInt(strings.TrimPrefix(args[0], "#"), 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid task id: %s", args[0])
	}
	return id, nil
}
