package bitwarden

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// execRunner is the production [CommandRunner] backed by os/exec.
type execRunner struct {
}

// NewExecRunner constructs a [CommandRunner] that spawns real processes.
func NewExecRunner() CommandRunner {
	return &execRunner{}
}

// Run implements [CommandRunner]. Standard error is captured separately and
// included in the returned error so CLI diagnostics surface in the logs.
func (r *execRunner) Run(ctx context.Context, path string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, path, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		if stderr.Len() > 0 {
			return nil, fmt.Errorf("%w: %s: %s", ErrCommandFailed, err, stderr.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrCommandFailed, err)
	}

	return output, nil
}
