package adapter

import (
	"context"
	"io"
	"strings"
)

// fakeRunner records every invocation and serves canned stdout keyed by
// "name arg1 arg2 ...".
type fakeRunner struct {
	calls   [][]string
	outputs map[string]string
	err     error
}

func (r *fakeRunner) Run(ctx context.Context, name string, args []string, stdout io.Writer) error {
	return r.RunWithIO(ctx, name, args, nil, stdout)
}

func (r *fakeRunner) RunWithIO(ctx context.Context, name string, args []string, _ io.Reader, stdout io.Writer) error {
	call := append([]string{name}, args...)
	r.calls = append(r.calls, call)
	if r.err != nil {
		return r.err
	}
	if stdout != nil {
		if out, ok := r.outputs[strings.Join(call, " ")]; ok {
			io.WriteString(stdout, out)
		}
	}
	return nil
}

func (r *fakeRunner) called(prefix ...string) bool {
	for _, call := range r.calls {
		if len(call) < len(prefix) {
			continue
		}
		match := true
		for i, p := range prefix {
			if call[i] != p {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
