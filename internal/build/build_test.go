// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package build

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
)

type fakeExecutor struct {
	err error

	gotDir  string
	gotEnv  []string
	gotName string
	gotArgs []string
	calls   int
}

func (f *fakeExecutor) Run(_ context.Context, dir string, env []string, stdout, _ io.Writer, name string, args ...string) error {
	f.calls++
	f.gotDir = dir
	f.gotEnv = env
	f.gotName = name
	f.gotArgs = args
	io.WriteString(stdout, "built\n")
	return f.err
}

func TestRunAppendsIDAndEnv(t *testing.T) {
	ex := &fakeExecutor{}
	r := newRunner("npm run build:problem", "/ws", []string{"PATH=/usr/bin"}, ex)

	var out bytes.Buffer
	if err := r.Run(context.Background(), "42", &out); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if ex.gotName != "npm" {
		t.Errorf("name = %q, want npm", ex.gotName)
	}
	wantArgs := []string{"run", "build:problem", "42"}
	if len(ex.gotArgs) != len(wantArgs) {
		t.Fatalf("args = %v, want %v", ex.gotArgs, wantArgs)
	}
	for i := range wantArgs {
		if ex.gotArgs[i] != wantArgs[i] {
			t.Errorf("args[%d] = %q, want %q", i, ex.gotArgs[i], wantArgs[i])
		}
	}
	if ex.gotDir != "/ws" {
		t.Errorf("dir = %q, want /ws", ex.gotDir)
	}

	var haveProblemEnv bool
	for _, e := range ex.gotEnv {
		if e == "LEETFETCH_PROBLEM=42" {
			haveProblemEnv = true
		}
	}
	if !haveProblemEnv {
		t.Errorf("env missing LEETFETCH_PROBLEM: %v", ex.gotEnv)
	}
	if out.String() != "built\n" {
		t.Errorf("output not streamed: %q", out.String())
	}
}

func TestRunDisabled(t *testing.T) {
	ex := &fakeExecutor{}
	r := newRunner("", "/ws", nil, ex)

	if r.Enabled() {
		t.Error("empty command should disable the runner")
	}
	if err := r.Run(context.Background(), "1", io.Discard); err != nil {
		t.Fatalf("disabled Run should be a no-op, got %v", err)
	}
	if ex.calls != 0 {
		t.Errorf("executor called %d times, want 0", ex.calls)
	}
}

func TestRunWrapsFailure(t *testing.T) {
	ex := &fakeExecutor{err: errors.New("exit status 2")}
	r := newRunner("make build", "/ws", nil, ex)

	err := r.Run(context.Background(), "7", io.Discard)
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); got != "build command for problem 7: exit status 2" {
		t.Errorf("err = %q", got)
	}
}
