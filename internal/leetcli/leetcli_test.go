// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package leetcli

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/leetfetch/pkg/types"
)

// fakeExecutor records invocations and returns canned output.
type fakeExecutor struct {
	lookPathErr error
	output      string
	runErr      error

	gotName string
	gotArgs []string
	gotEnv  []string
}

func (f *fakeExecutor) LookPath(file string) (string, error) {
	if f.lookPathErr != nil {
		return "", f.lookPathErr
	}
	return "/usr/bin/" + file, nil
}

func (f *fakeExecutor) RunOutput(_ context.Context, env []string, name string, args ...string) (string, error) {
	f.gotName = name
	f.gotArgs = args
	f.gotEnv = env
	return f.output, f.runErr
}

func TestNewClientMissingBinary(t *testing.T) {
	ex := &fakeExecutor{lookPathErr: errors.New("not found")}
	_, err := newClient(types.FetchConfig{}, nil, ex)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "leetcode")
}

func TestFetchInvokesExecutor(t *testing.T) {
	ex := &fakeExecutor{output: "* Source Code: /w/p/1/two-sum.ts\n"}
	env := []string{"LEETCODE_SESSION=abc"}
	c, err := newClient(types.FetchConfig{ExecutorBin: "lc"}, env, ex)
	require.NoError(t, err)

	out, err := c.Fetch(context.Background(), "1", "typescript", "/w/p/1")
	require.NoError(t, err)

	assert.Equal(t, "lc", ex.gotName)
	assert.Equal(t, []string{"show", "1", "-g", "-l", "typescript", "-o", "/w/p/1"}, ex.gotArgs)
	assert.Equal(t, env, ex.gotEnv)
	assert.Contains(t, out, "Source Code")
}

func TestFetchWrapsExecutorError(t *testing.T) {
	ex := &fakeExecutor{runErr: fmt.Errorf("exit status 1")}
	c, err := newClient(types.FetchConfig{}, nil, ex)
	require.NoError(t, err)

	_, err = c.Fetch(context.Background(), "7", "golang", "/w")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "problem 7")
}

func TestListInvokesExecutor(t *testing.T) {
	ex := &fakeExecutor{output: "✔ [1] Two Sum Easy (45.3%)\n"}
	c, err := newClient(types.FetchConfig{}, nil, ex)
	require.NoError(t, err)

	out, err := c.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"list"}, ex.gotArgs)
	assert.Contains(t, out, "Two Sum")
}

func TestSourcePath(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		want    string
		wantErr error
	}{
		{
			"marker present",
			"[INFO] Fetching...\n* Source Code: /w/p/1/two-sum.ts\n* Done\n",
			"/w/p/1/two-sum.ts",
			nil,
		},
		{
			"indented marker",
			"   * Source Code:   /w/p/1/two-sum.ts  \n",
			"/w/p/1/two-sum.ts",
			nil,
		},
		{"marker absent", "[ERROR] login expired\n", "", ErrNoSourcePath},
		{"marker with empty path", "* Source Code:\n", "", ErrNoSourcePath},
		{"empty output", "", "", ErrNoSourcePath},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SourcePath(tt.output)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
