package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/skorotkiewicz/mrm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execRoot runs the root command with args against a stub runFn and
// returns the config it received.
func execRoot(t *testing.T, args ...string) (mrm.Config, error) {
	t.Helper()
	var got mrm.Config
	called := false
	cmd := newRootCmd(func(_ context.Context, cfg mrm.Config) error {
		called = true
		got = cfg
		return nil
	})
	cmd.SetArgs(args)
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	err := cmd.Execute()
	if err == nil && !called {
		t.Fatal("runFn was not called")
	}
	return got, err
}

func TestRootCmd_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := execRoot(t)
	require.NoError(t, err)
	assert.Equal(t, "http://ml:8888/v1", cfg.Endpoint)
	assert.Equal(t, "default", cfg.Model)
	assert.Empty(t, cfg.APIKey)
}

func TestRootCmd_ShortFlags(t *testing.T) {
	t.Parallel()

	cfg, err := execRoot(t, "-e", "https://api.example.com/v1", "-m", "gpt-test", "-a", "sk-123")
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/v1", cfg.Endpoint)
	assert.Equal(t, "gpt-test", cfg.Model)
	assert.Equal(t, "sk-123", cfg.APIKey)
}

func TestRootCmd_LongFlags(t *testing.T) {
	t.Parallel()

	cfg, err := execRoot(t, "--endpoint", "http://localhost:8080/v1", "--model", "local", "--apikey", "key")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/v1", cfg.Endpoint)
	assert.Equal(t, "local", cfg.Model)
	assert.Equal(t, "key", cfg.APIKey)
}

func TestRootCmd_InvalidEndpoint(t *testing.T) {
	t.Parallel()

	cmd := newRootCmd(func(context.Context, mrm.Config) error {
		t.Fatal("runFn should not be called with an invalid endpoint")
		return nil
	})
	cmd.SetArgs([]string{"-e", "not a url"})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	err := cmd.Execute()
	require.ErrorIs(t, err, mrm.ErrEndpoint)
}

func TestRootCmd_UnknownFlag(t *testing.T) {
	t.Parallel()

	cmd := newRootCmd(func(context.Context, mrm.Config) error { return nil })
	cmd.SetArgs([]string{"--no-such-flag"})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	assert.Error(t, cmd.Execute())
}

func TestRootCmd_PositionalArgsRejected(t *testing.T) {
	t.Parallel()

	cmd := newRootCmd(func(context.Context, mrm.Config) error { return nil })
	cmd.SetArgs([]string{"unexpected"})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	assert.Error(t, cmd.Execute())
}

func TestRootCmd_Version(t *testing.T) {
	t.Parallel()

	cmd := newRootCmd(func(context.Context, mrm.Config) error {
		t.Fatal("runFn should not be called for -V")
		return nil
	})
	out := new(bytes.Buffer)
	cmd.SetArgs([]string{"-V"})
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), version)
}
