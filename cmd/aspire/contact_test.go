package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aspireai/aspire-site/internal/contact"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendContact(t *testing.T) {
	var got []contact.Submission
	client := contact.ClientFunc(func(_ context.Context, s contact.Submission) error {
		got = append(got, s)
		return nil
	})

	var out bytes.Buffer
	err := sendContact(context.Background(), client, map[string]string{
		"name":    "Jane Doe",
		"email":   "jane@example.com",
		"message": "Need a quote",
	}, &out)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Jane Doe", got[0].Name)
	assert.Empty(t, got[0].Phone)
	assert.Contains(t, out.String(), "Message Sent!")
}

func TestSendContactInvalid(t *testing.T) {
	called := false
	client := contact.ClientFunc(func(context.Context, contact.Submission) error {
		called = true
		return nil
	})

	var out bytes.Buffer
	err := sendContact(context.Background(), client, map[string]string{"name": "Jane Doe"}, &out)

	assert.ErrorIs(t, err, contact.ErrValidation)
	assert.False(t, called)
	assert.Empty(t, out.String())
}

func TestSendContactFailure(t *testing.T) {
	client := contact.ClientFunc(func(context.Context, contact.Submission) error {
		return contact.ErrServerRejected
	})

	var out bytes.Buffer
	err := sendContact(context.Background(), client, map[string]string{
		"name":    "Jane Doe",
		"email":   "jane@example.com",
		"message": "Need a quote",
	}, &out)

	assert.True(t, errors.Is(err, contact.ErrServerRejected))
	assert.Contains(t, out.String(), "Unexpected response from server.")
}

func TestResolveBackendURL(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("BACKEND_URL=https://api.from-dotenv.example\n"), 0o600))
	chdirForTest(t, dir)
	t.Setenv("ENV", "")
	t.Setenv("BACKEND_URL", "")
	require.NoError(t, os.Unsetenv("BACKEND_URL"))

	got, err := resolveBackendURL("https://flag.example")
	require.NoError(t, err)
	assert.Equal(t, "https://flag.example", got)

	got, err = resolveBackendURL("")
	require.NoError(t, err)
	assert.Equal(t, "https://api.from-dotenv.example", got)
}

func TestResolveBackendURLMissing(t *testing.T) {
	chdirForTest(t, t.TempDir())
	t.Setenv("ENV", "")
	t.Setenv("BACKEND_URL", "")
	require.NoError(t, os.Unsetenv("BACKEND_URL"))

	_, err := resolveBackendURL("")
	assert.Error(t, err)
}

// chdirForTest mirrors testing.T.Chdir (Go 1.24+): it changes the working
// directory for the duration of the test and restores it on cleanup.
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
