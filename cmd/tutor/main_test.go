package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"dsa-tutor/internal/domain/model"
)

func TestFetchRequiresIdentifier(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"fetch"})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))

	assert.Error(t, cmd.Execute())
}

func TestFetchUnsupportedIdentifier(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TUTOR_CONFIG", "")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs([]string{"fetch", "https://example.com/problems/x"})
	cmd.SetOut(&out)
	cmd.SetErr(new(bytes.Buffer))

	err := cmd.Execute()
	assert.ErrorIs(t, err, model.ErrUnsupportedPlatform)
	assert.Empty(t, out.String())
}
