package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguagesCmd_ListsLanguages(t *testing.T) {
	out := &bytes.Buffer{}

	cmd := newRootCmd()
	cmd.AddCommand(newLanguagesCmd())
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"languages"})

	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "LANGUAGE")
	assert.Contains(t, out.String(), "Go")
	assert.Contains(t, out.String(), "*.go")
}

func TestLanguagesCmd_RejectsArguments(t *testing.T) {
	cmd := newRootCmd()
	cmd.AddCommand(newLanguagesCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"languages", "extra"})

	assert.Error(t, cmd.Execute())
}
