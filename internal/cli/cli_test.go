package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWithArgs_Version(t *testing.T) {
	output := captureOutput(t, func() {
		err := RunWithArgs("1.2.3", []string{"--version"})
		require.NoError(t, err)
	})

	assert.Contains(t, output, "histlog 1.2.3")
}

func TestRunWithArgs_VersionAfterLeadingFlags(t *testing.T) {
	output := captureOutput(t, func() {
		err := RunWithArgs("1.2.3", []string{"--verbose", "--version"})
		require.NoError(t, err)
	})

	assert.Contains(t, output, "histlog 1.2.3")
}

func TestRunWithArgs_VersionFlagOnSubcommand(t *testing.T) {
	// Past the subcommand word, --version reaches the parser as the global
	// flag and short-circuits the command instead of executing it.
	output := captureOutput(t, func() {
		err := RunWithArgs("1.2.3", []string{"view", "--version"})
		require.NoError(t, err)
	})

	assert.Contains(t, output, "histlog 1.2.3")
	assert.NotContains(t, output, "Recent Browsing History")
}

func TestRunWithArgs_VersionDoesNotMaskUnknownCommand(t *testing.T) {
	err := RunWithArgs("1.2.3", []string{"frobnicate", "--version"})
	assert.Error(t, err)
}

func TestRunWithArgs_UnknownCommand(t *testing.T) {
	err := RunWithArgs("dev", []string{"frobnicate"})
	assert.Error(t, err)
}

func TestRunWithArgs_HelpIsNotAnError(t *testing.T) {
	// go-flags writes help to stderr under goflags.Default; Run must treat
	// it as a clean exit.
	err := RunWithArgs("dev", []string{"--help"})
	assert.NoError(t, err)
}

func TestRunWithArgs_BareHelpWord(t *testing.T) {
	err := RunWithArgs("dev", []string{"help"})
	assert.NoError(t, err)
}

func TestBuildParser_RegistersAllCommands(t *testing.T) {
	parser, _, _ := buildParser("dev")

	for _, name := range []string{"collect", "view", "report", "top", "search", "summary"} {
		assert.NotNil(t, parser.Find(name), "command %q not registered", name)
	}
}

func TestBuildParser_Name(t *testing.T) {
	parser, _, _ := buildParser("dev")
	assert.Equal(t, "histlog", parser.Name)
}
