package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/docscaffold/cmd/cli"
)

const (
	helpFlagConstant                 = "--help"
	initCommandNameConstant          = "init"
	helpDescriptionSnippetConstant   = "docscaffold creates the .claude/ state tree"
	helpUsageSnippetConstant         = "Usage:"
	rootCommandExpectedNameConstant  = "docscaffold"
	subcommandMissingMessageConstant = "init subcommand not registered"
)

func TestNewApplicationRegistersInitCommand(testInstance *testing.T) {
	application := cli.NewApplication()
	rootCommand := application.RootCommand()
	require.Equal(testInstance, rootCommandExpectedNameConstant, rootCommand.Name())

	initRegistered := false
	for _, registeredCommand := range rootCommand.Commands() {
		if registeredCommand.Name() == initCommandNameConstant {
			initRegistered = true
		}
	}
	require.True(testInstance, initRegistered, subcommandMissingMessageConstant)
}

func TestApplicationHelpOutput(testInstance *testing.T) {
	application := cli.NewApplication()
	rootCommand := application.RootCommand()

	var helpOutput bytes.Buffer
	rootCommand.SetOut(&helpOutput)
	rootCommand.SetErr(&helpOutput)
	rootCommand.SetArgs([]string{helpFlagConstant})

	executionError := application.Execute()
	require.NoError(testInstance, executionError)

	helpText := helpOutput.String()
	require.Contains(testInstance, helpText, helpUsageSnippetConstant)
	require.Contains(testInstance, helpText, helpDescriptionSnippetConstant)
	require.Contains(testInstance, helpText, initCommandNameConstant)
}
