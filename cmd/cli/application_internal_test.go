package cli

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/docscaffold/internal/utils"
)

const (
	internalTestLogLevelFlagValueConstant  = "debug"
	internalTestLogFormatFlagValueConstant = "console"
)

func TestInitializeConfigurationAppliesEmbeddedDefaults(testInstance *testing.T) {
	application := NewApplication()

	initializationError := application.initializeConfiguration(application.rootCommand)
	require.NoError(testInstance, initializationError)

	require.Equal(testInstance, string(utils.LogLevelInfo), application.configuration.Common.LogLevel)
	require.Equal(testInstance, string(utils.LogFormatStructured), application.configuration.Common.LogFormat)
	require.NotEmpty(testInstance, application.configuration.Tools.Scaffold.TemplateSourceDirectory)
	require.False(testInstance, application.configuration.Tools.Scaffold.AssumeYes)
}

func TestInitializeConfigurationHonorsFlagOverrides(testInstance *testing.T) {
	application := NewApplication()

	require.NoError(testInstance, application.rootCommand.PersistentFlags().Set(logLevelFlagNameConstant, internalTestLogLevelFlagValueConstant))
	require.NoError(testInstance, application.rootCommand.PersistentFlags().Set(logFormatFlagNameConstant, internalTestLogFormatFlagValueConstant))

	initializationError := application.initializeConfiguration(application.rootCommand)
	require.NoError(testInstance, initializationError)

	require.Equal(testInstance, internalTestLogLevelFlagValueConstant, application.configuration.Common.LogLevel)
	require.Equal(testInstance, internalTestLogFormatFlagValueConstant, application.configuration.Common.LogFormat)
	require.True(testInstance, application.humanReadableLoggingEnabled())
}

func TestEmbeddedDefaultConfigurationReturnsCopy(testInstance *testing.T) {
	firstCopy := EmbeddedDefaultConfiguration()
	require.NotEmpty(testInstance, firstCopy)

	firstCopy[0] = '#'
	secondCopy := EmbeddedDefaultConfiguration()
	require.NotEqual(testInstance, firstCopy[0], secondCopy[0])
}
