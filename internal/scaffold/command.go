package scaffold

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/docscaffold/internal/utils"
)

const (
	commandUseConstant              = "init"
	commandShortDescriptionConstant = "Scaffold the documentation convention into the current project"
	commandLongDescriptionConstant  = "init creates the .claude/ state tree, the root CLAUDE.md guide, the .claudeignore manifest, and the docs/ knowledge tree in the current directory, prompting for project type, tech stack, and main features."
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// ServiceProvider constructs a scaffold service from resolved dependencies.
type ServiceProvider func(dependencies ServiceDependencies) (*Service, error)

// CommandBuilder assembles the init Cobra command.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	ConfigurationProvider        func() CommandConfiguration
	HumanReadableLoggingProvider func() bool
	EventObserverProvider        func() EventObserver
	WorkingDirectory             string
	Input                        io.Reader
	Output                       io.Writer
	Clock                        Clock
	ServiceProvider              ServiceProvider
}

// Build constructs the init command.
func (builder *CommandBuilder) Build() *cobra.Command {
	return &cobra.Command{
		Use:           commandUseConstant,
		Short:         commandShortDescriptionConstant,
		Long:          commandLongDescriptionConstant,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE:          builder.runScaffold,
	}
}

func (builder *CommandBuilder) runScaffold(command *cobra.Command, arguments []string) error {
	workingDirectory, workingDirectoryError := builder.resolveWorkingDirectory()
	if workingDirectoryError != nil {
		return workingDirectoryError
	}

	dependencies := ServiceDependencies{
		Logger:           builder.resolveLogger(),
		WorkingDirectory: workingDirectory,
		Input:            builder.resolveInput(command),
		Output:           builder.resolveOutput(command),
		Clock:            builder.Clock,
		Observer:         builder.resolveObserver(),
		Configuration:    builder.resolveConfiguration(),
	}

	service, serviceError := builder.resolveService(dependencies)
	if serviceError != nil {
		return serviceError
	}

	return service.Run(command.Context())
}

func (builder *CommandBuilder) resolveWorkingDirectory() (string, error) {
	if len(builder.WorkingDirectory) > 0 {
		return builder.WorkingDirectory, nil
	}
	return os.Getwd()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return CommandConfiguration{}
	}
	return builder.ConfigurationProvider()
}

func (builder *CommandBuilder) resolveInput(command *cobra.Command) io.Reader {
	if builder.Input != nil {
		return builder.Input
	}
	return command.InOrStdin()
}

// resolveOutput wraps the destination so prompts surface before the blocking
// read that follows them.
func (builder *CommandBuilder) resolveOutput(command *cobra.Command) io.Writer {
	if builder.Output != nil {
		return utils.NewFlushingWriter(builder.Output)
	}
	return utils.NewFlushingWriter(command.OutOrStdout())
}

// resolveObserver returns the configured observer only when human-readable
// logging is active; structured runs keep lifecycle events in the zap stream.
func (builder *CommandBuilder) resolveObserver() EventObserver {
	if builder.EventObserverProvider == nil {
		return nil
	}
	if builder.HumanReadableLoggingProvider != nil && !builder.HumanReadableLoggingProvider() {
		return nil
	}
	return builder.EventObserverProvider()
}

func (builder *CommandBuilder) resolveService(dependencies ServiceDependencies) (*Service, error) {
	if builder.ServiceProvider != nil {
		return builder.ServiceProvider(dependencies)
	}
	return NewService(dependencies)
}
