package ui

import (
	"fmt"

	"go.uber.org/zap"
)

const (
	directoryCreatedMessageTemplateConstant      = "Created directory %s"
	fileWrittenMessageTemplateConstant           = "Wrote %s"
	templateCopiedMessageTemplateConstant        = "Copied template to %s"
	templateCopySkippedMessageTemplateConstant   = "Skipped template %s: %s"
	templateSourceMissingMessageTemplateConstant = "Template source %s not found; optional templates skipped"
	unknownReasonMessageConstant                 = "unknown reason"
)

// ScaffoldEventFormatter builds human-readable messages for scaffold lifecycle events.
type ScaffoldEventFormatter struct{}

// BuildDirectoryCreatedMessage formats the message for a created directory.
func (formatter ScaffoldEventFormatter) BuildDirectoryCreatedMessage(relativePath string) string {
	return fmt.Sprintf(directoryCreatedMessageTemplateConstant, relativePath)
}

// BuildFileWrittenMessage formats the message for a written file.
func (formatter ScaffoldEventFormatter) BuildFileWrittenMessage(relativePath string) string {
	return fmt.Sprintf(fileWrittenMessageTemplateConstant, relativePath)
}

// BuildTemplateCopiedMessage formats the message for a copied optional template.
func (formatter ScaffoldEventFormatter) BuildTemplateCopiedMessage(destinationRelativePath string) string {
	return fmt.Sprintf(templateCopiedMessageTemplateConstant, destinationRelativePath)
}

// BuildTemplateCopySkippedMessage formats the message for a skipped optional template.
func (formatter ScaffoldEventFormatter) BuildTemplateCopySkippedMessage(sourceName string, reason string) string {
	if len(reason) == 0 {
		reason = unknownReasonMessageConstant
	}
	return fmt.Sprintf(templateCopySkippedMessageTemplateConstant, sourceName, reason)
}

// BuildTemplateSourceMissingMessage formats the message for an absent template source directory.
func (formatter ScaffoldEventFormatter) BuildTemplateSourceMissingMessage(sourceDirectory string) string {
	return fmt.Sprintf(templateSourceMissingMessageTemplateConstant, sourceDirectory)
}

// ConsoleScaffoldEventLogger renders scaffold lifecycle events using a zap logger
// configured for human-readable output.
type ConsoleScaffoldEventLogger struct {
	logger    *zap.Logger
	formatter ScaffoldEventFormatter
}

// NewConsoleScaffoldEventLogger constructs a console event logger backed by the provided zap logger.
func NewConsoleScaffoldEventLogger(logger *zap.Logger) *ConsoleScaffoldEventLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConsoleScaffoldEventLogger{logger: logger, formatter: ScaffoldEventFormatter{}}
}

// DirectoryCreated logs a created scaffold directory.
func (eventLogger *ConsoleScaffoldEventLogger) DirectoryCreated(relativePath string) {
	if eventLogger == nil {
		return
	}
	eventLogger.logger.Info(eventLogger.formatter.BuildDirectoryCreatedMessage(relativePath))
}

// FileWritten logs a written scaffold file.
func (eventLogger *ConsoleScaffoldEventLogger) FileWritten(relativePath string) {
	if eventLogger == nil {
		return
	}
	eventLogger.logger.Info(eventLogger.formatter.BuildFileWrittenMessage(relativePath))
}

// TemplateCopied logs a successfully copied optional template.
func (eventLogger *ConsoleScaffoldEventLogger) TemplateCopied(destinationRelativePath string) {
	if eventLogger == nil {
		return
	}
	eventLogger.logger.Info(eventLogger.formatter.BuildTemplateCopiedMessage(destinationRelativePath))
}

// TemplateCopySkipped logs a skipped optional template with its reason.
func (eventLogger *ConsoleScaffoldEventLogger) TemplateCopySkipped(sourceName string, reason string) {
	if eventLogger == nil {
		return
	}
	eventLogger.logger.Warn(eventLogger.formatter.BuildTemplateCopySkippedMessage(sourceName, reason))
}

// TemplateSourceMissing logs an absent template source directory.
func (eventLogger *ConsoleScaffoldEventLogger) TemplateSourceMissing(sourceDirectory string) {
	if eventLogger == nil {
		return
	}
	eventLogger.logger.Warn(eventLogger.formatter.BuildTemplateSourceMissingMessage(sourceDirectory))
}
