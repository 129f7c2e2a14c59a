package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	runDateLayoutConstant                   = "2006-01-02"
	scaffoldDirectoryModeConstant           = 0o755
	scaffoldFileModeConstant                = 0o644
	projectTypePromptConstant               = "Project type (e.g. web app, CLI, service): "
	techStackPromptConstant                 = "Tech stack: "
	featuresPromptConstant                  = "Main features: "
	noMarkersWarningTemplateConstant        = "Warning: %s does not look like a project root (no VCS metadata or manifest found).\n"
	continueConfirmationPromptConstant      = "Continue anyway? [y/N]: "
	directoryCreationErrorTemplateConstant  = "unable to create directory %s: %w"
	fileWriteErrorTemplateConstant          = "unable to write file %s: %w"
	workingDirectoryRequiredMessageConstant = "working directory must be provided"
	promptFailureTemplateConstant           = "unable to read operator input: %w"
	logMessageScaffoldStartedConstant       = "scaffold run started"
	logMessageScaffoldDeclinedConstant      = "scaffold declined by operator"
	logMessageTemplateSourceMissingConstant = "template source directory missing, skipping optional copies"
	logMessageTemplateCopySkippedConstant   = "template copy skipped"
	logMessageScaffoldCompletedConstant     = "scaffold run completed"
	logFieldWorkingDirectoryConstant        = "working_directory"
	logFieldDetectedMarkersConstant         = "detected_markers"
	logFieldTemplateSourceDirectoryConstant = "template_source_directory"
	logFieldSkippedTemplateConstant         = "template"
	logFieldSkipReasonConstant              = "reason"
	logFieldCreatedDirectoryCountConstant   = "created_directories"
	logFieldWrittenFileCountConstant        = "written_files"
)

// ErrScaffoldDeclined reports that the operator declined to scaffold an
// unrecognized directory. No filesystem mutation happens before this point.
var ErrScaffoldDeclined = errors.New("scaffold declined: directory not confirmed as a project root")

// Clock supplies the current time, injectable for deterministic date stamps.
type Clock func() time.Time

// MarkerDetector reports project-root indicators found in a directory.
type MarkerDetector interface {
	DetectMarkers(workingDirectory string) []string
}

// TemplateSourceCopier transfers optional template files into the scaffolded tree.
type TemplateSourceCopier interface {
	Copy(sourceDirectory string, targetDirectory string) CopyOutcome
}

// EventObserver receives scaffold lifecycle notifications for human-readable rendering.
type EventObserver interface {
	DirectoryCreated(relativePath string)
	FileWritten(relativePath string)
	TemplateCopied(destinationRelativePath string)
	TemplateCopySkipped(sourceName string, reason string)
	TemplateSourceMissing(sourceDirectory string)
}

// ServiceDependencies carries the collaborators required to run the scaffolder.
type ServiceDependencies struct {
	Logger           *zap.Logger
	WorkingDirectory string
	Input            io.Reader
	Output           io.Writer
	Clock            Clock
	Detector         MarkerDetector
	Copier           TemplateSourceCopier
	Observer         EventObserver
	Configuration    CommandConfiguration
}

// Service drives a single scaffold run: precondition gate, operator input,
// directory and file materialization, best-effort template copy, and summary.
type Service struct {
	logger           *zap.Logger
	workingDirectory string
	prompter         *IOPrompter
	output           io.Writer
	clock            Clock
	detector         MarkerDetector
	copier           TemplateSourceCopier
	observer         EventObserver
	configuration    CommandConfiguration
}

type nopEventObserver struct{}

func (nopEventObserver) DirectoryCreated(string)            {}
func (nopEventObserver) FileWritten(string)                 {}
func (nopEventObserver) TemplateCopied(string)              {}
func (nopEventObserver) TemplateCopySkipped(string, string) {}
func (nopEventObserver) TemplateSourceMissing(string)       {}

// NewService validates dependencies and fills defaults for optional collaborators.
func NewService(dependencies ServiceDependencies) (*Service, error) {
	if len(dependencies.WorkingDirectory) == 0 {
		return nil, errors.New(workingDirectoryRequiredMessageConstant)
	}

	if dependencies.Input == nil {
		dependencies.Input = strings.NewReader("")
	}

	service := &Service{
		logger:           dependencies.Logger,
		workingDirectory: dependencies.WorkingDirectory,
		prompter:         NewIOPrompter(dependencies.Input, dependencies.Output),
		output:           dependencies.Output,
		clock:            dependencies.Clock,
		detector:         dependencies.Detector,
		copier:           dependencies.Copier,
		observer:         dependencies.Observer,
		configuration:    dependencies.Configuration.Sanitize(),
	}

	if service.logger == nil {
		service.logger = zap.NewNop()
	}
	if service.clock == nil {
		service.clock = time.Now
	}
	if service.detector == nil {
		service.detector = NewProjectMarkerDetector()
	}
	if service.copier == nil {
		service.copier = NewTemplateCopier()
	}
	if service.observer == nil {
		service.observer = nopEventObserver{}
	}

	return service, nil
}

// Run executes the scaffold workflow. It aborts with ErrScaffoldDeclined before
// any filesystem mutation when the operator declines the project-root gate, and
// propagates the first directory or file write failure without rollback.
func (service *Service) Run(executionContext context.Context) error {
	if contextError := executionContext.Err(); contextError != nil {
		return contextError
	}

	detectedMarkers := service.detector.DetectMarkers(service.workingDirectory)
	service.logger.Info(
		logMessageScaffoldStartedConstant,
		zap.String(logFieldWorkingDirectoryConstant, service.workingDirectory),
		zap.Strings(logFieldDetectedMarkersConstant, detectedMarkers),
	)

	if len(detectedMarkers) == 0 && !service.configuration.AssumeYes {
		confirmed, confirmationError := service.confirmUnrecognizedDirectory()
		if confirmationError != nil {
			return fmt.Errorf(promptFailureTemplateConstant, confirmationError)
		}
		if !confirmed {
			service.logger.Info(
				logMessageScaffoldDeclinedConstant,
				zap.String(logFieldWorkingDirectoryConstant, service.workingDirectory),
			)
			return ErrScaffoldDeclined
		}
	}

	operatorInput, inputError := service.collectOperatorInput()
	if inputError != nil {
		return fmt.Errorf(promptFailureTemplateConstant, inputError)
	}

	runDate := service.clock().Format(runDateLayoutConstant)
	runResult := RunResult{}

	for _, plannedDirectory := range DirectoryPlan() {
		absoluteDirectoryPath := filepath.Join(service.workingDirectory, filepath.FromSlash(plannedDirectory))
		if creationError := os.MkdirAll(absoluteDirectoryPath, scaffoldDirectoryModeConstant); creationError != nil {
			return fmt.Errorf(directoryCreationErrorTemplateConstant, plannedDirectory, creationError)
		}
		runResult.CreatedDirectories = append(runResult.CreatedDirectories, plannedDirectory)
		service.observer.DirectoryCreated(plannedDirectory)
	}

	for _, plannedFile := range FilePlan() {
		absoluteFilePath := filepath.Join(service.workingDirectory, filepath.FromSlash(plannedFile.RelativePath))
		renderedContent := plannedFile.Render(operatorInput, runDate)
		if writeError := os.WriteFile(absoluteFilePath, []byte(renderedContent), scaffoldFileModeConstant); writeError != nil {
			return fmt.Errorf(fileWriteErrorTemplateConstant, plannedFile.RelativePath, writeError)
		}
		runResult.WrittenFiles = append(runResult.WrittenFiles, plannedFile.RelativePath)
		service.observer.FileWritten(plannedFile.RelativePath)
	}

	service.copyOptionalTemplates(&runResult)

	service.logger.Info(
		logMessageScaffoldCompletedConstant,
		zap.Int(logFieldCreatedDirectoryCountConstant, len(runResult.CreatedDirectories)),
		zap.Int(logFieldWrittenFileCountConstant, len(runResult.WrittenFiles)),
	)

	return service.writeSummary(runResult)
}

func (service *Service) confirmUnrecognizedDirectory() (bool, error) {
	warningMessage := fmt.Sprintf(noMarkersWarningTemplateConstant, service.workingDirectory)
	if service.output != nil {
		if _, writeError := io.WriteString(service.output, warningMessage); writeError != nil {
			return false, writeError
		}
	}
	return service.prompter.Confirm(continueConfirmationPromptConstant)
}

func (service *Service) collectOperatorInput() (OperatorInput, error) {
	if presetInput, presetsComplete := service.configuration.PresetAnswers(); presetsComplete {
		return presetInput, nil
	}

	projectType, projectTypeError := service.prompter.PromptString(projectTypePromptConstant)
	if projectTypeError != nil {
		return OperatorInput{}, projectTypeError
	}

	techStack, techStackError := service.prompter.PromptString(techStackPromptConstant)
	if techStackError != nil {
		return OperatorInput{}, techStackError
	}

	features, featuresError := service.prompter.PromptString(featuresPromptConstant)
	if featuresError != nil {
		return OperatorInput{}, featuresError
	}

	return OperatorInput{ProjectType: projectType, TechStack: techStack, Features: features}, nil
}

// copyOptionalTemplates resolves the template source relative to the working
// directory and records the best-effort outcome; nothing here is fatal.
func (service *Service) copyOptionalTemplates(runResult *RunResult) {
	templateSourceDirectory := service.configuration.TemplateSourceDirectory
	if len(templateSourceDirectory) == 0 {
		templateSourceDirectory = defaultTemplateSourceDirectoryConstant
	}
	if !filepath.IsAbs(templateSourceDirectory) {
		templateSourceDirectory = filepath.Join(service.workingDirectory, filepath.FromSlash(templateSourceDirectory))
	}

	copyOutcome := service.copier.Copy(templateSourceDirectory, service.workingDirectory)

	if copyOutcome.SourceMissing {
		service.logger.Warn(
			logMessageTemplateSourceMissingConstant,
			zap.String(logFieldTemplateSourceDirectoryConstant, templateSourceDirectory),
		)
		service.observer.TemplateSourceMissing(templateSourceDirectory)
		return
	}

	for _, copiedDestination := range copyOutcome.CopiedDestinations {
		runResult.CopiedTemplates = append(runResult.CopiedTemplates, copiedDestination)
		service.observer.TemplateCopied(copiedDestination)
	}

	for _, skippedEntry := range copyOutcome.SkippedEntries {
		runResult.SkippedTemplates = append(runResult.SkippedTemplates, skippedEntry)
		service.logger.Warn(
			logMessageTemplateCopySkippedConstant,
			zap.String(logFieldSkippedTemplateConstant, skippedEntry.Source),
			zap.String(logFieldSkipReasonConstant, skippedEntry.Reason),
		)
		service.observer.TemplateCopySkipped(skippedEntry.Source, skippedEntry.Reason)
	}
}

func (service *Service) writeSummary(runResult RunResult) error {
	if service.output == nil {
		return nil
	}
	summaryText := SummaryBuilder{}.Build(runResult)
	_, writeError := io.WriteString(service.output, summaryText)
	return writeError
}
