package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	copyManifestFileNameConstant             = "manifest.yaml"
	maintenanceDocumentFileNameConstant      = "DOCUMENTATION_MAINTENANCE.md"
	completionTemplateFileNameConstant       = "completion-template.md"
	maintenanceDocumentDestinationConstant   = ".claude/DOCUMENTATION_MAINTENANCE.md"
	completionTemplateDestinationConstant    = ".claude/templates/completion-template.md"
	manifestUnreadableReasonTemplateConstant = "manifest unreadable, using default entries: %v"
	copyFailureReasonTemplateConstant        = "copy failed: %v"
	copiedFileModeConstant                   = 0o644
)

// TemplateCopyEntry names a file within the template source directory and its
// destination relative to the scaffold target.
type TemplateCopyEntry struct {
	Source      string `yaml:"source"`
	Destination string `yaml:"destination"`
}

// CopyOutcome reports what the best-effort template copy accomplished. A copy
// never fails the run; every miss is recorded as a skip with a reason.
type CopyOutcome struct {
	CopiedDestinations []string
	SkippedEntries     []SkippedCopy
	SourceMissing      bool
}

// SkippedCopy pairs a skipped template entry with the reason it was skipped.
type SkippedCopy struct {
	Source string
	Reason string
}

type copyManifest struct {
	Files []TemplateCopyEntry `yaml:"files"`
}

// TemplateCopier copies optional template files from a sibling source directory
// into the scaffolded tree.
type TemplateCopier struct{}

// NewTemplateCopier constructs a best-effort template copier.
func NewTemplateCopier() *TemplateCopier {
	return &TemplateCopier{}
}

// DefaultCopyEntries returns the two template files copied when the source
// directory carries no manifest.
func DefaultCopyEntries() []TemplateCopyEntry {
	return []TemplateCopyEntry{
		{Source: maintenanceDocumentFileNameConstant, Destination: maintenanceDocumentDestinationConstant},
		{Source: completionTemplateFileNameConstant, Destination: completionTemplateDestinationConstant},
	}
}

// Copy transfers template files from sourceDirectory into targetDirectory.
// A manifest.yaml inside the source directory overrides the default entries.
// All failures are recorded in the outcome rather than returned.
func (copier *TemplateCopier) Copy(sourceDirectory string, targetDirectory string) CopyOutcome {
	outcome := CopyOutcome{}

	sourceInfo, sourceStatError := os.Stat(sourceDirectory)
	if sourceStatError != nil || !sourceInfo.IsDir() {
		outcome.SourceMissing = true
		return outcome
	}

	copyEntries, manifestReason := copier.resolveCopyEntries(sourceDirectory)
	if len(manifestReason) > 0 {
		outcome.SkippedEntries = append(outcome.SkippedEntries, SkippedCopy{Source: copyManifestFileNameConstant, Reason: manifestReason})
	}

	for _, copyEntry := range copyEntries {
		destinationPath := filepath.Join(targetDirectory, filepath.FromSlash(copyEntry.Destination))
		copyError := copier.copyFile(filepath.Join(sourceDirectory, copyEntry.Source), destinationPath)
		if copyError != nil {
			outcome.SkippedEntries = append(outcome.SkippedEntries, SkippedCopy{
				Source: copyEntry.Source,
				Reason: fmt.Sprintf(copyFailureReasonTemplateConstant, copyError),
			})
			continue
		}
		outcome.CopiedDestinations = append(outcome.CopiedDestinations, copyEntry.Destination)
	}

	return outcome
}

// resolveCopyEntries loads manifest.yaml when present, falling back to the
// default entries with a reason on any read or parse failure.
func (copier *TemplateCopier) resolveCopyEntries(sourceDirectory string) ([]TemplateCopyEntry, string) {
	manifestPath := filepath.Join(sourceDirectory, copyManifestFileNameConstant)
	manifestData, readError := os.ReadFile(manifestPath)
	if readError != nil {
		if os.IsNotExist(readError) {
			return DefaultCopyEntries(), ""
		}
		return DefaultCopyEntries(), fmt.Sprintf(manifestUnreadableReasonTemplateConstant, readError)
	}

	var parsedManifest copyManifest
	if parseError := yaml.Unmarshal(manifestData, &parsedManifest); parseError != nil {
		return DefaultCopyEntries(), fmt.Sprintf(manifestUnreadableReasonTemplateConstant, parseError)
	}

	validEntries := make([]TemplateCopyEntry, 0, len(parsedManifest.Files))
	for _, manifestEntry := range parsedManifest.Files {
		trimmedSource := strings.TrimSpace(manifestEntry.Source)
		trimmedDestination := strings.TrimSpace(manifestEntry.Destination)
		if len(trimmedSource) == 0 || len(trimmedDestination) == 0 {
			continue
		}
		validEntries = append(validEntries, TemplateCopyEntry{Source: trimmedSource, Destination: trimmedDestination})
	}

	if len(validEntries) == 0 {
		return DefaultCopyEntries(), ""
	}
	return validEntries, ""
}

func (copier *TemplateCopier) copyFile(sourcePath string, destinationPath string) error {
	sourceContent, readError := os.ReadFile(sourcePath)
	if readError != nil {
		return readError
	}
	return os.WriteFile(destinationPath, sourceContent, copiedFileModeConstant)
}
