package scaffold

import "fmt"

const (
	guideFileNameConstant            = "CLAUDE.md"
	ignoreFileNameConstant           = ".claudeignore"
	claudeDirectoryConstant          = ".claude"
	completionsDirectoryConstant     = ".claude/completions"
	sessionsDirectoryConstant        = ".claude/sessions"
	sessionsActiveDirectoryConstant  = ".claude/sessions/active"
	sessionsArchiveDirectoryConstant = ".claude/sessions/archive"
	templatesDirectoryConstant       = ".claude/templates"
	docsDirectoryConstant            = "docs"
	learningsDirectoryConstant       = "docs/learnings"
	docsArchiveDirectoryConstant     = "docs/archive"
)

// OperatorInput carries the three free-text values collected at the start of a run.
type OperatorInput struct {
	ProjectType string
	TechStack   string
	Features    string
}

// PlannedFile pairs a relative path with a pure content renderer over operator
// input and the run date.
type PlannedFile struct {
	RelativePath string
	Render       func(input OperatorInput, runDate string) string
}

// DirectoryPlan returns the fixed, ordered set of directories the scaffolder creates.
// Parents precede children so the plan can be materialized in order.
func DirectoryPlan() []string {
	return []string{
		claudeDirectoryConstant,
		completionsDirectoryConstant,
		sessionsDirectoryConstant,
		sessionsActiveDirectoryConstant,
		sessionsArchiveDirectoryConstant,
		templatesDirectoryConstant,
		docsDirectoryConstant,
		learningsDirectoryConstant,
		docsArchiveDirectoryConstant,
	}
}

// FilePlan returns the fixed set of files the scaffolder writes. Every parent
// directory of a planned file appears in DirectoryPlan. Files are overwritten
// unconditionally on rerun.
func FilePlan() []PlannedFile {
	return []PlannedFile{
		{
			RelativePath: guideFileNameConstant,
			Render: func(input OperatorInput, runDate string) string {
				return fmt.Sprintf(claudeGuideTemplateConstant, runDate, input.ProjectType, input.Features, input.TechStack)
			},
		},
		{
			RelativePath: ignoreFileNameConstant,
			Render: func(input OperatorInput, runDate string) string {
				return claudeIgnoreContentConstant
			},
		},
		{RelativePath: ".claude/COMMON_MISTAKES.md", Render: dateStampedRenderer(commonMistakesTemplateConstant)},
		{RelativePath: ".claude/QUICK_START.md", Render: dateStampedRenderer(quickStartTemplateConstant)},
		{RelativePath: ".claude/ARCHITECTURE_MAP.md", Render: dateStampedRenderer(architectureMapTemplateConstant)},
		{RelativePath: ".claude/LEARNINGS_INDEX.md", Render: dateStampedRenderer(learningsIndexTemplateConstant)},
		{RelativePath: ".claude/completions/README.md", Render: dateStampedRenderer(completionsReadmeTemplateConstant)},
		{RelativePath: ".claude/sessions/README.md", Render: dateStampedRenderer(sessionsReadmeTemplateConstant)},
		{RelativePath: "docs/INDEX.md", Render: dateStampedRenderer(docsIndexTemplateConstant)},
		{RelativePath: "docs/QUICK_REFERENCE.md", Render: dateStampedRenderer(quickReferenceTemplateConstant)},
		{RelativePath: "docs/archive/README.md", Render: dateStampedRenderer(docsArchiveReadmeTemplateConstant)},
	}
}

func dateStampedRenderer(template string) func(OperatorInput, string) string {
	return func(input OperatorInput, runDate string) string {
		return fmt.Sprintf(template, runDate)
	}
}
