package scaffold

import (
	"fmt"
	"strings"
)

// Advertised figures for the documentation convention. These are claims about
// the convention itself, not measurements of the target project.
const (
	estimatedUnguidedContextTokensConstant = 95000
	estimatedGuidedContextTokensConstant   = 4000
	estimatedSavingsPercentConstant        = 95
	estimatedSessionStartupTokensConstant  = 2000
)

const (
	summaryHeaderConstant                       = "Documentation scaffold complete."
	summaryDirectoriesHeadingConstant           = "Created directories:"
	summaryFilesHeadingConstant                 = "Created files:"
	summaryTemplatesHeadingConstant             = "Copied templates:"
	summaryTemplatesSkippedLineTemplateConstant = "Skipped template %s (%s)"
	summaryListItemTemplateConstant             = "  %s"
	summarySavingsTemplateConstant              = "Estimated context savings: ~%d tokens -> ~%d tokens (~%d%% less), ~%d tokens per session start."
	summaryNextStepsHeadingConstant             = "Next steps:"
	summaryNextStepTemplateConstant             = "  %d. %s"
	summaryLineSeparatorConstant                = "\n"
)

var summaryNextSteps = []string{
	"Review CLAUDE.md and replace the generated overview where it falls short.",
	"Fill in .claude/QUICK_START.md and .claude/ARCHITECTURE_MAP.md.",
	"Commit the scaffolded files so the convention travels with the repository.",
	"Record the first completed task in .claude/completions/.",
}

// RunResult collects everything a completed run created for summary reporting.
type RunResult struct {
	CreatedDirectories []string
	WrittenFiles       []string
	CopiedTemplates    []string
	SkippedTemplates   []SkippedCopy
}

// SummaryBuilder renders the human-readable completion report printed after a
// successful run.
type SummaryBuilder struct{}

// Build assembles the summary text: created paths, the advertised savings
// figures, and the numbered follow-up steps.
func (builder SummaryBuilder) Build(result RunResult) string {
	var summaryLines []string

	summaryLines = append(summaryLines, summaryHeaderConstant, "")

	summaryLines = append(summaryLines, summaryDirectoriesHeadingConstant)
	for _, createdDirectory := range result.CreatedDirectories {
		summaryLines = append(summaryLines, fmt.Sprintf(summaryListItemTemplateConstant, createdDirectory))
	}

	summaryLines = append(summaryLines, "", summaryFilesHeadingConstant)
	for _, writtenFile := range result.WrittenFiles {
		summaryLines = append(summaryLines, fmt.Sprintf(summaryListItemTemplateConstant, writtenFile))
	}

	if len(result.CopiedTemplates) > 0 {
		summaryLines = append(summaryLines, "", summaryTemplatesHeadingConstant)
		for _, copiedTemplate := range result.CopiedTemplates {
			summaryLines = append(summaryLines, fmt.Sprintf(summaryListItemTemplateConstant, copiedTemplate))
		}
	}

	for _, skippedTemplate := range result.SkippedTemplates {
		summaryLines = append(summaryLines, fmt.Sprintf(summaryTemplatesSkippedLineTemplateConstant, skippedTemplate.Source, skippedTemplate.Reason))
	}

	summaryLines = append(summaryLines, "",
		fmt.Sprintf(
			summarySavingsTemplateConstant,
			estimatedUnguidedContextTokensConstant,
			estimatedGuidedContextTokensConstant,
			estimatedSavingsPercentConstant,
			estimatedSessionStartupTokensConstant,
		),
	)

	summaryLines = append(summaryLines, "", summaryNextStepsHeadingConstant)
	for stepIndex, nextStep := range summaryNextSteps {
		summaryLines = append(summaryLines, fmt.Sprintf(summaryNextStepTemplateConstant, stepIndex+1, nextStep))
	}

	return strings.Join(summaryLines, summaryLineSeparatorConstant) + summaryLineSeparatorConstant
}
