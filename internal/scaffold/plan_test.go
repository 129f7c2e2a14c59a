package scaffold_test

import (
	"path"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/docscaffold/internal/scaffold"
)

const (
	testRunDateConstant                = "2026-08-26"
	testProjectTypeConstant            = "Next.js"
	testTechStackConstant              = "Next.js, Tailwind, Prisma"
	testFeaturesConstant               = "e-commerce storefront"
	expectedOverviewSubstringConstant  = "Next.js application for e-commerce storefront"
	expectedTechStackSubstringConstant = "Tech Stack: Next.js, Tailwind, Prisma"
	guideRelativePathConstant          = "CLAUDE.md"
	ignoreRelativePathConstant         = ".claudeignore"
	rootDirectoryReferenceConstant     = "."
)

var expectedDirectoryPlan = []string{
	".claude",
	".claude/completions",
	".claude/sessions",
	".claude/sessions/active",
	".claude/sessions/archive",
	".claude/templates",
	"docs",
	"docs/learnings",
	"docs/archive",
}

var mandatoryIgnoreGlobs = []string{
	".claude/completions/**",
	".claude/sessions/**",
	"docs/archive/**",
}

func sampleOperatorInput() scaffold.OperatorInput {
	return scaffold.OperatorInput{
		ProjectType: testProjectTypeConstant,
		TechStack:   testTechStackConstant,
		Features:    testFeaturesConstant,
	}
}

func TestDirectoryPlanIsFixed(testInstance *testing.T) {
	require.Equal(testInstance, expectedDirectoryPlan, scaffold.DirectoryPlan())
}

func TestFilePlanParentsAreCovered(testInstance *testing.T) {
	plannedDirectories := map[string]struct{}{rootDirectoryReferenceConstant: {}}
	for _, plannedDirectory := range scaffold.DirectoryPlan() {
		plannedDirectories[plannedDirectory] = struct{}{}
	}

	for _, plannedFile := range scaffold.FilePlan() {
		parentDirectory := path.Dir(plannedFile.RelativePath)
		_, parentPlanned := plannedDirectories[parentDirectory]
		require.Truef(testInstance, parentPlanned, "file %s has no planned parent directory", plannedFile.RelativePath)
	}
}

func TestFilePlanIsDeterministic(testInstance *testing.T) {
	firstPaths := plannedFilePaths()
	secondPaths := plannedFilePaths()
	require.Equal(testInstance, firstPaths, secondPaths)
	require.Contains(testInstance, firstPaths, guideRelativePathConstant)
	require.Contains(testInstance, firstPaths, ignoreRelativePathConstant)
}

func TestGuideRenderingInterpolatesOperatorInput(testInstance *testing.T) {
	guideContent := renderPlannedFile(testInstance, guideRelativePathConstant)
	require.Contains(testInstance, guideContent, expectedOverviewSubstringConstant)
	require.Contains(testInstance, guideContent, expectedTechStackSubstringConstant)
	require.Contains(testInstance, guideContent, testRunDateConstant)
}

func TestIgnoreFileListsMandatoryGlobs(testInstance *testing.T) {
	ignoreContent := renderPlannedFile(testInstance, ignoreRelativePathConstant)
	ignoreLines := strings.Split(ignoreContent, "\n")
	for _, mandatoryGlob := range mandatoryIgnoreGlobs {
		require.Containsf(testInstance, ignoreLines, mandatoryGlob, "missing mandatory glob %s", mandatoryGlob)
	}
}

func TestPlaceholderDocumentsCarryDateStamp(testInstance *testing.T) {
	for _, plannedFile := range scaffold.FilePlan() {
		if plannedFile.RelativePath == ignoreRelativePathConstant {
			continue
		}
		renderedContent := plannedFile.Render(sampleOperatorInput(), testRunDateConstant)
		require.Containsf(testInstance, renderedContent, testRunDateConstant, "file %s missing date stamp", plannedFile.RelativePath)
	}
}

func plannedFilePaths() []string {
	var relativePaths []string
	for _, plannedFile := range scaffold.FilePlan() {
		relativePaths = append(relativePaths, plannedFile.RelativePath)
	}
	return relativePaths
}

func renderPlannedFile(testInstance *testing.T, relativePath string) string {
	testInstance.Helper()
	for _, plannedFile := range scaffold.FilePlan() {
		if plannedFile.RelativePath == relativePath {
			return plannedFile.Render(sampleOperatorInput(), testRunDateConstant)
		}
	}
	testInstance.Fatalf("file plan missing %s", relativePath)
	return ""
}
