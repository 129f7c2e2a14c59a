package tests

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/docscaffold/cmd/cli"
)

const (
	integrationInitCommandNameConstant     = "init"
	integrationManifestFileNameConstant    = "package.json"
	integrationManifestContentConstant     = "{\n  \"name\": \"storefront\"\n}\n"
	integrationScriptedAnswersConstant     = "Next.js\nNext.js, Tailwind, Prisma\ne-commerce storefront\n"
	integrationGuideFileNameConstant       = "CLAUDE.md"
	integrationIgnoreFileNameConstant      = ".claudeignore"
	integrationOverviewSubstringConstant   = "Next.js application for e-commerce storefront"
	integrationTechStackSubstringConstant  = "Tech Stack: Next.js, Tailwind, Prisma"
	integrationMandatoryIgnoreGlobConstant = ".claude/completions/**"
	integrationSummarySubstringConstant    = "Documentation scaffold complete."
)

var integrationExpectedDirectories = []string{
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

var integrationExpectedFiles = []string{
	"CLAUDE.md",
	".claudeignore",
	".claude/COMMON_MISTAKES.md",
	".claude/QUICK_START.md",
	".claude/ARCHITECTURE_MAP.md",
	".claude/LEARNINGS_INDEX.md",
	".claude/completions/README.md",
	".claude/sessions/README.md",
	"docs/INDEX.md",
	"docs/QUICK_REFERENCE.md",
	"docs/archive/README.md",
}

func changeWorkingDirectory(testInstance *testing.T, targetDirectory string) {
	testInstance.Helper()
	originalWorkingDirectory, workingDirectoryError := os.Getwd()
	require.NoError(testInstance, workingDirectoryError)
	require.NoError(testInstance, os.Chdir(targetDirectory))
	testInstance.Cleanup(func() {
		require.NoError(testInstance, os.Chdir(originalWorkingDirectory))
	})
}

func TestInitCommandScaffoldsRecognizedProjectEndToEnd(testInstance *testing.T) {
	projectDirectory := testInstance.TempDir()
	require.NoError(testInstance, os.WriteFile(filepath.Join(projectDirectory, integrationManifestFileNameConstant), []byte(integrationManifestContentConstant), 0o644))
	changeWorkingDirectory(testInstance, projectDirectory)

	application := cli.NewApplication()
	rootCommand := application.RootCommand()

	var commandOutput bytes.Buffer
	rootCommand.SetIn(strings.NewReader(integrationScriptedAnswersConstant))
	rootCommand.SetOut(&commandOutput)
	rootCommand.SetErr(&commandOutput)
	rootCommand.SetArgs([]string{integrationInitCommandNameConstant})

	executionError := application.Execute()
	require.NoError(testInstance, executionError)

	for _, expectedDirectory := range integrationExpectedDirectories {
		directoryInfo, statError := os.Stat(filepath.Join(projectDirectory, expectedDirectory))
		require.NoErrorf(testInstance, statError, "missing directory %s", expectedDirectory)
		require.True(testInstance, directoryInfo.IsDir())
	}

	for _, expectedFile := range integrationExpectedFiles {
		fileInfo, statError := os.Stat(filepath.Join(projectDirectory, expectedFile))
		require.NoErrorf(testInstance, statError, "missing file %s", expectedFile)
		require.False(testInstance, fileInfo.IsDir())
	}

	guideContent, guideReadError := os.ReadFile(filepath.Join(projectDirectory, integrationGuideFileNameConstant))
	require.NoError(testInstance, guideReadError)
	require.Contains(testInstance, string(guideContent), integrationOverviewSubstringConstant)
	require.Contains(testInstance, string(guideContent), integrationTechStackSubstringConstant)

	ignoreContent, ignoreReadError := os.ReadFile(filepath.Join(projectDirectory, integrationIgnoreFileNameConstant))
	require.NoError(testInstance, ignoreReadError)
	require.Contains(testInstance, strings.Split(string(ignoreContent), "\n"), integrationMandatoryIgnoreGlobConstant)

	require.Contains(testInstance, commandOutput.String(), integrationSummarySubstringConstant)
}

func TestInitCommandDeclineLeavesDirectoryUntouched(testInstance *testing.T) {
	emptyDirectory := testInstance.TempDir()
	changeWorkingDirectory(testInstance, emptyDirectory)

	application := cli.NewApplication()
	rootCommand := application.RootCommand()

	var commandOutput bytes.Buffer
	rootCommand.SetIn(strings.NewReader("n\n"))
	rootCommand.SetOut(&commandOutput)
	rootCommand.SetErr(&commandOutput)
	rootCommand.SetArgs([]string{integrationInitCommandNameConstant})

	executionError := application.Execute()
	require.Error(testInstance, executionError)

	directoryEntries, readError := os.ReadDir(emptyDirectory)
	require.NoError(testInstance, readError)
	require.Empty(testInstance, directoryEntries)
}
