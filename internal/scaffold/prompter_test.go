package scaffold_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/docscaffold/internal/scaffold"
)

const (
	prompterSubtestNameTemplateConstant = "%d_%s"
	testPromptTextConstant              = "Tech stack: "
	testCaseAffirmativeShortConstant    = "short affirmative accepted"
	testCaseAffirmativeLongConstant     = "long affirmative accepted"
	testCaseUppercaseConstant           = "uppercase affirmative accepted"
	testCaseNegativeConstant            = "negative declines"
	testCaseEmptyResponseConstant       = "empty response declines"
	testCaseEOFResponseConstant         = "eof declines"
)

func TestIOPrompterPromptStringTrimsResponse(testInstance *testing.T) {
	var promptOutput bytes.Buffer
	prompter := scaffold.NewIOPrompter(strings.NewReader("  Next.js, Tailwind  \n"), &promptOutput)

	response, promptError := prompter.PromptString(testPromptTextConstant)
	require.NoError(testInstance, promptError)
	require.Equal(testInstance, "Next.js, Tailwind", response)
	require.Equal(testInstance, testPromptTextConstant, promptOutput.String())
}

func TestIOPrompterConfirm(testInstance *testing.T) {
	testCases := []struct {
		name             string
		scriptedResponse string
		expectedOutcome  bool
	}{
		{name: testCaseAffirmativeShortConstant, scriptedResponse: "y\n", expectedOutcome: true},
		{name: testCaseAffirmativeLongConstant, scriptedResponse: "yes\n", expectedOutcome: true},
		{name: testCaseUppercaseConstant, scriptedResponse: "YES\n", expectedOutcome: true},
		{name: testCaseNegativeConstant, scriptedResponse: "n\n", expectedOutcome: false},
		{name: testCaseEmptyResponseConstant, scriptedResponse: "\n", expectedOutcome: false},
		{name: testCaseEOFResponseConstant, scriptedResponse: "", expectedOutcome: false},
	}

	for testCaseIndex, testCase := range testCases {
		subtestName := fmt.Sprintf(prompterSubtestNameTemplateConstant, testCaseIndex, testCase.name)
		testInstance.Run(subtestName, func(subtest *testing.T) {
			var promptOutput bytes.Buffer
			prompter := scaffold.NewIOPrompter(strings.NewReader(testCase.scriptedResponse), &promptOutput)

			confirmed, confirmError := prompter.Confirm(testPromptTextConstant)
			require.NoError(subtest, confirmError)
			require.Equal(subtest, testCase.expectedOutcome, confirmed)
		})
	}
}
