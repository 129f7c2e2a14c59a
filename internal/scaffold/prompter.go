package scaffold

import (
	"bufio"
	"io"
	"strings"
)

const (
	affirmativeShortResponseConstant = "y"
	affirmativeLongResponseConstant  = "yes"
)

// IOPrompter reads operator responses from an io.Reader, echoing prompts to an io.Writer.
type IOPrompter struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewIOPrompter constructs a prompter from the provided reader and writer.
func NewIOPrompter(input io.Reader, output io.Writer) *IOPrompter {
	return &IOPrompter{reader: bufio.NewReader(input), writer: output}
}

// PromptString writes the prompt and returns the next input line with
// surrounding whitespace trimmed. EOF yields whatever was read before it.
func (prompter *IOPrompter) PromptString(prompt string) (string, error) {
	if writeError := prompter.writePrompt(prompt); writeError != nil {
		return "", writeError
	}

	response, readError := prompter.reader.ReadString('\n')
	if readError != nil && readError != io.EOF {
		return "", readError
	}

	return strings.TrimSpace(response), nil
}

// Confirm writes the prompt and interprets affirmative responses (y/yes).
// Any other response, including EOF without input, declines.
func (prompter *IOPrompter) Confirm(prompt string) (bool, error) {
	response, promptError := prompter.PromptString(prompt)
	if promptError != nil {
		return false, promptError
	}

	switch strings.ToLower(response) {
	case affirmativeShortResponseConstant, affirmativeLongResponseConstant:
		return true, nil
	default:
		return false, nil
	}
}

func (prompter *IOPrompter) writePrompt(prompt string) error {
	if prompter.writer == nil {
		return nil
	}
	_, writeError := io.WriteString(prompter.writer, prompt)
	return writeError
}
