package scaffold

import "strings"

const (
	defaultTemplateSourceDirectoryConstant     = "../claude-project-docs/templates"
	templateSourceDirectoryConfigurationSuffix = ".template_source_directory"
	assumeYesConfigurationSuffix               = ".assume_yes"
)

// CommandConfiguration aggregates settings for the init command.
type CommandConfiguration struct {
	TemplateSourceDirectory string               `mapstructure:"template_source_directory"`
	AssumeYes               bool                 `mapstructure:"assume_yes"`
	Answers                 AnswersConfiguration `mapstructure:"answers"`
}

// AnswersConfiguration optionally presets the three operator answers. Prompts
// are skipped only when all three values are non-empty.
type AnswersConfiguration struct {
	ProjectType string `mapstructure:"project_type"`
	TechStack   string `mapstructure:"tech_stack"`
	Features    string `mapstructure:"features"`
}

// DefaultConfigurationValues supplies baseline values registered with the configuration loader.
func DefaultConfigurationValues(configurationKey string) map[string]any {
	return map[string]any{
		configurationKey + templateSourceDirectoryConfigurationSuffix: defaultTemplateSourceDirectoryConstant,
		configurationKey + assumeYesConfigurationSuffix:               false,
	}
}

// Sanitize trims configured values.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.TemplateSourceDirectory = strings.TrimSpace(configuration.TemplateSourceDirectory)
	sanitized.Answers.ProjectType = strings.TrimSpace(configuration.Answers.ProjectType)
	sanitized.Answers.TechStack = strings.TrimSpace(configuration.Answers.TechStack)
	sanitized.Answers.Features = strings.TrimSpace(configuration.Answers.Features)
	return sanitized
}

// PresetAnswers reports the configured operator input when every answer is preset.
func (configuration CommandConfiguration) PresetAnswers() (OperatorInput, bool) {
	sanitized := configuration.Sanitize()
	if len(sanitized.Answers.ProjectType) == 0 || len(sanitized.Answers.TechStack) == 0 || len(sanitized.Answers.Features) == 0 {
		return OperatorInput{}, false
	}

	presetInput := OperatorInput{
		ProjectType: sanitized.Answers.ProjectType,
		TechStack:   sanitized.Answers.TechStack,
		Features:    sanitized.Answers.Features,
	}
	return presetInput, true
}
