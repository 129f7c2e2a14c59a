package utils

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	environmentKeyDotConstant                  = "."
	environmentKeyUnderscoreConstant           = "_"
	configurationReadErrorTemplateConstant     = "failed to read configuration: %w"
	configurationDecodeErrorTemplateConstant   = "failed to decode configuration: %w"
	embeddedDefaultsMergeErrorTemplateConstant = "failed to merge embedded defaults: %w"
)

// LoaderOptions describe where a ConfigurationLoader searches for configuration data.
type LoaderOptions struct {
	// ConfigurationName is the file base name searched for in SearchPaths (for example "config").
	ConfigurationName string
	// ConfigurationType identifies the expected file format (for example "yaml").
	ConfigurationType string
	// EnvironmentPrefix namespaces environment overrides (PREFIX_SECTION_KEY).
	EnvironmentPrefix string
	// SearchPaths lists directories probed for the configuration file, in order.
	SearchPaths []string
	// EmbeddedDefaults holds optional configuration data merged before any file or environment source.
	EmbeddedDefaults []byte
}

// ConfigurationLoader resolves layered configuration: embedded defaults, files, environment, explicit defaults.
type ConfigurationLoader struct {
	options LoaderOptions
}

// LoadedConfiguration reports metadata about the configuration sources that were applied.
type LoadedConfiguration struct {
	ConfigFileUsed string
}

// NewConfigurationLoader constructs a loader from the provided options, copying mutable slices.
func NewConfigurationLoader(options LoaderOptions) *ConfigurationLoader {
	duplicatedSearchPaths := make([]string, len(options.SearchPaths))
	copy(duplicatedSearchPaths, options.SearchPaths)
	options.SearchPaths = duplicatedSearchPaths

	if len(options.EmbeddedDefaults) > 0 {
		duplicatedDefaults := make([]byte, len(options.EmbeddedDefaults))
		copy(duplicatedDefaults, options.EmbeddedDefaults)
		options.EmbeddedDefaults = duplicatedDefaults
	}

	return &ConfigurationLoader{options: options}
}

// LoadConfiguration populates targetConfiguration from embedded defaults, an optional
// configuration file, environment overrides, and the supplied default values. An explicit
// configurationFilePath wins over the search paths; a missing configuration file is not an error.
func (loader *ConfigurationLoader) LoadConfiguration(configurationFilePath string, defaultValues map[string]any, targetConfiguration any) (LoadedConfiguration, error) {
	viperInstance := viper.New()
	viperInstance.SetConfigName(loader.options.ConfigurationName)
	viperInstance.SetConfigType(loader.options.ConfigurationType)

	if mergeError := loader.mergeEmbeddedDefaults(viperInstance); mergeError != nil {
		return LoadedConfiguration{}, mergeError
	}

	loader.bindEnvironment(viperInstance)

	for _, searchPath := range loader.options.SearchPaths {
		viperInstance.AddConfigPath(searchPath)
	}

	for defaultKey, defaultValue := range defaultValues {
		viperInstance.SetDefault(defaultKey, defaultValue)
	}

	if len(strings.TrimSpace(configurationFilePath)) > 0 {
		viperInstance.SetConfigFile(configurationFilePath)
	}

	if readError := viperInstance.MergeInConfig(); readError != nil {
		if _, configurationFileMissing := readError.(viper.ConfigFileNotFoundError); !configurationFileMissing {
			return LoadedConfiguration{}, fmt.Errorf(configurationReadErrorTemplateConstant, readError)
		}
	}

	if decodeError := viperInstance.Unmarshal(targetConfiguration); decodeError != nil {
		return LoadedConfiguration{}, fmt.Errorf(configurationDecodeErrorTemplateConstant, decodeError)
	}

	return LoadedConfiguration{ConfigFileUsed: viperInstance.ConfigFileUsed()}, nil
}

func (loader *ConfigurationLoader) mergeEmbeddedDefaults(viperInstance *viper.Viper) error {
	if len(loader.options.EmbeddedDefaults) == 0 {
		return nil
	}

	if mergeError := viperInstance.MergeConfig(bytes.NewReader(loader.options.EmbeddedDefaults)); mergeError != nil {
		return fmt.Errorf(embeddedDefaultsMergeErrorTemplateConstant, mergeError)
	}

	return nil
}

func (loader *ConfigurationLoader) bindEnvironment(viperInstance *viper.Viper) {
	viperInstance.SetEnvPrefix(loader.options.EnvironmentPrefix)
	viperInstance.SetEnvKeyReplacer(strings.NewReplacer(environmentKeyDotConstant, environmentKeyUnderscoreConstant))
	viperInstance.AutomaticEnv()
}
