// Package utils exposes reusable helpers consumed by the docscaffold commands.
//
// It houses the ConfigurationLoader and LoggerFactory abstractions that
// integrate Viper, environment variables, and zap logging for the CLI, plus
// small input/output helpers shared by the scaffolding workflow.
package utils
