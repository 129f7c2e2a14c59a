// Package ui renders scaffold lifecycle events as human-readable log lines.
//
// ConsoleScaffoldEventLogger satisfies the scaffold package's EventObserver
// contract and is wired in when the CLI runs with console log formatting.
package ui
