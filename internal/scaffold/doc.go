// Package scaffold implements the documentation scaffolding workflow used by
// the docscaffold CLI.
//
// It exposes CommandBuilder for wiring the init Cobra command, Service for
// driving the workflow programmatically, and supporting abstractions for
// project detection, operator prompting, template copying, and summary
// reporting.
package scaffold
