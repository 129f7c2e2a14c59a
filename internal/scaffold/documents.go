package scaffold

// Static document payloads emitted by the scaffolder. Interpolation is plain
// fmt substitution of operator input and the run date; the payloads are
// otherwise opaque markdown.

const claudeGuideTemplateConstant = `# CLAUDE.md

> Generated on %[1]s. Keep this file at the repository root and up to date.

## Project Overview

This is a %[2]s application for %[3]s.

Tech Stack: %[4]s

## Documentation Map

| Location | Purpose | Load policy |
|---|---|---|
| ` + "`CLAUDE.md`" + ` | orientation guide (this file) | always |
| ` + "`.claude/QUICK_START.md`" + ` | environment setup and common commands | on demand |
| ` + "`.claude/ARCHITECTURE_MAP.md`" + ` | module and data-flow overview | on demand |
| ` + "`.claude/COMMON_MISTAKES.md`" + ` | pitfalls recorded from past sessions | on demand |
| ` + "`.claude/LEARNINGS_INDEX.md`" + ` | index into docs/learnings | on demand |
| ` + "`docs/INDEX.md`" + ` | entry point into topic documentation | on demand |
| ` + "`.claude/completions/`" + ` | completed task records | never auto-load |
| ` + "`.claude/sessions/`" + ` | session notes, active and archived | never auto-load |
| ` + "`docs/archive/`" + ` | historical documents | never auto-load |

## Working Agreements

- Record every completed task in ` + "`.claude/completions/`" + ` using the completion template.
- Keep in-progress session notes in ` + "`.claude/sessions/active/`" + ` and move finished ones to ` + "`.claude/sessions/archive/`" + `.
- Promote durable insights into ` + "`docs/learnings/`" + ` and index them in ` + "`.claude/LEARNINGS_INDEX.md`" + `.
- Never load the paths listed in ` + "`.claudeignore`" + ` unless explicitly asked.
`

const claudeIgnoreContentConstant = `# Never auto-load
.claude/completions/**
.claude/sessions/**
docs/archive/**

# Dependencies
node_modules/
vendor/
.venv/
bower_components/

# Build output
dist/
build/
out/
target/
coverage/
*.o
*.pyc

# Version control
.git/
.hg/
.svn/

# Environment
.env
.env.*

# Logs
*.log
logs/

# IDE and OS noise
.idea/
.vscode/
.DS_Store
Thumbs.db
`

const commonMistakesTemplateConstant = `# Common Mistakes

Pitfalls observed while working on this project, one entry per mistake with the
fix that worked. Review this file before starting risky changes.

## Entries

- TODO: record the first mistake here.

---
Last updated: %s
`

const quickStartTemplateConstant = `# Quick Start

How to get this project running locally.

## Prerequisites

- TODO: list required tooling and versions.

## Setup

- TODO: document installation steps.

## Common Commands

- TODO: build, test, lint, and run commands.

---
Last updated: %s
`

const architectureMapTemplateConstant = `# Architecture Map

High-level map of the codebase: entry points, major modules, and how data flows
between them.

## Modules

- TODO: name each top-level module and its responsibility.

## Data Flow

- TODO: sketch the main request/data paths.

---
Last updated: %s
`

const learningsIndexTemplateConstant = `# Learnings Index

Index into docs/learnings. Add one line per learning with a path and a short hook.

## Learnings

- TODO: link the first learning here.

---
Last updated: %s
`

const completionsReadmeTemplateConstant = `# Completions

One file per completed task, created from .claude/templates/completion-template.md.
These records are never auto-loaded; consult them when revisiting old work.

---
Last updated: %s
`

const sessionsReadmeTemplateConstant = `# Sessions

Working notes for in-flight tasks.

- active/: notes for sessions currently underway.
- archive/: finished session notes kept for reference.

These records are never auto-loaded.

---
Last updated: %s
`

const docsIndexTemplateConstant = `# Documentation Index

Entry point into the docs/ tree.

## Topics

- TODO: list topic documents as they are written.

## Learnings

See docs/learnings/ and the index in .claude/LEARNINGS_INDEX.md.

---
Last updated: %s
`

const quickReferenceTemplateConstant = `# Quick Reference

Cheat sheet for day-to-day work: commands, conventions, and links worth keeping
one keystroke away.

- TODO: add the first entries.

---
Last updated: %s
`

const docsArchiveReadmeTemplateConstant = `# Archive

Historical documents preserved for reference. Content here is never auto-loaded;
move documents in rather than deleting them.

---
Last updated: %s
`
