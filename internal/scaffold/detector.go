package scaffold

import (
	"os"
	"path/filepath"
)

const gitMetadataDirectoryNameConstant = ".git"

var projectManifestFileNames = []string{
	"package.json",
	"go.mod",
	"Cargo.toml",
	"pyproject.toml",
	"requirements.txt",
	"Gemfile",
	"pom.xml",
	"build.gradle",
	"composer.json",
	"mix.exs",
}

// ProjectMarkerDetector inspects a directory for indicators that it is a project root.
type ProjectMarkerDetector struct{}

// NewProjectMarkerDetector constructs a detector backed by os.Stat probes.
func NewProjectMarkerDetector() *ProjectMarkerDetector {
	return &ProjectMarkerDetector{}
}

// DetectMarkers returns the names of recognized project markers present in the
// working directory: a .git metadata directory or any known ecosystem manifest.
// An empty result means the directory does not look like a project root.
func (detector *ProjectMarkerDetector) DetectMarkers(workingDirectory string) []string {
	var detectedMarkers []string

	gitMetadataPath := filepath.Join(workingDirectory, gitMetadataDirectoryNameConstant)
	if pathInfo, statError := os.Stat(gitMetadataPath); statError == nil && pathInfo.IsDir() {
		detectedMarkers = append(detectedMarkers, gitMetadataDirectoryNameConstant)
	}

	for _, manifestFileName := range projectManifestFileNames {
		manifestPath := filepath.Join(workingDirectory, manifestFileName)
		if pathInfo, statError := os.Stat(manifestPath); statError == nil && !pathInfo.IsDir() {
			detectedMarkers = append(detectedMarkers, manifestFileName)
		}
	}

	return detectedMarkers
}
