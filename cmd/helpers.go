package cmd

import "github.com/bloodmagesoftware/sectorcast/project"

// getProjectRoot returns the project root directory by looking for sectorcast.yaml.
func getProjectRoot() (string, error) {
	return project.FindProjectRoot()
}
