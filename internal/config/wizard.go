package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// siteMarkers are files whose presence suggests a directory already holds a
// portfolio site.
var siteMarkers = []string{
	"data/projects.json",
	"index.html",
	"projects/project.html",
}

// detectSiteDir looks for an existing site in the working directory or a
// conventional subdirectory.
func detectSiteDir() string {
	for _, dir := range []string{".", "site", "web", "www"} {
		for _, marker := range siteMarkers {
			if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(marker))); err == nil {
				return dir
			}
		}
	}
	return "."
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to folio! Let's configure your portfolio.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Site title.
	titlePrompt := promptui.Prompt{
		Label:   "Site title",
		Default: cfg.SiteTitle,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site title: %w", err)
	}
	cfg.SiteTitle = strings.TrimSpace(title)

	// 2. Site directory.
	sitePrompt := promptui.Prompt{
		Label:   "Site directory (holds data/ and assets/)",
		Default: detectSiteDir(),
	}
	siteDir, err := sitePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site directory: %w", err)
	}
	cfg.SiteDir = siteDir

	// 3. Dataset source.
	sourcePrompt := promptui.Select{
		Label: "Where is the projects dataset?",
		Items: []string{
			"file: " + cfg.DatasetPath + " inside the site directory",
			"url:  fetched over HTTP on every page view",
		},
	}
	sourceIdx, _, err := sourcePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("dataset source: %w", err)
	}
	if sourceIdx == 1 {
		urlPrompt := promptui.Prompt{
			Label:    "Dataset URL",
			Validate: validateURL,
		}
		datasetURL, err := urlPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("dataset url: %w", err)
		}
		cfg.DatasetURL = strings.TrimSpace(datasetURL)
	}

	// 4. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for folio build",
		Default: cfg.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	cfg.OutputDir = outputDir

	// 5. Port.
	portPrompt := promptui.Prompt{
		Label:    "Port for folio serve",
		Default:  strconv.Itoa(cfg.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(strings.TrimSpace(portStr))

	// 6. Exclude patterns.
	excludePrompt := promptui.Prompt{
		Label:   "Exclude patterns for copied assets (comma-separated, blank for none)",
		Default: "",
	}
	excludeStr, err := excludePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}
	cfg.Exclude = splitAndTrim(excludeStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validateURL(s string) error {
	c := DefaultConfig()
	c.DatasetURL = strings.TrimSpace(s)
	if c.DatasetURL == "" {
		return fmt.Errorf("a URL is required")
	}
	return c.Validate()
}

func validatePort(s string) error {
	port, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("enter a port between 1 and 65535")
	}
	return nil
}

// splitAndTrim splits a comma-separated string and trims whitespace,
// dropping empty entries.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
