package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to docshell! Let's configure your documentation site.")
	fmt.Println()

	defaults := DefaultConfig()

	// 1. Product name.
	productPrompt := promptui.Prompt{
		Label:   "Product name (used in page titles)",
		Default: defaults.Product,
	}
	product, err := productPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("product name: %w", err)
	}

	// 2. Versions.
	versionsPrompt := promptui.Prompt{
		Label:   "Documented versions (comma-separated)",
		Default: strings.Join(defaults.Versions, ","),
		Validate: func(s string) error {
			if len(splitAndTrim(s)) == 0 {
				return fmt.Errorf("at least one version is required")
			}
			return nil
		},
	}
	versionsStr, err := versionsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("versions: %w", err)
	}
	versions := splitAndTrim(versionsStr)

	// 3. Which version "latest" points at.
	latestPrompt := promptui.Select{
		Label: "Version served under /versions/latest",
		Items: versions,
	}
	_, latest, err := latestPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("latest version: %w", err)
	}

	// 4. Directories.
	dataPrompt := promptui.Prompt{
		Label:   "Navigation data directory",
		Default: defaults.DataDir,
	}
	dataDir, err := dataPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	contentPrompt := promptui.Prompt{
		Label:   "Markdown content directory",
		Default: defaults.ContentDir,
	}
	contentDir, err := contentPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content dir: %w", err)
	}

	cfg := defaults
	cfg.Product = product
	cfg.Versions = versions
	cfg.LatestVersion = latest
	cfg.DataDir = dataDir
	cfg.ContentDir = contentDir

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		fmt.Printf("\nNote: create one navigation file per version in %s (e.g. %s/v21.yaml).\n", dataDir, dataDir)
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
