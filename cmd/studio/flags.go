package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/alexisbeaulieu97/studio/internal/config"
	"github.com/alexisbeaulieu97/studio/internal/ui/sections"
)

// expandPath resolves a leading ~ to the user's home directory.
func expandPath(path string) string {
	expanded, err := homedir.Expand(strings.TrimSpace(path))
	if err != nil {
		return path
	}
	return expanded
}

func validatePagePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("page file is required")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve page path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("page file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("page path %s is a directory", abs)
	}

	return nil
}

// loadPage validates, parses and builds the page at path.
func loadPage(operation, path string) (*config.Page, []sections.Section, error) {
	path = expandPath(path)
	if err := validatePagePath(path); err != nil {
		return nil, nil, newCommandError(operation, "locating page", err, "Pass the page document with --config.")
	}

	page, err := config.ParsePage(path)
	if err != nil {
		return nil, nil, newCommandError(operation, "parsing page", err, "Fix the reported field and try again.")
	}

	built, err := page.Build(sections.Default())
	if err != nil {
		return nil, nil, newCommandError(operation, "building sections", err, "Check the section props; style literals must be 'property: value' pairs.")
	}

	return page, built, nil
}
