package config

import (
	"fmt"
	"os"

	"github.com/hay-kot/criterio"

	"github.com/hay-kot/pitch/internal/core/content"
)

// ValidateDeep performs comprehensive validation of the configuration including
// file accessibility. The configPath argument specifies the config file location
// to validate (empty string skips the config file check).
// This calls Validate() first for basic structural validation, then adds I/O checks.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("notes", c.Notes, notesResolvable),
		c.validateNotesFiles(),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// notesResolvable validates that the notes pattern matches at least one file.
func notesResolvable(pattern string) error {
	_, err := content.ResolveNotes(pattern)
	return err
}

// validateNotesFiles reports every matched notes file that cannot be read.
func (c *Config) validateNotesFiles() error {
	files, err := content.ResolveNotes(c.Notes)
	if err != nil {
		return nil // reported by notesResolvable
	}

	var errs criterio.FieldErrorsBuilder
	for _, file := range files {
		info, err := os.Stat(file)
		if err != nil {
			errs = errs.Append("notes", fmt.Errorf("cannot access %s: %w", file, err))
			continue
		}
		if info.IsDir() {
			errs = errs.Append("notes", fmt.Errorf("%s is a directory, not a file", file))
			continue
		}
		f, err := os.Open(file)
		if err != nil {
			errs = errs.Append("notes", fmt.Errorf("cannot read %s: %w", file, err))
			continue
		}
		_ = f.Close()
	}
	return errs.ToError()
}
