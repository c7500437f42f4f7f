package changelog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	semverPattern = regexp.MustCompile(`^\d+\.\d+\.\d+(-[0-9A-Za-z.-]+)?(\+[0-9A-Za-z.-]+)?$`)
	datePattern   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ValidationError describes a CHANGELOG.yaml schema violation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// IsValidationError reports whether err is or wraps a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Load reads and validates the CHANGELOG.yaml at path.
func Load(path string) (*Changelog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening changelog file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes and validates a CHANGELOG.yaml document.
func Parse(r io.Reader) (*Changelog, error) {
	var log Changelog
	if err := yaml.NewDecoder(r).Decode(&log); err != nil {
		return nil, fmt.Errorf("parsing changelog YAML: %w", err)
	}
	if err := Validate(&log); err != nil {
		return nil, err
	}
	return &log, nil
}

// Validate checks the schema constraints of a parsed changelog.
func Validate(c *Changelog) error {
	if c.Project == "" {
		return &ValidationError{Field: "project", Message: "required field is empty"}
	}

	seen := make(map[string]bool, len(c.Versions))
	unreleased := 0
	for i := range c.Versions {
		v := &c.Versions[i]
		if err := validateVersion(v, i); err != nil {
			return err
		}

		key := NormalizeVersion(v.Version)
		if seen[key] {
			return &ValidationError{
				Field:   fmt.Sprintf("versions[%d].version", i),
				Message: fmt.Sprintf("duplicate version %q", v.Version),
			}
		}
		seen[key] = true

		if v.IsUnreleased() {
			unreleased++
		}
	}

	if unreleased > 1 {
		return &ValidationError{Field: "versions", Message: "only one 'unreleased' version is allowed"}
	}
	return nil
}

func validateVersion(v *Version, i int) error {
	field := func(name string) string { return fmt.Sprintf("versions[%d].%s", i, name) }

	switch {
	case v.Version == "":
		return &ValidationError{Field: field("version"), Message: "required field is empty"}
	case !v.IsUnreleased() && !semverPattern.MatchString(v.Version):
		return &ValidationError{
			Field:   field("version"),
			Message: fmt.Sprintf("invalid semver format %q (expected: X.Y.Z)", v.Version),
		}
	case !v.IsUnreleased() && v.Date == "":
		return &ValidationError{Field: field("date"), Message: "date is required for released versions"}
	case v.Date != "" && !datePattern.MatchString(v.Date):
		return &ValidationError{
			Field:   field("date"),
			Message: fmt.Sprintf("invalid date format %q (expected: YYYY-MM-DD)", v.Date),
		}
	case v.Changes.IsEmpty():
		return &ValidationError{Field: field("changes"), Message: "at least one change entry is required"}
	}

	for _, cat := range v.Changes.Categories() {
		for j, entry := range cat.Entries {
			if strings.TrimSpace(entry) == "" {
				return &ValidationError{
					Field:   field(fmt.Sprintf("changes.%s[%d]", strings.ToLower(cat.Name), j)),
					Message: "change entry cannot be empty",
				}
			}
		}
	}
	return nil
}

// NormalizeVersion lowercases a version and strips a leading "v", so "v0.9.1"
// and "0.9.1" compare equal.
func NormalizeVersion(version string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(version)), "v")
}
