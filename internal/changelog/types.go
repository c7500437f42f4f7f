package changelog

// Changelog is the root of a CHANGELOG.yaml document. Versions are ordered
// newest first.
type Changelog struct {
	Project  string    `yaml:"project"`
	Versions []Version `yaml:"versions"`
}

// Version is one release in a CHANGELOG.yaml. Version holds a bare semantic
// version ("0.9.1") or "unreleased". Date is YYYY-MM-DD and only required for
// released versions.
type Version struct {
	Version string  `yaml:"version"`
	Date    string  `yaml:"date,omitempty"`
	Changes Changes `yaml:"changes"`
}

// Changes groups entries by Keep a Changelog category.
type Changes struct {
	Added      []string `yaml:"added,omitempty"`
	Changed    []string `yaml:"changed,omitempty"`
	Deprecated []string `yaml:"deprecated,omitempty"`
	Removed    []string `yaml:"removed,omitempty"`
	Fixed      []string `yaml:"fixed,omitempty"`
	Security   []string `yaml:"security,omitempty"`
}

// Category is a named list of entries.
type Category struct {
	Name    string
	Entries []string
}

// Categories returns every category in rendering order, including empty ones.
func (c Changes) Categories() []Category {
	return []Category{
		{"Added", c.Added},
		{"Changed", c.Changed},
		{"Deprecated", c.Deprecated},
		{"Removed", c.Removed},
		{"Fixed", c.Fixed},
		{"Security", c.Security},
	}
}

// Count returns the number of entries across all categories.
func (c Changes) Count() int {
	n := 0
	for _, cat := range c.Categories() {
		n += len(cat.Entries)
	}
	return n
}

// IsEmpty reports whether no category has entries.
func (c Changes) IsEmpty() bool {
	return c.Count() == 0
}

// IsUnreleased reports whether v collects changes not yet released.
func (v Version) IsUnreleased() bool {
	return v.Version == "unreleased"
}
