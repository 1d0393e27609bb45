package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoLanguages is returned when a catalog would have no output language.
var ErrNoLanguages = errors.New("catalog has no languages")

// Subject pairs a subject label with its prompt template.
type Subject struct {
	Name   string `yaml:"name"`
	Prompt string `yaml:"prompt"`
}

// Catalog is an immutable set of subject templates and output languages.
type Catalog struct {
	subjects  []Subject
	templates map[string]string
	languages []string
}

// fileFormat is the YAML layout accepted by LoadFile.
type fileFormat struct {
	Subjects  []Subject `yaml:"subjects"`
	Languages []string  `yaml:"languages"`
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(builtinSubjects, builtinLanguages)
	if err != nil {
		panic(fmt.Sprintf("catalog: builtin data invalid: %v", err))
	}
	return c
}

// New builds a Catalog. The empty subject is always present and listed first.
// Duplicate languages are dropped keeping the first occurrence; duplicate
// subject names are an error.
func New(subjects []Subject, languages []string) (*Catalog, error) {
	c := &Catalog{
		subjects:  []Subject{{}},
		templates: map[string]string{"": ""},
	}

	for _, s := range subjects {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			continue
		}
		if _, dup := c.templates[name]; dup {
			return nil, fmt.Errorf("duplicate subject %q", name)
		}
		c.templates[name] = s.Prompt
		c.subjects = append(c.subjects, Subject{Name: name, Prompt: s.Prompt})
	}

	seen := make(map[string]bool, len(languages))
	for _, l := range languages {
		l = strings.TrimSpace(l)
		if l == "" || seen[l] {
			continue
		}
		seen[l] = true
		c.languages = append(c.languages, l)
	}
	if len(c.languages) == 0 {
		return nil, ErrNoLanguages
	}

	return c, nil
}

// LoadFile reads a YAML catalog. A file without a languages list keeps the
// built-in languages.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if len(f.Languages) == 0 {
		f.Languages = builtinLanguages
	}

	c, err := New(f.Subjects, f.Languages)
	if err != nil {
		return nil, fmt.Errorf("build catalog %s: %w", path, err)
	}
	return c, nil
}

// Subjects returns subject labels in display order, starting with "".
func (c *Catalog) Subjects() []string {
	names := make([]string, len(c.subjects))
	for i, s := range c.subjects {
		names[i] = s.Name
	}
	return names
}

// Template returns the prompt template for subject.
func (c *Catalog) Template(subject string) (string, bool) {
	t, ok := c.templates[subject]
	return t, ok
}

// Languages returns the output languages in display order.
func (c *Catalog) Languages() []string {
	return append([]string(nil), c.languages...)
}

// DefaultLanguage is the first language in the list.
func (c *Catalog) DefaultLanguage() string {
	return c.languages[0]
}

func (c *Catalog) HasLanguage(l string) bool {
	for _, x := range c.languages {
		if x == l {
			return true
		}
	}
	return false
}
