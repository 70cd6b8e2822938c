// Package laws holds the catalog of UX laws and their quiz content.
package laws

import (
	"embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/uxlab/internal/quiz"
)

//go:embed content
var content embed.FS

// Law is one UX principle with its lesson text and quiz.
type Law struct {
	ID        string          `yaml:"id"`
	Name      string          `yaml:"name"`
	Tagline   string          `yaml:"tagline"`
	Summary   string          `yaml:"summary"`
	Takeaway  string          `yaml:"takeaway"`
	Questions []quiz.Question `yaml:"questions"`
}

// Catalog is an ordered, read-only set of laws.
type Catalog struct {
	laws  []Law
	index map[string]int
}

type catalogFile struct {
	Laws []Law `yaml:"laws"`
}

// ErrNotFound is returned by Get for an unknown law ID.
var ErrNotFound = errors.New("law not found")

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	data, err := content.ReadFile("content/laws.yaml")
	if err != nil {
		return nil, fmt.Errorf("read embedded catalog: %w", err)
	}
	return Parse(data)
}

// LoadFile reads a catalog from a YAML file on disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Load returns the catalog at path, or the embedded one when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// Parse decodes and validates a YAML catalog. Structure is checked against
// the catalog schema, then every question is checked for authoring defects
// and law IDs must be unique.
func Parse(data []byte) (*Catalog, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := validateStructure(doc); err != nil {
		return nil, err
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	c := &Catalog{
		laws:  f.Laws,
		index: make(map[string]int, len(f.Laws)),
	}
	for i, l := range f.Laws {
		if _, dup := c.index[l.ID]; dup {
			return nil, fmt.Errorf("duplicate law id %q", l.ID)
		}
		c.index[l.ID] = i
		for j, q := range l.Questions {
			if err := quiz.ValidateQuestion(q); err != nil {
				return nil, fmt.Errorf("law %q question %d: %w", l.ID, j+1, err)
			}
		}
	}
	return c, nil
}

// All returns the laws in catalog order.
func (c *Catalog) All() []Law {
	return append([]Law(nil), c.laws...)
}

// Len returns the number of laws.
func (c *Catalog) Len() int { return len(c.laws) }

// Get returns the law with the given ID.
func (c *Catalog) Get(id string) (Law, error) {
	i, ok := c.index[id]
	if !ok {
		return Law{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return c.laws[i], nil
}

// IDs returns every law ID in catalog order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.laws))
	for i, l := range c.laws {
		ids[i] = l.ID
	}
	return ids
}
