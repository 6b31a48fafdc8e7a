package rooms

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"undercroft/pkg/engine/geometry"
)

// ErrNoTemplates is returned when a source yields nothing to place
var ErrNoTemplates = errors.New("no room templates available")

//go:embed catalog.yaml
var defaultCatalog []byte

// Source lists the room templates available to the generator
type Source interface {
	Templates() ([]*Template, error)
}

// StaticSource serves a fixed list of templates
type StaticSource []*Template

// Templates returns the list, validating every entry
func (s StaticSource) Templates() ([]*Template, error) {
	if len(s) == 0 {
		return nil, ErrNoTemplates
	}
	for _, t := range s {
		if err := t.Validate(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// CatalogFile reads templates from a YAML catalog on disk
type CatalogFile string

// Templates loads and parses the catalog
func (path CatalogFile) Templates() ([]*Template, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// DefaultCatalog returns the templates bundled with the module
func DefaultCatalog() Source {
	return embeddedCatalog{}
}

type embeddedCatalog struct{}

func (embeddedCatalog) Templates() ([]*Template, error) {
	return ParseCatalog(defaultCatalog)
}

type catalogDoc struct {
	Templates []catalogEntry `yaml:"templates"`
}

type catalogEntry struct {
	Name     string  `yaml:"name"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Entrance *marker `yaml:"entrance"`
	Exit     *marker `yaml:"exit"`
}

type marker struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// ParseCatalog decodes a YAML template catalog. Templates without entrance
// or exit markers get the west/east wall midpoints.
func ParseCatalog(data []byte) ([]*Template, error) {
	var doc catalogDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(doc.Templates) == 0 {
		return nil, ErrNoTemplates
	}

	templates := make([]*Template, 0, len(doc.Templates))
	for i, e := range doc.Templates {
		name := e.Name
		if name == "" {
			name = fmt.Sprintf("template-%d", i)
		}
		t := NewTemplate(name, e.Width, e.Height)
		if e.Entrance != nil {
			t.Entrance = geometry.Pt(e.Entrance.X, e.Entrance.Y)
		}
		if e.Exit != nil {
			t.Exit = geometry.Pt(e.Exit.X, e.Exit.Y)
		}
		if err := t.Validate(); err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, nil
}
