// Package catalog holds the option lists the report forms offer: selectable
// years and months with their display names, and known products.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"go-apre/internal/config"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Option is a selectable integer dimension with its display name.
type Option struct {
	Value int    `yaml:"value" json:"value"`
	Name  string `yaml:"name" json:"name"`
}

// Catalog lists the options for every report form.
type Catalog struct {
	Years    []Option `yaml:"years" json:"years"`
	Months   []Option `yaml:"months" json:"months"`
	Products []string `yaml:"products" json:"products"`
}

// NewCatalog loads the catalog named by CATALOG_PATH, or the embedded default.
func NewCatalog(cfg *config.Config) (*Catalog, error) {
	if cfg.CatalogPath == "" {
		return Parse(defaultCatalog)
	}
	return Load(cfg.CatalogPath)
}

// Load reads a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates catalog YAML.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	for _, m := range c.Months {
		if m.Value < 1 || m.Value > 12 {
			return nil, fmt.Errorf("parse catalog: month %d out of range", m.Value)
		}
	}
	return &c, nil
}

// Default returns the embedded catalog.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(err)
	}
	return c
}

// YearName returns the display name for year, falling back to the number.
func (c *Catalog) YearName(year int) string {
	return nameOf(c.Years, year)
}

func nameOf(options []Option, value int) string {
	for _, o := range options {
		if o.Value == value && o.Name != "" {
			return o.Name
		}
	}
	return fmt.Sprint(value)
}
