package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// AllCategories is the selector value that disables category filtering.
const AllCategories = "All"

//go:embed weapons.yaml
var defaultCatalogYAML []byte

// Catalog is an ordered, read-only sequence of weapons.
type Catalog struct {
	weapons []Weapon
	byID    map[string]int
}

// catalogFile is the on-disk YAML layout.
type catalogFile struct {
	Weapons []Weapon `yaml:"weapons"`
}

// New wraps an already validated weapon list. The slice is copied so later
// changes by the caller do not leak into the catalog.
func New(weapons []Weapon) *Catalog {
	c := &Catalog{
		weapons: slices.Clone(weapons),
		byID:    make(map[string]int, len(weapons)),
	}
	for i, w := range c.weapons {
		if _, ok := c.byID[w.ID]; !ok {
			c.byID[w.ID] = i
		}
	}
	return c
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(f.Weapons))
	for _, w := range f.Weapons {
		if err := w.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[w.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, w.ID)
		}
		seen[w.ID] = struct{}{}
	}

	return New(f.Weapons), nil
}

// LoadFile reads a YAML catalog from disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Default returns the catalog embedded in the binary.
func Default() *Catalog {
	c, err := Parse(defaultCatalogYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return c
}

// Load returns the catalog at path, or the embedded one when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// Weapons returns the records in catalog order. The returned slice is a copy.
func (c *Catalog) Weapons() []Weapon {
	return slices.Clone(c.weapons)
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.weapons)
}

// Lookup finds a weapon by id.
func (c *Catalog) Lookup(id string) (Weapon, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Weapon{}, false
	}
	return c.weapons[i], true
}

// Categories returns the distinct categories present, in first-seen order.
func (c *Catalog) Categories() []Category {
	seen := make(map[Category]struct{})
	var out []Category
	for _, w := range c.weapons {
		if _, ok := seen[w.Category]; ok {
			continue
		}
		seen[w.Category] = struct{}{}
		out = append(out, w.Category)
	}
	return out
}

// SelectorOptions returns the category selector entries: "All" followed by
// Categories().
func (c *Catalog) SelectorOptions() []string {
	cats := c.Categories()
	out := make([]string, 0, len(cats)+1)
	out = append(out, AllCategories)
	for _, cat := range cats {
		out = append(out, string(cat))
	}
	return out
}
