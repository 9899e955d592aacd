package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Catalog is an immutable, versioned list of modules.
type Catalog struct {
	Version string   `json:"version"`
	Modules []Module `json:"modules"`
}

// Len returns the number of modules, zero for a nil catalog.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Modules)
}

// Parse decodes a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Load reads and decodes the catalog file at path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	return Parse(data)
}

func (c *Catalog) validate() error {
	var errs []error
	seen := make(map[string]struct{}, len(c.Modules))
	for i, m := range c.Modules {
		if m.ModuleID == "" {
			errs = append(errs, fmt.Errorf("modules[%d]: ModuleID is required", i))
			continue
		}
		if _, dup := seen[m.ModuleID]; dup {
			errs = append(errs, fmt.Errorf("modules[%d]: duplicate ModuleID '%s'", i, m.ModuleID))
		}
		seen[m.ModuleID] = struct{}{}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid catalog: %w", errors.Join(errs...))
	}
	return nil
}
