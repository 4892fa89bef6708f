package track

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog bundles the full dimensional configuration: the manifold-safety
// constants plus the per-standard parameter records.
type Catalog struct {
	Manifold    ManifoldConfig `yaml:"manifold"`
	Wood        StandardParams `yaml:"wood"`
	Trackmaster StandardParams `yaml:"trackmaster"`
}

// DefaultCatalog returns the stock catalog.
func DefaultCatalog() Catalog {
	return Catalog{
		Manifold:    DefaultManifold(),
		Wood:        WoodParams(),
		Trackmaster: TrackmasterParams(),
	}
}

// Params returns the parameter record for the given standard.
func (c Catalog) Params(s Standard) StandardParams {
	if s == Trackmaster {
		return c.Trackmaster
	}
	return c.Wood
}

// LoadCatalog reads a YAML override file on top of the default catalog.
// Fields absent from the file keep their stock values.
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("reading catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog unmarshals YAML catalog overrides on top of the defaults.
func ParseCatalog(data []byte) (Catalog, error) {
	c := DefaultCatalog()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("parsing catalog: %w", err)
	}
	if c.Manifold.Overlap <= 0 || c.Manifold.BevelWidth < 0 {
		return Catalog{}, fmt.Errorf("catalog: invalid manifold config %+v", c.Manifold)
	}
	return c, nil
}
