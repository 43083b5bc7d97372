package schema

import (
	"embed"
	"io/fs"

	"gopkg.in/yaml.v3"

	"serviceconfig/internal/unit"
)

//go:embed defaults.yaml
var embeddedFS embed.FS

type pair struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

type defaultsFile struct {
	Unit    []pair `yaml:"unit"`
	Service []pair `yaml:"service"`
	Install []pair `yaml:"install"`
}

// DefaultModel returns the canonical built-in template used by BuildDefault.
// The key/value pairs live in an embedded catalog so their order is explicit.
func DefaultModel() (*unit.Model, error) {
	b, err := fs.ReadFile(embeddedFS, "defaults.yaml")
	if err != nil {
		return nil, err
	}
	var d defaultsFile
	if err := yaml.Unmarshal(b, &d); err != nil {
		return nil, err
	}
	m := unit.NewModel()
	for _, p := range d.Unit {
		m.Unit.Set(p.Key, p.Value)
	}
	for _, p := range d.Service {
		m.Service.Set(p.Key, p.Value)
	}
	for _, p := range d.Install {
		m.Install.Set(p.Key, p.Value)
	}
	return m, nil
}
