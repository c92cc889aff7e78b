package dashboard

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ChartSpec configures one dashboard panel. The panel set is static
// configuration, not user-programmable: it is loaded once at startup
// from the embedded default or an operator-supplied YAML file.
type ChartSpec struct {
	Name   string `yaml:"name"`
	Title  string `yaml:"title"`
	Kind   string `yaml:"kind"`            // bar | pie | line | stacked
	Column string `yaml:"column"`          // source column
	By     string `yaml:"by,omitempty"`    // second column, stacked cross-tabs only
	Limit  int    `yaml:"limit,omitempty"` // top-N cutoff, 0 means all
	Sort   string `yaml:"sort,omitempty"`  // count (default) | label
}

type chartConfig struct {
	Charts []ChartSpec `yaml:"charts"`
}

// defaultCharts mirrors the panel set of the original barrier-log
// dashboard.
//
//go:embed charts.yaml
var defaultCharts []byte

var chartKinds = map[string]bool{
	"bar":     true,
	"pie":     true,
	"line":    true,
	"stacked": true,
}

// LoadCharts parses the chart configuration. An empty path selects the
// embedded default set.
func LoadCharts(path string) ([]ChartSpec, error) {
	raw := defaultCharts
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading chart config %s: %w", path, err)
		}
		raw = b
	}

	var cfg chartConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parsing chart config: %w", err)
	}
	if len(cfg.Charts) == 0 {
		return nil, fmt.Errorf("chart config defines no charts")
	}

	seen := make(map[string]bool)
	for i, c := range cfg.Charts {
		switch {
		case c.Name == "":
			return nil, fmt.Errorf("chart %d: missing name", i)
		case seen[c.Name]:
			return nil, fmt.Errorf("chart %q: duplicate name", c.Name)
		case !chartKinds[c.Kind]:
			return nil, fmt.Errorf("chart %q: unknown kind %q", c.Name, c.Kind)
		case c.Column == "":
			return nil, fmt.Errorf("chart %q: missing column", c.Name)
		case c.Kind == "stacked" && c.By == "":
			return nil, fmt.Errorf("chart %q: stacked charts require a 'by' column", c.Name)
		case c.Kind != "stacked" && c.By != "":
			return nil, fmt.Errorf("chart %q: 'by' is only valid for stacked charts", c.Name)
		}
		seen[c.Name] = true
	}
	return cfg.Charts, nil
}
