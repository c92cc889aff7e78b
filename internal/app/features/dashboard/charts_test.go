package dashboard_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xunman0/BarrierLog/internal/app/features/dashboard"
)

func TestLoadCharts_EmbeddedDefault(t *testing.T) {
	charts, err := dashboard.LoadCharts("")
	if err != nil {
		t.Fatalf("LoadCharts(\"\") failed: %v", err)
	}
	if len(charts) == 0 {
		t.Fatal("default chart set is empty")
	}

	names := make(map[string]bool)
	for _, c := range charts {
		if names[c.Name] {
			t.Errorf("duplicate chart name %q in default set", c.Name)
		}
		names[c.Name] = true
	}
	for _, want := range []string{"top_barriers", "ethnicity", "sex", "zipcodes", "monthly"} {
		if !names[want] {
			t.Errorf("default set is missing chart %q", want)
		}
	}
}

func TestLoadCharts_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "charts.yaml")
	yaml := `charts:
  - name: barriers
    title: Barriers
    kind: bar
    column: barrier_list
    limit: 5
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	charts, err := dashboard.LoadCharts(path)
	if err != nil {
		t.Fatalf("LoadCharts(%q) failed: %v", path, err)
	}
	if len(charts) != 1 || charts[0].Name != "barriers" || charts[0].Limit != 5 {
		t.Errorf("LoadCharts() = %+v, want the single configured chart", charts)
	}
}

func TestLoadCharts_MissingFile(t *testing.T) {
	if _, err := dashboard.LoadCharts(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadCharts() accepted a missing file")
	}
}

func TestLoadCharts_Validation(t *testing.T) {
	cases := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "no charts",
			yaml:    "charts: []\n",
			wantErr: "no charts",
		},
		{
			name: "missing name",
			yaml: `charts:
  - title: X
    kind: bar
    column: age
`,
			wantErr: "missing name",
		},
		{
			name: "duplicate name",
			yaml: `charts:
  - {name: a, kind: bar, column: age}
  - {name: a, kind: pie, column: sex}
`,
			wantErr: "duplicate name",
		},
		{
			name: "unknown kind",
			yaml: `charts:
  - {name: a, kind: scatter, column: age}
`,
			wantErr: "unknown kind",
		},
		{
			name: "missing column",
			yaml: `charts:
  - {name: a, kind: bar}
`,
			wantErr: "missing column",
		},
		{
			name: "stacked without by",
			yaml: `charts:
  - {name: a, kind: stacked, column: barrier_list}
`,
			wantErr: "require a 'by' column",
		},
		{
			name: "by on a bar chart",
			yaml: `charts:
  - {name: a, kind: bar, column: barrier_list, by: sex}
`,
			wantErr: "only valid for stacked",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "charts.yaml")
			if err := os.WriteFile(path, []byte(tc.yaml), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := dashboard.LoadCharts(path)
			if err == nil {
				t.Fatal("LoadCharts() accepted an invalid config")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not contain %q", err, tc.wantErr)
			}
		})
	}
}
