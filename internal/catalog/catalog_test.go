package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	tests := []struct {
		name         string
		file         string
		demographics bool
	}{
		{"chicago", "chicago.csv", true},
		{"new york city", "new_york_city.csv", true},
		{"washington", "washington.csv", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			city, err := c.Lookup(tt.name)
			if err != nil {
				t.Fatalf("Lookup: %v", err)
			}
			if city.File != tt.file {
				t.Errorf("File = %q, want %q", city.File, tt.file)
			}
			if city.Demographics != tt.demographics {
				t.Errorf("Demographics = %v, want %v", city.Demographics, tt.demographics)
			}
		})
	}
}

func TestLookupIgnoresCase(t *testing.T) {
	city, err := Default().Lookup("  New York City ")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if city.Name != "new york city" {
		t.Errorf("Name = %q", city.Name)
	}

	if _, err := Default().Lookup("boston"); !errors.Is(err, ErrUnknownCity) {
		t.Errorf("err = %v, want ErrUnknownCity", err)
	}
}

func TestPath(t *testing.T) {
	c := &Catalog{DataDir: "/data"}
	if got := c.Path(City{File: "chicago.csv"}); got != filepath.Join("/data", "chicago.csv") {
		t.Errorf("Path = %q", got)
	}
	if got := c.Path(City{File: "/other/dc.csv"}); got != "/other/dc.csv" {
		t.Errorf("Path = %q, want absolute file kept", got)
	}
}

func TestChoices(t *testing.T) {
	months := Default().MonthChoices()
	want := []string{"all", "january", "february", "march", "april", "may", "june"}
	if !slices.Equal(months, want) {
		t.Errorf("MonthChoices = %v, want %v", months, want)
	}

	days := DayChoices()
	if len(days) != 8 || days[0] != "all" || days[1] != "monday" || days[7] != "sunday" {
		t.Errorf("DayChoices = %v", days)
	}
}

func TestLoadOverridesCities(t *testing.T) {
	path := writeCatalog(t, `
data_dir: trips
cities:
  - name: Boston
    file: boston.xlsx
    demographics: true
months: [July, august]
`)
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if want := filepath.Join(filepath.Dir(path), "trips"); c.DataDir != want {
		t.Errorf("DataDir = %q, want %q", c.DataDir, want)
	}
	if !slices.Equal(c.CityNames(), []string{"Boston"}) {
		t.Errorf("CityNames = %v", c.CityNames())
	}
	if !slices.Equal(c.MonthChoices(), []string{"all", "july", "august"}) {
		t.Errorf("MonthChoices = %v", c.MonthChoices())
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	c, err := Load(writeCatalog(t, "data_dir: /srv/bikeshare\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(c.Cities) != 3 {
		t.Errorf("Cities = %d, want 3", len(c.Cities))
	}
	if c.DataDir != "/srv/bikeshare" {
		t.Errorf("DataDir = %q", c.DataDir)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"duplicate city", "cities:\n  - {name: a, file: a.csv}\n  - {name: A, file: b.csv}\n"},
		{"missing file", "cities:\n  - {name: a}\n"},
		{"bad month", "months: [smarch]\n"},
		{"all as month", "months: [all]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeCatalog(t, tt.content))
			if !errors.Is(err, ErrInvalidCatalog) {
				t.Errorf("err = %v, want ErrInvalidCatalog", err)
			}
		})
	}
}

func TestLoadMalformed(t *testing.T) {
	if _, err := Load(writeCatalog(t, "cities: [::")); err == nil {
		t.Error("expected parse error")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected read error")
	}
}
