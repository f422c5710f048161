// Package catalog maps city names to their trip files and holds the month and
// day vocabularies offered to the user.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aceteam-ai/bikeshare-cli/internal/filter"
)

var (
	// ErrUnknownCity indicates the city is not in the catalog
	ErrUnknownCity = errors.New("unknown city")

	// ErrInvalidCatalog indicates the catalog file is inconsistent
	ErrInvalidCatalog = errors.New("invalid catalog")
)

// City is one dataset entry.
type City struct {
	Name         string `yaml:"name"`
	File         string `yaml:"file"`
	Demographics bool   `yaml:"demographics"` // file carries Gender and Birth Year
}

// Catalog defines the structure of the config.yaml file.
type Catalog struct {
	DataDir string   `yaml:"data_dir,omitempty"`
	Cities  []City   `yaml:"cities"`
	Months  []string `yaml:"months,omitempty"`
}

// DefaultMonths is the coverage of the bundled 2017 datasets.
var DefaultMonths = []string{"january", "february", "march", "april", "may", "june"}

// Default returns the catalog of the three bundled cities.
func Default() *Catalog {
	return &Catalog{
		DataDir: ".",
		Cities: []City{
			{Name: "chicago", File: "chicago.csv", Demographics: true},
			{Name: "new york city", File: "new_york_city.csv", Demographics: true},
			{Name: "washington", File: "washington.csv"},
		},
		Months: append([]string(nil), DefaultMonths...),
	}
}

// Load parses a catalog file. Fields left out of the file keep their
// default values.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read catalog %s: %w", path, err)
	}

	var file Catalog
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("could not parse catalog %s: %w", path, err)
	}

	c := Default()
	if file.DataDir != "" {
		c.DataDir = file.DataDir
		if !filepath.IsAbs(c.DataDir) {
			c.DataDir = filepath.Join(filepath.Dir(path), c.DataDir)
		}
	}
	if len(file.Cities) > 0 {
		c.Cities = file.Cities
	}
	if len(file.Months) > 0 {
		c.Months = file.Months
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Validate checks city names are unique and months are real month names.
func (c *Catalog) Validate() error {
	if len(c.Cities) == 0 {
		return fmt.Errorf("%w: no cities", ErrInvalidCatalog)
	}
	seen := make(map[string]bool, len(c.Cities))
	for i, city := range c.Cities {
		name := normalize(city.Name)
		if name == "" {
			return fmt.Errorf("%w: city %d has no name", ErrInvalidCatalog, i+1)
		}
		if seen[name] {
			return fmt.Errorf("%w: duplicate city %q", ErrInvalidCatalog, city.Name)
		}
		seen[name] = true
		if strings.TrimSpace(city.File) == "" {
			return fmt.Errorf("%w: city %q has no file", ErrInvalidCatalog, city.Name)
		}
	}
	for _, m := range c.Months {
		sel, err := filter.ParseMonth(m)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
		}
		if sel.IsAll() {
			return fmt.Errorf("%w: %q is not a month", ErrInvalidCatalog, m)
		}
	}
	return nil
}

// Lookup finds a city by name, ignoring case and surrounding space.
func (c *Catalog) Lookup(name string) (City, error) {
	want := normalize(name)
	for _, city := range c.Cities {
		if normalize(city.Name) == want {
			return city, nil
		}
	}
	return City{}, fmt.Errorf("%w: %q", ErrUnknownCity, name)
}

// Path resolves the city's file against the data directory.
func (c *Catalog) Path(city City) string {
	if filepath.IsAbs(city.File) {
		return city.File
	}
	return filepath.Join(c.DataDir, city.File)
}

// CityNames lists the cities in catalog order.
func (c *Catalog) CityNames() []string {
	names := make([]string, len(c.Cities))
	for i, city := range c.Cities {
		names[i] = city.Name
	}
	return names
}

// MonthChoices is "all" followed by the covered months.
func (c *Catalog) MonthChoices() []string {
	choices := []string{filter.All}
	for _, m := range c.Months {
		choices = append(choices, normalize(m))
	}
	return choices
}

// DayChoices is "all" followed by the weekdays from Monday.
func DayChoices() []string {
	return append([]string{filter.All}, filter.DayNames()...)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
