package stats

import (
	"github.com/aceteam-ai/bikeshare-cli/internal/dataset"
)

// Users holds rider statistics. Demographics is nil when the dataset does
// not carry Gender and Birth Year.
type Users struct {
	Types        []Count       `json:"user_types"`
	Demographics *Demographics `json:"demographics,omitempty"`
}

// Demographics covers the optional rider columns.
type Demographics struct {
	Genders    []Count     `json:"genders"`
	BirthYears *BirthYears `json:"birth_years"` // nil when no row reports a year
}

// BirthYears summarizes the reported birth years.
type BirthYears struct {
	Earliest   int          `json:"earliest"`
	MostRecent int          `json:"most_recent"`
	MostCommon Popular[int] `json:"most_common"`
}

// UserStats counts user types and, when v carries them, the demographic
// columns. Missing user types and genders are counted under "".
func UserStats(v dataset.View) Users {
	u := Users{
		Types: frequencies(v.Len(), func(i int) string { return v.Trip(i).UserType }),
	}
	if v.HasDemographics() {
		if d, err := Demographic(v); err == nil {
			u.Demographics = &d
		}
	}
	return u
}

// Demographic computes gender counts and birth-year range and mode. It
// returns dataset.ErrMissingOptionalField for datasets without them.
func Demographic(v dataset.View) (Demographics, error) {
	riders, err := v.Riders()
	if err != nil {
		return Demographics{}, err
	}

	d := Demographics{
		Genders: frequencies(len(riders), func(i int) string { return riders[i].Gender }),
	}

	common := mode(len(riders), func(i int) (int, bool) {
		return riders[i].BirthYear, riders[i].HasBirthYear
	})
	if !common.Found {
		return d, nil
	}

	years := &BirthYears{MostCommon: common}
	first := true
	for _, r := range riders {
		if !r.HasBirthYear {
			continue
		}
		if first || r.BirthYear < years.Earliest {
			years.Earliest = r.BirthYear
		}
		if first || r.BirthYear > years.MostRecent {
			years.MostRecent = r.BirthYear
		}
		first = false
	}
	d.BirthYears = years
	return d, nil
}
