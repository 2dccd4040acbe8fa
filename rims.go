package fh5tuner

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/pkg/errors"
)

// Rim is one wheel entry from the rim catalog. The selection UI cascades
// style => manufacturer => model => size.
type Rim struct {
	Style        string `json:"style"`
	Manufacturer string `json:"manufacturer"`
	Model        string `json:"model"`
	Sizes        []int  `json:"sizes"`
}

type RimCatalog []*Rim

func (rc RimCatalog) Styles() []string {
	return rc.collect(func(*Rim) bool { return true }, func(r *Rim) string { return r.Style })
}

func (rc RimCatalog) Manufacturers(style string) []string {
	return rc.collect(func(r *Rim) bool {
		return r.Style == style
	}, func(r *Rim) string { return r.Manufacturer })
}

func (rc RimCatalog) Models(style, manufacturer string) []string {
	return rc.collect(func(r *Rim) bool {
		return r.Style == style && r.Manufacturer == manufacturer
	}, func(r *Rim) string { return r.Model })
}

func (rc RimCatalog) Sizes(style, manufacturer, model string) []int {
	for _, rim := range rc {
		if rim.Style == style && rim.Manufacturer == manufacturer && rim.Model == model {
			return rim.Sizes
		}
	}

	return nil
}

func (rc RimCatalog) collect(match func(*Rim) bool, key func(*Rim) string) []string {
	seen := make(map[string]bool)

	var out []string

	for _, rim := range rc {
		if !match(rim) {
			continue
		}

		if k := key(rim); !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}

	sort.Strings(out)

	return out
}

// defaultRims is used if there is no rim catalog alongside the car catalog.
var defaultRims = RimCatalog{
	{Style: "Sport", Manufacturer: "Forza", Model: "Race Alloy", Sizes: []int{17, 18, 19, 20}},
	{Style: "Multi Piece", Manufacturer: "Forza", Model: "Split Six", Sizes: []int{18, 19, 20}},
}

func LoadRims(path string) (RimCatalog, error) {
	f, err := os.Open(path)

	if os.IsNotExist(err) {
		return defaultRims, nil
	} else if err != nil {
		return nil, errors.Wrapf(err, "couldn't open rim catalog %s", path)
	}

	defer f.Close()

	var rims RimCatalog

	if err := json.NewDecoder(f).Decode(&rims); err != nil {
		return nil, errors.Wrapf(err, "couldn't decode rim catalog %s", path)
	}

	if len(rims) == 0 {
		return defaultRims, nil
	}

	return rims, nil
}
