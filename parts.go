package fh5tuner

import (
	"encoding/json"
	"io"
	"os"
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// OptionStock is the selection meaning "leave the part alone". An absent
// part and an explicit Stock selection behave identically everywhere.
const OptionStock = "Stock"

// UpgradeSelection maps upgrade section => part => chosen option.
// It is sparse: any section or part may be missing.
type UpgradeSelection map[string]map[string]string

// Get returns the selected option for a part, or "" when the section or
// part is absent.
func (u UpgradeSelection) Get(section, part string) string {
	parts, ok := u[section]

	if !ok {
		return ""
	}

	return parts[part]
}

// Selected reports whether a part has a real, non-Stock selection.
func (u UpgradeSelection) Selected(section, part string) bool {
	option := u.Get(section, part)

	return option != "" && option != OptionStock
}

// Set is used by front ends building a selection incrementally.
func (u UpgradeSelection) Set(section, part, option string) {
	if u[section] == nil {
		u[section] = make(map[string]string)
	}

	u[section][part] = option
}

// Summary flattens the selection into "Section/Part: Option" strings in a
// stable order, for the tune sheet footer.
func (u UpgradeSelection) Summary() []string {
	var out []string

	for section, parts := range u {
		for part, option := range parts {
			if option == "" || option == OptionStock {
				continue
			}

			out = append(out, section+"/"+part+": "+option)
		}
	}

	sort.Strings(out)

	return out
}

// LoadUpgradeSelection reads a selection from a YAML file of the form
// section => part => option. A missing or empty file means the empty
// selection.
func LoadUpgradeSelection(path string) (UpgradeSelection, error) {
	f, err := os.Open(path)

	if os.IsNotExist(err) {
		logrus.Debugf("No upgrade selection at %s, assuming all stock", path)
		return make(UpgradeSelection), nil
	} else if err != nil {
		return nil, errors.Wrapf(err, "couldn't open upgrade selection %s", path)
	}

	defer f.Close()

	selection := make(UpgradeSelection)

	if err := yaml.NewDecoder(f).Decode(&selection); err == io.EOF {
		// a file with no documents in it is all stock
		return selection, nil
	} else if err != nil {
		return nil, errors.Wrapf(err, "couldn't decode upgrade selection %s", path)
	}

	return selection, nil
}

// PartsCatalog maps upgrade section => part => the options the UI offers
// for it.
type PartsCatalog map[string]map[string][]string

// Options returns the selectable options for a part with Stock guaranteed
// first, or nil if the catalog doesn't know the part.
func (p PartsCatalog) Options(section, part string) []string {
	parts, ok := p[section]

	if !ok {
		return nil
	}

	options, ok := parts[part]

	if !ok {
		return nil
	}

	out := []string{OptionStock}

	for _, option := range options {
		if option != OptionStock {
			out = append(out, option)
		}
	}

	return out
}

func (p PartsCatalog) Sections() []string {
	var out []string

	for section := range p {
		out = append(out, section)
	}

	sort.Strings(out)

	return out
}

func LoadParts(path string) (PartsCatalog, error) {
	f, err := os.Open(path)

	if err != nil {
		return nil, errors.Wrapf(err, "couldn't open parts catalog %s", path)
	}

	defer f.Close()

	catalog := make(PartsCatalog)

	if err := json.NewDecoder(f).Decode(&catalog); err != nil {
		return nil, errors.Wrapf(err, "couldn't decode parts catalog %s", path)
	}

	return catalog, nil
}
