package fh5tuner

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/blevesearch/bleve"
	"github.com/pkg/errors"
)

// CarIndex is an in-memory full-text index over the car catalog, backing
// the CLI's car picker the way the web UI's search box does.
type CarIndex struct {
	index bleve.Index
	cars  Cars
	byID  map[string]*Car
}

type carDocument struct {
	Manufacturer string
	Model        string
	Year         int
}

func NewCarIndex(cars Cars) (*CarIndex, error) {
	index, err := bleve.NewMemOnly(bleve.NewIndexMapping())

	if err != nil {
		return nil, errors.Wrap(err, "couldn't create car search index")
	}

	ci := &CarIndex{
		index: index,
		cars:  cars,
		byID:  make(map[string]*Car),
	}

	for i, car := range cars {
		id := fmt.Sprintf("%d", i)
		ci.byID[id] = car

		err := index.Index(id, carDocument{
			Manufacturer: car.Manufacturer,
			Model:        car.Model,
			Year:         car.Year,
		})

		if err != nil {
			return nil, errors.Wrapf(err, "couldn't index car %s", car.DisplayName())
		}
	}

	return ci, nil
}

// Search returns up to limit cars matching the query, ranked by score. When
// the tokenized search finds nothing (e.g. "gtr" for "GT-R"), it falls back
// to a punctuation-insensitive substring scan.
func (ci *CarIndex) Search(query string, limit int) (Cars, error) {
	if limit <= 0 {
		limit = 10
	}

	request := bleve.NewSearchRequestOptions(bleve.NewQueryStringQuery(query), limit, 0, false)

	result, err := ci.index.Search(request)

	if err != nil {
		return nil, errors.Wrapf(err, "car search failed for %q", query)
	}

	var out Cars

	for _, hit := range result.Hits {
		if car, ok := ci.byID[hit.ID]; ok {
			out = append(out, car)
		}
	}

	if len(out) > 0 {
		return out, nil
	}

	collapsed := collapseName(query)

	if collapsed == "" {
		return nil, nil
	}

	for _, car := range ci.cars {
		if strings.Contains(collapseName(car.DisplayName()), collapsed) {
			out = append(out, car)

			if len(out) == limit {
				break
			}
		}
	}

	return out, nil
}

// collapseName lowercases and strips everything that isn't a letter or
// digit, so "GT-R (R35)" and "gtr r35" compare equal.
func collapseName(s string) string {
	var b strings.Builder

	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}
