package service

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/MKhiriev/go-library-keeper/models"
)

// LibraryView is a filtered projection of a [LibraryStore]. Rows are
// recomputed only when the store version or the filter changed since the
// last call.
type LibraryView struct {
	store LibraryStore

	mu    sync.Mutex
	query string
	regex bool

	valid        bool
	builtVersion uint64
	builtQuery   string
	builtRegex   bool
	rows         []models.Metadata
	err          error
}

func NewLibraryView(store LibraryStore) *LibraryView {
	return &LibraryView{store: store}
}

func (v *LibraryView) SetQuery(q string) {
	v.mu.Lock()
	v.query = q
	v.mu.Unlock()
}

func (v *LibraryView) SetRegex(enabled bool) {
	v.mu.Lock()
	v.regex = enabled
	v.mu.Unlock()
}

func (v *LibraryView) Query() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.query
}

func (v *LibraryView) Regex() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.regex
}

// Rows returns the items matching the current filter in store order. An
// invalid regular expression yields no rows and the compile error.
func (v *LibraryView) Rows() ([]models.Metadata, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	version := v.store.Version()
	if v.valid && version == v.builtVersion && v.query == v.builtQuery && v.regex == v.builtRegex {
		return v.rows, v.err
	}

	v.rows, v.err = FilterItems(v.store.Items(), v.query, v.regex)
	v.valid = true
	v.builtVersion = version
	v.builtQuery = v.query
	v.builtRegex = v.regex
	return v.rows, v.err
}

// FilterItems returns the items matching query in input order. Matching is
// case-sensitive over title, aliases, tags, developer, publisher and the
// platform id and name. An empty query matches everything.
func FilterItems(items []models.Metadata, query string, useRegex bool) ([]models.Metadata, error) {
	if query == "" {
		return items, nil
	}

	match := func(s string) bool { return strings.Contains(s, query) }
	if useRegex {
		re, err := regexp.Compile(query)
		if err != nil {
			return []models.Metadata{}, fmt.Errorf("invalid filter expression: %w", err)
		}
		match = re.MatchString
	}

	rows := make([]models.Metadata, 0, len(items))
	for _, item := range items {
		if matchItem(item, match) {
			rows = append(rows, item)
		}
	}
	return rows, nil
}

func matchItem(item models.Metadata, match func(string) bool) bool {
	if match(item.Title) {
		return true
	}
	for _, a := range item.Alias {
		if match(a) {
			return true
		}
	}
	for _, t := range item.Tags {
		if match(t) {
			return true
		}
	}
	if item.Developer != nil && match(*item.Developer) {
		return true
	}
	if item.Publisher != nil && match(*item.Publisher) {
		return true
	}
	if id := item.Platform.ID(); id != "" && match(id) {
		return true
	}
	if name := item.Platform.Name(); name != "" && match(name) {
		return true
	}
	return false
}
