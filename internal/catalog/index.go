package catalog

import (
	"strings"

	"github.com/sucan/ordertrack/internal/domain/model"
)

// Match is a catalog record augmented with its computed arrival channel.
type Match struct {
	model.ProductRecord
	ArrivalChannel string `json:"arrivalChannel"`
}

type indexEntry struct {
	record   model.ProductRecord
	haystack string
}

// Index is an in-memory product catalog. It is built once at startup and is
// safe for concurrent readers without locking.
type Index struct {
	entries []indexEntry
}

// NewIndex builds the search index over the given records, preserving
// catalog iteration order.
func NewIndex(records []model.ProductRecord) *Index {
	entries := make([]indexEntry, 0, len(records))
	for _, r := range records {
		haystack := strings.ToUpper(strings.Join([]string{r.Code, r.Barcode, r.Name, r.Brand}, " "))
		entries = append(entries, indexEntry{record: r, haystack: haystack})
	}
	return &Index{entries: entries}
}

// Len reports the number of indexed records.
func (i *Index) Len() int {
	return len(i.entries)
}

// Search returns at most limit records whose code, barcode, name or brand
// contains the query, case-insensitively, in catalog order. An empty or
// whitespace-only query returns no results rather than the whole catalog.
func (i *Index) Search(query string, limit int) []Match {
	q := strings.ToUpper(strings.TrimSpace(query))
	if q == "" || limit <= 0 {
		return nil
	}

	var results []Match
	for _, e := range i.entries {
		if !strings.Contains(e.haystack, q) {
			continue
		}
		results = append(results, Match{
			ProductRecord:  e.record,
			ArrivalChannel: ArrivalChannel(e.record.Brand),
		})
		if len(results) >= limit {
			break
		}
	}
	return results
}

// LookupByCode returns the first record with exactly the given code.
func (i *Index) LookupByCode(code string) (model.ProductRecord, bool) {
	for _, e := range i.entries {
		if e.record.Code == code {
			return e.record, true
		}
	}
	return model.ProductRecord{}, false
}
