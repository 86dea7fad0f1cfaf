package catalog

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/david/pathly/internal/models"
)

// Catalog is the fixed list of opportunities shown on the explore view.
type Catalog struct {
	records []models.Opportunity
}

// New copies records so later mutation of the input does not leak in.
func New(records []models.Opportunity) *Catalog {
	return &Catalog{records: append([]models.Opportunity(nil), records...)}
}

// All returns every record in catalog order.
func (c *Catalog) All() []models.Opportunity {
	return append([]models.Opportunity(nil), c.records...)
}

// Get looks up a record by ID.
func (c *Catalog) Get(id string) (models.Opportunity, bool) {
	for _, o := range c.records {
		if o.ID == id {
			return o, true
		}
	}
	return models.Opportunity{}, false
}

// Result is a filtered view plus its size.
type Result struct {
	Opportunities []models.Opportunity `json:"opportunities"`
	Total         int                  `json:"total"`
}

// Empty reports whether nothing matched.
func (r Result) Empty() bool {
	return r.Total == 0
}

// Search filters the catalog. See Filter.
func (c *Catalog) Search(query string, category models.Category) Result {
	matches := Filter(c.records, query, category)
	return Result{Opportunities: matches, Total: len(matches)}
}

// Filter returns the records whose title or provider contains query
// (case-insensitive) and whose category matches. CategoryAll and the empty
// category match every record, as does an empty query. Order is preserved.
func Filter(records []models.Opportunity, query string, category models.Category) []models.Opportunity {
	fold := cases.Fold()
	needle := fold.String(query)

	out := make([]models.Opportunity, 0, len(records))
	for _, o := range records {
		if category != "" && category != models.CategoryAll && o.Category != category {
			continue
		}
		if needle != "" &&
			!strings.Contains(fold.String(o.Title), needle) &&
			!strings.Contains(fold.String(o.Provider), needle) {
			continue
		}
		out = append(out, o)
	}
	return out
}
