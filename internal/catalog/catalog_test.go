package catalog

import (
	"reflect"
	"strings"
	"testing"

	"github.com/david/pathly/internal/models"
	"github.com/david/pathly/internal/seed"
)

func loadCatalog(t *testing.T) *Catalog {
	t.Helper()
	ds, err := seed.Load()
	if err != nil {
		t.Fatalf("load seed: %v", err)
	}
	return New(ds.Catalog)
}

func titles(opps []models.Opportunity) []string {
	out := make([]string, 0, len(opps))
	for _, o := range opps {
		out = append(out, o.Title)
	}
	return out
}

func TestSearch(t *testing.T) {
	c := loadCatalog(t)

	tests := []struct {
		name     string
		query    string
		category models.Category
		want     []string
	}{
		{
			name:     "AWS across all categories",
			query:    "AWS",
			category: models.CategoryAll,
			want:     []string{"AWS Solutions Architect Certification"},
		},
		{
			name:     "Empty query scholarships only",
			query:    "",
			category: models.CategoryScholarship,
			want:     []string{"Google Developer Scholarship", "Gates Cambridge Scholarship"},
		},
		{
			name:     "Provider match is case-insensitive",
			query:    "amazon web",
			category: models.CategoryAll,
			want:     []string{"AWS Solutions Architect Certification"},
		},
		{
			name:     "Query and category combine",
			query:    "microsoft",
			category: models.CategoryScholarship,
			want:     []string{},
		},
		{
			name:     "Empty category behaves like all",
			query:    "gates",
			category: "",
			want:     []string{"Gates Cambridge Scholarship"},
		},
		{
			name:     "Empty query and all returns the catalog",
			query:    "",
			category: models.CategoryAll,
			want: []string{
				"Google Developer Scholarship",
				"AWS Solutions Architect Certification",
				"Microsoft Azure AI Certification",
				"Gates Cambridge Scholarship",
			},
		},
		{
			name:     "No matches",
			query:    "quantum",
			category: models.CategoryAll,
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := c.Search(tt.query, tt.category)
			got := titles(res.Opportunities)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			if res.Total != len(tt.want) {
				t.Fatalf("total %d, want %d", res.Total, len(tt.want))
			}
			if res.Empty() != (len(tt.want) == 0) {
				t.Fatalf("Empty() = %v for %d results", res.Empty(), res.Total)
			}
		})
	}
}

// Every result must be exactly the subsequence the predicate selects.
func TestFilter_MatchesPredicateForAllInputs(t *testing.T) {
	c := loadCatalog(t)
	all := c.All()

	queries := []string{"", "a", "AWS", "scholar", "GOOGLE", "trust", "cert", "zz", " "}
	categories := []models.Category{models.CategoryAll, models.CategoryScholarship, models.CategoryCertification}

	for _, q := range queries {
		for _, cat := range categories {
			var want []string
			for _, o := range all {
				text := strings.Contains(strings.ToLower(o.Title), strings.ToLower(q)) ||
					strings.Contains(strings.ToLower(o.Provider), strings.ToLower(q))
				if text && (cat == models.CategoryAll || o.Category == cat) {
					want = append(want, o.Title)
				}
			}
			got := titles(Filter(all, q, cat))
			if len(want) == 0 {
				want = []string{}
			}
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("q=%q cat=%s: got %v, want %v", q, cat, got, want)
			}

			again := titles(Filter(Filter(all, q, cat), q, cat))
			if !reflect.DeepEqual(again, got) {
				t.Fatalf("q=%q cat=%s: filtering twice changed result %v -> %v", q, cat, got, again)
			}
		}
	}
}

func TestNew_CopiesInput(t *testing.T) {
	records := []models.Opportunity{{ID: "1", Title: "One", Category: models.CategoryScholarship}}
	c := New(records)
	records[0].Title = "Changed"

	got, ok := c.Get("1")
	if !ok || got.Title != "One" {
		t.Fatalf("catalog shares backing array with caller: %+v", got)
	}
	if _, ok := c.Get("missing"); ok {
		t.Fatal("expected missing record lookup to fail")
	}
}

func TestParseCategory(t *testing.T) {
	for in, want := range map[string]models.Category{
		"":              models.CategoryAll,
		"all":           models.CategoryAll,
		"Scholarship":   models.CategoryScholarship,
		"certification": models.CategoryCertification,
	} {
		got, err := models.ParseCategory(in)
		if err != nil || got != want {
			t.Fatalf("ParseCategory(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := models.ParseCategory("grant"); err == nil {
		t.Fatal("expected error for unknown category")
	}
}
