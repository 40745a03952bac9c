/*
Package ratecard resolves award classifications to base hourly rates.

PURPOSE:
  The award pay guide is extracted (out of band) into a structured
  JSON file of sections and classifications. This package loads that
  file and answers two questions for the cost engine:
    - Resolve: classification name -> PayProfile (base rate, Artist vs
      Crew from the section name, casual from the classification name)
    - Search: substring query -> candidate classifications for pickers

DEGRADATION CONTRACT:
  A missing or unreadable rates file, or an unknown classification,
  never fails a calculation. Resolve falls back to a fixed default
  rate and marks the profile Found=false so callers can surface the
  degraded confidence. The override path (caller-supplied rate and
  category) bypasses this package entirely and must be fully
  equivalent once a PayProfile exists.
*/
package ratecard

import (
	"log"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/callsheet/budget-engine/award"
)

// FallbackHourlyRate is the base rate used when a classification
// cannot be resolved.
const FallbackHourlyRate = "50.0"

// =============================================================================
// DOCUMENT SHAPE - the extracted pay guide
// =============================================================================

// Classification is one pay-guide row.
type Classification struct {
	Classification string  `json:"classification"`
	HourlyRate     float64 `json:"hourly_rate"`
	MetaSource     string  `json:"_meta_source,omitempty"`
}

// Section groups classifications under a pay-guide heading
// (e.g. "Category E - Artists").
type Section struct {
	Name            string           `json:"name"`
	Classifications []Classification `json:"classifications"`
}

// Document is the full extracted rates file.
type Document struct {
	Sections []Section `json:"sections"`
}

// =============================================================================
// SERVICE
// =============================================================================

// Service answers classification lookups against a loaded document.
// Read-only after construction; safe for concurrent use.
type Service struct {
	doc Document
}

// New creates a service over an in-memory document.
func New(doc Document) *Service {
	return &Service{doc: doc}
}

// Load reads the rates file from disk. A missing or malformed file
// logs a warning and yields an empty service: every lookup then
// degrades to the fallback rate rather than failing.
func Load(path string) *Service {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Printf("ratecard: cannot read %s, lookups will use the fallback rate: %v", path, err)
		return New(Document{})
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		log.Printf("ratecard: cannot parse %s, lookups will use the fallback rate: %v", path, err)
		return New(Document{})
	}
	return New(doc)
}

// Resolve maps a classification name to a PayProfile. Exact
// (case-insensitive) name match; rows with non-positive rates are
// ignored as extraction noise. Unknown classifications fall back to
// the default rate with Found=false - never an error.
func (s *Service) Resolve(classification string) award.PayProfile {
	profile := award.PayProfile{
		BaseHourlyRate: decimal.RequireFromString(FallbackHourlyRate),
		Category:       award.CategoryCrew,
		Employment:     employmentFor(classification),
		Classification: classification,
	}

	want := strings.ToLower(classification)
	for _, section := range s.doc.Sections {
		for _, cls := range section.Classifications {
			if cls.HourlyRate <= 0 {
				continue
			}
			if strings.ToLower(cls.Classification) != want {
				continue
			}
			profile.BaseHourlyRate = decimal.NewFromFloat(cls.HourlyRate)
			profile.Category = categoryFor(section.Name)
			profile.Found = true
			return profile
		}
	}
	return profile
}

// Match is one search hit.
type Match struct {
	Classification string  `json:"classification"`
	HourlyRate     float64 `json:"hourly_rate"`
	Section        string  `json:"section"`
	Source         string  `json:"source,omitempty"`
}

// Search returns up to limit classifications whose name contains the
// query (case-insensitive), deduplicated by name+rate.
func (s *Service) Search(query string, limit int) []Match {
	if limit <= 0 {
		limit = 20
	}
	want := strings.ToLower(query)
	seen := make(map[string]bool)

	var results []Match
	for _, section := range s.doc.Sections {
		for _, cls := range section.Classifications {
			if cls.HourlyRate <= 0 || cls.Classification == "" {
				continue
			}
			if !strings.Contains(strings.ToLower(cls.Classification), want) {
				continue
			}
			key := cls.Classification + "|" + decimal.NewFromFloat(cls.HourlyRate).String()
			if seen[key] {
				continue
			}
			seen[key] = true
			results = append(results, Match{
				Classification: cls.Classification,
				HourlyRate:     cls.HourlyRate,
				Section:        section.Name,
				Source:         cls.MetaSource,
			})
			if len(results) >= limit {
				return results
			}
		}
	}
	return results
}

// categoryFor detects Artist sections: the pay guide labels them
// "Category E" / "Artists"; every other labour line is Crew.
func categoryFor(sectionName string) award.Category {
	name := strings.ToLower(sectionName)
	if strings.Contains(name, "artist") || strings.Contains(name, "category e") {
		return award.CategoryArtist
	}
	return award.CategoryCrew
}

// employmentFor detects casual classifications by name.
func employmentFor(classification string) award.Employment {
	if strings.Contains(strings.ToLower(classification), "casual") {
		return award.EmploymentCasual
	}
	return award.EmploymentPermanent
}
