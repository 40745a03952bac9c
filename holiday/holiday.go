/*
Package holiday is the public-holiday collaborator for the labor cost
engine.

PURPOSE:
  Supplies, for a date range, the set of NSW public holiday dates and
  names. Backed by the data.gov.au dataset with a local file cache and
  a 30-day freshness window, plus a hardcoded 2026 fallback list (the
  public dataset stops at 2025).

DEGRADATION CONTRACT:
  Holiday lookup must never abort a calculation. A failed or timed-out
  fetch degrades to "no holidays found" for the affected range: a
  holiday day then prices at its plain weekday/weekend rate instead of
  failing the computation. All methods therefore return data, not
  errors.

SEE ALSO:
  - source.go: The data.gov.au API source
  - award/date.go: The HolidayCalendar capability this package serves
*/
package holiday

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/callsheet/budget-engine/award"
)

// Holiday is one public holiday.
type Holiday struct {
	Date         award.Date
	Name         string
	Jurisdiction string
}

const (
	cacheFileName = "nsw_holidays_cache.json"
	cacheTTL      = 30 * 24 * time.Hour
)

// =============================================================================
// SERVICE
// =============================================================================

// Service caches holidays from a Source and answers range queries.
// Safe for concurrent use.
type Service struct {
	source    Source
	cachePath string

	mu  sync.Mutex
	now func() time.Time
}

// NewService creates a holiday service caching under cacheDir.
func NewService(source Source, cacheDir string) *Service {
	return &Service{
		source:    source,
		cachePath: filepath.Join(cacheDir, cacheFileName),
		now:       time.Now,
	}
}

// All returns every known holiday: cached when fresh, refetched when
// stale, and always merged with the 2026 fallback list. Never fails;
// a fetch error with no usable cache yields just the fallback set.
func (s *Service) All(ctx context.Context, forceRefresh bool) []Holiday {
	s.mu.Lock()
	defer s.mu.Unlock()

	var holidays []Holiday
	if !forceRefresh {
		holidays = s.loadCache()
	}

	if len(holidays) == 0 {
		fetched, err := s.source.Fetch(ctx)
		if err != nil {
			log.Printf("holiday: fetch failed, degrading to cached/fallback data: %v", err)
		} else if len(fetched) > 0 {
			holidays = fetched
			s.saveCache(holidays)
		}
	}

	return mergeFallback2026(holidays)
}

// InRange returns holidays within [from, to], sorted by date.
func (s *Service) InRange(ctx context.Context, from, to award.Date) []Holiday {
	var filtered []Holiday
	for _, h := range s.All(ctx, false) {
		if !h.Date.Before(from) && !h.Date.After(to) {
			filtered = append(filtered, h)
		}
	}
	sort.Slice(filtered, func(i, j int) bool { return filtered[i].Date.Before(filtered[j].Date) })
	return filtered
}

// IsHoliday reports whether a single date is a public holiday.
func (s *Service) IsHoliday(ctx context.Context, d award.Date) bool {
	return len(s.InRange(ctx, d, d)) > 0
}

// NameOn returns the holiday name on a date, if any.
func (s *Service) NameOn(ctx context.Context, d award.Date) (string, bool) {
	if hs := s.InRange(ctx, d, d); len(hs) > 0 {
		return hs[0].Name, true
	}
	return "", false
}

// RangeCalendar resolves the holidays for [from, to] once and returns
// a plain lookup satisfying award.HolidayCalendar. This is what the
// cost engine consumes: by the time the calculation runs, holiday
// data is local and infallible. Zero dates yield an empty calendar.
func (s *Service) RangeCalendar(ctx context.Context, from, to award.Date) award.HolidayCalendar {
	byDate := make(map[string]string)
	if !from.IsZero() && !to.IsZero() {
		for _, h := range s.InRange(ctx, from, to) {
			byDate[h.Date.String()] = h.Name
		}
	}
	return rangeCalendar(byDate)
}

type rangeCalendar map[string]string

func (c rangeCalendar) IsHoliday(d award.Date) bool {
	_, ok := c[d.String()]
	return ok
}

func (c rangeCalendar) HolidayName(d award.Date) (string, bool) {
	name, ok := c[d.String()]
	return name, ok
}

// =============================================================================
// FILE CACHE
// =============================================================================

type cacheEntry struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

type cacheFile struct {
	CachedAt string       `json:"cached_at"`
	Holidays []cacheEntry `json:"holidays"`
}

// loadCache returns cached holidays when the cache exists and is
// within the freshness window, nil otherwise.
func (s *Service) loadCache() []Holiday {
	raw, err := os.ReadFile(s.cachePath)
	if err != nil {
		return nil
	}

	var cached cacheFile
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil
	}

	cachedAt, err := time.Parse(time.RFC3339, cached.CachedAt)
	if err != nil || s.now().Sub(cachedAt) > cacheTTL {
		return nil
	}

	var holidays []Holiday
	for _, e := range cached.Holidays {
		date, err := award.ParseDate(e.Date)
		if err != nil {
			continue
		}
		holidays = append(holidays, Holiday{Date: date, Name: e.Name, Jurisdiction: "nsw"})
	}
	return holidays
}

func (s *Service) saveCache(holidays []Holiday) {
	entries := make([]cacheEntry, len(holidays))
	for i, h := range holidays {
		entries[i] = cacheEntry{Date: h.Date.String(), Name: h.Name}
	}

	raw, err := json.Marshal(cacheFile{
		CachedAt: s.now().Format(time.RFC3339),
		Holidays: entries,
	})
	if err != nil {
		return
	}
	if err := os.WriteFile(s.cachePath, raw, 0o644); err != nil {
		log.Printf("holiday: failed to write cache: %v", err)
	}
}

// =============================================================================
// 2026 FALLBACK - the public dataset currently stops at 2025
// =============================================================================

var fallback2026 = []struct {
	date string
	name string
}{
	{"2026-01-01", "New Year's Day"},
	{"2026-01-26", "Australia Day"},
	{"2026-04-03", "Good Friday"},
	{"2026-04-04", "Day after Good Friday"},
	{"2026-04-05", "Easter Sunday"},
	{"2026-04-06", "Easter Monday"},
	{"2026-04-25", "Anzac Day"},
	{"2026-06-08", "King's Birthday"},
	{"2026-08-03", "Bank Holiday"},
	{"2026-10-05", "Labour Day"},
	{"2026-12-25", "Christmas Day"},
	{"2026-12-26", "Boxing Day"},
	{"2026-12-28", "Boxing Day (Observed)"},
}

// mergeFallback2026 appends the hardcoded 2026 holidays unless the
// source already supplies any 2026 dates (in case the dataset gets
// updated upstream).
func mergeFallback2026(holidays []Holiday) []Holiday {
	for _, h := range holidays {
		if h.Date.Year() == 2026 {
			return holidays
		}
	}

	existing := make(map[string]bool, len(holidays))
	for _, h := range holidays {
		existing[h.Date.String()] = true
	}
	for _, f := range fallback2026 {
		if existing[f.date] {
			continue
		}
		date, err := award.ParseDate(f.date)
		if err != nil {
			continue
		}
		holidays = append(holidays, Holiday{Date: date, Name: f.name, Jurisdiction: "nsw"})
	}
	return holidays
}
