package holiday

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/callsheet/budget-engine/award"
)

// =============================================================================
// API SOURCE - data.gov.au NSW public holiday dataset
// =============================================================================

const (
	defaultAPIURL     = "https://data.gov.au/data/api/3/action/datastore_search"
	defaultResourceID = "33673aca-0857-42e5-b8f0-9981b4755686"
	fetchLimit        = 2000
)

// Source supplies the full public holiday set. Implementations may do
// network I/O; the Service layers caching and degradation on top.
type Source interface {
	Fetch(ctx context.Context) ([]Holiday, error)
}

// APISource fetches NSW public holidays from the data.gov.au
// datastore API.
type APISource struct {
	URL        string
	ResourceID string
	Client     *http.Client
}

// NewAPISource creates a source against the public dataset with a
// 10 second request timeout.
func NewAPISource() *APISource {
	return &APISource{
		URL:        defaultAPIURL,
		ResourceID: defaultResourceID,
		Client:     &http.Client{Timeout: 10 * time.Second},
	}
}

type apiRecord struct {
	Date         string `json:"Date"`
	HolidayName  string `json:"Holiday Name"`
	Jurisdiction string `json:"Jurisdiction"`
}

type apiResponse struct {
	Result struct {
		Records []apiRecord `json:"records"`
	} `json:"result"`
}

// Fetch returns all NSW holidays the dataset knows about.
func (s *APISource) Fetch(ctx context.Context) ([]Holiday, error) {
	params := url.Values{}
	params.Set("resource_id", s.ResourceID)
	params.Set("limit", fmt.Sprintf("%d", fetchLimit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build holiday request: %w", err)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch holidays: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch holidays: unexpected status %d", resp.StatusCode)
	}

	var decoded apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode holiday response: %w", err)
	}

	var holidays []Holiday
	for _, record := range decoded.Result.Records {
		if record.Date == "" || !strings.EqualFold(record.Jurisdiction, "nsw") {
			continue
		}
		date, ok := parseRecordDate(record.Date)
		if !ok {
			continue
		}
		name := record.HolidayName
		if name == "" {
			name = "Public Holiday"
		}
		holidays = append(holidays, Holiday{Date: date, Name: name, Jurisdiction: "nsw"})
	}
	return holidays, nil
}

// parseRecordDate handles the dataset's two date formats
// (YYYY-MM-DD and YYYYMMDD).
func parseRecordDate(s string) (award.Date, bool) {
	if d, err := award.ParseDate(s); err == nil {
		return d, true
	}
	if t, err := time.Parse("20060102", s); err == nil {
		return award.NewDate(t.Year(), t.Month(), t.Day()), true
	}
	return award.Date{}, false
}
