package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"service-schedule/internal/domain"
)

// maxRowsResponseBytes caps the schedule table body read from the REST source.
const maxRowsResponseBytes = 1 << 20

// RESTEntrySource reads the schedule table through a Supabase (PostgREST)
// endpoint.
type RESTEntrySource struct {
	baseURL    string
	apiKey     string
	table      string
	httpClient *http.Client
}

func NewRESTEntrySource(baseURL, apiKey, table string, httpClient *http.Client) *RESTEntrySource {
	return &RESTEntrySource{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		table:      table,
		httpClient: httpClient,
	}
}

// restRow accepts both the English column names of the bundled schema and the
// Indonesian ones of the legacy "jadwal" table.
type restRow struct {
	ID         int64  `json:"id"`
	Day        string `json:"day"`
	CourseName string `json:"course_name"`
	Instructor string `json:"instructor"`
	Location   string `json:"location"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`

	Hari       string `json:"hari"`
	Matkul     string `json:"matkul"`
	Dosen      string `json:"dosen"`
	Lokasi     string `json:"lokasi"`
	JamMulai   string `json:"jam_mulai"`
	JamSelesai string `json:"jam_selesai"`
}

func (r restRow) entry() domain.ScheduleEntry {
	return domain.ScheduleEntry{
		ID:         r.ID,
		Day:        firstNonEmpty(r.Day, r.Hari),
		CourseName: firstNonEmpty(r.CourseName, r.Matkul),
		Instructor: firstNonEmpty(r.Instructor, r.Dosen),
		Location:   firstNonEmpty(r.Location, r.Lokasi),
		StartTime:  firstNonEmpty(r.StartTime, r.JamMulai),
		EndTime:    firstNonEmpty(r.EndTime, r.JamSelesai),
	}
}

func (c *RESTEntrySource) ListEntries(ctx context.Context) ([]domain.ScheduleEntry, error) {
	if c.baseURL == "" || c.table == "" {
		return nil, ErrInvalidInput
	}

	endpoint := c.baseURL + "/rest/v1/" + url.PathEscape(c.table) + "?select=*"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// continue
	case http.StatusNotFound:
		return nil, ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	default:
		return nil, fmt.Errorf("schedule source unexpected status: %d", resp.StatusCode)
	}

	var rows []restRow
	decoder := json.NewDecoder(io.LimitReader(resp.Body, maxRowsResponseBytes))
	if err := decoder.Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode schedule rows: %w", err)
	}

	entries := make([]domain.ScheduleEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.entry())
	}
	return entries, nil
}

func DefaultRESTHTTPClient() *http.Client {
	return &http.Client{Timeout: 5 * time.Second}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
