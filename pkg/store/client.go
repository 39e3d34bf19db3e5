package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// pageSize is the store's per-request record cap; larger fetches follow
// the offset cursor within a single Select call.
const pageSize = 100

// Client is the live record store implementation of Store.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     *zap.Logger
}

func NewClient(baseURL, apiKey string, timeout time.Duration, log *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
		log:     log.With(zap.String("component", "store")),
	}
}

type recordPage struct {
	Records []Record `json:"records"`
	Offset  string   `json:"offset,omitempty"`
}

type recordPayload struct {
	Fields map[string]any `json:"fields"`
}

// Select executes a compiled query against the named collection and
// returns normalized {id, fields} records, bounded by q.MaxRecords.
// The offset cursor is only followed inside this single call.
func (c *Client) Select(ctx context.Context, collection string, q Query) ([]Record, error) {
	formula, err := Compile(q.Predicates)
	if err != nil {
		return nil, fmt.Errorf("compile filter for %s: %w", collection, err)
	}

	var records []Record
	offset := ""

	for {
		params := url.Values{}
		if formula != "" {
			params.Set("filterByFormula", formula)
		}
		if q.Sort != nil {
			params.Set("sort[0][field]", q.Sort.Field)
			direction := q.Sort.Direction
			if direction == "" {
				direction = "asc"
			}
			params.Set("sort[0][direction]", direction)
		}
		if q.MaxRecords > 0 {
			params.Set("maxRecords", strconv.Itoa(q.MaxRecords))
		}
		if offset != "" {
			params.Set("offset", offset)
		}

		var page recordPage
		if err := c.do(ctx, http.MethodGet, collection, params, nil, &page); err != nil {
			return nil, &StoreError{Op: "select", Collection: collection, Err: err}
		}

		records = append(records, page.Records...)

		if page.Offset == "" || (q.MaxRecords > 0 && len(records) >= q.MaxRecords) {
			break
		}
		offset = page.Offset
	}

	if q.MaxRecords > 0 && len(records) > q.MaxRecords {
		records = records[:q.MaxRecords]
	}

	c.log.Debug("Select executed",
		zap.String("collection", collection),
		zap.String("formula", formula),
		zap.Int("count", len(records)),
	)

	return records, nil
}

func (c *Client) Create(ctx context.Context, collection string, fields map[string]any) (Record, error) {
	var created Record
	payload := recordPayload{Fields: fields}
	if err := c.do(ctx, http.MethodPost, collection, nil, payload, &created); err != nil {
		return Record{}, &StoreError{Op: "create", Collection: collection, Err: err}
	}

	c.log.Debug("Record created",
		zap.String("collection", collection),
		zap.String("record_id", created.ID),
	)

	return created, nil
}

func (c *Client) Update(ctx context.Context, collection, id string, fields map[string]any) (Record, error) {
	var updated Record
	payload := recordPayload{Fields: fields}
	path := collection + "/" + id
	if err := c.do(ctx, http.MethodPatch, path, nil, payload, &updated); err != nil {
		return Record{}, &StoreError{Op: "update", Collection: collection, Err: err}
	}

	c.log.Debug("Record updated",
		zap.String("collection", collection),
		zap.String("record_id", id),
	)

	return updated, nil
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, payload, out any) error {
	endpoint := c.baseURL + "/" + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, string(raw))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}
