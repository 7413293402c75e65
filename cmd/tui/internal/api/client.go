// Package api is the typed client the TUI uses to talk to the Remesa server.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

type Client struct {
	base string
	http *http.Client
}

func New(base string) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

type Corridor struct {
	ID                 int       `json:"id"`
	Name               string    `json:"name"`
	Code               string    `json:"code"`
	OriginCountry      string    `json:"origin_country"`
	DestinationCountry string    `json:"destination_country"`
	BaseFeePercentage  float64   `json:"base_fee_percentage"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
}

type Remittance struct {
	ID            int       `json:"id"`
	ReferenceCode string    `json:"reference_code"`
	SenderName    string    `json:"sender_name"`
	RecipientName string    `json:"recipient_name"`
	CorridorID    int       `json:"corridor_id"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	ExchangeRate  float64   `json:"exchange_rate"`
	Fee           float64   `json:"fee"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
	IsExpress     bool      `json:"is_express"`
	Corridor      *Corridor `json:"corridor"`
	CreatedAt     time.Time `json:"created_at"`
}

type RemittancePage struct {
	Items   []Remittance `json:"items"`
	Total   int          `json:"total"`
	Page    int          `json:"page"`
	PerPage int          `json:"per_page"`
	Pages   int          `json:"pages"`
	HasNext bool         `json:"has_next"`
	HasPrev bool         `json:"has_prev"`
}

type StatsSummary struct {
	TotalRemittances   int     `json:"total_remittances"`
	TotalAmount        float64 `json:"total_amount"`
	AverageAmount      float64 `json:"average_amount"`
	TotalFeesCollected float64 `json:"total_fees_collected"`
	ActiveCorridors    int     `json:"active_corridors"`
}

type CorridorStats struct {
	CorridorID       int            `json:"corridor_id"`
	CorridorName     string         `json:"corridor_name"`
	IsActive         bool           `json:"is_active"`
	TotalRemittances int            `json:"total_remittances"`
	TotalAmount      float64        `json:"total_amount"`
	AverageAmount    float64        `json:"average_amount"`
	TotalFees        float64        `json:"total_fees"`
	ByStatus         map[string]int `json:"by_status"`
}

type Stats struct {
	Summary    StatsSummary             `json:"summary"`
	ByCorridor map[string]CorridorStats `json:"by_corridor"`
}

type CreateRemittanceParams struct {
	SenderName    string  `json:"sender_name"`
	RecipientName string  `json:"recipient_name"`
	CorridorID    int     `json:"corridor_id"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	ExchangeRate  float64 `json:"exchange_rate"`
	PaymentMethod string  `json:"payment_method"`
	IsExpress     bool    `json:"is_express"`
}

// ListOptions narrows and pages the remittance listing. Zero values are
// omitted from the query so the server applies its own defaults.
type ListOptions struct {
	Status  string
	Page    int
	PerPage int
}

func (c *Client) ListCorridors(ctx context.Context) ([]Corridor, error) {
	var out []Corridor
	if err := c.do(ctx, http.MethodGet, "/api/v1/corridors", nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) SetCorridorActive(ctx context.Context, id int, active bool) (*Corridor, error) {
	body := struct {
		IsActive bool `json:"is_active"`
	}{IsActive: active}

	var out Corridor
	if err := c.do(ctx, http.MethodPatch, "/api/v1/corridors/"+strconv.Itoa(id), body, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) ListRemittances(ctx context.Context, opts ListOptions) (*RemittancePage, error) {
	q := url.Values{}
	if opts.Status != "" {
		q.Set("status", opts.Status)
	}

	if opts.Page > 0 {
		q.Set("page", strconv.Itoa(opts.Page))
	}

	if opts.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(opts.PerPage))
	}

	path := "/api/v1/remittances"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out RemittancePage
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) CreateRemittance(ctx context.Context, params CreateRemittanceParams) (*Remittance, error) {
	var out Remittance
	if err := c.do(ctx, http.MethodPost, "/api/v1/remittances", params, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) UpdateRemittanceStatus(ctx context.Context, id int, status string) (*Remittance, error) {
	body := struct {
		Status string `json:"status"`
	}{Status: status}

	var out Remittance
	if err := c.do(ctx, http.MethodPatch, "/api/v1/remittances/"+strconv.Itoa(id), body, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) DeleteRemittance(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/remittances/"+strconv.Itoa(id), nil, nil)
}

func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	var out Stats
	if err := c.do(ctx, http.MethodGet, "/api/v1/remittances/stats", nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// do runs one round trip. The server answers errors with a one-line plain
// text body, which becomes the error message here.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader

	if in != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return err
		}

		body = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return err
	}

	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		if text := strings.TrimSpace(string(msg)); text != "" {
			return fmt.Errorf("%s", text)
		}

		return fmt.Errorf("%s %s: %s", method, path, resp.Status)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}

	return nil
}
