// Package portal is the gateway to the upstream billing/CRM REST API.
// Every request carries the static integration credential; per-request
// failures are reported as TransportError (reads) or SubmitError
// (writes) so callers can apply the right degradation policy.
package portal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"collections-backend/internal/metrics"
	"collections-backend/internal/models"
)

const (
	customersPath = "/customers/customer"
	billingPath   = "/customers/customer-billing/"
	inventoryPath = "/inventory/items"
	notesPath     = "/customers/customer-notes"
	tasksPath     = "/scheduling/tasks"
)

type Client struct {
	baseURL    string
	authHeader string
	httpClient *http.Client
}

// NewClient builds a portal client. timeout bounds every request.
func NewClient(baseURL, authHeader string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		authHeader: authHeader,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Customers fetches the full customer list.
func (c *Client) Customers(ctx context.Context) ([]models.Customer, error) {
	var out []models.Customer
	if err := c.getJSON(ctx, customersPath, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Billings fetches the full billing list.
func (c *Client) Billings(ctx context.Context) ([]models.Billing, error) {
	var out []models.Billing
	if err := c.getJSON(ctx, billingPath, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// InventoryItems fetches the full inventory list.
func (c *Client) InventoryItems(ctx context.Context) ([]models.InventoryItem, error) {
	var out []models.InventoryItem
	if err := c.getJSON(ctx, inventoryPath, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Notes fetches the entire note set. The portal offers no server-side
// filter; callers narrow by customer id.
func (c *Client) Notes(ctx context.Context) ([]models.CustomerNote, error) {
	var out []models.CustomerNote
	if err := c.getJSON(ctx, notesPath, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ChangeLogs fetches the status change history of one customer.
func (c *Client) ChangeLogs(ctx context.Context, customerID int) ([]models.ChangeLog, error) {
	var out []models.ChangeLog
	path := fmt.Sprintf("%s/%d/logs-changes", customersPath, customerID)
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateNote appends a note to a customer's history.
func (c *Client) CreateNote(ctx context.Context, note *models.CustomerNote) error {
	return c.postJSON(ctx, notesPath, note)
}

// CreateTask creates a scheduling task.
func (c *Client) CreateTask(ctx context.Context, task *models.Task) error {
	return c.postJSON(ctx, tasksPath, task)
}

func (c *Client) getJSON(ctx context.Context, path string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return &TransportError{Endpoint: path, Err: err}
	}
	req.Header.Set("Authorization", c.authHeader)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.PortalRequestsTotal.WithLabelValues("get "+path, "transport_error").Inc()
		return &TransportError{Endpoint: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.PortalRequestsTotal.WithLabelValues("get "+path, "transport_error").Inc()
		return &TransportError{Endpoint: path, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		metrics.PortalRequestsTotal.WithLabelValues("get "+path, "decode_error").Inc()
		return &TransportError{Endpoint: path, StatusCode: resp.StatusCode, Err: err}
	}
	metrics.PortalRequestsTotal.WithLabelValues("get "+path, "ok").Inc()
	return nil
}

func (c *Client) postJSON(ctx context.Context, path string, body interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("portal POST %s: encode: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return &TransportError{Endpoint: path, Err: err}
	}
	req.Header.Set("Authorization", c.authHeader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.PortalRequestsTotal.WithLabelValues("post "+path, "transport_error").Inc()
		return &TransportError{Endpoint: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		metrics.PortalRequestsTotal.WithLabelValues("post "+path, "submit_error").Inc()
		return &SubmitError{Endpoint: path, StatusCode: resp.StatusCode, Body: string(detail)}
	}

	// Drain so the connection can be reused
	io.Copy(io.Discard, resp.Body)
	metrics.PortalRequestsTotal.WithLabelValues("post "+path, "ok").Inc()
	return nil
}
