// Package apiclient talks to the delivery back-office REST API.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"flowerdelivery/internal/core/application/usecases/queries"
	"flowerdelivery/internal/core/domain/model/delivery"
	"flowerdelivery/internal/generated/servers"
)

// DefaultTimeout bounds a single request.
const DefaultTimeout = 10 * time.Second

// APIError is a non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the server at baseURL. A nil httpClient gets a
// client with DefaultTimeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

// ListDeliveries fetches every delivery in order number order.
func (c *Client) ListDeliveries(ctx context.Context) ([]queries.DeliveryView, error) {
	var body []servers.Delivery
	if err := c.do(ctx, http.MethodGet, "/api/deliveries", nil, &body); err != nil {
		return nil, err
	}

	views := make([]queries.DeliveryView, 0, len(body))
	for _, d := range body {
		v, err := fromDelivery(d)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

// AdvanceStatus moves the delivery to its next status. When expected is set the
// server rejects the request unless expected is that next status.
func (c *Client) AdvanceStatus(ctx context.Context, id string, expected *delivery.Status) (queries.DeliveryView, error) {
	var in any
	if expected != nil {
		status := servers.Status(expected.String())
		in = servers.AdvanceStatusRequest{Status: &status}
	}

	var body servers.Delivery
	path := "/api/deliveries/" + url.PathEscape(id) + "/status"
	if err := c.do(ctx, http.MethodPost, path, in, &body); err != nil {
		return queries.DeliveryView{}, err
	}
	return fromDelivery(body)
}

// TodaySummary fetches today's count and fee total.
func (c *Client) TodaySummary(ctx context.Context) (queries.TodaySummaryQueryResponse, error) {
	var body servers.TodaySummary
	if err := c.do(ctx, http.MethodGet, "/api/deliveries/summary/today", nil, &body); err != nil {
		return queries.TodaySummaryQueryResponse{}, err
	}
	return queries.TodaySummaryQueryResponse{Date: body.Date, Count: body.Count, FeeTotal: body.FeeTotal}, nil
}

// ListContacts searches the address book. An empty search returns everything.
func (c *Client) ListContacts(ctx context.Context, search string) ([]queries.ContactView, error) {
	path := "/api/contacts"
	if search != "" {
		path += "?" + url.Values{"q": {search}}.Encode()
	}

	var body []servers.Contact
	if err := c.do(ctx, http.MethodGet, path, nil, &body); err != nil {
		return nil, err
	}

	contacts := make([]queries.ContactView, 0, len(body))
	for _, ct := range body {
		contacts = append(contacts, queries.ContactView{
			ID:           ct.Id.String(),
			BusinessName: ct.BusinessName,
			Phones:       ct.Phones,
			Address:      deref(ct.Address),
			Note:         deref(ct.Note),
		})
	}
	return contacts, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var reqBody io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var e servers.Error
		if decodeErr := json.NewDecoder(resp.Body).Decode(&e); decodeErr == nil && e.Message != "" {
			apiErr.Message = e.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func fromDelivery(d servers.Delivery) (queries.DeliveryView, error) {
	status, err := delivery.ParseStatus(string(d.Status))
	if err != nil {
		return queries.DeliveryView{}, err
	}
	settlement, err := delivery.ParseSettlement(string(d.Settlement))
	if err != nil {
		return queries.DeliveryView{}, err
	}

	return queries.DeliveryView{
		ID:                 d.Id,
		Status:             status,
		ActionLabel:        deref(d.ActionLabel),
		Settlement:         settlement,
		SettlementLabel:    deref(d.SettlementLabel),
		BusinessName:       d.BusinessName,
		Wholesaler:         deref(d.Wholesaler),
		RecipientAddress:   deref(d.Recipient.Address),
		RecipientPhone:     deref(d.Recipient.Phone),
		AbbreviatedAddress: deref(d.AbbreviatedAddress),
		MapLink:            deref(d.MapLink),
		BoxCount:           d.BoxCount,
		Fee:                d.Fee,
		Notes:              deref(d.Notes),
		CreatedAt:          d.CreatedAt,
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
