package apiclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"flowerdelivery/internal/adapters/out/apiclient"
	"flowerdelivery/internal/core/domain/model/delivery"
	"flowerdelivery/internal/generated/servers"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func newServer(t *testing.T, handler http.HandlerFunc) *apiclient.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return apiclient.New(srv.URL+"/", srv.Client())
}

func writeJSON(t *testing.T, w http.ResponseWriter, code int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	assert.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestClient_ListDeliveries(t *testing.T) {
	createdAt := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/deliveries", r.URL.Path)
		writeJSON(t, w, http.StatusOK, []servers.Delivery{{
			Id:           "240101-001",
			Status:       servers.PICKEDUP,
			Settlement:   servers.COLLECT,
			BusinessName: "MSS Flower",
			Recipient:    servers.Recipient{Address: ptr("용인시 기흥구 중부대로 184")},
			BoxCount:     2,
			Fee:          15000,
			CreatedAt:    createdAt,
		}})
	})

	views, err := client.ListDeliveries(context.Background())

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "240101-001", views[0].ID)
	assert.Equal(t, delivery.StatusPickedUp, views[0].Status)
	assert.Equal(t, delivery.SettlementCollect, views[0].Settlement)
	assert.Equal(t, "용인시 기흥구 중부대로 184", views[0].RecipientAddress)
	assert.Empty(t, views[0].RecipientPhone)
	assert.True(t, createdAt.Equal(views[0].CreatedAt))
}

func TestClient_AdvanceStatus(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/deliveries/240101-001/status", r.URL.Path)
		var req servers.AdvanceStatusRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if assert.NotNil(t, req.Status) {
			assert.Equal(t, servers.DELIVERING, *req.Status)
		}
		writeJSON(t, w, http.StatusOK, servers.Delivery{
			Id:         "240101-001",
			Status:     servers.DELIVERING,
			Settlement: servers.PREPAID,
		})
	})

	expected := delivery.StatusDelivering
	view, err := client.AdvanceStatus(context.Background(), "240101-001", &expected)

	require.NoError(t, err)
	assert.Equal(t, delivery.StatusDelivering, view.Status)
}

func TestClient_ErrorBody(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusConflict, servers.Error{Code: http.StatusConflict, Message: "status transition is not allowed"})
	})

	_, err := client.AdvanceStatus(context.Background(), "240101-001", nil)

	var apiErr *apiclient.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "status transition is not allowed", apiErr.Message)
}

func TestClient_ErrorWithoutBody(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.TodaySummary(context.Background())

	var apiErr *apiclient.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusText(http.StatusBadGateway), apiErr.Message)
}

func TestClient_TodaySummary(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, servers.TodaySummary{Date: "240101", Count: 2, FeeTotal: 30000})
	})

	summary, err := client.TodaySummary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 30000, summary.FeeTotal)
	assert.Equal(t, 2, summary.Count)
}

func TestClient_ListContacts(t *testing.T) {
	id := uuid.New()
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "가든", r.URL.Query().Get("q"))
		writeJSON(t, w, http.StatusOK, []servers.Contact{{
			Id:           id,
			BusinessName: "새 가든브리즈",
			Phones:       []string{"01023041022"},
			Note:         ptr("뒷문"),
		}})
	})

	contacts, err := client.ListContacts(context.Background(), "가든")

	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, id.String(), contacts[0].ID)
	assert.Equal(t, "뒷문", contacts[0].Note)
	assert.Empty(t, contacts[0].Address)
}

func TestClient_ServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	_, err := apiclient.New(srv.URL, nil).ListContacts(context.Background(), "")

	assert.Error(t, err)
}

func TestSampleContacts(t *testing.T) {
	contacts, err := apiclient.SampleContacts("")

	require.NoError(t, err)
	require.Len(t, contacts, 7)
	assert.Equal(t, "새 007천사", contacts[0].BusinessName)
	assert.Equal(t, []string{"01050465595"}, contacts[0].Phones)
	assert.Equal(t, "본당앞에 올려놓을것", contacts[5].Note)
}

func TestSampleContacts_Search(t *testing.T) {
	contacts, err := apiclient.SampleContacts("mss")

	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "새 MSS플라워", contacts[0].BusinessName)

	contacts, err = apiclient.SampleContacts("없는이름")

	require.NoError(t, err)
	assert.Empty(t, contacts)
}
