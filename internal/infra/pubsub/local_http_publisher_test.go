package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"carmarket/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_PublishPriceAlert(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := publisher.PublishPriceAlert(context.Background(), &service.PriceAlertEvent{
		RequestID: "req-1",
		OfferID:   5,
		CarID:     9,
		OldPrice:  21000,
		NewPrice:  19500,
		BuyerIDs:  []int64{3, 4},
	})
	require.NoError(t, err)

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, service.EventTypePriceAlert, received.Message.Attributes["event_type"])
	assert.Equal(t, "5", received.Message.Attributes["offer_id"])
	assert.NotEmpty(t, received.Message.MessageID)

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var event service.PriceAlertEvent
	require.NoError(t, json.Unmarshal(raw, &event))
	assert.Equal(t, []int64{3, 4}, event.BuyerIDs)
	assert.InDelta(t, 19500.0, event.NewPrice, 1e-9)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := publisher.PublishPurchaseStatus(context.Background(), &service.PurchaseStatusEvent{PurchaseID: 1, ToStatus: "CONFIRMED"})
	assert.ErrorContains(t, err, "non-success status: 502")
}
