package payment

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return &Client{
		httpClient: server.Client(),
		baseURL:    server.URL,
	}
}

func TestFetchPayment(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/payments/123" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":123,"status":"approved","metadata":{"discord_user_id":"456"}}`))
	})

	payment, err := client.FetchPayment("123")
	if err != nil {
		t.Fatalf("FetchPayment failed: %v", err)
	}
	if payment.Status != StatusApproved {
		t.Fatalf("unexpected status: %q", payment.Status)
	}
	if payment.Metadata.DiscordUserID != "456" {
		t.Fatalf("unexpected metadata user: %q", payment.Metadata.DiscordUserID)
	}
}

func TestFetchPayment_NonOKStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	if _, err := client.FetchPayment("missing"); err == nil {
		t.Fatal("FetchPayment should fail on a non-OK response")
	}
}
