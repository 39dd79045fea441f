package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(endpoint string, maxRetries int) *WhatsAppClient {
	return NewWhatsAppClient(WhatsAppConfig{
		APIEndpoint:   endpoint,
		PhoneNumberID: "12345",
		AccessToken:   "test-token",
		MaxRetries:    maxRetries,
		RetryDelay:    time.Millisecond,
	})
}

func TestWhatsAppSend_Success(t *testing.T) {
	var gotAuth string
	var gotMessage WhatsAppMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotMessage); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"messaging_product": "whatsapp",
			"messages":          []map[string]string{{"id": "wamid.test"}},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL, 0)
	resp, err := client.Send(context.Background(), "2348012345678", "Your order is confirmed")
	if err != nil {
		t.Fatal(err)
	}

	if gotAuth != "Bearer test-token" {
		t.Errorf("expected bearer auth header, got %q", gotAuth)
	}
	if gotMessage.To != "2348012345678" || gotMessage.Text.Body != "Your order is confirmed" {
		t.Errorf("unexpected outgoing message: %+v", gotMessage)
	}
	if len(resp.Messages) != 1 || resp.Messages[0].ID != "wamid.test" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestWhatsAppSend_RetriesServerErrors(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{"message": "temporarily unavailable", "code": 500},
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"messaging_product": "whatsapp",
			"messages":          []map[string]string{{"id": "wamid.retry"}},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL, 3)
	resp, err := client.Send(context.Background(), "2348012345678", "hello")
	if err != nil {
		t.Fatalf("expected send to succeed after retries, got %v", err)
	}
	if attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts)
	}
	if resp.Messages[0].ID != "wamid.retry" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestWhatsAppSend_NoRetryOnClientError(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"message": "invalid recipient",
				"type":    "OAuthException",
				"code":    400,
			},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL, 3)
	_, err := client.Send(context.Background(), "not-a-number", "hello")
	if err == nil {
		t.Fatal("expected an error")
	}
	if attempts != 1 {
		t.Errorf("expected a single attempt on a 4xx error, got %d", attempts)
	}

	waErr, ok := err.(*WhatsAppError)
	if !ok {
		t.Fatalf("expected *WhatsAppError, got %T", err)
	}
	if waErr.ErrorInfo.Code != 400 {
		t.Errorf("expected code 400, got %d", waErr.ErrorInfo.Code)
	}
}

func TestWhatsAppSend_ExhaustsRetries(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "down", "code": 503},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL, 2)
	if _, err := client.Send(context.Background(), "2348012345678", "hello"); err == nil {
		t.Fatal("expected an error after exhausting retries")
	}
	if attempts != 3 {
		t.Errorf("expected 3 attempts (1 + 2 retries), got %d", attempts)
	}
}
