package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPushClientSendsExpectedPayload(t *testing.T) {
	received := make(chan pushMessage, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		message := pushMessage{}
		if err := json.NewDecoder(r.Body).Decode(&message); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		received <- message
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	push := NewPushClient(server.URL)
	if err := push.Send(context.Background(), "device-token", "Nudge", "hello"); err != nil {
		t.Fatalf("send: %v", err)
	}

	message := <-received
	if message.To != "device-token" || message.Title != "Nudge" || message.Body != "hello" {
		t.Fatalf("unexpected payload %+v", message)
	}
}

func TestPushClientSurfacesGatewayErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "push token unknown", http.StatusBadRequest)
	}))
	defer server.Close()

	push := NewPushClient(server.URL)
	if err := push.Send(context.Background(), "device-token", "Nudge", "hello"); err == nil {
		t.Fatal("expected an error for a 4xx gateway response")
	}
}

func TestPushClientRejectsEmptyDeviceToken(t *testing.T) {
	push := NewPushClient("http://127.0.0.1:0")
	if err := push.Send(context.Background(), "", "Nudge", "hello"); !errors.Is(err, ErrNoDeviceToken) {
		t.Fatalf("expected ErrNoDeviceToken, got %v", err)
	}
}

func TestPushClientDefaultsGatewayURL(t *testing.T) {
	push := NewPushClient("")
	if push.gatewayURL != DefaultPushGatewayURL {
		t.Fatalf("expected default gateway, got %q", push.gatewayURL)
	}
}
