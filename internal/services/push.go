package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// DefaultPushGatewayURL is the Expo push endpoint the mobile client
// registers its device tokens against.
const DefaultPushGatewayURL = "https://exp.host/--/api/v2/push/send"

var ErrNoDeviceToken = errors.New("no device token")

type pushMessage struct {
	To    string `json:"to"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// PushClient delivers push messages to the external gateway. Delivery is
// best effort: callers dispatch detached and only log failures, so a slow
// or dead gateway never delays an HTTP response.
type PushClient struct {
	gatewayURL string
	client     *http.Client
}

func NewPushClient(gatewayURL string) *PushClient {
	if gatewayURL == "" {
		gatewayURL = DefaultPushGatewayURL
	}
	return &PushClient{
		gatewayURL: gatewayURL,
		client: &http.Client{
			Timeout: 8 * time.Second,
		},
	}
}

func (push *PushClient) Send(ctx context.Context, deviceToken string, title string, body string) error {
	if deviceToken == "" {
		return ErrNoDeviceToken
	}

	payload, err := json.Marshal(pushMessage{To: deviceToken, Title: title, Body: body})
	if err != nil {
		return fmt.Errorf("encode push payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, push.gatewayURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := push.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		responseBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("push gateway status %d: %s", resp.StatusCode, string(responseBody))
	}

	return nil
}

// Dispatch sends in a detached goroutine and swallows the outcome. The
// triggering endpoint reports success regardless of delivery.
func (push *PushClient) Dispatch(deviceToken string, title string, body string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := push.Send(ctx, deviceToken, title, body); err != nil {
			log.Printf("push: send failed: %v", err)
		}
	}()
}
