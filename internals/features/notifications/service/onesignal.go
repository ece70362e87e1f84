package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
)

const (
	ProviderOneSignal = "onesignal"

	oneSignalNotificationsURL = "https://onesignal.com/api/v1/notifications"
	oneSignalPlayersURL       = "https://onesignal.com/api/v1/players"
)

// OneSignalClient membungkus REST API OneSignal (kirim push + set external id).
type OneSignalClient struct {
	AppID      string
	RestAPIKey string
	HTTPClient *http.Client
	baseURL    string // override di test
}

var oneSignalClient *OneSignalClient

// Panggil saat bootstrap app
func InitOneSignal(appID, restAPIKey string) {
	oneSignalClient = NewOneSignalClient(appID, restAPIKey)
}

// OneSignal mengembalikan client global yang di-init saat bootstrap.
func OneSignal() *OneSignalClient { return oneSignalClient }

func NewOneSignalClient(appID, restAPIKey string) *OneSignalClient {
	return &OneSignalClient{
		AppID:      appID,
		RestAPIKey: restAPIKey,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type oneSignalNotification struct {
	AppID                  string            `json:"app_id"`
	IncludeExternalUserIDs []string          `json:"include_external_user_ids"`
	Headings               map[string]string `json:"headings"`
	Contents               map[string]string `json:"contents"`
	Data                   map[string]string `json:"data,omitempty"`
}

type oneSignalResponse struct {
	ID     string   `json:"id"`
	Errors []string `json:"errors"`
}

// Send mengirim satu push notification.
func (cl *OneSignalClient) Send(ctx context.Context, msg PushMessage) SendResult {
	if cl == nil || cl.AppID == "" || cl.RestAPIKey == "" {
		return SendResult{Success: false, Error: "Konfigurasi OneSignal belum lengkap"}
	}

	payload := oneSignalNotification{
		AppID:                  cl.AppID,
		IncludeExternalUserIDs: msg.ExternalUserIDs,
		Headings:               map[string]string{"en": msg.Title},
		Contents:               map[string]string{"en": msg.Body},
		Data:                   msg.Data,
	}
	body, err := sonic.Marshal(payload)
	if err != nil {
		return SendResult{Success: false, Error: err.Error()}
	}

	url := oneSignalNotificationsURL
	if cl.baseURL != "" {
		url = cl.baseURL + "/api/v1/notifications"
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return SendResult{Success: false, Error: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+cl.RestAPIKey)

	resp, err := cl.HTTPClient.Do(req)
	if err != nil {
		return SendResult{Success: false, Error: err.Error()}
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	var result oneSignalResponse
	_ = sonic.Unmarshal(raw, &result)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errMsg := "Unknown error"
		if len(result.Errors) > 0 {
			errMsg = result.Errors[0]
		}
		return SendResult{Success: false, Error: errMsg}
	}

	return SendResult{Success: true, ID: result.ID}
}

// SetExternalID menautkan subscription OneSignal ke NIS (best-effort).
func (cl *OneSignalClient) SetExternalID(ctx context.Context, subscriptionID, externalID string) bool {
	if cl == nil || cl.AppID == "" || cl.RestAPIKey == "" {
		return false
	}

	body, err := sonic.Marshal(map[string]string{
		"app_id":           cl.AppID,
		"external_user_id": externalID,
	})
	if err != nil {
		return false
	}

	url := fmt.Sprintf("%s/%s", oneSignalPlayersURL, subscriptionID)
	if cl.baseURL != "" {
		url = fmt.Sprintf("%s/api/v1/players/%s", cl.baseURL, subscriptionID)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return false
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+cl.RestAPIKey)

	resp, err := cl.HTTPClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
