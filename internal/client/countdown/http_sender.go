package countdown

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"raahi/internal/domain/entity"

	"github.com/pkg/errors"
)

const panicPath = "/emergency/panic"

// Identity describes the device user. All fields are optional; an empty
// token raises the alert anonymously.
type Identity struct {
	Token       string
	UserID      string
	Email       string
	DisplayName string
	UserAgent   string
}

// HTTPSender posts alerts to the RAAHI API.
type HTTPSender struct {
	baseURL    string
	identity   Identity
	httpClient *http.Client
}

// NewHTTPSender creates a sender for the API rooted at baseURL.
func NewHTTPSender(baseURL string, identity Identity, httpClient *http.Client) *HTTPSender {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}

	return &HTTPSender{
		baseURL:    strings.TrimRight(baseURL, "/"),
		identity:   identity,
		httpClient: httpClient,
	}
}

type panicRequest struct {
	UserID           string             `json:"userId,omitempty"`
	Email            string             `json:"email,omitempty"`
	DisplayName      string             `json:"displayName,omitempty"`
	Location         *entity.Coordinate `json:"location"`
	LocationDegraded bool               `json:"locationDegraded"`
	Timestamp        time.Time          `json:"timestamp"`
	UserAgent        string             `json:"userAgent,omitempty"`
}

type panicEnvelope struct {
	Data *struct {
		AlertID string `json:"alertId"`
		Path    string `json:"firestorePath"`
	} `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Send implements AlertSender. A degraded alert carries the (0,0) placeholder
// together with the degraded flag.
func (s *HTTPSender) Send(ctx context.Context, alert AlertRequest) (*AlertReceipt, error) {
	location := alert.Location
	if alert.Degraded {
		location = entity.Coordinate{}
	}

	body, err := json.Marshal(panicRequest{
		UserID:           s.identity.UserID,
		Email:            s.identity.Email,
		DisplayName:      s.identity.DisplayName,
		Location:         &location,
		LocationDegraded: alert.Degraded,
		Timestamp:        alert.Timestamp,
		UserAgent:        s.identity.UserAgent,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+panicPath, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.identity.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.identity.Token)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer resp.Body.Close()

	var envelope panicEnvelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&envelope)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if decodeErr == nil && envelope.Error != nil {
			return nil, errors.Errorf("api returned %d %s: %s", resp.StatusCode, envelope.Error.Code, envelope.Error.Message)
		}

		return nil, errors.Errorf("api returned non-success status: %d", resp.StatusCode)
	}
	if decodeErr != nil {
		return nil, errors.Wrap(decodeErr, "decode response")
	}
	if envelope.Data == nil || envelope.Data.AlertID == "" {
		return nil, errors.New("api response carried no alert id")
	}

	return &AlertReceipt{AlertID: envelope.Data.AlertID, Path: envelope.Data.Path}, nil
}
