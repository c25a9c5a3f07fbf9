package hotels

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/waskull/hotelia/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// Client queries the hotels service for room status and nightly rate.
// Timeouts and network failures surface as domain.ErrHotelsUnavailable so
// callers can tell a dead upstream from a business conflict.
type Client struct {
	baseURL string
	http    *http.Client
	logger  logger.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// roomPayload mirrors the hotels service's room representation. The rate is
// a decimal string with two-place precision.
type roomPayload struct {
	ID            int64       `json:"id"`
	Status        string      `json:"status"`
	PricePerNight json.Number `json:"price_per_night"`
}

func (c *Client) GetRoom(ctx context.Context, roomID int64) (*domain.Room, error) {
	url := fmt.Sprintf("%s/api/rooms/%d/", c.baseURL, roomID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build room request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("hotels service request failed",
			logger.Int64("room_id", roomID),
			logger.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%w: %v", domain.ErrHotelsUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrRoomNotFound
	case resp.StatusCode != http.StatusOK:
		c.logger.Error("hotels service returned unexpected status",
			logger.Int64("room_id", roomID),
			logger.Int("status", resp.StatusCode),
		)
		return nil, fmt.Errorf("%w: status %d", domain.ErrHotelsUnavailable, resp.StatusCode)
	}

	var payload roomPayload
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode room: %v", domain.ErrHotelsUnavailable, err)
	}

	rate, err := domain.ParsePriceCents(payload.PricePerNight.String())
	if err != nil {
		return nil, fmt.Errorf("%w: room %d rate: %v", domain.ErrHotelsUnavailable, roomID, err)
	}

	return &domain.Room{
		ID:               payload.ID,
		Status:           domain.RoomStatus(payload.Status),
		NightlyRateCents: rate,
	}, nil
}
