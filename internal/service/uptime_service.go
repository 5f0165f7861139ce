package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"rootdex/internal/cache"
	apperrors "rootdex/internal/errors"
)

// DefaultUptimeRobotEndpoint is the production UptimeRobot v2 API URL.
const DefaultUptimeRobotEndpoint = "https://api.uptimerobot.com/v2/getMonitors"

const (
	uptimeCacheKey = "uptime:status"
	uptimeCacheTTL = 3 * time.Minute
)

// UptimeStatus is the 4-value summary served to clients.
type UptimeStatus struct {
	Status    string    `json:"status"` // up | degraded | down | unknown
	Monitors  int       `json:"monitors"`
	CheckedAt time.Time `json:"checked_at"`
}

// UptimeService proxies the uptime vendor with a short server-side cache so
// repeated page loads do not fan out into upstream calls.
type UptimeService interface {
	Status(ctx context.Context) (*UptimeStatus, error)
}

type uptimeService struct {
	apiKey   string
	endpoint string
	cache    cache.Cache
	client   *http.Client
}

// NewUptimeService creates an uptime proxy. An empty apiKey leaves the
// service permanently unconfigured (handlers surface 501).
func NewUptimeService(apiKey, endpoint string, c cache.Cache) UptimeService {
	if endpoint == "" {
		endpoint = DefaultUptimeRobotEndpoint
	}
	return &uptimeService{
		apiKey:   apiKey,
		endpoint: endpoint,
		cache:    c,
		client:   &http.Client{Timeout: 5 * time.Second},
	}
}

func (s *uptimeService) Status(ctx context.Context) (*UptimeStatus, error) {
	if s.apiKey == "" {
		return nil, apperrors.ErrUptimeNotConfigured
	}

	if raw, _ := s.cache.Get(ctx, uptimeCacheKey); raw != nil {
		var cached UptimeStatus
		if err := json.Unmarshal(raw, &cached); err == nil {
			return &cached, nil
		}
	}

	status, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(status); err == nil {
		_ = s.cache.Set(ctx, uptimeCacheKey, raw, uptimeCacheTTL)
	}
	return status, nil
}

// uptimeRobotResponse mirrors the subset of the vendor payload we read.
type uptimeRobotResponse struct {
	Stat     string `json:"stat"`
	Monitors []struct {
		Status int `json:"status"`
	} `json:"monitors"`
}

func (s *uptimeService) fetch(ctx context.Context) (*UptimeStatus, error) {
	form := url.Values{}
	form.Set("api_key", s.apiKey)
	form.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstream, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: uptime api returned %d", apperrors.ErrUpstream, resp.StatusCode)
	}

	var payload uptimeRobotResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstream, err)
	}
	if payload.Stat != "ok" {
		return nil, fmt.Errorf("%w: uptime api stat %q", apperrors.ErrUpstream, payload.Stat)
	}

	return &UptimeStatus{
		Status:    summarizeMonitors(payload),
		Monitors:  len(payload.Monitors),
		CheckedAt: time.Now().UTC(),
	}, nil
}

// summarizeMonitors folds vendor monitor codes into the public enum.
// UptimeRobot: 2 = up, 8 = seems down, 9 = down; 0/1 are paused/unchecked.
func summarizeMonitors(payload uptimeRobotResponse) string {
	anyUp := false
	anyDegraded := false
	for _, m := range payload.Monitors {
		switch m.Status {
		case 9:
			return "down"
		case 8:
			anyDegraded = true
		case 2:
			anyUp = true
		}
	}
	switch {
	case anyDegraded:
		return "degraded"
	case anyUp:
		return "up"
	default:
		return "unknown"
	}
}
