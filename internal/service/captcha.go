package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "rootdex/internal/errors"
)

// DefaultTurnstileEndpoint is Cloudflare's siteverify URL.
const DefaultTurnstileEndpoint = "https://challenges.cloudflare.com/turnstile/v0/siteverify"

// CaptchaVerifier checks a client-solved challenge token.
type CaptchaVerifier interface {
	// Verify returns nil when the token passes, or when verification is
	// disabled because no secret is configured.
	Verify(ctx context.Context, token, remoteIP string) error
}

type turnstileVerifier struct {
	secret   string
	endpoint string
	client   *http.Client
}

// NewTurnstileVerifier creates a Turnstile verifier. An empty secret
// disables verification entirely.
func NewTurnstileVerifier(secret, endpoint string) CaptchaVerifier {
	if endpoint == "" {
		endpoint = DefaultTurnstileEndpoint
	}
	return &turnstileVerifier{
		secret:   secret,
		endpoint: endpoint,
		client:   &http.Client{Timeout: 4 * time.Second},
	}
}

func (v *turnstileVerifier) Verify(ctx context.Context, token, remoteIP string) error {
	if v.secret == "" {
		return nil
	}
	if token == "" {
		return apperrors.ErrCaptchaFailed
	}

	form := url.Values{}
	form.Set("secret", v.secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrUpstream, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrUpstream, err)
	}
	defer resp.Body.Close()

	var body struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrUpstream, err)
	}
	if !body.Success {
		return apperrors.ErrCaptchaFailed
	}
	return nil
}
