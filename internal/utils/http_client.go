package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// UserAgent identifies the client in server logs.
const UserAgent = "kundelik-client"

// HTTPClient wraps resty.Client so transport defaults live in one place.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client for baseURL that speaks JSON
// and gives up on a single attempt after timeout. A zero timeout disables
// the limit.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", UserAgent)

	return &HTTPClient{Client: c}
}
