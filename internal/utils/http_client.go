package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client and forwards the trace ID of the request
// context as the X-Trace-ID header.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client for baseURL. A zero timeout leaves resty's
// default.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().SetBaseURL(baseURL)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if traceID, ok := GetTraceIDFromContext(req.Context()); ok {
			req.SetHeader(TraceIDHeader, traceID)
		}
		return nil
	})

	return &HTTPClient{Client: client}
}
