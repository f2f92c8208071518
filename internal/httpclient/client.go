package httpclient

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/hertz-contrib/obs-opentelemetry/tracing"
)

// Client is a small wrapper over the hertz client shared by the Tika and displaCy collaborators.
// Requests are traced through the global otel provider.
type Client struct {
	hc      *client.Client
	timeout time.Duration
}

// New 创建带超时和链路追踪的 hertz HTTP 客户端
func New(timeout time.Duration) (*Client, error) {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	hc, err := client.NewClient(
		client.WithDialTimeout(5*time.Second),
		client.WithClientReadTimeout(timeout),
		client.WithWriteTimeout(timeout),
	)
	if err != nil {
		return nil, fmt.Errorf("create hertz client: %w", err)
	}
	hc.Use(tracing.ClientMiddleware())

	return &Client{hc: hc, timeout: timeout}, nil
}

// Response is the part of an HTTP response the collaborators care about.
type Response struct {
	StatusCode int
	Body       []byte
}

// Do sends method to uri with body and the given headers.
func (c *Client) Do(ctx context.Context, method, uri string, body []byte, headers map[string]string) (*Response, error) {
	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer protocol.ReleaseRequest(req)
	defer protocol.ReleaseResponse(resp)

	req.SetMethod(method)
	req.SetRequestURI(uri)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if body != nil {
		req.SetBody(body)
	}

	if err := c.hc.DoTimeout(ctx, req, resp, c.timeout); err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, uri, err)
	}

	// resp is released on return, copy the body out
	out := make([]byte, len(resp.Body()))
	copy(out, resp.Body())
	return &Response{StatusCode: resp.StatusCode(), Body: out}, nil
}

// Timeout reports the per-request timeout.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}
