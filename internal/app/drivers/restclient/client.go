// Package restclient is the HTTP driver the dashboard services share. It
// keeps a cookie jar so the clinic's csrftoken and session cookies survive
// across calls, throttles outgoing requests, and decodes JSON bodies.
package restclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"secondheart-dashboard/internal/app/config"
	"secondheart-dashboard/internal/pkg/constvars"
	"secondheart-dashboard/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	limiter    *rate.Limiter
	log        *zap.Logger
}

func NewClient(internalConfig *config.InternalConfig, log *zap.Logger) (*Client, error) {
	baseURL, err := url.Parse(internalConfig.API.BaseURL)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	if internalConfig.API.SessionCookie != "" {
		jar.SetCookies(baseURL, []*http.Cookie{{
			Name:  constvars.CookieSessionID,
			Value: internalConfig.API.SessionCookie,
		}})
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: time.Duration(internalConfig.API.TimeoutInSeconds) * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(internalConfig.API.RequestsPerSecond), internalConfig.API.RequestsPerSecond),
		log:     log,
	}, nil
}

func (c *Client) Get(ctx context.Context, path string, params url.Values, resource string, out interface{}) error {
	return c.do(ctx, constvars.MethodGet, path, params, nil, resource, out)
}

func (c *Client) Post(ctx context.Context, path, resource string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	return c.do(ctx, constvars.MethodPost, path, nil, bytes.NewReader(payload), resource, out)
}

func (c *Client) Delete(ctx context.Context, path, resource string) error {
	return c.do(ctx, constvars.MethodDelete, path, nil, nil, resource, nil)
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, body io.Reader, resource string, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return exceptions.ErrSendHTTPRequest(err)
	}

	endpoint := c.baseURL.String() + path
	if len(params) != 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	if body != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	if method != constvars.MethodGet {
		if token := c.csrfToken(); token != "" {
			req.Header.Set(constvars.HeaderCSRFToken, token)
		} else {
			c.log.Debug("restclient.do no csrftoken cookie held yet",
				zap.String(constvars.LoggingMethodKey, method),
				zap.String(constvars.LoggingEndpointKey, path),
			)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return exceptions.ErrUnexpectedStatus(resp.StatusCode, resource)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return exceptions.ErrDecodeResponse(err, resource)
		}
	}
	return nil
}

// csrfToken reads the anti-forgery token the clinic API set via cookie.
func (c *Client) csrfToken() string {
	for _, cookie := range c.httpClient.Jar.Cookies(c.baseURL) {
		if cookie.Name == constvars.CookieCSRFToken {
			return cookie.Value
		}
	}
	return ""
}
