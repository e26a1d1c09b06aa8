package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ghfollowers/log"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spudtrooper/goutil/flags"
	"github.com/spudtrooper/goutil/or"
)

var (
	clientStats = flags.Bool("client_stats", "Print client request stats")
)

const (
	defaultBaseURL = "https://api.github.com"
	defaultTimeout = 10 * time.Second

	acceptHeader = "application/vnd.github+json"
	apiVersion   = "2022-11-28"
	userAgent    = "ghfollowers"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	debug      bool
}

func MakeClient(token string, mOpts ...MakeClientOption) (*Client, error) {
	opts := MakeMakeClientOptions(mOpts...)
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errors.Errorf("empty auth token")
	}
	if strings.ContainsAny(token, " \t\r\n") {
		return nil, errors.Errorf("auth token contains whitespace")
	}
	baseURL := or.String(opts.BaseUrl(), defaultBaseURL)
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid base URL %q", baseURL)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.Errorf("invalid base URL %q", baseURL)
	}
	timeout := opts.Timeout()
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(u.String(), "/"),
		token:      token,
		debug:      opts.Debug(),
	}, nil
}

// APIError is a non-200 response from the API.
type APIError struct {
	StatusCode       int    `json:"-"`
	Message          string `json:"message"`
	DocumentationURL string `json:"documentation_url"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("response status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("response status %d", e.StatusCode)
}

func makeAPIError(statusCode int, body []byte) *APIError {
	res := &APIError{StatusCode: statusCode}
	if err := json.Unmarshal(body, res); err != nil {
		return &APIError{StatusCode: statusCode}
	}
	return res
}

type param struct {
	key string
	val interface{}
}

func createRoute(base string, ps ...param) string {
	if len(ps) == 0 {
		return base
	}
	var ss []string
	for _, p := range ps {
		s := fmt.Sprintf("%s=%v", p.key, p.val)
		ss = append(ss, s)
	}
	return fmt.Sprintf("%s?%s", base, strings.Join(ss, "&"))
}

func (c *Client) get(ctx context.Context, route string, result interface{}) error {
	return c.request(ctx, http.MethodGet, route, result)
}

func (c *Client) request(ctx context.Context, method, route string, result interface{}) error {
	url := fmt.Sprintf("%s/%s", c.baseURL, route)
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return errors.Wrapf(err, "creating %s request for %s", method, url)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	doRes, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "requesting %s", url)
	}
	defer doRes.Body.Close()

	if *clientStats {
		statusColor := color.GreenString
		if doRes.StatusCode != http.StatusOK {
			statusColor = color.RedString
		}
		log.Printf("%s %s: %s in %s",
			color.New(color.FgHiWhite).Sprintf("%s", method), route,
			statusColor(doRes.Status),
			color.CyanString(fmt.Sprintf("%v", time.Since(start))))
	}

	data, err := io.ReadAll(doRes.Body)
	if err != nil {
		return errors.Wrapf(err, "reading response from %s", url)
	}

	if c.debug {
		log.Printf("response %s from %q with headers %+v", doRes.Status, route, doRes.Header)
		body := string(data)
		if prettyJSON, err := prettyPrintJSON(data); err == nil {
			body = prettyJSON
		}
		log.Printf("from route %q have response %s", route, body)
	}

	if doRes.StatusCode != http.StatusOK {
		return makeAPIError(doRes.StatusCode, data)
	}

	if err := json.Unmarshal(data, result); err != nil {
		return errors.Wrap(err, "error parsing JSON")
	}

	return nil
}

func prettyPrintJSON(b []byte) (string, error) {
	var prettyJSON bytes.Buffer
	if err := json.Indent(&prettyJSON, b, "", "\t"); err != nil {
		return "", err
	}
	return prettyJSON.String(), nil
}
