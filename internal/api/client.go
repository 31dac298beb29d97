package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"connectlife/internal/auth"
	"connectlife/internal/logging"
)

// Cloud endpoint paths, relative to the API base URL.
const (
	deviceListPath    = "/clife-svc/pu/get_device_status_list"
	propertyListPath  = "/clife-svc/get_property_list"
	staticDataPath    = "/clife-svc/pu/query_static_data"
	deviceControlPath = "/device/pu/property/set"
	selfCheckPath     = "/basic/self_check/info"
	hourPowerPath     = "/clife-svc/pu/get_hour_power"
)

// DefaultTimeout is the default HTTP timeout for cloud requests.
const DefaultTimeout = 30 * time.Second

// Options configures a Client.
type Options struct {
	// BaseURL is the API gateway root, without a trailing slash.
	BaseURL string
	// AppID and AppSecret sign every request. They are the same
	// credentials used for the OAuth2 client.
	AppID     string
	AppSecret string
	// HTTPClient overrides the client used for API requests (tests).
	HTTPClient *http.Client
}

// Client talks to the device cloud. Every request carries the vendor's
// system parameters and an HMAC signature over the request target and
// date. Authentication failures trigger a single token refresh and retry.
type Client struct {
	baseURL    string
	appID      string
	appSecret  string
	session    *auth.Session
	httpClient *http.Client
	sourceID   string
	now        func() time.Time
}

// NewClient creates a cloud client bound to an authenticated session.
func NewClient(opts Options, session *auth.Session) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	now := time.Now
	return &Client{
		baseURL:    opts.BaseURL,
		appID:      opts.AppID,
		appSecret:  opts.AppSecret,
		session:    session,
		httpClient: httpClient,
		// The sourceId identifies this client instance and is stable for
		// the life of the process.
		sourceID: newSourceID(now()),
		now:      now,
	}
}

// ListDevices fetches every device bound to the account with its current
// status.
func (c *Client) ListDevices(ctx context.Context) ([]Device, error) {
	body, err := c.request(ctx, http.MethodGet, deviceListPath, nil)
	if err != nil {
		return nil, err
	}
	var resp deviceListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, NewAPIError("malformed device list response", err)
	}
	logging.Debug("Fetched device list", zap.Int("devices", len(resp.DeviceList)))
	return resp.DeviceList, nil
}

// GetDevice finds one device by PUID in the account's device list.
func (c *Client) GetDevice(ctx context.Context, puid string) (*Device, error) {
	devices, err := c.ListDevices(ctx)
	if err != nil {
		return nil, err
	}
	for i := range devices {
		if devices[i].PUID == puid {
			return &devices[i], nil
		}
	}
	return nil, &APIError{Message: fmt.Sprintf("device not found: %s", puid)}
}

// SetProperties sends a control command setting one or more properties on
// a device. The returned map echoes the accepted key/value pairs.
func (c *Client) SetProperties(ctx context.Context, puid string, properties map[string]any) (map[string]any, error) {
	payload := map[string]any{
		"puid":       puid,
		"properties": properties,
	}
	body, err := c.request(ctx, http.MethodPost, deviceControlPath, payload)
	if err != nil {
		return nil, err
	}
	var resp controlResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, NewAPIError("malformed control response", err)
	}
	return resp.KVMap, nil
}

// PropertyList fetches the property descriptors for a device type.
func (c *Client) PropertyList(ctx context.Context, typeCode, featureCode string) ([]Property, error) {
	payload := map[string]any{
		"deviceTypeCode":    typeCode,
		"deviceFeatureCode": featureCode,
	}
	body, err := c.request(ctx, http.MethodGet, propertyListPath, payload)
	if err != nil {
		return nil, err
	}
	var resp propertyListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, NewAPIError("malformed property list response", err)
	}
	return resp.Properties, nil
}

// StaticData fetches the static configuration data some device features
// publish alongside their live status.
func (c *Client) StaticData(ctx context.Context, puid string) (map[string]any, error) {
	body, err := c.request(ctx, http.MethodPost, staticDataPath, map[string]any{"puid": puid})
	if err != nil {
		return nil, err
	}
	var resp staticDataResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, NewAPIError("malformed static data response", err)
	}
	return resp.Data, nil
}

// HourPower fetches per-hour power consumption for a device on a given
// date (YYYY-MM-DD). Keys of the returned map are hour numbers.
func (c *Client) HourPower(ctx context.Context, date, puid string) (map[string]float64, error) {
	payload := map[string]any{
		"date": date,
		"puid": puid,
	}
	body, err := c.request(ctx, http.MethodPost, hourPowerPath, payload)
	if err != nil {
		return nil, err
	}
	var resp hourPowerResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, NewAPIError("malformed hour power response", err)
	}
	return resp.PowerConsumption, nil
}

// SelfCheck runs the device self check and returns the status keys of any
// failed items.
func (c *Client) SelfCheck(ctx context.Context, puid string) ([]string, error) {
	payload := map[string]any{
		"noRecord": "1",
		"puid":     puid,
	}
	body, err := c.request(ctx, http.MethodPost, selfCheckPath, payload)
	if err != nil {
		return nil, err
	}
	var resp selfCheckResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, NewAPIError("malformed self check response", err)
	}
	keys := make([]string, 0, len(resp.Data.FailedList))
	for _, fault := range resp.Data.FailedList {
		keys = append(keys, fault.StatusKey)
	}
	return keys, nil
}

// request performs one signed cloud call. A 401 response triggers exactly
// one forced token refresh followed by a retry; a second 401 is surfaced
// as an APIError.
func (c *Client) request(ctx context.Context, method, endpoint string, payload map[string]any) ([]byte, error) {
	for attempt := 0; ; attempt++ {
		status, body, err := c.do(ctx, method, endpoint, payload)
		if err != nil {
			return nil, err
		}

		if status == http.StatusUnauthorized && attempt == 0 {
			logging.Debug("Received 401, refreshing token and retrying",
				zap.String("endpoint", endpoint))
			if err := c.session.Refresh(ctx); err != nil {
				return nil, err
			}
			continue
		}
		if status < 200 || status >= 300 {
			return nil, &APIError{
				StatusCode: status,
				Message:    fmt.Sprintf("request to %s failed: %s", endpoint, trimBody(body)),
			}
		}

		var env envelope
		if err := json.Unmarshal(body, &env); err != nil {
			return nil, NewAPIError("response is not valid JSON", err)
		}
		if env.ResultCode != 0 {
			msg := env.Msg
			if msg == "" {
				msg = "unknown error"
			}
			return nil, &APIError{ResultCode: env.ResultCode, Message: msg}
		}
		return body, nil
	}
}

// do builds, signs, and executes a single HTTP request.
func (c *Client) do(ctx context.Context, method, endpoint string, payload map[string]any) (int, []byte, error) {
	token, err := c.session.AccessToken(ctx)
	if err != nil {
		return 0, nil, err
	}

	params := c.systemParams(token)
	for k, v := range payload {
		params[k] = v
	}

	fullURL := c.baseURL + endpoint
	var reqBody []byte

	if method == http.MethodGet {
		// GET carries the access token in a header, everything else in
		// the query string.
		delete(params, "accessToken")
		query := url.Values{}
		for k, v := range params {
			switch val := v.(type) {
			case string:
				query.Set(k, val)
			case int:
				query.Set(k, strconv.Itoa(val))
			default:
				b, err := json.Marshal(val)
				if err != nil {
					return 0, nil, NewAPIError("unencodable query parameter", err)
				}
				query.Set(k, string(b))
			}
		}
		fullURL += "?" + query.Encode()
	} else {
		reqBody, err = json.Marshal(params)
		if err != nil {
			return 0, nil, NewAPIError("unencodable request body", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bytes.NewReader(reqBody))
	if err != nil {
		return 0, nil, NewAPIError("building request failed", err)
	}

	target, err := requestTarget(fullURL)
	if err != nil {
		return 0, nil, NewAPIError("invalid request URL", err)
	}
	date := gmtDate(c.now())
	signature := signHMACSHA256(c.appSecret, signatureInput(c.appID, method, target, date))

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Date", date)
	req.Header.Set(encryptHeader, c.appID)
	req.Header.Set("Digest", bodyDigest(reqBody))
	req.Header.Set("Authorization", authorizationHeader(c.appID, signature))
	if method == http.MethodGet {
		req.Header.Set("accessToken", token)
	}

	logging.LogHTTPRequest(method, fullURL, len(reqBody))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, NewAPIError("HTTP request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, NewAPIError("reading response failed", err)
	}
	logging.LogHTTPResponse(fullURL, resp.StatusCode, len(body))

	return resp.StatusCode, body, nil
}

// systemParams builds the vendor parameters every call must carry.
func (c *Client) systemParams(token string) map[string]any {
	now := c.now()
	params := map[string]any{
		"timeStamp":  strconv.FormatInt(now.UnixMilli(), 10),
		"version":    "8.1",
		"languageId": "1",
		"timezone":   "UTC",
		"randStr":    randString(now),
		"appId":      c.appID,
		"sourceId":   c.sourceID,
		"platformId": 5,
	}
	if token != "" {
		params["accessToken"] = token
	}
	return params
}

// trimBody renders a response body for an error message, truncating long
// payloads.
func trimBody(body []byte) string {
	const max = 200
	s := strings.TrimSpace(string(body))
	if len(s) > max {
		return s[:max] + "..."
	}
	if s == "" {
		return "(empty body)"
	}
	return s
}
