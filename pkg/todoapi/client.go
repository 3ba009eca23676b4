package todoapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Touka01/holbertonschool-back-end/pkg/model"
)

const (
	DefaultBaseURL = "https://jsonplaceholder.typicode.com"
	DefaultTimeout = 10 * time.Second

	requestIDHeader = "X-Request-ID"
)

// ErrInvalidID is returned for identifiers that are not positive.
var ErrInvalidID = errors.New("employee id must be a positive integer")

// RequestFailure reports a failed call to the upstream service.
type RequestFailure struct {
	Endpoint   string
	StatusCode int // zero when no response was received
	Err        error
}

func (e *RequestFailure) Error() string {
	return fmt.Sprintf("GET %s: %v", e.Endpoint, e.Err)
}

func (e *RequestFailure) Unwrap() error {
	return e.Err
}

type Client struct {
	BaseURL string
	HTTP    *http.Client
	log     *logrus.Entry
}

// NewClient returns a client for the service at baseURL. An empty baseURL
// selects DefaultBaseURL and a non-positive timeout selects DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration, log *logrus.Entry) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// GetUser fetches the user with the given id.
func (c *Client) GetUser(ctx context.Context, id int) (model.User, error) {
	if id <= 0 {
		return model.User{}, ErrInvalidID
	}
	var user model.User
	if err := c.getJSON(ctx, "/users/"+strconv.Itoa(id), nil, &user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

// GetTasks fetches every to-do item owned by the user with the given id,
// in the order the service returns them.
func (c *Client) GetTasks(ctx context.Context, id int) ([]model.Task, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	query := url.Values{"userId": {strconv.Itoa(id)}}
	var tasks []model.Task
	if err := c.getJSON(ctx, "/todos", query, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &RequestFailure{Endpoint: endpoint, Err: err}
	}
	reqID := uuid.NewString()
	req.Header.Set(requestIDHeader, reqID)
	req.Header.Set("Accept", "application/json")

	log := c.log.WithFields(logrus.Fields{"request_id": reqID, "url": endpoint})
	log.Debug("sending request")

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		log.WithError(err).Debug("request failed")
		return &RequestFailure{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	log.WithFields(logrus.Fields{
		"status":  resp.StatusCode,
		"elapsed": time.Since(start),
	}).Debug("received response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return &RequestFailure{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &RequestFailure{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("failed to decode response json: %w", err),
		}
	}
	return nil
}
