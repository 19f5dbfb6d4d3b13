// Package chatwork is the corporate chat-service adapter: a typed REST
// client for sending messages and managing tasks, webhook signature
// verification, and a per-tenant send rate limiter. The Brain consumes only
// normalized inputs and outputs; the wire format stays in this package.
package chatwork

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"
)

// ErrUpstream marks transient chat-service failures after retries are
// exhausted.
var ErrUpstream = errors.New("chat service unavailable")

// Room is a chat room the bot belongs to.
type Room struct {
	RoomID string `json:"room_id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
}

// Member is a room member.
type Member struct {
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
}

// Task is a chat-service task.
type Task struct {
	TaskID    string     `json:"task_id"`
	RoomID    string     `json:"room_id"`
	Body      string     `json:"body"`
	Status    string     `json:"status"`
	AccountID string     `json:"account_id"`
	LimitTime *time.Time `json:"limit_time,omitempty"`
}

// API is the adapter contract the rest of the system depends on. Every call
// carries the per-tenant API token resolved from the tenant config.
type API interface {
	SendMessage(ctx context.Context, token, roomID, text string) (messageID string, err error)
	CreateTask(ctx context.Context, token, roomID, body string, assigneeAccountIDs []string, deadline *time.Time) ([]string, error)
	RoomMembers(ctx context.Context, token, roomID string) ([]Member, error)
	Rooms(ctx context.Context, token string) ([]Room, error)
	ListTasks(ctx context.Context, token, roomID, assigneeAccountID string) ([]Task, error)
	CompleteTask(ctx context.Context, token, roomID, taskID string) error
}

// Client implements API over HTTP.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *slog.Logger

	sendRate rate.Limit
	mu       sync.Mutex
	limiters map[string]*rate.Limiter // Keyed by token (one per tenant)
}

// NewClient creates a chat-service client. sendRatePerMin caps outbound
// sends per tenant.
func NewClient(baseURL string, timeout time.Duration, sendRatePerMin int) *Client {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		httpc:    &http.Client{Timeout: timeout},
		logger:   slog.Default().With("component", "chat-client"),
		sendRate: rate.Limit(float64(sendRatePerMin) / 60.0),
		limiters: make(map[string]*rate.Limiter),
	}
}

func (c *Client) limiter(token string) *rate.Limiter {
	c.mu.Lock()
	defer c.mu.Unlock()
	l, ok := c.limiters[token]
	if !ok {
		l = rate.NewLimiter(c.sendRate, 5)
		c.limiters[token] = l
	}
	return l
}

// SendMessage posts a message to a room and returns the new message id.
func (c *Client) SendMessage(ctx context.Context, token, roomID, text string) (string, error) {
	if err := c.limiter(token).Wait(ctx); err != nil {
		return "", fmt.Errorf("send rate wait: %w", err)
	}
	form := url.Values{"body": {text}}
	var resp struct {
		MessageID string `json:"message_id"`
	}
	err := c.do(ctx, token, http.MethodPost, "/rooms/"+roomID+"/messages", form, &resp)
	if err != nil {
		return "", err
	}
	return resp.MessageID, nil
}

// CreateTask creates a task for the given assignees and returns task ids.
func (c *Client) CreateTask(ctx context.Context, token, roomID, body string, assigneeAccountIDs []string, deadline *time.Time) ([]string, error) {
	form := url.Values{
		"body":   {body},
		"to_ids": {strings.Join(assigneeAccountIDs, ",")},
	}
	if deadline != nil {
		form.Set("limit", strconv.FormatInt(deadline.Unix(), 10))
		form.Set("limit_type", "time")
	}
	var resp struct {
		TaskIDs []json.Number `json:"task_ids"`
	}
	if err := c.do(ctx, token, http.MethodPost, "/rooms/"+roomID+"/tasks", form, &resp); err != nil {
		return nil, err
	}
	ids := make([]string, len(resp.TaskIDs))
	for i, id := range resp.TaskIDs {
		ids[i] = id.String()
	}
	return ids, nil
}

// RoomMembers lists the members of a room.
func (c *Client) RoomMembers(ctx context.Context, token, roomID string) ([]Member, error) {
	var raw []struct {
		AccountID json.Number `json:"account_id"`
		Name      string      `json:"name"`
		Role      string      `json:"role"`
	}
	if err := c.do(ctx, token, http.MethodGet, "/rooms/"+roomID+"/members", nil, &raw); err != nil {
		return nil, err
	}
	members := make([]Member, len(raw))
	for i, m := range raw {
		members[i] = Member{AccountID: m.AccountID.String(), Name: m.Name, Role: m.Role}
	}
	return members, nil
}

// Rooms lists the rooms the bot account belongs to.
func (c *Client) Rooms(ctx context.Context, token string) ([]Room, error) {
	var raw []struct {
		RoomID json.Number `json:"room_id"`
		Name   string      `json:"name"`
		Type   string      `json:"type"`
	}
	if err := c.do(ctx, token, http.MethodGet, "/rooms", nil, &raw); err != nil {
		return nil, err
	}
	rooms := make([]Room, len(raw))
	for i, r := range raw {
		rooms[i] = Room{RoomID: r.RoomID.String(), Name: r.Name, Type: r.Type}
	}
	return rooms, nil
}

// ListTasks lists open tasks in a room, optionally filtered by assignee.
func (c *Client) ListTasks(ctx context.Context, token, roomID, assigneeAccountID string) ([]Task, error) {
	path := "/rooms/" + roomID + "/tasks?status=open"
	if assigneeAccountID != "" {
		path += "&account_id=" + url.QueryEscape(assigneeAccountID)
	}
	var raw []struct {
		TaskID    json.Number `json:"task_id"`
		Body      string      `json:"body"`
		Status    string      `json:"status"`
		LimitTime int64       `json:"limit_time"`
		Account   struct {
			AccountID json.Number `json:"account_id"`
		} `json:"account"`
	}
	if err := c.do(ctx, token, http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}
	tasks := make([]Task, len(raw))
	for i, t := range raw {
		task := Task{
			TaskID:    t.TaskID.String(),
			RoomID:    roomID,
			Body:      t.Body,
			Status:    t.Status,
			AccountID: t.Account.AccountID.String(),
		}
		if t.LimitTime > 0 {
			lt := time.Unix(t.LimitTime, 0)
			task.LimitTime = &lt
		}
		tasks[i] = task
	}
	return tasks, nil
}

// CompleteTask marks a task done.
func (c *Client) CompleteTask(ctx context.Context, token, roomID, taskID string) error {
	form := url.Values{"body": {"done"}}
	return c.do(ctx, token, http.MethodPut, "/rooms/"+roomID+"/tasks/"+taskID+"/status", form, nil)
}

// do issues one API call with bounded retry on transient failures.
func (c *Client) do(ctx context.Context, token, method, path string, form url.Values, out any) error {
	operation := func() error {
		req, err := c.newRequest(ctx, token, method, path, form)
		if err != nil {
			return backoff.Permanent(err)
		}
		resp, err := c.httpc.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			return err
		}
		defer func() { _ = resp.Body.Close() }()

		body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		if err != nil {
			return err
		}
		switch {
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			return fmt.Errorf("chat api %s %s: status %d", method, path, resp.StatusCode)
		case resp.StatusCode >= 400:
			return backoff.Permanent(fmt.Errorf("chat api %s %s: status %d", method, path, resp.StatusCode))
		}
		if out != nil && len(body) > 0 {
			if err := json.Unmarshal(body, out); err != nil {
				return backoff.Permanent(fmt.Errorf("chat api response decode: %w", err))
			}
		}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(&backoff.ExponentialBackOff{
		InitialInterval:     300 * time.Millisecond,
		RandomizationFactor: 0.5,
		Multiplier:          2,
		MaxInterval:         3 * time.Second,
		MaxElapsedTime:      0,
		Clock:               backoff.SystemClock,
		Stop:                backoff.Stop,
	}, 2), ctx)

	if err := backoff.Retry(operation, policy); err != nil {
		var perm *backoff.PermanentError
		if errors.As(err, &perm) {
			return err
		}
		c.logger.Warn("Chat API retries exhausted", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, token, method, path string, form url.Values) (*http.Request, error) {
	var reqBody io.Reader
	if form != nil {
		reqBody = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-ChatWorkToken", token)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	return req, nil
}
