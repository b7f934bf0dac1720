// Package client is the REST boundary of the console. One Client is built
// from an explicit Config at startup and passed by reference everywhere; no
// ambient token stores.
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"tourdesk/dehydrate"
	"tourdesk/models"
)

// Config is everything the client needs; read it once, inject it.
type Config struct {
	BaseURL string
	Token   string
	UserID  string
	Timeout time.Duration
	// RPS caps outbound request rate; zero means 5/s.
	RPS float64
}

type Client struct {
	http    *resty.Client
	limiter *rate.Limiter
	logger  *zap.Logger
	userID  string
}

// ErrTokenExpired is returned before any request is attempted with a token
// whose exp claim has passed.
var ErrTokenExpired = fmt.Errorf("client: bearer token expired, log in again")

// New builds a Client. The token's expiry claim is checked up front so a
// stale session fails with a clear message instead of a 401 mid-edit.
func New(cfg Config, logger *zap.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("client: base URL is required")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.RPS == 0 {
		cfg.RPS = 5
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	if cfg.Token != "" {
		if err := checkTokenExpiry(cfg.Token); err != nil {
			return nil, err
		}
	}

	httpc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")
	if cfg.Token != "" {
		httpc.SetAuthToken(cfg.Token)
	}

	return &Client{
		http:    httpc,
		limiter: rate.NewLimiter(rate.Limit(cfg.RPS), 1),
		logger:  logger,
		userID:  cfg.UserID,
	}, nil
}

// UserID returns the operator the client acts for.
func (c *Client) UserID() string { return c.userID }

func checkTokenExpiry(token string) error {
	claims := jwt.MapClaims{}
	// signature is the server's business; we only read the exp claim
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return fmt.Errorf("client: malformed bearer token: %w", err)
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}
	if exp.Before(time.Now()) {
		return ErrTokenExpired
	}
	return nil
}

func (c *Client) wait(ctx context.Context) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("client: rate limit wait: %w", err)
	}
	return nil
}

// GetTour fetches the full record for hydration.
func (c *Client) GetTour(ctx context.Context, id string) (*models.Tour, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	var tour models.Tour
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&tour).
		Get("/api/tours/" + id)
	if err := apiErr(resp, err); err != nil {
		return nil, err
	}
	return &tour, nil
}

// ListTours fetches the operator's tour list.
func (c *Client) ListTours(ctx context.Context) ([]models.Tour, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	var tours []models.Tour
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&tours).
		Get("/api/tours")
	if err := apiErr(resp, err); err != nil {
		return nil, err
	}
	return tours, nil
}

// CreateTour posts a full multipart payload.
func (c *Client) CreateTour(ctx context.Context, p dehydrate.Payload) (*models.Tour, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	var tour models.Tour
	resp, err := c.http.R().
		SetContext(ctx).
		SetMultipartFormData(p.Fields()).
		SetResult(&tour).
		Post("/api/tours")
	if err := apiErr(resp, err); err != nil {
		return nil, err
	}
	c.logger.Info("tour created", zap.String("tourid", tour.TourID))
	return &tour, nil
}

// UpdateTour patches only the changed sections.
func (c *Client) UpdateTour(ctx context.Context, id string, p dehydrate.Payload) (*models.Tour, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	var tour models.Tour
	resp, err := c.http.R().
		SetContext(ctx).
		SetMultipartFormData(p.Fields()).
		SetResult(&tour).
		Patch("/api/tours/" + id)
	if err := apiErr(resp, err); err != nil {
		return nil, err
	}
	c.logger.Info("tour updated",
		zap.String("tourid", id),
		zap.Int("sections", p.Len()))
	return &tour, nil
}

// DeleteTour removes a tour.
func (c *Client) DeleteTour(ctx context.Context, id string) error {
	if err := c.wait(ctx); err != nil {
		return err
	}
	resp, err := c.http.R().
		SetContext(ctx).
		Delete("/api/tours/" + id)
	return apiErr(resp, err)
}
