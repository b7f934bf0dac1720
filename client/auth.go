package client

import (
	"context"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}

// Login exchanges credentials for a bearer token. The returned token is not
// installed on this client; build a fresh one with it.
func (c *Client) Login(ctx context.Context, email, password string) (token, userID string, err error) {
	if err := c.wait(ctx); err != nil {
		return "", "", err
	}
	var out loginResponse
	resp, reqErr := c.http.R().
		SetContext(ctx).
		SetBody(loginRequest{Email: email, Password: password}).
		SetResult(&out).
		Post("/api/auth/login")
	if err := apiErr(resp, reqErr); err != nil {
		return "", "", err
	}
	return out.Token, out.UserID, nil
}
