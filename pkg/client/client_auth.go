// SPDX-FileCopyrightText: 2023 Christoph Mewes
// SPDX-License-Identifier: MIT

package client

import (
	"context"
	"net/http"
)

type loginRequest struct {
	Type     string `json:"type"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Credentials is the interesting part of a successful login response.
type Credentials struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	AuthToken string `json:"auth_token"`
}

// Login performs a "normal" (username/password) login and returns the
// resulting credentials, including the bearer token for future clients.
func (c *Client) Login(ctx context.Context, username string, password string) (*Credentials, error) {
	body := loginRequest{
		Type:     "normal",
		Username: username,
		Password: password,
	}

	creds := &Credentials{}
	if err := c.do(ctx, http.MethodPost, "/auth", nil, body, creds); err != nil {
		return nil, err
	}

	return creds, nil
}
