package api

import (
	"context"
	"io"

	"github.com/kadirkilicoglu/PrepAI/internal/domain/user"
)

// AuthResponse is returned by login and register: the bearer token plus the
// profile, persisted together by the caller.
type AuthResponse struct {
	Token string    `json:"token"`
	User  user.User `json:"user"`
}

// Registration is the sign-up payload.
type Registration struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var out AuthResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&out).
		Post("/api/auth/login")
	if err != nil {
		return nil, err
	}
	if err := responseError(resp); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, reg Registration) (*AuthResponse, error) {
	var out AuthResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(reg).
		SetResult(&out).
		Post("/api/auth/register")
	if err != nil {
		return nil, err
	}
	if err := responseError(resp); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile changes the display name and, when avatar is non-nil, the
// profile image. Returns the fresh profile to re-cache.
func (c *Client) UpdateProfile(ctx context.Context, fullName string, avatar io.Reader, avatarName string) (*user.User, error) {
	req := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{"full_name": fullName})
	if avatar != nil {
		req.SetFileReader("avatar", avatarName, avatar)
	}

	var out user.User
	resp, err := req.SetResult(&out).Put("/api/auth/update")
	if err != nil {
		return nil, err
	}
	if err := responseError(resp); err != nil {
		return nil, err
	}
	return &out, nil
}
