package api

import (
	"context"
	"net/http"
	"net/url"
)

// Login authenticates against the backend and returns the user with a
// fresh bearer token.
func (c *Client) Login(ctx context.Context, creds Credentials) (UserRecord, error) {
	var user UserRecord
	if err := c.doJSON(ctx, http.MethodPost, "/api/users/auth", nil, "", creds, &user); err != nil {
		return UserRecord{}, err
	}
	return user, nil
}

// Register creates an account and returns the signed-in user
func (c *Client) Register(ctx context.Context, req RegisterRequest) (UserRecord, error) {
	var user UserRecord
	if err := c.doJSON(ctx, http.MethodPost, "/api/users", nil, "", req, &user); err != nil {
		return UserRecord{}, err
	}
	return user, nil
}

// Logout invalidates the server-side session
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.doJSON(ctx, http.MethodPost, "/api/users/logout", nil, token, nil, nil)
}

// UpdateProfile updates the signed-in user's own profile
func (c *Client) UpdateProfile(ctx context.Context, token string, req RegisterRequest) (UserRecord, error) {
	var user UserRecord
	if err := c.doJSON(ctx, http.MethodPut, "/api/users/profile", nil, token, req, &user); err != nil {
		return UserRecord{}, err
	}
	return user, nil
}

// GetUsers lists all users (admin)
func (c *Client) GetUsers(ctx context.Context, token string) ([]UserRecord, error) {
	var users []UserRecord
	if err := c.doJSON(ctx, http.MethodGet, "/api/users", nil, token, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser fetches a single user by ID (admin)
func (c *Client) GetUser(ctx context.Context, token, userID string) (UserRecord, error) {
	var user UserRecord
	err := c.doJSON(ctx, http.MethodGet, "/api/users/"+url.PathEscape(userID), nil, token, nil, &user)
	if err != nil {
		return UserRecord{}, err
	}
	return user, nil
}

// UpdateUser updates a user's record (admin)
func (c *Client) UpdateUser(ctx context.Context, token, userID string, req UpdateUserRequest) (UserRecord, error) {
	var user UserRecord
	err := c.doJSON(ctx, http.MethodPut, "/api/users/"+url.PathEscape(userID), nil, token, req, &user)
	if err != nil {
		return UserRecord{}, err
	}
	return user, nil
}

// DeleteUser removes a user (admin)
func (c *Client) DeleteUser(ctx context.Context, token, userID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/users/"+url.PathEscape(userID), nil, token, nil, nil)
}
