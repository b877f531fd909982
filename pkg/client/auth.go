package client

import (
	"context"
	"fmt"
)

// User is the authenticated account profile.
type User struct {
	ID          int64  `json:"id"`
	PhoneNumber string `json:"phone_number"`
	Name        string `json:"name"`
	IsStaff     bool   `json:"is_staff"`
}

// VerifyPhoneResponse carries the session token minted after a successful
// phone verification, plus the resolved user.
type VerifyPhoneResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// VerifyPhone exchanges a phone number and verification token for an API
// session. On success the client adopts the returned token for subsequent
// requests.
func (c *Client) VerifyPhone(ctx context.Context, phoneNumber, idToken string) (*VerifyPhoneResponse, error) {
	if phoneNumber == "" {
		return nil, fmt.Errorf("client: verify phone: phone number is required")
	}
	req := struct {
		PhoneNumber string `json:"phone_number"`
		IDToken     string `json:"id_token"`
	}{PhoneNumber: phoneNumber, IDToken: idToken}

	var resp VerifyPhoneResponse
	if err := c.postJSON(ctx, "/auth/verify-phone/", req, &resp); err != nil {
		return nil, err
	}
	if resp.Token != "" {
		c.SetAuthToken(resp.Token)
	}
	return &resp, nil
}

// Me fetches the profile behind the current token.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.getJSON(ctx, "/auth/me/", &user); err != nil {
		return nil, err
	}
	return &user, nil
}
