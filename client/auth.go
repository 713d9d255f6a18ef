package client

import (
	"context"
	"net/http"
)

type authResponseWire struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	User         userWire `json:"user"`
}

func (c *Client) Register(ctx context.Context, email, password string) (*User, error) {
	return c.authenticate(ctx, "/auth/register", email, password)
}

func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	return c.authenticate(ctx, "/auth/login", email, password)
}

func (c *Client) authenticate(ctx context.Context, path, email, password string) (*User, error) {
	payload := map[string]string{"email": email, "password": password}

	var resp authResponseWire
	if err := c.do(ctx, http.MethodPost, path, payload, &resp); err != nil {
		return nil, err
	}

	c.SetToken(resp.AccessToken)
	return &User{ID: resp.User.ID, Email: resp.User.Email, Role: resp.User.Role}, nil
}

func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
	c.SetToken("")
	c.cache.Clear()
	return err
}

// CurrentUser resolves the authenticated identity, or ErrUnauthenticated.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	var w userWire
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, &w); err != nil {
		return nil, err
	}
	return &User{ID: w.ID, Email: w.Email, Role: w.Role}, nil
}

func (c *Client) GetProfile(ctx context.Context) (*Profile, error) {
	var w *profileWire
	if err := c.do(ctx, http.MethodGet, "/profiles/me", nil, &w); err != nil {
		return nil, err
	}
	if w == nil {
		// No profile row yet; it appears on first update.
		return nil, nil
	}
	p := profileFromWire(*w)
	return &p, nil
}

type ProfileUpdate struct {
	FirstName  *string
	LastName   *string
	Position   *string
	Department *string
	Manager    *string
}

func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (*Profile, error) {
	payload := updateProfileWire{
		FirstName:  update.FirstName,
		LastName:   update.LastName,
		Position:   update.Position,
		Department: update.Department,
		Manager:    update.Manager,
	}

	var w profileWire
	if err := c.do(ctx, http.MethodPatch, "/profiles/me", payload, &w); err != nil {
		return nil, err
	}
	p := profileFromWire(w)
	return &p, nil
}

func (c *Client) UploadAvatar(ctx context.Context, data []byte, filename string) (string, error) {
	var resp struct {
		AvatarURL string `json:"avatar_url"`
	}
	if err := c.upload(ctx, "/profiles/me/avatar", "avatar", filename, data, &resp); err != nil {
		return "", err
	}
	return resp.AvatarURL, nil
}

func (c *Client) GetContract(ctx context.Context) (*Contract, error) {
	var w contractWire
	if err := c.do(ctx, http.MethodGet, "/contract", nil, &w); err != nil {
		return nil, err
	}
	contract := contractFromWire(w)
	return &contract, nil
}

func (c *Client) SignContract(ctx context.Context, role string) (*Contract, error) {
	payload := map[string]string{"role": role}

	var w contractWire
	if err := c.do(ctx, http.MethodPost, "/contract/sign", payload, &w); err != nil {
		return nil, err
	}
	contract := contractFromWire(w)
	return &contract, nil
}

func (c *Client) RatingScale(ctx context.Context) ([]RatingBand, error) {
	var bands []RatingBand
	if err := c.do(ctx, http.MethodGet, "/contract/rating-scale", nil, &bands); err != nil {
		return nil, err
	}
	return bands, nil
}
