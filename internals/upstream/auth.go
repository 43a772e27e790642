package upstream

import "context"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// Login menukar kredensial dengan bearer token + profil user.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	var res struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Token   string `json:"token"`
		User    User   `json:"user"`
	}
	if err := c.post(ctx, "/login", req, &res); err != nil {
		return nil, err
	}
	if !res.Success {
		return nil, &StatusError{Code: 401, Message: res.Message}
	}
	return &LoginResult{Token: res.Token, User: res.User}, nil
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.post(ctx, "/register", req, nil)
}

// CheckUser menanyakan apakah email sudah terpakai (dipanggil saat
// form sign-up kehilangan fokus di field email).
func (c *Client) CheckUser(ctx context.Context, email string) (bool, error) {
	var res struct {
		Exists bool `json:"exists"`
	}
	if err := c.post(ctx, "/check-user", map[string]string{"email": email}, &res); err != nil {
		return false, err
	}
	return res.Exists, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.post(ctx, "/logout", nil, nil)
}

// Me mengambil profil user dari token yang sedang dipakai.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var res struct {
		Success bool `json:"success"`
		Data    User `json:"data"`
	}
	if err := c.get(ctx, "/user/me", &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}
