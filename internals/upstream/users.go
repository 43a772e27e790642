package upstream

import (
	"context"
	"fmt"
)

func (c *Client) Users(ctx context.Context) ([]User, error) {
	var res struct {
		Data []User `json:"data"`
	}
	if err := c.get(ctx, "/get-user", &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

func (c *Client) UpdateUser(ctx context.Context, id int, u User) error {
	return c.put(ctx, fmt.Sprintf("/get-user/%d", id), u, nil)
}

func (c *Client) DeleteUser(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/get-user/%d", id), nil)
}

func (c *Client) UserCount(ctx context.Context) (int, error) {
	var res struct {
		TotalUsers int `json:"totalUsers"`
	}
	if err := c.get(ctx, "/users/count", &res); err != nil {
		return 0, err
	}
	return res.TotalUsers, nil
}

func (c *Client) NewUsersToday(ctx context.Context) (int, error) {
	var res struct {
		NewUsersToday int `json:"newUsersToday"`
	}
	if err := c.get(ctx, "/users/new-today", &res); err != nil {
		return 0, err
	}
	return res.NewUsersToday, nil
}
