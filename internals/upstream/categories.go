package upstream

import (
	"context"
	"fmt"
)

type CategoryPayload struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Categories: endpoint /category membungkus list di dalam halaman
// (data.data), jadi ada satu lapisan ekstra dibanding /courses.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var res struct {
		Data struct {
			Data []Category `json:"data"`
		} `json:"data"`
	}
	if err := c.get(ctx, "/category", &res); err != nil {
		return nil, err
	}
	return res.Data.Data, nil
}

func (c *Client) CreateCategory(ctx context.Context, p CategoryPayload) error {
	return c.post(ctx, "/category", p, nil)
}

func (c *Client) UpdateCategory(ctx context.Context, id int, p CategoryPayload) error {
	return c.put(ctx, fmt.Sprintf("/category/%d", id), p, nil)
}

func (c *Client) DeleteCategory(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/category/%d", id), nil)
}
