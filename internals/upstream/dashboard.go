package upstream

import "context"

func (c *Client) Stats(ctx context.Context) (*OverviewStats, error) {
	var res OverviewStats
	if err := c.get(ctx, "/stats", &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// CategoryDistribution: jumlah exam per kategori, label/value siap
// render tanpa olahan lagi.
func (c *Client) CategoryDistribution(ctx context.Context) ([]CategorySlice, error) {
	var res []CategorySlice
	if err := c.get(ctx, "/category-distribution", &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) ScoreAveragePerMonth(ctx context.Context) ([]MonthScore, error) {
	var res []MonthScore
	if err := c.get(ctx, "/score-average-month", &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) AverageScorePerCategory(ctx context.Context) ([]CategoryScore, error) {
	var res []CategoryScore
	if err := c.get(ctx, "/average-scores-per-category", &res); err != nil {
		return nil, err
	}
	return res, nil
}
