package api

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// FetchAll GETs the endpoints concurrently and returns the responses in the
// same order. The first failure cancels the remaining requests.
func (c *Client) FetchAll(ctx context.Context, endpoints ...string) ([]*Response, error) {
	out := make([]*Response, len(endpoints))

	g, gctx := errgroup.WithContext(ctx)
	for i, endpoint := range endpoints {
		g.Go(func() error {
			resp, err := c.Get(gctx, endpoint)
			if err != nil {
				return err
			}
			out[i] = resp
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
