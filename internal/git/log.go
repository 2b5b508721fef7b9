package git

import "context"

// Log returns the oneline log for a revision range, most recent first,
// one `<abbreviated-hash> <subject>` entry per line.
func (c *Client) Log(ctx context.Context, revlist string) ([]string, error) {
	return c.runner.Run(ctx, "log", "--no-color", "--oneline", revlist)
}
