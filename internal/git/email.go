package git

import "context"

// SendEmail dispatches a series via `git send-email` with one --to flag per
// recipient and one --cc flag per cc address, followed by the revision
// range or patch directory. send-email may prompt for confirmation or SMTP
// details, so it runs with the terminal attached instead of through the
// output-capturing path.
func (c *Client) SendEmail(ctx context.Context, to, cc []string, revlistOrPath string) error {
	args := []string{"send-email"}
	for _, address := range to {
		args = append(args, "--to", address)
	}
	for _, address := range cc {
		args = append(args, "--cc", address)
	}
	args = append(args, revlistOrPath)

	return c.runner.RunInteractive(ctx, args...)
}
