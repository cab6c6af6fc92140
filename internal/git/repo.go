package git

import (
	"context"
	"strings"
)

// DetectRepo checks that the client points inside a git working tree
func (c *Client) DetectRepo(ctx context.Context) error {
	_, err := c.run(ctx, "rev-parse", "--is-inside-work-tree")
	return err
}

// TopLevel returns the absolute path of the repository root
func (c *Client) TopLevel(ctx context.Context) (string, error) {
	out, err := c.run(ctx, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}
