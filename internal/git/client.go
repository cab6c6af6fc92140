package git

import (
	"context"
	"io"
	"os/exec"
	"strings"

	"github.com/rohankatakam/gitprice/internal/errors"
	"github.com/sirupsen/logrus"
)

// Client runs git commands against a single repository.
// It implements both the commit log reader and the diff counter used by billing.
type Client struct {
	binary   string
	repoPath string
	logger   *logrus.Logger
	trace    bool
}

// Option configures a Client
type Option func(*Client)

// WithBinary overrides the git executable (default "git")
func WithBinary(binary string) Option {
	return func(c *Client) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// WithLogger sets the logger used for command tracing
func WithLogger(logger *logrus.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTrace logs the raw output of every git command at debug level
func WithTrace(trace bool) Option {
	return func(c *Client) {
		c.trace = trace
	}
}

// NewClient creates a Client for the repository at repoPath.
// An empty repoPath means the current working directory.
func NewClient(repoPath string, opts ...Option) *Client {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	c := &Client{
		binary:   "git",
		repoPath: repoPath,
		logger:   discard,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RepoPath returns the repository path the client was created with
func (c *Client) RepoPath() string {
	return c.repoPath
}

// run executes git with --no-pager and returns its sanitized stdout
func (c *Client) run(ctx context.Context, args ...string) (string, error) {
	fullArgs := append([]string{"--no-pager"}, args...)
	cmd := exec.CommandContext(ctx, c.binary, fullArgs...)
	cmd.Dir = c.repoPath

	c.logger.WithFields(logrus.Fields{
		"dir":  c.repoPath,
		"args": strings.Join(fullArgs, " "),
	}).Debug("Running git")

	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", errors.ExternalErrorf(err, "git %s failed (stderr: %s)", args[0], strings.TrimSpace(string(exitErr.Stderr))).
				WithContext("args", strings.Join(args, " "))
		}
		return "", errors.ExternalErrorf(err, "git %s failed", args[0]).
			WithContext("args", strings.Join(args, " "))
	}

	text := sanitize(output)
	if c.trace {
		c.logger.WithField("args", strings.Join(args, " ")).Debug(text)
	}
	return text, nil
}

// byteNoise strips NULs, UTF-16 byte order marks and carriage returns that
// show up when git output passes through Windows consoles.
var byteNoise = strings.NewReplacer("\x00", "", "\xff", "", "\xfe", "", "\r", "")

func sanitize(output []byte) string {
	return byteNoise.Replace(string(output))
}
