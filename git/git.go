// Package git implements radasync.Committer by shelling out to the git CLI.
package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/fwojciec/radasync"
)

// Ensure Repo implements radasync.Committer at compile time.
var _ radasync.Committer = (*Repo)(nil)

// Repo is a directory inside a git working tree. Commit paths are relative
// to that directory, which need not be the top level.
type Repo struct {
	dir      string
	topLevel string
}

// Open returns the repository containing path. It fails when path is not
// inside a git work tree.
func Open(ctx context.Context, path string) (*Repo, error) {
	dir, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--show-toplevel")
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	output, err := cmd.Output()
	if err != nil {
		return nil, radasync.Errorf(radasync.EINVALID, "%s is not a git work tree: %s", path, strings.TrimSpace(stderr.String()))
	}

	return &Repo{dir: dir, topLevel: strings.TrimSpace(string(output))}, nil
}

// Root returns the directory the repository was opened at.
func (r *Repo) Root() string {
	return r.dir
}

// TopLevel returns the top-level directory of the work tree.
func (r *Repo) TopLevel() string {
	return r.topLevel
}

// Commit stages exactly c.Paths and commits them with the message read from
// c.MessageFile. Other changes in the work tree are left untouched.
func (r *Repo) Commit(ctx context.Context, c *radasync.Commit) error {
	if err := c.Validate(); err != nil {
		return err
	}

	addArgs := append([]string{"add", "-A", "--"}, c.Paths...)
	if err := r.run(ctx, addArgs...); err != nil {
		return err
	}

	commitArgs := []string{"commit", "-q", "-F", c.MessageFile}
	if c.AllowEmpty {
		commitArgs = append(commitArgs, "--allow-empty")
	}
	commitArgs = append(commitArgs, "--")
	commitArgs = append(commitArgs, c.Paths...)
	return r.run(ctx, commitArgs...)
}

func (r *Repo) run(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = r.dir

	output, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("git %s failed: %w\n%s", args[0], err, strings.TrimSpace(string(output)))
	}
	return nil
}
