// Package git implements the vcs.System interface on top of go-git.
package git

import (
	"fmt"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/benjaminabbitt/versionator/internal/vcs"
)

// VCS is the git implementation of vcs.System.
type VCS struct {
	dir string
}

// New creates a git VCS rooted at dir. The repository is discovered by
// walking up from dir, the way git itself does.
func New(dir string) *VCS {
	return &VCS{dir: dir}
}

// Name returns "git".
func (g *VCS) Name() string {
	return "git"
}

func (g *VCS) open() (*gogit.Repository, error) {
	return gogit.PlainOpenWithOptions(g.dir, &gogit.PlainOpenOptions{DetectDotGit: true})
}

// IsRepository reports whether dir is inside a git repository.
func (g *VCS) IsRepository() bool {
	_, err := g.open()
	return err == nil
}

// Head returns commit metadata for the current HEAD.
func (g *VCS) Head() (*vcs.Info, error) {
	repo, err := g.open()
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	info := &vcs.Info{Hash: head.Hash().String()}
	if head.Name().IsBranch() {
		info.Branch = head.Name().Short()
	}

	// Worktree status can fail on bare repositories; treat that as clean
	// rather than failing the whole lookup.
	if wt, err := repo.Worktree(); err == nil {
		if status, err := wt.Status(); err == nil {
			info.Dirty = !status.IsClean()
		}
	}

	return info, nil
}

// TagExists reports whether a tag with the given name exists.
func (g *VCS) TagExists(name string) (bool, error) {
	repo, err := g.open()
	if err != nil {
		return false, fmt.Errorf("failed to open git repository: %w", err)
	}

	tags, err := repo.Tags()
	if err != nil {
		return false, fmt.Errorf("failed to list tags: %w", err)
	}

	exists := false
	err = tags.ForEach(func(ref *plumbing.Reference) error {
		if ref.Name().Short() == name {
			exists = true
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to iterate tags: %w", err)
	}
	return exists, nil
}

// CreateTag creates an annotated tag at HEAD, reusing the head commit's
// author as the tagger.
func (g *VCS) CreateTag(name, message string) error {
	repo, err := g.open()
	if err != nil {
		return fmt.Errorf("failed to open git repository: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return fmt.Errorf("failed to read head commit: %w", err)
	}

	_, err = repo.CreateTag(name, head.Hash(), &gogit.CreateTagOptions{
		Message: message,
		Tagger: &object.Signature{
			Name:  commit.Author.Name,
			Email: commit.Author.Email,
			When:  time.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create tag %q: %w", name, err)
	}
	return nil
}

var _ vcs.System = (*VCS)(nil)
