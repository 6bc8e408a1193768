// Package vcs defines the narrow view of a version control system that
// version stamping needs: whether a repository is present, and commit
// metadata for suffixes and emitted artifacts.
package vcs

// Info holds commit metadata for the current worktree head.
type Info struct {
	// Hash is the full commit hash of HEAD.
	Hash string

	// Branch is the short branch name, empty on a detached HEAD.
	Branch string

	// Dirty reports whether the worktree has uncommitted changes.
	Dirty bool
}

// ShortHash returns the first n characters of the commit hash.
func (i *Info) ShortHash(n int) string {
	if n <= 0 || n > len(i.Hash) {
		return i.Hash
	}
	return i.Hash[:n]
}

// System is a version control system rooted at some directory.
type System interface {
	// Name returns the VCS identifier (e.g. "git").
	Name() string

	// IsRepository reports whether the working directory is inside a
	// repository of this system.
	IsRepository() bool

	// Head returns commit metadata for HEAD. It fails when there is no
	// repository or the repository has no commits yet.
	Head() (*Info, error)

	// TagExists reports whether a tag with the given name exists.
	TagExists(name string) (bool, error)

	// CreateTag creates an annotated tag at HEAD. It fails when the tag
	// already exists.
	CreateTag(name, message string) error
}
