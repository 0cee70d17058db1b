package gitinfo

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

// Adapter implements domain.GitInfo using go-git. The data directory is
// usually nested inside the working tree, so lookups walk up to the
// enclosing repository.
type Adapter struct{}

func New() *Adapter {
	return &Adapter{}
}

func open(path string) (*git.Repository, error) {
	return git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
}

func (g *Adapter) IsGitRepo(path string) bool {
	_, err := open(path)
	return err == nil
}

// CommitHash returns the HEAD commit of the repository enclosing path.
func (g *Adapter) CommitHash(path string) (string, error) {
	repo, err := open(path)
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}

	return head.Hash().String(), nil
}
