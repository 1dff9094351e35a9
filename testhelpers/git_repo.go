package testhelpers

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

const textFileName = "test.txt"

// GitRepo is a work repository created in-process with go-git.
type GitRepo struct {
	Dir  string
	Repo *git.Repository
}

// NewGitRepo initializes a repository in dir whose initial branch is main.
func NewGitRepo(dir string) (*GitRepo, error) {
	repo, err := git.PlainInitWithOptions(dir, &git.PlainInitOptions{
		InitOptions: git.InitOptions{
			DefaultBranch: plumbing.NewBranchReferenceName("main"),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init repo: %w", err)
	}
	return &GitRepo{Dir: dir, Repo: repo}, nil
}

func signature() *object.Signature {
	return &object.Signature{
		Name:  "Test User",
		Email: "test@example.com",
		When:  time.Now(),
	}
}

// CreateChangeAndCommit writes textValue to a file and commits it.
func (r *GitRepo) CreateChangeAndCommit(textValue string, prefix string) error {
	name := textFileName
	if prefix != "" {
		name = prefix + "_" + textFileName
	}
	if err := os.WriteFile(filepath.Join(r.Dir, name), []byte(textValue), 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	wt, err := r.Repo.Worktree()
	if err != nil {
		return err
	}
	if _, err := wt.Add(name); err != nil {
		return fmt.Errorf("failed to stage %s: %w", name, err)
	}
	if _, err := wt.Commit(textValue, &git.CommitOptions{Author: signature()}); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// CreateAndCheckoutBranch creates name at HEAD and checks it out.
func (r *GitRepo) CreateAndCheckoutBranch(name string) error {
	wt, err := r.Repo.Worktree()
	if err != nil {
		return err
	}
	return wt.Checkout(&git.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(name),
		Create: true,
	})
}

// DetachHead checks out the current commit without a branch.
func (r *GitRepo) DetachHead() error {
	head, err := r.Repo.Head()
	if err != nil {
		return err
	}
	wt, err := r.Repo.Worktree()
	if err != nil {
		return err
	}
	return wt.Checkout(&git.CheckoutOptions{Hash: head.Hash()})
}

// CurrentBranchName returns the short name of HEAD as go-git sees it.
func (r *GitRepo) CurrentBranchName() (string, error) {
	head, err := r.Repo.Head()
	if err != nil {
		return "", err
	}
	return head.Name().Short(), nil
}

// CreateBareRemote creates a bare repository next to the work repository
// and registers it under name.
func (r *GitRepo) CreateBareRemote(name string) (string, error) {
	remoteDir := r.Dir + "-" + name + ".git"
	if _, err := git.PlainInit(remoteDir, true); err != nil {
		return "", fmt.Errorf("failed to init bare remote: %w", err)
	}
	if _, err := r.Repo.CreateRemote(&config.RemoteConfig{
		Name: name,
		URLs: []string{remoteDir},
	}); err != nil {
		return "", fmt.Errorf("failed to add remote: %w", err)
	}
	return remoteDir, nil
}

// RemoteBranchHash returns the commit a branch points to in the bare remote.
func (r *GitRepo) RemoteBranchHash(remoteDir, branch string) (string, error) {
	remote, err := git.PlainOpen(remoteDir)
	if err != nil {
		return "", err
	}
	ref, err := remote.Reference(plumbing.NewBranchReferenceName(branch), true)
	if err != nil {
		return "", err
	}
	return ref.Hash().String(), nil
}

// BranchHash returns the commit a local branch points to.
func (r *GitRepo) BranchHash(branch string) (string, error) {
	ref, err := r.Repo.Reference(plumbing.NewBranchReferenceName(branch), true)
	if err != nil {
		return "", err
	}
	return ref.Hash().String(), nil
}

// UpstreamRemote returns the remote recorded as branch's upstream, reading
// the configuration fresh from disk.
func (r *GitRepo) UpstreamRemote(branch string) (string, error) {
	repo, err := git.PlainOpen(r.Dir)
	if err != nil {
		return "", err
	}
	cfg, err := repo.Config()
	if err != nil {
		return "", err
	}
	b, ok := cfg.Branches[branch]
	if !ok {
		return "", nil
	}
	return b.Remote, nil
}
