// Package testhelpers provides testing utilities for gitp, including a
// scene system backed by go-git repositories and custom assertions.
package testhelpers

import (
	"os"
	"testing"
)

// Scene is a temporary repository that is also the working directory.
type Scene struct {
	Dir  string
	Repo *GitRepo
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a repository with an initial commit on main, changes
// into it, and runs setup. Tests using a scene must not run in parallel.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	dir := t.TempDir()
	repo, err := NewGitRepo(dir)
	if err != nil {
		t.Fatalf("Failed to create Git repo: %v", err)
	}
	if err := repo.CreateChangeAndCommit("initial", "init"); err != nil {
		t.Fatalf("Failed to create initial commit: %v", err)
	}

	scene := &Scene{Dir: dir, Repo: repo}

	t.Chdir(dir)

	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}

	t.Cleanup(func() {
		if os.Getenv("DEBUG") == "" {
			_ = os.RemoveAll(dir + "-origin.git")
		}
	})

	return scene
}
