// Package git keeps a versioned archive of posts. Every admin write is committed
// as a YAML file to a local git repository with optional push to a remote.
package git

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/ssh"
	"gopkg.in/yaml.v3"

	"github.com/umputun/shelf/app/blog"
)

// postsDir is the repository directory holding one file per post
const postsDir = "posts"

// Author represents the author of a git commit.
type Author struct {
	Name  string
	Email string
}

// DefaultAuthor returns the default author for git commits.
func DefaultAuthor() Author {
	return Author{Name: "shelf", Email: "shelf@localhost"}
}

// Revision is a single archived version of a post.
type Revision struct {
	Hash      string     `json:"hash"`
	Timestamp time.Time  `json:"timestamp"`
	Author    string     `json:"author"`
	Operation string     `json:"operation"`
	Post      *blog.Post `json:"post,omitempty"` // nil for deletions
}

// CommitRequest holds parameters for a git commit operation.
type CommitRequest struct {
	Post      blog.Post
	Operation string // create or update
	Author    Author
}

// Config holds git repository configuration
type Config struct {
	Path   string // local repository path
	Branch string // branch name (default: master)
	Remote string // remote name (optional, for push/pull)
	SSHKey string // path to SSH private key (optional, for push)
}

// Store provides the git-backed post archive
type Store struct {
	cfg  Config
	repo *git.Repository
}

// New creates a new git store, initializing or opening the repository
func New(cfg Config) (*Store, error) {
	if cfg.Path == "" {
		return nil, errors.New("git path is required")
	}
	if cfg.Branch == "" {
		cfg.Branch = "master"
	}

	s := &Store{cfg: cfg}
	if err := s.initRepo(); err != nil {
		return nil, fmt.Errorf("failed to init git repo: %w", err)
	}
	return s, nil
}

// initRepo opens existing or creates new git repository
func (s *Store) initRepo() error {
	repo, err := git.PlainOpen(s.cfg.Path)
	if err == nil {
		s.repo = repo
		return s.ensureBranch()
	}
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return s.createNewRepo()
	}
	return fmt.Errorf("failed to open repo: %w", err)
}

// ensureBranch checks out the configured branch, creating it if necessary
func (s *Store) ensureBranch() error {
	wt, err := s.repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get worktree: %w", err)
	}

	branchRef := plumbing.NewBranchReferenceName(s.cfg.Branch)
	if chkErr := wt.Checkout(&git.CheckoutOptions{Branch: branchRef}); chkErr == nil {
		return nil
	}

	head, headErr := s.repo.Head()
	if headErr != nil {
		return fmt.Errorf("failed to get HEAD: %w", headErr)
	}
	if chkErr := wt.Checkout(&git.CheckoutOptions{Branch: branchRef, Hash: head.Hash(), Create: true}); chkErr != nil {
		return fmt.Errorf("failed to checkout branch %s: %w", s.cfg.Branch, chkErr)
	}
	return nil
}

func (s *Store) createNewRepo() error {
	repo, err := git.PlainInit(s.cfg.Path, false)
	if err != nil {
		return fmt.Errorf("failed to init repo: %w", err)
	}
	s.repo = repo

	wt, wtErr := repo.Worktree()
	if wtErr != nil {
		return fmt.Errorf("failed to get worktree: %w", wtErr)
	}

	// posts/.gitkeep gives the initial commit something to hold
	keep := filepath.Join(postsDir, ".gitkeep")
	if err := os.MkdirAll(filepath.Join(s.cfg.Path, postsDir), 0o750); err != nil {
		return fmt.Errorf("failed to create posts dir: %w", err)
	}
	if writeErr := os.WriteFile(filepath.Join(s.cfg.Path, keep), []byte{}, 0o600); writeErr != nil {
		return fmt.Errorf("failed to create .gitkeep: %w", writeErr)
	}
	if _, addErr := wt.Add(keep); addErr != nil {
		return fmt.Errorf("failed to stage .gitkeep: %w", addErr)
	}

	author := DefaultAuthor()
	_, commitErr := wt.Commit("initial commit", &git.CommitOptions{
		Author: &object.Signature{Name: author.Name, Email: author.Email, When: time.Now()},
	})
	if commitErr != nil {
		return fmt.Errorf("failed to create initial commit: %w", commitErr)
	}

	if s.cfg.Branch != "master" {
		head, headErr := repo.Head()
		if headErr != nil {
			return fmt.Errorf("failed to get HEAD: %w", headErr)
		}
		branchRef := plumbing.NewBranchReferenceName(s.cfg.Branch)
		if chkErr := wt.Checkout(&git.CheckoutOptions{Branch: branchRef, Hash: head.Hash(), Create: true}); chkErr != nil {
			return fmt.Errorf("failed to checkout branch %s: %w", s.cfg.Branch, chkErr)
		}
	}
	return nil
}

// Commit writes the post as YAML and commits it. An unchanged post makes no commit.
func (s *Store) Commit(req CommitRequest) error {
	if err := s.validateID(req.Post.ID); err != nil {
		return err
	}
	op := req.Operation
	if op == "" {
		op = "update"
	}

	data, err := yaml.Marshal(req.Post)
	if err != nil {
		return fmt.Errorf("failed to marshal post %s: %w", req.Post.ID, err)
	}

	filePath := idToPath(req.Post.ID)
	fullPath := filepath.Join(s.cfg.Path, filePath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o750); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(fullPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	wt, err := s.repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get worktree: %w", err)
	}
	if _, addErr := wt.Add(filePath); addErr != nil {
		return fmt.Errorf("failed to stage file: %w", addErr)
	}

	status, err := wt.Status()
	if err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}
	if status.IsClean() {
		return nil
	}

	msg := fmt.Sprintf("%s %s\n\ntimestamp: %s\noperation: %s\npost: %s",
		op, req.Post.ID, time.Now().Format(time.RFC3339), op, req.Post.ID)
	if _, commitErr := wt.Commit(msg, &git.CommitOptions{
		Author: &object.Signature{Name: req.Author.Name, Email: req.Author.Email, When: time.Now()},
	}); commitErr != nil {
		return fmt.Errorf("failed to commit: %w", commitErr)
	}
	return nil
}

// Delete removes the post file and commits the deletion.
// A post that was never archived is not an error.
func (s *Store) Delete(id string, author Author) error {
	if err := s.validateID(id); err != nil {
		return err
	}

	filePath := idToPath(id)
	fullPath := filepath.Join(s.cfg.Path, filePath)
	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		return nil
	}
	if err := os.Remove(fullPath); err != nil {
		return fmt.Errorf("failed to remove file: %w", err)
	}

	wt, err := s.repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get worktree: %w", err)
	}
	if _, rmErr := wt.Remove(filePath); rmErr != nil {
		return fmt.Errorf("failed to stage deletion: %w", rmErr)
	}

	msg := fmt.Sprintf("delete %s\n\ntimestamp: %s\noperation: delete\npost: %s", id, time.Now().Format(time.RFC3339), id)
	if _, commitErr := wt.Commit(msg, &git.CommitOptions{
		Author: &object.Signature{Name: author.Name, Email: author.Email, When: time.Now()},
	}); commitErr != nil {
		return fmt.Errorf("failed to commit deletion: %w", commitErr)
	}
	return nil
}

// Push pushes commits to remote repository
func (s *Store) Push() error {
	if s.cfg.Remote == "" {
		return nil // no remote configured
	}
	auth, err := s.auth()
	if err != nil {
		return err
	}

	err = s.repo.Push(&git.PushOptions{
		RemoteName: s.cfg.Remote,
		Auth:       auth,
		RefSpecs: []config.RefSpec{
			config.RefSpec(fmt.Sprintf("refs/heads/%s:refs/heads/%s", s.cfg.Branch, s.cfg.Branch)),
		},
	})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return fmt.Errorf("failed to push: %w", err)
	}
	return nil
}

// Pull fetches and merges from remote repository
func (s *Store) Pull() error {
	if s.cfg.Remote == "" {
		return nil // no remote configured
	}
	auth, err := s.auth()
	if err != nil {
		return err
	}

	wt, err := s.repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get worktree: %w", err)
	}
	pullErr := wt.Pull(&git.PullOptions{
		RemoteName:    s.cfg.Remote,
		Auth:          auth,
		ReferenceName: plumbing.NewBranchReferenceName(s.cfg.Branch),
	})
	if pullErr != nil && !errors.Is(pullErr, git.NoErrAlreadyUpToDate) {
		return fmt.Errorf("failed to pull: %w", pullErr)
	}
	return nil
}

func (s *Store) auth() (transport.AuthMethod, error) {
	if s.cfg.SSHKey == "" {
		return nil, nil
	}
	auth, err := ssh.NewPublicKeysFromFile("git", s.cfg.SSHKey, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load SSH key: %w", err)
	}
	return auth, nil
}

// Head returns the current HEAD commit hash as a short string
func (s *Store) Head() (string, error) {
	ref, err := s.repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}
	return ref.Hash().String()[:7], nil
}

// ReadAll reads every archived post from the working tree, sorted by id.
func (s *Store) ReadAll() ([]blog.Post, error) {
	dir := filepath.Join(s.cfg.Path, postsDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	var res []blog.Post
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		data, readErr := os.ReadFile(filepath.Join(dir, e.Name())) //nolint:gosec // listed from the archive dir
		if readErr != nil {
			return nil, fmt.Errorf("failed to read %s: %w", e.Name(), readErr)
		}
		var p blog.Post
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", e.Name(), err)
		}
		res = append(res, p)
	}
	slices.SortFunc(res, func(a, b blog.Post) int { return strings.Compare(a.ID, b.ID) })
	return res, nil
}

// History returns the archived revisions of a post, newest first.
// limit specifies maximum number of entries to return (0 = unlimited).
func (s *Store) History(id string, limit int) ([]Revision, error) {
	if err := s.validateID(id); err != nil {
		return nil, err
	}

	filePath := idToPath(id)
	logIter, err := s.repo.Log(&git.LogOptions{FileName: &filePath})
	if err != nil {
		return nil, fmt.Errorf("failed to get log: %w", err)
	}
	defer logIter.Close()

	var entries []Revision
	for limit <= 0 || len(entries) < limit {
		commit, err := logIter.Next()
		if err != nil {
			break // end of history
		}
		entry := Revision{
			Hash:      commit.Hash.String()[:7],
			Timestamp: commit.Author.When,
			Author:    commit.Author.Name,
			Operation: parseOperationFromCommit(commit.Message),
		}
		if p, ok := postAt(commit, filePath); ok {
			entry.Post = &p
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// GetRevision returns the post as it was at the given revision.
func (s *Store) GetRevision(id, rev string) (blog.Post, error) {
	if err := s.validateID(id); err != nil {
		return blog.Post{}, err
	}

	hash, err := s.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return blog.Post{}, fmt.Errorf("failed to resolve revision %s: %w", rev, err)
	}
	commit, err := s.repo.CommitObject(*hash)
	if err != nil {
		return blog.Post{}, fmt.Errorf("failed to get commit: %w", err)
	}
	p, ok := postAt(commit, idToPath(id))
	if !ok {
		return blog.Post{}, fmt.Errorf("post %s not found at revision %s", id, rev)
	}
	return p, nil
}

// ReadAllAt returns all posts archived at the given revision, sorted by id.
func (s *Store) ReadAllAt(rev string) ([]blog.Post, error) {
	hash, err := s.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve revision %s: %w", rev, err)
	}
	commit, err := s.repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("failed to get commit: %w", err)
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("failed to get tree: %w", err)
	}

	var res []blog.Post
	err = tree.Files().ForEach(func(f *object.File) error {
		if !strings.HasPrefix(f.Name, postsDir+"/") || !strings.HasSuffix(f.Name, ".yaml") {
			return nil
		}
		content, cErr := f.Contents()
		if cErr != nil {
			return fmt.Errorf("failed to read %s: %w", f.Name, cErr)
		}
		var p blog.Post
		if uErr := yaml.Unmarshal([]byte(content), &p); uErr != nil {
			return fmt.Errorf("failed to parse %s: %w", f.Name, uErr)
		}
		res = append(res, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(res, func(a, b blog.Post) int { return strings.Compare(a.ID, b.ID) })
	return res, nil
}

// postAt decodes the post file from a commit's tree.
func postAt(commit *object.Commit, filePath string) (blog.Post, bool) {
	tree, err := commit.Tree()
	if err != nil {
		return blog.Post{}, false
	}
	file, err := tree.File(filepath.ToSlash(filePath))
	if err != nil {
		return blog.Post{}, false
	}
	content, err := file.Contents()
	if err != nil {
		return blog.Post{}, false
	}
	var p blog.Post
	if err := yaml.Unmarshal([]byte(content), &p); err != nil {
		return blog.Post{}, false
	}
	return p, true
}

// parseOperationFromCommit extracts operation from commit message metadata.
// looks for "operation: <value>" line, or parses first word of commit message.
func parseOperationFromCommit(message string) string {
	for line := range strings.SplitSeq(message, "\n") {
		if op, found := strings.CutPrefix(line, "operation: "); found {
			return op
		}
	}
	if parts := strings.Fields(message); len(parts) > 0 {
		return parts[0]
	}
	return "unknown"
}

// idToPath converts a post id to its archive file, e.g. "go-book" -> "posts/go-book.yaml"
func idToPath(id string) string {
	return filepath.Join(postsDir, id+".yaml")
}

// validateID rejects ids that would leave the posts directory.
func (s *Store) validateID(id string) error {
	if id == "" {
		return errors.New("invalid post id: empty id not allowed")
	}
	if strings.ContainsAny(id, `/\`) {
		return errors.New("invalid post id: path separator not allowed")
	}
	if strings.Contains(id, "..") {
		return errors.New("invalid post id: path traversal not allowed")
	}
	return nil
}
