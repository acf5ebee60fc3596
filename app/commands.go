package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/shelf/app/blog"
	"github.com/umputun/shelf/app/git"
	"github.com/umputun/shelf/app/seed"
	"github.com/umputun/shelf/app/server"
	"github.com/umputun/shelf/app/server/api"
	"github.com/umputun/shelf/app/store"
	"github.com/umputun/shelf/app/validator"
)

// SharedOptions contains options shared between all commands
type SharedOptions struct {
	DB string `short:"d" long:"db" env:"SHELF_DB" default:"shelf.db" description:"database URL (sqlite file or postgres://...)"`

	Git struct {
		Enabled bool   `long:"enabled" env:"ENABLED" description:"archive post changes to git"`
		Path    string `long:"path" env:"PATH" default:".history" description:"git repository path"`
		Branch  string `long:"branch" env:"BRANCH" default:"master" description:"git branch"`
		Remote  string `long:"remote" env:"REMOTE" description:"git remote name (optional)"`
		SSHKey  string `long:"ssh-key" env:"SSH_KEY" description:"ssh private key for the remote"`
		Push    bool   `long:"push" env:"PUSH" description:"pull and push after each archived change"`
	} `group:"git" namespace:"git" env-namespace:"SHELF_GIT"`

	Debug bool `long:"dbg" env:"DEBUG" description:"debug mode"`
}

func (o SharedOptions) gitConfig() git.Config {
	return git.Config{Path: o.Git.Path, Branch: o.Git.Branch, Remote: o.Git.Remote, SSHKey: o.Git.SSHKey}
}

// ServerCmd implements the server subcommand
type ServerCmd struct {
	SharedOptions

	Server struct {
		Address          string        `long:"address" env:"ADDRESS" default:":8080" description:"server listen address"`
		ReadTimeout      time.Duration `long:"read-timeout" env:"READ_TIMEOUT" default:"5s" description:"read timeout"`
		WriteTimeout     time.Duration `long:"write-timeout" env:"WRITE_TIMEOUT" default:"30s" description:"write timeout"`
		IdleTimeout      time.Duration `long:"idle-timeout" env:"IDLE_TIMEOUT" default:"30s" description:"idle timeout"`
		ShutdownTimeout  time.Duration `long:"shutdown-timeout" env:"SHUTDOWN_TIMEOUT" default:"10s" description:"graceful shutdown timeout"`
		BaseURL          string        `long:"base-url" env:"BASE_URL" description:"base URL path for reverse proxy (e.g., /blog)"`
		Title            string        `long:"title" env:"TITLE" default:"Shelf" description:"site title"`
		PageSize         int           `long:"page-size" env:"PAGE_SIZE" default:"12" description:"posts per page, 0 for unlimited"`
		CacheSize        int           `long:"cache-size" env:"CACHE_SIZE" default:"1000" description:"max cached posts, 0 disables caching"`
		BodySizeLimit    int64         `long:"body-limit" env:"BODY_LIMIT" default:"1048576" description:"max request body size in bytes"`
		RequestsPerSec   int64         `long:"rps" env:"RPS" default:"1000" description:"max requests per second"`
		AdminConcurrency int64         `long:"admin-concurrency" env:"ADMIN_CONCURRENCY" default:"5" description:"max concurrent admin requests"`
	} `group:"server" namespace:"server" env-namespace:"SHELF_SERVER"`

	Admin struct {
		User         string `long:"user" env:"USER" default:"admin" description:"admin user name"`
		PasswordHash string `long:"password-hash" env:"PASSWORD_HASH" description:"bcrypt hash for admin password (enables admin api)"`
	} `group:"admin" namespace:"admin" env-namespace:"SHELF_ADMIN"`

	Seed struct {
		File   string `long:"file" env:"FILE" description:"seed file imported at startup (json, yaml or toml)"`
		Watch  bool   `long:"watch" env:"WATCH" description:"reimport the seed file on change"`
		Verify bool   `long:"verify" env:"VERIFY" description:"reject the seed file if it doesn't match the schema"`
	} `group:"seed" namespace:"seed" env-namespace:"SHELF_SEED"`

	ctx    context.Context
	cancel context.CancelFunc
}

// Execute runs the server command
func (s *ServerCmd) Execute(_ []string) error {
	setupLogs(s.Debug)

	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] run time panic:\n%v", x)
			panic(x)
		}
	}()

	if s.ctx == nil {
		s.ctx, s.cancel = context.WithCancel(context.Background())
		signals(s.cancel)
	}

	return s.run(s.ctx)
}

func (s *ServerCmd) run(ctx context.Context) error {
	baseURL, err := validateBaseURL(s.Server.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}

	log.Printf("[INFO] starting shelf server on %s", s.Server.Address)
	if baseURL != "" {
		log.Printf("[INFO] base URL: %s", baseURL)
	}

	st, err := openStore(s.DB, s.Server.CacheSize)
	if err != nil {
		return err
	}
	defer st.Close()

	if s.Seed.File != "" {
		if s.Seed.Verify {
			if err := verifySeed(s.Seed.File); err != nil {
				return err
			}
		}
		if _, err := seed.ImportFile(ctx, st, s.Seed.File); err != nil {
			return fmt.Errorf("failed to import seed: %w", err)
		}
	}

	// the history service stays a nil interface when the archive is off
	var history api.HistoryService
	if s.Git.Enabled {
		log.Printf("[INFO] git archive enabled, path: %s, branch: %s", s.Git.Path, s.Git.Branch)
		gitStore, gitErr := git.New(s.gitConfig())
		if gitErr != nil {
			return fmt.Errorf("failed to initialize git store: %w", gitErr)
		}
		history = git.NewService(gitStore, s.Git.Push)
	}

	srv, err := server.New(st, validator.NewService(), history, server.Config{
		Address:           s.Server.Address,
		ReadTimeout:       s.Server.ReadTimeout,
		WriteTimeout:      s.Server.WriteTimeout,
		IdleTimeout:       s.Server.IdleTimeout,
		ShutdownTimeout:   s.Server.ShutdownTimeout,
		Version:           revision,
		BaseURL:           baseURL,
		PageSize:          s.Server.PageSize,
		Title:             s.Server.Title,
		AdminUser:         s.Admin.User,
		AdminPasswordHash: s.Admin.PasswordHash,
		SeedFile:          s.Seed.File,
		SeedWatch:         s.Seed.Watch,
		BodySizeLimit:     s.Server.BodySizeLimit,
		RequestsPerSec:    s.Server.RequestsPerSec,
		AdminConcurrency:  s.Server.AdminConcurrency,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// openStore opens the database, wrapped with a cache when cacheSize is positive.
func openStore(dbURL string, cacheSize int) (store.Interface, error) {
	db, err := store.New(dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}
	if cacheSize <= 0 {
		return db, nil
	}
	cached, err := store.NewCached(db, cacheSize)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize cache: %w", err)
	}
	return cached, nil
}

// verifySeed checks a seed file against the document schema.
func verifySeed(path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the operator
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}
	if err := seed.Verify(data, filepath.Ext(path)); err != nil {
		return fmt.Errorf("seed file %s is invalid: %w", path, err)
	}
	return nil
}

// ImportCmd implements the import subcommand
type ImportCmd struct {
	SharedOptions

	File   string `short:"f" long:"file" env:"SHELF_SEED_FILE" required:"true" description:"seed file (json, yaml or toml)"`
	Verify bool   `long:"verify" description:"reject the file if it doesn't match the schema"`
}

// Execute runs the import command
func (c *ImportCmd) Execute(_ []string) error {
	setupLogs(c.Debug)
	if c.Verify {
		if err := verifySeed(c.File); err != nil {
			return err
		}
	}

	st, err := store.New(c.DB)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer st.Close()

	res, err := seed.ImportFile(context.Background(), st, c.File)
	if err != nil {
		return fmt.Errorf("failed to import %s: %w", c.File, err)
	}
	fmt.Printf("imported %d categories, %d posts, skipped %d\n", res.Categories, res.Posts, res.Skipped)
	return nil
}

// RestoreCmd implements the restore subcommand
type RestoreCmd struct {
	SharedOptions

	Rev string `long:"rev" default:"HEAD" description:"git revision to restore (commit/tag/branch)"`
}

// Execute runs the restore command
func (r *RestoreCmd) Execute(_ []string) error {
	setupLogs(r.Debug)
	log.Printf("[INFO] restoring from revision %s", r.Rev)
	log.Printf("[INFO] git path: %s, db: %s", r.Git.Path, r.DB)

	gitStore, err := git.New(r.gitConfig())
	if err != nil {
		return fmt.Errorf("failed to initialize git store: %w", err)
	}

	// pull from remote if configured
	if r.Git.Remote != "" {
		log.Printf("[INFO] pulling from remote %s", r.Git.Remote)
		if pullErr := gitStore.Pull(); pullErr != nil {
			log.Printf("[WARN] pull failed: %v", pullErr)
		}
	}

	posts, err := gitStore.ReadAllAt(r.Rev)
	if err != nil {
		return fmt.Errorf("failed to read posts at revision %s: %w", r.Rev, err)
	}

	st, err := store.New(r.DB)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer st.Close()

	restored, err := restorePosts(context.Background(), st, posts)
	if err != nil {
		return err
	}
	log.Printf("[INFO] restored %d posts from revision %s", restored, r.Rev)
	fmt.Printf("restored %d posts from revision %s\n", restored, r.Rev)
	return nil
}

// restorePosts replaces the stored posts with the archived set. Categories missing
// from the database are created with a name derived from the id.
func restorePosts(ctx context.Context, st store.Interface, posts []blog.Post) (int, error) {
	keep := make(map[string]bool, len(posts))
	for _, p := range posts {
		keep[p.ID] = true
	}

	existing, err := st.ListPosts(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list existing posts: %w", err)
	}
	var removed int
	for _, p := range existing {
		if keep[p.ID] {
			continue
		}
		if delErr := st.DeletePost(ctx, p.ID); delErr != nil {
			log.Printf("[WARN] failed to delete post %s: %v", p.ID, delErr)
			continue
		}
		removed++
	}
	log.Printf("[INFO] removed %d posts missing from the archive", removed)

	var restored int
	for _, p := range posts {
		if err := ensureCategory(ctx, st, p.Category); err != nil {
			return restored, err
		}
		if saveErr := st.SavePost(ctx, p); saveErr != nil {
			log.Printf("[WARN] failed to restore post %s: %v", p.ID, saveErr)
			continue
		}
		restored++
	}
	return restored, nil
}

func ensureCategory(ctx context.Context, st store.Interface, id string) error {
	_, err := st.GetCategory(ctx, id)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("failed to get category %s: %w", id, err)
	}
	c := blog.Category{ID: id, Name: blog.CapitalizeWords(strings.ReplaceAll(id, "-", " "))}
	if err := st.SaveCategory(ctx, c); err != nil {
		return fmt.Errorf("failed to create category %s: %w", id, err)
	}
	log.Printf("[INFO] created missing category %s", id)
	return nil
}

// SchemaCmd implements the schema subcommand
type SchemaCmd struct {
	Output string `short:"o" long:"output" description:"write the schema to a file instead of stdout"`
}

// Execute runs the schema command
func (c *SchemaCmd) Execute(_ []string) error {
	data, err := seed.GenerateSchema()
	if err != nil {
		return fmt.Errorf("failed to generate schema: %w", err)
	}
	if c.Output == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(c.Output, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("failed to write schema: %w", err)
	}
	return nil
}
