package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/dusk/app/backup"
	"github.com/umputun/dusk/app/enum"
	"github.com/umputun/dusk/app/server"
	"github.com/umputun/dusk/app/store"
	"github.com/umputun/dusk/app/system"
	"github.com/umputun/dusk/app/term"
	"github.com/umputun/dusk/app/theme"
)

// SharedOptions contains options shared between the terminal commands
type SharedOptions struct {
	DB      string `short:"d" long:"db" env:"DUSK_DB" default:"dusk.db" description:"database URL (sqlite file or postgres://...)"`
	Client  string `short:"c" long:"client" env:"DUSK_CLIENT" default:"local" description:"client id the preference is stored under"`
	NoIcons bool   `long:"no-icons" env:"DUSK_NO_ICONS" description:"do not print the sun/moon glyph"`
	Debug   bool   `long:"dbg" env:"DEBUG" description:"debug mode"`

	out    io.Writer     // status output, stdout if nil
	prober system.Prober // system color scheme source, OS detector if nil
}

// ServerCmd implements the server subcommand
type ServerCmd struct {
	DB        string `short:"d" long:"db" env:"DUSK_DB" default:"dusk.db" description:"database URL (sqlite file or postgres://...)"`
	Persist   string `long:"persist" env:"DUSK_PERSIST" choice:"cookie" choice:"db" default:"cookie" description:"where browser preferences are kept"`
	CacheSize int    `long:"cache-size" env:"DUSK_CACHE_SIZE" default:"1000" description:"max cached preferences in db mode"`

	Server struct {
		Address         string        `long:"address" env:"ADDRESS" default:":8080" description:"server listen address"`
		ReadTimeout     time.Duration `long:"read-timeout" env:"READ_TIMEOUT" default:"5s" description:"read timeout"`
		WriteTimeout    time.Duration `long:"write-timeout" env:"WRITE_TIMEOUT" default:"30s" description:"write timeout"`
		IdleTimeout     time.Duration `long:"idle-timeout" env:"IDLE_TIMEOUT" default:"60s" description:"idle timeout"`
		ShutdownTimeout time.Duration `long:"shutdown-timeout" env:"SHUTDOWN_TIMEOUT" default:"5s" description:"graceful shutdown timeout"`
		BaseURL         string        `long:"base-url" env:"BASE_URL" description:"base URL path for reverse proxy (e.g., /dusk)"`
		SecureCookies   bool          `long:"secure-cookies" env:"SECURE_COOKIES" description:"mark cookies secure (https only)"`
		BodySizeLimit   int64         `long:"body-limit" env:"BODY_LIMIT" default:"65536" description:"max request body size in bytes"`
		RequestsPerSec  int64         `long:"rps" env:"RPS" default:"1000" description:"max concurrent requests"`
		AdminHash       string        `long:"admin-hash" env:"ADMIN_HASH" description:"bcrypt hash of the admin password, enables client listing and the client header"`
	} `group:"server" namespace:"server" env-namespace:"DUSK_SERVER"`

	Debug bool `long:"dbg" env:"DEBUG" description:"debug mode"`

	ctx    context.Context
	cancel context.CancelFunc
}

// Execute runs the server command
func (s *ServerCmd) Execute(_ []string) error {
	setupLogs(s.Debug, os.Stdout)

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
	persist, err := enum.ParsePersist(s.Persist)
	if err != nil {
		return fmt.Errorf("invalid persist mode: %w", err)
	}

	log.Printf("[INFO] starting dusk server %s on %s, persist=%s", revision, s.Server.Address, persist)
	if baseURL != "" {
		log.Printf("[INFO] base URL: %s", baseURL)
	}

	cfg := server.Config{
		Address:         s.Server.Address,
		ReadTimeout:     s.Server.ReadTimeout,
		WriteTimeout:    s.Server.WriteTimeout,
		IdleTimeout:     s.Server.IdleTimeout,
		ShutdownTimeout: s.Server.ShutdownTimeout,
		Version:         revision,
		BaseURL:         baseURL,
		Persist:         persist,
		SecureCookies:   s.Server.SecureCookies,
		BodySizeLimit:   s.Server.BodySizeLimit,
		RequestsPerSec:  s.Server.RequestsPerSec,
		AdminHash:       s.Server.AdminHash,
	}

	var srv *server.Server
	switch persist {
	case enum.PersistDB:
		kvStore, err := store.New(s.DB)
		if err != nil {
			return fmt.Errorf("failed to initialize store: %w", err)
		}
		defer kvStore.Close()

		cached, err := store.NewCached(kvStore, s.CacheSize)
		if err != nil {
			return fmt.Errorf("failed to initialize cache: %w", err)
		}
		defer cached.Close()

		if srv, err = server.New(cached, kvStore, cfg); err != nil {
			return fmt.Errorf("failed to initialize server: %w", err)
		}
	default:
		if srv, err = server.New(nil, nil, cfg); err != nil {
			return fmt.Errorf("failed to initialize server: %w", err)
		}
	}

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// GetCmd implements the get subcommand
type GetCmd struct {
	SharedOptions
}

// Execute prints the current theme
func (g *GetCmd) Execute(_ []string) error {
	setupLogs(g.Debug, os.Stderr)
	ctx := context.Background()
	sess, err := openSession(ctx, g.SharedOptions)
	if err != nil {
		return err
	}
	defer sess.Close()
	return sess.Print(ctx)
}

// SetCmd implements the set subcommand
type SetCmd struct {
	SharedOptions

	Args struct {
		Theme string `positional-arg-name:"theme" required:"true" description:"light, dark or system"`
	} `positional-args:"yes" required:"yes"`
}

// Execute sets and prints the theme
func (s *SetCmd) Execute(_ []string) error {
	setupLogs(s.Debug, os.Stderr)
	ctx := context.Background()
	sess, err := openSession(ctx, s.SharedOptions)
	if err != nil {
		return err
	}
	defer sess.Close()

	if err := sess.ctrl.Set(ctx, s.Args.Theme); err != nil {
		return fmt.Errorf("failed to set theme: %w", err)
	}
	log.Printf("[INFO] theme set to %s for client %q", s.Args.Theme, s.Client)
	return sess.Print(ctx)
}

// ToggleCmd implements the toggle subcommand
type ToggleCmd struct {
	SharedOptions
}

// Execute toggles and prints the theme
func (t *ToggleCmd) Execute(_ []string) error {
	setupLogs(t.Debug, os.Stderr)
	ctx := context.Background()
	sess, err := openSession(ctx, t.SharedOptions)
	if err != nil {
		return err
	}
	defer sess.Close()

	next, err := sess.ctrl.Toggle(ctx)
	if err != nil {
		return fmt.Errorf("failed to toggle theme: %w", err)
	}
	log.Printf("[INFO] theme toggled to %s for client %q", next, t.Client)
	return sess.Print(ctx)
}

// WatchCmd implements the watch subcommand
type WatchCmd struct {
	SharedOptions
	Interval time.Duration `short:"i" long:"interval" env:"DUSK_WATCH_INTERVAL" default:"5s" description:"system color scheme poll interval"`

	ctx context.Context
}

// Execute follows the system color scheme until interrupted
func (w *WatchCmd) Execute(_ []string) error {
	setupLogs(w.Debug, os.Stderr)
	ctx := w.ctx
	if ctx == nil {
		var cancel context.CancelFunc
		ctx, cancel = context.WithCancel(context.Background())
		defer cancel()
		signals(cancel)
	}
	return w.run(ctx)
}

func (w *WatchCmd) run(ctx context.Context) error {
	sess, err := openSession(ctx, w.SharedOptions)
	if err != nil {
		return err
	}
	defer sess.Close()

	if err := sess.Print(ctx); err != nil {
		return err
	}

	watcher := system.NewWatcher(sess.prober, sess.signal, w.Interval)
	go watcher.Run(ctx)

	last := sess.ctrl.State()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-sess.surface.applied:
			st := sess.ctrl.State()
			if st == last {
				continue
			}
			last = st
			if err := sess.Print(ctx); err != nil {
				return err
			}
		}
	}
}

// ExportCmd implements the export subcommand
type ExportCmd struct {
	DB     string `short:"d" long:"db" env:"DUSK_DB" default:"dusk.db" description:"database URL (sqlite file or postgres://...)"`
	Format string `short:"f" long:"format" choice:"json" choice:"yaml" description:"output format, from the file extension if not set"`
	Output string `short:"o" long:"output" description:"output file, stdout if not set"`
	Debug  bool   `long:"dbg" env:"DEBUG" description:"debug mode"`

	out io.Writer // stdout if nil
}

// Execute writes all stored client preferences
func (e *ExportCmd) Execute(_ []string) error {
	setupLogs(e.Debug, os.Stderr)
	kvStore, err := store.New(e.DB)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer kvStore.Close()

	format := e.Format
	if format == "" {
		format = backup.FormatOf(e.Output)
	}

	out := e.out
	if out == nil {
		out = os.Stdout
	}
	if e.Output != "" {
		fh, err := os.Create(e.Output)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", e.Output, err)
		}
		defer fh.Close()
		out = fh
	}

	n, err := backup.Export(context.Background(), kvStore, out, format)
	if err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}
	log.Printf("[INFO] exported %d preferences", n)
	return nil
}

// ImportCmd implements the import subcommand
type ImportCmd struct {
	DB     string `short:"d" long:"db" env:"DUSK_DB" default:"dusk.db" description:"database URL (sqlite file or postgres://...)"`
	Format string `short:"f" long:"format" choice:"json" choice:"yaml" description:"input format, from the file extension if not set"`
	Debug  bool   `long:"dbg" env:"DEBUG" description:"debug mode"`

	Args struct {
		File string `positional-arg-name:"file" required:"true" description:"file written by export"`
	} `positional-args:"yes" required:"yes"`
}

// Execute stores preferences read from a file
func (i *ImportCmd) Execute(_ []string) error {
	setupLogs(i.Debug, os.Stderr)
	fh, err := os.Open(i.Args.File)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", i.Args.File, err)
	}
	defer fh.Close()

	kvStore, err := store.New(i.DB)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer kvStore.Close()

	format := i.Format
	if format == "" {
		format = backup.FormatOf(i.Args.File)
	}
	n, err := backup.Import(context.Background(), kvStore, fh, format)
	if err != nil {
		return fmt.Errorf("failed to import %s: %w", i.Args.File, err)
	}
	log.Printf("[INFO] imported %d preferences from %s", n, i.Args.File)
	return nil
}

// cliSession is a controller bound to the database store, the system color scheme and the terminal.
type cliSession struct {
	kv      *store.Store
	ctrl    *theme.Controller
	surface *notifySurface
	signal  *system.Signal
	prober  system.Prober
}

func openSession(ctx context.Context, o SharedOptions) (*cliSession, error) {
	out := o.out
	if out == nil {
		out = os.Stdout
	}
	prober := o.prober
	if prober == nil {
		prober = system.NewDetector()
	}

	kv, err := store.New(o.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	surface := &notifySurface{Surface: term.NewSurface(out, !o.NoIcons), applied: make(chan struct{}, 1)}
	sig := system.NewSignal(prober.PrefersDark(ctx))
	ctrl := theme.New(store.NewScoped(kv, o.Client), surface, sig)
	if err := ctrl.Init(ctx); err != nil {
		_ = kv.Close()
		return nil, fmt.Errorf("failed to init theme: %w", err)
	}
	return &cliSession{kv: kv, ctrl: ctrl, surface: surface, signal: sig, prober: prober}, nil
}

// Print writes the status line with the theme source and stored preference.
func (s *cliSession) Print(ctx context.Context) error {
	pref, err := s.ctrl.Preference(ctx)
	if err != nil {
		return fmt.Errorf("failed to read preference: %w", err)
	}
	st := s.ctrl.State()
	return s.surface.Print(fmt.Sprintf("%s, preference %s", st.Source, pref))
}

// Close unsubscribes the controller and closes the store.
func (s *cliSession) Close() {
	s.ctrl.Close()
	if err := s.kv.Close(); err != nil {
		log.Printf("[WARN] failed to close store: %v", err)
	}
}

// notifySurface is a terminal surface reporting each completed theme application.
// Icons are updated last, so the notification fires after the state is consistent.
type notifySurface struct {
	*term.Surface
	applied chan struct{}
}

func (n *notifySurface) ShowDarkIcon() {
	n.Surface.ShowDarkIcon()
	n.notify()
}

func (n *notifySurface) ShowLightIcon() {
	n.Surface.ShowLightIcon()
	n.notify()
}

func (n *notifySurface) notify() {
	select {
	case n.applied <- struct{}{}:
	default:
	}
}
