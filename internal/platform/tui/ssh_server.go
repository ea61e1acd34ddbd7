package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/keyfall/internal/core"
	"github.com/vovakirdan/keyfall/internal/registry"
)

const shutdownTimeout = 10 * time.Second

// SSHServerConfig configures the SSH server.
type SSHServerConfig struct {
	Address     string        // host:port to listen on
	HostKeyPath string        // empty means ~/.keyfall/host_key, generated if missing
	IdleTimeout time.Duration // idle sessions are closed after this long

	GameID   string  // registered game every session plays
	TickRate int     // ticks per second in every session
	Options  Options // session model options

	Logger *log.Logger // nil logs to stderr
}

// DefaultSSHServerConfig serves keyfall on :23234.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		GameID:      "keyfall",
		TickRate:    core.DefaultTickRate,
		Options:     Options{ShowHelp: true},
	}
}

// SSHServer serves one independent game per SSH session.
type SSHServer struct {
	cfg    SSHServerConfig
	srv    *ssh.Server
	log    *log.Logger
	active atomic.Int64
}

// NewSSHServer validates cfg and prepares the server. It does not listen
// until ListenAndServe.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	if !registry.Exists(cfg.GameID) {
		return nil, fmt.Errorf("tui: %w %q", registry.ErrUnknownGame, cfg.GameID)
	}

	keyPath, err := resolveHostKey(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	s := &SSHServer{cfg: cfg, log: cfg.Logger}
	if s.log == nil {
		s.log = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "keyfall-ssh",
		})
	}

	// Middlewares run last to first: log, require a terminal, then play.
	s.srv, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(s.newSession),
			activeterm.Middleware(),
			s.logSessions,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("tui: creating ssh server: %w", err)
	}
	return s, nil
}

// resolveHostKey returns the host key location and makes sure its
// directory exists. wish generates the key on first start.
func resolveHostKey(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: locating home directory: %w", err)
		}
		path = filepath.Join(home, ".keyfall", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("tui: creating host key directory: %w", err)
	}
	return path, nil
}

// newSession builds the game and model for one SSH session.
func (s *SSHServer) newSession(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	game, err := registry.Create(s.cfg.GameID)
	if err != nil {
		s.log.Error("creating game", "game", s.cfg.GameID, "err", err)
		wish.Fatalln(sess, "keyfall: game unavailable")
		return nil, nil
	}

	pty, _, _ := sess.Pty()
	rt := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.cfg.TickRate,
	}
	return NewModel(game, rt, s.cfg.Options), []tea.ProgramOption{tea.WithAltScreen()}
}

// logSessions records session start, end and the number of live sessions.
func (s *SSHServer) logSessions(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		live := s.active.Add(1)
		s.log.Info("session started", "user", sess.User(), "remote", sess.RemoteAddr(), "active", live)

		defer func() {
			live := s.active.Add(-1)
			s.log.Info("session ended",
				"user", sess.User(),
				"duration", time.Since(start).Round(time.Second),
				"active", live,
			)
		}()
		next(sess)
	}
}

// ActiveSessions is the number of sessions currently connected.
func (s *SSHServer) ActiveSessions() int64 {
	return s.active.Load()
}

// ListenAndServe serves until ctx is cancelled or the listener fails.
// Cancellation shuts the server down gracefully.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.log.Info("listening", "address", s.cfg.Address, "game", s.cfg.GameID, "tick_rate", s.cfg.TickRate)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("tui: ssh server: %w", err)
	case <-ctx.Done():
		s.log.Info("shutting down", "active", s.ActiveSessions())
		return s.Shutdown()
	}
}

// Shutdown stops accepting sessions and waits up to ten seconds for the
// open ones to finish.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.srv.Shutdown(ctx)
}

// Addr is the configured listen address.
func (s *SSHServer) Addr() string {
	return s.cfg.Address
}
