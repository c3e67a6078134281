package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/mitchellh/go-homedir"

	"github.com/vovakirdan/dreamyroom-guide/internal/config"
	"github.com/vovakirdan/dreamyroom-guide/internal/i18n"
	"github.com/vovakirdan/dreamyroom-guide/internal/registry"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.dreamyroom/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// SSHServerConfigFrom converts the [server] config block.
func SSHServerConfigFrom(cfg config.ServerConfig) SSHServerConfig {
	return SSHServerConfig{
		Address:     cfg.Address,
		HostKeyPath: cfg.HostKey,
		IdleTimeout: cfg.IdleTimeout(),
	}
}

// SSHServer wraps a Wish SSH server for the guide.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	env    registry.Env
	dicts  map[string]*i18n.Dictionary
	logger *log.Logger
}

// NewSSHServer creates a new SSH server. env carries the shared catalog,
// blog and config; the dictionary is chosen per session.
func NewSSHServer(cfg SSHServerConfig, env registry.Env) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "dreamyroom-ssh",
	})

	// Dictionaries are read-only, so every session of a locale shares one.
	dicts := make(map[string]*i18n.Dictionary)
	for _, lang := range i18n.Languages() {
		d, err := i18n.Load(lang, env.Catalog.Len())
		if err != nil {
			return nil, fmt.Errorf("loading %s dictionary: %w", lang, err)
		}
		dicts[lang] = d
	}

	srv := &SSHServer{
		config: cfg,
		env:    env,
		dicts:  dicts,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := homedir.Dir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".dreamyroom", "host_key")
	}
	hostKeyPath, err := homedir.Expand(hostKeyPath)
	if err != nil {
		return nil, fmt.Errorf("cannot expand host key path: %w", err)
	}

	// Ensure host key directory exists
	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			activeterm.Middleware(),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	lang := SessionLang(sshSession.Environ())

	env := s.env
	env.Dict = s.dicts[lang]
	env.Width = pty.Window.Width
	env.Height = pty.Window.Height

	model, err := NewSessionModel(env, "")
	if err != nil {
		s.logger.Error("cannot create session", "user", sshSession.User(), "error", err)
		return nil, nil
	}

	s.logger.Debug("session locale", "user", sshSession.User(), "lang", lang)
	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// SessionLang negotiates a bundled locale from a session's environment.
// LC_ALL wins over LC_MESSAGES, which wins over LANG.
func SessionLang(environ []string) string {
	vars := make(map[string]string, len(environ))
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}
	return i18n.Negotiate(vars["LC_ALL"], vars["LC_MESSAGES"], vars["LANG"])
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
