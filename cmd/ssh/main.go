package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/muesli/termenv"

	"github.com/tomz197/backyard/internal/config"
	"github.com/tomz197/backyard/internal/draw"
	"github.com/tomz197/backyard/internal/loop/client"
	yardconfig "github.com/tomz197/backyard/internal/loop/config"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
	maxUsernameLength  = 16
)

func main() {
	logger := config.NewLogger(os.Stderr, "ssh")

	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)
	cfg := yardconfig.FromEnv()
	if err := cfg.Validate(); err != nil {
		logger.Fatal("bad yard config", "err", err)
	}
	logger.Info("SSH config", "host", host, "port", port, "hostKeyPath", hostKeyPath)

	// Every session gets its own yard; sessions stop when this context ends.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sessions := &sessionGroup{}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			yardMiddleware(ctx, sessions, cfg, logger),
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger),
		),
		// Set TCP_NODELAY to reduce latency for key input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("starting SSH server", "addr", net.JoinHostPort(host, port))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("shutting down server")

	// Refuse new yards before stopping the running ones so clients get
	// their terminal back
	sessions.close()
	cancel()
	sessions.wait()

	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	if err := s.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
}

// yardMiddleware runs an independent yard for each SSH session.
func yardMiddleware(ctx context.Context, sessions *sessionGroup, cfg yardconfig.Config, logger *log.Logger) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			pty, winCh, ok := sess.Pty()
			if !ok {
				fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
				return
			}

			if !sessions.add() {
				fmt.Fprintln(sess, "Server is shutting down, try again later.")
				return
			}
			defer sessions.done()

			user := truncate(sess.User(), maxUsernameLength)
			sessLogger := logger.With("user", user)
			sessLogger.Info("new yard session", "term", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

			// Create a terminal size tracker that updates on window changes
			sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
			go func() {
				for win := range winCh {
					sizeTracker.update(win.Width, win.Height)
				}
			}()

			sessCtx, cancel := context.WithCancel(ctx)
			defer cancel()
			go func() {
				// Client went away without pressing q
				<-sess.Context().Done()
				cancel()
			}()

			c, err := client.NewClient(sess, sess, client.Options{
				TermSizeFunc:   sizeTracker.getSize,
				Username:       user,
				Config:         &cfg,
				Logger:         sessLogger,
				Profile:        termenv.TrueColor,
				IdleDisconnect: true,
			})
			if err != nil {
				sessLogger.Error("failed to start yard", "err", err)
				return
			}
			if err := c.Run(sessCtx); err != nil {
				sessLogger.Error("yard error", "err", err)
			}

			y := c.Yard()
			sessLogger.Info("session ended", "day", y.Days.Day, "evicted", y.Particles.Evicted())
			next(sess)
		}
	}
}

// sessionGroup counts running yards. Once closed it admits no new ones,
// so wait never races with a late add.
type sessionGroup struct {
	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

func (g *sessionGroup) add() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return false
	}
	g.wg.Add(1)
	return true
}

func (g *sessionGroup) done() {
	g.wg.Done()
}

func (g *sessionGroup) close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.closed = true
}

func (g *sessionGroup) wait() {
	g.wg.Wait()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
