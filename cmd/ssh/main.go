package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/tomz197/pong/internal/config"
	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/lifecycle"
	"github.com/tomz197/pong/internal/loop"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = ".ssh/pong_host_key"
)

func main() {
	host := config.GetEnv("PONG_SSH_HOST", defaultHost)
	port := config.GetEnv("PONG_SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("PONG_SSH_HOST_KEY", defaultHostKeyPath)
	if config.GetEnvBool("PONG_DEBUG", false) {
		log.SetLevel(log.DebugLevel)
	}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			gameMiddleware,
			activeterm.Middleware(),
			logging.Middleware(),
		),
		// Reduce latency for game input.
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
		log.Fatal("failed to create server", "error", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	log.Info("starting SSH server", "host", host, "port", port)
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Fatal("server error", "error", err)
		}
	}()

	<-done
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		log.Fatal("shutdown error", "error", err)
	}
}

// gameMiddleware runs an independent match for each SSH session.
func gameMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		log.Debug("new game session",
			"user", sess.User(), "terminal", pty.Term,
			"width", pty.Window.Width, "height", pty.Window.Height)

		// The playfield is fixed for the session; later window size
		// changes are ignored, but the channel must be drained.
		go func() {
			for range winCh {
			}
		}()

		stop, err := lifecycle.Start([]lifecycle.Resource{
			{
				Name: "screen",
				Acquire: func() error {
					draw.HideCursor(sess)
					draw.ClearScreen(sess)
					return nil
				},
				Release: func() {
					draw.ShowCursor(sess)
					draw.ClearScreen(sess)
				},
			},
		})
		if err != nil {
			log.Error("session setup failed", "user", sess.User(), "error", err)
			return
		}

		width, height := pty.Window.Width, pty.Window.Height
		runErr := loop.Run(bufio.NewReader(sess), sess, loop.Options{
			TermSize: func() (int, int, error) { return width, height, nil },
		})
		stop()
		if runErr != nil {
			log.Error("game error", "user", sess.User(), "error", runErr)
		}

		log.Debug("session ended", "user", sess.User())
		next(sess)
	}
}
