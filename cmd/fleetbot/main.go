// Command fleetbot is the process entry point: it loads settings and the
// account roster, raises the file-descriptor limit toward conn_limit,
// optionally serves Prometheus metrics, and launches one session goroutine
// per account with the same staggered delay the original launch_clients
// used.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"

	"github.com/rotmg-fleet/clientless/internal/config"
	"github.com/rotmg-fleet/clientless/internal/metrics"
	"github.com/rotmg-fleet/clientless/internal/session"
)

func main() {
	settingsPath := flag.String("settings", "config/settings.json", "path to settings.json")
	accountsPath := flag.String("accounts", "config/accounts.json", "path to accounts.json")
	operator := flag.String("operator", "", "in-game name allowed to issue chat commands")
	flag.Parse()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	optimizeRuntime(log)

	settings, err := config.LoadSettings(*settingsPath)
	if err != nil {
		log.Fatal("loading settings", zap.Error(err))
	}
	accounts, err := config.LoadAccounts(*accountsPath)
	if err != nil {
		log.Fatal("loading accounts", zap.Error(err))
	}

	raiseFileLimit(log, settings.ConnLimit)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Info("shutdown signal received")
		cancel()
	}()

	if settings.MetricsPort != 0 {
		go func() {
			if err := metrics.Serve(ctx, settings.MetricsPort); err != nil {
				log.Warn("metrics server stopped", zap.Error(err))
			}
		}()
	}

	log.Info("launching fleet",
		zap.Int("accounts", len(accounts)),
		zap.String("game_version", settings.GameVersion),
	)

	var wg sync.WaitGroup
	for _, acct := range accounts {
		acct := acct
		sess := session.New(acct, settings, *operator, log)
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := sess.Run(ctx); err != nil && ctx.Err() == nil {
				log.Warn("session ended", zap.String("account", sess.Email()), zap.Error(err))
			}
		}()

		select {
		case <-time.After(3 * time.Second):
		case <-ctx.Done():
		}
	}

	wg.Wait()
	log.Info("fleet stopped")
}

// optimizeRuntime matches the teacher's GOMAXPROCS/GOGC startup preamble,
// adapted from one inbound server process to a fleet of outbound sessions.
func optimizeRuntime(log *zap.Logger) {
	if os.Getenv("GOMAXPROCS") == "" {
		runtime.GOMAXPROCS(runtime.NumCPU())
	}
	log.Info("runtime tuned", zap.Int("gomaxprocs", runtime.GOMAXPROCS(0)))
}

// raiseFileLimit raises RLIMIT_NOFILE toward connLimit since each session
// holds one TCP socket plus pipe fds for its worker queues. Failure is
// logged, not fatal — the fleet can still run with fewer concurrent
// sessions than requested.
func raiseFileLimit(log *zap.Logger, connLimit int) {
	if connLimit <= 0 {
		return
	}
	want := uint64(connLimit) * 4
	var rlimit unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_NOFILE, &rlimit); err != nil {
		log.Warn("getrlimit failed", zap.Error(err))
		return
	}
	if rlimit.Cur >= want {
		return
	}
	rlimit.Cur = want
	if rlimit.Max < want {
		rlimit.Cur = rlimit.Max
	}
	if err := unix.Setrlimit(unix.RLIMIT_NOFILE, &rlimit); err != nil {
		log.Warn("raising RLIMIT_NOFILE failed", zap.Error(err), zap.Uint64("wanted", want))
		return
	}
	log.Info("raised RLIMIT_NOFILE", zap.Uint64("cur", rlimit.Cur))
}
