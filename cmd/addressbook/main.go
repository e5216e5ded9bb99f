package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vortex-fintech/addressbook/bot"
	"github.com/vortex-fintech/addressbook/config"
	"github.com/vortex-fintech/addressbook/logger"
	"github.com/vortex-fintech/addressbook/metrics"
	"github.com/vortex-fintech/addressbook/retry"
	"github.com/vortex-fintech/addressbook/store"
	"github.com/vortex-fintech/addressbook/timeutil"
)

const serviceName = "addressbook"

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 1
	}

	log, err := logger.New(serviceName, cfg.Env, cfg.LogOutput)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	defer log.SafeSync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := metrics.New(nil)
	fs := store.NewFileStore(cfg.StorePath, retry.Policy{
		Attempts: cfg.SaveAttempts,
		Delay:    saveDelay(cfg.SaveDelay),
		OnRetry: func(err error, next time.Duration) {
			log.Warnw("save failed, retrying", "path", cfg.StorePath, "error", err, "next", next)
		},
	})

	b, err := fs.Load(ctx)
	if err != nil {
		log.Errorw("cannot load address book", "path", cfg.StorePath, "error", err)
		return 1
	}
	log.Infow("address book loaded", "path", cfg.StorePath, "contacts", b.Len())

	d := bot.NewDispatcher(b, fs,
		bot.WithClock(timeutil.SystemClock{}),
		bot.WithLogger(log),
		bot.WithMetrics(m),
	)

	code := 0
	if err := bot.NewSession(d, bot.ParseFormat(cfg.OutputFormat)).Run(ctx, os.Stdin, os.Stdout); err != nil {
		log.Errorw("session ended with error", "error", err)
		code = 1
	}

	if err := m.WriteTextfile(cfg.MetricsPath); err != nil {
		log.Warnw("cannot write metrics", "path", cfg.MetricsPath, "error", err)
	}
	log.Infow("address book closed", "contacts", b.Len())
	return code
}

// saveDelay maps a configured zero delay to "no wait"; retry.Policy treats
// zero as its default.
func saveDelay(d time.Duration) time.Duration {
	if d == 0 {
		return -1
	}
	return d
}
