// Package app wires configuration, logging, the API client, the Telegram
// adapter and the poll loop into one process lifecycle.
package app

import (
	"context"
	"os"
	"strings"

	"github.com/coreos/go-systemd/v22/daemon"

	"hwbot/internal/config"
	"hwbot/internal/poller"
	"hwbot/internal/practicum"
	"hwbot/internal/runtime/supervisor"
	"hwbot/internal/transport/telegram"
	logx "hwbot/pkg/logx"
)

type App struct {
	cfgm *config.Manager
	sup  *supervisor.Supervisor

	logs *logx.Service
	log  logx.Logger

	client  *practicum.Client
	adapter *telegram.Adapter
	poller  *poller.Poller

	cfgSub chan *config.Config
}

// New builds the whole dependency graph. Secrets are constructed once at
// startup and passed in explicitly; nothing below this point reads the
// environment.
func New(cfgPath string, secrets config.Secrets) (*App, error) {
	cfgm := config.NewManager(cfgPath)
	cfg, err := cfgm.Load()
	if err != nil {
		return nil, err
	}

	logs, log := logx.New(logx.Config{
		Level:   cfg.Logging.Level,
		Console: cfg.Logging.Console,
		File: logx.FileConfig{
			Enabled: cfg.Logging.File.Enabled,
			Path:    cfg.Logging.File.Path,
		},
	})
	log = log.With(logx.String("comp", "app"))
	cfgm.SetLogger(logs.Logger().With(logx.String("comp", "config")))

	httpTimeout, err := config.ParseDurationOrDefault("practicum.http_timeout", cfg.Practicum.HTTPTimeout, config.DefaultHTTPTimeout)
	if err != nil {
		return nil, err
	}
	endpoint := strings.TrimSpace(cfg.Practicum.Endpoint)
	if endpoint == "" {
		endpoint = config.DefaultEndpoint
	}
	client, err := practicum.NewClient(practicum.ClientConfig{
		Endpoint: endpoint,
		Token:    secrets.PracticumToken,
		Timeout:  httpTimeout,
	}, logs.Logger().With(logx.String("comp", "practicum")))
	if err != nil {
		return nil, err
	}

	adapter, err := telegram.New(telegram.Config{
		Token:      secrets.TelegramToken,
		ChatID:     secrets.ChatID,
		RatePerSec: cfg.Telegram.RatePerSec,
		Burst:      cfg.Telegram.Burst,
	}, logs.Logger().With(logx.String("comp", "telegram")))
	if err != nil {
		return nil, err
	}

	interval, err := config.ParseDurationOrDefault("practicum.poll_interval", cfg.Practicum.PollInterval, config.DefaultPollInterval)
	if err != nil {
		return nil, err
	}

	p := poller.New(client, adapter, interval, logs.Logger().With(logx.String("comp", "poller")))

	return &App{
		cfgm:    cfgm,
		logs:    logs,
		log:     log,
		client:  client,
		adapter: adapter,
		poller:  p,
	}, nil
}

func (a *App) Start(ctx context.Context) error {
	a.sup = supervisor.New(ctx,
		supervisor.WithLogger(a.logs.Logger().With(logx.String("comp", "supervisor"))),
		supervisor.WithCancelOnError(true),
	)

	a.sup.Go("poller", a.poller.Run)

	// Hot reload is only worth a watcher when the file actually exists
	// (we run fine on built-in defaults without one).
	if _, err := os.Stat(a.cfgm.Path()); err == nil {
		a.cfgSub = a.cfgm.Subscribe(1)
		a.sup.Go("config-watch", a.cfgm.Watch)
		a.sup.Go("config-apply", a.applyLoop)
	}

	// No-op outside systemd.
	_, _ = daemon.SdNotify(false, daemon.SdNotifyReady)
	a.log.Info("started", logx.Duration("poll_interval", a.poller.Interval()))
	return nil
}

// Done is closed when any supervised goroutine fails (or Stop is called).
func (a *App) Done() <-chan struct{} {
	if a.sup == nil {
		closed := make(chan struct{})
		close(closed)
		return closed
	}
	return a.sup.Context().Done()
}

// Err reports the first supervised failure, if any.
func (a *App) Err() error {
	if a.sup == nil {
		return nil
	}
	return a.sup.Err()
}

func (a *App) Stop(ctx context.Context) error {
	_, _ = daemon.SdNotify(false, daemon.SdNotifyStopping)

	var err error
	if a.sup != nil {
		err = a.sup.Stop(ctx)
	}
	if a.cfgSub != nil {
		a.cfgm.Unsubscribe(a.cfgSub)
		a.cfgSub = nil
	}
	a.log.Info("stopped")
	_ = a.logs.Close()
	return err
}

func (a *App) applyLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case cfg, ok := <-a.cfgSub:
			if !ok {
				return nil
			}
			a.apply(cfg)
		}
	}
}

// apply pushes reloadable settings into running components. Secrets, the
// endpoint and HTTP/rate settings are deliberately not reloadable; they need
// a restart.
func (a *App) apply(cfg *config.Config) {
	a.logs.Apply(logx.Config{
		Level:   cfg.Logging.Level,
		Console: cfg.Logging.Console,
		File: logx.FileConfig{
			Enabled: cfg.Logging.File.Enabled,
			Path:    cfg.Logging.File.Path,
		},
	})

	d, err := config.ParseDurationOrDefault("practicum.poll_interval", cfg.Practicum.PollInterval, config.DefaultPollInterval)
	if err != nil {
		a.log.Warn("ignoring reloaded poll interval", logx.Err(err))
	} else {
		a.poller.SetInterval(d)
	}

	a.log.Info("config applied", logx.Duration("poll_interval", a.poller.Interval()))
}
