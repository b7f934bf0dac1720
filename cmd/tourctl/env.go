package main

import (
	"fmt"

	"go.uber.org/zap"

	"tourdesk/client"
	"tourdesk/config"
	"tourdesk/dispatch"
	"tourdesk/logger"
	"tourdesk/qcache"
)

// env is the wired-up toolchain every command runs against.
type env struct {
	cfg    config.Config
	log    *zap.Logger
	api    *client.Client
	cache  *qcache.Cache
	submit *dispatch.Dispatcher
}

// newEnv builds the environment. needAuth commands fail early without a
// token; login is the only command that runs unauthenticated.
func newEnv(needAuth bool) (*env, error) {
	cfg := config.Load()
	if needAuth {
		if err := cfg.RequireAuth(); err != nil {
			return nil, err
		}
	} else {
		// a stale exported token must not block the unauthenticated commands
		// (login would otherwise fail its own expiry check)
		cfg.Token = ""
	}

	log, err := logger.FromEnv()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	api, err := client.New(client.Config{
		BaseURL: cfg.APIBaseURL,
		Token:   cfg.Token,
		UserID:  cfg.UserID,
	}, log)
	if err != nil {
		return nil, err
	}

	cache := qcache.New(cfg.RedisAddr, cfg.CacheTTL, log)

	return &env{
		cfg:    cfg,
		log:    log,
		api:    api,
		cache:  cache,
		submit: dispatch.New(api, cache, cfg.UserID, log),
	}, nil
}

func (e *env) close() {
	_ = e.cache.Close()
	_ = e.log.Sync()
}

// messageOf reduces a submission error to the one line shown to the operator.
func messageOf(err error) string {
	return dispatch.Message(err)
}
