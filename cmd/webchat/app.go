package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"web-messenger/auth"
	"web-messenger/contract"
	errs "web-messenger/errors"
	"web-messenger/infrastructure/firebase"
	"web-messenger/infrastructure/mock"
	"web-messenger/infrastructure/rest"
	"web-messenger/internal"
	"web-messenger/observability"
	"web-messenger/services"
)

type app struct {
	log     *slog.Logger
	config  internal.Config
	service contract.IMessageService
	stats   *observability.APIStats
	out     io.Writer
}

func newApp(ctx context.Context, log *slog.Logger, config internal.Config, out io.Writer) (*app, error) {
	stats := observability.NewAPIStats()

	var tokens *auth.TokenSource
	if config.Features.Authentication {
		tokens = auth.NewTokenSource(config.APIToken)
	}

	httpTransport, err := rest.NewHTTPTransport(
		log,
		&http.Client{Timeout: config.RequestTimeout},
		config.APIBaseURL, config.Origin,
		tokens, stats,
	)
	if err != nil {
		return nil, err
	}

	var transport contract.ITransport = httpTransport
	if config.MockMode {
		log.Info("Mock mode enabled, message endpoints are served locally")
		transport = mock.NewTransport(log, httpTransport, stats)
	}

	var notifier contract.INotifier
	if !config.MockMode {
		n, err := firebase.NewNotifierFromConfig(ctx, log, config)
		switch {
		case errors.Is(err, errs.ErrNotifierDisabled):
			// real-time messaging is off
		case err != nil:
			log.Warn("Push notifications unavailable", "error", err)
		default:
			notifier = n
		}
	}

	return &app{
		log:     log,
		config:  config,
		service: services.NewMessageService(log, transport, notifier, config.DefaultLimit, config.MaxMessageLength),
		stats:   stats,
		out:     out,
	}, nil
}
