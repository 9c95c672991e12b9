package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Listener runs one service's HTTP server as an app actor: serve until
// the group context is cancelled, then shut down gracefully.
type Listener struct {
	name   string
	srv    *http.Server
	logger *zap.Logger
}

func NewListener(name, addr string, h http.Handler, logger *zap.Logger) *Listener {
	return &Listener{
		name:   name,
		srv:    &http.Server{Addr: addr, Handler: h},
		logger: logger,
	}
}

func (l *Listener) Run(ctx context.Context) error {
	closed := make(chan error, 1)

	go func() {
		l.logger.Info("http listening",
			zap.String("service", l.name),
			zap.String("addr", l.srv.Addr),
		)
		closed <- l.srv.ListenAndServe()
	}()

	select {
	case err := <-closed:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = l.srv.Shutdown(shutCtx)
		return ctx.Err()
	}
}
