package mockapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"
)

// Demo is a running, seeded mock backend.
type Demo struct {
	BaseURL string
	// Token is a session token for DemoOwnerEmail.
	Token string

	srv   *http.Server
	store *Store
}

// StartDemo seeds a fresh store and serves it on addr in the background.
func StartDemo(ctx context.Context, addr, secret string, log *slog.Logger) (*Demo, error) {
	if log == nil {
		log = slog.Default()
	}
	store, err := OpenStore()
	if err != nil {
		return nil, err
	}
	if err := Seed(ctx, store); err != nil {
		_ = store.Close()
		return nil, err
	}
	tokens := NewTokens(secret, 0)
	owner, err := store.OwnerByEmail(ctx, DemoOwnerEmail)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("demo owner: %w", err)
	}
	token, err := tokens.Issue(owner)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("listen %s: %w", addr, err)
	}
	srv := &http.Server{
		Handler:           NewServer(store, tokens, log).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("mockapi serve", slog.Any("error", err))
		}
	}()
	log.Info("mockapi listening", slog.String("addr", ln.Addr().String()))
	return &Demo{BaseURL: "http://" + ln.Addr().String(), Token: token, srv: srv, store: store}, nil
}

func (d *Demo) Close(ctx context.Context) error {
	err := d.srv.Shutdown(ctx)
	if cerr := d.store.Close(); err == nil {
		err = cerr
	}
	return err
}
