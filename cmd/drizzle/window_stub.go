//go:build !ebiten

package main

import (
	"context"
	"errors"

	"drizzle/internal/app"
	"drizzle/internal/log"
	"drizzle/internal/sims/rain"
)

func runWindow(context.Context, *rain.Rain, *app.Config, *log.Logger) error {
	return errors.New("the rain window requires the ebiten build tag; re-run with `go run -tags ebiten ./cmd/drizzle rain` or pass --headless")
}
