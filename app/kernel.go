package app

import (
	"github.com/km-arc/go-board/app/board"
	fwapp "github.com/km-arc/go-board/framework/app"
	"github.com/km-arc/go-board/framework/config"
	"go.uber.org/zap"
)

// New bootstraps the board application: framework providers plus every
// application provider below.
//
//	application, err := app.New()
//	err = application.Run(ctx)
func New(envFiles ...string) (*fwapp.Application, error) {
	application, err := fwapp.New(envFiles...)
	if err != nil {
		return nil, err
	}
	if err := register(application); err != nil {
		return nil, err
	}
	return application, nil
}

// NewWith is New with an explicit configuration and logger.
func NewWith(cfg *config.Config, logger *zap.Logger) (*fwapp.Application, error) {
	application := fwapp.NewWith(cfg, logger)
	if err := register(application); err != nil {
		return nil, err
	}
	return application, nil
}

// ── Application providers ─────────────────────────────────────────────────────

func register(application *fwapp.Application) error {
	return application.Register(&board.ServiceProvider{})
}
