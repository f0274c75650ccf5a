package board

import (
	"github.com/km-arc/go-board/framework/config"
	"github.com/km-arc/go-board/framework/container"
	"go.uber.org/zap"
)

// ── ServiceProvider ───────────────────────────────────────────────────────────

// ServiceProvider declares the board components and their routes. In the
// local environment Boot seeds one sample board into an empty store.
type ServiceProvider struct{}

func (p *ServiceProvider) Register(catalog *container.Catalog) {
	catalog.Declare(NewPersistenceConfiguration, container.Configuration).
		Produces("Repository")
	catalog.Declare(NewService, container.Service)
	catalog.Declare(NewController, container.Controller).
		Get("/boards", "ReadBoards").
		Post("/boards", "CreateBoard").
		Get("/boards/{id}", "ReadBoard").
		Put("/boards", "UpdateBoard").
		Delete("/boards/{id}", "DeleteBoard")
}

func (p *ServiceProvider) Boot(ctx *container.Context) error {
	cfg, err := container.Resolve[*config.Config](ctx)
	if err != nil {
		return err
	}
	if !cfg.IsLocal() {
		return nil
	}
	svc, err := container.Resolve[*Service](ctx)
	if err != nil {
		return err
	}
	if len(svc.List()) == 0 {
		svc.Create(CreateRequest{
			Title:   "test title 1",
			Content: "test content 1",
			Author:  "cinnamein",
		})
	}
	return nil
}

// ── PersistenceConfiguration ──────────────────────────────────────────────────

// PersistenceConfiguration produces the board Repository.
type PersistenceConfiguration struct {
	logger *zap.Logger
}

func NewPersistenceConfiguration(logger *zap.Logger) *PersistenceConfiguration {
	return &PersistenceConfiguration{logger: logger}
}

// Repository is the in-memory store.
func (p *PersistenceConfiguration) Repository() Repository {
	p.logger.Info("using in-memory board repository")
	return NewMemoryRepository()
}
