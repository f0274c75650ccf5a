package container

// ── ServiceProvider interface ─────────────────────────────────────────────────

// ServiceProvider groups the declarations of one feature, like a Laravel
// ServiceProvider with register() and boot().
//
// Register is called immediately when the provider is added and must only
// declare things in the catalog. Boot runs after the context is initialized,
// so every bean can be resolved there.
//
//	type BoardServiceProvider struct{ container.BaseProvider }
//
//	func (p *BoardServiceProvider) Register(catalog *container.Catalog) {
//	    catalog.Declare(board.NewService, container.Service)
//	}
//
//	func (p *BoardServiceProvider) Boot(ctx *container.Context) error {
//	    svc, err := container.Resolve[*board.Service](ctx)
//	    ...
//	}
type ServiceProvider interface {
	// Register adds declarations to the catalog.
	Register(catalog *Catalog)

	// Boot is called after the context is initialized.
	Boot(ctx *Context) error
}

// ── BaseProvider ──────────────────────────────────────────────────────────────

// BaseProvider is an embeddable no-op Boot implementation.
type BaseProvider struct{}

func (p *BaseProvider) Boot(_ *Context) error { return nil }

// ── ProviderRegistry ──────────────────────────────────────────────────────────

// ProviderRegistry runs the Register and Boot phases of ServiceProviders.
type ProviderRegistry struct {
	catalog    *Catalog
	providers  []ServiceProvider
	registered map[ServiceProvider]bool
	booted     bool
	ctx        *Context
}

// NewProviderRegistry creates a registry declaring into catalog.
func NewProviderRegistry(catalog *Catalog) *ProviderRegistry {
	return &ProviderRegistry{
		catalog:    catalog,
		registered: make(map[ServiceProvider]bool),
	}
}

// Register adds a provider and calls its Register method. Adding the same
// provider twice is a no-op. A provider added after Boot is booted at once
// against the booted context; its declarations only take effect on the next
// context Init.
func (r *ProviderRegistry) Register(provider ServiceProvider) error {
	if r.registered[provider] {
		return nil
	}
	r.registered[provider] = true

	provider.Register(r.catalog)
	r.providers = append(r.providers, provider)

	if r.booted {
		return provider.Boot(r.ctx)
	}
	return nil
}

// Boot calls Boot on every provider in registration order and stops at the
// first error. Further calls with the same context are no-ops; a different
// context, or one re-initialized after Reset, boots every provider again.
func (r *ProviderRegistry) Boot(ctx *Context) error {
	if r.booted && r.ctx == ctx {
		return nil
	}
	r.Reset()
	for _, provider := range r.providers {
		if err := provider.Boot(ctx); err != nil {
			return err
		}
	}
	r.booted = true
	r.ctx = ctx
	return nil
}

// Reset forgets the booted context so the next Boot runs every provider
// again. Call it whenever the context's singletons are rebuilt.
func (r *ProviderRegistry) Reset() {
	r.booted = false
	r.ctx = nil
}

// Booted returns true if Boot has completed.
func (r *ProviderRegistry) Booted() bool { return r.booted }

// Providers returns the registered providers in registration order.
func (r *ProviderRegistry) Providers() []ServiceProvider { return r.providers }
