package container_test

import (
	"errors"
	"testing"

	"github.com/km-arc/go-board/framework/container"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── stub providers ────────────────────────────────────────────────────────────

type chainProvider struct {
	container.BaseProvider
	registerCalled int
}

func (p *chainProvider) Register(catalog *container.Catalog) {
	p.registerCalled++
	catalog.Declare(newSettings, container.Component)
	catalog.Declare(newStore, container.Repository)
}

type bootingProvider struct {
	booted  int
	store   *store
	bootErr error
}

func (p *bootingProvider) Register(catalog *container.Catalog) {
	catalog.Declare(newService, container.Service)
}

func (p *bootingProvider) Boot(ctx *container.Context) error {
	p.booted++
	if p.bootErr != nil {
		return p.bootErr
	}
	svc, err := container.Resolve[*service](ctx)
	if err != nil {
		return err
	}
	p.store = svc.store
	return nil
}

// ── ProviderRegistry ──────────────────────────────────────────────────────────

func TestProviderRegistry_RegisterDeclaresImmediately(t *testing.T) {
	catalog := container.NewCatalog()
	reg := container.NewProviderRegistry(catalog)
	p := &chainProvider{}

	require.NoError(t, reg.Register(p))

	assert.Equal(t, 1, p.registerCalled)
	assert.Equal(t, 2, catalog.Len())
}

func TestProviderRegistry_DuplicateRegisterIgnored(t *testing.T) {
	catalog := container.NewCatalog()
	reg := container.NewProviderRegistry(catalog)
	p := &chainProvider{}

	require.NoError(t, reg.Register(p))
	require.NoError(t, reg.Register(p))

	assert.Equal(t, 1, p.registerCalled)
	assert.Len(t, reg.Providers(), 1)
}

func TestProviderRegistry_BootResolvesBeans(t *testing.T) {
	catalog := container.NewCatalog()
	reg := container.NewProviderRegistry(catalog)
	booting := &bootingProvider{}
	require.NoError(t, reg.Register(&chainProvider{}))
	require.NoError(t, reg.Register(booting))
	assert.False(t, reg.Booted())

	ctx := initContext(t, catalog)
	require.NoError(t, reg.Boot(ctx))

	assert.True(t, reg.Booted())
	assert.Same(t, container.MustResolve[*store](ctx), booting.store)
}

func TestProviderRegistry_BootIdempotent(t *testing.T) {
	catalog := container.NewCatalog()
	reg := container.NewProviderRegistry(catalog)
	booting := &bootingProvider{}
	require.NoError(t, reg.Register(&chainProvider{}))
	require.NoError(t, reg.Register(booting))
	ctx := initContext(t, catalog)

	require.NoError(t, reg.Boot(ctx))
	require.NoError(t, reg.Boot(ctx))

	assert.Equal(t, 1, booting.booted)
}

func TestProviderRegistry_ResetBootsAgainAfterReinit(t *testing.T) {
	catalog := container.NewCatalog()
	reg := container.NewProviderRegistry(catalog)
	booting := &bootingProvider{}
	require.NoError(t, reg.Register(&chainProvider{}))
	require.NoError(t, reg.Register(booting))
	ctx := initContext(t, catalog)
	require.NoError(t, reg.Boot(ctx))
	first := booting.store

	reg.Reset()
	assert.False(t, reg.Booted())
	require.NoError(t, ctx.Init())
	require.NoError(t, reg.Boot(ctx))

	assert.Equal(t, 2, booting.booted)
	assert.NotSame(t, first, booting.store)
	assert.Same(t, container.MustResolve[*store](ctx), booting.store)
}

func TestProviderRegistry_BootsAgainForNewContext(t *testing.T) {
	catalog := container.NewCatalog()
	reg := container.NewProviderRegistry(catalog)
	booting := &bootingProvider{}
	require.NoError(t, reg.Register(&chainProvider{}))
	require.NoError(t, reg.Register(booting))

	require.NoError(t, reg.Boot(initContext(t, catalog)))
	require.NoError(t, reg.Boot(initContext(t, catalog)))

	assert.Equal(t, 2, booting.booted)
}

func TestProviderRegistry_BootStopsAtFirstError(t *testing.T) {
	catalog := container.NewCatalog()
	reg := container.NewProviderRegistry(catalog)
	failing := &bootingProvider{bootErr: errBoom}
	require.NoError(t, reg.Register(&chainProvider{}))
	require.NoError(t, reg.Register(failing))
	ctx := initContext(t, catalog)

	err := reg.Boot(ctx)
	assert.True(t, errors.Is(err, errBoom))
	assert.False(t, reg.Booted())
}

func TestProviderRegistry_RegisterAfterBootBootsImmediately(t *testing.T) {
	catalog := container.NewCatalog()
	reg := container.NewProviderRegistry(catalog)
	require.NoError(t, reg.Register(&chainProvider{}))
	catalog.Declare(newService, container.Service)
	ctx := initContext(t, catalog)
	require.NoError(t, reg.Boot(ctx))

	late := &bootingProvider{}
	require.NoError(t, reg.Register(late))

	assert.Equal(t, 1, late.booted)
	assert.NotNil(t, late.store)
}

func TestBaseProvider_Boot(t *testing.T) {
	p := &container.BaseProvider{}
	assert.NoError(t, p.Boot(nil))
}
