package container_test

import (
	"errors"
	"reflect"
	"sync/atomic"
	"testing"

	"github.com/km-arc/go-board/framework/container"
	"github.com/stretchr/testify/require"
)

// ── fixtures ──────────────────────────────────────────────────────────────────

type settings struct{ Name string }

type store struct{ settings *settings }

type service struct{ store *store }

type handler struct{ service *service }

func newSettings() *settings             { return &settings{Name: "test"} }
func newStore(s *settings) *store        { return &store{settings: s} }
func newService(st *store) *service      { return &service{store: st} }
func newHandler(svc *service) *handler   { return &handler{service: svc} }
func newFailing() (*failing, error)      { return nil, errBoom }
func newPanicking() *panicking           { panic("kaboom") }
func newNeedsMissing(m *missing) *orphan { return &orphan{} }

type (
	failing   struct{}
	panicking struct{}
	missing   struct{}
	orphan    struct{}
)

var errBoom = errors.New("boom")

// self-cycle: selfRef needs itself
type selfRef struct{}

func newSelfRef(*selfRef) *selfRef { return &selfRef{} }

// 3-cycle: cycA -> cycB -> cycC -> cycA
type (
	cycA struct{}
	cycB struct{}
	cycC struct{}
)

func newCycA(*cycB) *cycA { return &cycA{} }
func newCycB(*cycC) *cycB { return &cycB{} }
func newCycC(*cycA) *cycC { return &cycC{} }

// Greeter is produced by a configuration factory.
type Greeter interface{ Greet() string }

type greeter struct{ name string }

func (g greeter) Greet() string { return "hello " + g.name }

type greetingConfiguration struct{ built *atomic.Int32 }

func (c *greetingConfiguration) Greeter(s *settings) Greeter {
	c.built.Add(1)
	return greeter{name: s.Name}
}

type broken struct{}

func (c *greetingConfiguration) Broken() (*broken, error) {
	return nil, errBoom
}

// closer records Close calls into a shared log.
type closer struct {
	name string
	log  *[]string
	err  error
}

func (c *closer) Close() error {
	*c.log = append(*c.log, c.name)
	return c.err
}

// ── helpers ───────────────────────────────────────────────────────────────────

func typeOf[T any]() reflect.Type { return container.TypeOf[T]() }

// chainCatalog declares settings -> store -> service -> handler.
func chainCatalog() *container.Catalog {
	c := container.NewCatalog()
	c.Declare(newSettings, container.Component)
	c.Declare(newStore, container.Repository)
	c.Declare(newService, container.Service)
	c.Declare(newHandler, container.Controller)
	return c
}

// creatorFor scans catalog into a fresh registry and returns a creator on it.
func creatorFor(t *testing.T, catalog *container.Catalog) (*container.Creator, *container.Registry) {
	t.Helper()
	reg := container.NewRegistry()
	reg.RegisterScanResult(container.NewScanner(nil).Scan(catalog))
	return container.NewCreator(reg, nil), reg
}

func initContext(t *testing.T, catalog *container.Catalog) *container.Context {
	t.Helper()
	ctx := container.NewContext(catalog)
	require.NoError(t, ctx.Init())
	return ctx
}
