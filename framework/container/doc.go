// Package container is a small application context: components are declared
// in a Catalog with their constructor and markers, scanned into definitions,
// and built once as singletons with their constructor parameters injected.
//
// # Lifecycle
//
//  1. Declare:  catalog := container.NewCatalog()
//  2. Register: registry.Register(&board.ServiceProvider{})
//  3. Init:     ctx.Init()    scan, register and eagerly build every component
//  4. Boot:     registry.Boot(ctx)
//  5. Close:    ctx.Close()   close io.Closer singletons in reverse order
//
// # Components
//
// A constructor's parameters are its dependencies. It returns the component,
// optionally followed by an error.
//
//	catalog.Declare(board.NewService, container.Service)
//	catalog.Declare(board.NewController, container.Controller).
//	    Get("/boards", "ReadBoards").
//	    Get("/boards/{id}", "ReadBoard")
//
//	// Pre-built value
//	catalog.Supply(cfg, container.Component)
//
// # Markers
//
// Component is the base marker. Configuration, Service, Repository and
// Controller each carry Component; only one level of carrying is honored.
//
// # Factories
//
// Methods named in Produces on a Configuration component are factories: the
// method's result type is registered as a definition, its parameters are the
// dependencies and the owning configuration is built first. A factory shadows
// a component of the same type.
//
//	catalog.Declare(NewWebConfiguration, container.Configuration).
//	    Produces("Codec", "ResponseBuilder")
//
// # Resolving
//
//	svc, err := container.Resolve[*board.Service](ctx)
//	repo := container.MustResolve[board.Repository](ctx)
//
// Unknown types fail with ErrDefinitionNotFound, dependency cycles with
// ErrCircularDependency (the error lists the chain), and constructor errors
// or panics with ErrConstructionFailed.
//
// # Service Providers
//
//	type BoardServiceProvider struct{ container.BaseProvider }
//
//	func (p *BoardServiceProvider) Register(catalog *container.Catalog) {
//	    catalog.Declare(board.NewService, container.Service)
//	}
//
//	registry := container.NewProviderRegistry(catalog)
//	registry.Register(&BoardServiceProvider{})
//	ctx.Init()
//	registry.Boot(ctx)
package container
