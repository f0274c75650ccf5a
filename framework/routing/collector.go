package routing

import (
	"fmt"

	"github.com/km-arc/go-board/framework/container"
	"go.uber.org/zap"
)

// CollectRoutes builds one route per HTTP mapping declared on controller
// components, binding the controller singleton. Controllers are visited in
// declaration order, mappings in declared order.
//
// Mappings with an unsupported verb or an unknown method are logged and
// skipped. Handler arity is not checked here; a bad signature fails when the
// route is invoked.
func CollectRoutes(ctx *container.Context, logger *zap.Logger) ([]*Route, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("controllers")

	beans, err := ctx.ComponentsWith(container.Controller)
	if err != nil {
		return nil, fmt.Errorf("routing: collect controllers: %w", err)
	}
	logger.Info("found controllers", zap.Int("count", len(beans)))

	var routes []*Route
	for _, bean := range beans {
		for _, m := range bean.Declaration.Mappings() {
			h, err := BindMethod(bean.Instance, m.Method)
			if err != nil {
				logger.Warn("skipping mapping", zap.Stringer("mapping", m), zap.Error(err))
				continue
			}
			route, err := NewRoute(m.Verb, m.Path, h, bean.Type.String()+"."+m.Method)
			if err != nil {
				logger.Warn("skipping mapping", zap.Stringer("mapping", m), zap.Error(err))
				continue
			}
			routes = append(routes, route)
			logger.Info("mapped", zap.Stringer("route", route))
		}
	}
	logger.Info("routes collected", zap.Int("count", len(routes)))
	return routes, nil
}
