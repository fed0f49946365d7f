// Package health provides liveness and readiness handlers.
//
//	r.Get("/livez", handler.Adapt(health.Liveness[*handler.BaseContext], newContext, onError))
//	r.Get("/healthz", handler.Adapt(
//		health.Readiness[*handler.BaseContext](log, redis.Healthcheck(client)),
//		newContext, onError,
//	))
//
// Checks have the signature func(context.Context) error.
package health
