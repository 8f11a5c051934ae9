// Package inspect serves an HTTP endpoint that reports how parseurl sees each
// request: the current URL after routing rewrites and the original request-target.
//
//	cfg := inspect.DefaultConfig()
//	cfg.Prefix = "/api"
//	err := inspect.Serve(ctx, cfg)
//
// A request for /api/users?id=1 then answers with a url pathname of /users and an
// originalUrl pathname of /api/users.
package inspect
