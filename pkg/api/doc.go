// Package api provides the HTTP server and route handlers.
//
// # Overview
//
// This package wires the domain services behind a gorilla/mux router.
// Handler structs are grouped by concern and register their own routes:
//
//   - AuthHandlers: POST /api/auth/register, /api/auth/login (public)
//   - ProjectHandlers: /api/projects CRUD, design document versions, folders
//   - CatalogHandlers: /api/catalog/blocks list and upsert
//   - RenderHandlers: /api/gemini and /api/ai-designer image generation
//
// Everything under /api except the auth routes requires a bearer token;
// the middleware chain also provides recovery, request IDs, structured
// request logging, CORS, body-size limits and Prometheus metrics.
//
// # Usage
//
//	server := api.NewServer(api.Dependencies{...})
//	http.ListenAndServe(addr, server)
//
// # Related Packages
//
//   - pkg/auth, pkg/projects, pkg/catalog, pkg/render: Domain services
//   - pkg/httputil: Response helpers and middleware
//   - pkg/middleware: Bearer token authentication
package api
