// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - RayID: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//   - Access: Reports every completed request, with its final status, to a
//     logger.RequestLogger.
//   - CORS: Adds permissive cross-origin headers to every response and answers
//     preflight requests.
//   - Serial: Runs handlers one at a time.
//
// These components are registered globally by server.NewApp.
package middleware
