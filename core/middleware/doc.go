// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the
// handler:
//
//   - RayID: generates a unique request id for every incoming request,
//     injecting it into the context and response headers for tracing.
//
// Session authentication is not middleware here: edit requests carry their
// session token in the body and each feature service resolves identity
// explicitly before touching a map.
package middleware
