// Package logger provides structured logging based on Zap.
//
// It produces a configured logger that supports development (console) and
// production (json) encodings and integrates with the Fiber web framework.
//
// # Request correlation
//
// Every incoming request is tagged with a RayID by the rayid middleware.
// WithRayID extracts that id from a Fiber context and attaches it to the
// log entry so all lines for one edit batch can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
