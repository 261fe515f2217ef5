// Package dispatch resolves string module/method names to operations on a
// pre-built API client graph.
//
// The registry is built exactly once, at construction, by reflecting over
// the known shape of the client: exported struct-pointer fields are modules,
// and exported methods with the uniform operation signature
// func(context.Context, ...any) (any, error) are methods. Queries after
// construction are plain map lookups; nothing is inspected per call.
//
// All query operations degrade softly on unknown names (false, empty slice,
// empty string). Invoke is the one hard-failing operation: invoking nothing
// has no sensible success value, so it returns *NotFoundError before any
// call attempt. Failures raised by the operation itself are logged and
// propagated unchanged; this layer adds no retry, fallback, or result
// transformation.
package dispatch
