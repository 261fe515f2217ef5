package dispatch

// OpSpec is the declared call-shape metadata for one operation. The client
// graph carries no structured signature information at runtime, so modules
// publish these tables themselves. The zero value declares an operation
// that takes no parameters.
type OpSpec struct {
	// Params is a human-readable parameter hint. Empty means the operation
	// takes no parameters.
	Params string

	// OptionalRequestParams marks the conventional shape of a single
	// optional request-params object as the only parameter.
	OptionalRequestParams bool
}

// SpecProvider is implemented by modules that declare operation metadata,
// keyed by the exposed (lowerCamel) method name. Modules without it still
// dispatch; their signatures report as unavailable.
type SpecProvider interface {
	OperationSpecs() map[string]OpSpec
}
