package dispatch

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"unicode"

	"github.com/apicall-dev/apicall/internal/ctxlog"
)

// transportField is the reserved client property carrying the wire
// transport. It is never exposed as a module.
const transportField = "Transport"

// operationFunc is the uniform call shape every remote operation has.
// Methods with any other signature are invisible to discovery.
type operationFunc = func(context.Context, ...any) (any, error)

type operation struct {
	fn   operationFunc
	spec *OpSpec
}

type module struct {
	ops map[string]operation
}

// Dispatcher answers existence queries, produces sorted listings, and
// invokes operations on the client graph it was built over. It holds no
// mutable state after construction and is safe for concurrent use.
type Dispatcher struct {
	modules map[string]*module
}

// New builds a Dispatcher over the client graph. Exported struct-pointer
// fields of the client become modules, except the reserved Transport field;
// unexported and scalar fields are never visible. allow, when non-empty,
// restricts visible modules to the listed names, compared case-insensitively.
func New(client any, allow []string) *Dispatcher {
	d := &Dispatcher{modules: make(map[string]*module)}

	allowed := make(map[string]struct{}, len(allow))
	for _, name := range allow {
		allowed[strings.ToLower(name)] = struct{}{}
	}

	v := reflect.ValueOf(client)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return d
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return d
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() || field.Name == transportField {
			continue
		}
		fv := v.Field(i)
		if !isComposite(fv) {
			continue
		}
		name := lowerFirst(field.Name)
		if len(allowed) > 0 {
			if _, ok := allowed[strings.ToLower(name)]; !ok {
				continue
			}
		}
		d.modules[name] = &module{ops: discoverOps(fv)}
	}

	return d
}

// isComposite keeps struct-shaped values and rejects scalars, functions,
// and nil pointers.
func isComposite(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer:
		return !v.IsNil() && v.Elem().Kind() == reflect.Struct
	case reflect.Struct:
		return true
	default:
		return false
	}
}

// discoverOps collects every exported method of the module value that has
// the uniform operation signature, attaching declared metadata when the
// module publishes an OperationSpecs table.
func discoverOps(v reflect.Value) map[string]operation {
	var specs map[string]OpSpec
	if provider, ok := v.Interface().(SpecProvider); ok {
		specs = provider.OperationSpecs()
	}

	ops := make(map[string]operation)
	for i := 0; i < v.NumMethod(); i++ {
		fn, ok := v.Method(i).Interface().(operationFunc)
		if !ok {
			continue
		}
		name := lowerFirst(v.Type().Method(i).Name)
		op := operation{fn: fn}
		if spec, ok := specs[name]; ok {
			op.spec = &spec
		}
		ops[name] = op
	}
	return ops
}

// lowerFirst maps a Go method name to its exposed wire-style name, e.g.
// GetNativeBalance to getNativeBalance.
func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

func (d *Dispatcher) lookup(moduleName, methodName string) (operation, bool) {
	mod, ok := d.modules[moduleName]
	if !ok {
		return operation{}, false
	}
	op, ok := mod.ops[methodName]
	return op, ok
}

// ListModules returns the visible module names, sorted lexicographically.
func (d *Dispatcher) ListModules() []string {
	names := make([]string, 0, len(d.modules))
	for name := range d.modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListMethods returns the sorted method names of a module, or an empty
// slice when the module is not visible.
func (d *Dispatcher) ListMethods(moduleName string) []string {
	mod, ok := d.modules[moduleName]
	if !ok {
		return []string{}
	}
	names := make([]string, 0, len(mod.ops))
	for name := range mod.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasModule reports whether a module is visible.
func (d *Dispatcher) HasModule(moduleName string) bool {
	_, ok := d.modules[moduleName]
	return ok
}

// HasMethod reports whether a method exists on a visible module.
func (d *Dispatcher) HasMethod(moduleName, methodName string) bool {
	_, ok := d.lookup(moduleName, methodName)
	return ok
}

// Invoke calls the named operation with args, preserving the operation's
// receiver binding. It fails with *NotFoundError before any call attempt
// when the pair is unknown. Failures from the operation itself are logged
// and returned unchanged; retry policy belongs to the caller or the
// transport.
func (d *Dispatcher) Invoke(ctx context.Context, moduleName, methodName string, args []any) (any, error) {
	logger := ctxlog.FromContext(ctx).With("module", moduleName, "method", methodName)

	op, ok := d.lookup(moduleName, methodName)
	if !ok {
		return nil, &NotFoundError{Module: moduleName, Method: methodName}
	}

	logger.Debug("Invoking remote operation.", "arg_count", len(args))
	result, err := op.fn(ctx, args...)
	if err != nil {
		logger.Error("Remote operation failed.", "error", err)
		return nil, err
	}
	logger.Debug("Remote operation finished.")
	return result, nil
}

// DescribeMethod returns a generic templated description of a method, or an
// empty string when the method is not found. The graph carries no real
// documentation, so callers must not treat this as authoritative.
func (d *Dispatcher) DescribeMethod(moduleName, methodName string) string {
	if !d.HasMethod(moduleName, methodName) {
		return ""
	}
	return fmt.Sprintf("Calls %s.%s on the remote API.", moduleName, methodName)
}

// InferSignature returns a best-effort parameter hint for a method, sourced
// from the module's declared metadata table. It returns an empty string when
// the method is not found and never fails.
func (d *Dispatcher) InferSignature(moduleName, methodName string) string {
	op, ok := d.lookup(moduleName, methodName)
	if !ok {
		return ""
	}
	switch {
	case op.spec == nil:
		return "Parameter structure unavailable"
	case op.spec.OptionalRequestParams:
		return "Optional RequestParams object"
	case op.spec.Params == "":
		return "No parameters required"
	default:
		return op.spec.Params
	}
}

// Catalog is a point-in-time sorted view of everything the dispatcher can
// reach.
type Catalog struct {
	Modules         []string
	MethodsByModule map[string][]string
}

// ListAllSorted returns the full catalog, with modules and per-module
// methods each sorted lexicographically. It is pure and has no side effects
// beyond the read.
func (d *Dispatcher) ListAllSorted() Catalog {
	c := Catalog{
		Modules:         d.ListModules(),
		MethodsByModule: make(map[string][]string, len(d.modules)),
	}
	for _, name := range c.Modules {
		c.MethodsByModule[name] = d.ListMethods(name)
	}
	return c
}
