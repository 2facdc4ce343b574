// Package graph evaluates small named-tensor computation graphs.
//
// A Context holds named tensors and a list of nodes. Eval runs the
// nodes in insertion order and publishes each node's output under its
// name, where the validation harness picks it up for comparison
// against golden references.
package graph

import (
	"errors"
	"fmt"

	"github.com/verdict-ml/verdict/internal/tensor"
)

// Common errors.
var (
	ErrUnknownOp     = errors.New("graph: unsupported operator")
	ErrMissingTensor = errors.New("graph: missing tensor")
	ErrNotEvaluated  = errors.New("graph: context not evaluated")
)

// OpHandler computes one node's output from its input tensors.
type OpHandler func(inputs []*tensor.RawTensor) (*tensor.RawTensor, error)

// Registry maps operator names to handler functions.
type Registry struct {
	handlers map[string]OpHandler
}

// NewRegistry creates a registry with all built-in operators.
func NewRegistry() *Registry {
	r := &Registry{handlers: make(map[string]OpHandler)}

	r.Register("Max", opMax)
	r.Register("Min", opMin)
	r.Register("ArgMax", opArgMax)
	r.Register("Add", opAdd)
	r.Register("Mul", opMul)
	r.Register("Relu", opRelu)

	return r
}

// Register adds or replaces an operator handler.
func (r *Registry) Register(op string, handler OpHandler) {
	r.handlers[op] = handler
}

// Execute runs an operator with the given inputs.
func (r *Registry) Execute(op string, inputs []*tensor.RawTensor) (*tensor.RawTensor, error) {
	handler, ok := r.handlers[op]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOp, op)
	}
	return handler(inputs)
}

// SupportedOps returns the names of all registered operators.
func (r *Registry) SupportedOps() []string {
	ops := make([]string, 0, len(r.handlers))
	for op := range r.handlers {
		ops = append(ops, op)
	}
	return ops
}
