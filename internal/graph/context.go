package graph

import (
	"fmt"

	"github.com/verdict-ml/verdict/internal/tensor"
)

// Node is one operation in the graph: an operator applied to named
// inputs, publishing its result under Output.
type Node struct {
	Op     string
	Inputs []string
	Output string
}

// Context holds named tensors and the nodes that produce them.
// Nodes run in insertion order; the generated graphs the harness
// consumes are already topologically sorted.
type Context struct {
	registry  *Registry
	tensors   map[string]*tensor.RawTensor
	nodes     []Node
	evaluated bool
}

// NewContext creates an empty context with the built-in operators.
func NewContext() *Context {
	return &Context{
		registry: NewRegistry(),
		tensors:  make(map[string]*tensor.RawTensor),
	}
}

// Registry returns the context's operator registry, for registering
// custom operators before Eval.
func (c *Context) Registry() *Registry {
	return c.registry
}

// Set binds a tensor to a name. Used for graph inputs and constants.
func (c *Context) Set(name string, t *tensor.RawTensor) {
	c.tensors[name] = t
}

// AddNode appends an operation producing the named output.
func (c *Context) AddNode(op, output string, inputs ...string) {
	c.nodes = append(c.nodes, Node{Op: op, Inputs: inputs, Output: output})
	c.evaluated = false
}

// Eval runs all nodes in insertion order, publishing each output.
// It stops at the first failing node.
func (c *Context) Eval() error {
	for i, node := range c.nodes {
		inputs := make([]*tensor.RawTensor, len(node.Inputs))
		for j, name := range node.Inputs {
			t, ok := c.tensors[name]
			if !ok {
				return fmt.Errorf("node %d (%s): %w: input %q", i, node.Op, ErrMissingTensor, name)
			}
			inputs[j] = t
		}

		out, err := c.registry.Execute(node.Op, inputs)
		if err != nil {
			return fmt.Errorf("node %d (%s): %w", i, node.Op, err)
		}
		c.tensors[node.Output] = out
	}
	c.evaluated = true
	return nil
}

// Get returns a named tensor. On a context with nodes it is valid only
// after Eval has completed.
func (c *Context) Get(name string) (*tensor.RawTensor, error) {
	if !c.evaluated && len(c.nodes) > 0 {
		return nil, ErrNotEvaluated
	}
	t, ok := c.tensors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingTensor, name)
	}
	return t, nil
}
