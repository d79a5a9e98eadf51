// Package broadcast defines the options, errors and result types of MBT
// evaluation.
package broadcast

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrTreeNil is returned when a nil *tree.Tree is passed to MBT.
	ErrTreeNil = errors.New("broadcast: tree is nil")

	// ErrAdjacencyNil is returned when a nil *tree.Adjacency is passed to Evaluate.
	ErrAdjacencyNil = errors.New("broadcast: adjacency is nil")

	// ErrInvalidTree wraps the tree validation error under WithValidation.
	ErrInvalidTree = errors.New("broadcast: invalid tree")

	// ErrHookType indicates an OnSubtree hook registered for a vertex type
	// other than the one being evaluated.
	ErrHookType = errors.New("broadcast: hook vertex type mismatch")
)

// Option configures evaluation. Use with Evaluate or MBT.
type Option func(*Options)

// Options holds the evaluation parameters.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// Validate runs Adjacency.Validate before walking.
	Validate bool

	// Recursive selects the recursive walker instead of the explicit stack.
	Recursive bool

	// onSubtree is the type-erased OnSubtree hook.
	onSubtree func(v any, value int) error
}

// DefaultOptions returns Options with a background context, no validation,
// the explicit-stack strategy and no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Validate:  false,
		Recursive: false,
		onSubtree: nil,
	}
}

// WithContext sets the context checked for cancellation once per vertex.
// A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithValidation rejects inputs that are not a tree reachable from the
// root. The returned error wraps both ErrInvalidTree and the tree sentinel.
func WithValidation() Option {
	return func(o *Options) {
		o.Validate = true
	}
}

// WithRecursive selects the recursive walker.
func WithRecursive() Option {
	return func(o *Options) {
		o.Recursive = true
	}
}

// WithOnSubtree installs a post-order hook called once per vertex as soon
// as its value is final. Returning an error aborts evaluation.
//
// V must match the vertex type of the evaluated tree; otherwise evaluation
// fails with ErrHookType on the first call.
func WithOnSubtree[V comparable](fn func(v V, value int) error) Option {
	return func(o *Options) {
		if fn == nil {
			o.onSubtree = nil
			return
		}
		o.onSubtree = func(v any, value int) error {
			typed, ok := v.(V)
			if !ok {
				return fmt.Errorf("%w: got %T", ErrHookType, v)
			}
			return fn(typed, value)
		}
	}
}

// Result captures one evaluation.
type Result[V comparable] struct {
	// Root is the vertex the signal starts from.
	Root V

	// Time is the minimum broadcast time.
	Time int

	// Value maps each visited vertex to the steps its subtree needs once its
	// parent starts serving it, including the step that informs it. For the
	// root this is Time+1.
	Value map[V]int

	// Parent maps each non-root visited vertex to the vertex it was reached from.
	Parent map[V]V

	// Children lists, per vertex, the children in traversal order.
	Children map[V][]V

	// Order records visited vertices in post-order.
	Order []V
}

// Call is one forwarding action of a schedule: at Step, From informs To.
type Call[V comparable] struct {
	Step int
	From V
	To   V
}
