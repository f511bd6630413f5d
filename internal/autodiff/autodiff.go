// Package autodiff differentiates expression trees built with package expr.
//
// Two analytic strategies are provided:
//   - Forward mode (Forward, ForwardGradient): the derivative travels with
//     the value in one bottom-up pass per seed direction. A full gradient
//     over k variables costs k passes.
//   - Reverse mode (Eval, Backward): a value pass caches every node's value,
//     then one top-down adjoint pass yields all partials at once.
//
// Usage:
//
//	x1 := expr.NewVar(2, "x1")
//	x2 := expr.NewVar(5, "x2")
//	y := expr.Sub(expr.Add(expr.Ln(x1), expr.Mul(x1, x2)), expr.Sin(x2))
//
//	autodiff.Eval(y)         // 11.6521
//	_ = autodiff.Backward(y) // x1.Adjoint() = 5.5, x2.Adjoint() = 1.7163
//
// Domain errors are not trapped: division by zero and ln of non-positive
// values propagate IEEE ±Inf/NaN through values and derivatives.
package autodiff

import (
	"context"
	"log/slog"

	"github.com/born-ml/autodx/internal/expr"
	"github.com/born-ml/autodx/internal/parallel"
)

// Config controls an Engine.
type Config struct {
	Parallel parallel.Config // Fan-out of forward-mode seed passes.
	Logger   *slog.Logger    // Receives debug records for completed passes.
}

// DefaultConfig returns a config that parallelizes large seed sets and
// discards log output.
func DefaultConfig() Config {
	return Config{
		Parallel: parallel.DefaultConfig(),
		Logger:   slog.New(slog.DiscardHandler),
	}
}

// Engine runs differentiation passes under a Config.
type Engine struct {
	cfg Config
}

// New creates an Engine. A nil Logger discards output.
func New(cfg Config) *Engine {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return &Engine{cfg: cfg}
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Forward evaluates root and its derivative along seed.
func (e *Engine) Forward(root expr.Node, seed Seed) Dual {
	return Forward(root, seed)
}

// ForwardGradient computes root's value and the partials for vars with one
// one-hot forward pass per variable. Variables absent from the tree get 0.
func (e *Engine) ForwardGradient(root expr.Node, vars []*expr.Var) (float64, []float64) {
	y, grad := forwardGradient(root, vars, func(n int, f func(i int)) {
		parallel.For(n, f, e.cfg.Parallel)
	})
	e.cfg.Logger.Debug("forward gradient",
		slog.String("mode", "forward"),
		slog.Int("vars", len(vars)),
		slog.Int("passes", max(len(vars), 1)),
	)
	return y, grad
}

// Grad runs the value and backward passes and returns root's value and the
// partials for vars.
func (e *Engine) Grad(root expr.Node, vars ...*expr.Var) (float64, []float64, error) {
	y, grad, err := Grad(root, vars...)
	if err != nil {
		return 0, nil, err
	}
	// Counting nodes walks the tree; skip it when nobody listens.
	if e.cfg.Logger.Enabled(context.Background(), slog.LevelDebug) {
		e.cfg.Logger.Debug("backward pass",
			slog.String("mode", "reverse"),
			slog.Int("nodes", len(expr.Nodes(root))),
			slog.Int("vars", len(vars)),
		)
	}
	return y, grad, nil
}

var defaultEngine = New(DefaultConfig())

// ForwardGradient computes root's value and gradient over vars in forward
// mode using DefaultConfig.
func ForwardGradient(root expr.Node, vars []*expr.Var) (float64, []float64) {
	return defaultEngine.ForwardGradient(root, vars)
}
