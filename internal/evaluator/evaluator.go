// Package evaluator implements the tree-walking interpreter core: dispatch
// over the value model, the special forms, closure application, and the
// primitive procedures seeded into the root environment.
package evaluator

import (
	"github.com/wisplang/wisp/internal/arena"
	"github.com/wisplang/wisp/internal/config"
	"github.com/wisplang/wisp/internal/diagnostics"
	"github.com/wisplang/wisp/internal/value"
)

// Evaluator carries the arena every Value it constructs is allocated
// against. It holds no other mutable state: all lexical state lives in
// the Environment chain it is handed per call.
type Evaluator struct {
	Arena *arena.Arena
}

// New constructs an Evaluator allocating against a.
func New(a *arena.Arena) *Evaluator {
	return &Evaluator{Arena: a}
}

// Eval dispatches on the concrete type of expr: self-evaluating literals
// return themselves, a Symbol resolves against env, and a Pair is a
// combination to evaluate.
func (ev *Evaluator) Eval(expr value.Value, env *Environment) (value.Value, error) {
	switch v := expr.(type) {
	case *value.Integer, *value.Double, *value.String, *value.Bool, *value.Null:
		return expr, nil
	case *value.Symbol:
		val, ok := env.Lookup(v.Name)
		if !ok {
			return nil, fail(diagnostics.UnboundSymbol, "%s", v.Name)
		}
		return val, nil
	case *value.Pair:
		return ev.evalCombination(v, env)
	default:
		return nil, fail(diagnostics.NotApplicable, "cannot evaluate %s", expr.Kind())
	}
}

func (ev *Evaluator) evalCombination(p *value.Pair, env *Environment) (value.Value, error) {
	if sym, ok := p.CarVal.(*value.Symbol); ok && config.SpecialForms[sym.Name] {
		return specialForms[sym.Name](ev, value.ToSlice(p.CdrVal), env)
	}

	switch p.CarVal.(type) {
	case *value.Symbol, *value.Pair:
	default:
		return nil, fail(diagnostics.NotApplicable, "%s is not applicable", p.CarVal.Kind())
	}

	callee, err := ev.Eval(p.CarVal, env)
	if err != nil {
		return nil, err
	}

	args, err := ev.evalEach(value.ToSlice(p.CdrVal), env)
	if err != nil {
		return nil, err
	}

	return ev.Apply(callee, args)
}

// evalEach evaluates exprs strictly left to right.
func (ev *Evaluator) evalEach(exprs []value.Value, env *Environment) ([]value.Value, error) {
	results := make([]value.Value, 0, len(exprs))
	for _, e := range exprs {
		r, err := ev.Eval(e, env)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}

// Apply invokes callee with args: primitives run their Go closure
// directly, closures get a fresh frame binding their parameters.
func (ev *Evaluator) Apply(callee value.Value, args []value.Value) (value.Value, error) {
	switch fn := callee.(type) {
	case *value.Primitive:
		return fn.Fn(args)
	case *value.Closure:
		if len(args) < len(fn.Params) {
			return nil, fail(diagnostics.WrongArity, "%s: too few arguments", config.FormLambda)
		}
		if len(args) > len(fn.Params) {
			return nil, fail(diagnostics.WrongArity, "%s: too many arguments", config.FormLambda)
		}
		callEnv := NewEnclosedEnvironment(fn.Env.(*Environment))
		for i, param := range fn.Params {
			callEnv.Define(param, args[i])
		}
		var result value.Value = value.TheVoid
		var err error
		for _, expr := range fn.Body {
			result, err = ev.Eval(expr, callEnv)
			if err != nil {
				return nil, err
			}
		}
		return result, nil
	default:
		return nil, fail(diagnostics.NotApplicable, "%s is not applicable", callee.Kind())
	}
}
