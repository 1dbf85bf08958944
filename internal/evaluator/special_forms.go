package evaluator

import (
	"github.com/wisplang/wisp/internal/config"
	"github.com/wisplang/wisp/internal/diagnostics"
	"github.com/wisplang/wisp/internal/value"
)

// formHandler evaluates the unevaluated argument tail of a special form
// in env.
type formHandler func(ev *Evaluator, args []value.Value, env *Environment) (value.Value, error)

var specialForms map[string]formHandler

func init() {
	specialForms = map[string]formHandler{
		config.FormQuote:   evalQuote,
		config.FormIf:      evalIf,
		config.FormLet:     evalLet,
		config.FormLetStar: evalLetStar,
		config.FormLetrec:  evalLetrec,
		config.FormDefine:  evalDefine,
		config.FormSetBang: evalSetBang,
		config.FormLambda:  evalLambda,
		config.FormBegin:   evalBegin,
		config.FormCond:    evalCond,
		config.FormAnd:     evalAnd,
		config.FormOr:      evalOr,
	}
}

func evalQuote(ev *Evaluator, args []value.Value, env *Environment) (value.Value, error) {
	if len(args) != 1 {
		return nil, fail(diagnostics.BadFormShape, "%s takes exactly one argument", config.FormQuote)
	}
	return args[0], nil
}

func evalIf(ev *Evaluator, args []value.Value, env *Environment) (value.Value, error) {
	if len(args) != 3 {
		return nil, fail(diagnostics.BadFormShape, "%s takes exactly three arguments", config.FormIf)
	}
	cond, err := ev.Eval(args[0], env)
	if err != nil {
		return nil, err
	}
	if value.IsTruthy(cond) {
		return ev.Eval(args[1], env)
	}
	return ev.Eval(args[2], env)
}

// bindingPair extracts a (symbol, expr) pair from a let-style binding
// form. Any other shape fails with BadFormBinding.
func bindingPair(b value.Value) (string, value.Value, error) {
	pair, ok := b.(*value.Pair)
	if !ok {
		return "", nil, fail(diagnostics.BadFormBinding, "binding must be a two-element list")
	}
	elems := value.ToSlice(pair)
	if len(elems) != 2 {
		return "", nil, fail(diagnostics.BadFormBinding, "binding must be a two-element list")
	}
	sym, ok := elems[0].(*value.Symbol)
	if !ok {
		return "", nil, fail(diagnostics.BadFormBinding, "binding target must be a symbol")
	}
	return sym.Name, elems[1], nil
}

func evalBody(ev *Evaluator, body []value.Value, env *Environment) (value.Value, error) {
	var result value.Value = value.TheVoid
	var err error
	for _, expr := range body {
		result, err = ev.Eval(expr, env)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func evalLet(ev *Evaluator, args []value.Value, env *Environment) (value.Value, error) {
	if len(args) != 2 {
		return nil, fail(diagnostics.BadFormShape, "%s takes a binding list and exactly one body expression", config.FormLet)
	}
	bindings := value.ToSlice(args[0])
	newEnv := NewEnclosedEnvironment(env)
	names := make([]string, len(bindings))
	vals := make([]value.Value, len(bindings))
	for i, b := range bindings {
		name, expr, err := bindingPair(b)
		if err != nil {
			return nil, err
		}
		v, err := ev.Eval(expr, env)
		if err != nil {
			return nil, err
		}
		names[i], vals[i] = name, v
	}
	for i, name := range names {
		newEnv.Define(name, vals[i])
	}
	return evalBody(ev, args[1:], newEnv)
}

func evalLetStar(ev *Evaluator, args []value.Value, env *Environment) (value.Value, error) {
	if len(args) != 2 {
		return nil, fail(diagnostics.BadFormShape, "%s takes a binding list and exactly one body expression", config.FormLetStar)
	}
	bindings := value.ToSlice(args[0])
	newEnv := NewEnclosedEnvironment(env)
	for _, b := range bindings {
		name, expr, err := bindingPair(b)
		if err != nil {
			return nil, err
		}
		v, err := ev.Eval(expr, newEnv)
		if err != nil {
			return nil, err
		}
		newEnv.Define(name, v)
	}
	return evalBody(ev, args[1:], newEnv)
}

func evalLetrec(ev *Evaluator, args []value.Value, env *Environment) (value.Value, error) {
	if len(args) != 2 {
		return nil, fail(diagnostics.BadFormShape, "%s takes a binding list and exactly one body expression", config.FormLetrec)
	}
	bindings := value.ToSlice(args[0])
	newEnv := NewEnclosedEnvironment(env)
	names := make([]string, len(bindings))
	exprs := make([]value.Value, len(bindings))
	for i, b := range bindings {
		name, expr, err := bindingPair(b)
		if err != nil {
			return nil, err
		}
		names[i], exprs[i] = name, expr
		newEnv.Define(name, value.TheVoid)
	}
	for i, expr := range exprs {
		v, err := ev.Eval(expr, newEnv)
		if err != nil {
			return nil, err
		}
		if !newEnv.Set(names[i], v) {
			return nil, fail(diagnostics.BadFormBinding, "letrec binding %s vanished", names[i])
		}
	}
	return evalBody(ev, args[1:], newEnv)
}

func evalDefine(ev *Evaluator, args []value.Value, env *Environment) (value.Value, error) {
	if len(args) != 2 {
		return nil, fail(diagnostics.BadFormShape, "%s takes exactly two arguments", config.FormDefine)
	}
	sym, ok := args[0].(*value.Symbol)
	if !ok {
		return nil, fail(diagnostics.BadFormBinding, "%s target must be a symbol", config.FormDefine)
	}
	v, err := ev.Eval(args[1], env)
	if err != nil {
		return nil, err
	}
	env.Define(sym.Name, v)
	return value.TheVoid, nil
}

func evalSetBang(ev *Evaluator, args []value.Value, env *Environment) (value.Value, error) {
	if len(args) != 2 {
		return nil, fail(diagnostics.BadFormShape, "%s takes exactly two arguments", config.FormSetBang)
	}
	sym, ok := args[0].(*value.Symbol)
	if !ok {
		return nil, fail(diagnostics.BadFormBinding, "%s target must be a symbol", config.FormSetBang)
	}
	v, err := ev.Eval(args[1], env)
	if err != nil {
		return nil, err
	}
	if !env.Set(sym.Name, v) {
		return nil, fail(diagnostics.UnboundSymbol, "%s", sym.Name)
	}
	return value.TheVoid, nil
}

func evalLambda(ev *Evaluator, args []value.Value, env *Environment) (value.Value, error) {
	if len(args) != 2 {
		return nil, fail(diagnostics.BadFormShape, "%s takes a parameter list and exactly one body expression", config.FormLambda)
	}
	params, err := paramNames(args[0])
	if err != nil {
		return nil, err
	}
	return value.NewClosure(ev.Arena, params, args[1:], env), nil
}

// paramNames validates a lambda parameter list: Null or a proper list of
// Symbols.
func paramNames(list value.Value) ([]string, error) {
	if _, isNull := list.(*value.Null); isNull {
		return nil, nil
	}
	if !value.IsProperList(list) {
		return nil, fail(diagnostics.BadLambdaParams, "parameter list must be a proper list")
	}
	elems := value.ToSlice(list)
	names := make([]string, len(elems))
	for i, e := range elems {
		sym, ok := e.(*value.Symbol)
		if !ok {
			return nil, fail(diagnostics.BadLambdaParams, "parameter %d is not a symbol", i)
		}
		names[i] = sym.Name
	}
	return names, nil
}

func evalBegin(ev *Evaluator, args []value.Value, env *Environment) (value.Value, error) {
	return evalBody(ev, args, env)
}

func evalCond(ev *Evaluator, args []value.Value, env *Environment) (value.Value, error) {
	for i, clause := range args {
		elems := value.ToSlice(clause)
		if len(elems) != 2 {
			return nil, fail(diagnostics.BadFormShape, "%s clause must be a two-element list", config.FormCond)
		}
		if sym, ok := elems[0].(*value.Symbol); ok && sym.Name == config.CondElse && i == len(args)-1 {
			return ev.Eval(elems[1], env)
		}
		test, err := ev.Eval(elems[0], env)
		if err != nil {
			return nil, err
		}
		if b, ok := test.(*value.Bool); ok && b.Val {
			return ev.Eval(elems[1], env)
		}
	}
	return value.TheVoid, nil
}

func evalAnd(ev *Evaluator, args []value.Value, env *Environment) (value.Value, error) {
	if len(args) != 2 {
		return nil, fail(diagnostics.BadFormShape, "%s takes exactly two arguments", config.FormAnd)
	}
	a, err := evalBool(ev, args[0], env, config.FormAnd)
	if err != nil {
		return nil, err
	}
	if !a.Val {
		return a, nil
	}
	return evalBool(ev, args[1], env, config.FormAnd)
}

func evalOr(ev *Evaluator, args []value.Value, env *Environment) (value.Value, error) {
	if len(args) != 2 {
		return nil, fail(diagnostics.BadFormShape, "%s takes exactly two arguments", config.FormOr)
	}
	a, err := evalBool(ev, args[0], env, config.FormOr)
	if err != nil {
		return nil, err
	}
	if a.Val {
		return a, nil
	}
	return evalBool(ev, args[1], env, config.FormOr)
}

func evalBool(ev *Evaluator, expr value.Value, env *Environment, form string) (*value.Bool, error) {
	v, err := ev.Eval(expr, env)
	if err != nil {
		return nil, err
	}
	b, ok := v.(*value.Bool)
	if !ok {
		return nil, fail(diagnostics.WrongType, "%s requires boolean operands", form)
	}
	return b, nil
}
