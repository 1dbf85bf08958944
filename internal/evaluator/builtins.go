// Primitive procedures seeded into the root environment: each is a small
// Go closure validating its own arity and argument types before doing the
// arithmetic, registered into the environment by name.
//
// Numeric coercion to float64 happens in one place, numericVal: a type
// switch over Integer and Double, with github.com/spf13/cast converting
// the Integer payload.
package evaluator

import (
	"github.com/spf13/cast"

	"github.com/wisplang/wisp/internal/config"
	"github.com/wisplang/wisp/internal/diagnostics"
	"github.com/wisplang/wisp/internal/value"
)

// SeedRoot binds every primitive procedure into root.
func SeedRoot(ev *Evaluator, root *Environment) {
	for name, fn := range primitives(ev) {
		root.Define(name, value.NewPrimitive(ev.Arena, name, fn))
	}
}

func primitives(ev *Evaluator) map[string]value.PrimitiveFunc {
	return map[string]value.PrimitiveFunc{
		config.PrimAdd:    primAdd(ev),
		config.PrimSub:    primSub(ev),
		config.PrimMul:    primMul(ev),
		config.PrimDiv:    primDiv(ev),
		config.PrimModulo: primModulo(ev),
		config.PrimLT:     primCompare(ev, config.PrimLT, func(a, b float64) bool { return a < b }),
		config.PrimGT:     primCompare(ev, config.PrimGT, func(a, b float64) bool { return a > b }),
		config.PrimEQ:     primCompare(ev, config.PrimEQ, func(a, b float64) bool { return a == b }),
		config.PrimLE:     primCompare(ev, config.PrimLE, func(a, b float64) bool { return a <= b }),
		config.PrimGE:     primCompare(ev, config.PrimGE, func(a, b float64) bool { return a >= b }),
		config.PrimZeroP:  primZeroP(ev),
		config.PrimNullP:  primNullP(ev),
		config.PrimCar:    primCar(ev),
		config.PrimCdr:    primCdr(ev),
		config.PrimCons:   primCons(ev),
	}
}

// numericVal coerces v to float64 (an Integer via spf13/cast, a Double
// as is), failing with WrongType when v is not a number.
func numericVal(name string, v value.Value) (float64, error) {
	switch n := v.(type) {
	case *value.Integer:
		return cast.ToFloat64(n.Val), nil
	case *value.Double:
		return n.Val, nil
	default:
		return 0, fail(diagnostics.WrongType, "%s requires numeric arguments, got %s", name, v.Kind())
	}
}

func primAdd(ev *Evaluator) value.PrimitiveFunc {
	return func(args []value.Value) (value.Value, error) {
		sum := 0.0
		for _, a := range args {
			n, err := numericVal(config.PrimAdd, a)
			if err != nil {
				return nil, err
			}
			sum += n
		}
		return value.NewDouble(ev.Arena, sum), nil
	}
}

func primSub(ev *Evaluator) value.PrimitiveFunc {
	return func(args []value.Value) (value.Value, error) {
		if len(args) == 0 {
			return nil, fail(diagnostics.WrongArity, "%s requires at least one argument", config.PrimSub)
		}
		first, err := numericVal(config.PrimSub, args[0])
		if err != nil {
			return nil, err
		}
		if len(args) == 1 {
			return value.NewDouble(ev.Arena, -first), nil
		}
		acc := first
		for _, a := range args[1:] {
			n, err := numericVal(config.PrimSub, a)
			if err != nil {
				return nil, err
			}
			acc -= n
		}
		return value.NewDouble(ev.Arena, acc), nil
	}
}

func primMul(ev *Evaluator) value.PrimitiveFunc {
	return func(args []value.Value) (value.Value, error) {
		product := 1.0
		for _, a := range args {
			n, err := numericVal(config.PrimMul, a)
			if err != nil {
				return nil, err
			}
			product *= n
		}
		return value.NewDouble(ev.Arena, product), nil
	}
}

func primDiv(ev *Evaluator) value.PrimitiveFunc {
	return func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, fail(diagnostics.WrongArity, "%s requires exactly two arguments", config.PrimDiv)
		}
		a, err := numericVal(config.PrimDiv, args[0])
		if err != nil {
			return nil, err
		}
		b, err := numericVal(config.PrimDiv, args[1])
		if err != nil {
			return nil, err
		}
		if b == 0 {
			return nil, fail(diagnostics.DivideByZero, "%s by zero", config.PrimDiv)
		}
		return value.NewDouble(ev.Arena, a/b), nil
	}
}

func primModulo(ev *Evaluator) value.PrimitiveFunc {
	return func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, fail(diagnostics.WrongArity, "%s requires exactly two arguments", config.PrimModulo)
		}
		a, aOK := args[0].(*value.Integer)
		b, bOK := args[1].(*value.Integer)
		if !aOK || !bOK {
			return nil, fail(diagnostics.WrongType, "%s requires integer arguments", config.PrimModulo)
		}
		if b.Val == 0 {
			return nil, fail(diagnostics.DivideByZero, "%s by zero", config.PrimModulo)
		}
		return value.NewInteger(ev.Arena, a.Val%b.Val), nil
	}
}

func primCompare(ev *Evaluator, name string, cmp func(a, b float64) bool) value.PrimitiveFunc {
	return func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, fail(diagnostics.WrongArity, "%s requires exactly two arguments", name)
		}
		a, err := numericVal(name, args[0])
		if err != nil {
			return nil, err
		}
		b, err := numericVal(name, args[1])
		if err != nil {
			return nil, err
		}
		return value.NewBool(ev.Arena, cmp(a, b)), nil
	}
}

func primZeroP(ev *Evaluator) value.PrimitiveFunc {
	return func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, fail(diagnostics.WrongArity, "%s requires exactly one argument", config.PrimZeroP)
		}
		n, err := numericVal(config.PrimZeroP, args[0])
		if err != nil {
			return nil, err
		}
		return value.NewBool(ev.Arena, n == 0), nil
	}
}

func primNullP(ev *Evaluator) value.PrimitiveFunc {
	return func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, fail(diagnostics.WrongArity, "%s requires exactly one argument", config.PrimNullP)
		}
		_, isNull := args[0].(*value.Null)
		return value.NewBool(ev.Arena, isNull), nil
	}
}

func primCar(ev *Evaluator) value.PrimitiveFunc {
	return func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, fail(diagnostics.WrongArity, "%s requires exactly one argument", config.PrimCar)
		}
		p, ok := args[0].(*value.Pair)
		if !ok {
			return nil, fail(diagnostics.WrongType, "%s requires a list", config.PrimCar)
		}
		return value.Car(p), nil
	}
}

func primCdr(ev *Evaluator) value.PrimitiveFunc {
	return func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, fail(diagnostics.WrongArity, "%s requires exactly one argument", config.PrimCdr)
		}
		p, ok := args[0].(*value.Pair)
		if !ok {
			return nil, fail(diagnostics.WrongType, "%s requires a list", config.PrimCdr)
		}
		return value.Cdr(p), nil
	}
}

func primCons(ev *Evaluator) value.PrimitiveFunc {
	return func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, fail(diagnostics.WrongArity, "%s requires exactly two arguments", config.PrimCons)
		}
		return value.NewPair(ev.Arena, args[0], args[1]), nil
	}
}
