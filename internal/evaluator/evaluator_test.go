package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wisplang/wisp/internal/arena"
	"github.com/wisplang/wisp/internal/lexer"
	"github.com/wisplang/wisp/internal/parser"
	"github.com/wisplang/wisp/internal/pipeline"
	"github.com/wisplang/wisp/internal/value"
)

// evalSource runs every top-level form in src against a fresh root
// environment and returns the results, in order.
func evalSource(t *testing.T, src string) ([]value.Value, error) {
	t.Helper()
	a := arena.New()
	ev := New(a)
	root := NewRootEnvironment(a)
	SeedRoot(ev, root)

	p := pipeline.New(&lexer.LexerProcessor{}, parser.NewProcessor(a))
	ctx := p.Run(pipeline.NewContext(src))
	require.Nil(t, ctx.Err)

	var results []value.Value
	for _, form := range ctx.Forms {
		result, err := ev.Eval(form, root)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

func evalOne(t *testing.T, src string) value.Value {
	t.Helper()
	results, err := evalSource(t, src)
	require.NoError(t, err)
	require.Len(t, results, 1)
	return results[0]
}

func TestEval_EndToEndScenarios(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"sum", "(+ 1 2 3)", "6.000000"},
		{"let", "(let ((x 2) (y 3)) (* x y))", "6.000000"},
		{"letStar", "(let* ((x 2) (y (+ x 1))) (* x y))", "6.000000"},
		{"lambdaApply", "((lambda (x y) (+ x y)) 4 5)", "9.000000"},
		{"consChain", "(cons 1 (cons 2 (cons 3 '())))", "(1 2 3)"},
		{"quote", "(quote (a b c))", "(a b c)"},
		{"ifFalse", "(if #f 1 2)", "2"},
		{"ifNullIsTruthy", "(if '() 1 2)", "1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := evalOne(t, tc.src)
			assert.Equal(t, tc.want, got.Inspect())
		})
	}
}

func TestEval_DefineThenUse(t *testing.T) {
	results, err := evalSource(t, "(define x 10) (+ x 5)")
	require.NoError(t, err)
	require.Len(t, results, 2)
	_, isVoid := results[0].(*value.Void)
	assert.True(t, isVoid)
	assert.Equal(t, "15.000000", results[1].Inspect())
}

func TestEval_RecursiveDefineFactorial(t *testing.T) {
	const src = `
		(define fact (lambda (n) (if (zero? n) 1 (* n (fact (- n 1))))))
		(fact 5)
	`
	results, err := evalSource(t, src)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "120.000000", results[1].Inspect())
}

func TestEval_CarOfEmptyListFails(t *testing.T) {
	_, err := evalSource(t, "(car '())")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "car requires a list")
}

func TestEval_Shadowing(t *testing.T) {
	got := evalOne(t, "(let ((x 1)) (let ((x 2)) x))")
	assert.Equal(t, "2", got.Inspect())
}

func TestEval_LetrecMutualRecursion(t *testing.T) {
	const src = `
		(letrec ((even? (lambda (n) (if (zero? n) #t (odd? (- n 1)))))
		         (odd?  (lambda (n) (if (zero? n) #f (even? (- n 1))))))
		  (even? 10))
	`
	got := evalOne(t, src)
	assert.Equal(t, "#t", got.Inspect())
}

func TestEval_UnboundSymbolFails(t *testing.T) {
	_, err := evalSource(t, "xyz")
	assert.Error(t, err)
}

func TestEval_SetBangOnUnboundFails(t *testing.T) {
	_, err := evalSource(t, "(set! xyz 1)")
	assert.Error(t, err)
}

func TestEval_LeftToRightArgumentOrder(t *testing.T) {
	const src = `
		(define log '())
		(define record (lambda (tag val) (begin (set! log (cons tag log)) val)))
		(+ (record 1 1) (record 2 2) (record 3 3))
		log
	`
	results, err := evalSource(t, src)
	require.NoError(t, err)
	require.Len(t, results, 4)
	assert.Equal(t, "(3 2 1)", results[3].Inspect())
}

func TestEval_ClosureCapturesDefiningEnvironment(t *testing.T) {
	const src = `
		(define make-adder (lambda (n) (lambda (x) (+ x n))))
		(define add5 (make-adder 5))
		(add5 10)
	`
	results, err := evalSource(t, src)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "15.000000", results[2].Inspect())
}

func TestEval_CondElseFallthrough(t *testing.T) {
	got := evalOne(t, `(cond (#f 1) (#f 2) (else 3))`)
	assert.Equal(t, "3", got.Inspect())
}

func TestEval_DivideByZero(t *testing.T) {
	_, err := evalSource(t, "(/ 1 0)")
	require.Error(t, err)
}

func TestEval_WrongArityOnClosure(t *testing.T) {
	_, err := evalSource(t, "((lambda (x y) x) 1)")
	require.Error(t, err)
}

func TestEval_LambdaWrongShapeFails(t *testing.T) {
	_, err := evalSource(t, "(lambda (x))")
	require.Error(t, err)

	_, err = evalSource(t, "(lambda (x) x x)")
	require.Error(t, err)
}

func TestEval_LetWrongShapeFails(t *testing.T) {
	_, err := evalSource(t, "(let ((x 1)))")
	require.Error(t, err)

	_, err = evalSource(t, "(let ((x 1)) x x)")
	require.Error(t, err)
}

func TestEval_LetStarWrongShapeFails(t *testing.T) {
	_, err := evalSource(t, "(let* ((x 1)))")
	require.Error(t, err)

	_, err = evalSource(t, "(let* ((x 1)) x x)")
	require.Error(t, err)
}

func TestEval_LetrecWrongShapeFails(t *testing.T) {
	_, err := evalSource(t, "(letrec ((x 1)))")
	require.Error(t, err)

	_, err = evalSource(t, "(letrec ((x 1)) x x)")
	require.Error(t, err)
}
