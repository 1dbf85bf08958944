// Command wisp is the interpreter's driver: it reads a program from
// standard input (or a file path given as its one argument), runs it
// through the lexer/parser pipeline, evaluates each top-level form against
// a freshly seeded root environment, and prints the resulting values.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/wisplang/wisp/internal/diagnostics"
	"github.com/wisplang/wisp/internal/lexer"
	"github.com/wisplang/wisp/internal/parser"
	"github.com/wisplang/wisp/internal/pipeline"
	"github.com/wisplang/wisp/internal/session"
	"github.com/wisplang/wisp/internal/token"
	"github.com/wisplang/wisp/internal/value"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "internal error: %v\n", r)
			os.Exit(1)
		}
	}()

	source, err := readInput(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}

	sess := session.New()
	run(sess, source)
}

func run(sess *session.Session, source string) {
	sess.Log.Debug("running %d bytes of source", len(source))

	p := pipeline.New(&lexer.LexerProcessor{}, parser.NewProcessor(sess.Arena))
	ctx := p.Run(pipeline.NewContext(source))
	if ctx.Err != nil {
		reportAndExit(sess, ctx.Err)
	}

	for _, form := range ctx.Forms {
		result, err := sess.Evaluator.Eval(form, sess.Root)
		if err != nil {
			if de, ok := err.(*diagnostics.DiagnosticError); ok {
				reportAndExit(sess, de)
			}
			reportAndExit(sess, diagnostics.New(diagnostics.PhaseEvaluator, diagnostics.NotApplicable, token.Token{}, err.Error()))
		}
		if _, isVoid := result.(*value.Void); isVoid {
			continue
		}
		fmt.Println(result.Inspect())
	}

	sess.Teardown(0)
}

func reportAndExit(sess *session.Session, de *diagnostics.DiagnosticError) {
	fmt.Println(de.Error())
	sess.Teardown(diagnostics.ExitCodeFor(de.Kind))
}

// readInput supports piping a program in over stdin or passing a file
// path as the program's one argument.
func readInput(args []string) (string, error) {
	if len(args) >= 2 {
		data, err := os.ReadFile(args[1])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[1], err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading standard input: %w", err)
	}
	return string(data), nil
}
