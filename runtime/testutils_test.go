package runtime

import (
	"bytes"
	"strings"
	"testing"

	"github.com/panyam/currex/decl"
	"github.com/stretchr/testify/require"
)

// QuietTest disables logging for the duration of a test
// Usage: defer QuietTest(t)()
func QuietTest(t *testing.T) func() {
	oldLevel := GetLogLevel()
	SetLogLevel(LogLevelOff)
	return func() {
		SetLogLevel(oldLevel)
	}
}

// CaptureLog redirects the logger of rt into a buffer until cleanup is called.
func CaptureLog(t *testing.T, rt *Runtime, level LogLevel) (*bytes.Buffer, func()) {
	oldLogger := rt.Logger
	buffer := &bytes.Buffer{}
	rt.Logger = NewLogger(buffer, level)
	return buffer, func() {
		rt.Logger = oldLogger
	}
}

// AssertLogContains checks that logs contain expected message
func AssertLogContains(t *testing.T, logs string, expected string) {
	if !strings.Contains(logs, expected) {
		t.Errorf("Expected log message not found.\nExpected: %s\nActual logs:\n%s", expected, logs)
	}
}

// testTable is
//
//	      EUR   PLN
//	USD   0.9   4
//	GBP   1.15  5.1
func testTable() *TableStmt {
	row := func(name string, rates ...*LiteralExpr) *TableRow {
		return &TableRow{Currency: decl.NewIdent(name), Rates: rates}
	}
	return &TableStmt{
		Columns: []*IdentifierExpr{decl.NewIdent("EUR"), decl.NewIdent("PLN")},
		Rows: []*TableRow{
			row("USD", decl.NewFloatLit(0.9), decl.NewIntLit(4)),
			row("GBP", decl.NewFloatLit(1.15), decl.NewFloatLit(5.1)),
		},
	}
}

func newTestRuntime(t *testing.T) *Runtime {
	rt, err := NewRuntimeForTable(testTable(), DefaultConfig())
	require.NoError(t, err)
	return rt
}

// runFuncs runs a program made of funcs returning main's result and the printed
// output.
func runFuncs(t *testing.T, rt *Runtime, funcs ...*FunctionDecl) (Value, string, error) {
	program, err := decl.NewProgram(funcs...)
	require.NoError(t, err)
	var out bytes.Buffer
	result, err := rt.Run(program, &out)
	return result, out.String(), err
}

// runMain runs a program whose main has the given body and return type.
func runMain(t *testing.T, ret PrimitiveType, body ...Stmt) (Value, string, error) {
	return runFuncs(t, newTestRuntime(t), decl.NewFunction(ret, "main", nil, body...))
}

func printStmt(e Expr) Stmt {
	return decl.NewExprStmt(decl.NewCallExpr("print", e))
}
