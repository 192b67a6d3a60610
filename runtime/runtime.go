package runtime

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
)

// Runtime holds everything shared by the runs of programs: the currency table,
// the builtins and the configuration.  It must not be modified once runs have
// started, after which it is safe for concurrent use.
type Runtime struct {
	Config Config
	Table  *RateTable
	Logger Logger

	natives map[string]*Function
}

// NewRuntime creates a runtime converting through table (nil for an empty table)
// with the builtins registered.
func NewRuntime(table *RateTable, cfg Config) *Runtime {
	if table == nil {
		table, _ = NewRateTable(nil)
	}
	if cfg.MaxCallDepth <= 0 {
		cfg.MaxCallDepth = DefaultMaxCallDepth
	}
	r := &Runtime{
		Config:  cfg,
		Table:   table,
		Logger:  NewLogger(os.Stderr, cfg.LogLevel),
		natives: make(map[string]*Function),
	}
	for _, f := range Builtins() {
		if err := r.RegisterNative(f); err != nil {
			panic(err)
		}
	}
	return r
}

// NewRuntimeForTable builds the rate table out of a parsed currency table and
// creates a runtime for it.
func NewRuntimeForTable(stmt *TableStmt, cfg Config) (*Runtime, error) {
	table, err := NewRateTable(stmt)
	if err != nil {
		return nil, err
	}
	return NewRuntime(table, cfg), nil
}

// RegisterNative adds a builtin.  Names must be unique among builtins.
func (r *Runtime) RegisterNative(f *Function) error {
	if f == nil || f.Native == nil {
		return fmt.Errorf("native function must have an implementation")
	}
	if _, exists := r.natives[f.Name]; exists {
		return fmt.Errorf("%w: '%s'", ErrDuplicateNative, f.Name)
	}
	r.natives[f.Name] = f
	return nil
}

func (r *Runtime) GetNative(name string) (*Function, bool) {
	f, ok := r.natives[name]
	return f, ok
}

// Run executes the program's main function writing print output to out.
func (r *Runtime) Run(program *Program, out io.Writer) (Value, error) {
	return r.RunContext(context.Background(), program, out)
}

// RunContext is Run with cancellation.  The context is checked before every call
// and every loop iteration.
func (r *Runtime) RunContext(ctx context.Context, program *Program, out io.Writer) (Value, error) {
	return r.run(NewSimpleEval(ctx, r, program, out))
}

// Trace runs the program recording every function call.  The trace is returned
// even when the run fails.
func (r *Runtime) Trace(ctx context.Context, program *Program, out io.Writer) (Value, *ExecutionTracer, error) {
	eval := NewSimpleEval(ctx, r, program, out)
	eval.Tracer = NewExecutionTracer()
	result, err := r.run(eval)
	return result, eval.Tracer, err
}

func (r *Runtime) run(eval *SimpleEval) (Value, error) {
	eval.RunID = uuid.NewString()

	r.Logger.Info("run %s: started", eval.RunID)
	result, err := eval.EvalMain()
	if err != nil {
		r.Logger.Debug("run %s: aborted: %v", eval.RunID, err)
		return NoneValue(), err
	}
	r.Logger.Info("run %s: finished with %s", eval.RunID, result.Type)
	return result, nil
}
