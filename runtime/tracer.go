package runtime

import (
	"sync"

	gfn "github.com/panyam/goutils/fn"
)

// TraceEventKind defines the type of a trace event.
type TraceEventKind string

const (
	EventEnter TraceEventKind = "enter"
	EventExit  TraceEventKind = "exit"
)

// TraceEvent is a single function entry or exit of a traced run.
type TraceEvent struct {
	Kind         TraceEventKind `json:"kind"`
	ParentID     int            `json:"parent_id,omitempty"`
	ID           int            `json:"id"`
	Target       string         `json:"target"`
	Arguments    []string       `json:"args,omitempty"`
	ReturnValue  string         `json:"ret,omitempty"`
	ErrorMessage string         `json:"err,omitempty"`
}

// ExecutionTracer records the calls made by a single run.  An exit event has the
// same parent as the matching enter event.
type ExecutionTracer struct {
	mu     sync.Mutex
	Events []*TraceEvent
	nextID int
	stack  []int
}

func NewExecutionTracer() *ExecutionTracer {
	return &ExecutionTracer{
		Events: make([]*TraceEvent, 0),
		nextID: 1,
		stack:  []int{0},
	}
}

func (t *ExecutionTracer) currentParentID() int {
	return t.stack[len(t.stack)-1]
}

// Enter records a call of target and makes it the parent of nested calls.
func (t *ExecutionTracer) Enter(target string, args ...Value) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	event := &TraceEvent{
		Kind:      EventEnter,
		ID:        t.nextID,
		ParentID:  t.currentParentID(),
		Target:    target,
		Arguments: gfn.Map(args, func(v Value) string { return v.String() }),
	}
	t.nextID++
	t.Events = append(t.Events, event)
	t.stack = append(t.stack, event.ID)
	return event.ID
}

// Exit records the end of the innermost call.
func (t *ExecutionTracer) Exit(target string, retVal Value, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.stack) > 1 {
		t.stack = t.stack[:len(t.stack)-1]
	}
	event := &TraceEvent{
		Kind:     EventExit,
		ID:       t.nextID,
		ParentID: t.currentParentID(),
		Target:   target,
	}
	t.nextID++
	if err != nil {
		event.ErrorMessage = err.Error()
	} else {
		event.ReturnValue = retVal.String()
	}
	t.Events = append(t.Events, event)
}

// Calls returns the targets of all enter events in call order.
func (t *ExecutionTracer) Calls() (out []string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, e := range t.Events {
		if e.Kind == EventEnter {
			out = append(out, e.Target)
		}
	}
	return
}
