package decl

import (
	"fmt"
	"sort"
)

// Variable is a named, typed slot.  Its type tag is fixed when it is declared.
type Variable struct {
	Name  string
	Value Value
}

// Update replaces the value held by the variable.  The new value must have the
// same type tag as the current one.
func (v *Variable) Update(value Value) error {
	if v.Value.Type != value.Type {
		return fmt.Errorf("%w: cannot assign %s to '%s' of type %s", ErrInvalidVariableType, value.Type, v.Name, v.Value.Type)
	}
	v.Value = value
	return nil
}

// Context holds the variables of a single lexical scope.
type Context struct {
	vars map[string]*Variable
}

func NewContext() *Context {
	return &Context{vars: make(map[string]*Variable)}
}

// Add declares a new variable in this context.
func (c *Context) Add(name string, value Value) (*Variable, error) {
	if _, exists := c.vars[name]; exists {
		return nil, fmt.Errorf("%w: '%s'", ErrVariableAlreadyExists, name)
	}
	v := &Variable{Name: name, Value: value}
	c.vars[name] = v
	return v, nil
}

// Get returns the variable declared in this context only.
func (c *Context) Get(name string) (*Variable, bool) {
	v, ok := c.vars[name]
	return v, ok
}

func (c *Context) Len() int {
	return len(c.vars)
}

// Names returns the variable names in this context (sorted, for debugging)
func (c *Context) Names() []string {
	out := make([]string, 0, len(c.vars))
	for k := range c.vars {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// ContextStack is the chain of active scopes.  The top of the stack is the
// innermost scope and lookups walk from the top to the bottom.
type ContextStack struct {
	contexts []*Context
}

// NewContextStack creates a stack whose bottom contexts are the given ones (the
// last one ends up on top).  With no arguments a single empty context is pushed.
func NewContextStack(bottom ...*Context) *ContextStack {
	s := &ContextStack{}
	if len(bottom) == 0 {
		s.PushContext()
	}
	for _, c := range bottom {
		s.contexts = append(s.contexts, c)
	}
	return s
}

// PushContext enters a new scope and returns it.
func (s *ContextStack) PushContext() *Context {
	c := NewContext()
	s.contexts = append(s.contexts, c)
	return c
}

// PopContext leaves the innermost scope discarding its variables.
func (s *ContextStack) PopContext() {
	if len(s.contexts) == 0 {
		panic("PopContext called on an empty context stack")
	}
	s.contexts[len(s.contexts)-1] = nil
	s.contexts = s.contexts[:len(s.contexts)-1]
}

func (s *ContextStack) Depth() int {
	return len(s.contexts)
}

// Top returns the innermost context.
func (s *ContextStack) Top() *Context {
	if len(s.contexts) == 0 {
		return nil
	}
	return s.contexts[len(s.contexts)-1]
}

// AddVariable declares name in the innermost scope.  Shadowing a variable of an
// outer scope is allowed, redeclaring one in the same scope is not.
func (s *ContextStack) AddVariable(name string, value Value) error {
	top := s.Top()
	if top == nil {
		top = s.PushContext()
	}
	_, err := top.Add(name, value)
	return err
}

func (s *ContextStack) find(name string) (*Variable, error) {
	for i := len(s.contexts) - 1; i >= 0; i-- {
		if v, ok := s.contexts[i].Get(name); ok {
			return v, nil
		}
	}
	return nil, fmt.Errorf("%w: '%s'", ErrVariableDoesNotExist, name)
}

// LookupVariable returns the value of the innermost variable called name.
func (s *ContextStack) LookupVariable(name string) (Value, error) {
	v, err := s.find(name)
	if err != nil {
		return Value{}, err
	}
	return v.Value, nil
}

// UpdateVariable replaces the value of the innermost variable called name.  On
// failure the stored value is left untouched.
func (s *ContextStack) UpdateVariable(name string, value Value) error {
	v, err := s.find(name)
	if err != nil {
		return err
	}
	return v.Update(value)
}
