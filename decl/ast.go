package decl

import (
	"fmt"
	"sort"
	"strings"

	gfn "github.com/panyam/goutils/fn"
)

// --- Interfaces ---

// Node represents any node in the Abstract Syntax Tree.
type Node interface {
	Pos() Location  // Starting position (for error reporting)
	String() string // String representation for debugging
}

// --- Base Struct ---

// NodeInfo embeddable struct for position tracking.
type NodeInfo struct{ StartLoc Location }

func (n *NodeInfo) Pos() Location  { return n.StartLoc }
func (n *NodeInfo) String() string { return "{Node}" } // Default stringer

// At sets the position of the node.  Returns the node info so builders can chain.
func (n *NodeInfo) At(loc Location) *NodeInfo {
	n.StartLoc = loc
	return n
}

// --- Top Level declarations ---

// Program is the root handed over by the parser: all function definitions of a
// source file by name.
type Program struct {
	NodeInfo
	Functions map[string]*FunctionDecl
}

// NewProgram creates a program out of the given functions.  Function names must be
// unique.
func NewProgram(funcs ...*FunctionDecl) (*Program, error) {
	p := &Program{Functions: map[string]*FunctionDecl{}}
	for _, f := range funcs {
		if err := p.RegisterFunction(f); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *Program) RegisterFunction(f *FunctionDecl) error {
	if p.Functions == nil {
		p.Functions = map[string]*FunctionDecl{}
	}
	if _, exists := p.Functions[f.Name]; exists {
		return fmt.Errorf("function definition '%s' already registered", f.Name)
	}
	p.Functions[f.Name] = f
	return nil
}

// GetFunction returns the function called name, if any.
func (p *Program) GetFunction(name string) (*FunctionDecl, bool) {
	if p == nil {
		return nil, false
	}
	f, ok := p.Functions[name]
	return f, ok
}

func (p *Program) String() string {
	names := make([]string, 0, len(p.Functions))
	for name := range p.Functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(gfn.Map(names, func(n string) string { return p.Functions[n].String() }), "\n")
}

// ParamDecl is a single `type name` entry of a function signature.
type ParamDecl struct {
	NodeInfo
	Type PrimitiveType
	Name string
}

func (p *ParamDecl) String() string { return fmt.Sprintf("%s %s", p.Type, p.Name) }

// FunctionDecl represents `returnType name(params) { body }`
type FunctionDecl struct {
	NodeInfo
	ReturnType PrimitiveType
	Name       string
	Parameters []*ParamDecl
	Body       *BlockStmt
}

// ParamTypes returns the declared types of the parameters in order.
func (f *FunctionDecl) ParamTypes() []PrimitiveType {
	return gfn.Map(f.Parameters, func(p *ParamDecl) PrimitiveType { return p.Type })
}

func (f *FunctionDecl) String() string {
	params := gfn.Map(f.Parameters, func(p *ParamDecl) string { return p.String() })
	return fmt.Sprintf("%s %s(%s) %s", f.ReturnType, f.Name, strings.Join(params, ", "), f.Body)
}
