// Package tsast is a small TypeScript syntax tree covering the constructs the
// path compiler emits, and a printer that lays them out the way the
// TypeScript compiler's printer does.
package tsast

// Node is any syntax tree node
type Node interface {
	node()
}

// Expr is an expression node
type Expr interface {
	Node
	expr()
}

// Stmt is a statement node
type Stmt interface {
	Node
	stmt()
}

// Member is one entry of an object literal
type Member interface {
	Node
	member()
}

// Ident is an identifier reference
type Ident struct {
	Name string
}

// String is a string literal; Value is unescaped
type String struct {
	Value string
}

// Binary is a binary expression. Only left-associative operators of equal
// precedence are emitted, so "+" is the only operator in practice.
type Binary struct {
	Left  Expr
	Op    string
	Right Expr
}

// Conditional is cond ? then : else
type Conditional struct {
	Cond Expr
	Then Expr
	Else Expr
}

// Call is callee(args...)
type Call struct {
	Callee Expr
	Args   []Expr
}

// New is new callee(args...)
type New struct {
	Callee Expr
	Args   []Expr
}

// Property is object.name
type Property struct {
	Object Expr
	Name   string
}

// Element is object[index]
type Element struct {
	Object Expr
	Index  Expr
}

// Param is one arrow function parameter
type Param struct {
	Name     string
	Optional bool
	Type     string
}

// Arrow is (params) => body
type Arrow struct {
	Params []Param
	Body   Expr
}

// Object is an object literal, always printed one member per line
type Object struct {
	Members []Member
}

// Assign is a property assignment. Keys that are not identifier names are
// printed quoted.
type Assign struct {
	Key   string
	Value Expr
}

// Spread is ...expr inside an object literal
type Spread struct {
	Expr Expr
}

// Const is a const declaration with a single binding
type Const struct {
	Name     string
	Exported bool
	Value    Expr
}

// File is a source file
type File struct {
	Statements []Stmt
}

func (*Ident) node()       {}
func (*String) node()      {}
func (*Binary) node()      {}
func (*Conditional) node() {}
func (*Call) node()        {}
func (*New) node()         {}
func (*Property) node()    {}
func (*Element) node()     {}
func (*Arrow) node()       {}
func (*Object) node()      {}
func (*Assign) node()      {}
func (*Spread) node()      {}
func (*Const) node()       {}

func (*Ident) expr()       {}
func (*String) expr()      {}
func (*Binary) expr()      {}
func (*Conditional) expr() {}
func (*Call) expr()        {}
func (*New) expr()         {}
func (*Property) expr()    {}
func (*Element) expr()     {}
func (*Arrow) expr()       {}
func (*Object) expr()      {}

func (*Assign) member() {}
func (*Spread) member() {}

func (*Const) stmt() {}

// Constructors keep call sites in the compiler short.

// Name returns an identifier
func Name(name string) *Ident { return &Ident{Name: name} }

// Str returns a string literal
func Str(value string) *String { return &String{Value: value} }

// Plus returns left + right
func Plus(left, right Expr) *Binary { return &Binary{Left: left, Op: "+", Right: right} }

// Cond returns cond ? then : els
func Cond(cond, then, els Expr) *Conditional {
	return &Conditional{Cond: cond, Then: then, Else: els}
}

// CallOf returns callee(args...)
func CallOf(callee Expr, args ...Expr) *Call { return &Call{Callee: callee, Args: args} }

// NewOf returns new callee(args...)
func NewOf(callee Expr, args ...Expr) *New { return &New{Callee: callee, Args: args} }

// Obj returns an object literal
func Obj(members ...Member) *Object { return &Object{Members: members} }
