package tsast

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf16"
)

const indentUnit = "    "

// Printer serializes a syntax tree to source text
type Printer struct {
	buf    *bytes.Buffer
	indent int
}

// NewPrinter creates a new printer
func NewPrinter() *Printer {
	return &Printer{buf: &bytes.Buffer{}}
}

// Print returns the text of a file. Statements are written one per line
// with LF endings and a trailing newline.
func Print(f *File) string {
	p := NewPrinter()
	p.File(f)
	return p.String()
}

// PrintExpr returns the text of a single expression
func PrintExpr(e Expr) string {
	p := NewPrinter()
	p.Expr(e)
	return p.String()
}

// String returns everything printed so far
func (p *Printer) String() string {
	return p.buf.String()
}

// File prints every statement of f
func (p *Printer) File(f *File) {
	for _, stmt := range f.Statements {
		p.Stmt(stmt)
		p.buf.WriteString("\n")
	}
}

// Stmt prints a statement
func (p *Printer) Stmt(s Stmt) {
	switch s := s.(type) {
	case *Const:
		if s.Exported {
			p.buf.WriteString("export ")
		}
		p.buf.WriteString("const ")
		p.buf.WriteString(s.Name)
		p.buf.WriteString(" = ")
		p.Expr(s.Value)
		p.buf.WriteString(";")
	default:
		panic(fmt.Sprintf("tsast: unsupported statement %T", s))
	}
}

// Expr prints an expression
func (p *Printer) Expr(e Expr) {
	switch e := e.(type) {
	case *Ident:
		p.buf.WriteString(e.Name)

	case *String:
		p.buf.WriteString(Quote(e.Value))

	case *Binary:
		p.operand(e.Left, needsParensLeft(e.Left))
		p.buf.WriteString(" ")
		p.buf.WriteString(e.Op)
		p.buf.WriteString(" ")
		p.operand(e.Right, needsParensRight(e.Right))

	case *Conditional:
		p.operand(e.Cond, isConditional(e.Cond) || isArrow(e.Cond))
		p.buf.WriteString(" ? ")
		p.Expr(e.Then)
		p.buf.WriteString(" : ")
		p.Expr(e.Else)

	case *Call:
		p.operand(e.Callee, !isPrimary(e.Callee))
		p.args(e.Args)

	case *New:
		p.buf.WriteString("new ")
		p.operand(e.Callee, !isPrimary(e.Callee))
		p.args(e.Args)

	case *Property:
		p.operand(e.Object, !isPrimary(e.Object))
		p.buf.WriteString(".")
		p.buf.WriteString(e.Name)

	case *Element:
		p.operand(e.Object, !isPrimary(e.Object))
		p.buf.WriteString("[")
		p.Expr(e.Index)
		p.buf.WriteString("]")

	case *Arrow:
		p.buf.WriteString("(")
		for i, param := range e.Params {
			if i > 0 {
				p.buf.WriteString(", ")
			}
			p.buf.WriteString(param.Name)
			if param.Optional {
				p.buf.WriteString("?")
			}
			if param.Type != "" {
				p.buf.WriteString(": ")
				p.buf.WriteString(param.Type)
			}
		}
		p.buf.WriteString(") => ")
		_, isObject := e.Body.(*Object)
		p.operand(e.Body, isObject)

	case *Object:
		p.object(e)

	default:
		panic(fmt.Sprintf("tsast: unsupported expression %T", e))
	}
}

func (p *Printer) operand(e Expr, parens bool) {
	if parens {
		p.buf.WriteString("(")
	}
	p.Expr(e)
	if parens {
		p.buf.WriteString(")")
	}
}

func (p *Printer) args(args []Expr) {
	p.buf.WriteString("(")
	for i, arg := range args {
		if i > 0 {
			p.buf.WriteString(", ")
		}
		p.Expr(arg)
	}
	p.buf.WriteString(")")
}

func (p *Printer) object(o *Object) {
	if len(o.Members) == 0 {
		p.buf.WriteString("{}")
		return
	}

	p.buf.WriteString("{\n")
	p.indent++
	for i, m := range o.Members {
		p.writeIndent()
		switch m := m.(type) {
		case *Assign:
			p.buf.WriteString(PropertyKey(m.Key))
			p.buf.WriteString(": ")
			p.Expr(m.Value)
		case *Spread:
			p.buf.WriteString("...")
			p.Expr(m.Expr)
		default:
			panic(fmt.Sprintf("tsast: unsupported member %T", m))
		}
		if i < len(o.Members)-1 {
			p.buf.WriteString(",")
		}
		p.buf.WriteString("\n")
	}
	p.indent--
	p.writeIndent()
	p.buf.WriteString("}")
}

func (p *Printer) writeIndent() {
	p.buf.WriteString(strings.Repeat(indentUnit, p.indent))
}

func isConditional(e Expr) bool {
	_, ok := e.(*Conditional)
	return ok
}

func isArrow(e Expr) bool {
	_, ok := e.(*Arrow)
	return ok
}

func isBinary(e Expr) bool {
	_, ok := e.(*Binary)
	return ok
}

// left operands of a left-associative operator only need parens for
// lower-precedence forms
func needsParensLeft(e Expr) bool {
	return isConditional(e) || isArrow(e)
}

func needsParensRight(e Expr) bool {
	return isBinary(e) || isConditional(e) || isArrow(e)
}

func isPrimary(e Expr) bool {
	switch e.(type) {
	case *Ident, *String, *Call, *Property, *Element:
		return true
	}
	return false
}

// PropertyKey returns key as written on the left of a property assignment
func PropertyKey(key string) string {
	if IsIdentifierName(key) {
		return key
	}
	return Quote(key)
}

// Quote returns s as a double-quoted string literal. Non-ASCII characters
// are written as UTF-16 escapes.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\v':
			b.WriteString(`\v`)
		default:
			switch {
			case r < 0x20 || r == 0x7f:
				fmt.Fprintf(&b, `\u%04X`, r)
			case r > 0x7f:
				for _, unit := range utf16.Encode([]rune{r}) {
					fmt.Fprintf(&b, `\u%04X`, unit)
				}
			default:
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
