// Package resolver implements the static variable-resolution pass: it
// walks the parsed statements once, before any evaluation happens, and
// records into the interpreter's locals map how
// many enclosing scope frames separate each variable use from its
// binding. It also performs the static-semantics checks that don't need
// evaluation: undefined-variable-in-own-initializer, top-level return,
// return-value-from-initializer, this/super misuse, self-inheritance, and
// duplicate local declarations.
package resolver

import (
	"github.com/sdecook/golox/internal/ast"
	"github.com/sdecook/golox/internal/diagnostics"
	"github.com/sdecook/golox/internal/interp"
	"github.com/sdecook/golox/internal/token"
)

type functionType int

const (
	functionNone functionType = iota
	functionFunction
	functionInitializer
	functionMethod
)

type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// Resolver walks an AST once, annotating i.Locals as it goes.
type Resolver struct {
	interp   *interp.Interpreter
	reporter *diagnostics.Reporter

	scopes     []map[string]bool
	currentFn  functionType
	currentCls classType
}

// New builds a Resolver that will annotate i's locals map and report
// static-semantics errors through r.
func New(i *interp.Interpreter, r *diagnostics.Reporter) *Resolver {
	return &Resolver{interp: i, reporter: r}
}

// Resolve walks every top-level statement. Check r.HadError() afterward;
// a program with unresolved static errors should not be evaluated.
func (r *Resolver) Resolve(stmts []ast.Stmt) {
	r.resolveStmts(stmts)
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Null:
		// nothing to resolve

	case *ast.Block:
		r.beginScope()
		r.resolveStmts(s.Statements)
		r.endScope()

	case *ast.Var:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)

	case *ast.Function:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, functionFunction)

	case *ast.Expression:
		r.resolveExpr(s.Expression)

	case *ast.If:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}

	case *ast.Print:
		r.resolveExpr(s.Expression)

	case *ast.Return:
		if r.currentFn == functionNone {
			r.reporter.ErrorAt(s.Keyword, "Can't return from top-level code.")
		}
		if s.Value != nil {
			if r.currentFn == functionInitializer {
				r.reporter.ErrorAt(s.Keyword, "Can't return a value from an initializer.")
			}
			r.resolveExpr(s.Value)
		}

	case *ast.While:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)

	case *ast.Class:
		r.resolveClass(s)

	default:
		panic("resolver: unhandled statement type")
	}
}

func (r *Resolver) resolveClass(s *ast.Class) {
	enclosingCls := r.currentCls
	r.currentCls = classClass

	r.declare(s.Name)
	r.define(s.Name)

	if s.Superclass != nil {
		r.currentCls = classSubclass
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.reporter.ErrorAt(s.Superclass.Name, "A class can't inherit from itself.")
		}
		r.resolveExpr(s.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range s.Methods {
		fnType := functionMethod
		if method.Name.Lexeme == "init" {
			fnType = functionInitializer
		}
		r.resolveFunction(method, fnType)
	}

	r.endScope()

	if s.Superclass != nil {
		r.endScope()
	}

	r.currentCls = enclosingCls
}

func (r *Resolver) resolveFunction(fn *ast.Function, typ functionType) {
	enclosingFn := r.currentFn
	r.currentFn = typ

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.currentFn = enclosingFn
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Literal:
		// nothing to resolve

	case *ast.Variable:
		if len(r.scopes) > 0 {
			if defined, declared := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; declared && !defined {
				r.reporter.ErrorAt(e.Name, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e, e.Name)

	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name)

	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Unary:
		r.resolveExpr(e.Right)

	case *ast.Grouping:
		r.resolveExpr(e.Expression)

	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Args {
			r.resolveExpr(arg)
		}

	case *ast.Get:
		r.resolveExpr(e.Object)

	case *ast.Set:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)

	case *ast.This:
		if r.currentCls == classNone {
			r.reporter.ErrorAt(e.Keyword, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(e, e.Keyword)

	case *ast.Super:
		switch {
		case r.currentCls == classNone:
			r.reporter.ErrorAt(e.Keyword, "Can't use 'super' outside of a class.")
		case r.currentCls != classSubclass:
			r.reporter.ErrorAt(e.Keyword, "Can't use 'super' in a class with no superclass.")
		}
		r.resolveLocal(e, e.Keyword)

	default:
		panic("resolver: unhandled expression type")
	}
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.reporter.ErrorAt(name, "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal scans scopes from innermost outward; on the first scope
// containing name, it records the scope distance in the interpreter's
// locals map. An unresolved name is left for the interpreter to treat as
// global.
func (r *Resolver) resolveLocal(expr ast.Expr, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.interp.Resolve(expr, len(r.scopes)-1-i)
			return
		}
	}
}
