// Package interp implements the Lox tree-walking evaluator: the
// environment/closure model, the callable protocol, class/instance/
// method-binding semantics, and the runtime error model.
package interp

import (
	"fmt"
	"io"
	"time"

	"github.com/sdecook/golox/internal/ast"
	"github.com/sdecook/golox/internal/token"
)

// Interpreter holds the globals environment, the current environment, and
// the resolver's scope-depth annotations. Its lifetime spans a whole
// program run, or — for the REPL — a whole session, so that globals
// persist between lines.
type Interpreter struct {
	Globals *Environment
	env     *Environment

	// Locals maps a resolved Variable/Assign/This/Super expression to its
	// scope distance, as computed by the resolver. Keyed by pointer
	// identity of the ast.Expr node (see internal/ast's doc comment).
	Locals map[ast.Expr]int

	out io.Writer
}

// New builds an Interpreter writing `print` output to out, with the
// built-in `clock` native already defined in globals.
func New(out io.Writer) *Interpreter {
	globals := NewEnvironment(nil)
	i := &Interpreter{
		Globals: globals,
		env:     globals,
		Locals:  make(map[ast.Expr]int),
		out:     out,
	}

	globals.Define("clock", NewNativeFunction("clock", 0, func([]Value) Value {
		return float64(time.Now().UnixMilli())
	}))

	return i
}

// Interpret executes a program's statements in order. It returns the
// first *RuntimeError raised; static errors are expected to have been
// ruled out already by the scanner/parser/resolver passes.
func (i *Interpreter) Interpret(stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Resolve records that expr, wherever it is evaluated, should look up its
// name exactly depth frames up. Called by the resolver.
func (i *Interpreter) Resolve(expr ast.Expr, depth int) {
	i.Locals[expr] = depth
}

func (i *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.Null:
		return nil

	case *ast.Expression:
		_, err := i.eval(s.Expression)
		return err

	case *ast.Print:
		v, err := i.eval(s.Expression)
		if err != nil {
			return err
		}
		fmt.Fprintln(i.out, Stringify(v))
		return nil

	case *ast.Var:
		var value Value
		if s.Initializer != nil {
			v, err := i.eval(s.Initializer)
			if err != nil {
				return err
			}
			value = v
		}
		i.env.Define(s.Name.Lexeme, value)
		return nil

	case *ast.Block:
		return i.executeBlock(s.Statements, NewEnvironment(i.env))

	case *ast.If:
		cond, err := i.eval(s.Condition)
		if err != nil {
			return err
		}
		if isTruthy(cond) {
			return i.execute(s.Then)
		} else if s.Else != nil {
			return i.execute(s.Else)
		}
		return nil

	case *ast.While:
		for {
			cond, err := i.eval(s.Condition)
			if err != nil {
				return err
			}
			if !isTruthy(cond) {
				return nil
			}
			if err := i.execute(s.Body); err != nil {
				return err
			}
		}

	case *ast.Function:
		fn := NewFunction(s, i.env, false)
		i.env.Define(s.Name.Lexeme, fn)
		return nil

	case *ast.Return:
		var value Value
		if s.Value != nil {
			v, err := i.eval(s.Value)
			if err != nil {
				return err
			}
			value = v
		}
		return returnSignal{value: value}

	case *ast.Class:
		return i.executeClass(s)

	default:
		panic(fmt.Sprintf("interp: unhandled statement type %T", stmt))
	}
}

func (i *Interpreter) executeClass(s *ast.Class) error {
	var superclass *Class
	if s.Superclass != nil {
		v, err := i.eval(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*Class)
		if !ok {
			return &RuntimeError{Token: s.Superclass.Name, Msg: "Superclass must be a class."}
		}
		superclass = sc
	}

	i.env.Define(s.Name.Lexeme, nil)

	classEnv := i.env
	if superclass != nil {
		classEnv = NewEnvironment(i.env)
		classEnv.Define("super", superclass)
	}

	methods := make(map[string]*Function, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = NewFunction(m, classEnv, m.Name.Lexeme == "init")
	}

	class := &Class{Name: s.Name.Lexeme, Superclass: superclass, Methods: methods}

	return i.env.Assign(s.Name, class)
}

// executeBlock runs stmts against env, always restoring the previous
// environment on every exit path — normal completion, a propagated
// RuntimeError, or a returnSignal.
func (i *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) error {
	previous := i.env
	i.env = env
	defer func() { i.env = previous }()

	for _, stmt := range stmts {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) eval(expr ast.Expr) (Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil

	case *ast.Grouping:
		return i.eval(e.Expression)

	case *ast.Variable:
		return i.lookupVariable(e.Name, e)

	case *ast.Assign:
		value, err := i.eval(e.Value)
		if err != nil {
			return nil, err
		}
		if dist, ok := i.Locals[e]; ok {
			i.env.AssignAt(dist, e.Name, value)
		} else if err := i.Globals.Assign(e.Name, value); err != nil {
			return nil, err
		}
		return value, nil

	case *ast.Unary:
		right, err := i.eval(e.Right)
		if err != nil {
			return nil, err
		}
		switch e.Op.Type {
		case token.Bang:
			return !isTruthy(right), nil
		case token.Minus:
			n, ok := right.(float64)
			if !ok {
				return nil, &RuntimeError{Token: e.Op, Msg: "Operand must be a number."}
			}
			return -n, nil
		}
		panic("interp: unreachable unary operator")

	case *ast.Logical:
		left, err := i.eval(e.Left)
		if err != nil {
			return nil, err
		}
		if e.Op.Type == token.Or {
			if isTruthy(left) {
				return left, nil
			}
		} else if !isTruthy(left) {
			return left, nil
		}
		return i.eval(e.Right)

	case *ast.Binary:
		return i.evalBinary(e)

	case *ast.Call:
		return i.evalCall(e)

	case *ast.Get:
		obj, err := i.eval(e.Object)
		if err != nil {
			return nil, err
		}
		inst, ok := obj.(*Instance)
		if !ok {
			return nil, &RuntimeError{Token: e.Name, Msg: "Only instances have properties."}
		}
		return inst.Get(e.Name)

	case *ast.Set:
		obj, err := i.eval(e.Object)
		if err != nil {
			return nil, err
		}
		inst, ok := obj.(*Instance)
		if !ok {
			return nil, &RuntimeError{Token: e.Name, Msg: "Only instances have fields."}
		}
		value, err := i.eval(e.Value)
		if err != nil {
			return nil, err
		}
		inst.Set(e.Name, value)
		return value, nil

	case *ast.This:
		return i.lookupVariable(e.Keyword, e)

	case *ast.Super:
		return i.evalSuper(e)

	default:
		panic(fmt.Sprintf("interp: unhandled expression type %T", expr))
	}
}

func (i *Interpreter) lookupVariable(name token.Token, expr ast.Expr) (Value, error) {
	if dist, ok := i.Locals[expr]; ok {
		return i.env.GetAt(dist, name.Lexeme), nil
	}
	return i.Globals.Get(name)
}

func (i *Interpreter) evalCall(e *ast.Call) (Value, error) {
	callee, err := i.eval(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, 0, len(e.Args))
	for _, argExpr := range e.Args {
		v, err := i.eval(argExpr)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, &RuntimeError{Token: e.Paren, Msg: "Can only call functions and classes."}
	}

	if len(args) != fn.Arity() {
		return nil, &RuntimeError{
			Token: e.Paren,
			Msg:   fmt.Sprintf("Expected %d arguments but got %d.", fn.Arity(), len(args)),
		}
	}

	return fn.Call(i, args)
}

func (i *Interpreter) evalSuper(e *ast.Super) (Value, error) {
	dist := i.Locals[e]
	superVal := i.env.GetAt(dist, "super")
	superclass := superVal.(*Class)

	// "this" always lives exactly one frame closer than "super".
	this := i.env.GetAt(dist-1, "this").(*Instance)

	method := superclass.FindMethod(e.Method.Lexeme)
	if method == nil {
		return nil, &RuntimeError{Token: e.Method, Msg: fmt.Sprintf("Undefined property '%s'.", e.Method.Lexeme)}
	}

	return method.bind(this), nil
}

func (i *Interpreter) evalBinary(e *ast.Binary) (Value, error) {
	left, err := i.eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Type {
	case token.Plus:
		if ls, ok := left.(string); ok {
			if rs, ok := right.(string); ok {
				return ls + rs, nil
			}
		}
		if ln, ok := left.(float64); ok {
			if rn, ok := right.(float64); ok {
				return ln + rn, nil
			}
		}
		return nil, &RuntimeError{Token: e.Op, Msg: "Operands must be two numbers or two strings."}

	case token.Minus:
		l, r, err := numberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return l - r, nil

	case token.Star:
		l, r, err := numberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return l * r, nil

	case token.Slash:
		l, r, err := numberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return l / r, nil

	case token.Greater:
		l, r, err := numberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return l > r, nil

	case token.GreaterEqual:
		l, r, err := numberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return l >= r, nil

	case token.Less:
		l, r, err := numberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return l < r, nil

	case token.LessEqual:
		l, r, err := numberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return l <= r, nil

	case token.EqualEqual:
		return isEqual(left, right), nil

	case token.BangEqual:
		return !isEqual(left, right), nil
	}

	panic("interp: unreachable binary operator")
}

func numberOperands(op token.Token, left, right Value) (float64, float64, error) {
	l, lok := left.(float64)
	r, rok := right.(float64)
	if !lok || !rok {
		return 0, 0, &RuntimeError{Token: op, Msg: "Operands must be numbers."}
	}
	return l, r, nil
}
