package interp

import (
	"fmt"

	"github.com/sdecook/golox/internal/ast"
	"github.com/sdecook/golox/internal/token"
)

// Callable is the capability set over native functions, user functions,
// and classes.
type Callable interface {
	Arity() int
	Call(i *Interpreter, args []Value) (Value, error)
	String() string
}

// RuntimeError carries the offending token (for its source line) and a
// message. It is never caught by Lox code — only the top-level caller of
// Interpret sees it.
type RuntimeError struct {
	Token token.Token
	Msg   string
}

func (e *RuntimeError) Error() string { return e.Msg }

// returnSignal is the non-local-return counterpart to RuntimeError on
// the same error-typed result channel, carrying a Value rather than a
// message. It is caught exactly by the nearest enclosing user-function
// call (Function.Call) and never escapes to the top level.
type returnSignal struct {
	value Value
}

func (returnSignal) Error() string { return "return" }

// NativeFunction wraps a host-provided Callable, e.g. the built-in clock.
type NativeFunction struct {
	name  string
	arity int
	fn    func(args []Value) Value
}

// NewNativeFunction builds a fixed-arity native function bound to the
// given name.
func NewNativeFunction(name string, arity int, fn func(args []Value) Value) *NativeFunction {
	return &NativeFunction{name: name, arity: arity, fn: fn}
}

func (n *NativeFunction) Arity() int { return n.arity }

func (n *NativeFunction) Call(_ *Interpreter, args []Value) (Value, error) {
	return n.fn(args), nil
}

func (n *NativeFunction) String() string { return "<native fn>" }

// Function is a user-defined Lox function or method: parameters, body,
// the environment it closed over at definition time, and whether it is a
// class's "init" method.
type Function struct {
	decl          *ast.Function
	closure       *Environment
	isInitializer bool
}

// NewFunction builds a Function capturing closure as its defining
// environment.
func NewFunction(decl *ast.Function, closure *Environment, isInitializer bool) *Function {
	return &Function{decl: decl, closure: closure, isInitializer: isInitializer}
}

func (f *Function) Arity() int { return len(f.decl.Params) }

func (f *Function) String() string { return fmt.Sprintf("<fn %s>", f.decl.Name.Lexeme) }

// Call runs the function body in a fresh environment chained to its
// closure, with parameters bound by position. An initializer always
// yields the bound instance, return value or not.
func (f *Function) Call(i *Interpreter, args []Value) (Value, error) {
	env := NewEnvironment(f.closure)
	for idx, param := range f.decl.Params {
		env.Define(param.Lexeme, args[idx])
	}

	err := i.executeBlock(f.decl.Body, env)
	if err != nil {
		var ret returnSignal
		if asReturn(err, &ret) {
			if f.isInitializer {
				return f.closure.GetAt(0, "this"), nil
			}
			return ret.value, nil
		}
		return nil, err
	}

	if f.isInitializer {
		return f.closure.GetAt(0, "this"), nil
	}
	return nil, nil
}

// asReturn is a small errors.As-alike specialized to returnSignal, kept
// local since returnSignal is deliberately unexported control-flow, not a
// public error type callers should ever match against.
func asReturn(err error, out *returnSignal) bool {
	if ret, ok := err.(returnSignal); ok {
		*out = ret
		return true
	}
	return false
}

// bind produces a new Function whose closure is a fresh frame, chained to
// the original closure, defining "this" as instance.
func (f *Function) bind(instance *Instance) *Function {
	env := NewEnvironment(f.closure)
	env.Define("this", instance)
	return &Function{decl: f.decl, closure: env, isInitializer: f.isInitializer}
}

// Class is a Lox class: its name, optional superclass, and method table.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

func (c *Class) String() string { return c.Name }

// Arity is the arity of "init" if present, else 0.
func (c *Class) Arity() int {
	if init := c.FindMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

// Call constructs a fresh Instance and, if the class declares "init",
// binds and calls it before returning the instance.
func (c *Class) Call(i *Interpreter, args []Value) (Value, error) {
	instance := &Instance{class: c, fields: make(map[string]Value)}
	if init := c.FindMethod("init"); init != nil {
		if _, err := init.bind(instance).Call(i, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// FindMethod searches the class's own methods, then its superclass chain.
func (c *Class) FindMethod(name string) *Function {
	if m, ok := c.Methods[name]; ok {
		return m
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil
}

// Instance is a live instance of a Lox class: its class reference and a
// mutable field map, a namespace kept separate from the class's method
// table.
type Instance struct {
	class  *Class
	fields map[string]Value
}

func (inst *Instance) String() string { return inst.class.Name + " instance" }

// Get checks fields before methods; a method found via the class is
// returned bound to this instance.
func (inst *Instance) Get(name token.Token) (Value, error) {
	if v, ok := inst.fields[name.Lexeme]; ok {
		return v, nil
	}
	if method := inst.class.FindMethod(name.Lexeme); method != nil {
		return method.bind(inst), nil
	}
	return nil, &RuntimeError{Token: name, Msg: fmt.Sprintf("Undefined property '%s'.", name.Lexeme)}
}

// Set writes a field directly, creating it if absent.
func (inst *Instance) Set(name token.Token, value Value) {
	inst.fields[name.Lexeme] = value
}
