package interp

import (
	"fmt"

	"github.com/sdecook/golox/internal/token"
)

// Environment is one frame in the lexical scope chain. Frames are shared
// by reference: multiple closures may point at the same Environment, and
// a class's method environments form cycles through "super"/"this" — a
// cycle Go's garbage collector reclaims fine, unlike a naive refcounting
// host.
type Environment struct {
	enclosing *Environment
	values    map[string]Value
}

// NewEnvironment creates a frame chained to enclosing (nil for globals).
func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{enclosing: enclosing, values: make(map[string]Value)}
}

// Define unconditionally binds name in this frame. Re-definition at the
// same scope is allowed here; the resolver is what prevents it for locals.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Get looks up name along the chain, erroring at the bottom if undefined.
func (e *Environment) Get(name token.Token) (Value, error) {
	if v, ok := e.values[name.Lexeme]; ok {
		return v, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, &RuntimeError{Token: name, Msg: fmt.Sprintf("Undefined variable '%s'.", name.Lexeme)}
}

// Assign overwrites name's binding along the chain, erroring if undefined
// anywhere in the chain.
func (e *Environment) Assign(name token.Token, value Value) error {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = value
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value)
	}
	return &RuntimeError{Token: name, Msg: fmt.Sprintf("Undefined variable '%s'.", name.Lexeme)}
}

// ancestor walks exactly dist enclosing links, starting from e.
func (e *Environment) ancestor(dist int) *Environment {
	env := e
	for i := 0; i < dist; i++ {
		env = env.enclosing
	}
	return env
}

// GetAt reads name from exactly the frame dist links up, with no
// fallback — the fast path for resolver-resolved locals. It never fails
// if the resolver's guarantee holds.
func (e *Environment) GetAt(dist int, name string) Value {
	return e.ancestor(dist).values[name]
}

// AssignAt writes value into exactly the frame dist links up.
func (e *Environment) AssignAt(dist int, name token.Token, value Value) {
	e.ancestor(dist).values[name.Lexeme] = value
}
