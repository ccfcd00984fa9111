package lingo

import (
	"context"
	"errors"
	"fmt"
)

// ErrLanguageStackUnderflow is returned by Pop when only the base
// language remains on the stack.
var ErrLanguageStackUnderflow = errors.New("lingo: language stack underflow")

// Context tracks the ordered stack of active languages for one session or
// request. The stack is never empty; the bottom entry is the base language
// the context was created with. A Context must not be mutated from
// multiple goroutines; create one per request instead.
type Context struct {
	svc   *Service
	stack []int
}

// ActiveLanguageID returns the language currently on top of the stack.
func (c *Context) ActiveLanguageID() int {
	return c.stack[len(c.stack)-1]
}

// Depth reports how many languages are on the stack.
func (c *Context) Depth() int {
	return len(c.stack)
}

// Push makes languageID the active language, keeping the previous one
// underneath for a later Pop.
func (c *Context) Push(languageID int) error {
	if _, err := c.svc.registry.Get(languageID); err != nil {
		return err
	}

	c.stack = append(c.stack, languageID)
	return nil
}

// Pop removes the active language, restoring the previous one. The base
// language can never be popped; the stack is left untouched on failure.
func (c *Context) Pop() error {
	if len(c.stack) <= 1 {
		return ErrLanguageStackUnderflow
	}

	c.stack = c.stack[:len(c.stack)-1]
	return nil
}

// Set replaces the active language in place without growing the stack.
// The replaced language is not recoverable by a later Pop.
func (c *Context) Set(languageID int) error {
	if _, err := c.svc.registry.Get(languageID); err != nil {
		return err
	}

	c.stack[len(c.stack)-1] = languageID
	return nil
}

// active returns the Language on top of the stack. Stack entries are
// validated on the way in, so the registry lookup cannot fail here.
func (c *Context) active() Language {
	lang, _ := c.svc.registry.Get(c.ActiveLanguageID())
	return lang
}

// Dir returns "ltr" or "rtl" for the active language.
func (c *Context) Dir() string {
	return c.active().Direction
}

// Lang returns the active language's short code, e.g. "en".
func (c *Context) Lang() string {
	return c.active().Code
}

// Locale returns the active language's locale identifier, e.g. "en_US".
func (c *Context) Locale() string {
	return c.active().Locale
}

// InternalCode returns the active language's internal code.
func (c *Context) InternalCode() string {
	return c.active().InternalCode
}

// InternalLanguageMap enumerates all configured languages as internal
// code to language id.
func (c *Context) InternalLanguageMap() map[string]int {
	return c.svc.registry.InternalLanguageMap()
}

type contextKey string

func (c contextKey) String() string {
	return "lingo/" + string(c)
}

const ctxKeyLanguageContext = contextKey("languageContextKey")

// ToContext stores a language context in the supplied context.
func ToContext(ctx context.Context, lc *Context) context.Context {
	return context.WithValue(ctx, ctxKeyLanguageContext, lc)
}

// FromContext extracts a language context from the supplied context if
// any exists.
func FromContext(ctx context.Context) *Context {
	lc, ok := ctx.Value(ctxKeyLanguageContext).(*Context)
	if !ok {
		return nil
	}
	return lc
}

// String describes the context for logging.
func (c *Context) String() string {
	return fmt.Sprintf("lingo.Context(active=%d, depth=%d)", c.ActiveLanguageID(), len(c.stack))
}
