package lingo

import (
	"context"
	"fmt"
)

// Text returns the raw localized string for id in the active language.
func (c *Context) Text(ctx context.Context, id int) (string, error) {
	return c.svc.store.Text(ctx, id, c.ActiveLanguageID())
}

// HTMLText returns the localized string for id with HTML entities escaped.
func (c *Context) HTMLText(ctx context.Context, id int) (string, error) {
	text, err := c.Text(ctx, id)
	if err != nil {
		return "", err
	}
	return EscapeHTML(text), nil
}

// TextFormatted looks up a printf-style template by id and substitutes the
// positional args into it.
func (c *Context) TextFormatted(ctx context.Context, id int, args ...any) (string, error) {
	format, err := c.Text(ctx, id)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(format, args...), nil
}

// HTMLTextFormatted is TextFormatted for HTML output. The template and the
// args are independently either passed through as pre-escaped HTML or
// entity-escaped before substitution, per the two flags. Only string args
// can carry markup; other argument types pass through untouched.
func (c *Context) HTMLTextFormatted(
	ctx context.Context,
	id int,
	formatIsHTML bool,
	argsAreHTML bool,
	args ...any,
) (string, error) {
	format, err := c.Text(ctx, id)
	if err != nil {
		return "", err
	}

	if !formatIsHTML {
		format = EscapeHTML(format)
	}

	if !argsAreHTML {
		escaped := make([]any, len(args))
		for i, arg := range args {
			if s, ok := arg.(string); ok {
				escaped[i] = EscapeHTML(s)
				continue
			}
			escaped[i] = arg
		}
		args = escaped
	}

	return fmt.Sprintf(format, args...), nil
}

// TextReplaced looks up a template by id and applies the replacement pairs
// in a single simultaneous pass, longest key winning.
func (c *Context) TextReplaced(ctx context.Context, id int, pairs map[string]string) (string, error) {
	text, err := c.Text(ctx, id)
	if err != nil {
		return "", err
	}
	return ReplaceAll(text, pairs), nil
}

// HTMLTextReplaced is TextReplaced over the entity-escaped template. The
// replacement values are substituted verbatim, so callers supplying markup
// must pass it pre-escaped.
func (c *Context) HTMLTextReplaced(ctx context.Context, id int, pairs map[string]string) (string, error) {
	text, err := c.Text(ctx, id)
	if err != nil {
		return "", err
	}
	return ReplaceAll(EscapeHTML(text), pairs), nil
}

// Word returns the localized word for id in the active language.
func (c *Context) Word(ctx context.Context, id int) (string, error) {
	return c.svc.store.Word(ctx, id, c.ActiveLanguageID())
}

// HTMLWord returns the localized word for id with HTML entities escaped.
func (c *Context) HTMLWord(ctx context.Context, id int) (string, error) {
	word, err := c.Word(ctx, id)
	if err != nil {
		return "", err
	}
	return EscapeHTML(word), nil
}
