// Package errmodel defines the compact error payload used across the view
// store. Recoverable conditions (categories storage, codec, validation) flow
// through the repository's error handler; defects are raised on the panic
// channel and are never offered to the handler.
package errmodel

import (
	"encoding/json"
	"errors"
	"strings"
)

// Category values for compact errors.
const (
	CategoryStorage    = "storage"
	CategoryCodec      = "codec"
	CategoryValidation = "validation"
	CategoryDefect     = "defect"
)

// Error is the compact error payload used internally and handed to error
// handlers. It implements the error interface.
type Error struct {
	Category string         `json:"category"`
	Code     string         `json:"code"`
	Message  string         `json:"message"`
	Context  map[string]any `json:"context,omitempty"`
	Causes   []Error        `json:"causes,omitempty"`
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Code != "" {
		return e.Code + ": " + e.Message
	}
	return e.Message
}

// New constructs a new compact error.
func New(category, code, message string, ctx map[string]any, causes ...error) *Error {
	ce := &Error{Category: category, Code: code, Message: truncate(message, 512)}
	if len(ctx) > 0 {
		ce.Context = truncateContext(ctx)
	}
	for _, c := range causes {
		if c == nil {
			continue
		}
		ce.Causes = append(ce.Causes, *From(c))
	}
	return ce
}

// From converts any error into a compact Error. If err is already *Error, it's returned as-is.
func From(err error) *Error {
	var ce *Error
	if err == nil {
		return nil
	}
	if errors.As(err, &ce) {
		return ce
	}
	// Default to defect/internal for unknown error types.
	return &Error{Category: CategoryDefect, Code: "internal", Message: truncate(err.Error(), 512)}
}

// Convenience constructors.
func Storage(code, message string, ctx map[string]any, cause error) *Error {
	if cause != nil {
		return New(CategoryStorage, code, message, ctx, cause)
	}
	return New(CategoryStorage, code, message, ctx)
}

func Codec(code, message string, ctx map[string]any, cause error) *Error {
	if cause != nil {
		return New(CategoryCodec, code, message, ctx, cause)
	}
	return New(CategoryCodec, code, message, ctx)
}

func Validation(code, message string, ctx map[string]any) *Error {
	return New(CategoryValidation, code, message, ctx)
}

// Defect builds an error for the fail-fast channel: a condition the view
// store treats as a programming or schema bug rather than a runtime fact.
func Defect(code, message string, ctx map[string]any, cause error) *Error {
	if cause != nil {
		return New(CategoryDefect, code, message, ctx, cause)
	}
	return New(CategoryDefect, code, message, ctx)
}

// IsCategory checks if err belongs to a specific category.
func IsCategory(err error, category string) bool {
	ce := From(err)
	return ce != nil && strings.EqualFold(ce.Category, category)
}

// truncate trims a string to max characters.
func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

// truncateContext trims long string values in the context map.
func truncateContext(ctx map[string]any) map[string]any {
	out := make(map[string]any, len(ctx))
	for k, v := range ctx {
		switch t := v.(type) {
		case string:
			out[k] = truncate(t, 256)
		default:
			// Try to stringify primitive values to keep payload compact.
			b, err := json.Marshal(t)
			if err == nil && len(b) > 0 {
				s := string(b)
				if len(s) > 256 {
					s = truncate(s, 256)
				}
				out[k] = s
			} else {
				out[k] = t
			}
		}
	}
	return out
}
