package normalize

import "fmt"

// Kind discriminates operation failures so an orchestrating caller can decide
// whether to retry with adjusted inputs. Nothing in this package retries.
type Kind string

const (
	// KindInvalidInput marks malformed arguments: wrong shape or wrong type.
	KindInvalidInput Kind = "invalid_input"
	// KindInvalidMapping marks a mapping missing canonical fields.
	KindInvalidMapping Kind = "invalid_mapping"
	// KindMappingNotFound marks an unknown mapping identifier.
	KindMappingNotFound Kind = "mapping_not_found"
	// KindUnsupportedSource marks a table with no rows or no headers.
	KindUnsupportedSource Kind = "unsupported_source"
)

// Error carries the failure kind, a message, and the originating operation.
type Error struct {
	Kind    Kind
	Op      string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.Op, e.Message, e.Kind)
}

func errf(kind Kind, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Message: fmt.Sprintf(format, args...)}
}
