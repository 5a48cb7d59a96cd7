package statements

import (
	"strings"
)

// Error statement error with the company and quarter it happened on
type Error struct {
	// Kind one of constants.Err* sentinels
	Kind    error
	Message string
	Company string
	Quarter Quarter
	Err     error
}

// NewError create statement error of kind
func NewError(kind error, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Kind.Error())

	if e.Company != "" {
		sb.WriteString(" company=")
		sb.WriteString(e.Company)
	}

	if !e.Quarter.IsZero() {
		sb.WriteString(" quarter=")
		sb.WriteString(e.Quarter.String())
	}

	if e.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Message)
	}

	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}

	return sb.String()
}

// Unwrap expose both kind and cause to errors.Is and errors.As
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}

	return []error{e.Kind, e.Err}
}
