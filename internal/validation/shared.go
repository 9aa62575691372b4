// Package validation checks raw request parameters before they reach the
// service layer, reporting every invalid field in one pass.
package validation

import (
	"fmt"
	"sort"
	"strings"
)

// Error aggregates per-field validation failures for one request.
type Error struct {
	Fields map[string]string
}

// Error renders the field problems in a stable order.
func (e *Error) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, e.Fields[field]))
	}
	return strings.Join(msgs, "; ")
}
