package msisdn

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// Scheme-specification (configuration) errors.
	CodeSpecSyntax  = "spec_syntax"
	CodePartLength  = "part_length"
	CodeValueLength = "value_length"
	CodeBadRange    = "bad_range"
	CodeTotalLength = "total_length"
	CodeMissingPart = "missing_part"
	// Input errors.
	CodeEmptyInput    = "empty_input"
	CodeUnknownScheme = "unknown_scheme"
	CodeInvalidNumber = "invalid_number"
	// Registry-state and precondition errors.
	CodeEmptyRegistry    = "empty_registry"
	CodeUnresolvedScheme = "unresolved_scheme"
)

// Issue represents a single validation entry.
type Issue struct {
	Part    string // Offending part or clause ("CC", "NDC", "SN", "TYPE"), "" when not part-specific.
	Code    string // One of the codes listed above.
	Message string
	Input   string // Optional: the offending raw input or specification fragment.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"want":2, "got":3})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. value_length at NDC: value must be 2 digits
		if it.Part != "" {
			fmt.Fprintf(b, "%s at %s: %s", it.Code, it.Part, it.Message)
		} else {
			fmt.Fprintf(b, "%s: %s", it.Code, it.Message)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// IssueOf creates an Issue for the given part with provided code and message.
// This is a convenience helper to improve readability at call sites with many parameters.
func IssueOf(part, code, msg string, params map[string]any) Issue {
	return Issue{Part: part, Code: code, Message: msg, Params: params}
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// HasCode reports whether err carries at least one Issue with the given
// code, looking through nested Cause chains.
func HasCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code {
			return true
		}
		if it.Cause != nil && HasCode(it.Cause, code) {
			return true
		}
	}
	return false
}
