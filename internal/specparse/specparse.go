// Package specparse scans the textual scheme-specification grammar:
//
//	CC=<len>[:<values>];NDC=<len>[:<values>];SN=<len>[:<pattern>][;TYPE=<kind>][;ISO3166=<code>]
//
// Clauses are order-independent and case-insensitive; whitespace is ignored.
// The scanner only resolves clause structure and part lengths; the value
// domains after ':' are handed back verbatim for the part rules to interpret.
package specparse

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Part is one scanned CC/NDC/SN clause.
type Part struct {
	Length int
	Domain string // text after ':', "" when absent
	Set    bool   // clause was present in the specification
}

// Spec is the scanned form of a scheme specification.
type Spec struct {
	CC, NDC, SN Part
	Kind        string // TYPE= clause value, "" when absent
	ISO3166     string // ISO3166= clause value, "" when absent
}

// Error reports a syntax problem in a specification clause.
type Error struct {
	Clause  string
	Message string
}

func (e *Error) Error() string {
	if e.Clause != "" {
		return fmt.Sprintf("%s: %s", e.Clause, e.Message)
	}
	return e.Message
}

// Parse scans spec into its clauses. Duplicate clauses follow last-wins
// semantics; unknown keys are rejected.
func Parse(spec string) (Spec, error) {
	var out Spec
	cleaned := strings.ToUpper(stripSpace(spec))
	if cleaned == "" {
		return out, &Error{Message: "empty specification"}
	}
	for _, clause := range strings.Split(cleaned, ";") {
		if clause == "" {
			continue
		}
		kv := strings.SplitN(clause, "=", 2)
		if len(kv) != 2 {
			return out, &Error{Clause: clause, Message: "expected key=value"}
		}
		key, val := kv[0], kv[1]
		switch key {
		case "CC":
			p, err := parsePart(key, val)
			if err != nil {
				return out, err
			}
			out.CC = p
		case "NDC":
			p, err := parsePart(key, val)
			if err != nil {
				return out, err
			}
			out.NDC = p
		case "SN":
			p, err := parsePart(key, val)
			if err != nil {
				return out, err
			}
			out.SN = p
		case "TYPE":
			out.Kind = val
		case "ISO3166":
			out.ISO3166 = val
		default:
			return out, &Error{Clause: clause, Message: fmt.Sprintf("unknown key %q", key)}
		}
	}
	return out, nil
}

func parsePart(key, val string) (Part, error) {
	lenSpec, domain, _ := strings.Cut(val, ":")
	length, err := strconv.Atoi(lenSpec)
	if err != nil {
		return Part{}, &Error{Clause: key, Message: fmt.Sprintf("bad length %q", lenSpec)}
	}
	return Part{Length: length, Domain: domain, Set: true}, nil
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
