package msisdn

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/nulleins/msisdn/i18n"
)

// PartRule describes the content rule for one positional part of a phone
// number (CC, NDC or SN): a fixed digit length and, optionally, the domain
// of values valid for that part. Rules are configured once while a scheme
// specification is parsed and never mutated afterwards.
type PartRule interface {
	// Length returns the digit count the part occupies in a full number.
	Length() int
	// Valid reports whether value belongs to the part's domain.
	Valid(value int64) bool
}

// SetRule accepts values of a fixed digit length drawn from an explicit set
// of literals and/or inclusive ranges. An empty set accepts any value of the
// correct digit length.
type SetRule struct {
	length int
	values []int64 // sorted ascending, deduplicated
	member map[int64]struct{}
}

func newSetRule(part string, length int) (*SetRule, error) {
	if length <= 0 {
		return nil, Issues{Issue{Part: part, Code: CodePartLength,
			Message: i18n.T(CodePartLength, nil),
			Params:  map[string]any{"got": length}}}
	}
	return &SetRule{length: length, member: map[int64]struct{}{}}, nil
}

// configure parses a comma-separated list of decimal literals and low-high
// inclusive ranges, each exactly r.length digits wide.
func (r *SetRule) configure(part, spec string) error {
	for _, tok := range strings.Split(spec, ",") {
		if strings.Contains(tok, "-") {
			if err := r.addRange(part, tok); err != nil {
				return err
			}
			continue
		}
		if len(tok) != r.length {
			return Issues{Issue{Part: part, Code: CodeValueLength,
				Message: i18n.T(CodeValueLength, nil), Input: tok,
				Params: map[string]any{"want": r.length, "got": len(tok)}}}
		}
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return Issues{Issue{Part: part, Code: CodeSpecSyntax,
				Message: i18n.T(CodeSpecSyntax, nil), Input: tok, Cause: err}}
		}
		// a leading zero would store a value shorter than the part
		if digitCount(v) != r.length {
			return Issues{Issue{Part: part, Code: CodeValueLength,
				Message: i18n.T(CodeValueLength, nil), Input: tok,
				Params: map[string]any{"want": r.length, "got": digitCount(v)}}}
		}
		r.add(v)
	}
	sort.Slice(r.values, func(i, j int) bool { return r.values[i] < r.values[j] })
	return nil
}

func (r *SetRule) addRange(part, rangeSpec string) error {
	bounds := strings.SplitN(rangeSpec, "-", 2)
	low, lerr := strconv.ParseInt(bounds[0], 10, 64)
	high, herr := strconv.ParseInt(bounds[1], 10, 64)
	if lerr != nil || herr != nil {
		return Issues{Issue{Part: part, Code: CodeSpecSyntax,
			Message: i18n.T(CodeSpecSyntax, nil), Input: rangeSpec}}
	}
	if low >= high {
		return Issues{Issue{Part: part, Code: CodeBadRange,
			Message: i18n.T(CodeBadRange, nil), Input: rangeSpec,
			Params: map[string]any{"low": low, "high": high}}}
	}
	if digitCount(low) != r.length || digitCount(high) != r.length {
		return Issues{Issue{Part: part, Code: CodeValueLength,
			Message: i18n.T(CodeValueLength, nil), Input: rangeSpec,
			Params: map[string]any{"want": r.length}}}
	}
	for v := low; v <= high; v++ {
		r.add(v)
	}
	return nil
}

func (r *SetRule) add(v int64) {
	if _, ok := r.member[v]; ok {
		return
	}
	r.member[v] = struct{}{}
	r.values = append(r.values, v)
}

// Length returns the digit count of the part described by this rule.
func (r *SetRule) Length() int { return r.length }

// Valid reports whether value has exactly the rule's digit count and, when
// the value set is non-empty, is a member of it.
func (r *SetRule) Valid(value int64) bool {
	if digitCount(value) != r.length {
		return false
	}
	if len(r.values) == 0 {
		return true
	}
	_, ok := r.member[value]
	return ok
}

// Values returns the configured values in ascending order. Empty means any
// value of the correct digit count is accepted.
func (r *SetRule) Values() []int64 {
	out := make([]int64, len(r.values))
	copy(out, r.values)
	return out
}

func (r *SetRule) String() string {
	return fmt.Sprintf("in%v", r.values)
}

// PatternRule accepts values of a fixed digit length whose decimal form
// matches a template of digits and '*' wildcards. With no template
// configured it accepts any value (permissive default).
type PatternRule struct {
	length  int
	pattern string
	re      *regexp.Regexp // nil until a template is configured
}

func newPatternRule(part string, length int) (*PatternRule, error) {
	if length <= 0 {
		return nil, Issues{Issue{Part: part, Code: CodePartLength,
			Message: i18n.T(CodePartLength, nil),
			Params:  map[string]any{"got": length}}}
	}
	return &PatternRule{length: length}, nil
}

// configure compiles a template of exactly r.length characters where '*'
// positions accept any digit.
func (r *PatternRule) configure(part, spec string) error {
	if len(spec) != r.length {
		return Issues{Issue{Part: part, Code: CodeValueLength,
			Message: i18n.T(CodeValueLength, nil), Input: spec,
			Params: map[string]any{"want": r.length, "got": len(spec)}}}
	}
	re, err := regexp.Compile("^" + strings.ReplaceAll(spec, "*", "[0-9]") + "$")
	if err != nil {
		return Issues{Issue{Part: part, Code: CodeSpecSyntax,
			Message: i18n.T(CodeSpecSyntax, nil), Input: spec, Cause: err}}
	}
	r.pattern = spec
	r.re = re
	return nil
}

// Length returns the digit count of the part described by this rule.
func (r *PatternRule) Length() int { return r.length }

// Valid reports whether the decimal form of value matches the configured
// template in full. A rule with no template accepts every value.
// The compiled regexp is safe for concurrent use; matching shares no
// mutable state between callers.
func (r *PatternRule) Valid(value int64) bool {
	return r.re == nil || r.re.MatchString(strconv.FormatInt(value, 10))
}

// Pattern returns the configured template, or "" when none was set.
func (r *PatternRule) Pattern() string { return r.pattern }

func (r *PatternRule) String() string {
	if r.pattern == "" {
		return fmt.Sprintf("any(%d)", r.length)
	}
	return fmt.Sprintf("match[%s]", r.pattern)
}

// digitCount returns the number of decimal digits in v, or 0 for negatives.
func digitCount(v int64) int {
	if v < 0 {
		return 0
	}
	n := 1
	for v >= 10 {
		v /= 10
		n++
	}
	return n
}
