package msisdn

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/nulleins/msisdn/i18n"
)

// maxCCDigits bounds the greedy country-code search; E.164 country codes are
// at most three digits.
const maxCCDigits = 3

// Registry indexes schemes by (country code, total length) and disambiguates
// free-form digit strings against them. Registries are independent values
// with an explicit lifecycle (construct, populate, query, clear); there is no
// package-global instance. A Registry is safe for concurrent use: lookups
// take a read lock, registration a write lock.
type Registry struct {
	mu      sync.RWMutex
	schemes map[int64]*Scheme
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{schemes: make(map[int64]*Scheme)}
}

// Register adds scheme under its key; a later registration for the same
// (country code, length) key wins.
func (r *Registry) Register(scheme *Scheme) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schemes[scheme.Key()] = scheme
}

// RegisterAll registers each scheme in order.
func (r *Registry) RegisterAll(schemes ...*Scheme) {
	for _, s := range schemes {
		r.Register(s)
	}
}

// Clear removes every registered scheme.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schemes = make(map[int64]*Scheme)
}

// Len returns the number of registered schemes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.schemes)
}

// Schemes returns the registered schemes ordered by key.
func (r *Registry) Schemes() []*Scheme {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]int64, 0, len(r.schemes))
	for k := range r.schemes {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	out := make([]*Scheme, 0, len(keys))
	for _, k := range keys {
		out = append(out, r.schemes[k])
	}
	return out
}

// SchemeFor returns the scheme registered for the given country code and
// total number length.
func (r *Registry) SchemeFor(countryCode int64, length int) (*Scheme, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.schemes[schemeKey(countryCode, length)]
	return s, ok
}

// SchemeNamed returns the scheme with the exact name given, scanning all
// registered schemes.
func (r *Registry) SchemeNamed(name string) (*Scheme, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.schemes {
		if s.name == name {
			return s, true
		}
	}
	return nil, false
}

// CountryCodes returns every country code declared by a registered scheme,
// ascending and deduplicated.
func (r *Registry) CountryCodes() []int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := map[int64]struct{}{}
	var out []int64
	for _, s := range r.schemes {
		for _, cc := range s.cc.Values() {
			if _, ok := seen[cc]; !ok {
				seen[cc] = struct{}{}
				out = append(out, cc)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// AreaCodes returns every NDC value declared by schemes covering the given
// country code, ascending and deduplicated.
func (r *Registry) AreaCodes(countryCode int64) []int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := map[int64]struct{}{}
	var out []int64
	for _, s := range r.schemes {
		if _, ok := s.cc.member[countryCode]; !ok {
			continue
		}
		for _, ndc := range s.ndc.Values() {
			if _, ok := seen[ndc]; !ok {
				seen[ndc] = struct{}{}
				out = append(out, ndc)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Parse disambiguates a free-form number string against the registered
// schemes and returns the validated Number.
//
// The input is normalized (every non-digit stripped, then one leading "00"
// dialing prefix removed) and candidate country-code prefixes are tried from
// maxCCDigits down to one digit. For each prefix length the scheme registered
// under (prefix value, total length) validates the trial CC, NDC and SN; the
// first success wins, so a longer country code shadows a shorter one that is
// its digit-prefix.
func (r *Registry) Parse(raw string) (Number, error) {
	if r.Len() == 0 {
		return Number{}, Issues{Issue{Code: CodeEmptyRegistry,
			Message: i18n.T(CodeEmptyRegistry, nil), Input: raw}}
	}
	if strings.TrimSpace(raw) == "" {
		return Number{}, Issues{Issue{Code: CodeEmptyInput,
			Message: i18n.T(CodeEmptyInput, nil), Input: raw}}
	}
	candidate := normalize(raw)
	// Candidates beyond the numbering space never reach the key lookup: the
	// key's low nibble holds length-1, so a length over 16 would alias
	// another scheme's key.
	if len(candidate) <= MaxLength {
		for ccLen := maxCCDigits; ccLen >= 1; ccLen-- {
			if n, ok := r.match(ccLen, candidate); ok {
				return n, nil
			}
		}
	}
	return Number{}, Issues{Issue{Code: CodeUnknownScheme,
		Message: i18n.T(CodeUnknownScheme, nil), Input: raw,
		Params:  map[string]any{"known": fmt.Sprint(r.Schemes())}}}
}

// match assumes the first ccLen digits of candidate are the country code and
// validates the code and remainder against the scheme registered for that
// code and the candidate's total length.
func (r *Registry) match(ccLen int, candidate string) (Number, bool) {
	if len(candidate) < ccLen {
		return Number{}, false
	}
	tryCC, err := strconv.ParseInt(candidate[:ccLen], 10, 64)
	if err != nil {
		return Number{}, false
	}
	scheme, ok := r.SchemeFor(tryCC, len(candidate))
	if !ok || !scheme.cc.Valid(tryCC) {
		return Number{}, false
	}
	ndcEnd := ccLen + scheme.ndc.Length()
	if ndcEnd >= len(candidate) {
		return Number{}, false
	}
	tryNDC, err := strconv.ParseInt(candidate[ccLen:ndcEnd], 10, 64)
	if err != nil || !scheme.ndc.Valid(tryNDC) {
		return Number{}, false
	}
	trySN, err := strconv.ParseInt(candidate[ndcEnd:], 10, 64)
	if err != nil || !scheme.sn.Valid(trySN) {
		return Number{}, false
	}
	return Number{value: scheme.FromParts(tryCC, tryNDC, trySN), scheme: scheme}, true
}

// FromInt64 converts the encoded value back to its digit string and re-runs
// Parse; decoding an integer is exactly as registry-dependent as parsing a
// raw string.
func (r *Registry) FromInt64(value int64) (Number, error) {
	return r.Parse(strconv.FormatInt(value, 10))
}

// Resolve completes the two-step reconstruction of a deserialized value,
// failing when no registered scheme accounts for it.
func (r *Registry) Resolve(u Unresolved) (Number, error) {
	n, err := r.FromInt64(u.value)
	if err != nil {
		return Number{}, Issues{Issue{Code: CodeUnresolvedScheme,
			Message: i18n.T(CodeUnresolvedScheme, nil),
			Input:   strconv.FormatInt(u.value, 10),
			Cause:   err}}
	}
	return n, nil
}

// normalize strips every non-digit rune, then one leading "00" international
// dialing prefix from the remaining digit string. A leading '+' falls to the
// non-digit strip. The "00" strip is deliberately unconditional; scheme data
// is calibrated to this behavior.
func normalize(raw string) string {
	b := &strings.Builder{}
	for _, c := range raw {
		if c >= '0' && c <= '9' {
			b.WriteRune(c)
		}
	}
	return strings.TrimPrefix(b.String(), "00")
}
