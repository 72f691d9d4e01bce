package msisdn

import (
	"strconv"
	"strings"
)

// Number is an immutable phone-number value: the CC, NDC and SN parts packed
// into a single int64 by the owning scheme's factors. Equality and ordering
// are defined by the encoded value alone; the scheme reference is carried for
// decoding but is never part of identity.
//
// The zero Number is not a usable value; Numbers are obtained from a Scheme
// or a Registry.
type Number struct {
	value  int64
	scheme *Scheme
}

// CountryCode returns the CC part, decoded via the scheme's factors.
func (n Number) CountryCode() int64 {
	cc, _, _ := n.scheme.decodeParts(n.value)
	return cc
}

// AreaCode returns the NDC part, decoded via the scheme's factors.
func (n Number) AreaCode() int64 {
	_, ndc, _ := n.scheme.decodeParts(n.value)
	return ndc
}

// SubscriberNumber returns the SN part, decoded via the scheme's factors.
func (n Number) SubscriberNumber() int64 {
	_, _, sn := n.scheme.decodeParts(n.value)
	return sn
}

// Scheme returns the scheme this number was validated against.
func (n Number) Scheme() *Scheme { return n.scheme }

// Int64 returns the encoded value. Together with a registry holding the
// matching scheme it is sufficient to reconstitute the Number (see
// Deserialize and Registry.Resolve).
func (n Number) Int64() int64 { return n.value }

// Format substitutes the tokens $CC, $NDC and $SN in template with the
// decimal part values; anything else passes through unchanged.
func (n Number) Format(template string) string {
	return strings.NewReplacer(
		"$CC", strconv.FormatInt(n.CountryCode(), 10),
		"$NDC", strconv.FormatInt(n.AreaCode(), 10),
		"$SN", strconv.FormatInt(n.SubscriberNumber(), 10),
	).Replace(template)
}

// String returns the canonical form: '+' followed by the decimal digits of
// the encoded value. The canonical string does not preserve leading zeros
// positionally; decode parts via the accessors (scheme factors), never by
// re-splitting this string.
func (n Number) String() string {
	return "+" + strconv.FormatInt(n.value, 10)
}

// Equal reports whether both numbers hold the same encoded value. Scheme
// identity does not participate: equal values resolved through distinct
// scheme instances compare equal.
func (n Number) Equal(other Number) bool {
	return n.value == other.value
}

// Compare orders numbers by encoded value, returning -1, 0 or +1.
func (n Number) Compare(other Number) int {
	switch {
	case n.value < other.value:
		return -1
	case n.value > other.value:
		return 1
	}
	return 0
}

// Unresolved is a Number reconstituted from its encoded form but not yet
// resolved against a registry. Resolution is an explicit step so that a
// missing scheme surfaces at the call site rather than inside an accessor.
type Unresolved struct {
	value int64
}

// Deserialize wraps an encoded value for later resolution via
// Registry.Resolve.
func Deserialize(value int64) Unresolved {
	return Unresolved{value: value}
}

// Int64 returns the encoded value awaiting resolution.
func (u Unresolved) Int64() int64 { return u.value }
