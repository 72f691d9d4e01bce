package msisdn

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nulleins/msisdn/i18n"
	"github.com/nulleins/msisdn/internal/specparse"
)

// MaxLength is the E.164 ceiling on the total digit count of a number.
const MaxLength = 15

// Part clause names used in specifications and Issue.Part.
const (
	PartCC  = "CC"
	PartNDC = "NDC"
	PartSN  = "SN"
)

// Kind categorizes the numbers a scheme describes.
type Kind uint8

const (
	KindUndefined Kind = iota
	KindFixedLine
	KindMobile
	KindTollFree
	KindPremiumRate
	KindSharedCost
	KindVoIP
	KindPersonal
)

var kindNames = map[Kind]string{
	KindUndefined:   "undefined",
	KindFixedLine:   "fixed-line",
	KindMobile:      "mobile",
	KindTollFree:    "toll-free",
	KindPremiumRate: "premium-rate",
	KindSharedCost:  "shared-cost",
	KindVoIP:        "voip",
	KindPersonal:    "personal",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "undefined"
}

// ParseKind resolves a kind name, tolerating case and '_'/'-' separators
// (e.g. "FIXED_LINE", "fixed-line" and "fixedline" are all accepted).
func ParseKind(name string) (Kind, bool) {
	squash := func(s string) string {
		s = strings.ToLower(s)
		s = strings.ReplaceAll(s, "_", "")
		return strings.ReplaceAll(s, "-", "")
	}
	want := squash(name)
	for k, n := range kindNames {
		if squash(n) == want {
			return k, true
		}
	}
	// legacy spelling from older scheme files
	if want == "sharecost" {
		return KindSharedCost, true
	}
	return KindUndefined, false
}

// Scheme describes one numbering plan (a country/operator scheme): the
// lengths and value domains of the CC, NDC and SN parts, plus the factors
// used to pack and unpack the three parts into a single int64. A Scheme is
// frozen once parsed; it carries no mutable state.
type Scheme struct {
	name    string
	iso3166 string
	kind    Kind

	cc  *SetRule
	ndc *SetRule
	sn  *PatternRule

	length    int   // total digits: cc + ndc + sn
	ccFactor  int64 // 10^(ndc.length + sn.length)
	ndcFactor int64 // 10^(sn.length)
}

// ParseScheme builds a scheme from its textual specification, e.g.
//
//	ParseScheme("IE.mobile", "CC=3:353;NDC=2:82,83,85-89;SN=7")
//
// CC and NDC take set rules (comma-separated literals and low-high ranges),
// SN takes a digit/'*' pattern rule. All three parts are mandatory, the CC
// value set must be non-empty, and the total length may not exceed
// MaxLength. Optional TYPE= and ISO3166= clauses tag the scheme.
func ParseScheme(name, specification string) (*Scheme, error) {
	spec, err := specparse.Parse(specification)
	if err != nil {
		var part string
		var perr *specparse.Error
		if errors.As(err, &perr) {
			part = perr.Clause
		}
		return nil, Issues{Issue{Part: part, Code: CodeSpecSyntax,
			Message: i18n.T(CodeSpecSyntax, nil), Input: specification, Cause: err}}
	}

	var missing Issues
	for _, p := range []struct {
		name string
		set  bool
	}{{PartCC, spec.CC.Set}, {PartNDC, spec.NDC.Set}, {PartSN, spec.SN.Set}} {
		if !p.set {
			missing = AppendIssues(missing, Issue{Part: p.name, Code: CodeMissingPart,
				Message: i18n.T(CodeMissingPart, nil), Input: specification})
		}
	}
	if len(missing) > 0 {
		return nil, missing
	}

	cc, err := buildSetRule(PartCC, spec.CC)
	if err != nil {
		return nil, err
	}
	ndc, err := buildSetRule(PartNDC, spec.NDC)
	if err != nil {
		return nil, err
	}
	sn, err := newPatternRule(PartSN, spec.SN.Length)
	if err != nil {
		return nil, err
	}
	if spec.SN.Domain != "" {
		if err := sn.configure(PartSN, spec.SN.Domain); err != nil {
			return nil, err
		}
	}

	if len(cc.Values()) == 0 {
		return nil, Issues{Issue{Part: PartCC, Code: CodeSpecSyntax,
			Message: i18n.T(CodeSpecSyntax, nil), Input: specification,
			Params: map[string]any{"reason": "CC must enumerate at least one country code"}}}
	}
	total := cc.Length() + ndc.Length() + sn.Length()
	if total > MaxLength {
		return nil, Issues{Issue{Code: CodeTotalLength,
			Message: i18n.T(CodeTotalLength, nil), Input: specification,
			Params: map[string]any{"got": total, "max": MaxLength}}}
	}

	s := &Scheme{
		name:      name,
		iso3166:   spec.ISO3166,
		cc:        cc,
		ndc:       ndc,
		sn:        sn,
		length:    total,
		ccFactor:  pow10(ndc.Length() + sn.Length()),
		ndcFactor: pow10(sn.Length()),
	}
	if spec.Kind != "" {
		k, ok := ParseKind(spec.Kind)
		if !ok {
			return nil, Issues{Issue{Part: "TYPE", Code: CodeSpecSyntax,
				Message: i18n.T(CodeSpecSyntax, nil), Input: specification,
				Params: map[string]any{"type": spec.Kind}}}
		}
		s.kind = k
	}
	return s, nil
}

func buildSetRule(part string, p specparse.Part) (*SetRule, error) {
	r, err := newSetRule(part, p.Length)
	if err != nil {
		return nil, err
	}
	if p.Domain != "" {
		if err := r.configure(part, p.Domain); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Name returns the scheme's registered name (e.g. "IE.mobile").
func (s *Scheme) Name() string { return s.name }

// ISO3166 returns the ISO 3166-1 alpha-2 country tag, or "" when unset.
func (s *Scheme) ISO3166() string { return s.iso3166 }

// Kind returns the scheme's number category.
func (s *Scheme) Kind() Kind { return s.kind }

// Length returns the total digit count of a number in this scheme.
func (s *Scheme) Length() int { return s.length }

// CC returns the country-code rule.
func (s *Scheme) CC() *SetRule { return s.cc }

// NDC returns the national-destination-code rule.
func (s *Scheme) NDC() *SetRule { return s.ndc }

// SN returns the subscriber-number rule.
func (s *Scheme) SN() *PatternRule { return s.sn }

// FromParts packs the three parts into the scheme's int64 encoding. It is
// pure arithmetic; use Valid to check the parts against the scheme's rules.
func (s *Scheme) FromParts(cc, ndc, sn int64) int64 {
	return cc*s.ccFactor + ndc*s.ndcFactor + sn
}

// Valid reports whether each part satisfies its rule.
func (s *Scheme) Valid(cc, ndc, sn int64) bool {
	return s.cc.Valid(cc) && s.ndc.Valid(ndc) && s.sn.Valid(sn)
}

// ValidNumber reports whether n decodes to parts that satisfy this scheme.
func (s *Scheme) ValidNumber(n Number) bool {
	return s.Valid(n.CountryCode(), n.AreaCode(), n.SubscriberNumber())
}

// FromInt64 wraps an encoded value as a Number of this scheme, validating
// the decoded parts against the scheme's rules.
func (s *Scheme) FromInt64(value int64) (Number, error) {
	cc, ndc, sn := s.decodeParts(value)
	if !s.Valid(cc, ndc, sn) {
		return Number{}, Issues{Issue{Code: CodeInvalidNumber,
			Message: i18n.T(CodeInvalidNumber, nil),
			Input:   fmt.Sprintf("%d", value),
			Params:  map[string]any{"scheme": s.name}}}
	}
	return Number{value: value, scheme: s}, nil
}

func (s *Scheme) decodeParts(value int64) (cc, ndc, sn int64) {
	cc = value / s.ccFactor
	rem := value - cc*s.ccFactor
	ndc = rem / s.ndcFactor
	sn = rem - ndc*s.ndcFactor
	return cc, ndc, sn
}

// Key returns the registry key for this scheme: the first country-code value
// shifted left four bits, or-ed with the total length minus one. Lengths of
// 1..16 share the low nibble, leaving the country code unbounded above.
func (s *Scheme) Key() int64 {
	return schemeKey(s.cc.Values()[0], s.length)
}

func schemeKey(cc int64, length int) int64 {
	return cc<<4 | int64(length-1)
}

func (s *Scheme) String() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "%s={CC=%s, NDC=%s, SN=%s}", s.name, s.cc, s.ndc, s.sn)
	if s.kind != KindUndefined {
		fmt.Fprintf(b, ", type=%s", s.kind)
	}
	return b.String()
}

func pow10(n int) int64 {
	r := int64(1)
	for i := 0; i < n; i++ {
		r *= 10
	}
	return r
}
