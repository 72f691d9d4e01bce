package msisdn

import "fmt"

// SchemeBuilder assembles a scheme specification from per-part fragments.
// It is a convenience over ParseScheme for call sites that construct schemes
// programmatically rather than from a definition file.
type SchemeBuilder struct {
	name string
	cc   string
	ndc  string
	sn   string
	kind Kind
	iso  string
}

// BuildScheme starts a new scheme builder.
func BuildScheme() *SchemeBuilder { return &SchemeBuilder{} }

// Name sets the scheme name.
func (b *SchemeBuilder) Name(name string) *SchemeBuilder { b.name = name; return b }

// CC sets the country-code clause body, e.g. "3:353".
func (b *SchemeBuilder) CC(spec string) *SchemeBuilder { b.cc = spec; return b }

// NDC sets the national-destination-code clause body, e.g. "2:82,83,85-89".
func (b *SchemeBuilder) NDC(spec string) *SchemeBuilder { b.ndc = spec; return b }

// SN sets the subscriber-number clause body, e.g. "7" or "6:9****0".
func (b *SchemeBuilder) SN(spec string) *SchemeBuilder { b.sn = spec; return b }

// Kind sets the scheme category.
func (b *SchemeBuilder) Kind(kind Kind) *SchemeBuilder { b.kind = kind; return b }

// ISO3166 sets the country tag.
func (b *SchemeBuilder) ISO3166(code string) *SchemeBuilder { b.iso = code; return b }

// Build composes the specification and parses it via ParseScheme.
func (b *SchemeBuilder) Build() (*Scheme, error) {
	spec := fmt.Sprintf("CC=%s;NDC=%s;SN=%s", b.cc, b.ndc, b.sn)
	if b.kind != KindUndefined {
		spec += ";TYPE=" + b.kind.String()
	}
	if b.iso != "" {
		spec += ";ISO3166=" + b.iso
	}
	return ParseScheme(b.name, spec)
}

// NumberBuilder assembles a number from explicit parts, resolving and
// validating it against a registry on Build.
type NumberBuilder struct {
	cc  int64
	ndc int64
	sn  int64
}

// BuildNumber starts a new number builder.
func BuildNumber() *NumberBuilder { return &NumberBuilder{} }

// CC sets the country code.
func (b *NumberBuilder) CC(cc int64) *NumberBuilder { b.cc = cc; return b }

// NDC sets the national destination code.
func (b *NumberBuilder) NDC(ndc int64) *NumberBuilder { b.ndc = ndc; return b }

// SN sets the subscriber number.
func (b *NumberBuilder) SN(sn int64) *NumberBuilder { b.sn = sn; return b }

// Build concatenates the parts and parses the result against reg. Leading
// zeros within a part are not representable here; prefer Scheme.FromParts
// plus Scheme.FromInt64 when exact digit positions matter.
func (b *NumberBuilder) Build(reg *Registry) (Number, error) {
	return reg.Parse(fmt.Sprintf("+%d%d%d", b.cc, b.ndc, b.sn))
}
