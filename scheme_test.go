package msisdn_test

import (
	"testing"

	"github.com/nulleins/msisdn"
)

const ieMobileSpec = "CC=3:353;NDC=2:82,83,85,86,87,88,89;SN=7"

func mustScheme(t *testing.T, name, spec string) *msisdn.Scheme {
	t.Helper()
	s, err := msisdn.ParseScheme(name, spec)
	if err != nil {
		t.Fatalf("ParseScheme(%q): %v", spec, err)
	}
	return s
}

func TestParseScheme_IEMobile(t *testing.T) {
	s := mustScheme(t, "IE.mobile", ieMobileSpec)
	if got := s.Name(); got != "IE.mobile" {
		t.Fatalf("name=%q", got)
	}
	if got := s.Length(); got != 12 {
		t.Fatalf("length=%d, want 12", got)
	}
	if got := s.CC().Values(); len(got) != 1 || got[0] != 353 {
		t.Fatalf("cc values=%v", got)
	}
	if got := s.NDC().Length(); got != 2 {
		t.Fatalf("ndc length=%d", got)
	}
	for _, ndc := range []int64{82, 83, 85, 86, 87, 88, 89} {
		if !s.NDC().Valid(ndc) {
			t.Fatalf("ndc %d should be valid", ndc)
		}
	}
	if s.NDC().Valid(84) {
		t.Fatalf("ndc 84 should be invalid")
	}
	if s.NDC().Valid(860) {
		t.Fatalf("ndc 860 has wrong digit count")
	}
	if !s.SN().Valid(3578380) {
		t.Fatalf("sn 3578380 should be valid (no pattern configured)")
	}
}

func TestParseScheme_RangeValues(t *testing.T) {
	s := mustScheme(t, "IE", "CC=3:353;NDC=2:82,83,85-89;SN=7")
	want := []int64{82, 83, 85, 86, 87, 88, 89}
	got := s.NDC().Values()
	if len(got) != len(want) {
		t.Fatalf("ndc values=%v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ndc values=%v, want %v", got, want)
		}
	}
}

func TestParseScheme_EmptySetAcceptsAnyOfLength(t *testing.T) {
	s := mustScheme(t, "US", "CC=1:1;NDC=3;SN=7")
	if !s.NDC().Valid(855) {
		t.Fatalf("any 3-digit ndc should be valid")
	}
	if s.NDC().Valid(85) || s.NDC().Valid(8555) {
		t.Fatalf("wrong-length ndc accepted")
	}
}

func TestParseScheme_SNPattern(t *testing.T) {
	s := mustScheme(t, "X", "CC=2:99;NDC=2:22;SN=6:9****0")
	if got := s.SN().Pattern(); got != "9****0" {
		t.Fatalf("pattern=%q", got)
	}
	if !s.SN().Valid(911110) {
		t.Fatalf("911110 should match 9****0")
	}
	if s.SN().Valid(911111) {
		t.Fatalf("911111 should not match 9****0")
	}
	if s.SN().Valid(91110) {
		t.Fatalf("5-digit value should not match a 6-char pattern")
	}
}

func TestParseScheme_CaseAndWhitespace(t *testing.T) {
	s := mustScheme(t, "IE", " cc = 3:353 ; ndc=2:88 ; sn=7 ; type=MOBILE ; iso3166=ie ")
	if got := s.Kind(); got != msisdn.KindMobile {
		t.Fatalf("kind=%v", got)
	}
	if got := s.ISO3166(); got != "IE" {
		t.Fatalf("iso=%q", got)
	}
}

func TestParseScheme_Errors(t *testing.T) {
	cases := []struct {
		name string
		spec string
		code string
	}{
		{"missing parts", "CC=3:353", msisdn.CodeMissingPart},
		{"zero length", "CC=0:353;NDC=2;SN=7", msisdn.CodePartLength},
		{"negative length", "CC=3:353;NDC=-2;SN=7", msisdn.CodePartLength},
		{"total too long", "CC=3:353;NDC=6;SN=7", msisdn.CodeTotalLength},
		{"wrong length literal", "CC=3:353;NDC=2:820;SN=7", msisdn.CodeValueLength},
		{"leading zero literal", "CC=3:353;NDC=2:08;SN=7", msisdn.CodeValueLength},
		{"bad range order", "CC=3:353;NDC=2:85-82;SN=7", msisdn.CodeBadRange},
		{"range bounds wrong length", "CC=3:353;NDC=2:85-890;SN=7", msisdn.CodeValueLength},
		{"pattern length mismatch", "CC=2:99;NDC=2:22;SN=6:9***0", msisdn.CodeValueLength},
		{"no cc values", "CC=3;NDC=2;SN=7", msisdn.CodeSpecSyntax},
		{"missing equals", "CC;NDC=2;SN=7", msisdn.CodeSpecSyntax},
		{"unknown key", "CC=3:353;NDC=2;SN=7;COLOR=blue", msisdn.CodeSpecSyntax},
		{"unknown type", "CC=3:353;NDC=2;SN=7;TYPE=carrier", msisdn.CodeSpecSyntax},
		{"empty spec", "   ", msisdn.CodeSpecSyntax},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := msisdn.ParseScheme("bad", tc.spec)
			if err == nil {
				t.Fatalf("expected error for %q", tc.spec)
			}
			if !msisdn.HasCode(err, tc.code) {
				t.Fatalf("spec %q: want code %s, got %v", tc.spec, tc.code, err)
			}
		})
	}
}

func TestScheme_FromPartsAndValid(t *testing.T) {
	s := mustScheme(t, "IE.mobile", ieMobileSpec)
	v := s.FromParts(353, 86, 3578380)
	if v != 353863578380 {
		t.Fatalf("FromParts=%d, want 353863578380", v)
	}
	if !s.Valid(353, 86, 3578380) {
		t.Fatalf("parts should be valid")
	}
	if s.Valid(353, 84, 3578380) {
		t.Fatalf("ndc 84 should fail")
	}
	if s.Valid(354, 86, 3578380) {
		t.Fatalf("cc 354 should fail")
	}
}

func TestScheme_FromInt64(t *testing.T) {
	s := mustScheme(t, "X", "CC=2:99;NDC=2:22;SN=6:111111")
	n, err := s.FromInt64(9922111111)
	if err != nil {
		t.Fatalf("FromInt64(9922111111): %v", err)
	}
	if n.CountryCode() != 99 || n.AreaCode() != 22 || n.SubscriberNumber() != 111111 {
		t.Fatalf("parts=%d,%d,%d", n.CountryCode(), n.AreaCode(), n.SubscriberNumber())
	}
	if _, err := s.FromInt64(9922111112); !msisdn.HasCode(err, msisdn.CodeInvalidNumber) {
		t.Fatalf("want invalid_number, got %v", err)
	}
}

func TestScheme_RoundTrip(t *testing.T) {
	s := mustScheme(t, "IE.mobile", ieMobileSpec)
	for _, parts := range [][3]int64{
		{353, 82, 1234567},
		{353, 89, 9999999},
		{353, 86, 3578380},
	} {
		n, err := s.FromInt64(s.FromParts(parts[0], parts[1], parts[2]))
		if err != nil {
			t.Fatalf("round trip %v: %v", parts, err)
		}
		if n.CountryCode() != parts[0] || n.AreaCode() != parts[1] || n.SubscriberNumber() != parts[2] {
			t.Fatalf("decode(encode(%v)) = %d,%d,%d", parts,
				n.CountryCode(), n.AreaCode(), n.SubscriberNumber())
		}
	}
}

func TestScheme_Key(t *testing.T) {
	ie := mustScheme(t, "IE.mobile", ieMobileSpec)
	if got := ie.Key(); got != 0x161b {
		t.Fatalf("IE key=%#x, want 0x161b", got)
	}
	us := mustScheme(t, "US", "CC=1:1;NDC=3;SN=7")
	if got := us.Key(); got != 0x1a {
		t.Fatalf("US key=%#x, want 0x1a", got)
	}
}

func TestParseKind(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want msisdn.Kind
	}{
		{"MOBILE", msisdn.KindMobile},
		{"fixed-line", msisdn.KindFixedLine},
		{"FIXED_LINE", msisdn.KindFixedLine},
		{"TOLL_FREE", msisdn.KindTollFree},
		{"SHARE_COST", msisdn.KindSharedCost},
		{"voip", msisdn.KindVoIP},
	} {
		k, ok := msisdn.ParseKind(tc.in)
		if !ok || k != tc.want {
			t.Fatalf("ParseKind(%q) = %v,%v", tc.in, k, ok)
		}
	}
	if _, ok := msisdn.ParseKind("satellite"); ok {
		t.Fatalf("unknown kind accepted")
	}
}
