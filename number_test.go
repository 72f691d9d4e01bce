package msisdn_test

import (
	"testing"
)

func TestNumber_Format(t *testing.T) {
	n, err := ieRegistry(t).Parse("+353863578380")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cases := []struct {
		template string
		want     string
	}{
		{"$CC-$NDC-$SN", "353-86-3578380"},
		{"+$CC ($NDC) $SN", "+353 (86) 3578380"},
		{"$SN", "3578380"},
		{"call $NDC twice: $NDC", "call 86 twice: 86"},
		{"$CC $UNKNOWN", "353 $UNKNOWN"},
		{"no tokens", "no tokens"},
	}
	for _, tc := range cases {
		if got := n.Format(tc.template); got != tc.want {
			t.Fatalf("Format(%q)=%q, want %q", tc.template, got, tc.want)
		}
	}
}

func TestNumber_Accessors(t *testing.T) {
	reg := ieRegistry(t)
	n, err := reg.Parse("+353863578380")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := n.Int64(); got != 353863578380 {
		t.Fatalf("Int64=%d", got)
	}
	if got := n.Scheme(); got == nil || got.Name() != "IE.mobile" {
		t.Fatalf("Scheme=%v", got)
	}
	// recombining the decoded parts must reproduce the encoding exactly
	if got := n.Scheme().FromParts(n.CountryCode(), n.AreaCode(), n.SubscriberNumber()); got != n.Int64() {
		t.Fatalf("recombined=%d, want %d", got, n.Int64())
	}
}

func TestNumber_EqualDisregardsScheme(t *testing.T) {
	reg := ieRegistry(t)
	a, err := reg.Parse("+353863578380")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	b, err := reg.FromInt64(a.Int64())
	if err != nil {
		t.Fatalf("FromInt64: %v", err)
	}
	if !a.Equal(b) || !b.Equal(a) {
		t.Fatalf("values with the same encoding must be equal")
	}
	c, err := reg.Parse("+353871234567")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if a.Equal(c) {
		t.Fatalf("distinct encodings must not be equal")
	}
}
