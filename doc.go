package msisdn

// Package msisdn provides:
//
// - Immutable E.164-style phone-number values encoded as a single int64 (CC+NDC+SN)
// - A scheme grammar describing per-country/operator numbering plans (part lengths, value sets, digit patterns)
// - A Registry with greedy longest-country-code disambiguation of free-form digit strings
// - A stable error model via Issues (part, code, message)
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations under internal/.
// - Place scheme-definition loaders under schemedef/, message catalogs under i18n/, and the CLI under cmd/msisdn.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	reg := msisdn.NewRegistry()
//	scheme, err := msisdn.ParseScheme("IE.mobile", "CC=3:353;NDC=2:82,83,85-89;SN=7")
//	reg.Register(scheme)
//
//	n, err := reg.Parse("+353-86-3578380")
//	n.CountryCode()      // 353
//	n.Format("$NDC-$SN") // "86-3578380"
