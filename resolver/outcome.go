package resolver

import (
	"github.com/bengsparks/dns-protocol/message"
)

// OutcomeKind names the four ways a response can advance a resolution.
type OutcomeKind int

const (
	// Unresolved means the response carried no actionable information.
	// This is a classification, not an error.
	Unresolved OutcomeKind = iota

	// Resolved means the answer section held records of the type the
	// query asked about.
	Resolved

	// NamespaceIP means the additional section supplied glue: addresses
	// of the nameservers named in the authority section, queryable
	// directly.
	NamespaceIP

	// NamespaceNames means the authority section named nameservers whose
	// addresses must themselves be resolved before resolution continues.
	NamespaceNames
)

// String returns the outcome kind's name.
func (k OutcomeKind) String() string {
	switch k {
	case Resolved:
		return "resolved"
	case NamespaceIP:
		return "namespace-ips"
	case NamespaceNames:
		return "namespace-names"
	default:
		return "unresolved"
	}
}

// Outcome is the classification of one response: the kind plus the records
// that triggered it. Unresolved carries no records.
type Outcome struct {
	Kind    OutcomeKind
	Records []message.Record
}

// classify buckets a response into an outcome for a query whose question
// type was `interest`. The cascade has first-match semantics and the order
// matters: a usable answer beats glue, glue beats a bare referral.
//
//  1. Answers of the interesting type resolve the query.
//  2. Address records (A/AAAA) in additionals are glue for the
//     nameservers the authority section delegates to.
//  3. NS records in authorities are a referral by name only.
//  4. Anything else is unresolved.
func classify(response message.Response, interest message.QType) Outcome {
	if records := matching(response.Answers, interest.Matches); len(records) > 0 {
		return Outcome{Kind: Resolved, Records: records}
	}

	glue := func(kind message.Type) bool {
		return kind == message.TypeA || kind == message.TypeAAAA
	}
	if records := matching(response.Additionals, glue); len(records) > 0 {
		return Outcome{Kind: NamespaceIP, Records: records}
	}

	referral := func(kind message.Type) bool { return kind == message.TypeNS }
	if records := matching(response.Authorities, referral); len(records) > 0 {
		return Outcome{Kind: NamespaceNames, Records: records}
	}

	return Outcome{Kind: Unresolved}
}

// matching filters a section by record type.
func matching(records []message.Record, keep func(message.Type) bool) []message.Record {
	var out []message.Record
	for _, record := range records {
		if keep(record.Kind) {
			out = append(out, record)
		}
	}
	return out
}
