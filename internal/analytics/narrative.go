package analytics

import (
	"strings"
	"unicode"
)

// NarrativeKind classifies a transaction's details text.
type NarrativeKind int

const (
	Unclassified NarrativeKind = iota
	Received
	Sent
)

func (k NarrativeKind) String() string {
	switch k {
	case Received:
		return "received"
	case Sent:
		return "sent"
	default:
		return "unclassified"
	}
}

const counterpartySeparator = " - "

var (
	receivedMarkers = []string{"funds received from", "received from"}
	sentMarkers     = []string{"customer transfer to", "send money to"}
)

// Narrative is a classified details text with the counterparty it names.
type Narrative struct {
	Kind  NarrativeKind
	Phone string
	Name  string
}

// Classify reads a details text such as
// "Funds received from - 254700000111 JOHN DOE" or
// "Customer Transfer to - 2547******261 ALEX W".
// Received markers are checked before sent markers. Text without the
// " - " separator or without a counterparty identifier is Unclassified.
func Classify(details string) Narrative {
	lower := strings.ToLower(details)

	var kind NarrativeKind
	switch {
	case containsAny(lower, receivedMarkers):
		kind = Received
	case containsAny(lower, sentMarkers):
		kind = Sent
	default:
		return Narrative{}
	}

	_, party, ok := strings.Cut(details, counterpartySeparator)
	if !ok {
		return Narrative{}
	}
	party = strings.TrimSpace(party)

	phone, name := party, party
	if i := strings.IndexFunc(party, unicode.IsSpace); i >= 0 {
		phone = party[:i]
		name = strings.TrimSpace(party[i:])
	}
	if phone == "" {
		return Narrative{}
	}

	return Narrative{Kind: kind, Phone: phone, Name: name}
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
