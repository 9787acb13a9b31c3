package model

// Topic is one selectable financial area of interest. The label strings are
// sent verbatim into the advice prompt and echoed back in suggestion fields.
type Topic string

const (
	TopicMutualFunds   Topic = "Mutual Funds"
	TopicStocks        Topic = "Stocks"
	TopicSIP           Topic = "SIP"
	TopicLoansEMI      Topic = "Loans & EMI"
	TopicTaxes         Topic = "Taxes"
	TopicInsurance     Topic = "Insurance"
	TopicEmergencyFund Topic = "Emergency Fund"
	TopicRetirement    Topic = "Retirement Planning"
	TopicCrypto        Topic = "Crypto"
)

// Topics lists every selectable topic in display order.
var Topics = []Topic{
	TopicMutualFunds,
	TopicStocks,
	TopicSIP,
	TopicLoansEMI,
	TopicTaxes,
	TopicInsurance,
	TopicEmergencyFund,
	TopicRetirement,
	TopicCrypto,
}

// ParseTopic resolves a label to its Topic, matching the exact label strings.
func ParseTopic(label string) (Topic, bool) {
	for _, t := range Topics {
		if string(t) == label {
			return t, true
		}
	}
	return "", false
}

// SuggestionStatus is the severity the advice service assigns a suggestion.
type SuggestionStatus string

const (
	StatusGood    SuggestionStatus = "Good"
	StatusWarning SuggestionStatus = "Warning"
	StatusAlert   SuggestionStatus = "Alert"
)

// Valid reports whether s is one of the three known statuses.
func (s SuggestionStatus) Valid() bool {
	switch s {
	case StatusGood, StatusWarning, StatusAlert:
		return true
	}
	return false
}

// Suggestion is one structured piece of advice. Field usually names a Topic
// but the service may return free-text labels; they are kept as-is.
type Suggestion struct {
	Field      string           `json:"field"`
	Status     SuggestionStatus `json:"status"`
	Title      string           `json:"title"`
	Content    string           `json:"content"`
	ActionItem string           `json:"actionItem"`
}

// AnalysisResult is the full response from the advice service. Suggestion
// order is meaningful: display order equals received order.
type AnalysisResult struct {
	Overview    string       `json:"overview"`
	Suggestions []Suggestion `json:"suggestions"`
}
