package platform

import "encoding/json"

// The platform's list endpoints take queries as JSON strings. Only the four
// filters this layer needs are provided.

type query struct {
	Method    string `json:"method"`
	Attribute string `json:"attribute,omitempty"`
	Values    []any  `json:"values,omitempty"`
}

func (q query) String() string {
	b, _ := json.Marshal(q)
	return string(b)
}

// Equal matches documents whose attribute equals value.
func Equal(attribute string, value any) string {
	return query{Method: "equal", Attribute: attribute, Values: []any{value}}.String()
}

// OrderDesc sorts the result by attribute, descending.
func OrderDesc(attribute string) string {
	return query{Method: "orderDesc", Attribute: attribute}.String()
}

// Limit caps the number of returned documents.
func Limit(n int) string {
	return query{Method: "limit", Values: []any{n}}.String()
}

// Search matches documents whose attribute matches value according to the
// platform's search index; the matching semantics are entirely its own.
func Search(attribute, value string) string {
	return query{Method: "search", Attribute: attribute, Values: []any{value}}.String()
}
