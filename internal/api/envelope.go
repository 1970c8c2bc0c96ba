package api

import "encoding/json"

// envelope is the backend's uniform response shape. Which payload field
// is populated depends on the endpoint; success:false is treated as an
// application error even on HTTP 200.
type envelope struct {
	Success       bool                       `json:"success"`
	Message       string                     `json:"message,omitempty"`
	Token         string                     `json:"token,omitempty"`
	User          json.RawMessage            `json:"user,omitempty"`
	Loan          json.RawMessage            `json:"loan,omitempty"`
	Loans         json.RawMessage            `json:"loans,omitempty"`
	LoanTypes     json.RawMessage            `json:"loanTypes,omitempty"`
	Data          json.RawMessage            `json:"data,omitempty"`
	Errors        map[string]json.RawMessage `json:"errors,omitempty"`
	MissingFields []string                   `json:"missingFields,omitempty"`
}

// fieldErrors flattens the backend's errors map, whose values are either
// plain strings or objects with a message property.
func (e *envelope) fieldErrors() map[string]string {
	if len(e.Errors) == 0 {
		return nil
	}
	out := make(map[string]string, len(e.Errors))
	for field, raw := range e.Errors {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			out[field] = s
			continue
		}
		var obj struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(raw, &obj); err == nil && obj.Message != "" {
			out[field] = obj.Message
			continue
		}
		out[field] = string(raw)
	}
	return out
}

// payload returns the first populated body field. Some endpoints return
// their list under data, others under a named key; callers should not
// have to care which.
func (e *envelope) payload(preferred ...json.RawMessage) json.RawMessage {
	for _, raw := range preferred {
		if len(raw) > 0 {
			return raw
		}
	}
	return e.Data
}
