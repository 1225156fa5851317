package upstream

import (
	"encoding/json"
	"strings"
)

// detailEnvelope matches the backend's error body. detail is either a
// plain string or a FastAPI-style validation array of {loc, msg, type}.
type detailEnvelope struct {
	Detail json.RawMessage `json:"detail"`
}

type validationItem struct {
	Msg string `json:"msg"`
}

// FlattenDetail turns a backend error body into one human-readable string.
// Validation arrays are joined with "; "; anything unrecognizable falls
// back to the provided default message.
func FlattenDetail(body []byte, fallback string) string {
	var env detailEnvelope
	if err := json.Unmarshal(body, &env); err != nil || len(env.Detail) == 0 {
		return fallback
	}

	var s string
	if err := json.Unmarshal(env.Detail, &s); err == nil {
		if s == "" {
			return fallback
		}
		return s
	}

	var items []validationItem
	if err := json.Unmarshal(env.Detail, &items); err == nil && len(items) > 0 {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		if len(msgs) > 0 {
			return strings.Join(msgs, "; ")
		}
	}

	return fallback
}
