package gemini

import (
	"strings"

	"github.com/goccy/go-json"
)

// DecodeResult reports how a model payload was decoded.
type DecodeResult int

const (
	// DecodeFailed means the payload could not be decoded even after repair.
	DecodeFailed DecodeResult = iota
	// DecodeOK means the payload decoded as-is.
	DecodeOK
	// DecodeRepaired means the payload decoded after trailing-comma repair.
	DecodeRepaired
)

// Sanitize strips markdown code fences around a model payload.
func Sanitize(payload string) string {
	trimmed := strings.TrimSpace(payload)
	if strings.HasPrefix(trimmed, "```json") {
		trimmed = trimmed[len("```json"):]
	} else if strings.HasPrefix(trimmed, "```") {
		trimmed = trimmed[len("```"):]
	}
	if strings.HasSuffix(trimmed, "```") {
		trimmed = trimmed[:len(trimmed)-len("```")]
	}
	return strings.TrimSpace(trimmed)
}

// RepairJSON removes trailing commas before closing brackets. Models emit
// these often enough that a plain decode retry is worth it.
func RepairJSON(payload string) string {
	repaired := strings.ReplaceAll(payload, ",]", "]")
	repaired = strings.ReplaceAll(repaired, ",}", "}")
	return repaired
}

// DecodeLenient decodes a model payload into out, sanitizing fences first
// and retrying once with trailing-comma repair.
func DecodeLenient(payload string, out any) DecodeResult {
	sanitized := Sanitize(payload)
	if sanitized == "" {
		return DecodeFailed
	}

	if err := json.Unmarshal([]byte(sanitized), out); err == nil {
		return DecodeOK
	}

	if err := json.Unmarshal([]byte(RepairJSON(sanitized)), out); err == nil {
		return DecodeRepaired
	}
	return DecodeFailed
}
