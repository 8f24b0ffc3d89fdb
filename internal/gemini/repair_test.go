package gemini

import "testing"

func TestSanitizeStripsFences(t *testing.T) {
	payload := "```json\n{\"a\": 1}\n```"
	if got := Sanitize(payload); got != `{"a": 1}` {
		t.Fatalf("unexpected result: %s", got)
	}
}

func TestSanitizePlainPayload(t *testing.T) {
	if got := Sanitize("  {\"a\": 1}  "); got != `{"a": 1}` {
		t.Fatalf("unexpected result: %s", got)
	}
}

func TestRepairJSONTrailingCommas(t *testing.T) {
	if got := RepairJSON(`{"a": [1, 2,],}`); got != `{"a": [1, 2]}` {
		t.Fatalf("unexpected result: %s", got)
	}
}

func TestDecodeLenientOK(t *testing.T) {
	var out map[string]int
	if result := DecodeLenient(`{"a": 1}`, &out); result != DecodeOK {
		t.Fatalf("unexpected result: %v", result)
	}
	if out["a"] != 1 {
		t.Fatalf("unexpected value: %v", out)
	}
}

func TestDecodeLenientRepaired(t *testing.T) {
	var out map[string][]int
	payload := "```json\n{\"a\": [1, 2,],}\n```"
	if result := DecodeLenient(payload, &out); result != DecodeRepaired {
		t.Fatalf("unexpected result: %v", result)
	}
	if len(out["a"]) != 2 {
		t.Fatalf("unexpected value: %v", out)
	}
}

func TestDecodeLenientFailed(t *testing.T) {
	var out map[string]any
	if result := DecodeLenient("not json at all {", &out); result != DecodeFailed {
		t.Fatalf("unexpected result: %v", result)
	}
	if result := DecodeLenient("", &out); result != DecodeFailed {
		t.Fatalf("expected failure for empty payload")
	}
}
