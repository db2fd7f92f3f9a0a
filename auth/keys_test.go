package auth

import "testing"

func TestParseKeysList(t *testing.T) {
	keys := ParseKeysList(" vp-001 , vp-002,,  ,vp-003")
	if len(keys) != 3 {
		t.Fatalf("expected 3 keys, got %d (%v)", len(keys), keys)
	}
	if keys[0] != "vp-001" || keys[2] != "vp-003" {
		t.Fatalf("unexpected keys: %v", keys)
	}
}

func TestParseKeysListEmpty(t *testing.T) {
	if keys := ParseKeysList(""); len(keys) != 0 {
		t.Fatalf("expected no keys, got %v", keys)
	}
}

func TestMatchKey(t *testing.T) {
	allowed := []string{"vp-001", "vp-002"}

	if !MatchKey(allowed, "vp-002") {
		t.Fatalf("expected vp-002 to match")
	}
	if MatchKey(allowed, "vp-999") {
		t.Fatalf("expected vp-999 to be rejected")
	}
	if MatchKey(allowed, "") {
		t.Fatalf("expected empty key to be rejected")
	}
	if MatchKey(nil, "vp-001") {
		t.Fatalf("expected empty allow list to reject")
	}
}
