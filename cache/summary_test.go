package cache

import "testing"

func TestContentKeyStable(t *testing.T) {
	a := ContentKey("비트코인이 급등했다.")
	b := ContentKey("비트코인이 급등했다.")
	if a == "" || a != b {
		t.Fatalf("ContentKey must be stable; got %q and %q", a, b)
	}
}

func TestContentKeyNormalizesWhitespace(t *testing.T) {
	a := ContentKey("비트코인이  급등했다.\n시장이 반등했다.")
	b := ContentKey("비트코인이 급등했다. 시장이 반등했다.")
	if a != b {
		t.Fatalf("reformatted copies should share one key")
	}
}

func TestContentKeyDistinguishesContent(t *testing.T) {
	if ContentKey("기사 하나") == ContentKey("기사 둘") {
		t.Fatalf("different bodies must not collide")
	}
}
