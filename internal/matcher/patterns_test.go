package matcher

import "testing"

func TestPatternCacheGlob(t *testing.T) {
	pc := NewPatternCache(8)

	re1, err := pc.Glob("**/*.go")
	if err != nil {
		t.Fatalf("Glob failed: %v", err)
	}

	re2, err := pc.Glob("**/*.go")
	if err != nil {
		t.Fatalf("Glob failed on repeat: %v", err)
	}

	if re1 != re2 {
		t.Error("repeated compilation should return the cached regexp")
	}
	if pc.Len() != 1 {
		t.Errorf("cache holds %d patterns, want 1", pc.Len())
	}
}

func TestPatternCacheRegex(t *testing.T) {
	pc := NewPatternCache(8)

	re, err := pc.Regex("handler_.*\\.go", false)
	if err != nil {
		t.Fatalf("Regex failed: %v", err)
	}
	if !re.MatchString("HANDLER_user.go") {
		t.Error("case-insensitive regex should match uppercase input")
	}

	sensitive, err := pc.Regex("handler_.*\\.go", true)
	if err != nil {
		t.Fatalf("Regex failed: %v", err)
	}
	if sensitive.MatchString("HANDLER_user.go") {
		t.Error("case-sensitive regex should not match uppercase input")
	}

	// Same pattern, different case flags, distinct cache slots
	if pc.Len() != 2 {
		t.Errorf("cache holds %d patterns, want 2", pc.Len())
	}
}

func TestPatternCacheRegexError(t *testing.T) {
	pc := NewPatternCache(8)
	if _, err := pc.Regex("[unclosed", false); err == nil {
		t.Error("expected error for malformed regex")
	}
}
