package pattern

import "testing"

func TestExactMatch(t *testing.T) {
	if !Matches("CSCI-UA.0101", "CSCI-UA.0101") {
		t.Error("identical code and pattern should match")
	}
	if Matches("CSCI-UA.0102", "CSCI-UA.0101") {
		t.Error("different codes should not match exactly")
	}
	// Exact equality also wins for codes a structured parse would reject.
	if !Matches("SPECIAL", "SPECIAL") {
		t.Error("exact match should not require a separator")
	}
}

func TestWildcard(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"CSCI-UA.0421", true},
		{"CSCI-UA.0430", true},
		{"CSCI-UA.0400", true},
		{"CSCI-UA.0310", false},  // outside the 04xx block
		{"CSCI-UA.04210", false}, // length mismatch
		{"MATH-UA.0421", false},  // wrong subject
		{"CSCI-UA", false},       // no separator
	}
	for _, tt := range tests {
		if got := Matches(tt.code, "CSCI-UA.04xx"); got != tt.want {
			t.Errorf("Matches(%q, CSCI-UA.04xx) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestLowerBound(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"MATH-UA.0185", true},
		{"MATH-UA.0121", true}, // inclusive
		{"MATH-UA.0009", false},
		{"CSCI-UA.0185", false}, // wrong prefix
	}
	for _, tt := range tests {
		if got := Matches(tt.code, "MATH-UA.0121+"); got != tt.want {
			t.Errorf("Matches(%q, MATH-UA.0121+) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestUpperBound(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"MATH-UA.0009", true},
		{"MATH-UA.0121", true}, // inclusive
		{"MATH-UA.0140", false},
	}
	for _, tt := range tests {
		if got := Matches(tt.code, "MATH-UA.0121-"); got != tt.want {
			t.Errorf("Matches(%q, MATH-UA.0121-) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestRange(t *testing.T) {
	tests := []struct {
		pat  string
		code string
		want bool
	}{
		{"MATH-UA.0120-0140", "MATH-UA.0131", true},
		{"MATH-UA.0120-0140", "MATH-UA.0120", true},
		{"MATH-UA.0120-0140", "MATH-UA.0140", true},
		{"MATH-UA.0120-0140", "MATH-UA.0009", false},
		{"MATH-UA.0120-0140", "MATH-UA.0185", false},
		{"MATH-UA.0120-0140", "CSCI-UA.0131", false},
		// Fully qualified spelling behaves identically.
		{"MATH-UA.0120-MATH-UA.0140", "MATH-UA.0131", true},
		{"MATH-UA.0120-MATH-UA.0140", "MATH-UA.0141", false},
	}
	for _, tt := range tests {
		if got := Matches(tt.code, tt.pat); got != tt.want {
			t.Errorf("Matches(%q, %q) = %v, want %v", tt.code, tt.pat, got, tt.want)
		}
	}
}

func TestNonNumericSuffixNeverMatchesStructuredPatterns(t *testing.T) {
	code := "CSCI-UA.04AB"
	for _, pat := range []string{"CSCI-UA.04xx", "CSCI-UA.0400+", "CSCI-UA.0499-", "CSCI-UA.0400-0499"} {
		if Matches(code, pat) {
			t.Errorf("non-numeric code %q should not match %q", code, pat)
		}
	}
	if !Matches(code, code) {
		t.Error("non-numeric code should still match itself exactly")
	}
}

func TestMalformedPatternsFailClosed(t *testing.T) {
	for _, pat := range []string{"+", "-", "NOPREFIX+", "MATH-UA.+", "MATH-UA.abc-def", ""} {
		if Matches("MATH-UA.0121", pat) {
			t.Errorf("malformed pattern %q should not match", pat)
		}
	}
}

func TestParseKinds(t *testing.T) {
	tests := []struct {
		raw  string
		kind Kind
	}{
		{"CSCI-UA.0101", Exact},
		{"CSCI-UA.04xx", Wildcard},
		{"MATH-UA.0121+", LowerBound},
		{"MATH-UA.0121-", UpperBound},
		{"MATH-UA.0120-0140", NumericRange},
		{"garbage", Exact},
	}
	for _, tt := range tests {
		if got := Parse(tt.raw).Kind(); got != tt.kind {
			t.Errorf("Parse(%q).Kind() = %v, want %v", tt.raw, got, tt.kind)
		}
	}
}
