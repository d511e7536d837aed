package core

import "testing"

// TestResponseCodeLabels checks known-code label lookups and the
// unknown-code fallback.
func TestResponseCodeLabels(t *testing.T) {
	cases := []struct {
		code  int
		label string
		ok    bool
	}{
		{0, "OK", true},
		{22, "SUCCESS", true},
		{999, "", false},
	}
	for _, c := range cases {
		label, ok := ResponseCodeLabel(c.code)
		if ok != c.ok || label != c.label {
			t.Fatalf("ResponseCodeLabel(%d) = (%q, %v), want (%q, %v)", c.code, label, ok, c.label, c.ok)
		}
	}
}

func TestClassifyResponseCode(t *testing.T) {
	cases := []struct {
		code int
		want ResponseCodeClass
	}{
		{0, ClassSuccess},
		{22, ClassSuccess},
		{21, ClassUnknown},
		{7, ClassFailed},
	}
	for _, c := range cases {
		if got := ClassifyResponseCode(c.code); got != c.want {
			t.Fatalf("ClassifyResponseCode(%d) = %v, want %v", c.code, got, c.want)
		}
	}
}

func TestIsPrecheckSuccess(t *testing.T) {
	for _, code := range []int{0, 22} {
		if !IsPrecheckSuccess(code) {
			t.Fatalf("expected %d to be a precheck success", code)
		}
	}
	for _, code := range []int{1, 7, 21, 999} {
		if IsPrecheckSuccess(code) {
			t.Fatalf("expected %d to not be a precheck success", code)
		}
	}
}
