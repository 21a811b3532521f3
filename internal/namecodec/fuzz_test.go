package namecodec

import "testing"

// hasHexEscape reports whether s already contains '%' followed by two hex
// digits. Such input is not recoverable since '%' itself is not reserved.
func hasHexEscape(s string) bool {
	for i := 0; i+2 < len(s); i++ {
		if s[i] == '%' && unhex(s[i+1]) >= 0 && unhex(s[i+2]) >= 0 {
			return true
		}
	}
	return false
}

func FuzzRoundTrip(f *testing.F) {
	f.Add("test:test:hello*adsfad*", false)
	f.Add("test:test:hello*adsfad*", true)
	f.Add(`seda:"in"?size=10,block=true`, false)
	f.Add("100% done", true)
	f.Add("", false)

	f.Fuzz(func(t *testing.T, s string, ignoreWildcards bool) {
		enc := EncodeMode(s, ignoreWildcards)
		for i := 0; i < len(enc); i++ {
			if shouldEscape(enc[i], ignoreWildcards) {
				t.Fatalf("encoded %q still holds reserved %q", enc, enc[i])
			}
		}
		if hasHexEscape(s) {
			return
		}
		if got := DecodeMode(enc, ignoreWildcards); got != s {
			t.Fatalf("round trip %q: encoded %q decoded %q", s, enc, got)
		}
	})
}

func FuzzDecodePolicies(f *testing.F) {
	f.Add("test%3atest%3ahello%2aadsfad%2a")
	f.Add("100% done")
	f.Add("%")
	f.Add("%G1")

	f.Fuzz(func(t *testing.T, s string) {
		lenient := Decode(s)
		strict, err := DecodeStrict(s)
		if err != nil {
			return
		}
		if strict != lenient {
			t.Fatalf("strict %q and lenient %q disagree for %q", strict, lenient, s)
		}
	})
}
