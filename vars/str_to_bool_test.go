package vars

import "testing"

func TestStrToBool(t *testing.T) {
	for _, str := range []string{"true", "T", "Yes", "y"} {
		if !StrToBool(str) {
			t.Fatalf("got false for %q", str)
		}
	}
	for _, str := range []string{"false", "F", "No", "n", "", "whatever"} {
		if StrToBool(str) {
			t.Fatalf("got true for %q", str)
		}
	}
}
