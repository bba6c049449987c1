package locale

import "testing"

// FuzzParseLocale checks that parsing never panics and accepted locales re-parse to the same value.
func FuzzParseLocale(f *testing.F) {
	f.Add("en")
	f.Add("en_US")
	f.Add("en_us_x")
	f.Add("")
	f.Add("_")

	f.Fuzz(func(t *testing.T, input string) {
		l, err := ParseLocale(input)
		if err != nil {
			return
		}
		again, err := ParseLocale(l.String())
		if err != nil {
			t.Fatalf("accepted locale %q failed to re-parse: %v", l, err)
		}
		if again != l {
			t.Errorf("round-trip changed %q to %q", l, again)
		}
	})
}
