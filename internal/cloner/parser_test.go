package cloner

import "testing"

func TestExtractListingID(t *testing.T) {
	cases := []struct {
		ref    string
		wantID string
		wantOK bool
	}{
		{"https://reverb.com/item/123", "123", true},
		{"https://reverb.com/item/88793211-fender-stratocaster", "88793211", true},
		{"item/42", "42", true},
		{"https://reverb.com/p/fender-stratocaster", "", false},
		{"", "", false},
		{"item/", "", false},
		{"item/abc", "", false},
	}

	for _, c := range cases {
		id, ok := ExtractListingID(c.ref)
		if id != c.wantID || ok != c.wantOK {
			t.Errorf("ExtractListingID(%q) = (%q, %v), esperado (%q, %v)", c.ref, id, ok, c.wantID, c.wantOK)
		}
	}
}
