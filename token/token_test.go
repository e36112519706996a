package token

import (
	"testing"
)

func TestLookupIdent(t *testing.T) {

	for k, v := range keywords {
		if v != LookupIdent(k) {
			t.Errorf("LookupIdent gave %s, wanted %s", LookupIdent(k), v)
		}
	}

	// keywords are case-insensitive
	if WHILE != LookupIdent("While") {
		t.Errorf("Wanted WHILE, got %s", LookupIdent("While"))
	}

	if "IDENT" != LookupIdent("notreallyanidentifier") {
		t.Errorf("Wanted IDENT, got %s", LookupIdent("notreallyanidentifier"))
	}

	// type suffixes stay on identifiers, they never make a keyword
	if "IDENT" != LookupIdent("count%") {
		t.Errorf("Wanted IDENT, got %s", LookupIdent("count%%"))
	}
}
