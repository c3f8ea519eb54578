package emergency

import "testing"

func TestTypes_ClosedEnum(t *testing.T) {
	all := Types()
	if len(all) != 5 {
		t.Fatalf("expected 5 emergency types, got %d", len(all))
	}

	seen := make(map[Type]bool)
	for _, typ := range all {
		if seen[typ] {
			t.Errorf("duplicate emergency type %s", typ)
		}
		seen[typ] = true
		if !typ.Valid() {
			t.Errorf("%s not recognized as a valid type", typ)
		}
	}
}

// Every enum member must map to a unique canonical description; the fallback
// must be reserved for values outside the enum.
func TestDescriptions_Exhaustive(t *testing.T) {
	seen := make(map[string]Type)
	for _, typ := range Types() {
		desc := typ.Description()
		if desc == "" || desc == fallbackDescription {
			t.Errorf("%s has no canonical description", typ)
		}
		if prev, dup := seen[desc]; dup {
			t.Errorf("description %q shared by %s and %s", desc, prev, typ)
		}
		seen[desc] = typ
	}
	if len(descriptions) != len(Types()) {
		t.Errorf("description table has %d entries, enum has %d", len(descriptions), len(Types()))
	}
}

func TestDescription_UnknownFallsBack(t *testing.T) {
	unknown := Type("ALIEN_INVASION")
	if unknown.Valid() {
		t.Fatal("unknown type reported valid")
	}
	if got := unknown.Description(); got != fallbackDescription {
		t.Errorf("expected fallback description, got %q", got)
	}
}
