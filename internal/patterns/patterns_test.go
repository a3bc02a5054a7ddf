package patterns

import (
	"sort"
	"testing"
)

func TestAllRegisteredPatternsParse(t *testing.T) {
	for _, name := range Names() {
		b, err := Get(name)
		if err != nil {
			t.Fatalf("pattern %q failed to parse: %v", name, err)
		}
		if b.Population() == 0 {
			t.Fatalf("pattern %q is empty", name)
		}
	}
}

func TestDefaultPattern(t *testing.T) {
	b, err := Get("default")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if b.Population() != 9 {
		t.Fatalf("default pattern population = %d, want 9", b.Population())
	}
}

func TestUnknownPattern(t *testing.T) {
	if _, err := Get("no-such-pattern"); err == nil {
		t.Fatal("expected an error for an unknown pattern")
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if !sort.StringsAreSorted(names) {
		t.Fatalf("Names not sorted: %v", names)
	}
	found := false
	for _, name := range names {
		if name == "default" {
			found = true
		}
	}
	if !found {
		t.Fatal("default pattern missing from Names")
	}
}

func TestRegisterRejectsEmpty(t *testing.T) {
	before := len(Names())
	Register("", "xxx")
	Register("empty", "")
	if len(Names()) != before {
		t.Fatal("empty name or text must not be registered")
	}
}
