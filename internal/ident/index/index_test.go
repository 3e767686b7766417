package index

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/identicolor/internal/ident/face"
	"github.com/dshills/identicolor/internal/ident/profile"
	"github.com/dshills/identicolor/internal/ident/text"
)

func TestAddFirstSeenOrder(t *testing.T) {
	x := New(8)
	x.Add("beta")
	x.Add("alpha")
	x.Add("beta") // repeat sighting, no-op
	x.Add("gamma")

	if slot, _ := x.Lookup("beta"); slot != 0 {
		t.Errorf("beta slot = %d, want 0 (first seen)", slot)
	}
	if slot, _ := x.Lookup("alpha"); slot != 1 {
		t.Errorf("alpha slot = %d, want 1", slot)
	}
	if slot, _ := x.Lookup("gamma"); slot != 2 {
		t.Errorf("gamma slot = %d, want 2", slot)
	}
	if x.Len() != 3 {
		t.Errorf("Len() = %d, want 3", x.Len())
	}

	want := []string{"beta", "alpha", "gamma"}
	if diff := cmp.Diff(want, x.Identifiers()); diff != "" {
		t.Errorf("Identifiers() mismatch (-want +got):\n%s", diff)
	}
}

func TestAddRoundRobin(t *testing.T) {
	x := New(8)
	for i := 0; i < 9; i++ {
		x.Add(fmt.Sprintf("id%d", i))
	}

	for i := 0; i < 8; i++ {
		slot, ok := x.Lookup(fmt.Sprintf("id%d", i))
		if !ok || slot != i {
			t.Errorf("id%d slot = %d, want %d", i, slot, i)
		}
	}

	// The 9th distinct identifier wraps back to slot 0.
	if slot, _ := x.Lookup("id8"); slot != 0 {
		t.Errorf("9th identifier slot = %d, want 0", slot)
	}

	for _, name := range x.Identifiers() {
		slot, _ := x.Lookup(name)
		if slot < 0 || slot > 7 {
			t.Errorf("%s slot = %d, outside [0, 7]", name, slot)
		}
	}
}

func TestAddCaseSensitive(t *testing.T) {
	x := New(8)
	x.Add("Foo")
	x.Add("foo")

	a, _ := x.Lookup("Foo")
	b, _ := x.Lookup("foo")
	if a == b {
		t.Error("Foo and foo are distinct identifiers")
	}
}

func TestLookupMiss(t *testing.T) {
	x := New(8)
	if _, ok := x.Lookup("absent"); ok {
		t.Error("Lookup of an unseen identifier should miss")
	}
}

func testProfile(t *testing.T) *profile.Profile {
	t.Helper()
	p, err := profile.Compile(profile.Spec{
		Language:   "test",
		Identifier: `([A-Za-z_][A-Za-z0-9_]*)`,
		Faces:      face.NewSet(face.None),
	})
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	return p
}

func TestBuild(t *testing.T) {
	doc := text.NewDocument("aa bb aa cc")
	x, completed := Build(doc, testProfile(t), 8, nil)
	if !completed {
		t.Fatal("Build should complete without a cancel predicate")
	}

	want := []string{"aa", "bb", "cc"}
	if diff := cmp.Diff(want, x.Identifiers()); diff != "" {
		t.Errorf("Identifiers() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildCancelled(t *testing.T) {
	doc := text.NewDocument("aa bb cc dd")
	x, completed := Build(doc, testProfile(t), 8, func() bool { return false })
	if completed {
		t.Error("cancelled Build should report not completed")
	}
	if x != nil {
		t.Error("cancelled Build must discard the partial index")
	}
}
