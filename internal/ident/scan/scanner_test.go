package scan

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/identicolor/internal/ident/core"
	"github.com/dshills/identicolor/internal/ident/face"
	"github.com/dshills/identicolor/internal/ident/profile"
	"github.com/dshills/identicolor/internal/ident/text"
)

func mustCompile(t *testing.T, spec profile.Spec) *profile.Profile {
	t.Helper()
	p, err := profile.Compile(spec)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	return p
}

func collect(doc text.Annotated, p *profile.Profile, start, limit int, cont func() bool) ([]core.Span, bool) {
	var spans []core.Span
	completed := Region(doc, p, start, limit, cont, func(s core.Span) {
		spans = append(spans, s)
	})
	return spans, completed
}

func TestScanSkipsIneligibleFaces(t *testing.T) {
	p := mustCompile(t, profile.Spec{
		Language:   "test",
		Identifier: `([A-Za-z_][A-Za-z0-9_]*)`,
		Faces:      face.NewSet(face.Variable),
	})

	// let x = x + y;
	// 0123456789...
	doc := text.NewDocument("let x = x + y;")
	doc.SetFace(4, 5, face.Variable)
	doc.SetFace(8, 9, face.Variable)
	doc.SetFace(12, 13, face.Variable)

	spans, completed := collect(doc, p, 0, doc.Len(), nil)
	if !completed {
		t.Fatal("scan should complete")
	}

	want := []core.Span{{Start: 4, End: 5}, {Start: 8, End: 9}, {Start: 12, End: 13}}
	if diff := cmp.Diff(want, spans); diff != "" {
		t.Errorf("spans mismatch (-want +got):\n%s", diff)
	}

	// "let" carries no eligible face; it must not be emitted even though
	// it matches the identifier pattern.
	for _, s := range spans {
		if doc.Slice(s.Start, s.End) == "let" {
			t.Error("unclassified text should be skipped")
		}
	}
}

func TestScanNoneSentinel(t *testing.T) {
	p := mustCompile(t, profile.Spec{
		Language:   "test",
		Identifier: `([A-Za-z_][A-Za-z0-9_]*)`,
		Faces:      face.NewSet(face.None, face.Variable),
	})

	doc := text.NewDocument("aa bb")
	spans, _ := collect(doc, p, 0, doc.Len(), nil)

	want := []core.Span{{Start: 0, End: 2}, {Start: 3, End: 5}}
	if diff := cmp.Diff(want, spans); diff != "" {
		t.Errorf("unclassified text should qualify with the None sentinel (-want +got):\n%s", diff)
	}
}

func TestScanContextExclusion(t *testing.T) {
	// Preceding character must not be a dot: obj.foo must not emit foo.
	p := mustCompile(t, profile.Spec{
		Language:   "test",
		Context:    `[^.]`,
		Identifier: `([A-Za-z_][A-Za-z0-9_]*)`,
		Faces:      face.NewSet(face.None),
	})

	doc := text.NewDocument("obj.foo")
	spans, _ := collect(doc, p, 0, doc.Len(), nil)

	for _, s := range spans {
		if doc.Slice(s.Start, s.End) == "foo" {
			t.Errorf("foo after a dot must not be emitted; got spans %v", spans)
		}
	}
}

func TestScanWordBoundaryContext(t *testing.T) {
	p := mustCompile(t, profile.Spec{
		Language:   "test",
		Context:    `^|[^.\w]`,
		Identifier: `([A-Za-z_][A-Za-z0-9_]*)`,
		Faces:      face.NewSet(face.None),
	})

	doc := text.NewDocument("obj.foo bar")
	spans, _ := collect(doc, p, 0, doc.Len(), nil)

	var got []string
	for _, s := range spans {
		got = append(got, doc.Slice(s.Start, s.End))
	}
	want := []string{"obj", "bar"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("identifiers mismatch (-want +got):\n%s", diff)
	}
}

func TestScanForwardResync(t *testing.T) {
	p := mustCompile(t, profile.Spec{
		Language:   "test",
		Identifier: `([A-Za-z_][A-Za-z0-9_]*)`,
		Faces:      face.NewSet(face.None),
	})

	// The leading digits fail the anchored attempt; the scan must
	// resynchronize on the next pattern occurrence without giving up.
	doc := text.NewDocument("12abc def")
	spans, completed := collect(doc, p, 0, doc.Len(), nil)
	if !completed {
		t.Fatal("scan should complete")
	}

	want := []core.Span{{Start: 2, End: 5}, {Start: 6, End: 9}}
	if diff := cmp.Diff(want, spans); diff != "" {
		t.Errorf("spans mismatch (-want +got):\n%s", diff)
	}
}

func TestScanLimit(t *testing.T) {
	p := mustCompile(t, profile.Spec{
		Language:   "test",
		Identifier: `([A-Za-z_][A-Za-z0-9_]*)`,
		Faces:      face.NewSet(face.None),
	})

	doc := text.NewDocument("aaa bbb ccc")

	spans, completed := collect(doc, p, 0, 7, nil)
	if !completed {
		t.Fatal("reaching limit is normal termination")
	}
	want := []core.Span{{Start: 0, End: 3}, {Start: 4, End: 7}}
	if diff := cmp.Diff(want, spans); diff != "" {
		t.Errorf("spans mismatch (-want +got):\n%s", diff)
	}

	// A limit beyond the document is clamped.
	spans, _ = collect(doc, p, 0, 1000, nil)
	if len(spans) != 3 {
		t.Errorf("got %d spans, want 3", len(spans))
	}
}

func TestScanRegionStart(t *testing.T) {
	p := mustCompile(t, profile.Spec{
		Language:   "test",
		Identifier: `([A-Za-z_][A-Za-z0-9_]*)`,
		Faces:      face.NewSet(face.None),
	})

	doc := text.NewDocument("aaa bbb ccc")
	spans, _ := collect(doc, p, 4, doc.Len(), nil)

	want := []core.Span{{Start: 4, End: 7}, {Start: 8, End: 11}}
	if diff := cmp.Diff(want, spans); diff != "" {
		t.Errorf("spans mismatch (-want +got):\n%s", diff)
	}
}

func TestScanEmptyResult(t *testing.T) {
	p := mustCompile(t, profile.Spec{
		Language:   "test",
		Identifier: `([A-Za-z_][A-Za-z0-9_]*)`,
		Faces:      face.NewSet(face.None),
	})

	for _, content := range []string{"", "123 456", "   "} {
		doc := text.NewDocument(content)
		spans, completed := collect(doc, p, 0, doc.Len(), nil)
		if !completed {
			t.Errorf("scan of %q should complete", content)
		}
		if len(spans) != 0 {
			t.Errorf("scan of %q = %v, want no spans", content, spans)
		}
	}
}

func TestScanCancellation(t *testing.T) {
	p := mustCompile(t, profile.Spec{
		Language:   "test",
		Identifier: `([A-Za-z_][A-Za-z0-9_]*)`,
		Faces:      face.NewSet(face.None),
	})

	doc := text.NewDocument("aa bb cc dd")

	t.Run("cancel immediately", func(t *testing.T) {
		spans, completed := collect(doc, p, 0, doc.Len(), func() bool { return false })
		if completed {
			t.Error("cancelled scan should report not completed")
		}
		if len(spans) != 0 {
			t.Errorf("got %v, want no spans", spans)
		}
	})

	t.Run("cancel midway keeps earlier spans", func(t *testing.T) {
		calls := 0
		spans, completed := collect(doc, p, 0, doc.Len(), func() bool {
			calls++
			return calls <= 2
		})
		if completed {
			t.Error("cancelled scan should report not completed")
		}
		if len(spans) == 0 || len(spans) >= 4 {
			t.Errorf("midway cancellation should keep some spans, got %v", spans)
		}
	})
}

func TestScanMarkerKeepsEligibility(t *testing.T) {
	p := mustCompile(t, profile.Spec{
		Language:   "test",
		Identifier: `([A-Za-z_][A-Za-z0-9_]*)`,
		Faces:      face.NewSet(face.Variable),
	})

	doc := text.NewDocument("foo bar")
	doc.SetFace(0, 3, face.Variable)
	doc.MarkColored(4, 7)
	// bar was colored by an earlier render but the host has since
	// classified it as something ineligible.
	doc.SetFace(4, 7, face.Comment)

	spans, _ := collect(doc, p, 0, doc.Len(), nil)

	want := []core.Span{{Start: 0, End: 3}, {Start: 4, End: 7}}
	if diff := cmp.Diff(want, spans); diff != "" {
		t.Errorf("marked text should stay recognizable (-want +got):\n%s", diff)
	}
}
