package markup_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-shapegen/pkg/markup"
)

func TestMergeLaterWinsAndJoinsClass(t *testing.T) {
	got := markup.Merge(
		markup.Attributes{"class": "vx-stack", "fill": "red", "d": "M0,0"},
		nil,
		markup.Attributes{"class": "  custom ", "fill": "blue"},
	)
	want := markup.Attributes{"class": "vx-stack custom", "fill": "blue", "d": "M0,0"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("merge mismatch (-want +got):\n%s", diff)
	}
}

func TestAttributesKeysSorted(t *testing.T) {
	attrs := markup.Attributes{"fill": "", "d": "", "class": "", "data-key": ""}
	if diff := cmp.Diff([]string{"class", "d", "data-key", "fill"}, attrs.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestClassNames(t *testing.T) {
	if got := markup.ClassNames("vx-line-radial", "", " a  b "); got != "vx-line-radial a b" {
		t.Fatalf("unexpected class list %q", got)
	}
	if got := markup.ClassNames("", " "); got != "" {
		t.Fatalf("expected empty class list, got %q", got)
	}
}

func TestGroupTranslate(t *testing.T) {
	g := markup.Group(10, 2.5)
	if got := g.Attrs.Get("transform"); got != "translate(2.5, 10)" {
		t.Fatalf("unexpected transform %q", got)
	}
	if got := markup.Translate(0, 0); got != "translate(0, 0)" {
		t.Fatalf("unexpected zero transform %q", got)
	}
}

func TestFindDocumentOrder(t *testing.T) {
	tree := markup.Group(0, 0,
		markup.Path(markup.Attributes{"id": "a"}, nil),
		markup.Fragment{
			markup.Text("x"),
			markup.Path(markup.Attributes{"id": "b"}, nil),
		},
		&markup.Element{Tag: "g", Children: []markup.Node{markup.Path(markup.Attributes{"id": "c"}, nil)}},
	)
	var ids []string
	for _, el := range markup.Find(tree, "path") {
		ids = append(ids, el.Attrs.Get("id"))
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, ids); diff != "" {
		t.Fatalf("find order mismatch (-want +got):\n%s", diff)
	}
}
