package solidgate

import (
	"slices"
	"testing"
)

func TestAttributesMarshalKeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	attrs := NewAttributes(
		Attr("order_id", "ord-1"),
		Attr("amount", 1020),
		Attr("currency", "USD"),
		Attr("success_url", "https://merchant.example/ok?a=1&b=<2>"),
	)
	got, err := attrs.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"order_id":"ord-1","amount":1020,"currency":"USD","success_url":"https://merchant.example/ok?a=1&b=<2>"}`
	if string(got) != want {
		t.Fatalf("unexpected json\n got %s\nwant %s", got, want)
	}
}

func TestAttributesEmptyRendersObject(t *testing.T) {
	t.Parallel()

	for name, attrs := range map[string]Attributes{
		"nil":   nil,
		"empty": NewAttributes(),
	} {
		got, err := attrs.MarshalJSON()
		if err != nil {
			t.Fatalf("%s: marshal: %v", name, err)
		}
		if string(got) != "{}" {
			t.Fatalf("%s: expected {} got %s", name, got)
		}
	}
}

func TestAttributesSetReplacesInPlace(t *testing.T) {
	t.Parallel()

	base := NewAttributes(Attr("a", 1), Attr("b", 2))
	updated := base.Set("a", 3).Set("c", 4)

	if !slices.Equal(updated.Keys(), []string{"a", "b", "c"}) {
		t.Fatalf("unexpected keys %v", updated.Keys())
	}
	if v, _ := updated.Get("a"); v != 3 {
		t.Fatalf("expected a=3 got %v", v)
	}
	if v, _ := base.Get("a"); v != 1 {
		t.Fatalf("Set modified the receiver: a=%v", v)
	}
	if base.Len() != 2 {
		t.Fatalf("Set grew the receiver to %d", base.Len())
	}
	if _, ok := updated.Get("missing"); ok {
		t.Fatalf("expected missing key to be absent")
	}
}

func TestAttributesDuplicateKeysCollapse(t *testing.T) {
	t.Parallel()

	attrs := NewAttributes(Attr("a", 1), Attr("b", 2), Attr("a", 5))
	got, err := attrs.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(got) != `{"a":5,"b":2}` {
		t.Fatalf("unexpected json %s", got)
	}
}

func TestAttributesNested(t *testing.T) {
	t.Parallel()

	attrs := NewAttributes(
		Attr("order", NewAttributes(Attr("z", true), Attr("a", nil))),
		Attr("items", []string{"x"}),
	)
	got, err := attrs.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(got) != `{"order":{"z":true,"a":null},"items":["x"]}` {
		t.Fatalf("unexpected json %s", got)
	}
}

func TestAttributesMarshalError(t *testing.T) {
	t.Parallel()

	if _, err := NewAttributes(Attr("bad", make(chan int))).MarshalJSON(); err == nil {
		t.Fatalf("expected error for unsupported value")
	}
}
