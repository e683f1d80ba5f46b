package ports

import "testing"

func TestRouteKeyStringIsUnambiguous(t *testing.T) {
	a := RouteKey{Network: 1, From: "a|b", To: "c"}
	b := RouteKey{Network: 1, From: "a", To: "b|c"}
	c := RouteKey{Network: 1, From: "a:1", To: "c"}
	d := RouteKey{Network: 1, From: "a", To: "1:c"}

	if a.String() == b.String() {
		t.Fatalf("keys collide: %s", a)
	}
	if c.String() == d.String() {
		t.Fatalf("keys collide: %s", c)
	}

	want := "0000000000000001:3:a|b:c"
	if got := a.String(); got != want {
		t.Fatalf("unexpected key: got %s want %s", got, want)
	}
}
