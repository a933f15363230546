package provider

import "testing"

// TestResultSetOrder verifies insertion order is preserved
func TestResultSetOrder(t *testing.T) {
	rs := NewResultSet[string]()
	rs.Insert("c", "third")
	rs.Insert("a", "first")
	rs.Insert("b", "second")

	var ids []string
	rs.Each(func(id string, item string) {
		ids = append(ids, id)
	})

	want := []string{"c", "a", "b"}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("iteration order %v, want %v", ids, want)
		}
	}
}

// TestResultSetReplace verifies re-insertion keeps position
func TestResultSetReplace(t *testing.T) {
	rs := NewResultSet[string]()
	rs.Insert("a", "old")
	rs.Insert("b", "other")
	rs.Insert("a", "new")

	if rs.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", rs.Len())
	}

	item, ok := rs.Get("a")
	if !ok || item != "new" {
		t.Errorf("Get(a) = %q, %v; want new, true", item, ok)
	}

	var first string
	rs.Each(func(id string, item string) {
		if first == "" {
			first = id
		}
	})
	if first != "a" {
		t.Errorf("expected a to keep first position, got %q", first)
	}
}

// TestResultSetNil verifies nil-set reads are safe
func TestResultSetNil(t *testing.T) {
	var rs *ResultSet[string]

	if rs.Len() != 0 {
		t.Errorf("nil set Len = %d, want 0", rs.Len())
	}

	if _, ok := rs.Get("a"); ok {
		t.Error("nil set Get reported an entry")
	}

	rs.Each(func(id string, item string) {
		t.Error("nil set Each invoked callback")
	})
}
