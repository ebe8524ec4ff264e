package store

import "testing"

func TestResolverMemoizesLookups(t *testing.T) {
	calls := 0
	r := NewResolver(func(id int64) (string, bool) {
		calls++
		if id == 1 {
			return "one", true
		}
		return "", false
	})

	for i := 0; i < 5; i++ {
		if v := r.Resolve(1); v == nil || *v != "one" {
			t.Fatalf("Resolve(1) = %v", v)
		}
	}
	if calls != 1 {
		t.Errorf("fetch called %d times for one id, want 1", calls)
	}
}

func TestResolverCachesMisses(t *testing.T) {
	calls := 0
	r := NewResolver(func(id int64) (string, bool) {
		calls++
		return "", false
	})

	if v := r.Resolve(9); v != nil {
		t.Errorf("Resolve of absent id = %v, want nil", v)
	}
	if v := r.Resolve(9); v != nil {
		t.Errorf("second Resolve of absent id = %v, want nil", v)
	}
	if calls != 1 {
		t.Errorf("fetch called %d times for a cached miss, want 1", calls)
	}
}
