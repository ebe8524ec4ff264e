package store

import (
	"sync"
	"testing"
)

type thing struct {
	ID   int64
	Name string
	N    int
}

func TestCollectionCreateAssignsMonotonicIDs(t *testing.T) {
	c := NewCollection[thing]()

	var last int64
	for i := 0; i < 100; i++ {
		v := c.Create(func(id int64) thing { return thing{ID: id} })
		if v.ID <= last {
			t.Fatalf("id %d not greater than previous %d", v.ID, last)
		}
		last = v.ID
	}
	if first, _ := c.Get(1); first.ID != 1 {
		t.Errorf("ids should start at 1, first record has id %d", first.ID)
	}
}

func TestCollectionGetAfterCreate(t *testing.T) {
	c := NewCollection[thing]()

	created := c.Create(func(id int64) thing {
		return thing{ID: id, Name: "gauze", N: 7}
	})

	got, ok := c.Get(created.ID)
	if !ok {
		t.Fatalf("Get(%d) reported absent after create", created.ID)
	}
	if got != created {
		t.Errorf("Get() = %+v, want %+v", got, created)
	}
}

func TestCollectionGetAbsent(t *testing.T) {
	c := NewCollection[thing]()
	if _, ok := c.Get(42); ok {
		t.Error("Get on empty collection reported a record")
	}
}

func TestCollectionUpdateReplacesOnlyMutatedFields(t *testing.T) {
	c := NewCollection[thing]()
	v := c.Create(func(id int64) thing { return thing{ID: id, Name: "a", N: 1} })

	updated, ok := c.Update(v.ID, func(cur thing) thing {
		cur.N = 2
		return cur
	})
	if !ok {
		t.Fatal("Update reported absent for existing record")
	}
	if updated.Name != "a" || updated.N != 2 {
		t.Errorf("after update got %+v, want Name=a N=2", updated)
	}

	if _, ok := c.Update(999, func(cur thing) thing { return cur }); ok {
		t.Error("Update on missing id reported success")
	}
}

func TestCollectionListInsertionOrder(t *testing.T) {
	c := NewCollection[thing]()
	names := []string{"x", "y", "z"}
	for _, n := range names {
		n := n
		c.Create(func(id int64) thing { return thing{ID: id, Name: n} })
	}

	got := c.List()
	if len(got) != len(names) {
		t.Fatalf("List() returned %d records, want %d", len(got), len(names))
	}
	for i, n := range names {
		if got[i].Name != n {
			t.Errorf("List()[%d].Name = %q, want %q", i, got[i].Name, n)
		}
	}
}

func TestCollectionFilterAndFind(t *testing.T) {
	c := NewCollection[thing]()
	for i := 0; i < 10; i++ {
		i := i
		c.Create(func(id int64) thing { return thing{ID: id, N: i} })
	}

	even := c.Filter(func(v thing) bool { return v.N%2 == 0 })
	if len(even) != 5 {
		t.Errorf("Filter returned %d records, want 5", len(even))
	}

	v, ok := c.Find(func(v thing) bool { return v.N == 3 })
	if !ok || v.N != 3 {
		t.Errorf("Find(N==3) = %+v, %v", v, ok)
	}
	if _, ok := c.Find(func(v thing) bool { return v.N == 99 }); ok {
		t.Error("Find matched a record that does not exist")
	}
}

func TestCollectionConcurrentCreateUniqueIDs(t *testing.T) {
	c := NewCollection[thing]()

	const workers = 50
	const perWorker = 20

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				c.Create(func(id int64) thing { return thing{ID: id} })
			}
		}()
	}
	wg.Wait()

	if c.Len() != workers*perWorker {
		t.Fatalf("Len() = %d, want %d", c.Len(), workers*perWorker)
	}
	seen := make(map[int64]bool)
	for _, v := range c.List() {
		if seen[v.ID] {
			t.Fatalf("duplicate id %d", v.ID)
		}
		seen[v.ID] = true
	}
}
