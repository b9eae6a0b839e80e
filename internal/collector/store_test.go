package collector

import (
	"sync"
	"testing"
)

func TestStoreAddAndTake(t *testing.T) {
	s := NewStore()

	if n := s.Add(1, Record{Path: "/tmp/a", Name: "a.mp4"}); n != 1 {
		t.Fatalf("Add() = %d, want 1", n)
	}
	if n := s.Add(1, Record{Path: "/tmp/b", Name: "b.mp4"}); n != 2 {
		t.Fatalf("Add() = %d, want 2", n)
	}
	s.Add(2, Record{Path: "/tmp/c", Name: "c.mp4"})

	got := s.Take(1)
	if len(got) != 2 || got[0].Name != "a.mp4" || got[1].Name != "b.mp4" {
		t.Errorf("Take(1) = %v, want [a.mp4 b.mp4] in order", got)
	}

	if n := s.Len(1); n != 0 {
		t.Errorf("Len(1) after Take = %d, want 0", n)
	}
	if n := s.Len(2); n != 1 {
		t.Errorf("Len(2) = %d, want 1 (other session untouched)", n)
	}
	if n := s.Sessions(); n != 1 {
		t.Errorf("Sessions() = %d, want 1", n)
	}
}

func TestStoreTakeEmpty(t *testing.T) {
	s := NewStore()

	if got := s.Take(42); len(got) != 0 {
		t.Errorf("Take() on empty session = %v, want none", got)
	}
	if n := s.Sessions(); n != 0 {
		t.Errorf("Sessions() = %d, want 0", n)
	}
}

func TestStoreRecordsIsCopy(t *testing.T) {
	s := NewStore()
	s.Add(1, Record{Path: "/tmp/a", Name: "a.mp4"})

	got := s.Records(1)
	got[0].Name = "changed.mp4"

	if name := s.Records(1)[0].Name; name != "a.mp4" {
		t.Errorf("Records() leaked internal slice, name = %q", name)
	}
}

func TestStoreConcurrentSessions(t *testing.T) {
	s := NewStore()

	const users, perUser = 8, 50

	var wg sync.WaitGroup
	for u := int64(1); u <= users; u++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			for i := 0; i < perUser; i++ {
				s.Add(userID, Record{Name: "x.mp4"})
			}
		}(u)
	}
	wg.Wait()

	for u := int64(1); u <= users; u++ {
		if n := s.Len(u); n != perUser {
			t.Errorf("Len(%d) = %d, want %d", u, n, perUser)
		}
	}
}
