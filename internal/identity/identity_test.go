package identity

import (
	"strconv"
	"testing"
	"time"
)

func TestGeneratorSameTickStrictlyIncreasing(t *testing.T) {
	frozen := time.UnixMilli(1750000000000)
	gen := NewGeneratorWithClock(func() time.Time { return frozen })

	prev := int64(0)
	for i := 0; i < 5; i++ {
		id := gen.Next()
		ms, err := strconv.ParseInt(string(id), 10, 64)
		if err != nil {
			t.Fatalf("non numeric id %q: %v", id, err)
		}
		if ms <= prev {
			t.Fatalf("id %d not strictly increasing after %d", ms, prev)
		}
		prev = ms
	}
	if prev != 1750000000004 {
		t.Fatalf("expected ids to advance one per call, last was %d", prev)
	}
}

func TestGeneratorTracksClock(t *testing.T) {
	now := time.UnixMilli(1750000000000)
	gen := NewGeneratorWithClock(func() time.Time { return now })

	first := gen.Next()
	now = now.Add(50 * time.Millisecond)
	second := gen.Next()

	if string(second) != "1750000000050" {
		t.Fatalf("expected clock driven id, got %s (first %s)", second, first)
	}
}

func TestSeedUUIDDeterministic(t *testing.T) {
	a := SeedUUID("news", "articles/article1.md")
	b := SeedUUID("news", "articles/article1.md")
	c := SeedUUID("news", "articles/article2.md")

	if a == "" {
		t.Fatal("empty id")
	}
	if a != b {
		t.Fatalf("same input produced different ids: %s vs %s", a, b)
	}
	if a == c {
		t.Fatalf("different inputs collided on %s", a)
	}
}
