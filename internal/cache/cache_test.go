package cache

import (
	"strings"
	"testing"
	"time"
)

func TestKey(t *testing.T) {
	k1 := Key("groq", "llama-3.3-70b-versatile", "v1", "some article text")
	k2 := Key("groq", "llama-3.3-70b-versatile", "v1", "some article text")

	if k1 != k2 {
		t.Error("identical inputs must produce the same key")
	}
	if !strings.HasPrefix(k1, "veridex:groq:llama-3.3-70b-versatile:v1:") {
		t.Errorf("unexpected key prefix: %s", k1)
	}

	variants := []string{
		Key("openai", "llama-3.3-70b-versatile", "v1", "some article text"),
		Key("groq", "llama-3.1-8b-instant", "v1", "some article text"),
		Key("groq", "llama-3.3-70b-versatile", "v2", "some article text"),
		Key("groq", "llama-3.3-70b-versatile", "v1", "different text"),
	}
	for i, k := range variants {
		if k == k1 {
			t.Errorf("variant %d produced the same key; provider, model, version, and text must all invalidate", i)
		}
	}
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Error("expected miss for unknown key")
	}

	if err := c.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	val, found := c.Get("k")
	if !found || string(val) != "v" {
		t.Errorf("expected hit with value v, got (%q, %v)", val, found)
	}

	if err := c.Delete("k"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("expected miss after delete")
	}
}

func TestDiskCache(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Minute)

	if err := c.Set("k", []byte("v"), 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	val, found := c.Get("k")
	if !found || string(val) != "v" {
		t.Errorf("expected hit with value v, got (%q, %v)", val, found)
	}

	// Expired entries are dropped on read
	if err := c.Set("old", []byte("x"), -time.Second); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if _, found := c.Get("old"); found {
		t.Error("expected expired entry to miss")
	}
}

func TestLayeredCache_PromotesDiskHits(t *testing.T) {
	dir := t.TempDir()
	c := NewLayeredCache(time.Minute, dir, time.Minute)

	// Write directly to the disk layer, bypassing memory
	if err := c.disk.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("disk set failed: %v", err)
	}

	val, found := c.Get("k")
	if !found || string(val) != "v" {
		t.Fatalf("expected disk hit, got (%q, %v)", val, found)
	}

	// Now it should be in memory too
	if _, found := c.memory.Get("k"); !found {
		t.Error("expected disk hit to be promoted to memory")
	}
}
