package wordcount

import "testing"

func TestCounter_ProcessTallysWords(t *testing.T) {
	c := NewCounter()

	consumed := c.Process([]byte("cat dog cat"), true)
	if consumed != len("cat dog cat") {
		t.Fatalf("consumed = %d, want %d", consumed, len("cat dog cat"))
	}
	if c.Map["cat"] != 2 {
		t.Errorf("cat = %d, want 2", c.Map["cat"])
	}
	if c.Map["dog"] != 1 {
		t.Errorf("dog = %d, want 1", c.Map["dog"])
	}
}

func TestCounter_HoldsBackTrailingWordWithoutEOF(t *testing.T) {
	c := NewCounter()

	consumed := c.Process([]byte("cat do"), false)
	if consumed != len("cat ") {
		t.Fatalf("consumed = %d, want %d", consumed, len("cat "))
	}
	if len(c.Map) != 1 || c.Map["cat"] != 1 {
		t.Fatalf("Map = %v, want only cat=1", c.Map)
	}
}
