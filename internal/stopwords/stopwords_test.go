package stopwords

import "testing"

func TestNew(t *testing.T) {
	set, err := New([]string{"in", "", "the", "in"})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if set.Len() != 2 {
		t.Errorf("Len() = %d, want 2", set.Len())
	}
	if !set.Contains("in") || !set.Contains("the") {
		t.Errorf("expected set to contain 'in' and 'the'")
	}
	if set.Contains("cat") {
		t.Errorf("expected set not to contain 'cat'")
	}
}

func TestNewRejectsControlByte(t *testing.T) {
	if _, err := New([]string{"in\x01"}); err == nil {
		t.Fatalf("expected error for control byte in stop word")
	}
}

func TestNewFromString(t *testing.T) {
	set, err := NewFromString("in the on")
	if err != nil {
		t.Fatalf("NewFromString returned error: %v", err)
	}
	if set.Len() != 3 {
		t.Errorf("Len() = %d, want 3", set.Len())
	}
}

func TestNilSetContainsNothing(t *testing.T) {
	var set *Set
	if set.Contains("anything") {
		t.Errorf("nil set should not contain anything")
	}
	if set.Len() != 0 {
		t.Errorf("nil set should have length 0")
	}
}
