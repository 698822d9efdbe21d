package influence

import "testing"

func TestAddAndGetValue(t *testing.T) {
	m := New()
	m.AddValue(5, 5, 1.5)
	m.AddValue(5, 5, 2.5)
	if got := m.GetValue(5, 5); got != 4 {
		t.Fatalf("expected accumulated value 4, got %v", got)
	}
}

func TestSetValueOverwrites(t *testing.T) {
	m := New()
	m.AddValue(1, 1, 10)
	m.SetValue(1, 1, 2)
	if got := m.GetValue(1, 1); got != 2 {
		t.Fatalf("expected overwritten value 2, got %v", got)
	}
}

func TestOutOfBoundsIsIgnored(t *testing.T) {
	m := New()
	m.AddValue(-1, -1, 5)
	m.SetValue(99999, 0, 5)
	if got := m.GetValue(-1, -1); got != 0 {
		t.Fatalf("expected 0 for out-of-bounds read, got %v", got)
	}
}

func TestUpdateDecaysTowardZero(t *testing.T) {
	m := New()
	m.SetValue(3, 3, 10)
	m.SetValue(4, 4, -10)
	m.Update(1, 3)
	if got := m.GetValue(3, 3); got != 7 {
		t.Fatalf("expected positive decay to 7, got %v", got)
	}
	if got := m.GetValue(4, 4); got != -7 {
		t.Fatalf("expected negative decay to -7, got %v", got)
	}
}

func TestUpdateNeverOvershootsZero(t *testing.T) {
	m := New()
	m.SetValue(0, 0, 1)
	m.Update(1, 10)
	if got := m.GetValue(0, 0); got != 0 {
		t.Fatalf("expected decay to clamp at 0, got %v", got)
	}
}
