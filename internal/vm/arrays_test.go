package vm

import "testing"

func TestAllocateReturnsDistinctNonzeroIDs(t *testing.T) {
	table := newArrayTable()
	id1 := table.allocate(4)
	id2 := table.allocate(4)
	if id1 == 0 || id2 == 0 || id1 == id2 {
		t.Fatalf("expected two distinct nonzero ids, got %d and %d", id1, id2)
	}
}

func TestFreeListIsLIFO(t *testing.T) {
	table := newArrayTable()
	a := table.allocate(1)
	b := table.allocate(1)
	c := table.allocate(1)

	if f := table.freeID(b); f != nil {
		t.Fatalf("free(b) faulted: %v", f)
	}
	if f := table.freeID(c); f != nil {
		t.Fatalf("free(c) faulted: %v", f)
	}

	// LIFO: the most recently freed (c) comes back first.
	if got := table.allocate(1); got != c {
		t.Errorf("allocate() = %d, want most recently freed %d", got, c)
	}
	if got := table.allocate(1); got != b {
		t.Errorf("allocate() = %d, want next most recently freed %d", got, b)
	}
	_ = a
}

func TestFreeZeroFaults(t *testing.T) {
	table := newArrayTable()
	if f := table.freeID(0); f == nil || f.Kind != DEL {
		t.Errorf("free(0) = %v, want DEL fault", f)
	}
}

func TestFreeInactiveFaults(t *testing.T) {
	table := newArrayTable()
	id := table.allocate(1)
	if f := table.freeID(id); f != nil {
		t.Fatalf("unexpected fault freeing active id: %v", f)
	}
	if f := table.freeID(id); f == nil || f.Kind != DEL {
		t.Errorf("double free = %v, want DEL fault", f)
	}
}

func TestFreeOutOfRangeFaults(t *testing.T) {
	table := newArrayTable()
	if f := table.freeID(99999); f == nil || f.Kind != DEL {
		t.Errorf("free(out-of-range) = %v, want DEL fault", f)
	}
}

func TestReadWriteRoundTrip(t *testing.T) {
	table := newArrayTable()
	id := table.allocate(8)
	if f := table.write(id, 3, 42); f != nil {
		t.Fatalf("write faulted: %v", f)
	}
	got, f := table.read(id, 3)
	if f != nil {
		t.Fatalf("read faulted: %v", f)
	}
	if got != 42 {
		t.Errorf("read() = %d, want 42", got)
	}
}

func TestZeroSizeArrayIsUnreadable(t *testing.T) {
	table := newArrayTable()
	id := table.allocate(0)
	if _, f := table.read(id, 0); f == nil || f.Kind != ARR {
		t.Errorf("read(size-0 array) = %v, want ARR fault", f)
	}
}

func TestReadOutOfRangeOffsetFaults(t *testing.T) {
	table := newArrayTable()
	id := table.allocate(2)
	if _, f := table.read(id, 2); f == nil || f.Kind != ARR {
		t.Errorf("read(offset==size) = %v, want ARR fault", f)
	}
}

func TestReadInactiveIDFaults(t *testing.T) {
	table := newArrayTable()
	id := table.allocate(2)
	table.freeID(id)
	if _, f := table.read(id, 0); f == nil || f.Kind != ARR {
		t.Errorf("read(freed id) = %v, want ARR fault", f)
	}
}

func TestSnapshotIndependentOfSource(t *testing.T) {
	table := newArrayTable()
	id := table.allocate(2)
	table.write(id, 0, 7)

	snap, f := table.snapshot(id)
	if f != nil {
		t.Fatalf("snapshot faulted: %v", f)
	}

	table.write(id, 0, 99)
	if snap[0] != 7 {
		t.Errorf("snapshot mutated by later write: got %d, want 7", snap[0])
	}
}

func TestSnapshotInactiveFaultsPRG(t *testing.T) {
	table := newArrayTable()
	id := table.allocate(1)
	table.freeID(id)
	if _, f := table.snapshot(id); f == nil || f.Kind != PRG {
		t.Errorf("snapshot(inactive) = %v, want PRG fault", f)
	}
}

func TestSnapshotOutOfRangeFaultsARR(t *testing.T) {
	table := newArrayTable()
	if _, f := table.snapshot(999999); f == nil || f.Kind != ARR {
		t.Errorf("snapshot(out-of-range) = %v, want ARR fault", f)
	}
}

func TestGrowthPreservesActiveArrays(t *testing.T) {
	table := newArrayTable()
	var ids []Word
	// Exhaust the initial capacity so grow() has to run, and confirm
	// previously-allocated arrays survive it untouched.
	for i := 0; i < initialCapacity+4; i++ {
		ids = append(ids, table.allocate(1))
	}
	for i, id := range ids {
		if f := table.write(id, 0, Word(i)); f != nil {
			t.Fatalf("write after growth faulted for id %d: %v", id, f)
		}
	}
	for i, id := range ids {
		got, f := table.read(id, 0)
		if f != nil {
			t.Fatalf("read after growth faulted for id %d: %v", id, f)
		}
		if got != Word(i) {
			t.Errorf("id %d: got %d, want %d", id, got, i)
		}
	}
}
