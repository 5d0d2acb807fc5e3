package series

import "testing"

func TestRecorderOrder(t *testing.T) {
	r := NewRecorder()
	r.Record(0, 0.7, -1.0, 0.5)
	r.Record(1, 0.7, -1.0, 0.48)
	r.Record(2, 0.71, -1.0, 0.46)

	got := r.Export()
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
	for i, rec := range got {
		if rec.Step != uint64(i) {
			t.Errorf("expected step %d at index %d, got %d", i, i, rec.Step)
		}
	}
	if got[2].Temperature != 0.71 {
		t.Errorf("expected temperature 0.71, got %g", got[2].Temperature)
	}
}

func TestRecorderExportIsCopy(t *testing.T) {
	r := NewRecorder()
	r.Record(0, 1.0, 0.0, 0.25)

	first := r.Export()
	first[0].Density = 99

	second := r.Export()
	if second[0].Density != 0.25 {
		t.Errorf("expected stored density 0.25, got %g", second[0].Density)
	}
}

func TestRecorderLast(t *testing.T) {
	r := NewRecorder()
	if _, ok := r.Last(); ok {
		t.Error("expected no last record on empty recorder")
	}

	r.Record(0, 1.0, 0.0, 0.1)
	r.Record(1, 1.0, 0.0, 0.2)

	last, ok := r.Last()
	if !ok || last.Step != 1 || last.Density != 0.2 {
		t.Errorf("expected last record (1, 0.2), got %+v ok=%v", last, ok)
	}
}

func TestRecorderClear(t *testing.T) {
	r := NewRecorder()
	r.Record(0, 1.0, 0.0, 0.5)
	r.Clear()

	if r.Len() != 0 {
		t.Errorf("expected empty recorder after clear, got %d", r.Len())
	}
	if got := r.Export(); len(got) != 0 {
		t.Errorf("expected empty export after clear, got %d records", len(got))
	}
}

func TestRingOrder(t *testing.T) {
	r := NewRing(3)
	r.Push(1)
	r.Push(2)

	got := r.Values()
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("expected [1 2], got %v", got)
	}
}

func TestRingEviction(t *testing.T) {
	r := NewRing(3)
	for _, v := range []float64{1, 2, 3, 4, 5} {
		r.Push(v)
	}

	got := r.Values()
	want := []float64{3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("expected %d values, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected %v, got %v", want, got)
			break
		}
	}
	if r.Len() != 3 || r.Cap() != 3 {
		t.Errorf("expected len 3 cap 3, got len %d cap %d", r.Len(), r.Cap())
	}
}

func TestRingBoundsSurviveEviction(t *testing.T) {
	r := NewRing(2)
	r.Push(0.9)
	r.Push(0.1)
	r.Push(0.5)
	r.Push(0.5)

	min, max := r.Bounds()
	if min != 0.1 {
		t.Errorf("expected min 0.1, got %g", min)
	}
	if max != 0.9 {
		t.Errorf("expected max 0.9, got %g", max)
	}
}
