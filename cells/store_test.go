package cells

import (
	"testing"
)

func storesUnderTest(w, h int) map[string]Store {
	return map[string]Store{
		"dense":  NewDense(w, h),
		"sparse": NewSparse(w, h),
	}
}

func TestStoreStartsTransparent(t *testing.T) {
	for name, st := range storesUnderTest(4, 3) {
		if st.Width() != 4 || st.Height() != 3 {
			t.Errorf("%s: expected 4×3 store, is %d×%d", name, st.Width(), st.Height())
		}
		for y := range 3 {
			for x := range 4 {
				if c := st.Get(x, y); c != Transparent {
					t.Errorf("%s: expected (%d,%d) to be transparent, is %#v", name, x, y, c)
				}
			}
		}
		if st.Len() != 0 {
			t.Errorf("%s: expected no opaque cells, have %d", name, st.Len())
		}
	}
}

func TestStoreSetGetDelete(t *testing.T) {
	for name, st := range storesUnderTest(5, 5) {
		st.Set(0, 0, Char('a'))
		st.Set(4, 4, Blank)
		st.Set(2, 3, Char('z'))
		if c := st.Get(0, 0); c != Char('a') {
			t.Errorf("%s: expected 'a' at (0,0), is %#v", name, c)
		}
		if c := st.Get(4, 4); c != Blank {
			t.Errorf("%s: expected blank at (4,4), is %#v", name, c)
		}
		if st.Len() != 3 {
			t.Errorf("%s: expected 3 opaque cells, have %d", name, st.Len())
		}
		st.Delete(2, 3)
		st.Set(0, 0, Transparent)
		if c := st.Get(2, 3); c != Transparent {
			t.Errorf("%s: expected (2,3) to be transparent after delete, is %#v", name, c)
		}
		if st.Len() != 1 {
			t.Errorf("%s: expected 1 opaque cell, have %d", name, st.Len())
		}
	}
}

func TestSparseStoreDropsEntries(t *testing.T) {
	sp := NewSparse(100, 100)
	sp.Set(99, 99, Char('x'))
	sp.Set(99, 99, Transparent)
	if len(sp.cells) != 0 {
		t.Errorf("expected transparent cell to remove the map entry, have %d entries", len(sp.cells))
	}
	sp.Set(3, 1, Char('q'))
	if r, ok := sp.cells[1*100+3]; !ok || r != 'q' {
		t.Errorf("expected entry keyed by packed coordinate 103")
	}
}

func TestFillAndCopy(t *testing.T) {
	for name, st := range storesUnderTest(3, 2) {
		Fill(st, Char('.'))
		if st.Len() != 6 {
			t.Errorf("%s: expected 6 opaque cells after fill, have %d", name, st.Len())
		}
		dst := NewSparse(3, 2)
		Copy(dst, st)
		if dst.Get(2, 1) != Char('.') || dst.Len() != 6 {
			t.Errorf("%s: expected copy to carry all cells", name)
		}
		Fill(st, Transparent)
		if st.Len() != 0 {
			t.Errorf("%s: expected no opaque cells after clearing, have %d", name, st.Len())
		}
	}
}

func TestStoreOutOfBoundsPanics(t *testing.T) {
	for name, st := range storesUnderTest(2, 2) {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected access at (2,0) to panic", name)
				}
			}()
			st.Get(2, 0)
		}()
	}
}

func TestCopySizeMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected copy between differently sized stores to panic")
		}
	}()
	Copy(NewDense(2, 2), NewDense(3, 2))
}
