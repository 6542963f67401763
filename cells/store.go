package cells

import "fmt"

// Store is the backing storage of a canvas. All coordinates passed to a
// store must satisfy 0 ≤ x < Width() and 0 ≤ y < Height().
type Store interface {
	Width() int
	Height() int
	Get(x, y int) Cell
	Set(x, y int, c Cell) // setting Transparent is the same as Delete
	Delete(x, y int)
	Len() int // number of opaque cells
}

// --- Dense store -----------------------------------------------------------

// Dense is a Store backed by a fixed slice of width·height cells, indexed
// y*width+x.
type Dense struct {
	width, height int
	cells         []Cell
}

var _ Store = (*Dense)(nil)

// NewDense creates a dense store with all cells transparent.
func NewDense(width, height int) *Dense {
	mustBePositive(width, height)
	d := &Dense{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for i := range d.cells {
		d.cells[i] = Transparent
	}
	return d
}

// Width returns the number of columns.
func (d *Dense) Width() int { return d.width }

// Height returns the number of rows.
func (d *Dense) Height() int { return d.height }

// Get returns the cell at (x, y).
func (d *Dense) Get(x, y int) Cell {
	return d.cells[d.offset(x, y)]
}

// Set stores c at (x, y).
func (d *Dense) Set(x, y int, c Cell) {
	d.cells[d.offset(x, y)] = c
}

// Delete makes the cell at (x, y) transparent.
func (d *Dense) Delete(x, y int) {
	d.cells[d.offset(x, y)] = Transparent
}

// Len counts the opaque cells.
func (d *Dense) Len() int {
	n := 0
	for _, c := range d.cells {
		if c != Transparent {
			n++
		}
	}
	return n
}

// Fill sets every cell to c.
func (d *Dense) Fill(c Cell) {
	for i := range d.cells {
		d.cells[i] = c
	}
}

func (d *Dense) offset(x, y int) int {
	checkBounds(x, y, d.width, d.height)
	return y*d.width + x
}

// --- Sparse store ----------------------------------------------------------

// Sparse is a Store holding opaque cells only, in a map keyed by the packed
// coordinate y*width+x. Transparent cells have no entry.
type Sparse struct {
	width, height int
	cells         map[int]rune
}

var _ Store = (*Sparse)(nil)

// NewSparse creates an empty sparse store.
func NewSparse(width, height int) *Sparse {
	mustBePositive(width, height)
	return &Sparse{
		width:  width,
		height: height,
		cells:  make(map[int]rune),
	}
}

// Width returns the number of columns.
func (s *Sparse) Width() int { return s.width }

// Height returns the number of rows.
func (s *Sparse) Height() int { return s.height }

// Get returns the cell at (x, y), Transparent if there is no entry.
func (s *Sparse) Get(x, y int) Cell {
	if r, ok := s.cells[s.key(x, y)]; ok {
		return Cell(r)
	}
	return Transparent
}

// Set stores c at (x, y). Storing Transparent removes the entry.
func (s *Sparse) Set(x, y int, c Cell) {
	if c == Transparent {
		delete(s.cells, s.key(x, y))
		return
	}
	s.cells[s.key(x, y)] = rune(c)
}

// Delete removes the entry for (x, y).
func (s *Sparse) Delete(x, y int) {
	delete(s.cells, s.key(x, y))
}

// Len returns the number of entries.
func (s *Sparse) Len() int {
	return len(s.cells)
}

// Fill sets every cell to c. Filling with Transparent empties the map.
func (s *Sparse) Fill(c Cell) {
	clear(s.cells)
	if c == Transparent {
		return
	}
	for i := range s.width * s.height {
		s.cells[i] = rune(c)
	}
}

func (s *Sparse) key(x, y int) int {
	checkBounds(x, y, s.width, s.height)
	return y*s.width + x
}

// --- Helpers ---------------------------------------------------------------

// Filler is implemented by stores which can set all cells at once more
// efficiently than cell by cell.
type Filler interface {
	Fill(c Cell)
}

// Fill sets every cell of st to c.
func Fill(st Store, c Cell) {
	if f, ok := st.(Filler); ok {
		f.Fill(c)
		return
	}
	for y := range st.Height() {
		for x := range st.Width() {
			st.Set(x, y, c)
		}
	}
}

// Copy copies all cells of src to dst. Both stores must have the same size.
func Copy(dst, src Store) {
	if dst.Width() != src.Width() || dst.Height() != src.Height() {
		panic(fmt.Sprintf("cells: copy between stores of different size (%d×%d and %d×%d)",
			dst.Width(), dst.Height(), src.Width(), src.Height()))
	}
	for y := range src.Height() {
		for x := range src.Width() {
			dst.Set(x, y, src.Get(x, y))
		}
	}
}

func checkBounds(x, y, w, h int) {
	if x < 0 || x >= w || y < 0 || y >= h {
		panic(fmt.Sprintf("cells: coordinate (%d,%d) outside of %d×%d store", x, y, w, h))
	}
}

func mustBePositive(w, h int) {
	if w < 1 || h < 1 {
		panic(fmt.Sprintf("cells: invalid store size %d×%d", w, h))
	}
}
