package canvas

import (
	"strings"

	"github.com/npillmayer/textcanvas/cells"
)

// stringCache holds the string form of a canvas.
//
// Invariant: !dirty implies text reflects the exact current store content.
// Every mutator must call invalidate before it returns.
type stringCache struct {
	dirty   bool
	text    string
	renders int // number of recomputations, for tests
}

func newStringCache() stringCache {
	return stringCache{dirty: true}
}

func (sc *stringCache) invalidate() {
	sc.dirty = true
	sc.text = ""
}

// render returns the cached text, recomputing it from st if dirty.
func (sc *stringCache) render(st cells.Store) string {
	if !sc.dirty {
		return sc.text
	}
	w, h := st.Width(), st.Height()
	var b strings.Builder
	b.Grow(w*h + h - 1)
	for y := range h {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := range w {
			b.WriteRune(st.Get(x, y).Render())
		}
	}
	sc.text = b.String()
	sc.dirty = false
	sc.renders++
	tracer().Debugf("rendered %d×%d canvas text", w, h)
	return sc.text
}
