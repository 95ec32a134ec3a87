package tape

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzAdvance(f *testing.F) {
	f.Add(1, 0, 0)
	f.Add(1, 0, -1)
	f.Add(3, 2, 5)
	f.Add(10, 5, -23)
	f.Add(4096, 4095, -8191)
	f.Add(4096, 0, math.MaxInt)

	f.Fuzz(func(t *testing.T, capacity int, start int, delta int) {
		assert := assert.New(t)

		if capacity < 1 || capacity > 1<<16 {
			t.Skip()
		}
		if delta == math.MinInt {
			// -delta is not representable.
			t.Skip()
		}

		tp, err := New(capacity)
		assert.NoError(err)

		tp.MoveTo(start)
		from := tp.Pos()

		pos := tp.Advance(delta)
		assert.GreaterOrEqual(pos, 0)
		assert.Less(pos, capacity)

		// A move out and back lands on the starting cell.
		tp.MoveTo(pos)
		assert.Equal(from, tp.Advance(-delta))
	})
}
