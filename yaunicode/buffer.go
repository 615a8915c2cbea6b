//go:build !yaunicode_noalloc

package yaunicode

import "math"

// unitBuffer owns a destination allocation until it is either frozen into
// the result or released on a failure path.
type unitBuffer[U Unit] struct {
	units []U
}

// allocUnits allocates length units plus one for the terminator.
func allocUnits[U Unit](length, maxUnits int, encoding Encoding) (buf *unitBuffer[U], err error) {
	if length < 0 || length == math.MaxInt || (maxUnits > 0 && length+1 > maxUnits) {
		return nil, newError(KindAllocationFailure, encoding, -1, 0)
	}

	defer func() {
		if recover() != nil {
			buf, err = nil, newError(KindAllocationFailure, encoding, -1, 0)
		}
	}()

	return &unitBuffer[U]{units: make([]U, length+1)}, nil
}

// body is everything but the terminator slot.
func (b *unitBuffer[U]) body() []U {
	return b.units[:len(b.units)-1]
}

func (b *unitBuffer[U]) cursor(c codec[U]) *Cursor[U] {
	return &Cursor[U]{units: b.body(), codec: c}
}

// release drops the allocation. It is a no-op after freeze.
func (b *unitBuffer[U]) release() {
	b.units = nil
}

// freeze writes the terminator and hands the allocation to the caller.
func (b *unitBuffer[U]) freeze() []U {
	out := b.units
	out[len(out)-1] = 0
	b.units = nil

	return out
}
