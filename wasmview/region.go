package wasmview

import (
	"fmt"

	"fortio.org/safecast"
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/ownref"
	"github.com/wippyai/ownref/errors"
)

// Region owns a byte range of a module's linear memory. The view aliases
// guest memory directly; nothing is copied.
type Region struct {
	mem  api.Memory
	data []byte
	off  uint32
}

// NewRegion captures length bytes at offset. The range is bounds-checked
// against the memory's current size.
func NewRegion(mem api.Memory, offset, length int) (Region, error) {
	if mem == nil {
		return Region{}, errors.NilMemory(errors.PhaseRegion, "no linear memory to capture")
	}

	off, err := safecast.Conv[uint32](offset)
	if err != nil {
		return Region{}, errors.Overflow(errors.PhaseRegion, offset, "uint32")
	}
	ln, err := safecast.Conv[uint32](length)
	if err != nil {
		return Region{}, errors.Overflow(errors.PhaseRegion, length, "uint32")
	}

	data, ok := mem.Read(off, ln)
	if !ok {
		return Region{}, errors.OutOfBounds(errors.PhaseRegion, offset, length, int(mem.Size()))
	}
	return Region{mem: mem, data: data, off: off}, nil
}

// Capture wraps the whole of mem as one region.
func Capture(mem api.Memory) (Region, error) {
	if mem == nil {
		return Region{}, errors.NilMemory(errors.PhaseRegion, "no linear memory to capture")
	}
	return NewRegion(mem, 0, int(mem.Size()))
}

// Deref returns the captured bytes. The slice aliases guest memory.
func (r Region) Deref() []byte {
	return r.data
}

// StableDeref declares the stability capability under the discipline
// described in the package comment.
func (r Region) StableDeref() {}

// Offset returns the region's start address in linear memory.
func (r Region) Offset() uint32 {
	return r.off
}

// Memory returns the underlying linear memory.
func (r Region) Memory() api.Memory {
	return r.mem
}

func (r Region) String() string {
	return fmt.Sprintf("Region(off=%d, len=%d)", r.off, len(r.data))
}

// RegionRef pairs a Region owner with the current view type.
type RegionRef[U any] = ownref.Ref[Region, U]

// ForRegion wraps a captured region. The initial view is the full byte range.
func ForRegion(r Region) RegionRef[[]byte] {
	return ownref.New[[]byte](r)
}
