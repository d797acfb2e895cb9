package model

import (
	"github.com/pkg/errors"
)

// MaxCapacity is the largest store the process is willing to allocate.
const MaxCapacity = 1 << 24

var (
	ErrInvalidCapacity   = errors.New("invalid capacity")
	ErrAllocationFailure = errors.New("allocation failure")
	ErrReleased          = errors.New("ring buffer released")
)

// RingBuffer is a fixed-capacity store of float64 samples. Writes wrap around
// and overwrite the oldest slot once the buffer has been filled.
type RingBuffer struct {
	data     []float64
	size     int
	cursor   int
	count    int
	released bool
}

// NewRingBuffer 创建一个新的固定长度的循环数组，所有槽位初始化为 0
func NewRingBuffer(size int) (*RingBuffer, error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "size %d", size)
	}
	if size > MaxCapacity {
		return nil, errors.Wrapf(ErrAllocationFailure, "size %d exceeds %d", size, MaxCapacity)
	}

	return &RingBuffer{
		data:   make([]float64, size),
		size:   size,
		cursor: 0,
		count:  0,
	}, nil
}

// Add 向循环数组添加新数据，写满后覆盖最旧的数据
func (rb *RingBuffer) Add(value float64) {
	if rb.released {
		return
	}
	if rb.count < rb.size {
		rb.count++
	}
	rb.data[rb.cursor] = value
	rb.cursor = (rb.cursor + 1) % rb.size
}

// Item reads a physical slot. Negative indices read as 0 so that the first
// slot has a zero predecessor; indices past the end are clamped to the last
// slot.
func (rb *RingBuffer) Item(index int) float64 {
	if rb.released || index < 0 {
		return 0.0
	}
	if index >= rb.size {
		return rb.data[rb.size-1]
	}
	return rb.data[index]
}

// Recent 获取倒数第 k 个写入的值，k = 0 为最新值
func (rb *RingBuffer) Recent(k int) (float64, bool) {
	if rb.released || k < 0 || k >= rb.count {
		return 0, false
	}
	index := (rb.cursor - 1 - k + rb.size) % rb.size
	return rb.data[index], true
}

// First 获取当前数组中最旧的元素
func (rb *RingBuffer) First() (float64, bool) {
	return rb.Recent(rb.count - 1)
}

// Size returns the capacity the buffer was created with.
func (rb *RingBuffer) Size() int {
	return rb.size
}

// Count 返回已写入的有效元素个数，最大为容量
func (rb *RingBuffer) Count() int {
	return rb.count
}

// Cursor is the slot the next Add writes to.
func (rb *RingBuffer) Cursor() int {
	return rb.cursor
}

// Slots returns a copy of the physical layout.
func (rb *RingBuffer) Slots() []float64 {
	out := make([]float64, len(rb.data))
	copy(out, rb.data)
	return out
}

// GetAll 返回数组中的所有有效元素，顺序是从最旧的元素到最新的元素
func (rb *RingBuffer) GetAll() []float64 {
	out := make([]float64, 0, rb.count)
	if rb.count == rb.size {
		out = append(out, rb.data[rb.cursor:]...)
		return append(out, rb.data[:rb.cursor]...)
	}
	return append(out, rb.data[:rb.count]...)
}

// Clear 清空循环数组中的所有元素
func (rb *RingBuffer) Clear() {
	if rb.released {
		return
	}
	for i := range rb.data {
		rb.data[i] = 0
	}
	rb.cursor = 0
	rb.count = 0
}

// Release drops the backing storage. The buffer must not be used afterwards;
// reads return 0 and writes are ignored.
func (rb *RingBuffer) Release() {
	rb.data = nil
	rb.size = 0
	rb.cursor = 0
	rb.count = 0
	rb.released = true
}

func (rb *RingBuffer) Released() bool {
	return rb.released
}
