package collection

// Capacity policy for [Vector]. Growth doubles when full; shrink halves once
// the logical size falls to a quarter of capacity, but never below MinCapacity.
const (
	MinCapacity   = 2
	GrowthFactor  = 2
	ShrinkAtRatio = 4
)

// Vector is a growable sequence that owns backing storage for values of type T.
//
// Unlike a bare slice with append, the vector manages capacity explicitly so
// the growth and shrink thresholds are part of its contract. Indexed access is
// panic-free: [Vector.At] returns the zero value of T for any index outside
// [0, Len()).
type Vector[T any] struct {
	items []T // len(items) == capacity; slots beyond size hold zero values
	size  int
}

// NewVector allocates a vector with the given starting capacity.
// Capacities below [MinCapacity] are clamped up to it.
func NewVector[T any](capacity int) *Vector[T] {
	if capacity < MinCapacity {
		capacity = MinCapacity
	}
	return &Vector[T]{items: make([]T, capacity)}
}

// Len returns the logical element count.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the allocated slot count.
func (v *Vector[T]) Cap() int { return len(v.items) }

// PushBack appends value at the logical end, doubling capacity first when full.
func (v *Vector[T]) PushBack(value T) {
	if v.size == len(v.items) {
		v.resize(len(v.items) * GrowthFactor)
	}
	v.items[v.size] = value
	v.size++
}

// At returns the value stored at index, or the zero value of T when index is
// outside [0, Len()). It never panics.
func (v *Vector[T]) At(index int) T {
	if index < 0 || index >= v.size {
		var zero T
		return zero
	}
	return v.items[index]
}

// Get returns the value at index and whether the index was in range.
func (v *Vector[T]) Get(index int) (T, bool) {
	if index < 0 || index >= v.size {
		var zero T
		return zero, false
	}
	return v.items[index], true
}

// Set replaces the value at index, reporting whether the index was in range.
func (v *Vector[T]) Set(index int, value T) bool {
	if index < 0 || index >= v.size {
		return false
	}
	v.items[index] = value
	return true
}

// RemoveAt drops the element at index, shifting later elements one slot left
// so relative order is preserved. It returns false without mutating anything
// when index is outside [0, Len()).
//
// Removal only releases the vector's slot; when T is a reference type the
// caller decides what happens to the referent.
func (v *Vector[T]) RemoveAt(index int) bool {
	if index < 0 || index >= v.size {
		return false
	}

	copy(v.items[index:], v.items[index+1:v.size])

	// Zero the vacated tail slot so the vector no longer references the value.
	var zero T
	v.items[v.size-1] = zero
	v.size--

	if v.size > 0 && v.size <= len(v.items)/ShrinkAtRatio && len(v.items) > MinCapacity {
		v.resize(len(v.items) / GrowthFactor)
	}

	return true
}

// Clear resets the vector to empty, zeroing every held slot.
func (v *Vector[T]) Clear() {
	var zero T
	for i := 0; i < v.size; i++ {
		v.items[i] = zero
	}
	v.size = 0
}

// resize reallocates backing storage at newCap and copies elements in order.
func (v *Vector[T]) resize(newCap int) {
	if newCap < MinCapacity {
		newCap = MinCapacity
	}
	next := make([]T, newCap)
	copy(next, v.items[:v.size])
	v.items = next
}
