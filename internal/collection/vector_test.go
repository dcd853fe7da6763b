package collection

import "testing"

func TestVector(t *testing.T) {
	t.Run("NewVector clamps capacity", func(t *testing.T) {
		for _, capacity := range []int{-5, 0, 1} {
			v := NewVector[int](capacity)
			if v.Cap() != MinCapacity {
				t.Errorf("NewVector(%d).Cap() = %d, want %d", capacity, v.Cap(), MinCapacity)
			}
			if v.Len() != 0 {
				t.Errorf("new vector should be empty, got %d", v.Len())
			}
		}

		if v := NewVector[int](6); v.Cap() != 6 {
			t.Errorf("expected requested capacity 6, got %d", v.Cap())
		}
	})

	t.Run("PushBack grows by doubling", func(t *testing.T) {
		v := NewVector[int](2)
		wantCaps := []int{2, 2, 4, 4, 8, 8, 8, 8, 16}

		for i := 0; i < len(wantCaps); i++ {
			v.PushBack(i * 10)
			if v.Len() != i+1 {
				t.Fatalf("after %d pushes Len() = %d", i+1, v.Len())
			}
			if v.Cap() != wantCaps[i] {
				t.Errorf("after %d pushes Cap() = %d, want %d", i+1, v.Cap(), wantCaps[i])
			}
		}

		for i := 0; i < v.Len(); i++ {
			if v.At(i) != i*10 {
				t.Errorf("At(%d) = %d, want %d", i, v.At(i), i*10)
			}
		}
	})

	t.Run("At returns zero value out of range", func(t *testing.T) {
		v := NewVector[int](2)
		v.PushBack(7)

		for _, index := range []int{-1, 1, 99} {
			if got := v.At(index); got != 0 {
				t.Errorf("At(%d) = %d, want zero value", index, got)
			}
		}
		if v.Len() != 1 {
			t.Error("out-of-range At must not mutate the vector")
		}
	})

	t.Run("At returns nil for pointer element types", func(t *testing.T) {
		v := NewVector[*int](2)
		n := 5
		v.PushBack(&n)

		if v.At(3) != nil {
			t.Error("expected nil for out-of-range index")
		}
		if v.At(0) == nil || *v.At(0) != 5 {
			t.Error("expected stored pointer at index 0")
		}
	})

	t.Run("Get reports range explicitly", func(t *testing.T) {
		v := NewVector[string](2)
		v.PushBack("a")

		if got, ok := v.Get(0); !ok || got != "a" {
			t.Errorf("Get(0) = (%q, %v)", got, ok)
		}
		if _, ok := v.Get(1); ok {
			t.Error("Get(1) should report out of range")
		}
		if _, ok := v.Get(-1); ok {
			t.Error("Get(-1) should report out of range")
		}
	})

	t.Run("Set replaces in range only", func(t *testing.T) {
		v := NewVector[int](2)
		v.PushBack(1)

		if !v.Set(0, 9) || v.At(0) != 9 {
			t.Error("Set(0) should replace the stored value")
		}
		if v.Set(1, 9) || v.Set(-1, 9) {
			t.Error("Set out of range should fail")
		}
	})

	t.Run("RemoveAt", func(t *testing.T) {
		t.Run("fails on empty vector", func(t *testing.T) {
			v := NewVector[int](2)
			if v.RemoveAt(0) {
				t.Error("RemoveAt on empty vector should fail")
			}
			if v.Len() != 0 {
				t.Error("failed removal must not change size")
			}
		})

		t.Run("fails out of range without mutating", func(t *testing.T) {
			v := NewVector[int](2)
			v.PushBack(1)
			v.PushBack(2)

			for _, index := range []int{-1, 2, 99} {
				if v.RemoveAt(index) {
					t.Errorf("RemoveAt(%d) should fail", index)
				}
			}
			if v.Len() != 2 || v.At(0) != 1 || v.At(1) != 2 {
				t.Error("failed removal must leave the vector unchanged")
			}
		})

		t.Run("preserves order of remaining elements", func(t *testing.T) {
			v := NewVector[int](4)
			for _, n := range []int{10, 20, 30, 40} {
				v.PushBack(n)
			}

			if !v.RemoveAt(1) {
				t.Fatal("RemoveAt(1) failed")
			}

			want := []int{10, 30, 40}
			if v.Len() != len(want) {
				t.Fatalf("Len() = %d, want %d", v.Len(), len(want))
			}
			for i, n := range want {
				if v.At(i) != n {
					t.Errorf("At(%d) = %d, want %d", i, v.At(i), n)
				}
			}
		})

		t.Run("shrinks by halving at quarter occupancy", func(t *testing.T) {
			v := NewVector[int](2)
			for i := 0; i < 8; i++ {
				v.PushBack(i)
			}
			if v.Cap() != 8 {
				t.Fatalf("Cap() = %d, want 8", v.Cap())
			}

			for v.Len() > 2 {
				v.RemoveAt(v.Len() - 1)
			}
			if v.Cap() != 4 {
				t.Errorf("after shrinking to size 2, Cap() = %d, want 4", v.Cap())
			}

			v.RemoveAt(0)
			if v.Cap() != 2 {
				t.Errorf("after shrinking to size 1, Cap() = %d, want 2", v.Cap())
			}

			// Capacity never drops below the minimum, even once empty.
			v.RemoveAt(0)
			if v.Cap() != MinCapacity {
				t.Errorf("Cap() = %d, want %d", v.Cap(), MinCapacity)
			}
		})

		t.Run("zeroes the vacated slot for pointer types", func(t *testing.T) {
			v := NewVector[*int](2)
			a, b := 1, 2
			v.PushBack(&a)
			v.PushBack(&b)

			v.RemoveAt(0)
			if v.Len() != 1 || v.At(0) != &b {
				t.Fatal("unexpected state after removal")
			}
			// The slot beyond the logical end must not retain the old pointer.
			if got, ok := v.Get(1); ok || got != nil {
				t.Error("expected vacated slot to be unreachable and zeroed")
			}
		})
	})

	t.Run("Clear empties the vector", func(t *testing.T) {
		v := NewVector[string](2)
		v.PushBack("a")
		v.PushBack("b")

		v.Clear()
		if v.Len() != 0 {
			t.Errorf("Len() = %d after Clear", v.Len())
		}
		if v.At(0) != "" {
			t.Error("cleared vector should return zero values")
		}
	})
}
