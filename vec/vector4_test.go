// Copyright 2025 go-cudavec Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vec

import (
	"errors"
	"testing"
)

// The upstream C++ header this package descends from assigned the second
// constructor argument to both Y and Z, dropping the third argument. New4
// stores all four arguments positionally; this test pins the corrected
// behavior.
func TestNew4StoresArgumentsInOrder(t *testing.T) {
	v := New4(1, 2, 3, 4)
	if v.X != 1 || v.Y != 2 || v.Z != 3 || v.W != 4 {
		t.Errorf("New4(1,2,3,4) = (%d,%d,%d,%d), want (1,2,3,4)", v.X, v.Y, v.Z, v.W)
	}
}

func TestVector4ZeroValue(t *testing.T) {
	var v Vector4[float64]
	if v.X != 0 || v.Y != 0 || v.Z != 0 || v.W != 0 {
		t.Errorf("zero Vector4 = %v, want all components zero", v)
	}
}

func TestVector4Set2(t *testing.T) {
	v := New4[int32](9, 9, 9, 9)
	got := v.Set2(New2[int32](1, 2))
	if got != &v {
		t.Error("Set2 did not return the receiver")
	}
	if want := New4[int32](1, 2, 0, 0); v != want {
		t.Errorf("after Set2: %v, want %v", v, want)
	}
}

func TestVector4Set3(t *testing.T) {
	v := New4[int32](9, 9, 9, 9)
	got := v.Set3(New3[int32](1, 2, 3))
	if got != &v {
		t.Error("Set3 did not return the receiver")
	}
	if want := New4[int32](1, 2, 3, 0); v != want {
		t.Errorf("after Set3: %v, want %v", v, want)
	}
}

func TestVector4Set4(t *testing.T) {
	v := New4[int32](9, 9, 9, 9)
	v.Set4(New4[int32](1, 2, 3, 4))
	if want := New4[int32](1, 2, 3, 4); v != want {
		t.Errorf("after Set4: %v, want %v", v, want)
	}
}

func TestVector4SetChaining(t *testing.T) {
	var v Vector4[int]
	v.Set4(New4(9, 9, 9, 9)).Set3(New3(7, 7, 7)).Set2(New2(1, 2))
	if want := New4(1, 2, 0, 0); v != want {
		t.Errorf("chained sets: %v, want %v", v, want)
	}
}

func TestVector4Widening(t *testing.T) {
	v2 := New2[uint16](1, 2)
	if got, want := v2.Vec4(), New4[uint16](1, 2, 0, 0); got != want {
		t.Errorf("Vector2.Vec4() = %v, want %v", got, want)
	}

	v3 := New3[uint16](1, 2, 3)
	if got, want := v3.Vec4(), New4[uint16](1, 2, 3, 0); got != want {
		t.Errorf("Vector3.Vec4() = %v, want %v", got, want)
	}
}

func TestVector4Narrowing(t *testing.T) {
	v := New4[float32](1.5, 2.5, 3.5, 4.5)
	if got, want := v.XYZ(), New3[float32](1.5, 2.5, 3.5); got != want {
		t.Errorf("XYZ() = %v, want %v", got, want)
	}
	if got, want := v.XY(), New2[float32](1.5, 2.5); got != want {
		t.Errorf("XY() = %v, want %v", got, want)
	}
}

func TestVector4At(t *testing.T) {
	v := New4(10, 20, 30, 40)
	want := []int{10, 20, 30, 40}
	for i := 0; i < 4; i++ {
		got, err := v.At(i)
		if err != nil {
			t.Fatalf("At(%d): unexpected error %v", i, err)
		}
		if got != want[i] {
			t.Errorf("At(%d) = %d, want %d", i, got, want[i])
		}
	}
}

func TestVector4AtOutOfRange(t *testing.T) {
	v := New4(1, 2, 3, 4)
	for _, i := range []int{-1, 4, 100} {
		if _, err := v.At(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("At(%d) error = %v, want ErrIndexOutOfRange", i, err)
		}
		if _, err := v.Ptr(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Ptr(%d) error = %v, want ErrIndexOutOfRange", i, err)
		}
		if err := v.SetAt(i, 0); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("SetAt(%d) error = %v, want ErrIndexOutOfRange", i, err)
		}
	}
}

func TestVector4PtrMutates(t *testing.T) {
	v := New4(1, 2, 3, 4)
	for i := 0; i < 4; i++ {
		p, err := v.Ptr(i)
		if err != nil {
			t.Fatalf("Ptr(%d): unexpected error %v", i, err)
		}
		*p = (i + 1) * 100
	}
	if want := New4(100, 200, 300, 400); v != want {
		t.Errorf("after Ptr mutation: %v, want %v", v, want)
	}
}

func TestVector4SetAt(t *testing.T) {
	var v Vector4[float64]
	for i, val := range []float64{1.5, 2.5, 3.5, 4.5} {
		if err := v.SetAt(i, val); err != nil {
			t.Fatalf("SetAt(%d): unexpected error %v", i, err)
		}
	}
	if want := New4(1.5, 2.5, 3.5, 4.5); v != want {
		t.Errorf("after SetAt: %v, want %v", v, want)
	}
}

func TestVector4UncheckedAt(t *testing.T) {
	v := New4[int64](10, 20, 30, 40)
	want := []int64{10, 20, 30, 40}
	for i := 0; i < 4; i++ {
		if got := *v.UncheckedAt(i); got != want[i] {
			t.Errorf("*UncheckedAt(%d) = %d, want %d", i, got, want[i])
		}
	}

	*v.UncheckedAt(2) = 99
	if v.Z != 99 {
		t.Errorf("after *UncheckedAt(2) = 99: Z = %d, want 99", v.Z)
	}
}

// UncheckedAt and Ptr must address the same memory for every valid index.
func TestVector4UncheckedAtAgreesWithPtr(t *testing.T) {
	v := New4[uint8](1, 2, 3, 4)
	for i := 0; i < 4; i++ {
		p, err := v.Ptr(i)
		if err != nil {
			t.Fatalf("Ptr(%d): unexpected error %v", i, err)
		}
		if up := v.UncheckedAt(i); up != p {
			t.Errorf("UncheckedAt(%d) = %p, Ptr(%d) = %p", i, up, i, p)
		}
	}
}

func BenchmarkVector4String(b *testing.B) {
	v := New4[float32](1.5, 2.5, 3.5, 4.5)
	for i := 0; i < b.N; i++ {
		_ = v.String()
	}
}

func BenchmarkVector4UncheckedAt(b *testing.B) {
	v := New4[float32](1, 2, 3, 4)
	var sum float32
	for i := 0; i < b.N; i++ {
		sum += *v.UncheckedAt(i & 3)
	}
	_ = sum
}
