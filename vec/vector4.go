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

// Vector4 holds four components of element type T, in declared order
// X, Y, Z, W. It is a plain value: copy it, pass it, compare it with ==.
// The zero value has all components zero and is ready to use.
//
// Components are also addressable by position (0 through 3) via At, Ptr,
// SetAt, and UncheckedAt.
type Vector4[T Element] struct {
	X, Y, Z, W T
}

// New4 returns a Vector4 with the four components assigned positionally.
func New4[T Element](x, y, z, w T) Vector4[T] {
	return Vector4[T]{X: x, Y: y, Z: z, W: w}
}

// Set2 overwrites X and Y from rhs and zeroes Z and W.
// It returns the receiver for chaining.
func (v *Vector4[T]) Set2(rhs Vector2[T]) *Vector4[T] {
	var zero T
	v.X, v.Y = rhs.X, rhs.Y
	v.Z, v.W = zero, zero
	return v
}

// Set3 overwrites X, Y, and Z from rhs and zeroes W.
// It returns the receiver for chaining.
func (v *Vector4[T]) Set3(rhs Vector3[T]) *Vector4[T] {
	var zero T
	v.X, v.Y, v.Z = rhs.X, rhs.Y, rhs.Z
	v.W = zero
	return v
}

// Set4 overwrites all four components from rhs.
// It returns the receiver for chaining. For a source with a different
// element type, use Assign4.
func (v *Vector4[T]) Set4(rhs Vector4[T]) *Vector4[T] {
	*v = rhs
	return v
}

// XY returns the first two components as a Vector2.
func (v Vector4[T]) XY() Vector2[T] {
	return Vector2[T]{X: v.X, Y: v.Y}
}

// XYZ returns the first three components as a Vector3.
func (v Vector4[T]) XYZ() Vector3[T] {
	return Vector3[T]{X: v.X, Y: v.Y, Z: v.Z}
}

// At returns the component at position i (0 is X, 3 is W).
// It reports ErrIndexOutOfRange when i is outside [0,4).
func (v *Vector4[T]) At(i int) (T, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	case 2:
		return v.Z, nil
	case 3:
		return v.W, nil
	default:
		var zero T
		return zero, indexError(i, 4)
	}
}

// Ptr returns a pointer to the component at position i, allowing in-place
// mutation. It reports ErrIndexOutOfRange when i is outside [0,4).
func (v *Vector4[T]) Ptr(i int) (*T, error) {
	switch i {
	case 0:
		return &v.X, nil
	case 1:
		return &v.Y, nil
	case 2:
		return &v.Z, nil
	case 3:
		return &v.W, nil
	default:
		return nil, indexError(i, 4)
	}
}

// SetAt stores val at position i.
// It reports ErrIndexOutOfRange when i is outside [0,4).
func (v *Vector4[T]) SetAt(i int, val T) error {
	p, err := v.Ptr(i)
	if err != nil {
		return err
	}
	*p = val
	return nil
}

// String renders the vector as "Vector4(x,y,z,w)" with each component in
// the text form of its element type.
func (v Vector4[T]) String() string {
	return appendVector("Vector4", v.X, v.Y, v.Z, v.W)
}
