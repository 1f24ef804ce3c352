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

// Vector3 holds three components of element type T, in declared order
// X, Y, Z. The zero value has all components zero and is ready to use.
type Vector3[T Element] struct {
	X, Y, Z T
}

// New3 returns a Vector3 with the three components assigned positionally.
func New3[T Element](x, y, z T) Vector3[T] {
	return Vector3[T]{X: x, Y: y, Z: z}
}

// Set2 overwrites X and Y from rhs and zeroes Z.
// It returns the receiver for chaining.
func (v *Vector3[T]) Set2(rhs Vector2[T]) *Vector3[T] {
	var zero T
	v.X, v.Y = rhs.X, rhs.Y
	v.Z = zero
	return v
}

// Set3 overwrites all three components from rhs.
// It returns the receiver for chaining. For a source with a different
// element type, use Assign3.
func (v *Vector3[T]) Set3(rhs Vector3[T]) *Vector3[T] {
	*v = rhs
	return v
}

// XY returns the first two components as a Vector2.
func (v Vector3[T]) XY() Vector2[T] {
	return Vector2[T]{X: v.X, Y: v.Y}
}

// Vec4 widens v to a Vector4 with W set to zero.
func (v Vector3[T]) Vec4() Vector4[T] {
	return Vector4[T]{X: v.X, Y: v.Y, Z: v.Z}
}

// At returns the component at position i (0 is X, 2 is Z).
// It reports ErrIndexOutOfRange when i is outside [0,3).
func (v *Vector3[T]) At(i int) (T, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	case 2:
		return v.Z, nil
	default:
		var zero T
		return zero, indexError(i, 3)
	}
}

// Ptr returns a pointer to the component at position i, allowing in-place
// mutation. It reports ErrIndexOutOfRange when i is outside [0,3).
func (v *Vector3[T]) Ptr(i int) (*T, error) {
	switch i {
	case 0:
		return &v.X, nil
	case 1:
		return &v.Y, nil
	case 2:
		return &v.Z, nil
	default:
		return nil, indexError(i, 3)
	}
}

// SetAt stores val at position i.
// It reports ErrIndexOutOfRange when i is outside [0,3).
func (v *Vector3[T]) SetAt(i int, val T) error {
	p, err := v.Ptr(i)
	if err != nil {
		return err
	}
	*p = val
	return nil
}

// String renders the vector as "Vector3(x,y,z)".
func (v Vector3[T]) String() string {
	return appendVector("Vector3", v.X, v.Y, v.Z)
}
