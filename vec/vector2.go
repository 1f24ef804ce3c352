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

// Vector2 holds two components of element type T, in declared order X, Y.
// The zero value has both components zero and is ready to use.
type Vector2[T Element] struct {
	X, Y T
}

// New2 returns a Vector2 with the two components assigned positionally.
func New2[T Element](x, y T) Vector2[T] {
	return Vector2[T]{X: x, Y: y}
}

// Set2 overwrites both components from rhs.
// It returns the receiver for chaining. For a source with a different
// element type, use Assign2.
func (v *Vector2[T]) Set2(rhs Vector2[T]) *Vector2[T] {
	*v = rhs
	return v
}

// Vec3 widens v to a Vector3 with Z set to zero.
func (v Vector2[T]) Vec3() Vector3[T] {
	return Vector3[T]{X: v.X, Y: v.Y}
}

// Vec4 widens v to a Vector4 with Z and W set to zero.
func (v Vector2[T]) Vec4() Vector4[T] {
	return Vector4[T]{X: v.X, Y: v.Y}
}

// At returns the component at position i (0 is X, 1 is Y).
// It reports ErrIndexOutOfRange when i is outside [0,2).
func (v *Vector2[T]) At(i int) (T, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	default:
		var zero T
		return zero, indexError(i, 2)
	}
}

// Ptr returns a pointer to the component at position i, allowing in-place
// mutation. It reports ErrIndexOutOfRange when i is outside [0,2).
func (v *Vector2[T]) Ptr(i int) (*T, error) {
	switch i {
	case 0:
		return &v.X, nil
	case 1:
		return &v.Y, nil
	default:
		return nil, indexError(i, 2)
	}
}

// SetAt stores val at position i.
// It reports ErrIndexOutOfRange when i is outside [0,2).
func (v *Vector2[T]) SetAt(i int, val T) error {
	p, err := v.Ptr(i)
	if err != nil {
		return err
	}
	*p = val
	return nil
}

// String renders the vector as "Vector2(x,y)".
func (v Vector2[T]) String() string {
	return appendVector("Vector2", v.X, v.Y)
}
