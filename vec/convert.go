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

// Cross-element-type conversion is a separate call path from same-type
// copying. Methods cannot introduce type parameters, and that restriction
// is put to work here: a change of element type is always an explicit
// Convert*/Assign* call, so narrowing (float64 to int32, int to uint8)
// never hides inside an assignment. Each component is converted with Go's
// ordinary numeric conversion rules; when U == T the conversion is the
// identity.

// Convert2 converts each component of v from element type U to T.
func Convert2[T, U Element](v Vector2[U]) Vector2[T] {
	return Vector2[T]{X: T(v.X), Y: T(v.Y)}
}

// Convert3 converts each component of v from element type U to T.
func Convert3[T, U Element](v Vector3[U]) Vector3[T] {
	return Vector3[T]{X: T(v.X), Y: T(v.Y), Z: T(v.Z)}
}

// Convert4 converts each component of v from element type U to T.
func Convert4[T, U Element](v Vector4[U]) Vector4[T] {
	return Vector4[T]{X: T(v.X), Y: T(v.Y), Z: T(v.Z), W: T(v.W)}
}

// Assign2 stores the converted components of src into dst and returns dst
// for chaining.
func Assign2[T, U Element](dst *Vector2[T], src Vector2[U]) *Vector2[T] {
	dst.X, dst.Y = T(src.X), T(src.Y)
	return dst
}

// Assign3 stores the converted components of src into dst and returns dst
// for chaining.
func Assign3[T, U Element](dst *Vector3[T], src Vector3[U]) *Vector3[T] {
	dst.X, dst.Y, dst.Z = T(src.X), T(src.Y), T(src.Z)
	return dst
}

// Assign4 stores the converted components of src into dst and returns dst
// for chaining.
func Assign4[T, U Element](dst *Vector4[T], src Vector4[U]) *Vector4[T] {
	dst.X, dst.Y, dst.Z, dst.W = T(src.X), T(src.Y), T(src.Z), T(src.W)
	return dst
}
