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

import "unsafe"

// The UncheckedAt accessors compute a pointer offset from the first field,
// the moral equivalent of C's *(&x + i). They exist for hot loops that
// have already validated their index and cannot afford the branch in Ptr.
//
// Two hazards, both the caller's to manage:
//   - An index outside the vector's dimension dereferences memory beyond
//     the struct. The result is undefined, not a panic.
//   - The offset assumes components sit contiguously in declared order.
//     The gc compiler lays structs out that way, but the language spec
//     does not promise it.
//
// Prefer Ptr unless a profile says otherwise.

// UncheckedAt returns a pointer to component i of v without bounds
// checking. i must be in [0,2).
func (v *Vector2[T]) UncheckedAt(i int) *T {
	return (*T)(unsafe.Add(unsafe.Pointer(&v.X), uintptr(i)*unsafe.Sizeof(v.X)))
}

// UncheckedAt returns a pointer to component i of v without bounds
// checking. i must be in [0,3).
func (v *Vector3[T]) UncheckedAt(i int) *T {
	return (*T)(unsafe.Add(unsafe.Pointer(&v.X), uintptr(i)*unsafe.Sizeof(v.X)))
}

// UncheckedAt returns a pointer to component i of v without bounds
// checking. i must be in [0,4).
func (v *Vector4[T]) UncheckedAt(i int) *T {
	return (*T)(unsafe.Add(unsafe.Pointer(&v.X), uintptr(i)*unsafe.Sizeof(v.X)))
}
