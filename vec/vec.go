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
	"fmt"
)

// Signed is the closed set of builtin signed integer element types.
type Signed interface {
	int8 | int16 | int32 | int64 | int
}

// Unsigned is the closed set of builtin unsigned integer element types.
type Unsigned interface {
	uint8 | uint16 | uint32 | uint64 | uint
}

// Floats is the closed set of builtin floating-point element types.
type Floats interface {
	float32 | float64
}

// Element constrains the component type of Vector2, Vector3, and Vector4.
// The union is exact (no ~ terms) so that dispatch on the concrete type
// covers every member; a type outside the union does not compile.
type Element interface {
	Signed | Unsigned | Floats
}

// ErrIndexOutOfRange is reported by the checked accessors (At, Ptr, SetAt)
// when the component index is outside the vector's dimension.
var ErrIndexOutOfRange = errors.New("vec: index out of range")

func indexError(i, dim int) error {
	return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, dim)
}
