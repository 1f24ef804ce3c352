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

import "testing"

// The generated names are aliases, not defined types: a value built
// through an alias is interchangeable with one built through the generic
// name.
func TestAliasesAreInterchangeable(t *testing.T) {
	a := Vec4Float32{X: 1.5, Y: 2.5, Z: 3.5, W: 4.5}
	b := New4[float32](1.5, 2.5, 3.5, 4.5)
	if a != b {
		t.Errorf("alias value %v != generic value %v", a, b)
	}

	var v2 Vec2Int = New2(1, 2)
	var v3 Vec3Uint64 = New3[uint64](1, 2, 3)
	if v2.String() != "Vector2(1,2)" || v3.String() != "Vector3(1,2,3)" {
		t.Errorf("alias String() mismatch: %q, %q", v2.String(), v3.String())
	}
}
