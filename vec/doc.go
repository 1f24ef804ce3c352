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

// Package vec provides small fixed-size vector value types (2, 3, and 4
// components) generic over a sealed set of numeric element types. They are
// the scalar building blocks used by GPU-adjacent code: homogeneous
// coordinates, RGBA tuples, kernel launch extents, and similar 4-wide
// aggregates that travel by value.
//
// The package deliberately contains no arithmetic. Dot products, norms,
// and element-wise kernels belong to SIMD libraries; these types only
// store, convert, index, and print.
//
// # Element types
//
// The Element constraint is a closed union of Go's builtin signed,
// unsigned, and floating-point types. Per-type behavior (such as the text
// form chosen by String) is dispatched on the concrete type, so using an
// element type outside the union is a compile-time error rather than a
// runtime fallback.
//
// # Conversions
//
// Same-type copies are ordinary Go assignments. Conversions that change
// the element type are separate generic functions (Convert2, Convert3,
// Convert4, Assign2, Assign3, Assign4) so that narrowing stays visible at
// the call site:
//
//	wide := vec.New4[float64](1.5, 2.5, 3.5, 4.5)
//	narrow := vec.Convert4[int32](wide) // explicit truncation
//
// # Indexed access
//
// Components may be addressed by position: 0 is X, 1 is Y, 2 is Z, 3 is W.
// At, Ptr, and SetAt validate the index and report ErrIndexOutOfRange.
// UncheckedAt skips validation entirely; see its documentation for the
// hazard it carries.
package vec

//go:generate go run ../cmd/vecgen -pkg . -output z_aliases.go
