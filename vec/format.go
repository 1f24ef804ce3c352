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

import "strconv"

// appendElement appends the text form of a single component to dst and
// returns the extended buffer. The form is chosen by the concrete element
// type: signed integers as base-10, unsigned integers as unsigned base-10,
// floats as the shortest decimal that round-trips at their precision.
//
// The switch is total over the Element union. The default arm exists only
// to satisfy the compiler; it cannot be reached from exported API.
func appendElement[T Element](dst []byte, v T) []byte {
	switch x := any(v).(type) {
	case int8:
		return strconv.AppendInt(dst, int64(x), 10)
	case int16:
		return strconv.AppendInt(dst, int64(x), 10)
	case int32:
		return strconv.AppendInt(dst, int64(x), 10)
	case int64:
		return strconv.AppendInt(dst, x, 10)
	case int:
		return strconv.AppendInt(dst, int64(x), 10)
	case uint8:
		return strconv.AppendUint(dst, uint64(x), 10)
	case uint16:
		return strconv.AppendUint(dst, uint64(x), 10)
	case uint32:
		return strconv.AppendUint(dst, uint64(x), 10)
	case uint64:
		return strconv.AppendUint(dst, x, 10)
	case uint:
		return strconv.AppendUint(dst, uint64(x), 10)
	case float32:
		return strconv.AppendFloat(dst, float64(x), 'f', -1, 32)
	case float64:
		return strconv.AppendFloat(dst, x, 'f', -1, 64)
	default:
		panic("vec: element type outside the Element union")
	}
}

// appendVector renders "name(c0,c1,...,cn)" into a fresh buffer.
func appendVector[T Element](name string, components ...T) string {
	buf := make([]byte, 0, len(name)+2+16*len(components))
	buf = append(buf, name...)
	buf = append(buf, '(')
	for i, c := range components {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = appendElement(buf, c)
	}
	buf = append(buf, ')')
	return string(buf)
}
