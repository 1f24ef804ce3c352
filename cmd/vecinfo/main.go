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

// Package main provides a diagnostic tool that prints the in-memory shape
// of the vec value types alongside the host's vector-unit CPU features.
// Useful when checking that a Vector4 layout matches what a SIMD kernel or
// a GPU buffer on the other side of a copy expects.
package main

import (
	"fmt"
	"runtime"
	"unsafe"

	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-cudavec/vec"
)

func main() {
	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("NumCPU: %d\n", runtime.NumCPU())
	fmt.Println()

	printLayouts()
	fmt.Println()

	switch runtime.GOARCH {
	case "arm64":
		printARM64Features()
	case "amd64":
		printAMD64Features()
	default:
		fmt.Printf("no vector-unit feature report for %s\n", runtime.GOARCH)
	}
}

func printLayouts() {
	fmt.Println("=== vec type layouts ===")
	fmt.Printf("  Vector2[float32]: size %2d align %d\n",
		unsafe.Sizeof(vec.Vec2Float32{}), unsafe.Alignof(vec.Vec2Float32{}))
	fmt.Printf("  Vector3[float32]: size %2d align %d\n",
		unsafe.Sizeof(vec.Vec3Float32{}), unsafe.Alignof(vec.Vec3Float32{}))
	fmt.Printf("  Vector4[float32]: size %2d align %d\n",
		unsafe.Sizeof(vec.Vec4Float32{}), unsafe.Alignof(vec.Vec4Float32{}))
	fmt.Printf("  Vector4[float64]: size %2d align %d\n",
		unsafe.Sizeof(vec.Vec4Float64{}), unsafe.Alignof(vec.Vec4Float64{}))
	fmt.Printf("  Vector4[int32]:   size %2d align %d\n",
		unsafe.Sizeof(vec.Vec4Int32{}), unsafe.Alignof(vec.Vec4Int32{}))
	fmt.Printf("  Vector4[uint8]:   size %2d align %d\n",
		unsafe.Sizeof(vec.Vec4Uint8{}), unsafe.Alignof(vec.Vec4Uint8{}))
}

func printARM64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Printf("  HasASIMD:    %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
	fmt.Printf("  HasFP:       %v (Floating point)\n", cpu.ARM64.HasFP)
	fmt.Printf("  HasFPHP:     %v (FP16 scalar, ARMv8.2-A)\n", cpu.ARM64.HasFPHP)
	fmt.Printf("  HasASIMDHP:  %v (FP16 NEON, ARMv8.2-A)\n", cpu.ARM64.HasASIMDHP)
	fmt.Printf("  HasSVE:      %v (Scalable Vector Extension)\n", cpu.ARM64.HasSVE)
	fmt.Printf("  HasSVE2:     %v (SVE2)\n", cpu.ARM64.HasSVE2)
}

func printAMD64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.X86 ===")
	fmt.Printf("  HasSSE2:    %v\n", cpu.X86.HasSSE2)
	fmt.Printf("  HasSSE41:   %v\n", cpu.X86.HasSSE41)
	fmt.Printf("  HasSSE42:   %v\n", cpu.X86.HasSSE42)
	fmt.Printf("  HasAVX:     %v\n", cpu.X86.HasAVX)
	fmt.Printf("  HasAVX2:    %v\n", cpu.X86.HasAVX2)
	fmt.Printf("  HasAVX512F: %v\n", cpu.X86.HasAVX512F)
	fmt.Printf("  HasFMA:     %v\n", cpu.X86.HasFMA)
}
