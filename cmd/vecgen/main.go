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

// vecgen generates the concrete-type alias file for the vec package.
//
// It loads the target package, expands the Element constraint's union into
// its concrete member types, and emits one alias set per vector dimension
// (Vec2*, Vec3*, Vec4*). Run via go generate:
//
//	//go:generate go run ../cmd/vecgen -pkg . -output z_aliases.go
//
// Regenerating after editing the Element union keeps the alias surface in
// lockstep with the constraint; the aliases themselves are plain Go type
// aliases and add no runtime cost.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/tools/go/packages"
)

func main() {
	pkgPattern := flag.String("pkg", ".", "package pattern to load (the vec package)")
	output := flag.String("output", "z_aliases.go", "output file path, relative to the loaded package directory")
	constraint := flag.String("constraint", "Element", "name of the interface constraint to expand")
	flag.Parse()

	if err := run(*pkgPattern, *output, *constraint); err != nil {
		fmt.Fprintf(os.Stderr, "vecgen: %v\n", err)
		os.Exit(1)
	}
}

func run(pattern, output, constraint string) error {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax,
	}
	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return fmt.Errorf("loading %q: %w", pattern, err)
	}
	if len(pkgs) != 1 {
		return fmt.Errorf("pattern %q matched %d packages, want 1", pattern, len(pkgs))
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return fmt.Errorf("loading %q: %v", pattern, pkg.Errors[0])
	}

	unions := parseUnions(pkg.Syntax)
	elems, err := expandConstraint(constraint, unions)
	if err != nil {
		return err
	}

	src, err := renderAliases(pkg.Name, elems)
	if err != nil {
		return err
	}

	if err := os.WriteFile(output, src, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	fmt.Printf("vecgen: wrote %s (%d element types)\n", output, len(elems))
	return nil
}
