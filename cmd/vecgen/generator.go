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

package main

import (
	"fmt"
	"go/ast"
	"go/format"
	"go/token"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// parseUnions collects every interface type declaration in the package's
// syntax trees, keyed by name. Only the declarations are gathered here;
// union expansion happens in expandConstraint.
func parseUnions(files []*ast.File) map[string]*ast.InterfaceType {
	unions := make(map[string]*ast.InterfaceType)
	for _, file := range files {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}
			for _, spec := range gd.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				if it, ok := ts.Type.(*ast.InterfaceType); ok {
					unions[ts.Name.Name] = it
				}
			}
		}
	}
	return unions
}

// expandConstraint resolves the named interface constraint to the ordered
// list of concrete type names in its union. Embedded constraints (e.g.
// Element embedding Signed | Unsigned | Floats) are expanded recursively;
// any other identifier is taken as a concrete type.
func expandConstraint(name string, unions map[string]*ast.InterfaceType) ([]string, error) {
	it, ok := unions[name]
	if !ok {
		return nil, fmt.Errorf("constraint %q not found", name)
	}
	var elems []string
	for _, field := range it.Methods.List {
		if len(field.Names) > 0 {
			return nil, fmt.Errorf("constraint %q has method %s; want a pure type union", name, field.Names[0])
		}
		terms, err := expandTerm(field.Type, unions)
		if err != nil {
			return nil, fmt.Errorf("constraint %q: %w", name, err)
		}
		elems = append(elems, terms...)
	}
	if len(elems) == 0 {
		return nil, fmt.Errorf("constraint %q has an empty type set", name)
	}
	return elems, nil
}

// expandTerm walks one union expression. Go parses "a | b | c" as a
// left-associated BinaryExpr tree, so in-order traversal preserves the
// declared order of the terms.
func expandTerm(expr ast.Expr, unions map[string]*ast.InterfaceType) ([]string, error) {
	switch e := expr.(type) {
	case *ast.BinaryExpr:
		if e.Op != token.OR {
			return nil, fmt.Errorf("unexpected operator %s in type union", e.Op)
		}
		left, err := expandTerm(e.X, unions)
		if err != nil {
			return nil, err
		}
		right, err := expandTerm(e.Y, unions)
		if err != nil {
			return nil, err
		}
		return append(left, right...), nil
	case *ast.Ident:
		if _, ok := unions[e.Name]; ok {
			return expandConstraint(e.Name, unions)
		}
		return []string{e.Name}, nil
	case *ast.UnaryExpr:
		if e.Op == token.TILDE {
			return nil, fmt.Errorf("approximate term ~%s not supported; the element set must be exact", exprString(e.X))
		}
		return nil, fmt.Errorf("unexpected unary operator %s in type union", e.Op)
	default:
		return nil, fmt.Errorf("unsupported union term %T", expr)
	}
}

func exprString(expr ast.Expr) string {
	if id, ok := expr.(*ast.Ident); ok {
		return id.Name
	}
	return fmt.Sprintf("%T", expr)
}

// typeSuffix converts a concrete element type name to an exported alias
// suffix: "float32" -> "Float32", "uint8" -> "Uint8". Qualified names keep
// only the final component.
func typeSuffix(elemType string) string {
	if idx := strings.LastIndex(elemType, "."); idx >= 0 {
		elemType = elemType[idx+1:]
	}
	return cases.Title(language.English, cases.NoLower).String(elemType)
}

const generatedHeader = `// Code generated by vecgen. DO NOT EDIT.

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

`

// renderAliases emits the alias file source: one alias block per vector
// dimension, one alias per element type, gofmt-formatted.
func renderAliases(pkgName string, elems []string) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(generatedHeader)
	fmt.Fprintf(&sb, "package %s\n\n", pkgName)
	sb.WriteString("// Concrete-type aliases for every member of the Element union, one set per\n")
	fmt.Fprintf(&sb, "// vector dimension. Regenerate with: go generate ./%s\n\n", pkgName)
	for _, dim := range []int{2, 3, 4} {
		sb.WriteString("type (\n")
		for _, elem := range elems {
			fmt.Fprintf(&sb, "\tVec%d%s = Vector%d[%s]\n", dim, typeSuffix(elem), dim, elem)
		}
		sb.WriteString(")\n\n")
	}
	src, err := format.Source([]byte(sb.String()))
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return src, nil
}
