// SPDX-License-Identifier: MIT
// Package: flowform/flowmodel
//
// kind.go — the formulation Kind sum type and its capability flags.

package flowmodel

import "strconv"

// Kind discriminates among known flow formulations. It is a closed tagged
// enum dispatched through the builder table in dispatch.go; adding a
// variant means adding a constant here, a builder, and one table entry.
type Kind uint8

const (
	// EdgeFlow models every edge explicitly: one decision variable per
	// (edge, commodity) pair. The default Kind.
	EdgeFlow Kind = iota

	// Path models only a subset of paths, intended for incremental
	// (column-generation) use. The path-registration algorithm is
	// reserved; see AddPath.
	Path
)

// kindNames maps each Kind to its display name.
var kindNames = map[Kind]string{
	EdgeFlow: "EdgeFlow",
	Path:     "Path",
}

// String returns the display name, or "Kind(n)" for unknown values.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// SupportsPath reports the path capability: whether path-specific
// operations (AddPath) are meaningful for this Kind. False for EdgeFlow,
// true for Path; future kinds opt in here.
func (k Kind) SupportsPath() bool { return k == Path }

// Known reports whether a builder is registered for this Kind.
func (k Kind) Known() bool {
	_, ok := formulationBuilders[k]

	return ok
}
