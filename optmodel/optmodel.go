// SPDX-License-Identifier: MIT
//
// File: optmodel.go
// Role: Variable categories, the opaque Variable handle, and the host-model
//       interfaces (required Model + optional capabilities).

package optmodel

import (
	"context"
	"errors"
	"strconv"
)

// Sentinel errors for host-model operations.
var (
	// ErrBadCategory indicates an unknown or unsupported variable category.
	ErrBadCategory = errors.New("optmodel: unknown variable category")

	// ErrUnknownVariable indicates a handle the model did not issue.
	ErrUnknownVariable = errors.New("optmodel: unknown variable handle")
)

// VarCategory is the domain of a decision variable requested from the host.
type VarCategory uint8

const (
	// Continuous is a real-valued variable (the default).
	Continuous VarCategory = iota

	// Integer is an integer-valued variable.
	Integer

	// Binary is a {0,1} variable.
	Binary

	// SemiContinuous is zero or within a continuous interval.
	SemiContinuous

	// SemiInteger is zero or within an integer interval.
	SemiInteger

	// SemidefiniteElement is an entry of a semidefinite matrix block.
	SemidefiniteElement

	numCategories // sentinel for Valid; keep last
)

// varCategoryNames maps each category to its display name.
var varCategoryNames = [numCategories]string{
	Continuous:          "Continuous",
	Integer:             "Integer",
	Binary:              "Binary",
	SemiContinuous:      "SemiContinuous",
	SemiInteger:         "SemiInteger",
	SemidefiniteElement: "SemidefiniteElement",
}

// Valid reports whether c is a known category.
func (c VarCategory) Valid() bool { return c < numCategories }

// String returns the display name, or "VarCategory(n)" for unknown values.
func (c VarCategory) String() string {
	if c.Valid() {
		return varCategoryNames[c]
	}

	return "VarCategory(" + strconv.Itoa(int(c)) + ")"
}

// Variable is an opaque handle to a decision variable issued by a host
// model. Handles are dense per model: Index() is the creation position.
type Variable interface {
	// Index returns the variable's dense position within its model.
	Index() int
}

// Model is the required minimum a host backend implements: create one
// decision variable of the given category.
type Model interface {
	// AddVariable creates a single variable; implementations reject
	// categories they cannot represent (wrap or return ErrBadCategory).
	AddVariable(cat VarCategory) (Variable, error)
}

// BlockModel is the optional bulk-creation capability. A rows×cols block is
// requested in one call; result[r][c] is the variable at (row r, col c).
type BlockModel interface {
	AddVariableBlock(rows, cols int, cat VarCategory) ([][]Variable, error)
}

// Namer is the optional variable-naming capability. Names are diagnostic
// only; callers must tolerate both absence of the capability and errors.
type Namer interface {
	SetVariableName(v Variable, name string) error
}

// Solver is the optional solve capability, invoked by callers once a
// formulation is built. The formulation core never calls it.
type Solver interface {
	Solve(ctx context.Context) error
}
