// SPDX-License-Identifier: MIT
//
// File: recorder.go
// Role: In-memory reference backend implementing Model, BlockModel, Namer.
// Determinism:
//   - Handles are dense and monotonic: variable i is the i-th created.
// Concurrency:
//   - Not safe for concurrent use; one logical owner per Recorder.

package optmodel

import "fmt"

// recordedVar is the Recorder's dense handle.
type recordedVar struct{ idx int }

// Index returns the creation position of the variable.
func (v recordedVar) Index() int { return v.idx }

// Recorder is an in-memory host model that records every variable it
// issues: its category and, when set, its display name. It implements
// Model, BlockModel and Namer.
type Recorder struct {
	cats  []VarCategory  // cats[i] = category of variable i
	names map[int]string // sparse: only explicitly named variables
}

// Interface conformance, checked at compile time.
var (
	_ Model      = (*Recorder)(nil)
	_ BlockModel = (*Recorder)(nil)
	_ Namer      = (*Recorder)(nil)
)

// NewRecorder creates an empty Recorder.
// Complexity: O(1).
func NewRecorder() *Recorder {
	return &Recorder{names: make(map[int]string)}
}

// AddVariable issues the next dense handle with the given category.
// Returns ErrBadCategory (wrapped) for an unknown category.
// Complexity: O(1) amortized.
func (r *Recorder) AddVariable(cat VarCategory) (Variable, error) {
	if !cat.Valid() {
		return nil, fmt.Errorf("AddVariable: category %d: %w", cat, ErrBadCategory)
	}
	v := recordedVar{idx: len(r.cats)}
	r.cats = append(r.cats, cat)

	return v, nil
}

// AddVariableBlock issues a rows×cols block in one call; result[r][c] is
// the variable at (row r, col c). Handles stay dense in row-major order.
// Returns ErrBadCategory for an unknown category; a negative rows or cols
// is rejected as an error, while a zero dimension yields an empty block.
// Complexity: O(rows·cols).
func (r *Recorder) AddVariableBlock(rows, cols int, cat VarCategory) ([][]Variable, error) {
	if !cat.Valid() {
		return nil, fmt.Errorf("AddVariableBlock: category %d: %w", cat, ErrBadCategory)
	}
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("AddVariableBlock: negative shape %dx%d", rows, cols)
	}

	block := make([][]Variable, rows)
	for i := 0; i < rows; i++ {
		row := make([]Variable, cols)
		for j := 0; j < cols; j++ {
			v, err := r.AddVariable(cat)
			if err != nil {
				return nil, err
			}
			row[j] = v
		}
		block[i] = row
	}

	return block, nil
}

// SetVariableName records a display name for an issued handle.
// Returns ErrUnknownVariable for a handle this Recorder did not issue.
// Complexity: O(1).
func (r *Recorder) SetVariableName(v Variable, name string) error {
	if v == nil || v.Index() < 0 || v.Index() >= len(r.cats) {
		return ErrUnknownVariable
	}
	r.names[v.Index()] = name

	return nil
}

// Name returns the recorded display name for a handle, or "" if unnamed
// or unknown.
// Complexity: O(1).
func (r *Recorder) Name(v Variable) string {
	if v == nil {
		return ""
	}

	return r.names[v.Index()]
}

// Category returns the category of an issued handle.
// The second result is false for a handle this Recorder did not issue.
// Complexity: O(1).
func (r *Recorder) Category(v Variable) (VarCategory, bool) {
	if v == nil || v.Index() < 0 || v.Index() >= len(r.cats) {
		return 0, false
	}

	return r.cats[v.Index()], true
}

// NumVariables returns how many variables this Recorder has issued.
// Complexity: O(1).
func (r *Recorder) NumVariables() int { return len(r.cats) }
