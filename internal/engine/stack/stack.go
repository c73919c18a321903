// Package stack provides the hierarchical model-view matrix stack used by
// the scene traversal.
package stack

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl32/matstack"

	"github.com/Faultbox/primscene/pkg/math"
)

// ErrStackUnderflow is returned by Pop when only the base matrix is left.
var ErrStackUnderflow = errors.New("matrix stack underflow")

// Stack is a model-view matrix stack. The top of the stack is the current
// model-view matrix; transforms post-multiply it, so the last transform
// applied is the first one the vertices see.
type Stack struct {
	ms *matstack.MatStack
}

// New creates a stack holding a single identity matrix.
func New() *Stack {
	return &Stack{ms: matstack.NewMatStack()}
}

// Load replaces the current matrix, typically with the view matrix at the
// start of a frame.
func (s *Stack) Load(m math.Mat4) {
	s.ms.Load(mgl32.Mat4(m))
}

// ModelView returns the current matrix.
func (s *Stack) ModelView() math.Mat4 {
	return math.Mat4(s.ms.Peek())
}

// Push duplicates the current matrix.
func (s *Stack) Push() {
	s.ms.Push()
}

// Pop discards the current matrix and restores the one saved by the
// matching Push.
func (s *Stack) Pop() error {
	if err := s.ms.Pop(); err != nil {
		return fmt.Errorf("%w: %v", ErrStackUnderflow, err)
	}
	return nil
}

// Depth returns the number of matrices on the stack (1 when balanced).
func (s *Stack) Depth() int {
	return len(*s.ms)
}

// Reset drops every pushed matrix and loads m as the base.
func (s *Stack) Reset(m math.Mat4) {
	*s.ms = (*s.ms)[:1]
	s.Load(m)
}

// Mult post-multiplies the current matrix by m.
func (s *Stack) Mult(m math.Mat4) {
	s.ms.RightMul(mgl32.Mat4(m))
}

// MultTranslation applies a translation.
func (s *Stack) MultTranslation(v math.Vec3) {
	s.Mult(math.Translate(v.X, v.Y, v.Z))
}

// MultScale applies a non-uniform scale.
func (s *Stack) MultScale(v math.Vec3) {
	s.Mult(math.Scale(v.X, v.Y, v.Z))
}
