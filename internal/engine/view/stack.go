package view

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl32/matstack"
)

// Stack is a model transform stack. Push saves the current transform and Pop
// restores it, so state changed between them never leaks to later draws.
type Stack struct {
	ms *matstack.MatStack
}

// NewStack returns a stack holding the identity transform.
func NewStack() *Stack {
	return &Stack{ms: matstack.NewMatStack()}
}

// Push duplicates the current transform.
func (s *Stack) Push() {
	s.ms.Push()
}

// Pop discards the current transform. Popping the last entry is an error.
func (s *Stack) Pop() error {
	if err := s.ms.Pop(); err != nil {
		return fmt.Errorf("view: %w", err)
	}
	return nil
}

// Depth returns the number of saved transforms plus one.
func (s *Stack) Depth() int {
	return len(*s.ms)
}

// Top returns the current transform.
func (s *Stack) Top() mgl32.Mat4 {
	return s.ms.Peek()
}

// Translate post-multiplies a translation.
func (s *Stack) Translate(x, y, z float32) {
	s.ms.RightMul(mgl32.Translate3D(x, y, z))
}

// RotateX post-multiplies a rotation about X, in degrees.
func (s *Stack) RotateX(deg float32) {
	s.ms.RightMul(mgl32.HomogRotate3DX(mgl32.DegToRad(deg)))
}

// Reset replaces the current transform with the identity.
func (s *Stack) Reset() {
	s.ms.LoadIdent()
}
