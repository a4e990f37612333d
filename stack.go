package bricklayer

import "github.com/aurelien-rainone/assertgo"

// poseStack is the candidate stack driving the depth-first search: a LIFO
// of PartialPose values, backed by a growable slice the way nodequeue.go
// backs dtNodeQueue with a preallocated heap array, except a stack needs no
// bubble/trickle reordering — push and pop are both O(1).
type poseStack struct {
	items []PartialPose
}

// newPoseStack returns an empty stack with room for capacity entries before
// its first grow.
func newPoseStack(capacity int32) *poseStack {
	assert.True(capacity >= 0, "poseStack capacity must be >= 0")
	return &poseStack{items: make([]PartialPose, 0, capacity)}
}

func (s *poseStack) push(pp PartialPose) {
	s.items = append(s.items, pp)
}

func (s *poseStack) pop() (PartialPose, bool) {
	if len(s.items) == 0 {
		return PartialPose{}, false
	}
	top := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return top, true
}

func (s *poseStack) empty() bool { return len(s.items) == 0 }

func (s *poseStack) len() int { return len(s.items) }
