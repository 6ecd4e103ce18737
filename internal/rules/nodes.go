package rules

// NodeStack identifies the node a position is currently at. Backends stamp
// every generated move with the current node so Apply can reject tokens that
// were produced elsewhere in the tree.
type NodeStack struct {
	ids  []uint64
	next uint64
}

func NewNodeStack() *NodeStack {
	s := &NodeStack{}
	s.Push()
	return s
}

func (s *NodeStack) Push() {
	s.next++
	s.ids = append(s.ids, s.next)
}

// Pop returns false when only the root node is left.
func (s *NodeStack) Pop() bool {
	if len(s.ids) <= 1 {
		return false
	}
	s.ids = s.ids[:len(s.ids)-1]
	return true
}

func (s *NodeStack) Current() uint64 {
	return s.ids[len(s.ids)-1]
}

// Depth is the number of applied, not yet undone, moves.
func (s *NodeStack) Depth() int {
	return len(s.ids) - 1
}
