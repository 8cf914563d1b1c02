package tween

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// nodeIDCounter is a plain counter (no atomic; scenes are single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is a minimal scene graph element that tween targets write into. It
// carries the properties the built-in targets animate and an activity flag
// that drives the lifecycle of attached Components.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local)
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
	PivotX   float64
	PivotY   float64

	// Appearance
	Alpha float64
	Color Color
	// Image is drawn by DrawTree with the node's world transform. Nil nodes
	// are not drawn.
	Image *ebiten.Image

	// Metadata
	UserData any

	active     bool
	disposed   bool
	components []*Component
}

// NewNode creates an active node with unit scale, full alpha and a white
// tint.
func NewNode(name string) *Node {
	return &Node{
		ID:     nextNodeID(),
		Name:   name,
		ScaleX: 1,
		ScaleY: 1,
		Alpha:  1,
		Color:  ColorWhite,
		active: true,
	}
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Components under child are activated or deactivated when the move changes
// child's effective activity.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("tween: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("tween: adding child would create a cycle")
	}
	was := child.ActiveInHierarchy()
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	if now := child.ActiveInHierarchy(); now != was {
		propagateActive(child, now)
	}
}

// RemoveChild detaches child from this node. A child leaving an inactive
// parent becomes active if its own flag is set.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("tween: child's parent is not this node")
	}
	was := child.ActiveInHierarchy()
	n.removeChildByPtr(child)
	child.Parent = nil
	if now := child.ActiveInHierarchy(); now != was {
		propagateActive(child, now)
	}
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// --- Activity ---

// Active reports the node's own activity flag.
func (n *Node) Active() bool {
	return n.active
}

// ActiveInHierarchy reports whether this node and all its ancestors are
// active.
func (n *Node) ActiveInHierarchy() bool {
	for p := n; p != nil; p = p.Parent {
		if !p.active {
			return false
		}
	}
	return true
}

// SetActive changes the node's activity flag. Components on this node and on
// descendants whose effective activity changes are activated or deactivated.
func (n *Node) SetActive(active bool) {
	if n.active == active {
		return
	}
	was := n.ActiveInHierarchy()
	n.active = active
	if now := n.ActiveInHierarchy(); now != was {
		propagateActive(n, now)
	}
}

// propagateActive notifies the components of n and of every descendant that
// is not held inactive by its own flag.
func propagateActive(n *Node, active bool) {
	for _, c := range n.components {
		if active {
			c.activate()
		} else {
			c.deactivate()
		}
	}
	for _, child := range n.children {
		if child.active {
			propagateActive(child, active)
		}
	}
}

// Components returns the components attached to this node. The returned
// slice MUST NOT be mutated.
func (n *Node) Components() []*Component {
	return n.components
}

// --- Disposal ---

// Dispose removes this node from its parent, stops its components, marks it
// as disposed, and recursively disposes all descendants. Targets never write
// to a disposed node.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	if n.Parent != nil {
		n.Parent.removeChildByPtr(n)
	}
	n.dispose()
}

func (n *Node) dispose() {
	for _, c := range n.components {
		c.deactivate()
	}
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.components = nil
	n.Parent = nil
	n.Image = nil
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
