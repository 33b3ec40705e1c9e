package omap

// The fixup walks below restore the red-black coloring rules after a
// structural change. The rules are:
//
//  1. every node is red or black,
//  2. the root is black,
//  3. a red node never has a red child,
//  4. every path from a node down to an absent-child position passes the
//     same number of black nodes.
//
// Insertion can only violate rule 3, removal only rule 4. Both walks move
// from the mutation site towards the root, selecting one of a small number
// of cases from the colors of the nearby nodes and the side the violation
// sits on. Left and right variants mirror each other.

// insertFixup repairs rule 3 after n has been attached as a red leaf.
// The loop runs while n and its parent are both red; each round either
// recolors and climbs two levels, or terminates with at most two rotations.
func (t *Tree[K, V]) insertFixup(n *node[K, V]) {
	for n.parent.isRed() {
		p := n.parent
		g := p.parent // a red parent is never the root, so g != nil
		if p == g.left {
			if u := g.right; u.isRed() {
				// red uncle: push the blackness down from the grandparent
				// and continue the walk there
				p.color = black
				u.color = black
				g.color = red
				n = g
				continue
			}
			if n == p.right {
				// inner grandchild: straighten the zig-zag first
				n = p
				t.rotateLeft(n)
				p = n.parent
			}
			p.color = black
			g.color = red
			t.rotateRight(g)
		} else {
			if u := g.left; u.isRed() {
				p.color = black
				u.color = black
				g.color = red
				n = g
				continue
			}
			if n == p.left {
				n = p
				t.rotateRight(n)
				p = n.parent
			}
			p.color = black
			g.color = red
			t.rotateLeft(g)
		}
	}
	t.root.color = black
}

// removeNode unlinks z from the tree. When z has two children, the payload
// of its in-order successor is copied into z and the successor's node is the
// one physically removed, which has at most one child and needs no rewiring
// of z's links. The removed node's links are fully severed before it is
// released.
func (t *Tree[K, V]) removeNode(z *node[K, V]) {
	if z.left != nil && z.right != nil {
		y := z.right.min()
		z.key = y.key
		z.value = y.value
		z = y
	}
	c := z.left
	if c == nil {
		c = z.right
	}
	p := z.parent
	leftSide := p != nil && z == p.left
	if c != nil {
		c.parent = p
	}
	t.relink(z, c)
	deficit := z.color == black
	z.parent, z.left, z.right = nil, nil, nil
	if deficit {
		t.deleteFixup(c, p, leftSide)
	}
}

// deleteFixup repairs rule 4 after a black node has been spliced out. The
// vacated position carries a deficit of one black unit ("double black")
// relative to its sibling subtree.
//
// x is the subtree that took the vacated position and may be nil, so the
// position is pinned down by p plus leftSide instead of by x itself; p == nil
// means x is the whole tree. The loop pushes the deficit towards the root
// until it is absorbed by a recoloring or discharged by a rotation.
func (t *Tree[K, V]) deleteFixup(x, p *node[K, V], leftSide bool) {
	for p != nil && x.isBlack() {
		if leftSide {
			s := p.right
			assert(s != nil, "double-black position must have a sibling")
			if s.isRed() {
				// red sibling: lift it to expose a black sibling below
				s.color = black
				p.color = red
				t.rotateLeft(p)
				s = p.right
			}
			if s.left.isBlack() && s.right.isBlack() {
				// all-black sibling: recoloring removes one black unit
				// from both sides, the deficit moves up to p
				s.color = red
				x = p
				p = x.parent
				leftSide = p != nil && x == p.left
				continue
			}
			if s.right.isBlack() {
				// near child red, far child black: rotate the sibling to
				// make the far child red
				s.left.color = black
				s.color = red
				t.rotateRight(s)
				s = p.right
			}
			// red far child: one rotation discharges the deficit
			s.color = p.color
			p.color = black
			s.right.color = black
			t.rotateLeft(p)
			x = t.root
			break
		} else {
			s := p.left
			assert(s != nil, "double-black position must have a sibling")
			if s.isRed() {
				s.color = black
				p.color = red
				t.rotateRight(p)
				s = p.left
			}
			if s.left.isBlack() && s.right.isBlack() {
				s.color = red
				x = p
				p = x.parent
				leftSide = p != nil && x == p.left
				continue
			}
			if s.left.isBlack() {
				s.right.color = black
				s.color = red
				t.rotateLeft(s)
				s = p.left
			}
			s.color = p.color
			p.color = black
			s.left.color = black
			t.rotateRight(p)
			x = t.root
			break
		}
	}
	if x != nil {
		x.color = black
	}
}
