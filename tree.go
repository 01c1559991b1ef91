package newsprint

import (
	"bytes"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// NodeID identifies an element within a Tree. IDs are assigned in document
// order when the tree is built and stay attached to their node through
// in-place transforms such as cleaning.
type NodeID int

// Tree is a parsed HTML document together with an index of its elements.
// A Tree owns its nodes; references into it are expressed as NodeRef.
type Tree struct {
	root  *html.Node
	ids   map[*html.Node]NodeID
	nodes map[NodeID]*html.Node
	next  NodeID
}

// ParseTree parses an HTML document into a Tree.
// Returns EINVALID if the input is blank.
func ParseTree(s string) (*Tree, error) {
	if strings.TrimSpace(s) == "" {
		return nil, Errorf(EINVALID, "empty HTML input")
	}
	root, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return nil, err
	}
	return NewTree(root), nil
}

// NewTree indexes an existing node hierarchy. The tree takes ownership of root.
func NewTree(root *html.Node) *Tree {
	t := newTree(root)
	walk(root, func(n *html.Node) {
		t.register(n)
	})
	return t
}

func newTree(root *html.Node) *Tree {
	return &Tree{
		root:  root,
		ids:   make(map[*html.Node]NodeID),
		nodes: make(map[NodeID]*html.Node),
		next:  1,
	}
}

// parseTreeWithIDs parses s and assigns ids to its elements in document
// order. The number of elements must match len(ids).
func parseTreeWithIDs(s string, ids []NodeID) (*Tree, error) {
	root, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return nil, err
	}

	t := newTree(root)
	i := 0
	mismatch := false
	walk(root, func(n *html.Node) {
		if i >= len(ids) {
			mismatch = true
			return
		}
		t.bind(n, ids[i])
		i++
	})
	if mismatch || i != len(ids) {
		return nil, Errorf(EINTERNAL, "tree shape changed: %d element ids for a different element count", len(ids))
	}
	return t, nil
}

func (t *Tree) register(n *html.Node) NodeID {
	if id, ok := t.ids[n]; ok {
		return id
	}
	id := t.next
	t.bind(n, id)
	return id
}

func (t *Tree) bind(n *html.Node, id NodeID) {
	t.ids[n] = id
	t.nodes[id] = n
	if id >= t.next {
		t.next = id + 1
	}
}

// Root returns the document node of the tree.
func (t *Tree) Root() *html.Node {
	return t.root
}

// Contains reports whether n is reachable from the tree's root via parent links.
func (t *Tree) Contains(n *html.Node) bool {
	for p := n; p != nil; p = p.Parent {
		if p == t.root {
			return true
		}
	}
	return false
}

// Ref returns a reference to n, which must be an element attached to the tree.
// Elements inserted by a transform receive a fresh ID on first reference.
func (t *Tree) Ref(n *html.Node) NodeRef {
	if n == nil || n.Type != html.ElementNode || !t.Contains(n) {
		return NodeRef{}
	}
	return NodeRef{tree: t, id: t.register(n)}
}

// Lookup returns a reference to the element with the given ID, or the zero
// NodeRef if no such element is attached to the tree.
func (t *Tree) Lookup(id NodeID) NodeRef {
	n, ok := t.nodes[id]
	if !ok || !t.Contains(n) {
		return NodeRef{}
	}
	return NodeRef{tree: t, id: id}
}

// ElementIDs returns the IDs of all attached elements in document order.
func (t *Tree) ElementIDs() []NodeID {
	var ids []NodeID
	walk(t.root, func(n *html.Node) {
		ids = append(ids, t.register(n))
	})
	return ids
}

// Clone returns a fully independent deep copy of the tree. Corresponding
// elements carry the same IDs in both trees.
func (t *Tree) Clone() *Tree {
	c := newTree(nil)
	c.root = cloneNodeFunc(t.root, func(orig, cp *html.Node) {
		if cp.Type != html.ElementNode {
			return
		}
		if id, ok := t.ids[orig]; ok {
			c.bind(cp, id)
		}
	})
	if c.next < t.next {
		c.next = t.next
	}
	walk(c.root, func(n *html.Node) {
		c.register(n)
	})
	return c
}

// HTML renders the whole tree.
func (t *Tree) HTML() (string, error) {
	return renderNode(t.root)
}

// Text returns the visible text of the tree with runs of whitespace
// collapsed. Script and style contents are skipped.
func (t *Tree) Text() string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
			b.WriteByte(' ')
		case html.ElementNode:
			switch n.DataAtom {
			case atom.Script, atom.Style, atom.Noscript, atom.Template:
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(t.root)
	return strings.Join(strings.Fields(b.String()), " ")
}

// NodeRef references an element inside one specific Tree. It does not own
// the element and becomes invalid once the element is removed from the tree.
type NodeRef struct {
	tree *Tree
	id   NodeID
}

// IsZero reports whether the reference points nowhere.
func (r NodeRef) IsZero() bool {
	return r.tree == nil
}

// ID returns the element ID within its tree.
func (r NodeRef) ID() NodeID {
	return r.id
}

// Tree returns the tree the reference points into.
func (r NodeRef) Tree() *Tree {
	return r.tree
}

// Node returns the referenced element, or nil when the reference is zero or
// the element is no longer reachable from the tree's root.
func (r NodeRef) Node() *html.Node {
	if r.tree == nil {
		return nil
	}
	n, ok := r.tree.nodes[r.id]
	if !ok || !r.tree.Contains(n) {
		return nil
	}
	return n
}

// In reports whether the reference points at a live element of t.
func (r NodeRef) In(t *Tree) bool {
	return t != nil && r.tree == t && r.Node() != nil
}

// Detach returns an owned deep copy of the referenced subtree.
func (r NodeRef) Detach() *DetachedNode {
	n := r.Node()
	if n == nil {
		return nil
	}
	return &DetachedNode{node: cloneNode(n)}
}

// HTML renders the referenced subtree.
func (r NodeRef) HTML() (string, error) {
	n := r.Node()
	if n == nil {
		return "", nil
	}
	return renderNode(n)
}

// DetachedNode is an element subtree that belongs to no Tree.
type DetachedNode struct {
	node *html.Node
}

// NewDetachedNode wraps n as a detached node. If n is still linked into a
// hierarchy, a deep copy is taken instead.
func NewDetachedNode(n *html.Node) *DetachedNode {
	if n == nil {
		return nil
	}
	if n.Parent != nil || n.PrevSibling != nil || n.NextSibling != nil {
		n = cloneNode(n)
	}
	return &DetachedNode{node: n}
}

// ParseDetachedNode parses a single element rendered by DetachedNode.HTML.
func ParseDetachedNode(s string) (*DetachedNode, error) {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(s), context)
	if err != nil {
		return nil, err
	}
	for _, n := range nodes {
		if n.Type == html.ElementNode {
			return &DetachedNode{node: n}, nil
		}
	}
	return nil, Errorf(EINVALID, "no element in detached node HTML")
}

// Node returns the root element of the detached subtree.
func (d *DetachedNode) Node() *html.Node {
	if d == nil {
		return nil
	}
	return d.node
}

// HTML renders the detached subtree.
func (d *DetachedNode) HTML() (string, error) {
	if d == nil {
		return "", nil
	}
	return renderNode(d.node)
}

// walk calls fn for every element under n in document order.
func walk(n *html.Node, fn func(*html.Node)) {
	if n == nil {
		return
	}
	if n.Type == html.ElementNode {
		fn(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func cloneNode(n *html.Node) *html.Node {
	return cloneNodeFunc(n, nil)
}

func cloneNodeFunc(n *html.Node, visit func(orig, cp *html.Node)) *html.Node {
	if n == nil {
		return nil
	}
	cp := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      slices.Clone(n.Attr),
	}
	if visit != nil {
		visit(n, cp)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		cp.AppendChild(cloneNodeFunc(c, visit))
	}
	return cp
}

func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
