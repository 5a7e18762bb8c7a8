package ast

// Event is a single step of a depth-first traversal. Containers produce an
// entering event and, after all of their descendants, a leaving event.
// Leaves produce one event with Entering set.
type Event struct {
	Node     *Node
	Entering bool
}

// Walker is a resumable depth-first cursor.
type Walker struct {
	root     *Node
	current  *Node
	entering bool
}

// Next returns the next event, or false once the subtree is exhausted.
func (w *Walker) Next() (Event, bool) {
	cur, entering := w.current, w.entering
	if cur == nil {
		return Event{}, false
	}
	switch {
	case entering && cur.IsContainer():
		if cur.firstChild != nil {
			w.current = cur.firstChild
			w.entering = true
		} else {
			w.entering = false
		}
	case cur == w.root:
		w.current = nil
	case cur.next == nil:
		w.current = cur.parent
		w.entering = false
	default:
		w.current = cur.next
		w.entering = true
	}
	return Event{Node: cur, Entering: entering}, true
}

// ResumeAt repositions the cursor so that the next event is (n, entering).
// Resuming at a container's leaving event skips its remaining descendants.
func (w *Walker) ResumeAt(n *Node, entering bool) {
	w.current = n
	w.entering = entering
}

type WalkStatus int

const (
	WalkContinue WalkStatus = iota
	WalkSkipChildren
	WalkStop
)

// Visitor is called for every event of a Walk.
type Visitor func(n *Node, entering bool) WalkStatus

// Walk traverses the subtree rooted at n, calling f for each event.
// Returning WalkSkipChildren on an entering container jumps to its leaving event.
func Walk(n *Node, f Visitor) {
	w := n.Walker()
	for {
		ev, ok := w.Next()
		if !ok {
			return
		}
		switch f(ev.Node, ev.Entering) {
		case WalkStop:
			return
		case WalkSkipChildren:
			if ev.Entering && ev.Node.IsContainer() {
				w.ResumeAt(ev.Node, false)
			}
		}
	}
}
