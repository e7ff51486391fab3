package matte

// History owns the committed stroke sequence and the redo stack.
//
// Undo moves the most recent committed stroke onto the redo stack; redo
// moves it back. Committing a new stroke clears the redo stack entirely.
// Strokes are never mutated or recomputed by history operations.
type History struct {
	committed []Stroke
	redo      []Stroke
}

// Commit appends a stroke to the committed sequence and clears redo.
func (h *History) Commit(s Stroke) {
	h.committed = append(h.committed, s)
	h.redo = h.redo[:0]
}

// Undo moves the last committed stroke to the redo stack.
// Returns false if there is nothing to undo.
func (h *History) Undo() bool {
	if len(h.committed) == 0 {
		return false
	}
	last := h.committed[len(h.committed)-1]
	h.committed = h.committed[:len(h.committed)-1]
	h.redo = append(h.redo, last)
	return true
}

// Redo moves the most recently undone stroke back onto the committed
// sequence. Returns false if there is nothing to redo.
func (h *History) Redo() bool {
	if len(h.redo) == 0 {
		return false
	}
	last := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.committed = append(h.committed, last)
	return true
}

// CanUndo reports whether any committed stroke remains.
func (h *History) CanUndo() bool {
	return len(h.committed) > 0
}

// CanRedo reports whether any undone stroke can be reapplied.
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}

// Len returns the number of committed strokes.
func (h *History) Len() int {
	return len(h.committed)
}

// Strokes returns the committed stroke sequence in commit order.
// The slice is read-only; the compositor iterates it during replay.
func (h *History) Strokes() []Stroke {
	return h.committed
}
