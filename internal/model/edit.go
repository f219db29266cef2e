package model

// Edit describes one buffer mutation as reported by the text-editing
// surface: Deleted characters removed at Start, Inserted put in their place.
// EditingAnchorID is set when the user is inside an explicit edit session on
// that anchor; edits landing inside any other anchor are blocked.
type Edit struct {
	Start           int
	Deleted         int
	Inserted        string
	EditingAnchorID string
}

// Delta is the net length change the edit applies to the buffer.
func (e Edit) Delta() int {
	return len(e.Inserted) - e.Deleted
}

// IsNewlinePush reports whether the edit is a bare newline insertion, the
// one edit always allowed immediately before a protected anchor since it
// pushes the anchor down without touching its content.
func (e Edit) IsNewlinePush() bool {
	return e.Deleted == 0 && e.Inserted == "\n"
}

// Apply rewrites the buffer according to the edit. The caller must have
// validated the edit range against the buffer first.
func (e Edit) Apply(buffer string) string {
	return buffer[:e.Start] + e.Inserted + buffer[e.Start+e.Deleted:]
}

// InRange reports whether the edit fits inside the buffer.
func (e Edit) InRange(buffer string) bool {
	return e.Start >= 0 && e.Start+e.Deleted <= len(buffer)
}
