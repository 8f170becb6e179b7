package domain

// ChangeKind describes what happened to a watched file.
type ChangeKind string

const (
	// ChangeModified means the file was written or created.
	ChangeModified ChangeKind = "modified"

	// ChangeRemoved means the file was removed or renamed away.
	ChangeRemoved ChangeKind = "removed"
)

// FileChange is a single change notification for a watched file.
type FileChange struct {
	Path string
	Kind ChangeKind
}

// Removed reports whether the file is gone.
func (c FileChange) Removed() bool {
	return c.Kind == ChangeRemoved
}
