// Package errs defines the closed set of error kinds surfaced by gvc
// operations. Callers branch on Kind (or errors.Is against the kind
// sentinels) rather than on message text; the user-visible message for
// each kind is fixed and stable.
package errs

// Kind identifies one failure class.
type Kind int

const (
	// ObjectNotFound means a requested blob or commit identifier is
	// absent from the object store, or its stored bytes are corrupt.
	ObjectNotFound Kind = iota + 1
	// PathOutsideRepository means an operation target resolves outside
	// the working directory root.
	PathOutsideRepository
	// FileNotFound means an operand path does not exist where
	// existence is required.
	FileNotFound
	// NoReasonToRemove means rm was called on a path that is neither
	// staged nor tracked by the head commit.
	NoReasonToRemove
	// EmptyMessage means a commit was attempted with a blank message.
	EmptyMessage
	// NothingToCommit means a commit was attempted with an empty
	// staging area.
	NothingToCommit
	// BranchExists means a branch name is already bound.
	BranchExists
	// WorkingDirectory means a working-directory file mutation failed
	// at the I/O layer.
	WorkingDirectory
	// StorageFault means the underlying store failed; fatal to the
	// current command.
	StorageFault
	// SerializationFault means persisted data could not be decoded;
	// fatal, never auto-repaired.
	SerializationFault
)

// messages holds the one fixed, user-visible message per kind. Status
// and failure output is matched character-for-character by tests, so
// these strings never change.
var messages = map[Kind]string{
	ObjectNotFound:        "Object does not exist.",
	PathOutsideRepository: "File is outside the repository.",
	FileNotFound:          "File does not exist.",
	NoReasonToRemove:      "No reason to remove the file.",
	EmptyMessage:          "Please enter a commit message.",
	NothingToCommit:       "No changes added to the commit.",
	BranchExists:          "A branch with that name already exists.",
	WorkingDirectory:      "Cannot remove file from the working directory.",
	StorageFault:          "Storage failure.",
	SerializationFault:    "Corrupt repository data.",
}

// Error carries a kind plus structured context. Message text is never
// preassembled into it.
type Error struct {
	Kind Kind
	Path string // operand path, if any
	ID   string // object identifier, if any
	Err  error  // underlying cause, if any
}

func (e *Error) Error() string {
	return messages[e.Kind]
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so errors.Is(err, &Error{Kind: k})
// works without comparing context fields.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// New returns a bare error of the given kind.
func New(kind Kind) *Error {
	return &Error{Kind: kind}
}

// NewPath returns an error of the given kind annotated with a path.
func NewPath(kind Kind, path string) *Error {
	return &Error{Kind: kind, Path: path}
}

// NewID returns an error of the given kind annotated with an object
// identifier.
func NewID(kind Kind, id string) *Error {
	return &Error{Kind: kind, ID: id}
}

// Wrap returns an error of the given kind wrapping an underlying cause.
func Wrap(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}
