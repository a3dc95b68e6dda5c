package bookmarks

import "errors"

var (
	// ErrInvalidStructure indicates a node whose variant is wrong for
	// its position: a non-container root, a bookmark with children, a
	// node without an id, or an unknown type discriminant.
	ErrInvalidStructure = errors.New("invalid bookmark tree structure")

	// ErrDuplicateID indicates the same node id was seen twice in one
	// tree walk.
	ErrDuplicateID = errors.New("duplicate bookmark id")

	// ErrCorruptRecord indicates a serialized node record that cannot
	// be decoded or lacks required fields.
	ErrCorruptRecord = errors.New("corrupt bookmark record")
)
