package dialog

import (
	"errors"
	"fmt"
)

// ErrMissingStart is returned when a graph defines no "start" node.
var ErrMissingStart = errors.New(`graph has no "start" node`)

// DuplicateNodeError reports a node id declared more than once.
type DuplicateNodeError struct {
	ID string
}

func (e *DuplicateNodeError) Error() string {
	return fmt.Sprintf("duplicate node id %q", e.ID)
}

// DanglingReferenceError reports a transition target no node defines.
type DanglingReferenceError struct {
	NodeID string // node holding the reference
	Target string // id that does not resolve
}

func (e *DanglingReferenceError) Error() string {
	return fmt.Sprintf("node %q references unknown node %q", e.NodeID, e.Target)
}

// MalformedNodeError reports a node whose kind and fields disagree.
type MalformedNodeError struct {
	NodeID string
	Reason string
}

func (e *MalformedNodeError) Error() string {
	return fmt.Sprintf("malformed node %q: %s", e.NodeID, e.Reason)
}
