package fieldmap

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/signadot/fieldmap/ir"
)

// ErrTypeMismatch is matched by every *TypeError.
var ErrTypeMismatch = errors.New("type mismatch")

// TypeError reports a node whose kind does not match what a converter
// expects.
type TypeError struct {
	Path     string // kinded path of the offending node, e.g. "friends[1].age"
	Expected string
	Actual   ir.Type
	Err      error
}

func (e *TypeError) Error() string {
	msg := fmt.Sprintf("expected %s, got %s", e.Expected, e.Actual)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Path != "" {
		return fmt.Sprintf("type mismatch at %s: %s", e.Path, msg)
	}
	return fmt.Sprintf("type mismatch: %s", msg)
}

func (e *TypeError) Is(target error) bool {
	return target == ErrTypeMismatch
}

func (e *TypeError) Unwrap() error {
	return e.Err
}

func mismatch(node *ir.Node, expected string) error {
	return &TypeError{
		Path:     node.KPath(),
		Expected: expected,
		Actual:   node.Type,
	}
}

// MarshalError represents an error while encoding a value.
type MarshalError struct {
	Path    string // field path (e.g., "relationships.father")
	Message string
	Err     error
}

func (e *MarshalError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("marshal error at %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("marshal error: %s", e.Message)
}

func (e *MarshalError) Unwrap() error {
	return e.Err
}

// UnmarshalError represents a decode failure that is not a kind mismatch.
type UnmarshalError struct {
	Path    string
	Message string
	Err     error
}

func (e *UnmarshalError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("unmarshal error at %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("unmarshal error: %s", e.Message)
}

func (e *UnmarshalError) Unwrap() error {
	return e.Err
}

func nilNode() error {
	return &UnmarshalError{Message: "node is nil"}
}

// atField and atIndex prefix the path of an encode error as it propagates
// out of a container. Decode errors carry the node's own path instead.
func atField(err error, name string) error {
	var me *MarshalError
	if errors.As(err, &me) {
		me.Path = joinPath(name, me.Path)
	}
	return err
}

func atIndex(err error, i int) error {
	var me *MarshalError
	if errors.As(err, &me) {
		me.Path = joinPath(fmt.Sprintf("[%d]", i), me.Path)
	}
	return err
}

func joinPath(head, tail string) string {
	switch {
	case tail == "":
		return head
	case tail[0] == '[':
		return head + tail
	default:
		return head + "." + tail
	}
}
