package scene

import (
	"errors"
	"fmt"
	rdebug "runtime/debug"
)

var (
	// ErrDisposed is returned when validating a node or consumer that was disposed.
	ErrDisposed = errors.New("scene: disposed")

	// ErrNotContainer is returned by tree operations on a sprite.
	ErrNotContainer = errors.New("scene: node is not a container")

	// ErrDetached is returned by operations that need a System on a node
	// that has not been mounted.
	ErrDetached = errors.New("scene: node is not attached to a system")

	// ErrAttached is returned when mounting a node that already has a parent.
	ErrAttached = errors.New("scene: node is already attached")
)

// Stage identifies the tick stage in which a failure happened.
type Stage uint8

const (
	StageLayout Stage = iota
	StagePosition
	StageData
	StageRawData
	StageDataItems
	StageDataRange
	StageVisual
	StageAnimation
	StageIdle
)

func (s Stage) String() string {
	switch s {
	case StageLayout:
		return "layout"
	case StagePosition:
		return "position"
	case StageData:
		return "data"
	case StageRawData:
		return "raw-data"
	case StageDataItems:
		return "data-items"
	case StageDataRange:
		return "data-range"
	case StageVisual:
		return "visual"
	case StageAnimation:
		return "animation"
	case StageIdle:
		return "idle"
	default:
		return "unknown"
	}
}

// NodeError is a validation failure scoped to a single node or data consumer.
// The scheduler dequeues the target, reports the error and carries on with
// every other node.
type NodeError struct {
	// Target is the *Node or DataConsumer that failed.
	Target any
	Stage  Stage
	Err    error
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("scene: %s validation of %s failed: %v", e.Stage, describe(e.Target), e.Err)
}

func (e *NodeError) Unwrap() error {
	return e.Err
}

// PanicError wraps a value recovered from a panicking validator.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// ErrorHandler receives every critical error the scheduler raises.
type ErrorHandler func(*NodeError)

// nodeFailure ties err to target unless a deeper node already claimed it.
func nodeFailure(target any, stage Stage, err error) *NodeError {
	var ne *NodeError
	if errors.As(err, &ne) {
		return ne
	}
	return &NodeError{Target: target, Stage: stage, Err: err}
}

// safeCall runs fn and converts a panic into a *PanicError.
func safeCall(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r, Stack: rdebug.Stack()}
		}
	}()
	return fn()
}

func describe(target any) string {
	switch t := target.(type) {
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprintf("%T", target)
	}
}
