package generator

import (
	"errors"
	"fmt"
)

// Stage names a step of the generation pipeline
type Stage string

// Pipeline stages, in execution order
const (
	StageConfig       Stage = "config"
	StageTemplates    Stage = "templates"
	StagePlacement    Stage = "placement"
	StageConnectivity Stage = "connectivity"
	StageSimplify     Stage = "simplify"
	StageAlignment    Stage = "alignment"
	StageCarving      Stage = "carving"
	StageClassify     Stage = "classify"
)

// ErrorKind classifies a generation failure
type ErrorKind int

// Failure kinds
const (
	KindInvalidConfig ErrorKind = iota
	KindTemplateSource
	KindPlacementDegenerate
	KindUnreachableRoomPair
	KindCanceled
)

var (
	// ErrInvalidConfig marks configuration that cannot produce a level
	ErrInvalidConfig = errors.New("invalid config")
	// ErrTemplateSource marks a template source that failed or was empty
	ErrTemplateSource = errors.New("template source failed")
	// ErrPlacementDegenerate marks rooms that cannot be spread or triangulated
	ErrPlacementDegenerate = errors.New("placement degenerate")
	// ErrUnreachableRoomPair marks a connected room pair with no hallway path
	ErrUnreachableRoomPair = errors.New("unreachable room pair")
)

// String returns the kind name
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidConfig:
		return "InvalidConfig"
	case KindTemplateSource:
		return "TemplateSource"
	case KindPlacementDegenerate:
		return "PlacementDegenerate"
	case KindUnreachableRoomPair:
		return "UnreachableRoomPair"
	case KindCanceled:
		return "Canceled"
	default:
		return "Unknown"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindInvalidConfig:
		return ErrInvalidConfig
	case KindTemplateSource:
		return ErrTemplateSource
	case KindPlacementDegenerate:
		return ErrPlacementDegenerate
	case KindUnreachableRoomPair:
		return ErrUnreachableRoomPair
	default:
		return nil
	}
}

// GenerationError reports which stage failed and why. From and To identify
// the room pair for UnreachableRoomPair and are -1 otherwise.
type GenerationError struct {
	Stage Stage
	Kind  ErrorKind
	From  int
	To    int
	Err   error
}

func newError(stage Stage, kind ErrorKind, err error) *GenerationError {
	return &GenerationError{Stage: stage, Kind: kind, From: -1, To: -1, Err: err}
}

// Error formats the failure with its stage and kind
func (e *GenerationError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Stage, e.Kind)
	if e.From >= 0 && e.To >= 0 {
		msg += fmt.Sprintf(" (room %d -> room %d)", e.From, e.To)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind sentinel and the underlying cause to errors.Is
func (e *GenerationError) Unwrap() []error {
	var errs []error
	if s := e.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// Retryable reports whether a fresh seed may succeed where err failed
func Retryable(err error) bool {
	return errors.Is(err, ErrUnreachableRoomPair) || errors.Is(err, ErrPlacementDegenerate)
}
