package model

import "errors"

var (
	ErrInvalidSourceKind           = errors.New("invalid source kind")
	ErrInvalidSourceExtension      = errors.New("invalid source extension")
	ErrInvalidDestinationKind      = errors.New("invalid destination kind")
	ErrInvalidDestinationExtension = errors.New("invalid destination extension")
	ErrCorruptDataset              = errors.New("corrupt dataset")
	ErrInvalidDatasetShape         = errors.New("invalid dataset shape")
	ErrLabelParseError             = errors.New("label parse error")
	ErrLabelArityMismatch          = errors.New("label arity mismatch")
	ErrEmptyTrainingSet            = errors.New("empty training set")
	ErrDimensionMismatch           = errors.New("dimension mismatch")
)
