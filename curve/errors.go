package curve

import (
	"github.com/sgostarter/libeasygo/ptl"
)

const (
	CodeErrType = ptl.CodeErrCustomStart + iota + 1
	CodeErrValue
	CodeErrNotImplemented
	CodeErrTooFewPoints
)

// Error kinds. Match them with errors.Is; the returned errors wrap one of
// these and, for ErrValue, the commerr cause as well.
var (
	ErrType           error = ptl.NewCodeError(CodeErrType)
	ErrValue          error = ptl.NewCodeError(CodeErrValue)
	ErrNotImplemented error = ptl.NewCodeError(CodeErrNotImplemented)
	ErrTooFewPoints   error = ptl.NewCodeError(CodeErrTooFewPoints)
	ErrLogic          error = ptl.NewCodeError(ptl.CodeErrLogic)
)
