package merrs

import (
	"github.com/spacemonkeygo/errors"
)

// ErrorClass wraps a spacemonkeygo error class. Errors created through
// it carry the class hierarchy and a captured stack.
type ErrorClass struct {
	gec *errors.ErrorClass
}

var rootClass = errors.NewClass("rbtree")

// NewErrorClass creates a class under parent, or under the package
// root class when parent is nil.
func NewErrorClass(name string, parent *ErrorClass) *ErrorClass {
	if parent == nil {
		return &ErrorClass{gec: rootClass.NewClass(name)}
	}
	return &ErrorClass{gec: parent.gec.NewClass(name)}
}

// New creates an error of this class. format is expanded with args
// when any are given.
func (e *ErrorClass) New(format string, args ...interface{}) error {
	return e.gec.New(format, args...)
}

// Contains reports whether err belongs to this class or a subclass.
func (e *ErrorClass) Contains(err error) bool {
	return e.gec.Contains(err)
}

func (e *ErrorClass) String() string {
	return e.gec.String()
}

var (
	// ProgrammerError flags a broken internal invariant. It is raised
	// as a panic, never returned.
	ProgrammerError = &ErrorClass{gec: errors.ProgrammerError}

	// NotExistError reports a missing value or file.
	NotExistError = NewErrorClass("NotExistError", nil)

	// ErrParams reports bad caller supplied parameters.
	ErrParams = NewErrorClass("Params", nil)

	// ErrValid reports a failed structural validation.
	ErrValid = NewErrorClass("Valid", nil)
)
