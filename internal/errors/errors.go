package errors

import (
	stderrors "errors"
	"fmt"
)

type Kind string

const (
	InvalidConfig Kind = "invalid_config"
	NotFound      Kind = "not_found"
	ExternalTool  Kind = "external_tool"
	IOFailure     Kind = "io_failure"
	Cancelled     Kind = "cancelled"
	Internal      Kind = "internal"
)

// ErrFatalExit marks an exit status of the copy utility that signals failure
// rather than an informational result.
var ErrFatalExit = stderrors.New("copy utility reported a fatal exit status")

type AppError struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

func (e *AppError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func Wrap(kind Kind, op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &AppError{
		Kind: kind,
		Op:   op,
		Path: path,
		Err:  err,
	}
}

// KindOf reports the kind of the outermost AppError in err's chain, or Internal.
func KindOf(err error) Kind {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Kind
	}
	return Internal
}

func UserMessage(err error) string {
	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		return err.Error()
	}
	switch appErr.Kind {
	case InvalidConfig:
		return fmt.Sprintf("Invalid configuration: %v", appErr.Err)
	case NotFound:
		return fmt.Sprintf("Path not found: %s", appErr.Path)
	case ExternalTool:
		if appErr.Path != "" {
			return fmt.Sprintf("Copy utility failed (%s): %v", appErr.Path, appErr.Err)
		}
		return fmt.Sprintf("Copy utility failed: %v", appErr.Err)
	case IOFailure:
		return fmt.Sprintf("I/O error: %s", appErr.Path)
	case Cancelled:
		return "Copy cancelled."
	default:
		return fmt.Sprintf("Unexpected error: %v", appErr.Err)
	}
}
