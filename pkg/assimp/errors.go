package assimp

import (
	"errors"
	"fmt"
)

// Sentinel errors. ImportError, ExportError and PostProcessError wrap the
// first three.
var (
	ErrImportFailed      = errors.New("import failed")
	ErrExportFailed      = errors.New("export failed")
	ErrPostProcessFailed = errors.New("post-processing failed")

	// ErrUnknownFormat is returned for an export format id the library
	// does not list.
	ErrUnknownFormat = errors.New("unknown export format")
	// ErrReleased is returned by operations on a released scene.
	ErrReleased = errors.New("scene already released")
	// ErrCopyFailed is returned when the library could not copy a scene.
	ErrCopyFailed = errors.New("scene copy failed")
	// ErrMaterialKey is returned for a material property that is absent
	// or of the wrong type.
	ErrMaterialKey = errors.New("material key not found")
	// ErrClosed is returned by a closed Importer.
	ErrClosed = errors.New("importer closed")
	// ErrLogStream is returned when a native log stream cannot be
	// created.
	ErrLogStream = errors.New("log stream unavailable")
)

// ImportError reports a failed import. Msg is the diagnostic from the
// native library; Cause is set when a FileSystem callback failed.
type ImportError struct {
	Source string
	Msg    string
	Cause  error
}

func (e *ImportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("import %s: %s: %v", e.Source, e.Msg, e.Cause)
	}
	return fmt.Sprintf("import %s: %s", e.Source, e.Msg)
}

// Unwrap returns ErrImportFailed and, if set, Cause.
func (e *ImportError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrImportFailed, e.Cause}
	}
	return []error{ErrImportFailed}
}

// PostProcessError reports a failed ApplyPostProcessing. Released is
// always true: the native library frees the scene on this path and the
// wrapper has already been disarmed.
type PostProcessError struct {
	Steps    PostProcessSteps
	Released bool
}

func (e *PostProcessError) Error() string {
	return fmt.Sprintf("post-process %s: see log output for details (scene released)", e.Steps)
}

func (e *PostProcessError) Unwrap() error {
	return ErrPostProcessFailed
}

// ExportError reports a failed export.
type ExportError struct {
	Format string
	Target string
	Msg    string
	Cause  error
}

func (e *ExportError) Error() string {
	msg := fmt.Sprintf("export %s as %s: %s", e.Target, e.Format, e.Msg)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns ErrExportFailed and, if set, Cause.
func (e *ExportError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrExportFailed, e.Cause}
	}
	return []error{ErrExportFailed}
}

func indexError(i, n int) string {
	return fmt.Sprintf("assimp: index %d out of range [0:%d]", i, n)
}
