package assimp

/*
#include "bridge.h"
*/
import "C"

import (
	"fmt"
	"runtime/cgo"
	"strings"
	"sync"
	"unsafe"

	"github.com/Faultbox/goassimp/pkg/assimp/abi"
)

// LogStream is a destination for the native library's log. Streams are
// attached to the process-wide logger; the library creates that logger
// when the first stream is attached and destroys it with the last.
//
// A predefined stream (LogStdout, LogStderr, LogFile, LogDebugger) may
// not exist on every platform, in which case Attach returns ErrLogStream.
type LogStream struct {
	kind int32 // abi.LogStream*, 0 for a Go callback
	file string
	fn   func(string)
	h    cgo.Handle

	// c is the attached C struct. Custom streams keep it until Close;
	// predefined ones get a fresh one per Attach because detaching
	// destroys the native stream behind it.
	c        *C.struct_aiLogStream
	attached bool
	closed   bool
}

var (
	logMu    sync.Mutex
	attached = map[*LogStream]struct{}{}
	verbose  bool
)

// LogStdout returns a stream that prints native messages to stdout.
func LogStdout() *LogStream { return &LogStream{kind: abi.LogStreamStdout} }

// LogStderr returns a stream that prints native messages to stderr.
func LogStderr() *LogStream { return &LogStream{kind: abi.LogStreamStderr} }

// LogDebugger returns a stream that sends native messages to an attached
// debugger; it only does something on Windows.
func LogDebugger() *LogStream { return &LogStream{kind: abi.LogStreamDebugger} }

// LogFile returns a stream that writes to the file at path.
func LogFile(path string) *LogStream {
	return &LogStream{kind: abi.LogStreamFile, file: path}
}

// NewLogStream returns a stream that hands every message to fn, without
// the trailing newline. fn runs on the goroutine that called into the
// library and must not call back into it.
func NewLogStream(fn func(string)) *LogStream {
	ls := &LogStream{fn: fn}
	ls.h = cgo.NewHandle(ls)
	return ls
}

func (ls *LogStream) String() string {
	switch ls.kind {
	case abi.LogStreamStdout:
		return "stdout"
	case abi.LogStreamStderr:
		return "stderr"
	case abi.LogStreamDebugger:
		return "debugger"
	case abi.LogStreamFile:
		return "file:" + ls.file
	}
	return "callback"
}

// Attach starts routing log messages to the stream. Attaching an
// attached stream is a no-op.
func (ls *LogStream) Attach() error {
	logMu.Lock()
	defer logMu.Unlock()
	if ls.closed {
		return fmt.Errorf("%w: %s closed", ErrLogStream, ls)
	}
	if ls.attached {
		return nil
	}
	if ls.c == nil {
		if ls.fn != nil {
			ls.c = C.newBridgeLogStream(C.uintptr_t(ls.h))
		} else {
			var cf *C.char
			if ls.file != "" {
				cf = C.CString(ls.file)
				defer C.free(unsafe.Pointer(cf))
			}
			ls.c = C.newPredefinedLogStream(C.int(ls.kind), cf)
		}
		if ls.c == nil {
			return fmt.Errorf("%w: %s: out of memory", ErrLogStream, ls)
		}
	}
	if C.attachBridgeLogStream(ls.c) != 0 {
		ls.dropC()
		return fmt.Errorf("%w: %s not available", ErrLogStream, ls)
	}
	ls.attached = true
	attached[ls] = struct{}{}
	return nil
}

// Detach stops routing messages to the stream. Detaching a detached
// stream is a no-op.
func (ls *LogStream) Detach() {
	logMu.Lock()
	defer logMu.Unlock()
	ls.detachLocked()
}

func (ls *LogStream) detachLocked() {
	if !ls.attached {
		return
	}
	C.detachBridgeLogStream(ls.c)
	ls.attached = false
	delete(attached, ls)
	if ls.fn == nil {
		ls.dropC()
	}
}

func (ls *LogStream) dropC() {
	if ls.c != nil {
		C.freeBridgeLogStream(ls.c)
		ls.c = nil
	}
}

// Close detaches the stream and frees it. The stream cannot be attached
// again.
func (ls *LogStream) Close() {
	logMu.Lock()
	defer logMu.Unlock()
	if ls.closed {
		return
	}
	ls.detachLocked()
	ls.dropC()
	if ls.fn != nil {
		ls.h.Delete()
	}
	ls.closed = true
}

// Attached reports whether the stream currently receives messages.
func (ls *LogStream) Attached() bool {
	logMu.Lock()
	defer logMu.Unlock()
	return ls.attached
}

// SetVerboseLogging switches debug-level messages on or off for the
// whole process. It applies to the logger created by the next Attach as
// well as to the current one.
func SetVerboseLogging(on bool) {
	logMu.Lock()
	defer logMu.Unlock()
	verbose = on
	b := C.int(abi.False)
	if on {
		b = C.int(abi.True)
	}
	C.aiEnableVerboseLogging(C.aiBool(b))
}

// VerboseLogging reports the last value passed to SetVerboseLogging.
func VerboseLogging() bool {
	logMu.Lock()
	defer logMu.Unlock()
	return verbose
}

// ResetLogging detaches every stream, destroys the native logger and
// turns verbose logging off. Streams stay usable and may be attached
// again.
func ResetLogging() {
	logMu.Lock()
	defer logMu.Unlock()
	C.aiDetachAllLogStreams()
	for ls := range attached {
		ls.attached = false
		if ls.fn == nil {
			ls.dropC()
		}
	}
	clear(attached)
	verbose = false
	C.aiEnableVerboseLogging(C.aiBool(abi.False))
}

//export goLogMessage
func goLogMessage(h C.uintptr_t, msg *C.char) {
	ls, ok := cgo.Handle(h).Value().(*LogStream)
	if !ok || ls.fn == nil {
		return
	}
	ls.fn(strings.TrimRight(C.GoString(msg), "\r\n"))
}
