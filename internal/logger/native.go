package logger

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Faultbox/goassimp/pkg/assimp"
)

// NativeSink returns a callback for assimp.NewLogStream that forwards
// each native message to log at the level named by its prefix. Native
// lines look like "Warn,  T0: message"; lines without a recognised
// prefix are logged at info.
func NativeSink(log *zap.Logger) func(string) {
	log = log.WithOptions(zap.WithCaller(false)).Named("assimp")
	return func(line string) {
		lvl, thread, msg := splitNative(line)
		if ce := log.Check(lvl, msg); ce != nil {
			if thread != "" {
				ce.Write(zap.String("thread", thread))
			} else {
				ce.Write()
			}
		}
	}
}

func splitNative(line string) (zapcore.Level, string, string) {
	head, rest, ok := strings.Cut(line, ",")
	if !ok {
		return zapcore.InfoLevel, "", line
	}
	var lvl zapcore.Level
	switch head {
	case "Debug":
		lvl = zapcore.DebugLevel
	case "Info":
		lvl = zapcore.InfoLevel
	case "Warn":
		lvl = zapcore.WarnLevel
	case "Error":
		lvl = zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel, "", line
	}
	rest = strings.TrimLeft(rest, " ")
	thread, msg, ok := strings.Cut(rest, ": ")
	if !ok || !strings.HasPrefix(thread, "T") {
		return lvl, "", rest
	}
	return lvl, thread, msg
}

// AttachNative attaches one native log stream per name ("zap", "stdout",
// "stderr", "debugger" or "file:<path>") and sets verbose logging. The
// returned function detaches and closes them again. Streams that are not
// available on this platform are skipped with a warning.
func AttachNative(log *zap.Logger, names []string, verbose bool) (func(), error) {
	var streams []*assimp.LogStream
	closeAll := func() {
		for _, s := range streams {
			s.Close()
		}
	}

	for _, name := range names {
		s, err := nativeStream(log, name)
		if err != nil {
			closeAll()
			return nil, err
		}
		if err := s.Attach(); err != nil {
			s.Close()
			if errors.Is(err, assimp.ErrLogStream) {
				log.Warn("native log stream unavailable", zap.String("stream", name), zap.Error(err))
				continue
			}
			closeAll()
			return nil, err
		}
		streams = append(streams, s)
	}

	assimp.SetVerboseLogging(verbose)
	return closeAll, nil
}

func nativeStream(log *zap.Logger, name string) (*assimp.LogStream, error) {
	switch {
	case name == "zap":
		return assimp.NewLogStream(NativeSink(log)), nil
	case name == "stdout":
		return assimp.LogStdout(), nil
	case name == "stderr":
		return assimp.LogStderr(), nil
	case name == "debugger":
		return assimp.LogDebugger(), nil
	case strings.HasPrefix(name, "file:"):
		return assimp.LogFile(strings.TrimPrefix(name, "file:")), nil
	}
	return nil, fmt.Errorf("unknown log stream %q", name)
}
