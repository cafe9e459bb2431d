// assimptool is a CLI utility for inspecting and converting 3D model files.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/goassimp/internal/assets"
	"github.com/Faultbox/goassimp/internal/config"
	"github.com/Faultbox/goassimp/internal/logger"
	"github.com/Faultbox/goassimp/pkg/assimp"
	"github.com/Faultbox/goassimp/pkg/encoding"
)

var errUsage = errors.New("usage")

func main() {
	flag.Usage = printUsage
	config.ParseFlags()

	if flag.NArg() < 1 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.InitCLI(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	detach, err := logger.AttachNative(logger.Log, cfg.Logging.Streams, cfg.Logging.Verbose)
	if err != nil {
		logger.Fatal("failed to attach native log", zap.Error(err))
	}

	err = run(cfg, flag.Args(), os.Stdout)
	detach()
	switch {
	case errors.Is(err, errUsage):
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `assimptool - 3D model inspection and conversion utility

Usage:
  assimptool [global options] <command> [options]

Commands:
  info <model>                       Show scene summary
  tree <model>                       Print the node hierarchy
  materials <model>                  Dump material properties
  anims [-k] [-t ticks] <model>      List animations, channels and sampled poses
  validate <model>                   Run the validation step and report
  convert [-f id] <model> <output>   Convert to another format
  formats                            List export formats
  extensions [ext]                   List importable extensions
  dump-config                        Print the effective configuration

Global options:`)
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr, `
Examples:
  assimptool info model.fbx
  assimptool -preset realtime-fast tree scene.dae
  assimptool convert -f stl model.obj model.stl
  assimptool -encoding euc-kr materials prontera.3ds`)
}

// env carries what every command needs.
type env struct {
	cfg   *config.Config
	out   io.Writer
	names *encoding.Decoder
}

func run(cfg *config.Config, args []string, out io.Writer) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: assimptool <command> [options]", errUsage)
	}
	names, err := encoding.Lookup(cfg.Data.Encoding)
	if err != nil {
		return err
	}
	e := &env{cfg: cfg, out: out, names: names}

	command, rest := args[0], args[1:]
	switch command {
	case "info":
		return e.cmdInfo(rest)
	case "tree":
		return e.cmdTree(rest)
	case "materials", "mat":
		return e.cmdMaterials(rest)
	case "anims":
		return e.cmdAnims(rest)
	case "validate":
		return e.cmdValidate(rest)
	case "convert":
		return e.cmdConvert(rest)
	case "formats":
		return e.cmdFormats(rest)
	case "extensions", "ext":
		return e.cmdExtensions(rest)
	case "dump-config":
		return e.cmdDumpConfig(rest)
	}
	return fmt.Errorf("%w: unknown command %q", errUsage, command)
}

// importModel imports path with the configured profile plus extra steps.
// When archives are configured the model and its companion files are
// looked up there first, then on disk.
func (e *env) importModel(path string, extra assimp.PostProcessSteps) (*assimp.Scene, error) {
	imp := assimp.NewImporter()
	defer imp.Close()

	if err := e.cfg.Import.Apply(imp); err != nil {
		return nil, err
	}
	imp.Enable(extra)
	logger.Debug("importing", zap.String("path", path), zap.Stringer("steps", imp.Flags()))

	if len(e.cfg.Data.Archives) == 0 {
		return imp.ReadFile(path)
	}

	m, name, err := assets.ForModel(path, e.cfg.Data.Archives)
	if err != nil {
		return nil, err
	}
	defer m.Close()
	return imp.ReadFileFrom(m, name)
}

func (e *env) name(s string) string {
	return e.names.String(s)
}
