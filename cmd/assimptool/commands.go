package main

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	gomath "math"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/goassimp/internal/logger"
	"github.com/Faultbox/goassimp/pkg/assimp"
	"github.com/Faultbox/goassimp/pkg/assimp/abi"
	"github.com/Faultbox/goassimp/pkg/math"
)

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	return fs
}

func (e *env) cmdInfo(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: assimptool info <model>", errUsage)
	}

	scene, err := e.importModel(args[0], 0)
	if err != nil {
		return err
	}
	defer scene.Release()

	var vertices, faces int
	bounds := math.EmptyAABB()
	for _, m := range scene.Meshes() {
		vertices += m.NumVertices()
		faces += m.NumFaces()
	}
	for n, xf := range scene.RootNode().WalkGlobal() {
		for _, mi := range n.MeshIndices() {
			bounds = bounds.Union(scene.Mesh(mi).Bounds().Transform(xf))
		}
	}
	mem := scene.MemoryRequirements()

	fmt.Fprintf(e.out, "Model:      %s\n", args[0])
	fmt.Fprintf(e.out, "Flags:      %s\n", scene.Flags())
	fmt.Fprintf(e.out, "Meshes:     %d\n", scene.NumMeshes())
	fmt.Fprintf(e.out, "Vertices:   %d\n", vertices)
	fmt.Fprintf(e.out, "Faces:      %d\n", faces)
	fmt.Fprintf(e.out, "Materials:  %d\n", scene.NumMaterials())
	fmt.Fprintf(e.out, "Textures:   %d\n", scene.NumTextures())
	fmt.Fprintf(e.out, "Animations: %d\n", scene.NumAnimations())
	fmt.Fprintf(e.out, "Lights:     %d\n", scene.NumLights())
	fmt.Fprintf(e.out, "Cameras:    %d\n", scene.NumCameras())
	fmt.Fprintf(e.out, "Memory:     %.2f KB\n", float64(mem.Total)/1024)
	if !bounds.IsEmpty() {
		size := bounds.Size()
		fmt.Fprintf(e.out, "Bounds:     %s - %s (%.3g x %.3g x %.3g)\n",
			fmtVec(bounds.Min), fmtVec(bounds.Max), size.X, size.Y, size.Z)
	}

	if scene.NumMeshes() > 0 {
		fmt.Fprintln(e.out, "\nMeshes:")
		for i, m := range scene.Meshes() {
			fmt.Fprintf(e.out, "  [%d] %-20s %6d verts %6d faces  mat %d  %s\n",
				i, e.name(m.Name()), m.NumVertices(), m.NumFaces(), m.MaterialIndex(), m.PrimitiveTypes())
		}
	}
	if scene.NumMaterials() > 0 {
		fmt.Fprintln(e.out, "\nMaterials:")
		for i, m := range scene.Materials() {
			fmt.Fprintf(e.out, "  [%d] %s\n", i, e.name(m.Name()))
		}
	}
	for i, t := range scene.Textures() {
		if i == 0 {
			fmt.Fprintln(e.out, "\nEmbedded textures:")
		}
		if t.IsCompressed() {
			fmt.Fprintf(e.out, "  *%d %s, %d bytes\n", i, t.FormatHint(), t.Width())
		} else {
			fmt.Fprintf(e.out, "  *%d %dx%d texels\n", i, t.Width(), t.Height())
		}
	}
	return nil
}

func (e *env) cmdTree(args []string) error {
	fs := newFlagSet("tree")
	meshes := fs.Bool("m", false, "show mesh indices")
	meta := fs.Bool("meta", false, "show node metadata")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("%w: assimptool tree [-m] [-meta] <model>", errUsage)
	}

	scene, err := e.importModel(fs.Arg(0), 0)
	if err != nil {
		return err
	}
	defer scene.Release()

	for n := range scene.RootNode().Walk() {
		depth := 0
		for p, ok := n.Parent(); ok; p, ok = p.Parent() {
			depth++
		}
		indent := strings.Repeat("  ", depth)
		line := indent + e.name(n.Name())
		if *meshes && n.NumMeshes() > 0 {
			line += fmt.Sprintf(" %v", n.MeshIndices())
		}
		fmt.Fprintln(e.out, line)
		if *meta {
			for _, md := range n.Metadata() {
				fmt.Fprintf(e.out, "%s  @%s (%s) = %v\n", indent, md.Key, md.Type, md.Value)
			}
		}
	}
	return nil
}

func (e *env) cmdMaterials(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: assimptool materials <model>", errUsage)
	}

	scene, err := e.importModel(args[0], 0)
	if err != nil {
		return err
	}
	defer scene.Release()

	for i, m := range scene.Materials() {
		fmt.Fprintf(e.out, "[%d] %s\n", i, e.name(m.Name()))
		for _, p := range m.Properties() {
			key := p.Key
			if p.Semantic != assimp.TextureNone || p.Index != 0 {
				key = fmt.Sprintf("%s[%s,%d]", p.Key, p.Semantic, p.Index)
			}
			fmt.Fprintf(e.out, "  %-32s %s\n", key, e.propertyValue(p))
		}
	}
	return nil
}

// propertyValue renders the raw bytes of a material property.
func (e *env) propertyValue(p assimp.MaterialProperty) string {
	switch p.Type {
	case abi.PropertyFloat:
		vals := make([]string, 0, len(p.Data)/4)
		for b := p.Data; len(b) >= 4; b = b[4:] {
			f := gomath.Float32frombits(binary.LittleEndian.Uint32(b))
			vals = append(vals, fmt.Sprintf("%g", f))
		}
		return strings.Join(vals, " ")
	case abi.PropertyInteger:
		vals := make([]string, 0, len(p.Data)/4)
		for b := p.Data; len(b) >= 4; b = b[4:] {
			vals = append(vals, fmt.Sprint(int32(binary.LittleEndian.Uint32(b))))
		}
		return strings.Join(vals, " ")
	case abi.PropertyString:
		if len(p.Data) < 4 {
			return `""`
		}
		n := min(int(binary.LittleEndian.Uint32(p.Data)), len(p.Data)-4)
		return fmt.Sprintf("%q", e.name(string(p.Data[4:4+n])))
	}
	if len(p.Data) > 16 {
		return fmt.Sprintf("<%d bytes> %s...", len(p.Data), hex.EncodeToString(p.Data[:16]))
	}
	return fmt.Sprintf("<%d bytes> %s", len(p.Data), hex.EncodeToString(p.Data))
}

func (e *env) cmdAnims(args []string) error {
	fs := newFlagSet("anims")
	keys := fs.Bool("k", false, "show key counts per channel")
	at := fs.Float64("t", -1, "sample every channel at this time in ticks")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("%w: assimptool anims [-k] [-t ticks] <model>", errUsage)
	}
	sample := *at >= 0

	scene, err := e.importModel(fs.Arg(0), 0)
	if err != nil {
		return err
	}
	defer scene.Release()

	if scene.NumAnimations() == 0 {
		fmt.Fprintln(os.Stderr, "No animations")
		return nil
	}
	for i, a := range scene.Animations() {
		fmt.Fprintf(e.out, "[%d] %s: %.2f ticks @ %g tps (%.2fs), %d channels, %d mesh channels\n",
			i, e.name(a.Name()), a.Duration(), a.TicksPerSecond(), a.Seconds(), a.NumChannels(), a.NumMeshChannels())
		if !*keys && !sample {
			continue
		}
		for _, ch := range a.Channels() {
			fmt.Fprintf(e.out, "  %-24s pos %d rot %d scl %d  %s/%s\n",
				e.name(ch.NodeName()), ch.NumPositionKeys(), ch.NumRotationKeys(), ch.NumScalingKeys(),
				ch.PreState(), ch.PostState())
			if sample {
				pos, rot, scl := ch.Sample(*at).Decompose()
				fmt.Fprintf(e.out, "    t=%g pos %s rot (%.3g, %.3g, %.3g, %.3g) scl %s\n",
					*at, fmtVec(pos), rot.X, rot.Y, rot.Z, rot.W, fmtVec(scl))
			}
		}
	}
	return nil
}

func (e *env) cmdValidate(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: assimptool validate <model>", errUsage)
	}

	scene, err := e.importModel(args[0], assimp.ValidateDataStructure)
	if err != nil {
		return err
	}
	defer scene.Release()

	flags := scene.Flags()
	switch {
	case flags&assimp.SceneValidationWarning != 0:
		fmt.Fprintf(e.out, "%s: valid with warnings (%s)\n", args[0], flags)
	case flags&assimp.SceneIncomplete != 0:
		fmt.Fprintf(e.out, "%s: incomplete (%s)\n", args[0], flags)
	default:
		fmt.Fprintf(e.out, "%s: valid\n", args[0])
	}
	return nil
}

func (e *env) cmdConvert(args []string) error {
	fs := newFlagSet("convert")
	format := fs.String("f", "", "export format id (default: from output extension or config)")
	steps := fs.String("steps", "", "comma-separated steps run before export")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		return fmt.Errorf("%w: assimptool convert [-f id] [-steps list] <model> <output>", errUsage)
	}
	in, out := fs.Arg(0), fs.Arg(1)

	id := e.exportFormat(*format, out)
	exportSteps, err := e.cfg.Export.Flags()
	if err != nil {
		return err
	}
	for _, name := range strings.Split(*steps, ",") {
		if name = strings.TrimSpace(name); name == "" {
			continue
		}
		s, err := assimp.ParseStep(name)
		if err != nil {
			return err
		}
		exportSteps |= s
	}

	scene, err := e.importModel(in, 0)
	if err != nil {
		return err
	}
	defer scene.Release()

	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := assimp.Export(scene, id, out, exportSteps); err != nil {
		return err
	}
	logger.Info("exported", zap.String("format", id), zap.String("path", out), zap.Stringer("steps", exportSteps))
	fmt.Fprintf(e.out, "Converted: %s -> %s (%s)\n", in, out, id)
	return nil
}

// exportFormat picks the format id: the explicit flag, then a format whose
// extension matches out, then the configured default.
func (e *env) exportFormat(flagValue, out string) string {
	if flagValue != "" {
		return flagValue
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(out)), ".")
	if ext != "" {
		formats := assimp.ExportFormats()
		if i := slices.IndexFunc(formats, func(f assimp.ExportFormat) bool { return f.ID == ext }); i >= 0 {
			return formats[i].ID
		}
		if i := slices.IndexFunc(formats, func(f assimp.ExportFormat) bool { return f.Extension == ext }); i >= 0 {
			return formats[i].ID
		}
	}
	return e.cfg.Export.Format
}

func (e *env) cmdFormats(args []string) error {
	for _, f := range assimp.ExportFormats() {
		fmt.Fprintf(e.out, "  %-12s .%-8s %s\n", f.ID, f.Extension, f.Description)
	}
	return nil
}

func (e *env) cmdExtensions(args []string) error {
	if len(args) > 0 {
		info, ok := assimp.LookupImporter(args[0])
		if !ok {
			return fmt.Errorf("no importer for %q", args[0])
		}
		fmt.Fprintf(e.out, "Importer:   %s\n", info.Name)
		if info.Author != "" {
			fmt.Fprintf(e.out, "Author:     %s\n", info.Author)
		}
		if info.Maintainer != "" {
			fmt.Fprintf(e.out, "Maintainer: %s\n", info.Maintainer)
		}
		if info.Comments != "" {
			fmt.Fprintf(e.out, "Comments:   %s\n", info.Comments)
		}
		fmt.Fprintf(e.out, "Extensions: %s\n", strings.Join(info.Extensions, " "))
		return nil
	}

	exts := assimp.Extensions()
	if len(exts) == 0 {
		return errors.New("library reports no importers")
	}
	for _, ext := range exts {
		fmt.Fprintln(e.out, ext)
	}
	fmt.Fprintf(os.Stderr, "\n(%d extensions)\n", len(exts))
	return nil
}

func (e *env) cmdDumpConfig(args []string) error {
	data, err := e.cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = e.out.Write(data)
	return err
}

func fmtVec(v math.Vec3) string {
	return fmt.Sprintf("(%.3g, %.3g, %.3g)", v.X, v.Y, v.Z)
}
