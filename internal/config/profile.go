package config

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/Faultbox/goassimp/pkg/assimp"
	"github.com/Faultbox/goassimp/pkg/assimp/abi"
	"github.com/Faultbox/goassimp/pkg/math"
)

// Flags resolves the preset and the step lists into a flag mask.
func (c *ImportConfig) Flags() (assimp.PostProcessSteps, error) {
	flags, err := assimp.ParsePreset(orDefault(c.Preset, "none"))
	if err != nil {
		return 0, err
	}
	extra, err := parseSteps(c.Steps)
	if err != nil {
		return 0, err
	}
	drop, err := parseSteps(c.Disable)
	if err != nil {
		return 0, err
	}
	return (flags | extra) &^ drop, nil
}

// Flags returns the steps run on a scene before it is exported.
func (c *ExportConfig) Flags() (assimp.PostProcessSteps, error) {
	return parseSteps(c.Steps)
}

func parseSteps(names []string) (assimp.PostProcessSteps, error) {
	var steps assimp.PostProcessSteps
	for _, name := range names {
		s, err := assimp.ParseStep(name)
		if err != nil {
			return 0, err
		}
		steps |= s
	}
	return steps, nil
}

const everyPrimitive = assimp.PrimitivePoint | assimp.PrimitiveLine |
	assimp.PrimitiveTriangle | assimp.PrimitivePolygon

// StepList returns the configured steps with their parameters. Steps
// without a section keep the values already in the importer.
func (c *ImportConfig) StepList() ([]assimp.Step, error) {
	var steps []assimp.Step

	if n := c.Normals; n != nil {
		s := assimp.DefaultGenerateNormals()
		s.Smooth = n.Smooth
		setIf(&s.MaxSmoothingAngle, n.MaxAngle)
		steps = append(steps, s)
	}
	if ts := c.TangentSpace; ts != nil {
		s := assimp.DefaultCalcTangentSpace()
		setIf(&s.MaxSmoothingAngle, ts.MaxAngle)
		setIf(&s.TextureChannel, ts.Channel)
		steps = append(steps, s)
	}
	if lb := c.LimitBoneWeights; lb != nil {
		s := assimp.DefaultLimitBoneWeights()
		setIf(&s.MaxWeights, lb.MaxWeights)
		if s.MaxWeights <= 0 {
			return nil, fmt.Errorf("limit_bone_weights: max_weights must be positive, got %d", s.MaxWeights)
		}
		steps = append(steps, s)
	}
	if sl := c.SplitLargeMeshes; sl != nil {
		s := assimp.DefaultSplitLargeMeshes()
		setIf(&s.TriangleLimit, sl.TriangleLimit)
		setIf(&s.VertexLimit, sl.VertexLimit)
		steps = append(steps, s)
	}
	if sp := c.SortByPrimitiveType; sp != nil {
		s := assimp.DefaultSortByPrimitiveType()
		for _, name := range sp.Remove {
			p, err := assimp.ParsePrimitiveType(name)
			if err != nil {
				return nil, fmt.Errorf("sort_by_primitive_type: %w", err)
			}
			s.Remove |= p
		}
		if s.Remove&everyPrimitive == everyPrimitive {
			return nil, errors.New("sort_by_primitive_type: cannot remove every primitive type")
		}
		steps = append(steps, s)
	}
	if rc := c.RemoveComponent; rc != nil {
		s := assimp.DefaultRemoveComponent()
		for _, name := range rc.Components {
			comp, err := assimp.ParseComponent(name)
			if err != nil {
				return nil, fmt.Errorf("remove_component: %w", err)
			}
			s.Components |= comp
		}
		steps = append(steps, s)
	}
	if og := c.OptimizeGraph; og != nil {
		s := assimp.DefaultOptimizeGraph()
		if err := checkExclude(og.Exclude); err != nil {
			return nil, fmt.Errorf("optimize_graph: %w", err)
		}
		s.ExcludeList = og.Exclude
		steps = append(steps, s)
	}
	if rm := c.RemoveRedundantMats; rm != nil {
		s := assimp.DefaultRemoveRedundantMaterials()
		if err := checkExclude(rm.Exclude); err != nil {
			return nil, fmt.Errorf("remove_redundant_materials: %w", err)
		}
		s.ExcludeList = rm.Exclude
		steps = append(steps, s)
	}
	if db := c.Debone; db != nil {
		s := assimp.DefaultDebone()
		setIf(&s.Threshold, db.Threshold)
		s.AllOrNone = db.AllOrNone
		steps = append(steps, s)
	}
	return steps, nil
}

// checkExclude rejects name lists whose joined form does not fit the
// native fixed-size string.
func checkExclude(names []string) error {
	if n := len(assimp.ExcludeList(names)); n >= abi.MaxStringLen {
		return fmt.Errorf("exclude list is %d bytes: %w", n, abi.ErrStringTooLong)
	}
	return nil
}

// PropertyList converts Properties into typed values, checking each name
// against the catalog and each value against the name's type.
func (c *ImportConfig) PropertyList() ([]assimp.Property, error) {
	props := make([]assimp.Property, 0, len(c.Properties))
	for _, name := range sortedKeys(c.Properties) {
		p, err := Property(name, c.Properties[name])
		if err != nil {
			return nil, err
		}
		props = append(props, p)
	}
	return props, nil
}

// Apply configures imp with the profile: flags first, then step
// parameters, then raw properties so that they win.
func (c *ImportConfig) Apply(imp *assimp.Importer) error {
	flags, err := c.Flags()
	if err != nil {
		return err
	}
	steps, err := c.StepList()
	if err != nil {
		return err
	}
	props, err := c.PropertyList()
	if err != nil {
		return err
	}
	imp.Enable(flags)
	imp.Configure(steps...)
	imp.Set(props...)
	return nil
}

// Property converts one YAML value into a typed property. Matrices are
// given as 16 numbers, row by row.
func Property(name string, v any) (assimp.Property, error) {
	kind, ok := assimp.LookupProperty(name)
	if !ok {
		return nil, fmt.Errorf("unknown property %q", name)
	}
	mismatch := func() error {
		return fmt.Errorf("property %s expects %s, got %T", name, kind, v)
	}

	switch x := v.(type) {
	case bool:
		if kind&assimp.KindBool != 0 {
			return assimp.BoolValue{Key: assimp.BoolProperty(name), Value: x}, nil
		}
	case int:
		switch {
		case kind&assimp.KindInt != 0:
			if x < gomath.MinInt32 || x > gomath.MaxInt32 {
				return nil, fmt.Errorf("property %s: %d overflows int32", name, x)
			}
			return assimp.IntValue{Key: assimp.IntProperty(name), Value: int32(x)}, nil
		case kind&assimp.KindFloat != 0:
			return assimp.FloatValue{Key: assimp.FloatProperty(name), Value: float32(x)}, nil
		case kind&assimp.KindBool != 0:
			return assimp.BoolValue{Key: assimp.BoolProperty(name), Value: x != 0}, nil
		}
	case float64:
		if kind&assimp.KindFloat != 0 {
			return assimp.FloatValue{Key: assimp.FloatProperty(name), Value: float32(x)}, nil
		}
	case string:
		if kind&assimp.KindString != 0 {
			if len(x) >= abi.MaxStringLen {
				return nil, fmt.Errorf("property %s: %w", name, abi.ErrStringTooLong)
			}
			return assimp.StringValue{Key: assimp.StringProperty(name), Value: x}, nil
		}
	case []any:
		if kind&assimp.KindMatrix != 0 {
			m, err := matrixValue(x)
			if err != nil {
				return nil, fmt.Errorf("property %s: %w", name, err)
			}
			return assimp.MatrixValue{Key: assimp.MatrixProperty(name), Value: m}, nil
		}
	}
	return nil, mismatch()
}

// matrixValue reads 16 row-major numbers into a column-major Mat4.
func matrixValue(vals []any) (math.Mat4, error) {
	var m math.Mat4
	if len(vals) != 16 {
		return m, fmt.Errorf("matrix needs 16 numbers, got %d", len(vals))
	}
	for i, v := range vals {
		var f float32
		switch n := v.(type) {
		case int:
			f = float32(n)
		case float64:
			f = float32(n)
		default:
			return m, fmt.Errorf("matrix element %d is %T", i, v)
		}
		row, col := i/4, i%4
		m[col*4+row] = f
	}
	return m, nil
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
