package assimp

import (
	"fmt"
	"math/bits"
	"strings"
)

// PostProcessSteps is the aiPostProcessSteps bit mask.
type PostProcessSteps uint32

const (
	CalcTangentSpace         PostProcessSteps = 0x1
	JoinIdenticalVertices    PostProcessSteps = 0x2
	MakeLeftHanded           PostProcessSteps = 0x4
	Triangulate              PostProcessSteps = 0x8
	RemoveComponent          PostProcessSteps = 0x10
	GenNormals               PostProcessSteps = 0x20
	GenSmoothNormals         PostProcessSteps = 0x40
	SplitLargeMeshes         PostProcessSteps = 0x80
	PreTransformVertices     PostProcessSteps = 0x100
	LimitBoneWeights         PostProcessSteps = 0x200
	ValidateDataStructure    PostProcessSteps = 0x400
	ImproveCacheLocality     PostProcessSteps = 0x800
	RemoveRedundantMaterials PostProcessSteps = 0x1000
	FixInfacingNormals       PostProcessSteps = 0x2000
	SortByPType              PostProcessSteps = 0x8000
	FindDegenerates          PostProcessSteps = 0x10000
	FindInvalidData          PostProcessSteps = 0x20000
	GenUVCoords              PostProcessSteps = 0x40000
	TransformUVCoords        PostProcessSteps = 0x80000
	FindInstances            PostProcessSteps = 0x100000
	OptimizeMeshes           PostProcessSteps = 0x200000
	OptimizeGraph            PostProcessSteps = 0x400000
	FlipUVs                  PostProcessSteps = 0x800000
	FlipWindingOrder         PostProcessSteps = 0x1000000
	SplitByBoneCount         PostProcessSteps = 0x2000000
	Debone                   PostProcessSteps = 0x4000000
)

// Presets matching aiProcessPreset_* and aiProcess_ConvertToLeftHanded.
const (
	ConvertToLeftHanded = MakeLeftHanded | FlipUVs | FlipWindingOrder

	TargetRealtimeFast = CalcTangentSpace | GenNormals | JoinIdenticalVertices |
		Triangulate | GenUVCoords | SortByPType

	TargetRealtimeQuality = CalcTangentSpace | GenSmoothNormals | JoinIdenticalVertices |
		ImproveCacheLocality | LimitBoneWeights | RemoveRedundantMaterials |
		SplitLargeMeshes | Triangulate | GenUVCoords | SortByPType |
		FindDegenerates | FindInvalidData

	TargetRealtimeMaxQuality = TargetRealtimeQuality | FindInstances |
		ValidateDataStructure | OptimizeMeshes
)

var stepNames = map[PostProcessSteps]string{
	CalcTangentSpace:         "CalcTangentSpace",
	JoinIdenticalVertices:    "JoinIdenticalVertices",
	MakeLeftHanded:           "MakeLeftHanded",
	Triangulate:              "Triangulate",
	RemoveComponent:          "RemoveComponent",
	GenNormals:               "GenNormals",
	GenSmoothNormals:         "GenSmoothNormals",
	SplitLargeMeshes:         "SplitLargeMeshes",
	PreTransformVertices:     "PreTransformVertices",
	LimitBoneWeights:         "LimitBoneWeights",
	ValidateDataStructure:    "ValidateDataStructure",
	ImproveCacheLocality:     "ImproveCacheLocality",
	RemoveRedundantMaterials: "RemoveRedundantMaterials",
	FixInfacingNormals:       "FixInfacingNormals",
	SortByPType:              "SortByPType",
	FindDegenerates:          "FindDegenerates",
	FindInvalidData:          "FindInvalidData",
	GenUVCoords:              "GenUVCoords",
	TransformUVCoords:        "TransformUVCoords",
	FindInstances:            "FindInstances",
	OptimizeMeshes:           "OptimizeMeshes",
	OptimizeGraph:            "OptimizeGraph",
	FlipUVs:                  "FlipUVs",
	FlipWindingOrder:         "FlipWindingOrder",
	SplitByBoneCount:         "SplitByBoneCount",
	Debone:                   "Debone",
}

var presetNames = map[string]PostProcessSteps{
	"none":                   0,
	"convert-to-left-handed": ConvertToLeftHanded,
	"realtime-fast":          TargetRealtimeFast,
	"realtime-quality":       TargetRealtimeQuality,
	"realtime-max-quality":   TargetRealtimeMaxQuality,
}

// Has reports whether every bit of step is set.
func (s PostProcessSteps) Has(step PostProcessSteps) bool {
	return s&step == step
}

// String lists the set steps joined by "|", or "None".
func (s PostProcessSteps) String() string {
	if s == 0 {
		return "None"
	}
	var names []string
	for rest := uint32(s); rest != 0; rest &= rest - 1 {
		bit := PostProcessSteps(1 << bits.TrailingZeros32(rest))
		if name, ok := stepNames[bit]; ok {
			names = append(names, name)
		} else {
			names = append(names, fmt.Sprintf("Unknown(0x%x)", uint32(bit)))
		}
	}
	return strings.Join(names, "|")
}

// ParseStep returns the flag for a step name as printed by String.
// Matching is case-insensitive.
func ParseStep(name string) (PostProcessSteps, error) {
	for bit, n := range stepNames {
		if strings.EqualFold(n, name) {
			return bit, nil
		}
	}
	return 0, fmt.Errorf("unknown post-process step %q", name)
}

// ParsePreset returns the flags of a named preset: none,
// convert-to-left-handed, realtime-fast, realtime-quality or
// realtime-max-quality.
func ParsePreset(name string) (PostProcessSteps, error) {
	if s, ok := presetNames[strings.ToLower(name)]; ok {
		return s, nil
	}
	return 0, fmt.Errorf("unknown preset %q", name)
}

// Component is the aiComponent bit mask used by the RemoveComponent step.
type Component uint32

const (
	ComponentNormals               Component = 0x2
	ComponentTangentsAndBitangents Component = 0x4
	ComponentColors                Component = 0x8
	ComponentTexCoords             Component = 0x10
	ComponentBoneWeights           Component = 0x20
	ComponentAnimations            Component = 0x40
	ComponentTextures              Component = 0x80
	ComponentLights                Component = 0x100
	ComponentCameras               Component = 0x200
	ComponentMeshes                Component = 0x400
	ComponentMaterials             Component = 0x800
)

var componentNames = map[string]Component{
	"normals":     ComponentNormals,
	"tangents":    ComponentTangentsAndBitangents,
	"colors":      ComponentColors,
	"texcoords":   ComponentTexCoords,
	"boneweights": ComponentBoneWeights,
	"animations":  ComponentAnimations,
	"textures":    ComponentTextures,
	"lights":      ComponentLights,
	"cameras":     ComponentCameras,
	"meshes":      ComponentMeshes,
	"materials":   ComponentMaterials,
}

// ParseComponent returns the component named name ("normals",
// "texcoords", ...), case-insensitively.
func ParseComponent(name string) (Component, error) {
	if c, ok := componentNames[strings.ToLower(name)]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("unknown component %q", name)
}

// PrimitiveType is the aiPrimitiveType bit mask.
type PrimitiveType uint32

const (
	PrimitivePoint    PrimitiveType = 0x1
	PrimitiveLine     PrimitiveType = 0x2
	PrimitiveTriangle PrimitiveType = 0x4
	PrimitivePolygon  PrimitiveType = 0x8

	allPrimitiveTypes = PrimitivePoint | PrimitiveLine | PrimitiveTriangle | PrimitivePolygon
)

func (p PrimitiveType) String() string {
	if p == 0 {
		return "None"
	}
	var names []string
	for _, t := range []struct {
		bit  PrimitiveType
		name string
	}{
		{PrimitivePoint, "Point"},
		{PrimitiveLine, "Line"},
		{PrimitiveTriangle, "Triangle"},
		{PrimitivePolygon, "Polygon"},
	} {
		if p&t.bit != 0 {
			names = append(names, t.name)
		}
	}
	if extra := p &^ allPrimitiveTypes; extra != 0 {
		names = append(names, fmt.Sprintf("Unknown(0x%x)", uint32(extra)))
	}
	return strings.Join(names, "|")
}

// ParsePrimitiveType returns the primitive type named name ("point",
// "line", "triangle" or "polygon"), case-insensitively.
func ParsePrimitiveType(name string) (PrimitiveType, error) {
	switch strings.ToLower(name) {
	case "point":
		return PrimitivePoint, nil
	case "line":
		return PrimitiveLine, nil
	case "triangle":
		return PrimitiveTriangle, nil
	case "polygon":
		return PrimitivePolygon, nil
	}
	return 0, fmt.Errorf("unknown primitive type %q", name)
}

// UVTransformFlags selects which parts of a UV transform TransformUVCoords
// evaluates (AI_UVTRAFO_*).
type UVTransformFlags uint32

const (
	UVTransformScaling     UVTransformFlags = 0x1
	UVTransformRotation    UVTransformFlags = 0x2
	UVTransformTranslation UVTransformFlags = 0x4
	UVTransformAll                          = UVTransformScaling | UVTransformRotation | UVTransformTranslation
)

// SceneFlags is the AI_SCENE_FLAGS_* mask of a scene.
type SceneFlags uint32

const (
	SceneIncomplete        SceneFlags = 0x1
	SceneValidated         SceneFlags = 0x2
	SceneValidationWarning SceneFlags = 0x4
	SceneNonVerboseFormat  SceneFlags = 0x8
	SceneTerrain           SceneFlags = 0x10
)

func (f SceneFlags) String() string {
	if f == 0 {
		return "None"
	}
	var names []string
	for _, t := range []struct {
		bit  SceneFlags
		name string
	}{
		{SceneIncomplete, "Incomplete"},
		{SceneValidated, "Validated"},
		{SceneValidationWarning, "ValidationWarning"},
		{SceneNonVerboseFormat, "NonVerboseFormat"},
		{SceneTerrain, "Terrain"},
	} {
		if f&t.bit != 0 {
			names = append(names, t.name)
		}
	}
	return strings.Join(names, "|")
}
