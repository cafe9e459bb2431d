package assimp

import (
	"fmt"
	"strings"

	"github.com/Faultbox/goassimp/pkg/assimp/abi"
	"github.com/Faultbox/goassimp/pkg/math"
)

// Property names carry their value type, so passing a float to a key the
// library reads as an integer does not compile.
type (
	BoolProperty   string
	IntProperty    string
	FloatProperty  string
	StringProperty string
	MatrixProperty string
)

// Library settings.
const (
	GlobMeasureTime        BoolProperty = "GLOB_MEASURE_TIME"
	ImportNoSkeletonMeshes BoolProperty = "IMPORT_NO_SKELETON_MESHES"
	GlobMultithreading     IntProperty  = "GLOB_MULTITHREADING"
	FavourSpeed            BoolProperty = "FAVOUR_SPEED"
)

// Post-processing settings.
const (
	PPSBBCMaxBones             IntProperty    = "PP_SBBC_MAX_BONES"
	PPCTMaxSmoothingAngle      FloatProperty  = "PP_CT_MAX_SMOOTHING_ANGLE"
	PPCTTextureChannelIndex    IntProperty    = "PP_CT_TEXTURE_CHANNEL_INDEX"
	PPGSNMaxSmoothingAngle     FloatProperty  = "PP_GSN_MAX_SMOOTHING_ANGLE"
	PPRRMExcludeList           StringProperty = "PP_RRM_EXCLUDE_LIST"
	PPPTVKeepHierarchy         BoolProperty   = "PP_PTV_KEEP_HIERARCHY"
	PPPTVNormalize             BoolProperty   = "PP_PTV_NORMALIZE"
	PPPTVAddRootTransformation BoolProperty   = "PP_PTV_ADD_ROOT_TRANSFORMATION"
	PPPTVRootTransformation    MatrixProperty = "PP_PTV_ROOT_TRANSFORMATION"
	PPFDRemove                 BoolProperty   = "PP_FD_REMOVE"
	PPOGExcludeList            StringProperty = "PP_OG_EXCLUDE_LIST"
	PPSLMTriangleLimit         IntProperty    = "PP_SLM_TRIANGLE_LIMIT"
	PPSLMVertexLimit           IntProperty    = "PP_SLM_VERTEX_LIMIT"
	PPLBWMaxWeights            IntProperty    = "PP_LBW_MAX_WEIGHTS"
	PPDBThreshold              FloatProperty  = "PP_DB_THRESHOLD"
	PPDBAllOrNone              BoolProperty   = "PP_DB_ALL_OR_NONE"
	PPICLPTCacheSize           IntProperty    = "PP_ICL_PTCACHE_SIZE"
	PPRVCFlags                 IntProperty    = "PP_RVC_FLAGS"
	PPSBPRemove                IntProperty    = "PP_SBP_REMOVE"
	PPFIDAnimAccuracy          FloatProperty  = "PP_FID_ANIM_ACCURACY"
	PPTUVEvaluate              IntProperty    = "PP_TUV_EVALUATE"
	ImportMDLColormap          StringProperty = "IMPORT_MDL_COLORMAP"
)

// Importer-specific settings.
const (
	ImportFBXReadAllGeometryLayers        BoolProperty   = "IMPORT_FBX_READ_ALL_GEOMETRY_LAYERS"
	ImportFBXReadAllMaterials             BoolProperty   = "IMPORT_FBX_READ_ALL_MATERIALS"
	ImportFBXReadMaterials                BoolProperty   = "IMPORT_FBX_READ_MATERIALS"
	ImportFBXReadCameras                  BoolProperty   = "IMPORT_FBX_READ_CAMERAS"
	ImportFBXReadLights                   BoolProperty   = "IMPORT_FBX_READ_LIGHTS"
	ImportFBXReadAnimations               BoolProperty   = "IMPORT_FBX_READ_ANIMATIONS"
	ImportFBXStrictMode                   BoolProperty   = "IMPORT_FBX_STRICT_MODE"
	ImportFBXPreservePivots               BoolProperty   = "IMPORT_FBX_PRESERVE_PIVOTS"
	ImportFBXOptimizeEmptyAnimationCurves BoolProperty   = "IMPORT_FBX_OPTIMIZE_EMPTY_ANIMATION_CURVES"
	ImportGlobalKeyframe                  IntProperty    = "IMPORT_GLOBAL_KEYFRAME"
	ImportMD3Keyframe                     IntProperty    = "IMPORT_MD3_KEYFRAME"
	ImportMD2Keyframe                     IntProperty    = "IMPORT_MD2_KEYFRAME"
	ImportMDLKeyframe                     IntProperty    = "IMPORT_MDL_KEYFRAME"
	ImportMDCKeyframe                     IntProperty    = "IMPORT_MDC_KEYFRAME"
	ImportSMDKeyframe                     IntProperty    = "IMPORT_SMD_KEYFRAME"
	ImportUnrealKeyframe                  IntProperty    = "IMPORT_UNREAL_KEYFRAME"
	ImportACSeparateBFCull                BoolProperty   = "IMPORT_AC_SEPARATE_BFCULL"
	ImportACEvalSubdivision               BoolProperty   = "IMPORT_AC_EVAL_SUBDIVISION"
	UnrealHandleFlags                     BoolProperty   = "UNREAL_HANDLE_FLAGS"
	ImportTERMakeUVs                      BoolProperty   = "IMPORT_TER_MAKE_UVS"
	ImportASEReconstructNormals           BoolProperty   = "IMPORT_ASE_RECONSTRUCT_NORMALS"
	ImportMD3HandleMultipart              BoolProperty   = "IMPORT_MD3_HANDLE_MULTIPART"
	ImportMD3SkinName                     StringProperty = "IMPORT_MD3_SKIN_NAME"
	ImportMD3ShaderSrc                    StringProperty = "IMPORT_MD3_SHADER_SRC"
	ImportLWOOneLayerOnly                 IntProperty    = "IMPORT_LWO_ONE_LAYER_ONLY"
	ImportLWOOneLayerOnlyName             StringProperty = "IMPORT_LWO_ONE_LAYER_ONLY"
	ImportMD5NoAnimAutoload               BoolProperty   = "IMPORT_MD5_NO_ANIM_AUTOLOAD"
	ImportLWSAnimStart                    IntProperty    = "IMPORT_LWS_ANIM_START"
	ImportLWSAnimEnd                      IntProperty    = "IMPORT_LWS_ANIM_END"
	ImportIRRAnimFPS                      IntProperty    = "IMPORT_IRR_ANIM_FPS"
	ImportOgreMaterialFile                StringProperty = "IMPORT_OGRE_MATERIAL_FILE"
	ImportOgreTextureTypeFromFilename     BoolProperty   = "IMPORT_OGRE_TEXTURETYPE_FROM_FILENAME"
	ImportIFCSkipSpaceRepresentations     BoolProperty   = "IMPORT_IFC_SKIP_SPACE_REPRESENTATIONS"
	ImportIFCSkipCurveRepresentations     BoolProperty   = "IMPORT_IFC_SKIP_CURVE_REPRESENTATIONS"
	ImportIFCCustomTriangulation          BoolProperty   = "IMPORT_IFC_CUSTOM_TRIANGULATION"
	ImportColladaIgnoreUpDirection        BoolProperty   = "IMPORT_COLLADA_IGNORE_UP_DIRECTION"
)

// PropertyKind is the set of value types a property name accepts.
type PropertyKind uint8

const (
	KindBool PropertyKind = 1 << iota
	KindInt
	KindFloat
	KindString
	KindMatrix
)

func (k PropertyKind) String() string {
	var names []string
	for _, t := range []struct {
		bit  PropertyKind
		name string
	}{
		{KindBool, "bool"},
		{KindInt, "int"},
		{KindFloat, "float"},
		{KindString, "string"},
		{KindMatrix, "matrix"},
	} {
		if k&t.bit != 0 {
			names = append(names, t.name)
		}
	}
	if len(names) == 0 {
		return fmt.Sprintf("Unknown(%d)", uint8(k))
	}
	return strings.Join(names, "|")
}

var catalog = map[string]PropertyKind{}

func register[T ~string](kind PropertyKind, names ...T) {
	for _, n := range names {
		catalog[string(n)] |= kind
	}
}

func init() {
	register(KindBool,
		GlobMeasureTime, ImportNoSkeletonMeshes, FavourSpeed,
		PPPTVKeepHierarchy, PPPTVNormalize, PPPTVAddRootTransformation,
		PPFDRemove, PPDBAllOrNone,
		ImportFBXReadAllGeometryLayers, ImportFBXReadAllMaterials, ImportFBXReadMaterials,
		ImportFBXReadCameras, ImportFBXReadLights, ImportFBXReadAnimations,
		ImportFBXStrictMode, ImportFBXPreservePivots, ImportFBXOptimizeEmptyAnimationCurves,
		ImportACSeparateBFCull, ImportACEvalSubdivision, UnrealHandleFlags,
		ImportTERMakeUVs, ImportASEReconstructNormals, ImportMD3HandleMultipart,
		ImportMD5NoAnimAutoload, ImportOgreTextureTypeFromFilename,
		ImportIFCSkipSpaceRepresentations, ImportIFCSkipCurveRepresentations,
		ImportIFCCustomTriangulation, ImportColladaIgnoreUpDirection,
	)
	register(KindInt,
		GlobMultithreading, PPSBBCMaxBones, PPCTTextureChannelIndex,
		PPSLMTriangleLimit, PPSLMVertexLimit, PPLBWMaxWeights, PPICLPTCacheSize,
		PPRVCFlags, PPSBPRemove, PPTUVEvaluate,
		ImportGlobalKeyframe, ImportMD3Keyframe, ImportMD2Keyframe, ImportMDLKeyframe,
		ImportMDCKeyframe, ImportSMDKeyframe, ImportUnrealKeyframe,
		ImportLWOOneLayerOnly, ImportLWSAnimStart, ImportLWSAnimEnd, ImportIRRAnimFPS,
	)
	register(KindFloat,
		PPCTMaxSmoothingAngle, PPGSNMaxSmoothingAngle, PPDBThreshold, PPFIDAnimAccuracy,
	)
	register(KindString,
		PPRRMExcludeList, PPOGExcludeList, ImportMDLColormap,
		ImportMD3SkinName, ImportMD3ShaderSrc, ImportLWOOneLayerOnlyName,
		ImportOgreMaterialFile,
	)
	register(KindMatrix, PPPTVRootTransformation)
}

// LookupProperty returns the value kinds accepted by a known property
// name. Unknown names report false.
func LookupProperty(name string) (PropertyKind, bool) {
	k, ok := catalog[name]
	return k, ok
}

// PropertyNames returns every catalogued property name.
func PropertyNames() []string {
	names := make([]string, 0, len(catalog))
	for n := range catalog {
		names = append(names, n)
	}
	return names
}

// Property is one typed configuration value. The concrete types are
// BoolValue, IntValue, FloatValue, StringValue and MatrixValue.
type Property interface {
	PropertyName() string
	apply(imp *Importer)
}

// BoolValue sets a boolean property.
type BoolValue struct {
	Key   BoolProperty
	Value bool
}

// IntValue sets an integer property.
type IntValue struct {
	Key   IntProperty
	Value int32
}

// FloatValue sets a float property.
type FloatValue struct {
	Key   FloatProperty
	Value float32
}

// StringValue sets a string property. Values of 1024 bytes or more panic
// when applied.
type StringValue struct {
	Key   StringProperty
	Value string
}

// MatrixValue sets a matrix property.
type MatrixValue struct {
	Key   MatrixProperty
	Value math.Mat4
}

// PropertyName returns the key.
func (p BoolValue) PropertyName() string { return string(p.Key) }

// PropertyName returns the key.
func (p IntValue) PropertyName() string { return string(p.Key) }

// PropertyName returns the key.
func (p FloatValue) PropertyName() string { return string(p.Key) }

// PropertyName returns the key.
func (p StringValue) PropertyName() string { return string(p.Key) }

// PropertyName returns the key.
func (p MatrixValue) PropertyName() string { return string(p.Key) }

func (p BoolValue) apply(imp *Importer)   { imp.SetBool(p.Key, p.Value) }
func (p IntValue) apply(imp *Importer)    { imp.SetInt(p.Key, p.Value) }
func (p FloatValue) apply(imp *Importer)  { imp.SetFloat(p.Key, p.Value) }
func (p StringValue) apply(imp *Importer) { imp.SetString(p.Key, p.Value) }
func (p MatrixValue) apply(imp *Importer) {
	imp.SetMatrix(p.Key, abi.Matrix4x4FromMat4(p.Value))
}
