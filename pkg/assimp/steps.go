package assimp

import (
	"fmt"
	"strings"

	"github.com/Faultbox/goassimp/pkg/assimp/abi"
	"github.com/Faultbox/goassimp/pkg/math"
)

// Step is a post-processing step together with its parameters.
// Applying an enabled step sets its flag and writes its parameters;
// applying a disabled step clears the flag only.
type Step interface {
	applyStep(imp *Importer)
}

// Configure applies each step in order.
func (imp *Importer) Configure(steps ...Step) {
	for _, s := range steps {
		s.applyStep(imp)
	}
}

// CalcTangentSpaceStep configures CalcTangentSpace.
type CalcTangentSpaceStep struct {
	Enable            bool
	MaxSmoothingAngle float32 // degrees
	TextureChannel    int32
}

// DefaultCalcTangentSpace returns the step enabled with a 45 degree
// smoothing angle on UV channel 0.
func DefaultCalcTangentSpace() CalcTangentSpaceStep {
	return CalcTangentSpaceStep{Enable: true, MaxSmoothingAngle: 45, TextureChannel: 0}
}

func (s CalcTangentSpaceStep) applyStep(imp *Importer) {
	imp.setStep(CalcTangentSpace, s.Enable)
	if s.Enable {
		imp.SetFloat(PPCTMaxSmoothingAngle, s.MaxSmoothingAngle)
		imp.SetInt(PPCTTextureChannelIndex, s.TextureChannel)
	}
}

// RemoveComponentStep configures RemoveComponent.
type RemoveComponentStep struct {
	Enable     bool
	Components Component
}

// DefaultRemoveComponent returns the step enabled with nothing selected.
func DefaultRemoveComponent() RemoveComponentStep {
	return RemoveComponentStep{Enable: true}
}

func (s RemoveComponentStep) applyStep(imp *Importer) {
	imp.setStep(RemoveComponent, s.Enable)
	if s.Enable {
		imp.SetInt(PPRVCFlags, int32(s.Components))
	}
}

// GenerateNormalsStep configures GenNormals, or GenSmoothNormals when
// Smooth is set. Disabling clears both flags.
type GenerateNormalsStep struct {
	Enable            bool
	Smooth            bool
	MaxSmoothingAngle float32 // degrees, smooth normals only
}

// DefaultGenerateNormals returns the step enabled with flat normals and a
// 175 degree smoothing angle.
func DefaultGenerateNormals() GenerateNormalsStep {
	return GenerateNormalsStep{Enable: true, Smooth: false, MaxSmoothingAngle: 175}
}

func (s GenerateNormalsStep) applyStep(imp *Importer) {
	switch {
	case !s.Enable:
		imp.Disable(GenNormals | GenSmoothNormals)
	case s.Smooth:
		imp.Disable(GenNormals)
		imp.Enable(GenSmoothNormals)
		imp.SetFloat(PPGSNMaxSmoothingAngle, s.MaxSmoothingAngle)
	default:
		imp.Disable(GenSmoothNormals)
		imp.Enable(GenNormals)
	}
}

// SplitLargeMeshesStep configures SplitLargeMeshes.
type SplitLargeMeshesStep struct {
	Enable        bool
	TriangleLimit int32
	VertexLimit   int32
}

// DefaultSplitLargeMeshes returns the step enabled with both limits at
// 1,000,000.
func DefaultSplitLargeMeshes() SplitLargeMeshesStep {
	return SplitLargeMeshesStep{Enable: true, TriangleLimit: 1000000, VertexLimit: 1000000}
}

func (s SplitLargeMeshesStep) applyStep(imp *Importer) {
	imp.setStep(SplitLargeMeshes, s.Enable)
	if s.Enable {
		imp.SetInt(PPSLMTriangleLimit, s.TriangleLimit)
		imp.SetInt(PPSLMVertexLimit, s.VertexLimit)
	}
}

// PreTransformVerticesStep configures PreTransformVertices.
type PreTransformVerticesStep struct {
	Enable                bool
	KeepHierarchy         bool
	Normalize             bool
	AddRootTransformation bool
	RootTransformation    math.Mat4
}

// DefaultPreTransformVertices returns the step enabled with every option
// off and an identity root transformation.
func DefaultPreTransformVertices() PreTransformVerticesStep {
	return PreTransformVerticesStep{Enable: true, RootTransformation: math.Identity()}
}

func (s PreTransformVerticesStep) applyStep(imp *Importer) {
	imp.setStep(PreTransformVertices, s.Enable)
	if s.Enable {
		imp.SetBool(PPPTVKeepHierarchy, s.KeepHierarchy)
		imp.SetBool(PPPTVNormalize, s.Normalize)
		imp.SetBool(PPPTVAddRootTransformation, s.AddRootTransformation)
		imp.SetMatrix(PPPTVRootTransformation, abi.Matrix4x4FromMat4(s.RootTransformation))
	}
}

// LimitBoneWeightsStep configures LimitBoneWeights.
type LimitBoneWeightsStep struct {
	Enable     bool
	MaxWeights int32
}

// DefaultLimitBoneWeights returns the step enabled with 4 weights per
// vertex.
func DefaultLimitBoneWeights() LimitBoneWeightsStep {
	return LimitBoneWeightsStep{Enable: true, MaxWeights: 4}
}

func (s LimitBoneWeightsStep) applyStep(imp *Importer) {
	imp.setStep(LimitBoneWeights, s.Enable)
	if s.Enable {
		imp.SetInt(PPLBWMaxWeights, s.MaxWeights)
	}
}

// ImproveCacheLocalityStep configures ImproveCacheLocality.
type ImproveCacheLocalityStep struct {
	Enable    bool
	CacheSize int32
}

// DefaultImproveCacheLocality returns the step enabled with a 12 entry
// vertex cache.
func DefaultImproveCacheLocality() ImproveCacheLocalityStep {
	return ImproveCacheLocalityStep{Enable: true, CacheSize: 12}
}

func (s ImproveCacheLocalityStep) applyStep(imp *Importer) {
	imp.setStep(ImproveCacheLocality, s.Enable)
	if s.Enable {
		imp.SetInt(PPICLPTCacheSize, s.CacheSize)
	}
}

// RemoveRedundantMaterialsStep configures RemoveRedundantMaterials.
// ExcludeList names materials to keep.
type RemoveRedundantMaterialsStep struct {
	Enable      bool
	ExcludeList []string
}

// DefaultRemoveRedundantMaterials returns the step enabled with an empty
// exclude list.
func DefaultRemoveRedundantMaterials() RemoveRedundantMaterialsStep {
	return RemoveRedundantMaterialsStep{Enable: true}
}

func (s RemoveRedundantMaterialsStep) applyStep(imp *Importer) {
	imp.setStep(RemoveRedundantMaterials, s.Enable)
	if s.Enable {
		imp.SetString(PPRRMExcludeList, ExcludeList(s.ExcludeList))
	}
}

// SortByPrimitiveTypeStep configures SortByPType. Remove selects the
// primitive types dropped from the scene.
type SortByPrimitiveTypeStep struct {
	Enable bool
	Remove PrimitiveType
}

// DefaultSortByPrimitiveType returns the step enabled, removing nothing.
func DefaultSortByPrimitiveType() SortByPrimitiveTypeStep {
	return SortByPrimitiveTypeStep{Enable: true}
}

// applyStep panics when every primitive type is selected for removal; the
// native library crashes on that combination.
func (s SortByPrimitiveTypeStep) applyStep(imp *Importer) {
	if s.Enable && s.Remove&allPrimitiveTypes == allPrimitiveTypes {
		panic("assimp: removing every primitive type is illegal")
	}
	imp.setStep(SortByPType, s.Enable)
	if s.Enable {
		imp.SetInt(PPSBPRemove, int32(s.Remove))
	}
}

// FindDegeneratesStep configures FindDegenerates.
type FindDegeneratesStep struct {
	Enable bool
	Remove bool
}

// DefaultFindDegenerates returns the step enabled, converting degenerates
// to lines and points rather than removing them.
func DefaultFindDegenerates() FindDegeneratesStep {
	return FindDegeneratesStep{Enable: true}
}

func (s FindDegeneratesStep) applyStep(imp *Importer) {
	imp.setStep(FindDegenerates, s.Enable)
	if s.Enable {
		imp.SetBool(PPFDRemove, s.Remove)
	}
}

// FindInvalidDataStep configures FindInvalidData.
type FindInvalidDataStep struct {
	Enable   bool
	Accuracy float32
}

// DefaultFindInvalidData returns the step enabled with accuracy 0.
func DefaultFindInvalidData() FindInvalidDataStep {
	return FindInvalidDataStep{Enable: true}
}

func (s FindInvalidDataStep) applyStep(imp *Importer) {
	imp.setStep(FindInvalidData, s.Enable)
	if s.Enable {
		imp.SetFloat(PPFIDAnimAccuracy, s.Accuracy)
	}
}

// TransformUVCoordsStep configures TransformUVCoords.
type TransformUVCoordsStep struct {
	Enable bool
	Flags  UVTransformFlags
}

// DefaultTransformUVCoords returns the step enabled for all transforms.
func DefaultTransformUVCoords() TransformUVCoordsStep {
	return TransformUVCoordsStep{Enable: true, Flags: UVTransformAll}
}

func (s TransformUVCoordsStep) applyStep(imp *Importer) {
	imp.setStep(TransformUVCoords, s.Enable)
	if s.Enable {
		imp.SetInt(PPTUVEvaluate, int32(s.Flags))
	}
}

// OptimizeGraphStep configures OptimizeGraph. ExcludeList names nodes
// to keep.
type OptimizeGraphStep struct {
	Enable      bool
	ExcludeList []string
}

// DefaultOptimizeGraph returns the step enabled with an empty exclude
// list.
func DefaultOptimizeGraph() OptimizeGraphStep {
	return OptimizeGraphStep{Enable: true}
}

func (s OptimizeGraphStep) applyStep(imp *Importer) {
	imp.setStep(OptimizeGraph, s.Enable)
	if s.Enable {
		imp.SetString(PPOGExcludeList, ExcludeList(s.ExcludeList))
	}
}

// SplitByBoneCountStep configures SplitByBoneCount.
type SplitByBoneCountStep struct {
	Enable   bool
	MaxBones int32
}

// DefaultSplitByBoneCount returns the step enabled with 60 bones per mesh.
func DefaultSplitByBoneCount() SplitByBoneCountStep {
	return SplitByBoneCountStep{Enable: true, MaxBones: 60}
}

func (s SplitByBoneCountStep) applyStep(imp *Importer) {
	imp.setStep(SplitByBoneCount, s.Enable)
	if s.Enable {
		imp.SetInt(PPSBBCMaxBones, s.MaxBones)
	}
}

// DeboneStep configures Debone.
type DeboneStep struct {
	Enable    bool
	Threshold float32
	AllOrNone bool
}

// DefaultDebone returns the step enabled with threshold 1.0.
func DefaultDebone() DeboneStep {
	return DeboneStep{Enable: true, Threshold: 1.0}
}

func (s DeboneStep) applyStep(imp *Importer) {
	imp.setStep(Debone, s.Enable)
	if s.Enable {
		imp.SetFloat(PPDBThreshold, s.Threshold)
		imp.SetBool(PPDBAllOrNone, s.AllOrNone)
	}
}

// Toggle switches a parameterless step (or any set of flags) on or off.
type Toggle struct {
	Steps  PostProcessSteps
	Enable bool
}

func (t Toggle) applyStep(imp *Importer) {
	imp.setStep(t.Steps, t.Enable)
}

// ExcludeList quotes names containing spaces with single quotes and joins
// them with spaces, the format read by the exclude-list properties.
func ExcludeList(names []string) string {
	parts := make([]string, 0, len(names))
	for _, n := range names {
		if strings.ContainsAny(n, " \t") {
			n = fmt.Sprintf("'%s'", n)
		}
		parts = append(parts, n)
	}
	return strings.Join(parts, " ")
}

// JoinIdenticalVertices merges identical vertices within each mesh so
// that faces share them. Without it no vertex is referenced by more than
// one face and indexed drawing saves nothing.
func (imp *Importer) JoinIdenticalVertices(enable bool) { imp.setStep(JoinIdenticalVertices, enable) }

// MakeLeftHanded converts the scene from the default right-handed space
// (+Z towards the viewer) to a left-handed one (+Z away), as Direct3D
// expects.
func (imp *Importer) MakeLeftHanded(enable bool) { imp.setStep(MakeLeftHanded, enable) }

// Triangulate splits faces with more than three indices into triangles.
// Lines and points are left alone; combine it with SortByPrimitiveType to
// get triangle-only meshes.
func (imp *Importer) Triangulate(enable bool) { imp.setStep(Triangulate, enable) }

// ValidateDataStructure checks every index, bone link and material
// reference after import. Errors fail the import; minor issues set
// SceneValidationWarning on the scene and are written to the log.
func (imp *Importer) ValidateDataStructure(enable bool) { imp.setStep(ValidateDataStructure, enable) }

// FixInfacingNormals inverts normals that appear to point into the mesh,
// judged by comparing bounding volumes with and without the normals
// added. Planar surfaces can fool it.
func (imp *Importer) FixInfacingNormals(enable bool) { imp.setStep(FixInfacingNormals, enable) }

// GenUVCoords converts spherical, cylindrical and other non-UV mappings
// into real texture coordinate channels. Without it such materials need
// their mapping property evaluated by the caller.
func (imp *Importer) GenUVCoords(enable bool) { imp.setStep(GenUVCoords, enable) }

// FindInstances replaces duplicate meshes with references to the first
// copy. It is slow; meshes that differ only in material are kept apart.
func (imp *Importer) FindInstances(enable bool) { imp.setStep(FindInstances, enable) }

// OptimizeMeshes joins small meshes to reduce draw calls. It works best
// together with OptimizeGraph.
func (imp *Importer) OptimizeMeshes(enable bool) { imp.setStep(OptimizeMeshes, enable) }

// FlipUVs flips texture coordinates along the y axis so that (0,0) is
// the top-left corner, and adjusts materials and bitangents to match.
func (imp *Importer) FlipUVs(enable bool) { imp.setStep(FlipUVs, enable) }

// FlipWindingOrder makes faces wind clockwise instead of the default
// counter-clockwise order.
func (imp *Importer) FlipWindingOrder(enable bool) { imp.setStep(FlipWindingOrder, enable) }

// CalcTangentSpace computes tangents and bitangents for meshes that have
// normals, as needed for normal mapping.
func (imp *Importer) CalcTangentSpace(s CalcTangentSpaceStep) { s.applyStep(imp) }

// RemoveComponent strips the selected components (animations, colours,
// normals and so on) early in the pipeline. Dropping per-face colours lets
// JoinIdenticalVertices do its job; dropping normals or tangents forces
// their regeneration.
func (imp *Importer) RemoveComponent(s RemoveComponentStep) { s.applyStep(imp) }

// GenerateNormals computes normals for meshes that have none. Flat
// normals are shared by the corners of a face; smooth normals are
// averaged per vertex up to the maximum smoothing angle.
func (imp *Importer) GenerateNormals(s GenerateNormalsStep) { s.applyStep(imp) }

// SplitLargeMeshes splits meshes that exceed the triangle or vertex
// limit, for hardware that caps the size of one draw call.
func (imp *Importer) SplitLargeMeshes(s SplitLargeMeshesStep) { s.applyStep(imp) }

// PreTransformVertices bakes node transformations into the vertices and
// flattens the graph to one level, one mesh per node. Animations are
// removed.
func (imp *Importer) PreTransformVertices(s PreTransformVerticesStep) { s.applyStep(imp) }

// LimitBoneWeights keeps at most MaxWeights bone influences per vertex,
// dropping the smallest and renormalising the rest.
func (imp *Importer) LimitBoneWeights(s LimitBoneWeightsStep) { s.applyStep(imp) }

// ImproveCacheLocality reorders triangles to lower the post-transform
// vertex cache miss ratio.
func (imp *Importer) ImproveCacheLocality(s ImproveCacheLocalityStep) { s.applyStep(imp) }

// RemoveRedundantMaterials merges materials with identical settings and
// drops unreferenced ones. Names are ignored in the comparison, so list
// materials that carry meaning by name in ExcludeList.
func (imp *Importer) RemoveRedundantMaterials(s RemoveRedundantMaterialsStep) {
	s.applyStep(imp)
}

// SortByPrimitiveType splits meshes so each holds one primitive type and
// optionally drops the types in Remove. It panics if Remove selects every
// type.
func (imp *Importer) SortByPrimitiveType(s SortByPrimitiveTypeStep) { s.applyStep(imp) }

// FindDegenerates turns faces with repeated indices into lines and
// points, or removes them when Remove is set.
func (imp *Importer) FindDegenerates(s FindDegeneratesStep) { s.applyStep(imp) }

// FindInvalidData removes zeroed normals, broken UVs and tiny meshes, and
// collapses animation channels whose keys do not change.
func (imp *Importer) FindInvalidData(s FindInvalidDataStep) { s.applyStep(imp) }

// TransformUVCoords bakes per-texture UV transforms into new coordinate
// channels.
func (imp *Importer) TransformUVCoords(s TransformUVCoordsStep) { s.applyStep(imp) }

// OptimizeGraph collapses nodes that carry no animation, bone, light or
// camera. Node names are lost except for those in ExcludeList.
func (imp *Importer) OptimizeGraph(s OptimizeGraphStep) { s.applyStep(imp) }

// SplitByBoneCount splits meshes influenced by more than MaxBones bones.
func (imp *Importer) SplitByBoneCount(s SplitByBoneCountStep) { s.applyStep(imp) }

// Debone removes bones that deform their mesh by less than Threshold.
// With AllOrNone a mesh keeps all of its bones unless every one can go.
func (imp *Importer) Debone(s DeboneStep) { s.applyStep(imp) }

// MeasureTime logs how long reading and each post-processing step took.
func (imp *Importer) MeasureTime(enable bool) { imp.SetBool(GlobMeasureTime, enable) }

// FavourSpeed hints loaders and steps to take faster code paths at some
// cost in quality.
func (imp *Importer) FavourSpeed(enable bool) { imp.SetBool(FavourSpeed, enable) }

// Multithreading sets the number of worker threads; 0 disables
// threading and -1 lets the library decide.
func (imp *Importer) Multithreading(threads int32) { imp.SetInt(GlobMultithreading, threads) }

// NoSkeletonMeshes stops loaders from adding dummy meshes that visualise
// skeletons without geometry.
func (imp *Importer) NoSkeletonMeshes(enable bool) { imp.SetBool(ImportNoSkeletonMeshes, enable) }

// GlobalKeyframe selects the vertex animation frame imported by formats
// that store several; KeyframeOverride sets it for one format.
func (imp *Importer) GlobalKeyframe(frame int32) { imp.SetInt(ImportGlobalKeyframe, frame) }

// MDLColormap sets the palette file used for Quake 1 MDL textures.
func (imp *Importer) MDLColormap(path string) { imp.SetString(ImportMDLColormap, path) }

// MD3HandleMultipart loads the lower, upper and head parts of an MD3
// player model together.
func (imp *Importer) MD3HandleMultipart(enable bool) {
	imp.SetBool(ImportMD3HandleMultipart, enable)
}

// MD3SkinName selects the .skin file applied to MD3 models.
func (imp *Importer) MD3SkinName(name string) { imp.SetString(ImportMD3SkinName, name) }

// MD3ShaderSrc points the MD3 loader at a Quake 3 shader file or folder.
func (imp *Importer) MD3ShaderSrc(path string) { imp.SetString(ImportMD3ShaderSrc, path) }

// MD5NoAnimAutoload stops the MD5 loader from picking up a matching
// .md5anim file.
func (imp *Importer) MD5NoAnimAutoload(enable bool) {
	imp.SetBool(ImportMD5NoAnimAutoload, enable)
}

// LWOOneLayerOnly loads only the LightWave layer with the given index.
func (imp *Importer) LWOOneLayerOnly(index int32) { imp.SetInt(ImportLWOOneLayerOnly, index) }

// LWOOneLayerOnlyName loads only the LightWave layer with the given name.
func (imp *Importer) LWOOneLayerOnlyName(name string) {
	imp.SetString(ImportLWOOneLayerOnlyName, name)
}

// LWSAnimRange limits a LightWave scene animation to the frames from
// start to end.
func (imp *Importer) LWSAnimRange(start, end int32) {
	imp.SetInt(ImportLWSAnimStart, start)
	imp.SetInt(ImportLWSAnimEnd, end)
}

// IRRAnimFPS sets the sampling rate for Irrlicht scene animators.
func (imp *Importer) IRRAnimFPS(fps int32) { imp.SetInt(ImportIRRAnimFPS, fps) }

// OgreMaterialFile names the Ogre material file used when a mesh has no
// matching one.
func (imp *Importer) OgreMaterialFile(path string) { imp.SetString(ImportOgreMaterialFile, path) }

// ColladaIgnoreUpDirection keeps COLLADA geometry in its file axes instead
// of rotating it to +Y up.
func (imp *Importer) ColladaIgnoreUpDirection(enable bool) {
	imp.SetBool(ImportColladaIgnoreUpDirection, enable)
}

// KeyframeOverride selects the keyframe imported from a format that
// stores vertex animation frames.
func (imp *Importer) KeyframeOverride(format string, frame int32) error {
	key, ok := map[string]IntProperty{
		"md3":    ImportMD3Keyframe,
		"md2":    ImportMD2Keyframe,
		"mdl":    ImportMDLKeyframe,
		"mdc":    ImportMDCKeyframe,
		"smd":    ImportSMDKeyframe,
		"unreal": ImportUnrealKeyframe,
	}[strings.ToLower(format)]
	if !ok {
		return fmt.Errorf("no keyframe property for format %q", format)
	}
	imp.SetInt(key, frame)
	return nil
}

// FBXOptions groups the FBX importer switches. Zero value fields are
// written as false.
type FBXOptions struct {
	ReadAllGeometryLayers        bool
	ReadAllMaterials             bool
	ReadMaterials                bool
	ReadCameras                  bool
	ReadLights                   bool
	ReadAnimations               bool
	StrictMode                   bool
	PreservePivots               bool
	OptimizeEmptyAnimationCurves bool
}

// DefaultFBXOptions mirrors the native defaults.
func DefaultFBXOptions() FBXOptions {
	return FBXOptions{
		ReadAllGeometryLayers:        true,
		ReadMaterials:                true,
		ReadCameras:                  true,
		ReadLights:                   true,
		ReadAnimations:               true,
		PreservePivots:               true,
		OptimizeEmptyAnimationCurves: true,
	}
}

// FBX writes every FBX importer switch.
func (imp *Importer) FBX(o FBXOptions) {
	imp.Set(
		BoolValue{ImportFBXReadAllGeometryLayers, o.ReadAllGeometryLayers},
		BoolValue{ImportFBXReadAllMaterials, o.ReadAllMaterials},
		BoolValue{ImportFBXReadMaterials, o.ReadMaterials},
		BoolValue{ImportFBXReadCameras, o.ReadCameras},
		BoolValue{ImportFBXReadLights, o.ReadLights},
		BoolValue{ImportFBXReadAnimations, o.ReadAnimations},
		BoolValue{ImportFBXStrictMode, o.StrictMode},
		BoolValue{ImportFBXPreservePivots, o.PreservePivots},
		BoolValue{ImportFBXOptimizeEmptyAnimationCurves, o.OptimizeEmptyAnimationCurves},
	)
}

// IFCOptions groups the IFC importer switches.
type IFCOptions struct {
	SkipSpaceRepresentations bool
	SkipCurveRepresentations bool
	CustomTriangulation      bool
}

// IFC writes every IFC importer switch.
func (imp *Importer) IFC(o IFCOptions) {
	imp.Set(
		BoolValue{ImportIFCSkipSpaceRepresentations, o.SkipSpaceRepresentations},
		BoolValue{ImportIFCSkipCurveRepresentations, o.SkipCurveRepresentations},
		BoolValue{ImportIFCCustomTriangulation, o.CustomTriangulation},
	)
}

// ACSeparateBackfaceCull splits AC3D meshes by their backface culling
// flag.
func (imp *Importer) ACSeparateBackfaceCull(enable bool) { imp.SetBool(ImportACSeparateBFCull, enable) }

// ACEvalSubdivision evaluates AC3D subdivision surfaces on load.
func (imp *Importer) ACEvalSubdivision(enable bool) { imp.SetBool(ImportACEvalSubdivision, enable) }

// UnrealHandleFlags honours the Unreal per-triangle flags such as
// invisible and two-sided.
func (imp *Importer) UnrealHandleFlags(enable bool) { imp.SetBool(UnrealHandleFlags, enable) }

// TERMakeUVs generates texture coordinates for Terragen terrains.
func (imp *Importer) TERMakeUVs(enable bool) { imp.SetBool(ImportTERMakeUVs, enable) }

// ASEReconstructNormals recomputes 3ds Max ASE normals from smoothing
// groups instead of reading them from the file.
func (imp *Importer) ASEReconstructNormals(enable bool) {
	imp.SetBool(ImportASEReconstructNormals, enable)
}

// OgreTextureTypeFromFilename guesses the texture type of Ogre material
// textures from suffixes such as _n or _s.
func (imp *Importer) OgreTextureTypeFromFilename(enable bool) {
	imp.SetBool(ImportOgreTextureTypeFromFilename, enable)
}
