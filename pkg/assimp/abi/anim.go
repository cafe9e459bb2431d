package abi

// Animation behaviours (aiAnimBehaviour).
const (
	AnimBehaviourDefault  int32 = 0
	AnimBehaviourConstant int32 = 1
	AnimBehaviourLinear   int32 = 2
	AnimBehaviourRepeat   int32 = 3
)

// Light source types (aiLightSourceType).
const (
	LightUndefined   int32 = 0
	LightDirectional int32 = 1
	LightPoint       int32 = 2
	LightSpot        int32 = 3
)

// VectorKey mirrors aiVectorKey.
type VectorKey struct {
	Time  float64
	Value Vector3D
}

// QuatKey mirrors aiQuatKey.
type QuatKey struct {
	Time  float64
	Value Quaternion
}

// MeshKey mirrors aiMeshKey.
type MeshKey struct {
	Time  float64
	Value uint32
}

// NodeAnim mirrors aiNodeAnim.
type NodeAnim struct {
	NodeName        String
	NumPositionKeys uint32
	PositionKeys    *VectorKey
	NumRotationKeys uint32
	RotationKeys    *QuatKey
	NumScalingKeys  uint32
	ScalingKeys     *VectorKey
	PreState        int32
	PostState       int32
}

// MeshAnim mirrors aiMeshAnim.
type MeshAnim struct {
	Name    String
	NumKeys uint32
	Keys    *MeshKey
}

// Animation mirrors aiAnimation.
type Animation struct {
	Name            String
	Duration        float64
	TicksPerSecond  float64
	NumChannels     uint32
	Channels        **NodeAnim
	NumMeshChannels uint32
	MeshChannels    **MeshAnim
}

// Light mirrors aiLight.
type Light struct {
	Name                 String
	Type                 int32
	Position             Vector3D
	Direction            Vector3D
	AttenuationConstant  float32
	AttenuationLinear    float32
	AttenuationQuadratic float32
	ColorDiffuse         Color3D
	ColorSpecular        Color3D
	ColorAmbient         Color3D
	AngleInnerCone       float32
	AngleOuterCone       float32
}

// Camera mirrors aiCamera.
type Camera struct {
	Name          String
	Position      Vector3D
	Up            Vector3D
	LookAt        Vector3D
	HorizontalFOV float32
	ClipPlaneNear float32
	ClipPlaneFar  float32
	Aspect        float32
}
