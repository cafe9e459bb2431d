package assimp

import (
	"fmt"

	"github.com/Faultbox/goassimp/pkg/assimp/abi"
	"github.com/Faultbox/goassimp/pkg/math"
)

// LightType is aiLightSourceType.
type LightType int32

const (
	LightUndefined   LightType = LightType(abi.LightUndefined)
	LightDirectional LightType = LightType(abi.LightDirectional)
	LightPoint       LightType = LightType(abi.LightPoint)
	LightSpot        LightType = LightType(abi.LightSpot)
)

func (t LightType) String() string {
	switch t {
	case LightUndefined:
		return "Undefined"
	case LightDirectional:
		return "Directional"
	case LightPoint:
		return "Point"
	case LightSpot:
		return "Spot"
	}
	return fmt.Sprintf("LightType(%d)", int32(t))
}

// Light is a view of one light source.
type Light struct {
	o *owner
	p *abi.Light
}

func (l Light) raw() *abi.Light {
	l.o.check()
	return l.p
}

// Name is the name of the node that places the light.
func (l Light) Name() string { return l.raw().Name.String() }

// Type returns the kind of light source.
func (l Light) Type() LightType { return LightType(l.raw().Type) }

// Position is the light position in node space; it is unused for
// directional lights.
func (l Light) Position() math.Vec3 { return l.raw().Position.Vec3() }

// Direction is the light direction in node space; it is unused for
// point lights.
func (l Light) Direction() math.Vec3 { return l.raw().Direction.Vec3() }

// Diffuse is the diffuse colour, premultiplied by intensity and
// possibly above 1.
func (l Light) Diffuse() math.Vec3 { return l.raw().ColorDiffuse.Vec3() }

// Specular is the specular colour, premultiplied by intensity.
func (l Light) Specular() math.Vec3 { return l.raw().ColorSpecular.Vec3() }

// Ambient is the ambient colour, premultiplied by intensity.
func (l Light) Ambient() math.Vec3 { return l.raw().ColorAmbient.Vec3() }

// Attenuation returns the constant, linear and quadratic factors.
func (l Light) Attenuation() (constant, linear, quadratic float32) {
	r := l.raw()
	return r.AttenuationConstant, r.AttenuationLinear, r.AttenuationQuadratic
}

// Cone returns the inner and outer cone angles of a spot light in radians.
func (l Light) Cone() (inner, outer float32) {
	r := l.raw()
	return r.AngleInnerCone, r.AngleOuterCone
}
