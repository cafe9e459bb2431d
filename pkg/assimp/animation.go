package assimp

import (
	"fmt"
	"iter"
	"sort"

	"github.com/Faultbox/goassimp/pkg/assimp/abi"
	"github.com/Faultbox/goassimp/pkg/math"
)

// AnimBehaviour controls how a channel behaves outside its key range.
type AnimBehaviour int32

const (
	AnimDefault  AnimBehaviour = AnimBehaviour(abi.AnimBehaviourDefault)
	AnimConstant AnimBehaviour = AnimBehaviour(abi.AnimBehaviourConstant)
	AnimLinear   AnimBehaviour = AnimBehaviour(abi.AnimBehaviourLinear)
	AnimRepeat   AnimBehaviour = AnimBehaviour(abi.AnimBehaviourRepeat)
)

func (b AnimBehaviour) String() string {
	switch b {
	case AnimDefault:
		return "Default"
	case AnimConstant:
		return "Constant"
	case AnimLinear:
		return "Linear"
	case AnimRepeat:
		return "Repeat"
	}
	return fmt.Sprintf("AnimBehaviour(%d)", int32(b))
}

// VectorKey is a timed position or scaling key. Time is in ticks.
type VectorKey struct {
	Time  float64
	Value math.Vec3
}

// QuatKey is a timed rotation key.
type QuatKey struct {
	Time  float64
	Value math.Quat
}

// MeshKey selects an anim mesh at a given time.
type MeshKey struct {
	Time     float64
	AnimMesh int
}

// Animation is a view of one animation.
type Animation struct {
	o *owner
	p *abi.Animation
}

func (a Animation) raw() *abi.Animation {
	a.o.check()
	return a.p
}

// Name returns the animation name; it may be empty when the file holds a
// single animation.
func (a Animation) Name() string {
	return a.raw().Name.String()
}

// Duration is the length of the animation in ticks.
func (a Animation) Duration() float64 {
	return a.raw().Duration
}

// TicksPerSecond returns 0 when the file did not specify a rate.
func (a Animation) TicksPerSecond() float64 {
	return a.raw().TicksPerSecond
}

// Seconds returns the duration in seconds, assuming 25 ticks per second
// when the rate is unspecified.
func (a Animation) Seconds() float64 {
	r := a.raw()
	tps := r.TicksPerSecond
	if tps == 0 {
		tps = 25
	}
	return r.Duration / tps
}

// NumChannels returns the number of node channels.
func (a Animation) NumChannels() int {
	return int(a.raw().NumChannels)
}

// Channel returns node channel i and panics if i is out of range.
func (a Animation) Channel(i int) NodeAnim {
	r := a.raw()
	return NodeAnim{o: a.o, p: index(r.Channels, r.NumChannels, i)}
}

// Channels iterates over the node channels in index order.
func (a Animation) Channels() iter.Seq2[int, NodeAnim] {
	return each(a.o, func() (**abi.NodeAnim, uint32) { r := a.raw(); return r.Channels, r.NumChannels },
		func(p *abi.NodeAnim) NodeAnim { return NodeAnim{o: a.o, p: p} })
}

// FindChannel returns the channel animating the node named name.
func (a Animation) FindChannel(name string) (NodeAnim, bool) {
	for _, ch := range a.Channels() {
		if ch.NodeName() == name {
			return ch, true
		}
	}
	return NodeAnim{}, false
}

// NumMeshChannels returns the number of vertex-animation channels.
func (a Animation) NumMeshChannels() int {
	return int(a.raw().NumMeshChannels)
}

// MeshChannel returns mesh channel i and panics if i is out of range.
func (a Animation) MeshChannel(i int) MeshAnim {
	r := a.raw()
	return MeshAnim{o: a.o, p: index(r.MeshChannels, r.NumMeshChannels, i)}
}

// MeshChannels iterates over the vertex-animation channels.
func (a Animation) MeshChannels() iter.Seq2[int, MeshAnim] {
	return each(a.o, func() (**abi.MeshAnim, uint32) { r := a.raw(); return r.MeshChannels, r.NumMeshChannels },
		func(p *abi.MeshAnim) MeshAnim { return MeshAnim{o: a.o, p: p} })
}

// NodeAnim is the animation channel of a single node.
type NodeAnim struct {
	o *owner
	p *abi.NodeAnim
}

func (n NodeAnim) raw() *abi.NodeAnim {
	n.o.check()
	return n.p
}

// NodeName names the node the channel affects.
func (n NodeAnim) NodeName() string {
	return n.raw().NodeName.String()
}

// PreState says how the node behaves before the first key.
func (n NodeAnim) PreState() AnimBehaviour {
	return AnimBehaviour(n.raw().PreState)
}

// PostState says how the node behaves after the last key.
func (n NodeAnim) PostState() AnimBehaviour {
	return AnimBehaviour(n.raw().PostState)
}

// NumPositionKeys returns the number of translation keys.
func (n NodeAnim) NumPositionKeys() int { return int(n.raw().NumPositionKeys) }

// NumRotationKeys returns the number of rotation keys.
func (n NodeAnim) NumRotationKeys() int { return int(n.raw().NumRotationKeys) }

// NumScalingKeys returns the number of scaling keys.
func (n NodeAnim) NumScalingKeys() int { return int(n.raw().NumScalingKeys) }

// PositionKeys returns a copy of the position keys.
func (n NodeAnim) PositionKeys() []VectorKey {
	r := n.raw()
	return vectorKeys(r.PositionKeys, r.NumPositionKeys)
}

// RotationKeys returns a copy of the rotation keys.
func (n NodeAnim) RotationKeys() []QuatKey {
	r := n.raw()
	src := slice(r.RotationKeys, r.NumRotationKeys)
	out := make([]QuatKey, len(src))
	for i, k := range src {
		out[i] = QuatKey{Time: k.Time, Value: k.Value.Quat()}
	}
	return out
}

// ScalingKeys returns a copy of the scaling keys.
func (n NodeAnim) ScalingKeys() []VectorKey {
	r := n.raw()
	return vectorKeys(r.ScalingKeys, r.NumScalingKeys)
}

func vectorKeys(base *abi.VectorKey, n uint32) []VectorKey {
	src := slice(base, n)
	out := make([]VectorKey, len(src))
	for i, k := range src {
		out[i] = VectorKey{Time: k.Time, Value: k.Value.Vec3()}
	}
	return out
}

// Sample interpolates the channel at time t (ticks) and returns the
// node's local transform. Outside the key range the boundary key is held;
// a channel with no keys of a kind contributes the identity for it.
func (n NodeAnim) Sample(t float64) math.Mat4 {
	pos := sampleVec(n.PositionKeys(), t, math.Vec3{})
	rot := sampleQuat(n.RotationKeys(), t)
	scl := sampleVec(n.ScalingKeys(), t, math.Vec3{X: 1, Y: 1, Z: 1})
	return math.TRS(pos, rot, scl)
}

// keySpan finds the pair of keys around t and the blend factor between
// them.
func keySpan(n int, time func(int) float64, t float64) (int, int, float32) {
	if n == 1 || t <= time(0) {
		return 0, 0, 0
	}
	if t >= time(n-1) {
		return n - 1, n - 1, 0
	}
	j := sort.Search(n, func(i int) bool { return time(i) > t })
	i := j - 1
	dt := time(j) - time(i)
	if dt <= 0 {
		return i, i, 0
	}
	return i, j, float32((t - time(i)) / dt)
}

func sampleVec(keys []VectorKey, t float64, def math.Vec3) math.Vec3 {
	if len(keys) == 0 {
		return def
	}
	i, j, f := keySpan(len(keys), func(k int) float64 { return keys[k].Time }, t)
	return keys[i].Value.Lerp(keys[j].Value, f)
}

func sampleQuat(keys []QuatKey, t float64) math.Quat {
	if len(keys) == 0 {
		return math.QuatIdentity()
	}
	i, j, f := keySpan(len(keys), func(k int) float64 { return keys[k].Time }, t)
	return keys[i].Value.Slerp(keys[j].Value, f).Normalize()
}

// MeshAnim is a vertex-animation channel.
type MeshAnim struct {
	o *owner
	p *abi.MeshAnim
}

func (m MeshAnim) raw() *abi.MeshAnim {
	m.o.check()
	return m.p
}

// Name names the mesh the channel affects.
func (m MeshAnim) Name() string {
	return m.raw().Name.String()
}

// Keys returns a copy of the keys.
func (m MeshAnim) Keys() []MeshKey {
	r := m.raw()
	src := slice(r.Keys, r.NumKeys)
	out := make([]MeshKey, len(src))
	for i, k := range src {
		out[i] = MeshKey{Time: k.Time, AnimMesh: int(k.Value)}
	}
	return out
}
