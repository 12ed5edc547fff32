package types

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyParams          = errors.New("update params carry no sequence")
	ErrEmptySequence        = errors.New("update sequence is empty")
	ErrMixedUpdateKinds     = errors.New("update params mix several update kinds")
	ErrNoTransformComponent = errors.New("joint transform has no component")
	ErrAmbiguousTransform   = errors.New("joint transform has more than one component")
)

type (
	JointId       uint32
	MorphTargetId uint32
)

// JointTransform requests a new local transform for one skeletal joint.
// The server applies exactly one component per element, so exactly one of
// the pointer fields must be set.
type JointTransform struct {
	JointId JointId `json:"joint_id"`

	// RotationAngle holds Euler XYZ angles in degrees.
	RotationAngle *Vec3 `json:"rotation_angle,omitempty"`
	Translation   *Vec3 `json:"translation,omitempty"`
	Scale         *Vec3 `json:"scale,omitempty"`
	Rotation      *Quat `json:"rotation,omitempty"`
}

func NewJointRotation(id JointId, x, y, z float64) JointTransform {
	return JointTransform{JointId: id, RotationAngle: NewVec3(x, y, z)}
}

func NewJointTranslation(id JointId, x, y, z float64) JointTransform {
	return JointTransform{JointId: id, Translation: NewVec3(x, y, z)}
}

func NewJointScale(id JointId, x, y, z float64) JointTransform {
	return JointTransform{JointId: id, Scale: NewVec3(x, y, z)}
}

func NewJointQuatRotation(id JointId, x, y, z, w float64) JointTransform {
	return JointTransform{JointId: id, Rotation: NewQuat(x, y, z, w)}
}

func (t *JointTransform) Validate() error {
	set := 0
	finite := true
	if t.RotationAngle != nil {
		set++
		finite = finite && t.RotationAngle.isFinite()
	}
	if t.Translation != nil {
		set++
		finite = finite && t.Translation.isFinite()
	}
	if t.Scale != nil {
		set++
		finite = finite && t.Scale.isFinite()
	}
	if t.Rotation != nil {
		set++
		finite = finite && t.Rotation.isFinite()
	}

	switch {
	case set == 0:
		return fmt.Errorf("%w: joint %d", ErrNoTransformComponent, t.JointId)
	case set > 1:
		return fmt.Errorf("%w: joint %d", ErrAmbiguousTransform, t.JointId)
	case !finite:
		return fmt.Errorf("%w: joint %d", ErrNonFiniteValue, t.JointId)
	}
	return nil
}

// MorphWeight sets the blend weight of one morph target. Weights are
// conventionally within [0, 1]; the range is left to the server.
type MorphWeight struct {
	TargetId MorphTargetId `json:"target_id"`
	Weight   Float         `json:"weight"`
}

func NewMorphWeight(id MorphTargetId, weight float64) MorphWeight {
	return MorphWeight{TargetId: id, Weight: Float(weight)}
}

func (w *MorphWeight) Validate() error {
	if !w.Weight.IsFinite() {
		return fmt.Errorf("%w: morph target %d", ErrNonFiniteValue, w.TargetId)
	}
	return nil
}

type UpdateKind string

const (
	UpdateKindNone                    UpdateKind = ""
	UpdateKindJointTransforms         UpdateKind = "joint_transforms"
	UpdateKindAdditiveJointTransforms UpdateKind = "additive_joint_transforms"
	UpdateKindMorphWeights            UpdateKind = "morph_weights"
)

// UpdateParams is the params object of the "update" call. A nil sequence is
// omitted from the wire.
type UpdateParams struct {
	JointTransforms         []JointTransform `json:"joint_transforms,omitempty"`
	AdditiveJointTransforms []JointTransform `json:"additive_joint_transforms,omitempty"`
	MorphWeights            []MorphWeight    `json:"morph_weights,omitempty"`
}

func NewJointTransformsParams(transforms ...JointTransform) *UpdateParams {
	return &UpdateParams{JointTransforms: transforms}
}

func NewAdditiveJointTransformsParams(transforms ...JointTransform) *UpdateParams {
	return &UpdateParams{AdditiveJointTransforms: transforms}
}

func NewMorphWeightsParams(weights ...MorphWeight) *UpdateParams {
	return &UpdateParams{MorphWeights: weights}
}

// Kind returns the first present update kind, in the order the server
// checks them.
func (p *UpdateParams) Kind() UpdateKind {
	switch {
	case p.MorphWeights != nil:
		return UpdateKindMorphWeights
	case p.JointTransforms != nil:
		return UpdateKindJointTransforms
	case p.AdditiveJointTransforms != nil:
		return UpdateKindAdditiveJointTransforms
	}
	return UpdateKindNone
}

// Len returns the number of elements of the present sequence.
func (p *UpdateParams) Len() int {
	return len(p.JointTransforms) + len(p.AdditiveJointTransforms) + len(p.MorphWeights)
}

func (p *UpdateParams) Validate() error {
	if p == nil {
		return ErrEmptyParams
	}

	present := 0
	for _, kind := range []UpdateKind{
		UpdateKindJointTransforms,
		UpdateKindAdditiveJointTransforms,
		UpdateKindMorphWeights,
	} {
		n, ok := p.lenOf(kind)
		if !ok {
			continue
		}
		if n == 0 {
			return fmt.Errorf("%w: %s", ErrEmptySequence, kind)
		}
		present++
	}

	switch {
	case present == 0:
		return ErrEmptyParams
	case present > 1:
		return ErrMixedUpdateKinds
	}

	for i := range p.JointTransforms {
		if err := p.JointTransforms[i].Validate(); err != nil {
			return err
		}
	}
	for i := range p.AdditiveJointTransforms {
		if err := p.AdditiveJointTransforms[i].Validate(); err != nil {
			return err
		}
	}
	for i := range p.MorphWeights {
		if err := p.MorphWeights[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// lenOf reports the length of the sequence and whether it is present.
func (p *UpdateParams) lenOf(kind UpdateKind) (int, bool) {
	switch kind {
	case UpdateKindJointTransforms:
		return len(p.JointTransforms), p.JointTransforms != nil
	case UpdateKindAdditiveJointTransforms:
		return len(p.AdditiveJointTransforms), p.AdditiveJointTransforms != nil
	case UpdateKindMorphWeights:
		return len(p.MorphWeights), p.MorphWeights != nil
	}
	return 0, false
}
