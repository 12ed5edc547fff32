package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidShorthand = errors.New("invalid update shorthand")

// TransformComponent selects which field of a JointTransform a shorthand
// value fills.
type TransformComponent int

const (
	ComponentRotationAngle TransformComponent = iota
	ComponentTranslation
	ComponentScale
	ComponentRotation
)

func (c TransformComponent) String() string {
	switch c {
	case ComponentRotationAngle:
		return "rotation_angle"
	case ComponentTranslation:
		return "translation"
	case ComponentScale:
		return "scale"
	case ComponentRotation:
		return "rotation"
	}
	return fmt.Sprintf("TransformComponent(%d)", int(c))
}

func (c TransformComponent) arity() int {
	if c == ComponentRotation {
		return 4
	}
	return 3
}

// ParseJointTransform parses "ID:X,Y,Z" (or "ID:X,Y,Z,W" for quaternion
// rotations) into a transform with the given component set.
func ParseJointTransform(s string, component TransformComponent) (JointTransform, error) {
	idStr, valuesStr, ok := strings.Cut(s, ":")
	if !ok {
		return JointTransform{}, fmt.Errorf("%w: %q: expected ID:%s", ErrInvalidShorthand, s, component.placeholder())
	}

	id, err := parseId(idStr)
	if err != nil {
		return JointTransform{}, fmt.Errorf("%w: %q: joint id: %w", ErrInvalidShorthand, s, err)
	}

	values, err := parseFloats(valuesStr, component.arity())
	if err != nil {
		return JointTransform{}, fmt.Errorf("%w: %q: %w", ErrInvalidShorthand, s, err)
	}

	t := JointTransform{JointId: JointId(id)}
	switch component {
	case ComponentRotationAngle:
		t.RotationAngle = &Vec3{values[0], values[1], values[2]}
	case ComponentTranslation:
		t.Translation = &Vec3{values[0], values[1], values[2]}
	case ComponentScale:
		t.Scale = &Vec3{values[0], values[1], values[2]}
	case ComponentRotation:
		t.Rotation = &Quat{values[0], values[1], values[2], values[3]}
	default:
		return JointTransform{}, fmt.Errorf("%w: unknown component %s", ErrInvalidShorthand, component)
	}
	return t, nil
}

// ParseMorphWeight parses "ID:WEIGHT".
func ParseMorphWeight(s string) (MorphWeight, error) {
	idStr, weightStr, ok := strings.Cut(s, ":")
	if !ok {
		return MorphWeight{}, fmt.Errorf("%w: %q: expected ID:WEIGHT", ErrInvalidShorthand, s)
	}

	id, err := parseId(idStr)
	if err != nil {
		return MorphWeight{}, fmt.Errorf("%w: %q: target id: %w", ErrInvalidShorthand, s, err)
	}

	values, err := parseFloats(weightStr, 1)
	if err != nil {
		return MorphWeight{}, fmt.Errorf("%w: %q: %w", ErrInvalidShorthand, s, err)
	}
	return MorphWeight{TargetId: MorphTargetId(id), Weight: values[0]}, nil
}

func (c TransformComponent) placeholder() string {
	if c.arity() == 4 {
		return "X,Y,Z,W"
	}
	return "X,Y,Z"
}

func parseId(s string) (uint32, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(id), nil
}

func parseFloats(s string, n int) ([]Float, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d values, got %d", n, len(parts))
	}

	res := make([]Float, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		res[i] = Float(v)
	}
	return res, nil
}
