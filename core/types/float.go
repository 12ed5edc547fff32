package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	ErrNonFiniteValue = errors.New("non-finite value can not be encoded")
	ErrVectorLength   = errors.New("unexpected number of vector components")
)

// Float is a float64 whose JSON form always reads as a floating-point
// literal: 45 is written as 45.0, the same bytes the reference scripts put
// on the wire.
type Float float64

func (f Float) IsFinite() bool {
	v := float64(f)
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (f Float) MarshalJSON() ([]byte, error) {
	if !f.IsFinite() {
		return nil, fmt.Errorf("%w: %v", ErrNonFiniteValue, float64(f))
	}
	return appendFloat(nil, float64(f)), nil
}

func (f Float) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

// appendFloat follows encoding/json's choice between 'f' and 'e' notation.
func appendFloat(b []byte, v float64) []byte {
	abs := math.Abs(v)
	format := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}

	start := len(b)
	b = strconv.AppendFloat(b, v, format, -1, 64)
	if format == 'e' {
		// clean up e-09 to e-9
		n := len(b)
		if n-start >= 4 && b[n-4] == 'e' && b[n-3] == '-' && b[n-2] == '0' {
			b[n-2] = b[n-1]
			b = b[:n-1]
		}
		return b
	}

	if !bytes.ContainsRune(b[start:], '.') {
		b = append(b, ".0"...)
	}
	return b
}

// Vec3 is an x, y, z triple.
type Vec3 [3]Float

func NewVec3(x, y, z float64) *Vec3 {
	return &Vec3{Float(x), Float(y), Float(z)}
}

func (v *Vec3) UnmarshalJSON(data []byte) error {
	return unmarshalFixed(data, v[:])
}

func (v *Vec3) isFinite() bool {
	return v[0].IsFinite() && v[1].IsFinite() && v[2].IsFinite()
}

// Quat is a rotation quaternion in x, y, z, w order.
type Quat [4]Float

func NewQuat(x, y, z, w float64) *Quat {
	return &Quat{Float(x), Float(y), Float(z), Float(w)}
}

func (q *Quat) UnmarshalJSON(data []byte) error {
	return unmarshalFixed(data, q[:])
}

func (q *Quat) isFinite() bool {
	return q[0].IsFinite() && q[1].IsFinite() && q[2].IsFinite() && q[3].IsFinite()
}

func unmarshalFixed(data []byte, dst []Float) error {
	var values []Float
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	if len(values) != len(dst) {
		return fmt.Errorf("%w: expected %d, got %d", ErrVectorLength, len(dst), len(values))
	}
	copy(dst, values)
	return nil
}
