package qdu

import (
	"math"
	"math/cmplx"
)

// Pattern ids naming every entry in the interaction-pattern catalogue, plus
// the supplemental PhiXRotate and the QualitativeY alias (see DESIGN.md).
const (
	PatternIdentity        = "Identity"
	PatternQualityFlip     = "QualityFlip"
	PatternPhaseIntroduce  = "PhaseIntroduce"
	PatternPhaseFlipY      = "PhaseFlipY"
	PatternQualitativeY    = "QualitativeY" // alias of PhaseFlipY, historical naming
	PatternSuperposition   = "Superposition"
	PatternHalfPhase       = "HalfPhase"
	PatternHalfPhaseInv    = "HalfPhase_Inv"
	PatternQuarterPhase    = "QuarterPhase"
	PatternQuarterPhaseInv = "QuarterPhase_Inv"
	PatternSqrtFlip        = "SqrtFlip"
	PatternSqrtFlipInv     = "SqrtFlip_Inv"
	PatternPhiRotate       = "PhiRotate"
	PatternPhiXRotate      = "PhiXRotate"
)

// phi is the golden ratio, used by the PhiRotate/PhiXRotate rotation angle
// pi/phi.
const phi = 1.618033988749895

// ResolvePattern resolves a pattern_id string to its 2x2 matrix. Unknown ids
// are a fatal UnknownPattern error.
func ResolvePattern(patternId string) (Matrix2, error) {
	i := complex(0, 1)
	switch patternId {
	case PatternIdentity:
		return identity2, nil
	case PatternQualityFlip:
		return Matrix2{{0, 1}, {1, 0}}, nil
	case PatternPhaseIntroduce:
		return Matrix2{{1, 0}, {0, -1}}, nil
	case PatternPhaseFlipY, PatternQualitativeY:
		return Matrix2{{0, -i}, {i, 0}}, nil
	case PatternSuperposition:
		h := complex(1/math.Sqrt2, 0)
		return Matrix2{{h, h}, {h, -h}}, nil
	case PatternHalfPhase:
		return Matrix2{{1, 0}, {0, i}}, nil
	case PatternHalfPhaseInv:
		return Matrix2{{1, 0}, {0, -i}}, nil
	case PatternQuarterPhase:
		return Matrix2{{1, 0}, {0, cmplx.Exp(i * complex(math.Pi/4, 0))}}, nil
	case PatternQuarterPhaseInv:
		return Matrix2{{1, 0}, {0, cmplx.Exp(-i * complex(math.Pi/4, 0))}}, nil
	case PatternSqrtFlip:
		return Matrix2{
			{complex(0.5, 0.5), complex(0.5, -0.5)},
			{complex(0.5, -0.5), complex(0.5, 0.5)},
		}, nil
	case PatternSqrtFlipInv:
		return Matrix2{
			{complex(0.5, -0.5), complex(0.5, 0.5)},
			{complex(0.5, 0.5), complex(0.5, -0.5)},
		}, nil
	case PatternPhiRotate:
		// Standard half-angle Ry convention: the matrix carries
		// theta/2, not theta directly, so the resulting amplitudes
		// (cos(theta/2), sin(theta/2)) both land in the first
		// quadrant for theta = pi/phi.
		a := (math.Pi / phi) / 2
		c := complex(math.Cos(a), 0)
		s := complex(math.Sin(a), 0)
		return Matrix2{{c, -s}, {s, c}}, nil
	case PatternPhiXRotate:
		// A supplemental rotation alongside PhiRotate, using the
		// standard half-angle Rx convention.
		a := (math.Pi / phi) / 2
		c := complex(math.Cos(a), 0)
		s := -i * complex(math.Sin(a), 0)
		return Matrix2{{c, s}, {s, c}}, nil
	default:
		return Matrix2{}, newErr(KindUnknownPattern, "Unknown pattern: %s", patternId)
	}
}

// PhaseShiftMatrix builds diag(1, e^{i*theta}) directly. PhaseShift is not
// a catalogue entry; it composes this matrix inline.
func PhaseShiftMatrix(theta float64) Matrix2 {
	return Matrix2{{1, 0}, {0, cmplx.Exp(complex(0, theta))}}
}
