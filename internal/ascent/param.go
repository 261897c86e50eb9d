package ascent

import (
	"math"
	"strconv"
)

// Parameter represents one tunable dimension: its current value and its
// encoding mode. Integer is meaningful only when Ratio is false.
type Parameter struct {
	Value   float64
	Ratio   bool
	Integer bool
}

// Bounds is the closed search interval for one dimension.
type Bounds struct {
	Low  float64
	High float64
}

// Result is a scored full-dimensional parameter assignment. Value is a score
// to be maximized; Settings has one entry per dimension, in the original
// parameter order.
type Result struct {
	Value    float64
	Settings []Parameter
}

// ValueKind tags the encoding of a value crossing the objective boundary.
type ValueKind int

const (
	// KindInt is a plain integral value
	KindInt ValueKind = iota
	// KindFloat is a plain floating-point value
	KindFloat
	// KindRatio is a volatility-relative magnitude; its textual wire form
	// carries a trailing scale marker (e.g. "10k")
	KindRatio
)

// EncodedValue is the tagged wire value passed to an Objective. The kind is
// explicit so both sides of the boundary agree on the parameter mode without
// inspecting runtime types.
type EncodedValue struct {
	Kind  ValueKind
	Int   int64   // payload when Kind is KindInt
	Float float64 // payload when Kind is KindFloat or KindRatio
}

// IntValue builds an integral encoded value
func IntValue(i int64) EncodedValue {
	return EncodedValue{Kind: KindInt, Int: i}
}

// FloatValue builds a floating-point encoded value
func FloatValue(v float64) EncodedValue {
	return EncodedValue{Kind: KindFloat, Float: v}
}

// RatioValue builds a volatility-relative encoded value
func RatioValue(v float64) EncodedValue {
	return EncodedValue{Kind: KindRatio, Float: v}
}

// Num returns the numeric payload regardless of kind.
func (e EncodedValue) Num() float64 {
	if e.Kind == KindInt {
		return float64(e.Int)
	}
	return e.Float
}

// String renders the textual wire form. Ratio values keep the trailing scale
// marker, integral ratios render without a decimal point ("10k").
func (e EncodedValue) String() string {
	switch e.Kind {
	case KindInt:
		return strconv.FormatInt(e.Int, 10)
	case KindRatio:
		return strconv.FormatFloat(e.Float, 'f', -1, 64) + "k"
	default:
		return strconv.FormatFloat(e.Float, 'f', -1, 64)
	}
}

// Encode converts a candidate value into the wire form dictated by the
// parameter's mode: ratio parameters keep their magnitude and gain the ratio
// kind, integral parameters are rounded to the nearest whole number.
func (p Parameter) Encode(value float64) EncodedValue {
	switch {
	case p.Ratio:
		return RatioValue(value)
	case p.Integer:
		return IntValue(int64(math.Round(value)))
	default:
		return FloatValue(value)
	}
}

// EncodeParams encodes every parameter at its current value, preserving order.
func EncodeParams(params []Parameter) []EncodedValue {
	encoded := make([]EncodedValue, len(params))
	for i, p := range params {
		encoded[i] = p.Encode(p.Value)
	}
	return encoded
}

// Decode recovers the parameter form of a wire value. A ratio value always
// decodes with Integer unset, even when its magnitude is whole.
func (e EncodedValue) Decode() Parameter {
	switch e.Kind {
	case KindRatio:
		return Parameter{Value: e.Float, Ratio: true}
	case KindInt:
		return Parameter{Value: float64(e.Int), Integer: true}
	default:
		return Parameter{Value: e.Float}
	}
}

// DecodeValues decodes an echoed settings vector, preserving order.
func DecodeValues(values []EncodedValue) []Parameter {
	params := make([]Parameter, len(values))
	for i, v := range values {
		params[i] = v.Decode()
	}
	return params
}

// cloneParams copies a parameter vector so results never alias caller slices.
func cloneParams(params []Parameter) []Parameter {
	cloned := make([]Parameter, len(params))
	copy(cloned, params)
	return cloned
}
