package ir

import (
	"testing"

	"github.com/Veridise/llzk-go/pkg/felt/bn254"
	"github.com/stretchr/testify/require"
)

type element = bn254.Element

// signalStruct declares a "Signal" struct with a single public felt field
// "reg" and a valid witness-computation function, leaving the
// constraint-checking function for the test to supply.
func signalStruct(t *testing.T, m *Module[element]) *StructDef[element] {
	def, err := m.Declare("Signal")
	require.NoError(t, err)
	//
	reg := m.Symbols().Intern("reg")
	require.NoError(t, def.AddField(reg, Felt(), true))
	// function.def @compute(%arg0: !felt.type) -> !struct.type<@Signal<[]>>
	compute := NewFunction[element](WitnessComputation,
		[]Param{{Type: Felt(), Public: true}}, def.SelfType())
	compute.Append(&New[element]{Of: def.SelfType()})
	compute.Append(&Write[element]{Instance: 1, Field: reg, Source: 0})
	compute.Append(&Return[element]{Val: 1, HasVal: true})
	require.NoError(t, def.Attach(compute))
	//
	return def
}

// signalConstrain constructs a valid constraint-checking function for the
// Signal struct, without attaching it.
func signalConstrain(m *Module[element], def *StructDef[element]) *Function[element] {
	reg := m.Symbols().Intern("reg")
	//
	constrain := NewFunction[element](ConstraintChecking,
		[]Param{{Type: def.SelfType()}, {Type: Felt(), Public: true}}, nil)
	constrain.Append(&Read[element]{Instance: 0, Field: reg})
	constrain.Append(&ConstrainEq[element]{Lhs: 2, Rhs: 1})
	constrain.Append(&Return[element]{})
	//
	return constrain
}

func TestVerifyValidModule(t *testing.T) {
	m := NewModule[element]()
	def := signalStruct(t, m)
	require.NoError(t, def.Attach(signalConstrain(m, def)))
	//
	require.Empty(t, Verify(m))
}

func TestVerifyMissingConstrain(t *testing.T) {
	m := NewModule[element]()
	signalStruct(t, m)
	//
	diags := Verify(m)
	require.Len(t, diags, 1)
	require.ErrorIs(t, diags[0].Err, ErrMissingFunction)
}

func TestVerifyUseBeforeDefinition(t *testing.T) {
	m := NewModule[element]()
	def := signalStruct(t, m)
	// Read of the Signal field referring to a value defined further down.
	constrain := NewFunction[element](ConstraintChecking,
		[]Param{{Type: def.SelfType()}, {Type: Felt()}}, nil)
	constrain.Append(&ConstrainEq[element]{Lhs: 2, Rhs: 1})
	constrain.Append(&Read[element]{Instance: 0, Field: m.Symbols().Intern("reg")})
	constrain.Append(&Return[element]{})
	require.NoError(t, def.Attach(constrain))
	//
	diags := Verify(m)
	require.Len(t, diags, 1)
	require.ErrorIs(t, diags[0].Err, ErrUseBeforeDefinition)
	require.Equal(t, 0, diags[0].OpIndex)
}

func TestVerifyConstrainStructAgainstFelt(t *testing.T) {
	m := NewModule[element]()
	def := signalStruct(t, m)
	//
	constrain := NewFunction[element](ConstraintChecking,
		[]Param{{Type: def.SelfType()}, {Type: Felt()}}, nil)
	constrain.Append(&ConstrainEq[element]{Lhs: 0, Rhs: 1})
	constrain.Append(&Return[element]{})
	require.NoError(t, def.Attach(constrain))
	//
	diags := Verify(m)
	require.Len(t, diags, 1)
	require.ErrorIs(t, diags[0].Err, ErrTypeMismatch)
}

func TestVerifyOperationAfterReturn(t *testing.T) {
	m := NewModule[element]()
	def := signalStruct(t, m)
	//
	constrain := signalConstrain(m, def)
	constrain.Append(&ConstrainEq[element]{Lhs: 2, Rhs: 1})
	require.NoError(t, def.Attach(constrain))
	//
	diags := Verify(m)
	require.Len(t, diags, 1)
	require.ErrorIs(t, diags[0].Err, ErrOperationAfterReturn)
	require.Equal(t, 3, diags[0].OpIndex)
}

func TestVerifyMissingReturn(t *testing.T) {
	m := NewModule[element]()
	def := signalStruct(t, m)
	//
	constrain := NewFunction[element](ConstraintChecking,
		[]Param{{Type: def.SelfType()}, {Type: Felt()}}, nil)
	constrain.Append(&Read[element]{Instance: 0, Field: m.Symbols().Intern("reg")})
	constrain.Append(&ConstrainEq[element]{Lhs: 2, Rhs: 1})
	require.NoError(t, def.Attach(constrain))
	//
	diags := Verify(m)
	require.Len(t, diags, 1)
	require.ErrorIs(t, diags[0].Err, ErrMalformedFunction)
}

func TestVerifyBadComputeSignature(t *testing.T) {
	m := NewModule[element]()
	def, err := m.Declare("Broken")
	require.NoError(t, err)
	// @compute returning a felt rather than its own instance.
	compute := NewFunction[element](WitnessComputation, nil, Felt())
	compute.Append(&Const[element]{Value: element{}})
	compute.Append(&Return[element]{Val: 0, HasVal: true})
	require.NoError(t, def.Attach(compute))
	//
	constrain := NewFunction[element](ConstraintChecking,
		[]Param{{Type: def.SelfType()}}, nil)
	constrain.Append(&Return[element]{})
	require.NoError(t, def.Attach(constrain))
	//
	diags := Verify(m)
	require.Len(t, diags, 1)
	require.ErrorIs(t, diags[0].Err, ErrMalformedFunction)
}

func TestVerifyWriteTypeMismatch(t *testing.T) {
	m := NewModule[element]()
	def, err := m.Declare("Wrapper")
	require.NoError(t, err)
	//
	inner := m.Symbols().Intern("inner")
	require.NoError(t, def.AddField(inner, def.SelfType(), false))
	// Write a felt into a struct-typed field.
	compute := NewFunction[element](WitnessComputation,
		[]Param{{Type: Felt()}}, def.SelfType())
	compute.Append(&New[element]{Of: def.SelfType()})
	compute.Append(&Write[element]{Instance: 1, Field: inner, Source: 0})
	compute.Append(&Return[element]{Val: 1, HasVal: true})
	require.NoError(t, def.Attach(compute))
	//
	constrain := NewFunction[element](ConstraintChecking,
		[]Param{{Type: def.SelfType()}}, nil)
	constrain.Append(&Return[element]{})
	require.NoError(t, def.Attach(constrain))
	//
	diags := Verify(m)
	require.Len(t, diags, 1)
	require.ErrorIs(t, diags[0].Err, ErrTypeMismatch)
	require.Equal(t, 1, diags[0].OpIndex)
}

func TestVerifyNewOfUnknownStruct(t *testing.T) {
	m := NewModule[element]()
	def := signalStruct(t, m)
	require.NoError(t, def.Attach(signalConstrain(m, def)))
	//
	ghost := NewStructType(m.Symbols().Intern("Ghost"))
	def2, err := m.Declare("Outer")
	require.NoError(t, err)
	//
	compute := NewFunction[element](WitnessComputation, nil, def2.SelfType())
	compute.Append(&New[element]{Of: ghost})
	compute.Append(&New[element]{Of: def2.SelfType()})
	compute.Append(&Return[element]{Val: 1, HasVal: true})
	require.NoError(t, def2.Attach(compute))
	//
	constrain := NewFunction[element](ConstraintChecking,
		[]Param{{Type: def2.SelfType()}}, nil)
	constrain.Append(&Return[element]{})
	require.NoError(t, def2.Attach(constrain))
	//
	diags := Verify(m)
	require.Len(t, diags, 1)
	require.ErrorIs(t, diags[0].Err, ErrUnknownStruct)
}

func TestVerifyGenericArityMismatch(t *testing.T) {
	m := NewModule[element]()
	def := signalStruct(t, m)
	require.NoError(t, def.Attach(signalConstrain(m, def)))
	// A reference to Signal carrying a generic argument it does not declare,
	// used both as a field type and as the target of an instantiation.
	overApplied := NewStructType(def.Name(), Felt())
	def2, err := m.Declare("Outer")
	require.NoError(t, err)
	require.NoError(t, def2.AddField(m.Symbols().Intern("sig"), overApplied, false))
	//
	compute := NewFunction[element](WitnessComputation, nil, def2.SelfType())
	compute.Append(&New[element]{Of: overApplied})
	compute.Append(&New[element]{Of: def2.SelfType()})
	compute.Append(&Return[element]{Val: 1, HasVal: true})
	require.NoError(t, def2.Attach(compute))
	//
	constrain := NewFunction[element](ConstraintChecking,
		[]Param{{Type: def2.SelfType()}}, nil)
	constrain.Append(&Return[element]{})
	require.NoError(t, def2.Attach(constrain))
	//
	diags := Verify(m)
	require.Len(t, diags, 2)
	require.ErrorIs(t, diags[0].Err, ErrArityMismatch)
	require.Equal(t, -1, diags[0].OpIndex)
	require.ErrorIs(t, diags[1].Err, ErrArityMismatch)
	require.Equal(t, 0, diags[1].OpIndex)
}

func TestVerifyBatchesMultipleFaults(t *testing.T) {
	m := NewModule[element]()
	def := signalStruct(t, m)
	// Two independent faults in one function body.
	constrain := NewFunction[element](ConstraintChecking,
		[]Param{{Type: def.SelfType()}, {Type: Felt()}}, nil)
	constrain.Append(&ConstrainEq[element]{Lhs: 0, Rhs: 1})
	constrain.Append(&Add[element]{Lhs: 0, Rhs: 1})
	constrain.Append(&Return[element]{})
	require.NoError(t, def.Attach(constrain))
	//
	diags := Verify(m)
	require.Len(t, diags, 2)
	require.ErrorIs(t, diags[0].Err, ErrTypeMismatch)
	require.ErrorIs(t, diags[1].Err, ErrTypeMismatch)
}
