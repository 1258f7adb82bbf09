package builder

import (
	"testing"

	"github.com/Veridise/llzk-go/pkg/felt"
	"github.com/Veridise/llzk-go/pkg/felt/bn254"
	"github.com/Veridise/llzk-go/pkg/ir"
	"github.com/stretchr/testify/require"
)

type element = bn254.Element

// buildSignal constructs the canonical single-signal struct: one public felt
// field "reg", written by @compute and constrained against a public input by
// @constrain.
func buildSignal(t *testing.T, mb *ModuleBuilder[element]) *StructBuilder[element] {
	sb, err := mb.AddStruct("Signal")
	require.NoError(t, err)
	require.NoError(t, sb.AddField("reg", ir.Felt(), true))
	// @compute
	fb, err := sb.BeginCompute(ir.Param{Type: ir.Felt(), Public: true})
	require.NoError(t, err)
	//
	arg0 := fb.Params()[0]
	self, err := fb.NewInstance()
	require.NoError(t, err)
	require.NoError(t, fb.WriteField(self, "reg", arg0))
	require.NoError(t, fb.Return(self))
	require.NoError(t, fb.Finish())
	// @constrain
	fb, err = sb.BeginConstrain(ir.Param{Type: ir.Felt(), Public: true})
	require.NoError(t, err)
	//
	self, input := fb.Params()[0], fb.Params()[1]
	reg, err := fb.ReadField(self, "reg")
	require.NoError(t, err)
	require.NoError(t, fb.ConstrainEq(reg, input))
	require.NoError(t, fb.Return())
	require.NoError(t, fb.Finish())
	//
	return sb
}

func TestBuildSignal(t *testing.T) {
	mb := NewModule[element]()
	buildSignal(t, mb)
	//
	require.Empty(t, ir.Verify(mb.Module()))
}

// TestBuildMain exercises every operation of the dialect: a "Main" struct
// holding three advice cells, a public output and a Signal subcomponent,
// with constraints -adv_0_0 - adv_1_0 = 0, adv_0_0 * adv_1_0 = adv_2_0,
// adv_0_0 = sig.reg and adv_2_0 = out_0.
func TestBuildMain(t *testing.T) {
	mb := NewModule[element]()
	signal := buildSignal(t, mb)
	//
	sb, err := mb.AddStruct("Main")
	require.NoError(t, err)
	require.NoError(t, sb.AddField("out_0", ir.Felt(), true))
	require.NoError(t, sb.AddField("adv_0_0", ir.Felt(), false))
	require.NoError(t, sb.AddField("adv_1_0", ir.Felt(), false))
	require.NoError(t, sb.AddField("adv_2_0", ir.Felt(), false))
	require.NoError(t, sb.AddField("sig", signal.Def().SelfType(), false))
	// @compute
	fb, err := sb.BeginCompute(
		ir.Param{Type: ir.Felt(), Public: false},
		ir.Param{Type: ir.Felt(), Public: false},
		ir.Param{Type: signal.Def().SelfType(), Public: false})
	require.NoError(t, err)
	//
	arg0, arg1, arg2 := fb.Params()[0], fb.Params()[1], fb.Params()[2]
	self, err := fb.NewInstance()
	require.NoError(t, err)
	require.NoError(t, fb.WriteField(self, "adv_0_0", arg0))
	require.NoError(t, fb.WriteField(self, "adv_1_0", arg1))
	//
	prod, err := fb.Mul(arg0, arg1)
	require.NoError(t, err)
	require.NoError(t, fb.WriteField(self, "adv_2_0", prod))
	require.NoError(t, fb.WriteField(self, "out_0", prod))
	require.NoError(t, fb.WriteField(self, "sig", arg2))
	require.NoError(t, fb.Return(self))
	require.NoError(t, fb.Finish())
	// @constrain
	fb, err = sb.BeginConstrain(ir.Param{Type: ir.Felt(), Public: true})
	require.NoError(t, err)
	//
	self = fb.Params()[0]
	a0, err := fb.ReadField(self, "adv_0_0")
	require.NoError(t, err)
	a1, err := fb.ReadField(self, "adv_1_0")
	require.NoError(t, err)
	a2, err := fb.ReadField(self, "adv_2_0")
	require.NoError(t, err)
	// -adv_0_0 - adv_1_0 = 0
	n0, err := fb.Neg(a0)
	require.NoError(t, err)
	n1, err := fb.Neg(a1)
	require.NoError(t, err)
	sum, err := fb.Add(n0, n1)
	require.NoError(t, err)
	zero, err := fb.Const(felt.Zero[element]())
	require.NoError(t, err)
	require.NoError(t, fb.ConstrainEq(sum, zero))
	// adv_0_0 * adv_1_0 = adv_2_0
	prod, err = fb.Mul(a0, a1)
	require.NoError(t, err)
	require.NoError(t, fb.ConstrainEq(prod, a2))
	// adv_0_0 = sig.reg
	sig, err := fb.ReadField(self, "sig")
	require.NoError(t, err)
	reg, err := fb.ReadField(sig, "reg")
	require.NoError(t, err)
	require.NoError(t, fb.ConstrainEq(a0, reg))
	// adv_2_0 = out_0
	out, err := fb.ReadField(self, "out_0")
	require.NoError(t, err)
	require.NoError(t, fb.ConstrainEq(a2, out))
	require.NoError(t, fb.Return())
	require.NoError(t, fb.Finish())
	//
	require.Empty(t, ir.Verify(mb.Module()))
}

func TestAddDuplicateStruct(t *testing.T) {
	mb := NewModule[element]()
	//
	_, err := mb.AddStruct("Signal")
	require.NoError(t, err)
	//
	_, err = mb.AddStruct("Signal")
	require.ErrorIs(t, err, ir.ErrDuplicateStruct)
}

func TestReadUnknownField(t *testing.T) {
	mb := NewModule[element]()
	sb, err := mb.AddStruct("Signal")
	require.NoError(t, err)
	require.NoError(t, sb.AddField("reg", ir.Felt(), true))
	//
	fb, err := sb.BeginConstrain()
	require.NoError(t, err)
	//
	_, err = fb.ReadField(fb.Params()[0], "missing")
	require.ErrorIs(t, err, ir.ErrNoSuchField)
}

func TestWriteFieldTypeMismatch(t *testing.T) {
	mb := NewModule[element]()
	sb, err := mb.AddStruct("Signal")
	require.NoError(t, err)
	require.NoError(t, sb.AddField("reg", ir.Felt(), true))
	//
	fb, err := sb.BeginCompute()
	require.NoError(t, err)
	//
	self, err := fb.NewInstance()
	require.NoError(t, err)
	// Store a struct instance into a felt field.
	require.ErrorIs(t, fb.WriteField(self, "reg", self), ir.ErrTypeMismatch)
}

func TestArithmeticOnInstance(t *testing.T) {
	mb := NewModule[element]()
	sb, err := mb.AddStruct("Signal")
	require.NoError(t, err)
	//
	fb, err := sb.BeginCompute()
	require.NoError(t, err)
	//
	self, err := fb.NewInstance()
	require.NoError(t, err)
	//
	_, err = fb.Add(self, self)
	require.ErrorIs(t, err, ir.ErrTypeMismatch)
}

func TestOperationAfterReturn(t *testing.T) {
	mb := NewModule[element]()
	sb, err := mb.AddStruct("Signal")
	require.NoError(t, err)
	//
	fb, err := sb.BeginCompute()
	require.NoError(t, err)
	//
	self, err := fb.NewInstance()
	require.NoError(t, err)
	require.NoError(t, fb.Return(self))
	//
	_, err = fb.NewInstance()
	require.ErrorIs(t, err, ir.ErrOperationAfterReturn)
}

func TestReturnWrongValue(t *testing.T) {
	mb := NewModule[element]()
	sb, err := mb.AddStruct("Signal")
	require.NoError(t, err)
	//
	fb, err := sb.BeginCompute(ir.Param{Type: ir.Felt()})
	require.NoError(t, err)
	// Returning a felt from a witness computation.
	require.ErrorIs(t, fb.Return(fb.Params()[0]), ir.ErrTypeMismatch)
}

func TestReturnValueFromConstrain(t *testing.T) {
	mb := NewModule[element]()
	sb, err := mb.AddStruct("Signal")
	require.NoError(t, err)
	//
	fb, err := sb.BeginConstrain()
	require.NoError(t, err)
	require.ErrorIs(t, fb.Return(fb.Params()[0]), ir.ErrMalformedFunction)
}

func TestFinishWithoutReturn(t *testing.T) {
	mb := NewModule[element]()
	sb, err := mb.AddStruct("Signal")
	require.NoError(t, err)
	//
	fb, err := sb.BeginConstrain()
	require.NoError(t, err)
	require.ErrorIs(t, fb.Finish(), ir.ErrMalformedFunction)
}

func TestUseBeforeDefinitionRejected(t *testing.T) {
	mb := NewModule[element]()
	sb, err := mb.AddStruct("Signal")
	require.NoError(t, err)
	//
	fb, err := sb.BeginCompute()
	require.NoError(t, err)
	// Value 5 was never defined.
	_, err = fb.Add(ir.Value(5), ir.Value(5))
	require.ErrorIs(t, err, ir.ErrUseBeforeDefinition)
}

func TestBeginComputeTwice(t *testing.T) {
	mb := NewModule[element]()
	buildSignal(t, mb)
	//
	sb := StructBuilder[element]{mb.Module(), mustLookup(t, mb.Module(), "Signal")}
	//
	_, err := sb.BeginCompute()
	require.ErrorIs(t, err, ir.ErrMalformedFunction)
}

func mustLookup(t *testing.T, m *ir.Module[element], name string) *ir.StructDef[element] {
	sym, ok := m.Symbols().Lookup(name)
	require.True(t, ok)
	//
	def, ok := m.Lookup(sym)
	require.True(t, ok)
	//
	return def
}
