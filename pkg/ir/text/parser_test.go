package text

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/Veridise/llzk-go/pkg/felt/bn254"
	"github.com/Veridise/llzk-go/pkg/ir"
	"github.com/Veridise/llzk-go/pkg/util/source"
	"github.com/stretchr/testify/require"
)

type element = bn254.Element

func parseString(t *testing.T, input string) (*ir.Module[element], []source.SyntaxError) {
	return Parse[element](source.NewFile("test", []byte(input)))
}

func TestParseSignalModule(t *testing.T) {
	bytes, err := os.ReadFile("testdata/signal.llzk")
	require.NoError(t, err)
	//
	module, errs := Parse[element](source.NewFile("signal.llzk", bytes))
	require.Empty(t, errs)
	require.Empty(t, ir.Verify(module))
	// Structure checks
	require.Len(t, module.Structs(), 1)
	//
	def := module.Structs()[0]
	require.Equal(t, "Signal", module.Symbols().Name(def.Name()))
	require.Len(t, def.Fields(), 1)
	require.True(t, def.Fields()[0].Public)
	require.NotNil(t, def.Compute())
	require.NotNil(t, def.Constrain())
	require.Len(t, def.Compute().Body(), 3)
	require.Len(t, def.Constrain().Body(), 3)
}

func TestParseEmptyModule(t *testing.T) {
	module, errs := parseString(t, "module attributes {veridise.lang = \"llzk\"} {\n}\n")
	require.Empty(t, errs)
	require.Empty(t, module.Structs())
}

func TestParseGenericParams(t *testing.T) {
	module, errs := parseString(t,
		"module attributes {veridise.lang = \"llzk\"} {\n"+
			"  struct.def @Pair<[@T, @U]> {\n"+
			"    struct.field @fst : @T\n"+
			"  }\n"+
			"}\n")
	require.Empty(t, errs)
	//
	def := module.Structs()[0]
	require.Len(t, def.Params(), 2)
	require.Equal(t, "T", module.Symbols().Name(def.Params()[0]))
	//
	field := def.Fields()[0]
	require.True(t, field.Type.Equals(ir.TypeVar{Name: def.Params()[0]}))
}

func TestParseWrongLanguage(t *testing.T) {
	_, errs := parseString(t, "module attributes {veridise.lang = \"mlir\"} {\n}\n")
	require.Len(t, errs, 1)
	require.Contains(t, errs[0].Message(), "llzk")
}

func TestParseDuplicateStruct(t *testing.T) {
	_, errs := parseString(t,
		"module attributes {veridise.lang = \"llzk\"} {\n"+
			"  struct.def @A<[]> {\n  }\n"+
			"  struct.def @A<[]> {\n  }\n"+
			"}\n")
	require.Len(t, errs, 1)
	require.Contains(t, errs[0].Message(), "duplicate struct")
	// Error points at the second declaration.
	line := errs[0].Line()
	require.Equal(t, 4, line.Number())
}

func TestParseDuplicateField(t *testing.T) {
	_, errs := parseString(t,
		"module attributes {veridise.lang = \"llzk\"} {\n"+
			"  struct.def @A<[]> {\n"+
			"    struct.field @x : !felt.type\n"+
			"    struct.field @x : !felt.type\n"+
			"  }\n"+
			"}\n")
	require.Len(t, errs, 1)
	require.Contains(t, errs[0].Message(), "duplicate field")
}

func TestParseUnknownOperation(t *testing.T) {
	_, errs := parseString(t, functionWithBody("felt.div %arg0, %arg0"))
	require.Len(t, errs, 1)
	require.Contains(t, errs[0].Message(), "unknown operation")
}

func TestParseUnknownValue(t *testing.T) {
	_, errs := parseString(t, functionWithBody(
		"constrain.eq %ghost, %arg1 : !felt.type\n      function.return"))
	require.Len(t, errs, 1)
	require.Contains(t, errs[0].Message(), "unknown value")
}

func TestParseDuplicateValueName(t *testing.T) {
	_, errs := parseString(t, functionWithBody(
		"%0 = felt.const 1\n      %0 = felt.const 2\n      function.return"))
	require.Len(t, errs, 1)
	require.Contains(t, errs[0].Message(), "already defined")
}

func TestParseOversizedConstant(t *testing.T) {
	literal := "1"
	for i := 0; i < 200; i++ {
		literal += "000"
	}
	//
	_, errs := parseString(t, functionWithBody(fmt.Sprintf("%%0 = felt.const %s\n      function.return", literal)))
	require.Len(t, errs, 1)
	require.Contains(t, errs[0].Message(), "out of range")
}

func TestParseResultOnVoidOperation(t *testing.T) {
	_, errs := parseString(t, functionWithBody("%0 = function.return"))
	require.Len(t, errs, 1)
	require.Contains(t, errs[0].Message(), "does not produce a result")
}

func TestParseMissingResult(t *testing.T) {
	_, errs := parseString(t, functionWithBody("felt.const 1\n      function.return"))
	require.Len(t, errs, 1)
	require.Contains(t, errs[0].Message(), "requires a result")
}

func TestParseMismatchedFunctionName(t *testing.T) {
	_, errs := parseString(t,
		"module attributes {veridise.lang = \"llzk\"} {\n"+
			"  struct.def @A<[]> {\n"+
			"    function.def @compute() attributes {function.allow_constraint} {\n"+
			"      function.return\n"+
			"    }\n"+
			"  }\n"+
			"}\n")
	require.Len(t, errs, 1)
	require.Contains(t, errs[0].Message(), "@constrain")
}

// TestParseForwardReference checks that a body referring to a value defined
// further down still parses, and is instead rejected by the verifier.
func TestParseForwardReference(t *testing.T) {
	module, errs := parseString(t, functionWithBody(
		"%sum = felt.add %c, %c\n      %c = felt.const 1\n      function.return"))
	require.Empty(t, errs)
	//
	diags := ir.Verify(module)
	require.NotEmpty(t, diags)
	//
	found := false
	for _, d := range diags {
		found = found || errors.Is(d.Err, ir.ErrUseBeforeDefinition)
	}
	//
	require.True(t, found)
}

// TestParseOverAppliedStructType checks that an instance type carrying
// generic arguments the struct never declared still parses, and is instead
// rejected by the verifier.
func TestParseOverAppliedStructType(t *testing.T) {
	module, errs := parseString(t, functionWithBody(
		"%x = struct.new : <@A<[@T]>>\n      function.return"))
	require.Empty(t, errs)
	//
	diags := ir.Verify(module)
	require.NotEmpty(t, diags)
	//
	found := false
	for _, d := range diags {
		found = found || errors.Is(d.Err, ir.ErrArityMismatch)
	}
	//
	require.True(t, found)
}

// functionWithBody wraps a constraint-checking body in the boilerplate of a
// struct and module, with parameters %arg0 (the instance) and %arg1 (a felt).
func functionWithBody(body string) string {
	return "module attributes {veridise.lang = \"llzk\"} {\n" +
		"  struct.def @A<[]> {\n" +
		"    function.def @constrain(%arg0: !struct.type<@A<[]>>, %arg1: !felt.type) attributes {function.allow_constraint} {\n" +
		"      " + body + "\n" +
		"    }\n" +
		"  }\n" +
		"}\n"
}
