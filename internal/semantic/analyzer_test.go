package semantic

import (
	"testing"

	"github.com/mining-lang/mining/internal/ast"
	"github.com/mining-lang/mining/internal/diag"
	"github.com/mining-lang/mining/internal/lexer"
	"github.com/mining-lang/mining/internal/parser"
	"github.com/mining-lang/mining/internal/types"
)

func mustAnalyze(t *testing.T, src string) *Analyzer {
	t.Helper()
	prog := mustParse(t, src)
	a := New()
	if err := a.Analyze(prog); err != nil {
		t.Fatalf("Analyze: unexpected error: %v", err)
	}
	return a
}

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	l := lexer.New(src)
	p, err := parser.New(l)
	if err != nil {
		t.Fatalf("parser.New: unexpected error: %v", err)
	}
	prog, err := p.ParseProgram()
	if err != nil {
		t.Fatalf("ParseProgram: unexpected error: %v", err)
	}
	return prog
}

func analyzeErr(t *testing.T, src string) *diag.Error {
	t.Helper()
	prog := mustParse(t, src)
	a := New()
	err := a.Analyze(prog)
	if err == nil {
		t.Fatalf("want an error, got nil")
	}
	de, ok := err.(*diag.Error)
	if !ok {
		t.Fatalf("want *diag.Error, got %T", err)
	}
	return de
}

func TestAnalyzeScalarDeclarationAndAssignment(t *testing.T) {
	a := mustAnalyze(t, `VAR_GLOBAL { INTEGER X = 5; } INSTRUCTION { X = X + 1; }`)
	slot, err := a.Table().Slot("X", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slot.Value.I != 6 {
		t.Fatalf("want 6, got %d", slot.Value.I)
	}
}

func TestAnalyzeArrayCycleFillShorterThanSize(t *testing.T) {
	a := mustAnalyze(t, `VAR_GLOBAL { INTEGER A[5] = [1,2]; } INSTRUCTION { }`)
	want := []int16{1, 2, 1, 2, 1}
	for i, w := range want {
		slot, err := a.Table().Slot("A", i)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if slot.Value.I != w {
			t.Fatalf("slot %d: want %d, got %d", i, w, slot.Value.I)
		}
	}
}

func TestAnalyzeArrayOverflowInitializerTooLong(t *testing.T) {
	de := analyzeErr(t, `VAR_GLOBAL { INTEGER A[2] = [1,2,3]; } INSTRUCTION { }`)
	if de.Code != diag.ArrayOverflowInInitializer {
		t.Fatalf("want ArrayOverflowInInitializer, got %s", de.Code)
	}
}

func TestAnalyzeCharArrayEmptyStringInitializesAllNul(t *testing.T) {
	a := mustAnalyze(t, `VAR_GLOBAL { CHAR S[3] = ""; } INSTRUCTION { }`)
	for i := 0; i < 3; i++ {
		slot, err := a.Table().Slot("S", i)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if slot.Value.C != 0 {
			t.Fatalf("slot %d: want NUL, got %q", i, slot.Value.C)
		}
	}
}

func TestAnalyzeCharArrayStringCycleFill(t *testing.T) {
	a := mustAnalyze(t, `VAR_GLOBAL { CHAR S[5] = "Hi"; } INSTRUCTION { }`)
	want := "HiHiH"
	for i, w := range want {
		slot, err := a.Table().Slot("S", i)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if slot.Value.C != byte(w) {
			t.Fatalf("slot %d: want %q, got %q", i, w, slot.Value.C)
		}
	}
}

func TestAnalyzeConstantModificationRejected(t *testing.T) {
	de := analyzeErr(t, `DECLARATION { CONST INTEGER STEP = 1; } INSTRUCTION { STEP = 2; }`)
	if de.Code != diag.ConstantModification {
		t.Fatalf("want ConstantModification, got %s", de.Code)
	}
}

func TestAnalyzeConstantModificationRejectedInsideIf(t *testing.T) {
	de := analyzeErr(t, `VAR_GLOBAL { }
		DECLARATION { CONST INTEGER STEP = 1; }
		INSTRUCTION { IF (STEP == 1) { STEP = 2; } }`)
	if de.Code != diag.ConstantModification {
		t.Fatalf("want ConstantModification even inside a branch, got %s", de.Code)
	}
}

func TestAnalyzeUndeclaredVariable(t *testing.T) {
	de := analyzeErr(t, `INSTRUCTION { X = 1; }`)
	if de.Code != diag.UndeclaredVariable {
		t.Fatalf("want UndeclaredVariable, got %s", de.Code)
	}
}

func TestAnalyzeDuplicateDeclaration(t *testing.T) {
	de := analyzeErr(t, `VAR_GLOBAL { INTEGER X; INTEGER X; } INSTRUCTION { }`)
	if de.Code != diag.DuplicateDeclaration {
		t.Fatalf("want DuplicateDeclaration, got %s", de.Code)
	}
}

func TestAnalyzeUseBeforeAssign(t *testing.T) {
	de := analyzeErr(t, `VAR_GLOBAL { INTEGER X; INTEGER Y; } INSTRUCTION { Y = X + 1; }`)
	if de.Code != diag.UseBeforeAssign {
		t.Fatalf("want UseBeforeAssign, got %s", de.Code)
	}
}

func TestAnalyzeTypeMismatchInBinaryOp(t *testing.T) {
	de := analyzeErr(t, `VAR_GLOBAL { INTEGER X = 1; FLOAT Y = 1.0; } INSTRUCTION { X = X + Y; }`)
	if de.Code != diag.TypeMismatch {
		t.Fatalf("want TypeMismatch, got %s", de.Code)
	}
}

func TestAnalyzeDivisionByZeroPointsAtLeftOperand(t *testing.T) {
	src := `VAR_GLOBAL { INTEGER X; } INSTRUCTION {
	X = 1 / 0;
}`
	de := analyzeErr(t, src)
	if de.Code != diag.DivisionByZero {
		t.Fatalf("want DivisionByZero, got %s", de.Code)
	}
	if de.Pos.Line != 2 {
		t.Fatalf("want the error on line 2, got %d", de.Pos.Line)
	}
}

func TestAnalyzeIntegerOverflowInExpr(t *testing.T) {
	de := analyzeErr(t, `VAR_GLOBAL { INTEGER X; } INSTRUCTION { X = 32767 + 1; }`)
	if de.Code != diag.IntegerOverflowInExpr {
		t.Fatalf("want IntegerOverflowInExpr, got %s", de.Code)
	}
}

func TestAnalyzeCharMulIsInvalidCharArith(t *testing.T) {
	de := analyzeErr(t, `VAR_GLOBAL { CHAR X = 'a'; CHAR Y = 'b'; CHAR Z; } INSTRUCTION { Z = X * Y; }`)
	if de.Code != diag.InvalidCharArith {
		t.Fatalf("want InvalidCharArith, got %s", de.Code)
	}
}

func TestAnalyzeCharAddWrapsModulo(t *testing.T) {
	// '\x02' is written via Go string concatenation (not a backtick raw
	// string) so the lexer sees one literal control byte inside the
	// quotes, since MinING char literals do not interpret escapes.
	src := "VAR_GLOBAL { CHAR X = '~'; CHAR Y = '" + "\x02" + "'; CHAR Z; } INSTRUCTION { Z = X + Y; }"
	a := mustAnalyze(t, src)
	slot, err := a.Table().Slot("Z", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// '~' is 0x7E; adding 2 gives 0x80, which wraps modulo 0x7F to 1.
	if slot.Value.C != 1 {
		t.Fatalf("want wrapped char value 1, got %d", slot.Value.C)
	}
}

func TestAnalyzeNegativeIndexRejected(t *testing.T) {
	de := analyzeErr(t, `VAR_GLOBAL { INTEGER A[3]; INTEGER I = (-1); } INSTRUCTION { A[I] = 1; }`)
	if de.Code != diag.NegativeIndex {
		t.Fatalf("want NegativeIndex, got %s", de.Code)
	}
}

func TestAnalyzeIndexOutOfBounds(t *testing.T) {
	de := analyzeErr(t, `VAR_GLOBAL { INTEGER A[3]; } INSTRUCTION { A[3] = 1; }`)
	if de.Code != diag.IndexOutOfBounds {
		t.Fatalf("want IndexOutOfBounds, got %s", de.Code)
	}
}

func TestAnalyzeScalarSubscriptedRejected(t *testing.T) {
	de := analyzeErr(t, `VAR_GLOBAL { INTEGER X; } INSTRUCTION { X[0] = 1; }`)
	if de.Code != diag.ScalarSubscripted {
		t.Fatalf("want ScalarSubscripted, got %s", de.Code)
	}
}

func TestAnalyzeNonArraySubscriptedInExpr(t *testing.T) {
	de := analyzeErr(t, `VAR_GLOBAL { INTEGER X; INTEGER Y; } INSTRUCTION { Y = X[0]; }`)
	if de.Code != diag.NonArraySubscripted {
		t.Fatalf("want NonArraySubscripted, got %s", de.Code)
	}
}

func TestAnalyzeNonPositiveArraySize(t *testing.T) {
	de := analyzeErr(t, `VAR_GLOBAL { INTEGER A[0]; } INSTRUCTION { }`)
	if de.Code != diag.NonPositiveArraySize {
		t.Fatalf("want NonPositiveArraySize, got %s", de.Code)
	}
}

func TestAnalyzeArraySizeOverflow(t *testing.T) {
	// A size above 32767 never reaches the analyzer: the size literal itself
	// overflows int16 and is rejected by the lexer.
	p, err := parser.New(lexer.New(`VAR_GLOBAL { INTEGER A[32768]; } INSTRUCTION { }`))
	if err == nil {
		_, err = p.ParseProgram()
	}
	de, ok := err.(*diag.Error)
	if !ok || de.Code != diag.IntegerOverflow {
		t.Fatalf("want IntegerOverflow for array size 32768, got %v", err)
	}
}

func TestAnalyzeForLoopMaterializesLoopVariable(t *testing.T) {
	a := mustAnalyze(t, `VAR_GLOBAL { INTEGER I; INTEGER TOTAL = 0; } INSTRUCTION {
		FOR (I = 0 : 1 : 3) { TOTAL = TOTAL + I; }
	}`)
	slot, err := a.Table().Slot("I", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slot.Value.I != 0 {
		t.Fatalf("want loop-insensitive analysis to leave I at its init value 0, got %d", slot.Value.I)
	}
}

func TestAnalyzeConditionIncompatibleTypes(t *testing.T) {
	de := analyzeErr(t, `VAR_GLOBAL { INTEGER X = 1; FLOAT Y = 1.0; } INSTRUCTION { IF (X == Y) { X = 2; } }`)
	if de.Code != diag.IncompatibleTypesInCondition {
		t.Fatalf("want IncompatibleTypesInCondition, got %s", de.Code)
	}
}

func TestAnalyzeUnaryMinusNegatesInteger(t *testing.T) {
	a := mustAnalyze(t, `VAR_GLOBAL { INTEGER X; } INSTRUCTION { X = (-5); }`)
	slot, err := a.Table().Slot("X", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slot.Value.I != -5 {
		t.Fatalf("want -5, got %d", slot.Value.I)
	}
}

func TestAnalyzeUnaryMinusOverflowAtInt16Boundary(t *testing.T) {
	de := analyzeErr(t, `VAR_GLOBAL { INTEGER X; } INSTRUCTION { X = (-32767) - 2; }`)
	if de.Code != diag.IntegerOverflowInExpr {
		t.Fatalf("want IntegerOverflowInExpr, got %s", de.Code)
	}
}

func TestEvalExprUnknownNodePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("want a panic for an unrecognized expression node")
		}
	}()
	a := New()
	_, _ = a.evalExpr(nil)
}

func TestZeroValueReadsAsIntegerKind(t *testing.T) {
	// Integer is Kind's zero value, so a zero Value{} reports Integer kind;
	// Kind alone does not tell an unset Value from Integer(0).
	if (types.Value{}).Kind != types.Integer {
		t.Fatalf("zero Value must read as Integer kind (Kind's zero value), got %s", (types.Value{}).Kind)
	}
}

func TestAnalyzeWritePermitsBareArrayVariable(t *testing.T) {
	src := `VAR_GLOBAL { CHAR GREET[6] = "Hi"; } INSTRUCTION { WRITE("greeting: ", GREET); }`
	mustAnalyze(t, src)
}

func TestAnalyzeWritePermitsUnassignedVariable(t *testing.T) {
	src := `VAR_GLOBAL { INTEGER X; } INSTRUCTION { WRITE("x: ", X); }`
	mustAnalyze(t, src)
}

func TestAnalyzeWriteRejectsUndeclaredVariable(t *testing.T) {
	de := analyzeErr(t, `INSTRUCTION { WRITE(X); }`)
	if de.Code != diag.UndeclaredVariable {
		t.Fatalf("want UndeclaredVariable, got %s", de.Code)
	}
}

func TestAnalyzeConditionPermitsUnassignedOperands(t *testing.T) {
	src := `VAR_GLOBAL { INTEGER I; INTEGER J; } INSTRUCTION { IF (I > J) { } }`
	mustAnalyze(t, src)
}

func TestAnalyzeConditionRejectsArrayOperands(t *testing.T) {
	de := analyzeErr(t, `VAR_GLOBAL { INTEGER A[3] = [1,2,3]; INTEGER B[3] = [1,2,3]; } INSTRUCTION { IF (A == B) { } }`)
	if de.Code != diag.IncompatibleTypesInCondition {
		t.Fatalf("want IncompatibleTypesInCondition, got %s", de.Code)
	}
}
