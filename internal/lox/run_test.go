package lox

import "testing"

func TestRunStopsAtFailedStage(t *testing.T) {
	result := Run(`"unterminated`, StageEvaluate)
	if result.Ok() {
		t.Fatalf("Run() = %+v, want failure", result)
	}
	if result.Expr != nil {
		t.Errorf("Expr = %v, want nil: parsing must not run after a scan failure", result.Expr)
	}
}

func TestRunTokenizeStage(t *testing.T) {
	result := Run("1 + 2", StageScan)
	if !result.Ok() {
		t.Fatalf("Run() errs = %v, want none", result.Errs)
	}
	if len(result.Tokens) != 4 {
		t.Fatalf("Tokens = %v, want 4 (NUMBER PLUS NUMBER EOF)", result.Tokens)
	}
	if result.Expr != nil {
		t.Errorf("Expr = %v, want nil at StageScan", result.Expr)
	}
}

func TestRunParseStage(t *testing.T) {
	result := Run("1 + 2", StageParse)
	if !result.Ok() {
		t.Fatalf("Run() errs = %v, want none", result.Errs)
	}
	if result.Expr == nil {
		t.Fatal("Expr = nil, want a parsed tree")
	}
	if result.Value.IsNumber() {
		t.Errorf("Value = %v, want zero value at StageParse", result.Value)
	}
}

func TestRunEvaluateStage(t *testing.T) {
	result := Run("(1 + 2) * 3", StageEvaluate)
	if !result.Ok() {
		t.Fatalf("Run() errs = %v, want none", result.Errs)
	}
	if got, want := result.Value.String(), "9"; got != want {
		t.Errorf("Value = %q, want %q", got, want)
	}
}

func TestRunEvaluateStageRuntimeError(t *testing.T) {
	result := Run(`1 + "x"`, StageEvaluate)
	if result.Ok() {
		t.Fatal("Run() ok, want runtime error")
	}
	if len(result.Errs) != 1 || result.Errs[0].Sender != SenderEvaluator {
		t.Errorf("Errs = %v, want single evaluator error", result.Errs)
	}
}
