package scan

import "testing"

func TestClassify_KeywordSelection(t *testing.T) {
	blocks := []string{
		`{"custId":"123","amount":100}`,
		`{"rspCode":"0000","msg":"ok"}`,
	}
	c := Classify(blocks)
	if c.Input != blocks[0] {
		t.Errorf("input = %q, want request block", c.Input)
	}
	if c.Output != blocks[1] {
		t.Errorf("output = %q, want response block", c.Output)
	}
	if c.InputFallback || c.OutputFallback {
		t.Errorf("keyword selection should not set fallback flags: %+v", c)
	}
}

func TestClassify_ResponsePrecedence(t *testing.T) {
	// Matches both keyword sets; response wins, so the block is never input.
	both := `{"rspCode":"0000","custId":"123"}`
	c := Classify([]string{both})
	if c.Output != both {
		t.Errorf("output = %q, want the mixed block", c.Output)
	}
	if c.Input == both && !c.InputFallback {
		t.Errorf("mixed block must not be keyword-classified as input")
	}
}

func TestClassify_FirstMatchWins(t *testing.T) {
	blocks := []string{
		`{"custId":"first"}`,
		`{"custId":"second"}`,
		`{"rspCode":"first"}`,
		`{"rspCode":"second"}`,
	}
	c := Classify(blocks)
	if c.Input != blocks[0] {
		t.Errorf("input = %q, want first request-like block", c.Input)
	}
	if c.Output != blocks[2] {
		t.Errorf("output = %q, want first response-like block", c.Output)
	}
}

func TestClassify_InputFallbackLongest(t *testing.T) {
	// No request keywords anywhere: longest block becomes input.
	blocks := []string{
		`{"x":1}`,
		`{"x":1,"y":2,"z":3}`,
		`{"x":2}`,
	}
	c := Classify(blocks)
	if c.Input != blocks[1] {
		t.Errorf("input = %q, want longest block", c.Input)
	}
	if !c.InputFallback {
		t.Error("expected InputFallback to be set")
	}
}

func TestClassify_OutputFallbackExcludesInput(t *testing.T) {
	blocks := []string{
		`{"custId":"123","note":"request-like and also the longest block"}`,
		`{"x":1}`,
	}
	c := Classify(blocks)
	if c.Input != blocks[0] {
		t.Fatalf("input = %q", c.Input)
	}
	if c.Output != blocks[1] {
		t.Errorf("output = %q, want the remaining block", c.Output)
	}
	if !c.OutputFallback {
		t.Error("expected OutputFallback to be set")
	}
}

func TestClassify_LongestTieBreaksToFirst(t *testing.T) {
	blocks := []string{`{"a":1}`, `{"b":2}`}
	c := Classify(blocks)
	if c.Input != blocks[0] {
		t.Errorf("input = %q, want first of the tied blocks", c.Input)
	}
}

func TestClassify_SingleBlockLeavesOutputEmpty(t *testing.T) {
	c := Classify([]string{`{"custId":"123"}`})
	if c.Input != `{"custId":"123"}` {
		t.Errorf("input = %q", c.Input)
	}
	if c.Output != "" {
		t.Errorf("output = %q, want empty", c.Output)
	}
}

func TestClassify_Empty(t *testing.T) {
	c := Classify(nil)
	if c.Input != "" || c.Output != "" {
		t.Errorf("expected empty classification, got %+v", c)
	}
	if c.InputFallback || c.OutputFallback {
		t.Errorf("no fallback should fire on empty input: %+v", c)
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	blocks := []string{`{"CUSTID":"123"}`, `{"RspCode":"0000"}`}
	c := Classify(blocks)
	if c.Input != blocks[0] {
		t.Errorf("input = %q, keyword match should be case-insensitive", c.Input)
	}
	if c.Output != blocks[1] {
		t.Errorf("output = %q, keyword match should be case-insensitive", c.Output)
	}
}
