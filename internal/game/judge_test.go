package game

import "testing"

func TestJudgePerfect(t *testing.T) {
	j := Judge("안녕하세요", "안녕 하세요")
	if !j.Perfect {
		t.Fatalf("Perfect = false, want true")
	}
	if !j.IsCorrect {
		t.Fatalf("a perfect judgment must be correct")
	}
	if j.Accuracy != 100 {
		t.Fatalf("Accuracy = %v, want 100", j.Accuracy)
	}
	if j.ErrorIndex != -1 {
		t.Fatalf("ErrorIndex = %d, want -1", j.ErrorIndex)
	}
}

func TestJudgeCorrectBelowPerfect(t *testing.T) {
	// One wrong syllable out of five keeps accuracy at 80.
	j := Judge("안녕하세용", "안녕하세요")
	if j.Perfect {
		t.Fatalf("Perfect = true, want false")
	}
	if !j.IsCorrect {
		t.Fatalf("IsCorrect = false, want true at accuracy %v", j.Accuracy)
	}
	if j.ErrorIndex != 4 {
		t.Fatalf("ErrorIndex = %d, want 4", j.ErrorIndex)
	}
}

func TestJudgeIncorrect(t *testing.T) {
	j := Judge("전혀 다른 말", "안녕하세요")
	if j.IsCorrect {
		t.Fatalf("IsCorrect = true, want false at accuracy %v", j.Accuracy)
	}
	if j.Perfect {
		t.Fatalf("Perfect = true, want false")
	}
}

func TestJudgeEmptyInput(t *testing.T) {
	j := Judge("", "안녕하세요")
	if j.IsCorrect || j.Perfect {
		t.Fatalf("empty input judged correct: %+v", j)
	}
	if j.Accuracy != 0 {
		t.Fatalf("Accuracy = %v, want 0", j.Accuracy)
	}
	if j.ErrorIndex != -1 {
		t.Fatalf("ErrorIndex = %d, want -1 for empty input", j.ErrorIndex)
	}
}

func TestJudgeErrorIndexOvershoot(t *testing.T) {
	// Input fully matches the target then keeps going.
	j := Judge("안녕하세요오", "안녕하세요")
	if j.ErrorIndex != 5 {
		t.Fatalf("ErrorIndex = %d, want 5", j.ErrorIndex)
	}
}

func TestJudgeErrorIndexPrefix(t *testing.T) {
	// A clean prefix has no divergence point yet.
	j := Judge("안녕", "안녕하세요")
	if j.ErrorIndex != -1 {
		t.Fatalf("ErrorIndex = %d, want -1", j.ErrorIndex)
	}
}
