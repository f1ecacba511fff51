package models

import "testing"

// TestCloneSharesNoPointers verifies that mutating a clone leaves the original
// entry untouched, which progression relies on.
func TestCloneSharesNoPointers(t *testing.T) {
	orig := ExerciseEntry{Name: "Squat", Sets: IntPtr(3), Reps: IntPtr(5), RPE: FloatPtr(7), Load: FloatPtr(100)}
	c := orig.Clone()
	*c.Sets = 5
	*c.Reps = 8
	*c.RPE = 9
	*c.Load = 120

	if *orig.Sets != 3 || *orig.Reps != 5 || *orig.RPE != 7 || *orig.Load != 100 {
		t.Errorf("original mutated: %+v", orig)
	}
}

// TestCloneKeepsNil verifies that absent fields stay absent on the clone.
func TestCloneKeepsNil(t *testing.T) {
	c := ExerciseEntry{Name: "Plank"}.Clone()
	if c.Sets != nil || c.Reps != nil || c.RPE != nil || c.Load != nil {
		t.Errorf("clone = %+v, want all numeric fields nil", c)
	}
}

// TestExerciseCount verifies counting across days.
func TestExerciseCount(t *testing.T) {
	b := Block{Days: []Day{
		{Title: "Day 1", Items: []ExerciseEntry{{Name: "a"}, {Name: "b"}}},
		{Title: "Day 2"},
		{Title: "Day 3", Items: []ExerciseEntry{{Name: "c"}}},
	}}
	if got := b.ExerciseCount(); got != 3 {
		t.Errorf("ExerciseCount() = %d, want 3", got)
	}
}
