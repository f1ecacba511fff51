package models

// ExerciseEntry is one exercise line of a training block. Numeric fields are nil
// when the source text did not specify them; nil is never the same as zero.
type ExerciseEntry struct {
	Name string   `json:"name"`
	Sets *int     `json:"sets,omitempty"`
	Reps *int     `json:"reps,omitempty"`
	RPE  *float64 `json:"rpe,omitempty"`
	Load *float64 `json:"load_kg,omitempty"`
	Raw  string   `json:"raw"`
}

// Clone returns a copy of the entry that shares no pointers with the original.
func (e ExerciseEntry) Clone() ExerciseEntry {
	out := e
	if e.Sets != nil {
		out.Sets = IntPtr(*e.Sets)
	}
	if e.Reps != nil {
		out.Reps = IntPtr(*e.Reps)
	}
	if e.RPE != nil {
		out.RPE = FloatPtr(*e.RPE)
	}
	if e.Load != nil {
		out.Load = FloatPtr(*e.Load)
	}
	return out
}

// Day is a single training session: a title and its exercises in order.
type Day struct {
	Title string          `json:"title"`
	Items []ExerciseEntry `json:"items"`
}

// Block is a multi-day training plan.
type Block struct {
	Days []Day `json:"days"`
}

// ExerciseCount returns the number of exercise entries across all days.
func (b Block) ExerciseCount() int {
	n := 0
	for _, d := range b.Days {
		n += len(d.Items)
	}
	return n
}

// InjuryFlags marks movement patterns to avoid, derived from the injury note.
type InjuryFlags struct {
	AvoidKnee     bool `json:"avoid_knee"`
	AvoidBack     bool `json:"avoid_back"`
	AvoidShoulder bool `json:"avoid_shoulder"`
}

func IntPtr(v int) *int { return &v }

func FloatPtr(v float64) *float64 { return &v }
