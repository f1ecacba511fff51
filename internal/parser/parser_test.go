package parser

import "testing"

const sampleBlock = `
Day 1 – Lower
Back Squat 4x6 @ RPE7 100kg
RDL 3x8 @ RPE7
Leg Press 3x12

Day 2 – Upper
Bench Press 4x6 @ RPE 7.5 80 kg
Row 3x10
Pull-ups 3xAMRAP
`

// TestParseBlock verifies the happy path: two headed days, exercises attached
// to the right day, numeric tokens picked up where present.
func TestParseBlock(t *testing.T) {
	b := Parse(sampleBlock)
	if len(b.Days) != 2 {
		t.Fatalf("days = %d, want 2", len(b.Days))
	}

	d1 := b.Days[0]
	if d1.Title != "Day 1 – Lower" {
		t.Errorf("d1.Title = %q", d1.Title)
	}
	if len(d1.Items) != 3 {
		t.Fatalf("d1 items = %d, want 3", len(d1.Items))
	}

	sq := d1.Items[0]
	if sq.Name != "Back Squat" {
		t.Errorf("sq.Name = %q, want Back Squat", sq.Name)
	}
	if sq.Sets == nil || *sq.Sets != 4 {
		t.Errorf("sq.Sets = %v, want 4", sq.Sets)
	}
	if sq.Reps == nil || *sq.Reps != 6 {
		t.Errorf("sq.Reps = %v, want 6", sq.Reps)
	}
	if sq.RPE == nil || *sq.RPE != 7 {
		t.Errorf("sq.RPE = %v, want 7", sq.RPE)
	}
	if sq.Load == nil || *sq.Load != 100 {
		t.Errorf("sq.Load = %v, want 100", sq.Load)
	}
	if sq.Raw != "Back Squat 4x6 @ RPE7 100kg" {
		t.Errorf("sq.Raw = %q", sq.Raw)
	}

	// RDL has no load: must stay nil, not zero
	if rdl := d1.Items[1]; rdl.Load != nil {
		t.Errorf("rdl.Load = %v, want nil", *rdl.Load)
	}

	d2 := b.Days[1]
	if len(d2.Items) != 3 {
		t.Fatalf("d2 items = %d, want 3", len(d2.Items))
	}
	bench := d2.Items[0]
	if bench.RPE == nil || *bench.RPE != 7.5 {
		t.Errorf("bench.RPE = %v, want 7.5", bench.RPE)
	}
	if bench.Load == nil || *bench.Load != 80 {
		t.Errorf("bench.Load = %v, want 80", bench.Load)
	}

	// "3xAMRAP" is not a sets×reps token, so the whole line is the name
	pu := d2.Items[2]
	if pu.Name != "Pull-ups 3xAMRAP" {
		t.Errorf("pu.Name = %q, want whole line", pu.Name)
	}
	if pu.Sets != nil || pu.Reps != nil {
		t.Errorf("pu sets/reps = %v/%v, want nil", pu.Sets, pu.Reps)
	}
}

// TestParseSynthesizesFirstDay verifies that exercises before any header land
// in a default "Day 1".
func TestParseSynthesizesFirstDay(t *testing.T) {
	b := Parse("Squat 3x5\nDeadlift 1x5\nDay 2\nBench 3x5")
	if len(b.Days) != 2 {
		t.Fatalf("days = %d, want 2", len(b.Days))
	}
	if b.Days[0].Title != "Day 1" {
		t.Errorf("first title = %q, want Day 1", b.Days[0].Title)
	}
	if len(b.Days[0].Items) != 2 {
		t.Errorf("first day items = %d, want 2", len(b.Days[0].Items))
	}
	if b.Days[1].Title != "Day 2" {
		t.Errorf("second title = %q, want Day 2", b.Days[1].Title)
	}
}

// TestParseEmpty verifies that blank input yields zero days.
func TestParseEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\n\t\n"} {
		if b := Parse(in); len(b.Days) != 0 {
			t.Errorf("Parse(%q) days = %d, want 0", in, len(b.Days))
		}
	}
}

// TestParseCRLF verifies Windows line endings are tolerated.
func TestParseCRLF(t *testing.T) {
	b := Parse("Day 1\r\nSquat 3x5 100kg\r\n")
	if len(b.Days) != 1 || len(b.Days[0].Items) != 1 {
		t.Fatalf("got %+v", b)
	}
	if b.Days[0].Title != "Day 1" {
		t.Errorf("title = %q", b.Days[0].Title)
	}
	if e := b.Days[0].Items[0]; e.Load == nil || *e.Load != 100 {
		t.Errorf("load = %v, want 100", e.Load)
	}
}

// TestParseHeaderOnly verifies that a header with no exercises still opens a day.
func TestParseHeaderOnly(t *testing.T) {
	b := Parse("Day 5 – Long Run")
	if len(b.Days) != 1 {
		t.Fatalf("days = %d, want 1", len(b.Days))
	}
	if len(b.Days[0].Items) != 0 {
		t.Errorf("items = %d, want 0", len(b.Days[0].Items))
	}
}

// TestIsDayHeader covers both header rules, including the permissive
// "dash plus the word day" case.
func TestIsDayHeader(t *testing.T) {
	cases := []struct {
		line string
		want bool
	}{
		{"Day 1 – Lower", true},
		{"day2", true},
		{"DAY 10", true},
		{"Lower Body - Day A", true},
		{"Push — day", true},
		{"Foo - Day care exercise", true},
		{"Day A", false},
		{"Monday", false},
		{"Pull-ups 3x8", false},
		{"Easy run 45–60 min", false},
		{"Squat 3x5", false},
	}
	for _, tc := range cases {
		if got := IsDayHeader(tc.line); got != tc.want {
			t.Errorf("IsDayHeader(%q) = %v, want %v", tc.line, got, tc.want)
		}
	}
}
