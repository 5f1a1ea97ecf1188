package schedule_test

import (
	"math"
	"testing"

	"voice-sprint-planner/internal/model"
	"voice-sprint-planner/internal/planner/schedule"
)

func TestSegmentTask(t *testing.T) {
	estimate := int64(21_600_000) // 6h

	t.Run("Zero Days Zero Segments", func(t *testing.T) {
		task := model.PlannerTask{ID: "t1", TimeEstimateMs: &estimate}
		if segs := schedule.SegmentTask(task, nil); segs != nil {
			t.Errorf("expected no segments, got %v", segs)
		}
	})

	t.Run("Single Day Has Both Flags", func(t *testing.T) {
		task := model.PlannerTask{ID: "t1", TimeEstimateMs: &estimate}
		segs := schedule.SegmentTask(task, []string{"2025-11-18"})
		if len(segs) != 1 {
			t.Fatalf("expected 1 segment, got %d", len(segs))
		}
		if !segs[0].IsStart || !segs[0].IsEnd {
			t.Errorf("single-day segment must be both start and end: %+v", segs[0])
		}
		if segs[0].Hours != 6.0 {
			t.Errorf("expected 6.0 hours, got %v", segs[0].Hours)
		}
	})

	t.Run("Even Split Across Three Days", func(t *testing.T) {
		task := model.PlannerTask{ID: "t1", TimeEstimateMs: &estimate}
		segs := schedule.SegmentTask(task, []string{"2025-11-18", "2025-11-19", "2025-11-20"})
		if len(segs) != 3 {
			t.Fatalf("expected 3 segments, got %d", len(segs))
		}

		var total float64
		starts, ends := 0, 0
		for _, s := range segs {
			if s.Hours != 2.0 {
				t.Errorf("expected 2.0 hours per segment, got %v", s.Hours)
			}
			total += s.Hours
			if s.IsStart {
				starts++
			}
			if s.IsEnd {
				ends++
			}
		}
		if starts != 1 || ends != 1 {
			t.Errorf("expected exactly one start and one end, got %d/%d", starts, ends)
		}
		if math.Abs(total-6.0) > 1e-9 {
			t.Errorf("segment hours must sum to the total estimate, got %v", total)
		}
	})

	t.Run("Nil Estimate Splits As Zero", func(t *testing.T) {
		task := model.PlannerTask{ID: "t1"}
		segs := schedule.SegmentTask(task, []string{"2025-11-18", "2025-11-19"})
		for _, s := range segs {
			if s.Hours != 0 {
				t.Errorf("expected zero hours, got %v", s.Hours)
			}
		}
	})

	t.Run("Hours Rounded To One Decimal", func(t *testing.T) {
		ms := int64(5_000_000) // 1.3888...h -> 1.4
		task := model.PlannerTask{ID: "t1", TimeEstimateMs: &ms}
		segs := schedule.SegmentTask(task, []string{"2025-11-18"})
		if segs[0].Hours != 1.4 {
			t.Errorf("expected 1.4 hours, got %v", segs[0].Hours)
		}
	})
}

func TestWorkload(t *testing.T) {
	t.Run("Classify Thresholds", func(t *testing.T) {
		th := schedule.DefaultThresholds()
		cases := []struct {
			hours float64
			want  schedule.LoadLevel
		}{
			{0, schedule.LoadUnder},
			{6.4, schedule.LoadUnder},
			{6.5, schedule.LoadNominal},
			{8.0, schedule.LoadNominal},
			{8.1, schedule.LoadOver},
		}
		for _, c := range cases {
			if got := th.Classify(c.hours); got != c.want {
				t.Errorf("Classify(%v): expected %s, got %s", c.hours, c.want, got)
			}
		}
	})

	t.Run("Total Hours Ignores Nil And Negative", func(t *testing.T) {
		pos := int64(3_600_000)
		neg := int64(-1)
		tasks := []model.PlannerTask{
			{ID: "a", TimeEstimateMs: &pos},
			{ID: "b"},
			{ID: "c", TimeEstimateMs: &neg},
			{ID: "d", TimeEstimateMs: &pos},
		}
		if got := schedule.TotalHours(tasks); got != 2.0 {
			t.Errorf("expected 2.0 total hours, got %v", got)
		}
	})

	t.Run("Day Hours Sums Segments", func(t *testing.T) {
		bucket := model.DayBucket{Segments: []model.TaskSegment{
			{Hours: 1.5}, {Hours: 2.0}, {Hours: 0.5},
		}}
		if got := schedule.DayHours(bucket); got != 4.0 {
			t.Errorf("expected 4.0, got %v", got)
		}
	})
}
