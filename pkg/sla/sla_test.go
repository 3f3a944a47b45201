package sla

import (
	"math"
	"testing"

	"github.com/nudataviz/project-fall25-lifeflight/pkg/mission"
)

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

func rec(city, disp, enr string) mission.Record {
	return mission.Record{PickupCity: city, Date: "2023-05-01", Dispatch: disp, EnRoute: enr}
}

func TestEvaluateInclusiveBoundary(t *testing.T) {
	records := []mission.Record{
		rec("BANGOR", "10:00", "10:20"), // 20 min, exactly at target
		rec("BANGOR", "11:00", "11:21"), // 21 min
		rec("bangor", "12:00", "12:10"), // 10 min
		rec("PORTLAND", "09:00", "09:05"),
	}
	got := Evaluate([]string{"BANGOR"}, records, 20)
	if got.TotalEvaluated != 3 || got.WithinSLA != 2 {
		t.Errorf("Evaluate = %+v, want 2 of 3 within SLA", got)
	}
	if !approxEqual(got.RatePercent, 200.0/3, 1e-9) {
		t.Errorf("RatePercent = %v, want %v", got.RatePercent, 200.0/3)
	}
	if !approxEqual(got.AvgResponseMinutes, 17, 1e-9) {
		t.Errorf("AvgResponseMinutes = %v, want 17", got.AvgResponseMinutes)
	}
}

func TestEvaluateMidnightRollover(t *testing.T) {
	got := Evaluate([]string{"BANGOR"}, []mission.Record{rec("BANGOR", "23:55", "00:07")}, 15)
	if got.WithinSLA != 1 || !approxEqual(got.AvgResponseMinutes, 12, 1e-9) {
		t.Errorf("Evaluate = %+v, want a 12 minute response within SLA", got)
	}
}

func TestEvaluateNoValidTimes(t *testing.T) {
	records := []mission.Record{rec("BANGOR", "", "10:00"), rec("BANGOR", "x", "y")}
	got := Evaluate([]string{"BANGOR"}, records, 20)
	if got.RatePercent != 0 || got.AvgResponseMinutes != 0 || got.WithinSLA != 0 {
		t.Errorf("expected zeroed result, got %+v", got)
	}
	if got.TotalEvaluated != 2 {
		t.Errorf("TotalEvaluated = %d, want in-scope count 2", got.TotalEvaluated)
	}
	if empty := Evaluate(nil, nil, 20); empty.TotalEvaluated != 0 {
		t.Errorf("Evaluate(nil) = %+v", empty)
	}
}

func TestSummarize(t *testing.T) {
	d := Summarize([]float64{8, 1, 7, 2, 6, 3, 5, 4})
	if d.Count != 8 || d.Min != 1 || d.Max != 8 {
		t.Errorf("Summarize = %+v", d)
	}
	if d.Mean != 4.5 || d.Median != 4.5 {
		t.Errorf("mean/median = %v/%v, want 4.5/4.5", d.Mean, d.Median)
	}
	if d.Q1 != 2.75 || d.Q3 != 6.25 {
		t.Errorf("quartiles = %v/%v, want 2.75/6.25", d.Q1, d.Q3)
	}
	// sample std of 1..8 = sqrt(6)
	if !approxEqual(d.Std, math.Sqrt(6), 1e-9) {
		t.Errorf("Std = %v, want %v", d.Std, math.Sqrt(6))
	}
}

func TestSummarizeEvenCountQuartiles(t *testing.T) {
	d := Summarize([]float64{4, 2, 1, 3})
	if d.Q1 != 1.75 || d.Median != 2.5 || d.Q3 != 3.25 {
		t.Errorf("q1/median/q3 = %v/%v/%v, want 1.75/2.5/3.25", d.Q1, d.Median, d.Q3)
	}
}

func TestSummarizeDegenerate(t *testing.T) {
	if (Summarize(nil) != Distribution{}) {
		t.Error("empty input should give zero distribution")
	}
	d := Summarize([]float64{12})
	if d.Std != 0 || d.Median != 12 || d.Q1 != 12 {
		t.Errorf("single value summary = %+v", d)
	}
}

func TestMedian(t *testing.T) {
	if Median([]float64{1, 3, 5}) != 3 {
		t.Error("odd median")
	}
	if Median([]float64{1, 3, 5, 7}) != 4 {
		t.Error("even median should average the middle pair")
	}
	if Median(nil) != 0 {
		t.Error("empty median")
	}
}

func TestComply(t *testing.T) {
	c := Comply([]float64{10, 20, 30}, 20)
	if c.TotalTasks != 3 || c.CompliantTasks != 2 {
		t.Errorf("Comply = %+v", c)
	}
	if c.ComplianceRate != 66.67 || c.AvgResponseTime != 20 {
		t.Errorf("rate/avg = %v/%v, want 66.67/20", c.ComplianceRate, c.AvgResponseTime)
	}
	if (Comply(nil, 20) != Compliance{}) {
		t.Error("empty input should give zero compliance")
	}
}
