package sla

import "math"

// Compliance summarizes estimated response times against an expected time,
// with rate and average rounded to two decimals.
type Compliance struct {
	TotalTasks      int     `json:"total_tasks"`
	CompliantTasks  int     `json:"compliant_tasks"`
	ComplianceRate  float64 `json:"compliance_rate"`
	AvgResponseTime float64 `json:"avg_response_time"`
}

// Comply counts the times at or under expectedMinutes.
func Comply(times []float64, expectedMinutes float64) Compliance {
	if len(times) == 0 {
		return Compliance{}
	}
	compliant := 0
	sum := 0.0
	for _, t := range times {
		if t <= expectedMinutes {
			compliant++
		}
		sum += t
	}
	return Compliance{
		TotalTasks:      len(times),
		CompliantTasks:  compliant,
		ComplianceRate:  round2(float64(compliant) / float64(len(times)) * 100),
		AvgResponseTime: round2(sum / float64(len(times))),
	}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
