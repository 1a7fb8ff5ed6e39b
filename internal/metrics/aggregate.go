// internal/metrics/aggregate.go
package metrics

import (
	"sort"

	"github.com/mwiater/cgbench/internal/subject"
)

// SpeedAggregate summarizes a model's latency rows.
type SpeedAggregate struct {
	Model      string
	Runs       int
	MinSeconds float64
	AvgSeconds float64
	MaxSeconds float64
	Timeouts   int
}

// QualityAggregate summarizes a model's quality rows.
type QualityAggregate struct {
	Model     string
	Runs      int
	Solved    int
	NeedsFull int
	PassRate  float64
	AvgScore  float64
}

// AggregateSpeed folds speed records into one aggregate per model, sorted by
// model name.
func AggregateSpeed(records []SpeedRecord) []SpeedAggregate {
	byModel := make(map[string]*SpeedAggregate)
	for _, record := range records {
		agg, ok := byModel[record.Model]
		if !ok {
			agg = &SpeedAggregate{Model: record.Model, MinSeconds: record.ExecutionTime, MaxSeconds: record.ExecutionTime}
			byModel[record.Model] = agg
		}
		agg.Runs++
		agg.AvgSeconds += record.ExecutionTime
		if record.ExecutionTime < agg.MinSeconds {
			agg.MinSeconds = record.ExecutionTime
		}
		if record.ExecutionTime > agg.MaxSeconds {
			agg.MaxSeconds = record.ExecutionTime
		}
		if record.ExitCode == subject.TimeoutExitCode {
			agg.Timeouts++
		}
	}
	return sortSpeedAggregates(byModel)
}

func sortSpeedAggregates(byModel map[string]*SpeedAggregate) []SpeedAggregate {
	aggregates := make([]SpeedAggregate, 0, len(byModel))
	for _, agg := range byModel {
		agg.AvgSeconds /= float64(agg.Runs)
		aggregates = append(aggregates, *agg)
	}
	sort.Slice(aggregates, func(i, j int) bool { return aggregates[i].Model < aggregates[j].Model })
	return aggregates
}

// AggregateQuality folds quality records into one aggregate per model, sorted
// by model name.
func AggregateQuality(records []QualityRecord) []QualityAggregate {
	byModel := make(map[string]*QualityAggregate)
	for _, record := range records {
		agg, ok := byModel[record.Model]
		if !ok {
			agg = &QualityAggregate{Model: record.Model}
			byModel[record.Model] = agg
		}
		agg.Runs++
		agg.AvgScore += record.QualityScore
		if record.CanSolve {
			agg.Solved++
		}
		if record.NeedsFullOutput {
			agg.NeedsFull++
		}
	}

	aggregates := make([]QualityAggregate, 0, len(byModel))
	for _, agg := range byModel {
		agg.AvgScore /= float64(agg.Runs)
		agg.PassRate = float64(agg.Solved) / float64(agg.Runs)
		aggregates = append(aggregates, *agg)
	}
	sort.Slice(aggregates, func(i, j int) bool { return aggregates[i].Model < aggregates[j].Model })
	return aggregates
}
