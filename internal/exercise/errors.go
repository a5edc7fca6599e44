package exercise

import (
	"fmt"
	"strings"
)

// UnknownExerciseError reports an exercise key with no registered assessment.
type UnknownExerciseError struct {
	Key string
}

func (e *UnknownExerciseError) Error() string {
	return fmt.Sprintf("unknown exercise %q (valid: %s)", e.Key, strings.Join(Keys(), ", "))
}

// MissingMetricError reports metrics an exercise requires that were absent
// from the evaluated MetricSet. It is raised before any check runs, so a
// partially evaluated result never exists. Keys are sorted.
type MissingMetricError struct {
	Exercise Exercise
	Keys     []string
}

func (e *MissingMetricError) Error() string {
	return fmt.Sprintf("%s evaluation missing metrics: %s", e.Exercise.Name(), strings.Join(e.Keys, ", "))
}
