// Package exercise implements the pose assessment engine: per-exercise metric
// extraction from landmark frames, threshold configuration, and rule based
// scoring with corrective cues.
package exercise

import (
	"encoding/json"
	"sort"
)

// Exercise identifies one of the supported assessments.
type Exercise int

const (
	PartialSquat Exercise = iota
	HeelRaises
	SingleLegStance
	TandemStance
	FunctionalReach
	TreePose
)

// byKey resolves canonical keys and accepted aliases to their Exercise.
var byKey = map[string]Exercise{
	"partial_squat":     PartialSquat,
	"squat":             PartialSquat,
	"heel_raises":       HeelRaises,
	"single_leg_stance": SingleLegStance,
	"balance":           SingleLegStance,
	"tandem_stance":     TandemStance,
	"functional_reach":  FunctionalReach,
	"tree_pose":         TreePose,
}

// Parse resolves an exercise key or alias. Unknown keys fail with
// *UnknownExerciseError, whose message lists every accepted key.
func Parse(key string) (Exercise, error) {
	e, ok := byKey[key]
	if !ok {
		return 0, &UnknownExerciseError{Key: key}
	}
	return e, nil
}

// Keys returns every accepted exercise key, canonical and alias, sorted.
func Keys() []string {
	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Exercises lists the supported exercises in a stable order.
func Exercises() []Exercise {
	return []Exercise{PartialSquat, HeelRaises, SingleLegStance, TandemStance, FunctionalReach, TreePose}
}

// Aliases returns the accepted alternate keys mapped to their canonical keys.
func Aliases() map[string]string {
	return map[string]string{
		"squat":   PartialSquat.Key(),
		"balance": SingleLegStance.Key(),
	}
}

// Key returns the canonical wire key for the exercise. Aliases resolve at
// Parse time, so results always carry the canonical key.
func (e Exercise) Key() string {
	switch e {
	case PartialSquat:
		return "partial_squat"
	case HeelRaises:
		return "heel_raises"
	case SingleLegStance:
		return "single_leg_stance"
	case TandemStance:
		return "tandem_stance"
	case FunctionalReach:
		return "functional_reach"
	case TreePose:
		return "tree_pose"
	default:
		return "unknown"
	}
}

// Name returns the human readable display name for the exercise.
func (e Exercise) Name() string {
	switch e {
	case PartialSquat:
		return "Partial Squat"
	case HeelRaises:
		return "Heel Raises"
	case SingleLegStance:
		return "Single-Leg Stance"
	case TandemStance:
		return "Tandem Stance"
	case FunctionalReach:
		return "Functional Reach"
	case TreePose:
		return "Tree Pose"
	default:
		return "Unknown"
	}
}

func (e Exercise) String() string {
	return e.Key()
}

// MarshalJSON encodes the exercise as its canonical key.
func (e Exercise) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Key())
}

// UnmarshalJSON decodes an exercise from a canonical key or alias.
func (e *Exercise) UnmarshalJSON(data []byte) error {
	var key string
	if err := json.Unmarshal(data, &key); err != nil {
		return err
	}
	parsed, err := Parse(key)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
