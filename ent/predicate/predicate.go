// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Deliverable is the predicate function for deliverable builders.
type Deliverable func(*sql.Selector)

// GenerationEvent is the predicate function for generationevent builders.
type GenerationEvent func(*sql.Selector)

// LevelProgress is the predicate function for levelprogress builders.
type LevelProgress func(*sql.Selector)

// PerformanceRecord is the predicate function for performancerecord builders.
type PerformanceRecord func(*sql.Selector)
