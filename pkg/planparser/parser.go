// Package planparser turns free-form Korean scheduling text into plan candidates without calling a model.
//
// Parse is a pure function of its input and the supplied clock. It keeps no state and is safe for
// concurrent use.
package planparser

import (
	"fmt"
	"sort"
	"time"
)

// Parse extracts plans from text. Every returned task carries now's date.
// Clauses without an explicit time receive consecutive hours starting one hour after now.
// Clauses that reduce to an empty title are dropped.
func Parse(text string, now time.Time) []Task {
	today := now.Format(DateFormat)
	tasks := make([]Task, 0)

	for _, clause := range SplitClauses(text) {
		title := ExtractTitle(clause)
		if title == "" {
			continue
		}

		clock, ok := ExtractTime(clause)
		if !ok {
			clock = fallbackTime(now, len(tasks))
		}

		tasks = append(tasks, Task{
			Title: capitalize(title),
			Time:  clock,
			Date:  today,
		})
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Time < tasks[j].Time
	})
	return tasks
}

// fallbackTime schedules the n-th accepted task n+1 hours after now, on the hour.
func fallbackTime(now time.Time, n int) string {
	return fmt.Sprintf(timeFormat, (now.Hour()+1+n)%24, 0)
}
