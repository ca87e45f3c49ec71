// Package recurrence decides what happens to a chore when it is
// completed: who it rotates to and whether the completion persists or
// re-arms the chore for its next occurrence.
//
// The functions here are pure; the service layer applies the returned
// outcome to the stored chore in a single-row update.
package recurrence

import (
	"time"

	"github.com/nkale/homeboard/internal/apperr"
	"github.com/nkale/homeboard/internal/models"
)

// Outcome is the post-completion state of a chore.
type Outcome struct {
	// AssignedTo is the next assignee. Equal to the previous assignee
	// when rotation is off or the assignee is not in the rotation.
	AssignedTo string

	// IsComplete is the persisted completion flag. Always false for
	// recurring chores.
	IsComplete bool

	// CompletedAt is the persisted completion timestamp (Unix
	// seconds). Zero for recurring chores.
	CompletedAt int64
}

// Advance returns the rotation element after current, wrapping around.
// If current is not in the rotation the assignment stays put: rotating
// past an unknown assignee would silently skip someone's turn.
func Advance(rotation []string, current string) string {
	for i, id := range rotation {
		if id == current {
			return rotation[(i+1)%len(rotation)]
		}
	}
	return current
}

// Complete computes a chore's state after a completion event at now.
//
// A recurring chore is an instantaneous transition back to pending:
// the rotation advances but the stored completion flag and timestamp
// stay cleared. A non-recurring chore completes terminally.
func Complete(chore *models.Chore, now time.Time) Outcome {
	out := Outcome{AssignedTo: chore.AssignedTo}

	if chore.UseRotation && len(chore.RotationOrder) > 0 {
		out.AssignedTo = Advance(chore.RotationOrder, chore.AssignedTo)
	}

	if !chore.IsRecurring {
		out.IsComplete = true
		out.CompletedAt = now.Unix()
	}
	return out
}

// ValidateConfig checks a chore's recurrence configuration.
func ValidateConfig(chore *models.Chore) error {
	if !chore.RecurrencePattern.Valid() {
		return apperr.Newf(apperr.KindValidation, "unknown recurrence pattern %q", chore.RecurrencePattern)
	}
	if chore.IsRecurring && chore.RecurrencePattern == models.RecurrenceNone {
		return apperr.New(apperr.KindValidation, "recurring chores need a recurrence pattern")
	}
	if chore.RecurrencePattern == models.RecurrenceWeekly {
		if chore.RecurrenceDayOfWeek < 0 || chore.RecurrenceDayOfWeek > 6 {
			return apperr.New(apperr.KindValidation, "weekly chores need a day of week between 0 and 6")
		}
	}
	return nil
}
