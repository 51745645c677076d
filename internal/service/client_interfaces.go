package service

import (
	"context"
	"time"

	"github.com/MKhiriev/kundelik/models"
)

// Tracker is the part of every entity controller that does not depend on the
// entity's own intents.
type Tracker[T any] interface {
	// Name identifies the tracker in logs.
	Name() string

	// Load fetches the entity from the server (or the local blob in offline
	// mode) and replaces the local state. On failure the last known-good
	// data stays visible and the error is stored in the snapshot.
	Load(ctx context.Context) (T, error)

	// Refresh is Load for callers that only need the error.
	Refresh(ctx context.Context) error

	// Reset clears the entity server-side and sets the local state to its
	// zero value without a refetch.
	Reset(ctx context.Context) (T, error)

	// Snapshot returns a consistent copy of the current state.
	Snapshot() Snapshot[T]

	// Close cancels in-flight work and discards late results. Calls made
	// after Close fail with ErrControllerClosed.
	Close()
}

// WaterService tracks water intake against the daily goal.
type WaterService interface {
	Tracker[models.WaterLog]

	// AddIntake parses amount as whole millilitres and records a drink.
	AddIntake(ctx context.Context, amount string) (models.WaterLog, error)

	// AddPreset records a drink of one of the quick-add amounts.
	AddPreset(ctx context.Context, ml int) (models.WaterLog, error)
}

// SleepService tracks sleep sessions. At most one session is open at a time.
type SleepService interface {
	Tracker[models.SleepLog]

	// StartSleep fails with ErrAlreadyActive when a session is open.
	StartSleep(ctx context.Context) (models.SleepLog, error)

	// EndSleep fails with ErrNoActiveSession, without a network call, when
	// no session is open.
	EndSleep(ctx context.Context) (models.SleepLog, error)
}

// NutritionService tracks the calories of the fixed meal slots of the day.
type NutritionService interface {
	Tracker[models.NutritionDay]

	// Update sets the calories or the time of one meal from user input.
	Update(ctx context.Context, mealID int64, field models.MealField, value string) (models.NutritionDay, error)
}

// ProgressService tracks body weight against a goal and body measurements.
type ProgressService interface {
	Tracker[models.ProgressRecord]

	SetCurrentWeight(value string) (models.ProgressRecord, error)
	SetGoalWeight(value string) (models.ProgressRecord, error)

	// RecordEntry sends both weights and appends them to the history.
	RecordEntry(ctx context.Context) (models.ProgressRecord, error)

	EditMeasurement(field models.MeasurementField, value string) (models.ProgressRecord, error)

	// CommitMeasurements sends edited measurements; a no-op when nothing
	// changed since the last commit.
	CommitMeasurements(ctx context.Context) (models.ProgressRecord, error)
}

// ClientAuthService defines the client-side contract for registration, login
// and logout. A successful login or registration establishes the session
// every tracker authenticates with.
type ClientAuthService interface {
	// Register validates the form, creates the account and establishes
	// the session the server returns.
	Register(ctx context.Context, username, email, password, confirm string) (models.User, error)

	// Login validates the form, exchanges the credentials for a session and
	// establishes it.
	Login(ctx context.Context, email, password string) (models.User, error)

	// Logout clears the session.
	Logout(ctx context.Context) error

	// Session returns the current session.
	Session() models.Session
}

// ClientRefresher reloads every tracker.
type ClientRefresher interface {
	// RefreshAll loads all trackers concurrently and returns the joined
	// errors of those that failed.
	RefreshAll(ctx context.Context) error
}

// ClientRefreshJob defines the contract for a background worker that
// periodically reloads the trackers while a session exists.
type ClientRefreshJob interface {
	// Run starts the job with the interval it was configured with.
	Run(ctx context.Context)

	// Start launches the background goroutine. It refreshes every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
