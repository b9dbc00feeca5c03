package engine

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rafaelvbatista/grana/internal/common"
)

// Observer receives the failures the engine absorbs. Classify and Learn
// never surface errors to their callers; anything that goes wrong with
// persistence lands here instead so it stays observable.
type Observer interface {
	// StorageError reports a rule store read or write failure.
	StorageError(op string, err error)
	// ClassificationPanic reports a recovered panic during batch
	// classification.
	ClassificationPanic(description string, recovered any)
}

// LogObserver is the default Observer: it writes failures to the global
// structured logger. Malformed persisted data logs at error level,
// everything else at warn, so corruption is distinguishable from a
// merely unavailable backend.
type LogObserver struct{}

// StorageError logs a storage failure.
func (o *LogObserver) StorageError(op string, err error) {
	fields := common.Fields{"op": op}
	if isMalformed(err) {
		common.LogError(err, "discarding malformed persisted rules", fields)
		return
	}
	common.LogWarn("rule persistence unavailable, continuing without learned rules", common.Fields{
		"op":    op,
		"error": err.Error(),
	})
}

// ClassificationPanic logs a recovered batch panic.
func (o *LogObserver) ClassificationPanic(description string, recovered any) {
	common.LogError(fmt.Errorf("panic: %v", recovered), "classification failed, using fallback", common.Fields{
		"description": description,
	})
}

func isMalformed(err error) bool {
	return errors.Is(err, common.ErrMalformedRecord)
}

// RecordingObserver collects events for tests to assert on.
type RecordingObserver struct {
	mu     sync.Mutex
	Errors []ObservedError
	Panics []string
}

// ObservedError is one recorded storage failure.
type ObservedError struct {
	Op  string
	Err error
}

// StorageError records a storage failure.
func (o *RecordingObserver) StorageError(op string, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.Errors = append(o.Errors, ObservedError{Op: op, Err: err})
}

// ClassificationPanic records a recovered batch panic.
func (o *RecordingObserver) ClassificationPanic(description string, _ any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.Panics = append(o.Panics, description)
}
