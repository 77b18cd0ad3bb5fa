package services

import (
	"context"
	"time"

	"github.com/sasha-s/go-deadlock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zapio"

	apperrors "propfund/internal/errors"
)

type operationKey struct{}

// OperationLock serializes every mutating ledger operation of one engine
// instance. The context handed to the guarded function is marked, and a
// nested Run with a marked context fails with ErrReentrantCall instead of
// waiting on itself.
type OperationLock struct {
	mu deadlock.Mutex
}

// NewOperationLock creates an unlocked OperationLock.
func NewOperationLock() *OperationLock {
	return &OperationLock{}
}

// Run executes fn under the lock. The lock is released on every return path.
func (l *OperationLock) Run(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	if name, ok := OperationFromContext(ctx); ok {
		return apperrors.WithMessage(apperrors.ErrReentrantCall, op+" called while "+name+" is in progress")
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return fn(context.WithValue(ctx, operationKey{}, op))
}

// ConfigureLockDetection sets how operation locks report suspected deadlocks.
// Waits longer than timeout are reported; a zero timeout only keeps the lock
// order checks. Reports go to log at error level and the process keeps
// running. Call it once at startup, before any lock is taken.
func ConfigureLockDetection(timeout time.Duration, log *zap.SugaredLogger) {
	deadlock.Opts.DeadlockTimeout = timeout
	deadlock.Opts.LogBuf = &zapio.Writer{Log: log.Desugar(), Level: zapcore.ErrorLevel}
	deadlock.Opts.OnPotentialDeadlock = func() {
		log.Errorw("potential deadlock on the operation lock", "deadlock_timeout", timeout)
	}
}

// OperationFromContext returns the name of the operation ctx is running inside.
func OperationFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(operationKey{}).(string)
	return name, ok
}
