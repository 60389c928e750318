package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"reservas/services"
	"reservas/services/logger"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingJob struct {
	runs int
	at   time.Time
	err  error
}

func (j *countingJob) Run(_ context.Context, now time.Time) (services.ExtendReport, error) {
	j.runs++
	j.at = now
	return services.ExtendReport{Checked: 1}, j.err
}

func TestRunAutoExtendWithoutRedis(t *testing.T) {
	job := &countingJob{}
	now := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

	assert.True(t, RunAutoExtend(context.Background(), job, nil, logger.Nop(), now))
	assert.Equal(t, 1, job.runs)
	assert.Equal(t, now, job.at)

	job.err = errors.New("fallo")
	assert.True(t, RunAutoExtend(context.Background(), job, nil, logger.Nop(), now))
	assert.Equal(t, 2, job.runs)
}

type fakeLock struct {
	held       bool
	acquireErr error
	acquired   int
	released   []string
}

func (l *fakeLock) Acquire(context.Context) (string, bool, error) {
	if l.acquireErr != nil {
		return "", false, l.acquireErr
	}
	if l.held {
		return "", false, nil
	}
	l.held = true
	l.acquired++
	return "token-" + string(rune('0'+l.acquired)), true, nil
}

func (l *fakeLock) Release(_ context.Context, token string) error {
	l.held = false
	l.released = append(l.released, token)
	return nil
}

func TestRunAutoExtendReleasesLockEachRun(t *testing.T) {
	job := &countingJob{}
	lock := &fakeLock{}
	now := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

	assert.True(t, RunAutoExtend(context.Background(), job, lock, logger.Nop(), now))
	assert.True(t, RunAutoExtend(context.Background(), job, lock, logger.Nop(), now.Add(time.Minute)))
	assert.Equal(t, 2, job.runs)
	assert.Equal(t, []string{"token-1", "token-2"}, lock.released)
	assert.False(t, lock.held)

	job.err = errors.New("fallo")
	assert.True(t, RunAutoExtend(context.Background(), job, lock, logger.Nop(), now))
	assert.Len(t, lock.released, 3)
	assert.False(t, lock.held)
}

func TestRunAutoExtendSkipsWhenLockHeld(t *testing.T) {
	job := &countingJob{}
	lock := &fakeLock{held: true}

	assert.False(t, RunAutoExtend(context.Background(), job, lock, logger.Nop(), time.Now()))
	assert.Zero(t, job.runs)
	assert.Empty(t, lock.released)
}

func TestRunAutoExtendRunsWhenLockFails(t *testing.T) {
	job := &countingJob{}
	lock := &fakeLock{acquireErr: errors.New("redis caído")}

	assert.True(t, RunAutoExtend(context.Background(), job, lock, logger.Nop(), time.Now()))
	assert.Equal(t, 1, job.runs)
	assert.Empty(t, lock.released)
}

func TestInitCronJobsRejectsBadSchedule(t *testing.T) {
	c := cron.New()
	defer c.Stop()

	assert.Error(t, InitCronJobs(c, "no es cron", &countingJob{}, nil, nil))
	require.NoError(t, InitCronJobs(c, "*/5 * * * *", &countingJob{}, nil, nil))
	assert.Len(t, c.Entries(), 1)
}
