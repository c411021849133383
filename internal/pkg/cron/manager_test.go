package cron

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterJobs_RejectsBadSpec(t *testing.T) {
	mgr := NewCronManager("every day", nil)
	assert.Error(t, mgr.RegisterJobs())
}

func TestRegisterJobs_SixFieldSpec(t *testing.T) {
	mgr := NewCronManager("0 0 4 * * *", nil)
	assert.NoError(t, mgr.RegisterJobs())
	assert.Len(t, mgr.engine.Entries(), 1)
}

func TestInitCron_EmptySpecDisabled(t *testing.T) {
	mgr := NewCronManager("", nil)
	assert.NoError(t, InitCron(mgr))
	assert.Empty(t, mgr.engine.Entries())
	mgr.Stop()
}

func TestInitCron_StartsEngine(t *testing.T) {
	mgr := NewCronManager("0 0 4 * * *", nil)
	assert.NoError(t, InitCron(mgr))
	entries := mgr.engine.Entries()
	assert.Len(t, entries, 1)
	assert.False(t, entries[0].Next.IsZero())
	mgr.Stop()
}

func TestInitCron_WrapsBadSpec(t *testing.T) {
	err := InitCron(NewCronManager("every day", nil))
	assert.ErrorContains(t, err, "register cron jobs")
}
