package repositories

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestUnitOfWork_NoopsWithoutActiveUnit(t *testing.T) {
	logger, hook := test.NewNullLogger()
	u := NewUnitOfWork(nil, logger)

	// Commit and rollback with no active unit are warnings, not errors.
	assert.NoError(t, u.Commit())
	assert.NoError(t, u.Rollback())
	assert.False(t, u.Active())

	entries := hook.AllEntries()
	assert.Len(t, entries, 2)
	assert.Equal(t, logrus.WarnLevel, entries[0].Level)
	assert.Equal(t, logrus.WarnLevel, entries[1].Level)

	// Close with nothing open stays silent.
	hook.Reset()
	u.Close()
	assert.Empty(t, hook.AllEntries())
}
