package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLeaseTerm(t *testing.T) {
	start := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	gotStart, gotEnd := LeaseTerm(start)

	assert.Equal(t, start, gotStart)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), gotEnd)
}

func TestLeaseTermCrossesYearEnd(t *testing.T) {
	start := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)

	_, end := LeaseTerm(start)

	assert.Equal(t, time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), end)
}

func TestValidApplicationStatus(t *testing.T) {
	assert.True(t, ValidApplicationStatus(ApplicationStatusPending))
	assert.True(t, ValidApplicationStatus(ApplicationStatusDenied))
	assert.True(t, ValidApplicationStatus(ApplicationStatusApproved))
	assert.False(t, ValidApplicationStatus("Rejected"))
	assert.False(t, ValidApplicationStatus(""))
	assert.False(t, ValidApplicationStatus("approved"))
}
