package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProgress() ClaimProgress {
	d := "2024-06-15"
	return ClaimProgress{
		PackageID:    1,
		CurrentStage: 0,
		Stages: []ClaimStage{
			{Name: "Transferred Ownership", Completed: true, Date: &d},
			{Name: "Awaiting Disbursement"},
			{Name: "Attorney Received Check"},
			{Name: "Attorney Disbursed Funds"},
			{Name: "Returns Paid Out"},
		},
	}
}

func TestAdvanceToStampsDatesOnce(t *testing.T) {
	p := newProgress()

	p.AdvanceTo(2, "2024-07-01")
	require.True(t, p.Stages[1].Completed)
	require.True(t, p.Stages[2].Completed)
	assert.Equal(t, "2024-06-15", *p.Stages[0].Date)
	assert.Equal(t, "2024-07-01", *p.Stages[1].Date)
	assert.Equal(t, "2024-07-01", *p.Stages[2].Date)

	// Same stage on a later day: no date moves.
	p.AdvanceTo(2, "2024-07-15")
	assert.Equal(t, "2024-07-01", *p.Stages[1].Date)
	assert.Equal(t, "2024-07-01", *p.Stages[2].Date)
}

func TestAdvanceToClearsLaterStages(t *testing.T) {
	p := newProgress()

	p.AdvanceTo(3, "2024-07-01")
	p.AdvanceTo(1, "2024-07-02")

	assert.Equal(t, 1, p.CurrentStage)
	assert.True(t, p.Stages[1].Completed)
	assert.Equal(t, "2024-07-01", *p.Stages[1].Date)
	for i := 2; i < len(p.Stages); i++ {
		assert.False(t, p.Stages[i].Completed)
		assert.Nil(t, p.Stages[i].Date)
	}
}

func TestAdvanceToLowerThenRaiseKeepsEarlyDates(t *testing.T) {
	p := newProgress()

	p.AdvanceTo(2, "2024-07-01")
	p.AdvanceTo(1, "2024-07-02")
	p.AdvanceTo(2, "2024-07-03")

	// Stages 0 and 1 keep the date of their first completion; stage 2 was
	// reset in between, so it restamps.
	assert.Equal(t, "2024-06-15", *p.Stages[0].Date)
	assert.Equal(t, "2024-07-01", *p.Stages[1].Date)
	assert.Equal(t, "2024-07-03", *p.Stages[2].Date)
}
