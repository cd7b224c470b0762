package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/MarketBot_Go/internal/domain"
)

func TestDecidePrice(t *testing.T) {
	tests := []struct {
		name                            string
		current, lowest, floor, ceiling int64
		want                            int64
	}{
		{"inside bounds undercuts", 1200, 1100, 900, 1300, 1099},
		{"below floor unchanged", 1200, 700, 900, 1300, 1200},
		{"exactly at floor unchanged", 1200, 700, 700, 1300, 1200},
		{"above ceiling unchanged", 1200, 1500, 900, 1300, 1200},
		{"exactly at ceiling undercuts", 1200, 1300, 900, 1300, 1299},
		{"one above floor lands on floor", 1200, 901, 900, 1300, 900},
		{"no competing price", 1200, 0, 900, 1300, 1200},
		{"may raise price", 1000, 1250, 900, 1300, 1249},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecidePrice(tt.current, tt.lowest, tt.floor, tt.ceiling)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, DecidePrice(tt.current, tt.lowest, tt.floor, tt.ceiling), "must be deterministic")
		})
	}
}

func TestDecidePriceNeverBelowFloor(t *testing.T) {
	const floor, ceiling = int64(500), int64(800)
	for lowest := int64(0); lowest <= 1000; lowest++ {
		got := DecidePrice(650, lowest, floor, ceiling)
		assert.GreaterOrEqual(t, got, floor, "lowest=%d", lowest)
		assert.LessOrEqual(t, got, ceiling, "lowest=%d", lowest)
	}
}

func TestEvaluate(t *testing.T) {
	base := domain.ListedItem{ID: "42", Price: 1200, QueuePosition: 3, FloorPrice: 900, CeilingPrice: 1300}

	t.Run("applies undercut", func(t *testing.T) {
		d := Evaluate(base, 1100)
		assert.Equal(t, domain.OutcomeApply, d.Outcome)
		assert.Equal(t, int64(1099), d.NewPrice)
		assert.True(t, d.Changed())
	})

	t.Run("first in queue passes", func(t *testing.T) {
		item := base
		item.QueuePosition = 1
		d := Evaluate(item, 1100)
		assert.Equal(t, domain.OutcomePass, d.Outcome)
		assert.Equal(t, ReasonFirstInQueue, d.Reason)
		assert.Equal(t, int64(1200), d.NewPrice)
	})

	t.Run("unlisted position passes", func(t *testing.T) {
		item := base
		item.QueuePosition = 0
		assert.Equal(t, domain.OutcomePass, Evaluate(item, 1100).Outcome)
	})

	t.Run("unchanged passes", func(t *testing.T) {
		d := Evaluate(base, 700)
		assert.Equal(t, domain.OutcomePass, d.Outcome)
		assert.Equal(t, ReasonUnchanged, d.Reason)
		assert.False(t, d.Changed())
	})

	t.Run("ceiling below floor is a user input error", func(t *testing.T) {
		item := base
		item.FloorPrice = 1000
		item.CeilingPrice = 800

		d := Evaluate(item, 900)
		assert.Equal(t, domain.OutcomePolicyViolation, d.Outcome)
		assert.Equal(t, ReasonCeilingBelowFloor, d.Reason)
		assert.Equal(t, int64(1200), d.NewPrice)

		assert.Equal(t, ReasonCeilingBelowFloor, EvaluateReset(item).Reason)
	})
}

func TestEvaluateReset(t *testing.T) {
	item := domain.ListedItem{ID: "42", Price: 1099, QueuePosition: 1, FloorPrice: 900, CeilingPrice: 1300}

	d := EvaluateReset(item)
	assert.Equal(t, domain.OutcomeApply, d.Outcome)
	assert.Equal(t, int64(1300), d.NewPrice)

	item.Price = 1300
	assert.Equal(t, domain.OutcomePass, EvaluateReset(item).Outcome)
}
