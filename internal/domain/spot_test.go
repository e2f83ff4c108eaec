package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpot_Satisfies(t *testing.T) {
	charger := &Spot{ID: 1, RowLabel: "A", Number: 1, HasCharger: true}
	plain := &Spot{ID: 2, RowLabel: "B", Number: 1, HasCharger: false}

	// Заявке с зарядкой подходят только места с зарядкой
	assert.True(t, charger.Satisfies(true))
	assert.False(t, plain.Satisfies(true))

	// Заявке без зарядки подходит любое место
	assert.True(t, charger.Satisfies(false))
	assert.True(t, plain.Satisfies(false))
}

func TestSpot_Label(t *testing.T) {
	s := &Spot{RowLabel: "A", Number: 12}
	assert.Equal(t, "A-12", s.Label())
}
