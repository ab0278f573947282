package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hus/internal/domains/room/model"
)

func TestSeedInventory(t *testing.T) {
	rooms := model.SeedInventory()
	require.Len(t, rooms, 28)

	assert.Equal(t, 1, rooms[0].ID)
	assert.Equal(t, "001", rooms[0].Number)
	assert.Equal(t, model.TypeStandard, rooms[0].Type)
	assert.Equal(t, float64(1500), rooms[0].BaseRate)
	assert.Equal(t, float64(1800), rooms[0].WeekendRate)

	assert.Equal(t, "011", rooms[10].Number)
	assert.Equal(t, model.TypeDeluxe, rooms[10].Type)
	assert.Equal(t, float64(2200), rooms[10].BaseRate)

	assert.Equal(t, "021", rooms[20].Number)
	assert.Equal(t, model.TypeSuite, rooms[20].Type)
	assert.Equal(t, float64(3500), rooms[20].BaseRate)

	for _, room := range rooms {
		assert.Equal(t, model.StatusAvailable, room.Status)
	}
}

func TestValidators(t *testing.T) {
	assert.True(t, model.ValidStatus(model.StatusMaintenance))
	assert.False(t, model.ValidStatus(model.Status("BROKEN")))

	assert.True(t, model.ValidType(model.TypeDeluxe))
	assert.False(t, model.ValidType(model.Type("Penthouse")))
}
