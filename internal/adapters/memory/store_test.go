package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spacecargo/internal/adapters/memory"
	"github.com/andrescamacho/spacecargo/internal/domain/navigation"
	"github.com/andrescamacho/spacecargo/internal/domain/shared"
)

func TestPlanetStore_AddAndFind(t *testing.T) {
	// Arrange
	ctx := context.Background()
	store := memory.NewPlanetStore()
	earth, err := navigation.NewPlanet("Earth", shared.MustNewCoordinates(1, 1), 100)
	require.NoError(t, err)

	// Act
	require.NoError(t, store.Add(ctx, earth))
	found, err := store.FindByName(ctx, "Earth")

	// Assert
	require.NoError(t, err)
	assert.Same(t, earth, found)

	_, err = store.FindByName(ctx, "Mars")
	assert.ErrorIs(t, err, navigation.ErrPlanetNotFound)

	assert.ErrorIs(t, store.Add(ctx, earth), navigation.ErrAlreadyRegistered)
}

func TestVesselStore_ListSortedByName(t *testing.T) {
	// Arrange
	ctx := context.Background()
	store := memory.NewVesselStore()
	for _, name := range []string{"Nostromo", "Falcon", "Serenity"} {
		vessel, err := navigation.NewVessel(name, navigation.InTransit(shared.MustNewCoordinates(0, 0)), 10)
		require.NoError(t, err)
		require.NoError(t, store.Add(ctx, vessel))
	}

	// Act
	vessels, err := store.List(ctx)

	// Assert
	require.NoError(t, err)
	require.Len(t, vessels, 3)
	assert.Equal(t, "Falcon", vessels[0].Name())
	assert.Equal(t, "Nostromo", vessels[1].Name())
	assert.Equal(t, "Serenity", vessels[2].Name())

	_, err = store.FindByName(ctx, "Rocinante")
	assert.ErrorIs(t, err, navigation.ErrVesselNotFound)
}

func TestVesselStore_ConcurrentAdds(t *testing.T) {
	ctx := context.Background()
	store := memory.NewVesselStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			vessel, err := navigation.NewVessel(string(rune('A'+i)), navigation.InTransit(shared.MustNewCoordinates(0, 0)), 1)
			if err == nil {
				_ = store.Add(ctx, vessel)
			}
		}(i)
	}
	wg.Wait()

	vessels, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, vessels, 50)
}
