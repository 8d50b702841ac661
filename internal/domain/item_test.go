package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem_AllRarities(t *testing.T) {
	for _, r := range Rarities() {
		t.Run(string(r), func(t *testing.T) {
			item, err := NewItem("Trinket", 1, r)
			require.NoError(t, err)
			require.NotNil(t, item)

			assert.Equal(t, r, item.Rarity())
			assert.Contains(t, item.Info(), string(r))
		})
	}
}

func TestNewItem_InvalidRarity(t *testing.T) {
	item, err := NewItem("Relic", 1, "mythical")

	assert.Nil(t, item)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "invalid rarity value: mythical")

	var argErr *InvalidArgumentError
	require.True(t, errors.As(err, &argErr))
	assert.Equal(t, ArgRarity, argErr.Argument)
	assert.Equal(t, "mythical", argErr.Value)
}

func TestItem_StoresFields(t *testing.T) {
	item, err := NewItem("Steel Sword", 3.5, RarityRare)
	require.NoError(t, err)

	assert.Equal(t, "Steel Sword", item.Name())
	assert.InDelta(t, 3.5, item.Weight(), 0.0001)
	assert.Equal(t, RarityRare, item.Rarity())
}

func TestItem_InfoAndSetWeight(t *testing.T) {
	item, err := NewItem("Steel Sword", 3.5, RarityRare)
	require.NoError(t, err)

	assert.Equal(t, "Steel Sword (Weight: 3.5, Rarity: rare)", item.Info())

	item.SetWeight(4.0)
	assert.Equal(t, "Steel Sword (Weight: 4, Rarity: rare)", item.Info())
}

func TestItem_SetWeight_Unbounded(t *testing.T) {
	item, err := NewItem("Feather", 0.1, RarityCommon)
	require.NoError(t, err)

	item.SetWeight(-2.25)
	assert.InDelta(t, -2.25, item.Weight(), 0.0001)
	assert.Equal(t, "Feather (Weight: -2.25, Rarity: common)", item.Info())

	item.SetWeight(0)
	assert.Equal(t, "Feather (Weight: 0, Rarity: common)", item.Info())
}

func TestItem_InfoIsPure(t *testing.T) {
	item, err := NewItem("Rope", 2, RarityUncommon)
	require.NoError(t, err)

	first := item.Info()
	assert.Equal(t, first, item.Info())
	assert.InDelta(t, 2.0, item.Weight(), 0.0001)
}
