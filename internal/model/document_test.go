package model

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocumentHasDefaultShape(t *testing.T) {
	data, err := json.Marshal(NewDocument())
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"settings": {"goal": 0, "proteinGoal": 0},
		"foods": [],
		"mealPresets": [],
		"mealPresetItems": [],
		"entries": []
	}`, string(data))
}

func TestResolveFoodDegradesToUnknown(t *testing.T) {
	doc := NewDocument()
	doc.Foods = append(doc.Foods, Food{ID: "f1", Name: "Egg", CaloriesPerServing: 70, ServingLabel: "egg"})

	food, ok := doc.ResolveFood("f1")
	require.True(t, ok)
	assert.Equal(t, "Egg", food.Name)

	_, ok = doc.ResolveFood("missing")
	assert.False(t, ok)

	unknown := doc.FoodOrUnknown("missing")
	assert.Equal(t, UnknownFoodName, unknown.Name)
	assert.Equal(t, DefaultServingLabel, unknown.Label())
	assert.Zero(t, unknown.CaloriesPerServing)
}

func TestEntryJSONKeepsAbsentFieldsAbsent(t *testing.T) {
	at := time.Date(2024, 5, 1, 8, 30, 0, 0, time.Local)
	quick := NewQuickEntry("e1", "2024-05-01", 300, at)

	data, err := json.Marshal(quick)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "servings")
	assert.NotContains(t, string(data), "foodId")

	var decoded Entry
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, quick, decoded)
	assert.Equal(t, 1.0, decoded.ServingsOrDefault())
}

func TestNewFoodEntryKeepsZeroServings(t *testing.T) {
	entry := NewFoodEntry("e1", "2024-05-01", "f1", 0, time.Now())
	require.NotNil(t, entry.Servings)
	assert.Zero(t, entry.ServingsOrDefault())

	entry = NewFoodEntry("e2", "2024-05-01", "f1", -2, time.Now())
	assert.Zero(t, entry.ServingsOrDefault())
}

func TestParseDateKey(t *testing.T) {
	key, err := ParseDateKey("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", key)

	for _, raw := range []string{"", "2024-2-1", "2023-02-29", "yesterday"} {
		_, err := ParseDateKey(raw)
		assert.ErrorIs(t, err, ErrInvalidDateKey, "raw %q", raw)
	}
}

func TestItemsForPresetFiltersByPreset(t *testing.T) {
	doc := NewDocument()
	doc.MealPresetItems = []MealPresetItem{
		NewMealPresetItem("i1", "p1", "f1", 1),
		NewMealPresetItem("i2", "p2", "f1", 1),
		NewMealPresetItem("i3", "p1", "f2", 2),
	}

	items := doc.ItemsForPreset("p1")
	require.Len(t, items, 2)
	assert.Equal(t, "i1", items[0].ID)
	assert.Equal(t, "i3", items[1].ID)
	assert.Empty(t, doc.ItemsForPreset("nope"))
}

func TestNormalizeServings(t *testing.T) {
	assert.Equal(t, 1.0, NormalizeServings(math.NaN()))
	assert.Equal(t, 1.0, NormalizeServings(math.Inf(1)))
	assert.Zero(t, NormalizeServings(-0.5))
	assert.Equal(t, 0.25, NormalizeServings(0.25))
}
