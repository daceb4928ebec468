package store

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/platelog/internal/db"
	"github.com/platelog/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupStoreTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := db.Open(dsn, logger.Default.LogMode(logger.Silent))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close(gdb) })
	return gdb
}

func sampleDocument() model.Document {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.Local)
	doc := model.NewDocument()
	doc.Settings = model.Settings{DailyCalorieGoal: 2200, DailyProteinGoal: 140}
	doc.Foods = []model.Food{
		{ID: "f1", Name: "Chicken thigh", CaloriesPerServing: 150, ProteinPerServing: 25, ServingLabel: "1 thigh"},
		{ID: "f2", Name: "Rice", CaloriesPerServing: 90.33, ProteinPerServing: 1.9, CarbsPerServing: 20.1, ServingLabel: "100g"},
	}
	doc.MealPresets = []model.MealPreset{{ID: "p1", Name: "Lunch"}}
	doc.MealPresetItems = []model.MealPresetItem{
		model.NewMealPresetItem("i1", "p1", "f1", 2),
		model.NewMealPresetItem("i2", "p1", "f2", 1.5),
	}
	doc.Entries = []model.Entry{
		model.NewFoodEntry("e1", "2024-05-01", "f1", 2, at),
		model.NewQuickEntry("e2", "2024-05-01", 300, at.Add(time.Minute)),
		model.NewFoodEntry("e3", "2024-04-30", "deleted-food", 0, at.Add(-24*time.Hour)),
	}
	return doc
}

func TestLoadReturnsDefaultWhenMissing(t *testing.T) {
	s := NewDocumentStore(setupStoreTestDB(t), "")
	assert.Equal(t, db.DefaultDocumentKey, s.Key())

	doc, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.NewDocument(), doc)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewDocumentStore(setupStoreTestDB(t), "test_doc")

	doc := sampleDocument()
	require.NoError(t, s.Save(ctx, doc))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, doc, loaded)

	// 第二次保存覆盖第一次
	doc.Foods = doc.Foods[:1]
	require.NoError(t, s.Save(ctx, doc))
	loaded, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, loaded.Foods, 1)
}

func TestLoadTreatsNullValueAsDefault(t *testing.T) {
	gdb := setupStoreTestDB(t)
	require.NoError(t, gdb.Create(&db.DocumentBlob{Key: "k", Value: datatypes.JSON("null")}).Error)

	doc, err := NewDocumentStore(gdb, "k").Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.NewDocument(), doc)
}

func TestLoadFillsMissingCollections(t *testing.T) {
	gdb := setupStoreTestDB(t)
	raw := `{"settings":{"goal":1800},"foods":[{"id":"f1","name":"Egg","caloriesPerServing":70,"proteinPerServing":6,"carbsPerServing":0,"servingLabel":"egg"}]}`
	require.NoError(t, gdb.Create(&db.DocumentBlob{Key: "k", Value: datatypes.JSON(raw)}).Error)

	doc, err := NewDocumentStore(gdb, "k").Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1800, doc.Settings.DailyCalorieGoal)
	assert.Len(t, doc.Foods, 1)
	assert.NotNil(t, doc.Entries)
	assert.NotNil(t, doc.MealPresets)
	assert.NotNil(t, doc.MealPresetItems)
}

func TestLoadRejectsCorruptValue(t *testing.T) {
	gdb := setupStoreTestDB(t)
	require.NoError(t, gdb.Create(&db.DocumentBlob{Key: "k", Value: datatypes.JSON(`{"foods": 3}`)}).Error)

	_, err := NewDocumentStore(gdb, "k").Load(context.Background())
	assert.Error(t, err)
}

func TestResetRestoresDefaultAndAllowsNewSaves(t *testing.T) {
	ctx := context.Background()
	s := NewDocumentStore(setupStoreTestDB(t), "k")

	require.NoError(t, s.Save(ctx, sampleDocument()))
	require.NoError(t, s.Reset(ctx))

	doc, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.NewDocument(), doc)

	fresh := model.NewDocument()
	fresh.Settings.DailyCalorieGoal = 1500
	require.NoError(t, s.Save(ctx, fresh))

	doc, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1500, doc.Settings.DailyCalorieGoal)
}

func TestStoresWithDifferentKeysAreIsolated(t *testing.T) {
	ctx := context.Background()
	gdb := setupStoreTestDB(t)
	a := NewDocumentStore(gdb, "a")
	b := NewDocumentStore(gdb, "b")

	require.NoError(t, a.Save(ctx, sampleDocument()))

	doc, err := b.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, doc.Foods)
}
