package planner

import (
	"strings"
	"testing"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"vitatrack/internal/database"
	"vitatrack/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// in-memory sqlite is per-connection
	db.DB().SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { db.Close() })
	return db
}

func seedEvaluatedUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	user := models.NewUser("u@example.com", "Test User", "hash")
	require.NoError(t, db.Create(user).Error)

	eval := models.Evaluation{
		ID:            user.ID,
		UserID:        user.ID,
		Age:           30,
		Gender:        models.GenderMale,
		Weight:        80,
		Height:        180,
		ActivityLevel: models.ActivityModeratelyActive,
		Goal:          models.GoalLoseWeight,
	}
	require.NoError(t, db.Create(&eval).Error)
	return user
}

func awaitUpdate(t *testing.T, ch chan Update) Update {
	t.Helper()
	select {
	case update := <-ch:
		return update
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for plan update")
		return Update{}
	}
}

func TestNutritionGenerationFallback(t *testing.T) {
	db := newTestDB(t)
	user := seedEvaluatedUser(t, db)

	plan := models.NewNutritionPlan(user.ID, 1, 2000)
	require.NoError(t, db.Create(plan).Error)

	w := NewWorker(db, nil, zap.NewNop())
	defer w.Stop()
	updates := w.Subscribe()
	defer w.Unsubscribe(updates)

	require.True(t, w.Enqueue(Job{PlanID: plan.ID, PlanType: PlanTypeNutrition, UserID: user.ID}))

	update := awaitUpdate(t, updates)
	assert.Equal(t, plan.ID, update.PlanID)
	assert.Equal(t, PlanTypeNutrition, update.PlanType)
	assert.Equal(t, models.PlanStatusReady, update.Status)

	var stored models.NutritionPlan
	require.NoError(t, db.Where("id = ?", plan.ID).First(&stored).Error)
	assert.Equal(t, models.PlanStatusReady, stored.Status)
	assert.Len(t, stored.Meals, 7)
}

func TestWorkoutGenerationFallback(t *testing.T) {
	db := newTestDB(t)
	user := seedEvaluatedUser(t, db)

	plan := models.NewWorkoutPlan(user.ID, 1)
	require.NoError(t, db.Create(plan).Error)

	w := NewWorker(db, nil, zap.NewNop())
	defer w.Stop()
	updates := w.Subscribe()
	defer w.Unsubscribe(updates)

	require.True(t, w.Enqueue(Job{PlanID: plan.ID, PlanType: PlanTypeWorkout, UserID: user.ID}))

	update := awaitUpdate(t, updates)
	assert.Equal(t, models.PlanStatusReady, update.Status)

	var stored models.WorkoutPlan
	require.NoError(t, db.Where("id = ?", plan.ID).First(&stored).Error)
	assert.Equal(t, models.PlanStatusReady, stored.Status)
	assert.NotEmpty(t, stored.Sessions)
	for day, session := range stored.Sessions {
		assert.Equal(t, strings.ToLower(day), day)
		assert.NotEmpty(t, session.Exercises)
	}
}

func TestGenerationFailsWithoutEvaluation(t *testing.T) {
	db := newTestDB(t)
	user := models.NewUser("bare@example.com", "No Eval", "hash")
	require.NoError(t, db.Create(user).Error)

	plan := models.NewNutritionPlan(user.ID, 1, 2000)
	require.NoError(t, db.Create(plan).Error)

	w := NewWorker(db, nil, zap.NewNop())
	defer w.Stop()
	updates := w.Subscribe()
	defer w.Unsubscribe(updates)

	require.True(t, w.Enqueue(Job{PlanID: plan.ID, PlanType: PlanTypeNutrition, UserID: user.ID}))

	update := awaitUpdate(t, updates)
	assert.Equal(t, models.PlanStatusFailed, update.Status)

	var stored models.NutritionPlan
	require.NoError(t, db.Where("id = ?", plan.ID).First(&stored).Error)
	assert.Equal(t, models.PlanStatusFailed, stored.Status)
}

func TestStopClosesSubscribers(t *testing.T) {
	db := newTestDB(t)
	w := NewWorker(db, nil, zap.NewNop())

	ch := w.Subscribe()
	w.Stop()

	_, open := <-ch
	assert.False(t, open)

	// Unsubscribing after Stop must not double-close.
	w.Unsubscribe(ch)
}

func TestSubscribeUnsubscribe(t *testing.T) {
	db := newTestDB(t)
	w := NewWorker(db, nil, zap.NewNop())
	defer w.Stop()

	ch := w.Subscribe()
	w.Unsubscribe(ch)

	// Unsubscribing twice must not panic.
	w.Unsubscribe(ch)

	_, open := <-ch
	assert.False(t, open)
}
