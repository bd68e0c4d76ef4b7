package planner

import (
	"context"
	"sync"
	"time"

	"github.com/jinzhu/gorm"
	"go.uber.org/zap"

	"vitatrack/internal/ai"
	"vitatrack/internal/models"
	"vitatrack/internal/monitoring"
)

// Plan types handled by the worker.
const (
	PlanTypeNutrition = "nutrition"
	PlanTypeWorkout   = "workout"
)

const generationTimeout = 90 * time.Second

// Job asks the worker to generate the contents of a pending plan.
type Job struct {
	PlanID   string
	PlanType string
	UserID   string
}

// Update is broadcast to subscribers when a plan changes status.
type Update struct {
	PlanID     string `json:"plan_id"`
	PlanType   string `json:"plan_type"`
	Status     string `json:"status"`
	WeekNumber int    `json:"week_number"`
}

// Worker generates plan contents in the background. Generation goes through
// the LLM when a provider is configured and falls back to the deterministic
// planner otherwise, so a queued plan always resolves to ready or failed.
type Worker struct {
	db       *gorm.DB
	provider ai.Provider // nil when no LLM is configured
	log      *zap.Logger

	jobs        chan Job
	subscribers map[chan Update]bool
	subMux      sync.RWMutex
	done        chan struct{}
}

// NewWorker creates and starts a worker draining a buffered job queue.
func NewWorker(db *gorm.DB, provider ai.Provider, log *zap.Logger) *Worker {
	w := &Worker{
		db:          db,
		provider:    provider,
		log:         log,
		jobs:        make(chan Job, 100),
		subscribers: make(map[chan Update]bool),
		done:        make(chan struct{}),
	}
	go w.run()
	log.Info("plan generation worker started")
	return w
}

// Enqueue adds a generation job to the queue. Returns false when the queue
// is full and the job was dropped.
func (w *Worker) Enqueue(job Job) bool {
	select {
	case w.jobs <- job:
		w.log.Info("plan generation job enqueued",
			zap.String("plan_id", job.PlanID), zap.String("plan_type", job.PlanType))
		return true
	default:
		w.log.Warn("plan generation queue full, dropping job", zap.String("plan_id", job.PlanID))
		return false
	}
}

// Subscribe registers a channel to receive plan updates.
func (w *Worker) Subscribe() chan Update {
	ch := make(chan Update, 16)
	w.subMux.Lock()
	defer w.subMux.Unlock()
	w.subscribers[ch] = true
	return ch
}

// Unsubscribe removes a channel from plan updates and closes it.
func (w *Worker) Unsubscribe(ch chan Update) {
	w.subMux.Lock()
	defer w.subMux.Unlock()
	if w.subscribers[ch] {
		delete(w.subscribers, ch)
		close(ch)
	}
}

// Stop terminates the run loop and closes all subscriber channels so their
// relay goroutines exit.
func (w *Worker) Stop() {
	close(w.done)

	w.subMux.Lock()
	defer w.subMux.Unlock()
	for ch := range w.subscribers {
		delete(w.subscribers, ch)
		close(ch)
	}
}

func (w *Worker) run() {
	for {
		select {
		case job := <-w.jobs:
			w.process(job)
		case <-w.done:
			return
		}
	}
}

func (w *Worker) process(job Job) {
	ctx, cancel := context.WithTimeout(context.Background(), generationTimeout)
	defer cancel()

	var err error
	switch job.PlanType {
	case PlanTypeNutrition:
		err = w.generateNutrition(ctx, job)
	case PlanTypeWorkout:
		err = w.generateWorkout(ctx, job)
	default:
		w.log.Error("unknown plan type", zap.String("plan_type", job.PlanType))
		return
	}

	outcome := "ready"
	if err != nil {
		outcome = "failed"
		w.log.Error("plan generation failed",
			zap.String("plan_id", job.PlanID), zap.String("plan_type", job.PlanType), zap.Error(err))
	}
	monitoring.PlanGenerations.WithLabelValues(job.PlanType, outcome).Inc()
}

func (w *Worker) generateNutrition(ctx context.Context, job Job) error {
	var plan models.NutritionPlan
	if err := w.db.Where("id = ?", job.PlanID).First(&plan).Error; err != nil {
		return err
	}

	eval, err := w.loadEvaluation(job.UserID)
	if err != nil {
		w.markNutrition(&plan, models.PlanStatusFailed)
		return err
	}

	schedule := w.nutritionSchedule(ctx, eval, plan)
	plan.Meals = schedule
	w.markNutrition(&plan, models.PlanStatusReady)
	return nil
}

func (w *Worker) nutritionSchedule(ctx context.Context, eval *models.Evaluation, plan models.NutritionPlan) models.MealSchedule {
	if w.provider != nil {
		reply, err := w.provider.Complete(ctx, ai.MealPlanPrompt(eval, plan.DailyCalories, plan.WeekNumber))
		if err == nil {
			if schedule, perr := ai.ParseMealSchedule(reply); perr == nil {
				return schedule
			} else {
				w.log.Warn("unusable meal plan reply, using fallback", zap.Error(perr))
			}
		} else {
			w.log.Warn("LLM meal plan generation failed, using fallback", zap.Error(err))
		}
	}
	return ai.FallbackMealSchedule(plan.DailyCalories)
}

func (w *Worker) generateWorkout(ctx context.Context, job Job) error {
	var plan models.WorkoutPlan
	if err := w.db.Where("id = ?", job.PlanID).First(&plan).Error; err != nil {
		return err
	}

	eval, err := w.loadEvaluation(job.UserID)
	if err != nil {
		w.markWorkout(&plan, models.PlanStatusFailed)
		return err
	}

	schedule := w.workoutSchedule(ctx, eval, plan)
	plan.Sessions = schedule
	w.markWorkout(&plan, models.PlanStatusReady)
	return nil
}

func (w *Worker) workoutSchedule(ctx context.Context, eval *models.Evaluation, plan models.WorkoutPlan) models.SessionSchedule {
	if w.provider != nil {
		reply, err := w.provider.Complete(ctx, ai.WorkoutPlanPrompt(eval, plan.WeekNumber))
		if err == nil {
			if schedule, perr := ai.ParseSessionSchedule(reply); perr == nil {
				return schedule
			} else {
				w.log.Warn("unusable workout plan reply, using fallback", zap.Error(perr))
			}
		} else {
			w.log.Warn("LLM workout plan generation failed, using fallback", zap.Error(err))
		}
	}
	return ai.FallbackWorkoutSchedule(eval)
}

func (w *Worker) loadEvaluation(userID string) (*models.Evaluation, error) {
	var eval models.Evaluation
	if err := w.db.Where("user_id = ?", userID).First(&eval).Error; err != nil {
		return nil, err
	}
	return &eval, nil
}

func (w *Worker) markNutrition(plan *models.NutritionPlan, status string) {
	plan.Status = status
	if err := w.db.Save(plan).Error; err != nil {
		w.log.Error("failed to save nutrition plan", zap.String("plan_id", plan.ID), zap.Error(err))
		return
	}
	w.broadcast(Update{PlanID: plan.ID, PlanType: PlanTypeNutrition, Status: status, WeekNumber: plan.WeekNumber})
}

func (w *Worker) markWorkout(plan *models.WorkoutPlan, status string) {
	plan.Status = status
	if err := w.db.Save(plan).Error; err != nil {
		w.log.Error("failed to save workout plan", zap.String("plan_id", plan.ID), zap.Error(err))
		return
	}
	w.broadcast(Update{PlanID: plan.ID, PlanType: PlanTypeWorkout, Status: status, WeekNumber: plan.WeekNumber})
}

func (w *Worker) broadcast(update Update) {
	w.subMux.RLock()
	defer w.subMux.RUnlock()
	for ch := range w.subscribers {
		select {
		case ch <- update:
		default:
			// Drop update if subscriber is slow
		}
	}
}
