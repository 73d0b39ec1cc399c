package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/verbly-app/verbly/internal/itemgen"
	"github.com/verbly-app/verbly/internal/store"
)

// State is the pipeline's position in its session lifecycle.
type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StatePaused    State = "paused"
	StateCompleted State = "completed"
	StateStopped   State = "stopped"
)

// stoppedByUser is the error message recorded on a job cut short by Stop.
const stoppedByUser = "stopped by user"

// Config controls pipeline behavior.
type Config struct {
	// ItemsPerDeliverable is the preferred deliverable size used to pick
	// the target deliverable count for each job's pool.
	ItemsPerDeliverable int

	// PacingBase, PacingGrowth, and PacingMax shape the inter-job delay:
	// min(PacingBase + PacingGrowth*index, PacingMax). The delay grows
	// with the job index to spread load on the upstream provider.
	PacingBase   time.Duration
	PacingGrowth time.Duration
	PacingMax    time.Duration
}

// DefaultConfig returns the standard pipeline configuration.
func DefaultConfig() Config {
	return Config{
		ItemsPerDeliverable: 5,
		PacingBase:          1000 * time.Millisecond,
		PacingGrowth:        200 * time.Millisecond,
		PacingMax:           5000 * time.Millisecond,
	}
}

// SessionRequest describes one bulk-generation session.
type SessionRequest struct {
	Topics        []itemgen.Topic
	Level         itemgen.Level
	ItemsPerTopic int

	// Weights is the per-exercise-type percentage mix.
	// DefaultTypeWeights when nil.
	Weights TypeWeights

	// Split is the difficulty distribution passed to every job.
	// itemgen.DefaultSplit when nil.
	Split itemgen.Split
}

// Summary is the session outcome: an itemized job list rather than an
// opaque overall failure.
type Summary struct {
	Jobs                []*Job
	ItemsGenerated      int
	DeliverablesCreated int
	Duration            time.Duration
	Stopped             bool
}

// Pipeline processes generation jobs strictly sequentially, deliberately
// sacrificing throughput to respect the shared upstream rate limit.
type Pipeline struct {
	orch         *itemgen.Orchestrator
	deliverables store.DeliverableRepo
	config       Config

	gate *Gate

	mu     sync.Mutex
	state  State
	jobs   []*Job
	cancel context.CancelFunc
}

// New creates a Pipeline.
func New(orch *itemgen.Orchestrator, deliverables store.DeliverableRepo, cfg Config) *Pipeline {
	if cfg.ItemsPerDeliverable <= 0 {
		cfg.ItemsPerDeliverable = DefaultConfig().ItemsPerDeliverable
	}
	return &Pipeline{
		orch:         orch,
		deliverables: deliverables,
		config:       cfg,
		gate:         NewGate(),
		state:        StateIdle,
	}
}

// State returns the current session state.
func (p *Pipeline) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == StateRunning && p.gate.Paused() {
		return StatePaused
	}
	return p.state
}

// Jobs returns the session's job list.
func (p *Pipeline) Jobs() []*Job {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.jobs
}

// Pause blocks the next job from starting. The in-flight job finishes;
// pause latency equals its remaining duration.
func (p *Pipeline) Pause() {
	p.gate.Pause()
}

// Resume releases a paused session.
func (p *Pipeline) Resume() {
	p.gate.Resume()
}

// Stop cancels the in-flight provider call and skips all remaining jobs.
func (p *Pipeline) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	// A paused session must also observe the stop.
	p.gate.Resume()
}

// Run executes the session and returns its summary. Pre-condition
// failures (no topics, bad level, weights not summing to 100) are
// rejected before any job runs.
func (p *Pipeline) Run(ctx context.Context, req SessionRequest) (*Summary, error) {
	if err := checkSession(req); err != nil {
		return nil, err
	}

	weights := req.Weights
	if weights == nil {
		weights = DefaultTypeWeights()
	}

	jobs := buildJobs(req.Topics, req.Level, req.ItemsPerTopic, weights)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p.mu.Lock()
	if p.state == StateRunning {
		p.mu.Unlock()
		return nil, errors.New("pipeline session already running")
	}
	p.state = StateRunning
	p.jobs = jobs
	p.cancel = cancel
	p.mu.Unlock()

	start := time.Now()
	summary := &Summary{Jobs: jobs}

	for i, job := range jobs {
		if i > 0 {
			if err := p.pace(ctx, i); err != nil {
				p.markStopped(job)
				summary.Stopped = true
				break
			}
		}

		if err := p.gate.Wait(ctx); err != nil {
			p.markStopped(job)
			summary.Stopped = true
			break
		}

		job.Status = StatusGenerating
		res, err := p.orch.Generate(ctx, itemgen.Request{
			Topic:        job.Topic,
			Level:        job.Level,
			ExerciseType: job.ExerciseType,
			Count:        job.RequestedCount,
			Split:        req.Split,
		})

		if err != nil {
			if ctx.Err() != nil {
				p.markStopped(job)
				summary.Stopped = true
				break
			}
			// Rate limits, throttles, and other job-level failures mark
			// the job and let the session continue.
			job.Status = StatusError
			job.ErrMessage = err.Error()
			continue
		}

		job.Tiers = res.Tiers
		job.GeneratedCount = len(res.Items)

		if len(res.Items) == 0 {
			job.Status = StatusError
			job.ErrMessage = "no valid items generated across any tier"
			continue
		}

		created, err := p.persist(ctx, job, res.Items)
		if err != nil {
			job.Status = StatusError
			job.ErrMessage = err.Error()
			continue
		}

		job.Status = StatusCompleted
		summary.ItemsGenerated += len(res.Items)
		summary.DeliverablesCreated += created
	}

	summary.Duration = time.Since(start)

	p.mu.Lock()
	if summary.Stopped {
		p.state = StateStopped
	} else {
		p.state = StateCompleted
	}
	p.cancel = nil
	p.mu.Unlock()

	return summary, nil
}

// pace sleeps the inter-job delay for job index i. The wait is sliced so
// cancellation latency stays bounded even on long delays.
func (p *Pipeline) pace(ctx context.Context, i int) error {
	delay := p.config.PacingBase + time.Duration(i)*p.config.PacingGrowth
	if delay > p.config.PacingMax {
		delay = p.config.PacingMax
	}

	const slice = 250 * time.Millisecond
	for delay > 0 {
		step := delay
		if step > slice {
			step = slice
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(step):
		}
		delay -= step
	}
	return nil
}

// persist packs the pool into deliverables and writes them.
func (p *Pipeline) persist(ctx context.Context, job *Job, pool []itemgen.Item) (int, error) {
	target := len(pool) / p.config.ItemsPerDeliverable
	if target < 1 {
		target = 1
	}

	deliverables, err := itemgen.Distribute(pool, target)
	if err != nil {
		return 0, err
	}

	for _, d := range deliverables {
		items, err := json.Marshal(d.Items)
		if err != nil {
			return 0, fmt.Errorf("marshal items: %w", err)
		}
		err = p.deliverables.Insert(ctx, store.DeliverableData{
			ID:            d.ID,
			Topic:         job.Topic.ID,
			ExerciseType:  string(job.ExerciseType),
			Level:         string(job.Level),
			Difficulty:    string(d.Difficulty),
			ItemCount:     len(d.Items),
			Items:         items,
			QuestionTexts: d.QuestionTexts(),
		})
		if err != nil {
			return 0, err
		}
	}

	return len(deliverables), nil
}

func (p *Pipeline) markStopped(job *Job) {
	job.Status = StatusError
	job.ErrMessage = stoppedByUser
}

// checkSession rejects malformed session requests up front.
func checkSession(req SessionRequest) error {
	if len(req.Topics) == 0 {
		return &itemgen.ErrInvalidRequest{Reason: "at least one topic is required"}
	}
	for _, t := range req.Topics {
		if t.ID == "" || t.Name == "" {
			return &itemgen.ErrInvalidRequest{Reason: "topic id and name are required"}
		}
	}
	if !itemgen.ValidLevel(req.Level) {
		return &itemgen.ErrInvalidRequest{Reason: fmt.Sprintf("unknown level %q", req.Level)}
	}
	if req.ItemsPerTopic <= 0 {
		return &itemgen.ErrInvalidRequest{Reason: "items per topic must be positive"}
	}
	if req.Weights != nil {
		sum := 0
		for et, w := range req.Weights {
			if !itemgen.ValidExerciseType(et) {
				return &itemgen.ErrInvalidRequest{Reason: fmt.Sprintf("unknown exercise type %q in weights", et)}
			}
			if w < 0 {
				return &itemgen.ErrInvalidRequest{Reason: "type weights must not be negative"}
			}
			sum += w
		}
		if sum != 100 {
			return &itemgen.ErrInvalidRequest{Reason: fmt.Sprintf("type weights sum to %d, want 100", sum)}
		}
	}
	return nil
}
