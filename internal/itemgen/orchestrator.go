package itemgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/verbly-app/verbly/internal/llm"
)

// Orchestrator drives the AI provider per difficulty tier and aggregates
// validated items into a pool.
type Orchestrator struct {
	provider llm.Provider
	dedup    *Dedup
	window   *RateWindow
	config   Config
}

// New creates an Orchestrator. dedup and window may be nil, in which case
// prior-question collection and the rate-window check are skipped (used
// by tests and by callers that perform those steps themselves).
func New(provider llm.Provider, dedup *Dedup, window *RateWindow, cfg Config) *Orchestrator {
	return &Orchestrator{
		provider: provider,
		dedup:    dedup,
		window:   window,
		config:   cfg,
	}
}

// TierResult reports what happened for one difficulty tier of a request.
type TierResult struct {
	Difficulty Difficulty
	Requested  int
	Generated  int
	Discarded  int
	Err        error
}

// Result is the outcome of one generation request across all tiers.
type Result struct {
	Items []Item
	Tiers []TierResult
}

// itemsOutput is the raw provider response before validation.
type itemsOutput struct {
	Items []struct {
		Prompt      string   `json:"prompt"`
		Answer      string   `json:"answer"`
		Answers     []string `json:"answers"`
		Options     []string `json:"options"`
		Explanation string   `json:"explanation"`
		Difficulty  string   `json:"difficulty"`
	} `json:"items"`
}

// Generate produces validated items for the request. Tier-local failures
// (refusal, exhausted reasoning budget, malformed response, all items
// invalid) are logged and skipped; a rate limit that survives the retry
// layer aborts the whole request.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (*Result, error) {
	if err := checkRequest(req); err != nil {
		return nil, err
	}

	if o.window != nil {
		if err := o.window.Check(ctx, req.Topic.ID, req.ExerciseType); err != nil {
			return nil, err
		}
	}

	avoid := req.AvoidTexts
	if o.dedup != nil {
		prior, err := o.dedup.PriorQuestions(ctx, req.Topic.ID, req.ExerciseType)
		if err != nil {
			return nil, err
		}
		avoid = append(prior, avoid...)
	}

	split := req.Split
	if split == nil {
		split = DefaultSplit()
	}

	result := &Result{}

	for _, tier := range Difficulties {
		count := ShareCount(req.Count, split[tier])
		if count <= 0 {
			continue
		}

		tr := TierResult{Difficulty: tier, Requested: count}
		items, err := o.generateTier(ctx, req, tier, count, avoid)
		if err != nil {
			if tierFatal(err) {
				return nil, err
			}
			tr.Err = err
			fmt.Fprintf(os.Stderr, "tier %s for %s/%s produced no items: %v\n",
				tier, req.Topic.ID, req.ExerciseType, err)
			result.Tiers = append(result.Tiers, tr)
			continue
		}

		for i := range items {
			ok, verr := o.validate(&items[i], req.ExerciseType)
			if !ok {
				tr.Discarded++
				fmt.Fprintf(os.Stderr, "discarding item for %s/%s: %v\n",
					req.Topic.ID, req.ExerciseType, verr)
				continue
			}
			result.Items = append(result.Items, items[i])
			tr.Generated++
		}

		result.Tiers = append(result.Tiers, tr)
	}

	return result, nil
}

// generateTier makes one provider call for a single difficulty tier.
func (o *Orchestrator) generateTier(ctx context.Context, req Request, tier Difficulty, count int, avoid []string) ([]Item, error) {
	ctx = llm.WithMeta(ctx, llm.CallMeta{
		Purpose:      "item-gen",
		Topic:        req.Topic.ID,
		ExerciseType: string(req.ExerciseType),
	})

	userMsg := buildUserMessage(req, tier, count, avoid, o.config.MaxAvoidTexts)

	resp, err := o.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      ItemsSchema,
		MaxTokens:   o.config.MaxTokens,
		Temperature: o.config.Temperature,
	})
	if err != nil {
		return nil, err
	}

	var raw itemsOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}
	if len(raw.Items) == 0 {
		return nil, &llm.ErrInvalidResponse{
			Content: resp.Content,
			Err:     errors.New("response contains zero items"),
		}
	}

	items := make([]Item, len(raw.Items))
	for i, r := range raw.Items {
		items[i] = Item{
			Prompt:      r.Prompt,
			Answer:      r.Answer,
			Answers:     r.Answers,
			Options:     r.Options,
			Explanation: r.Explanation,
			// The requested tier is authoritative over the model's tag.
			Difficulty: tier,
		}
	}
	return items, nil
}

func (o *Orchestrator) validate(item *Item, exerciseType ExerciseType) (bool, *ValidationError) {
	validators := o.config.Validators
	if validators == nil {
		validators = DefaultValidators()
	}
	for _, v := range validators {
		if verr := v.Validate(item, exerciseType); verr != nil {
			return false, verr
		}
	}
	return true, nil
}

// tierFatal reports whether a tier error must abort the whole request.
// Rate limits surviving the retry layer mean the upstream quota is gone;
// continuing to the next tier would just burn more of it. Cancellation
// propagates for the same reason.
func tierFatal(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	return llm.IsRateLimited(err)
}

// checkRequest rejects malformed requests before any remote call.
func checkRequest(req Request) error {
	if req.Topic.ID == "" || req.Topic.Name == "" {
		return &ErrInvalidRequest{Reason: "topic id and name are required"}
	}
	if !ValidExerciseType(req.ExerciseType) {
		return &ErrInvalidRequest{Reason: fmt.Sprintf("unknown exercise type %q", req.ExerciseType)}
	}
	if !ValidLevel(req.Level) {
		return &ErrInvalidRequest{Reason: fmt.Sprintf("unknown level %q", req.Level)}
	}
	if req.Count <= 0 {
		return &ErrInvalidRequest{Reason: "count must be positive"}
	}
	if req.Split != nil {
		sum := 0
		for d, pct := range req.Split {
			if !ValidDifficulty(d) {
				return &ErrInvalidRequest{Reason: fmt.Sprintf("unknown difficulty %q in split", d)}
			}
			if pct < 0 {
				return &ErrInvalidRequest{Reason: "split percentages must not be negative"}
			}
			sum += pct
		}
		if sum != 100 {
			return &ErrInvalidRequest{Reason: fmt.Sprintf("split percentages sum to %d, want 100", sum)}
		}
	}
	return nil
}
