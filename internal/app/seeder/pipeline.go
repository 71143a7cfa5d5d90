// Package seeder fills a development database with work items spread over
// every lifecycle status. Items are driven through the workflow service
// rather than inserted directly, so history records and events are
// produced exactly as in production.
package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/taskflow-backend/internal/domain"
	"github.com/heartmarshall/taskflow-backend/internal/service/workflow"
	"github.com/heartmarshall/taskflow-backend/pkg/ctxutil"
)

type lifecycle interface {
	CreateWorkItem(ctx context.Context, input workflow.CreateInput) (*domain.WorkItem, error)
	Assign(ctx context.Context, input workflow.AssignInput) (*domain.WorkItem, error)
	Start(ctx context.Context, input workflow.TransitionInput) (*domain.WorkItem, error)
	Complete(ctx context.Context, input workflow.CompleteInput) (*domain.WorkItem, error)
	Approve(ctx context.Context, input workflow.TransitionInput) (*domain.WorkItem, error)
	Reject(ctx context.Context, input workflow.TransitionInput) (*domain.WorkItem, error)
	Cancel(ctx context.Context, input workflow.TransitionInput) (*domain.WorkItem, error)
}

// Role offsets from Config.BaseUserID.
const (
	assignerOffset = 100
	executorOffset = 200
	approverOffset = 300
)

var descriptions = []string{
	"Replace the projector bulb in room 4B",
	"Order ergonomic chairs for the support team",
	"Renew the wildcard TLS certificate",
	"Prepare onboarding kit for new hires",
	"Reconcile Q3 travel expenses",
	"Fix the badge reader at the loading dock",
}

// Result counts the outcome for one target status.
type Result struct {
	Created int
	Errors  int
}

// Pipeline creates the demo work items.
type Pipeline struct {
	log        *slog.Logger
	svc        lifecycle
	cfg        Config
	categories []string
	results    map[domain.Status]Result
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, svc lifecycle, cfg Config) *Pipeline {
	var cats []string
	for _, c := range strings.Split(cfg.Categories, ",") {
		if c = strings.TrimSpace(c); c != "" {
			cats = append(cats, c)
		}
	}
	if len(cats) == 0 {
		cats = []string{"general"}
	}
	return &Pipeline{
		log:        log.With("component", "seeder"),
		svc:        svc,
		cfg:        cfg,
		categories: cats,
		results:    make(map[domain.Status]Result),
	}
}

// Results returns per-status results after Run completes.
func (p *Pipeline) Results() map[domain.Status]Result {
	return p.results
}

// HasErrors returns true if any item failed.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Errors > 0 {
			return true
		}
	}
	return false
}

// Run creates cfg.Count items. A failing item is logged and counted; the
// run continues with the next one. Only context cancellation aborts.
func (p *Pipeline) Run(ctx context.Context) error {
	start := time.Now()

	for i := 0; i < p.cfg.Count; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		target := domain.AllStatuses[i%len(domain.AllStatuses)]
		res := p.results[target]

		if p.cfg.DryRun {
			p.log.InfoContext(ctx, "dry run: would seed work item", slog.Int("index", i), slog.String("target", target.String()))
			p.results[target] = res
			continue
		}

		if err := p.seedOne(ctx, i, target); err != nil {
			res.Errors++
			p.log.WarnContext(ctx, "seed work item failed",
				slog.Int("index", i),
				slog.String("target", target.String()),
				slog.String("error", err.Error()),
			)
		} else {
			res.Created++
		}
		p.results[target] = res
	}

	p.log.InfoContext(ctx, "seeding finished",
		slog.Int("count", p.cfg.Count),
		slog.Duration("duration", time.Since(start)),
	)
	return nil
}

// seedOne walks one item along the shortest path to target.
func (p *Pipeline) seedOne(ctx context.Context, i int, target domain.Status) error {
	requester := p.actor(p.cfg.BaseUserID+1+int64(i%p.cfg.Requesters), domain.RoleRequester)
	executorID := p.cfg.BaseUserID + executorOffset + int64(i%p.cfg.Executors)
	executor := p.actor(executorID, domain.RoleExecutor)
	assigner := p.actor(p.cfg.BaseUserID+assignerOffset, domain.RoleAssigner)
	approver := p.actor(p.cfg.BaseUserID+approverOffset, domain.RoleApprover)

	kind := domain.KindActivity
	if i%2 == 1 {
		kind = domain.KindTaskRequest
	}
	estimate := float64(1 + i%8)

	item, err := p.svc.CreateWorkItem(ctxutil.WithActor(ctx, requester), workflow.CreateInput{
		Kind:           kind,
		Description:    descriptions[i%len(descriptions)],
		Category:       p.categories[i%len(p.categories)],
		Priority:       []domain.Priority{domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh, domain.PriorityUrgent}[i%4],
		EstimatedHours: &estimate,
		Submit:         target != domain.StatusDraft,
	})
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}
	in := workflow.TransitionInput{WorkItemID: item.ID, Notes: "seeded"}

	if target == domain.StatusDraft || target == domain.StatusRequested {
		return nil
	}
	if target == domain.StatusCancelled {
		_, err := p.svc.Cancel(ctxutil.WithActor(ctx, requester), in)
		return wrap("cancel", err)
	}

	if _, err := p.svc.Assign(ctxutil.WithActor(ctx, assigner), workflow.AssignInput{
		TransitionInput: in,
		ExecutorID:      executorID,
		EstimatedHours:  &estimate,
	}); err != nil || target == domain.StatusAssigned {
		return wrap("assign", err)
	}

	if _, err := p.svc.Start(ctxutil.WithActor(ctx, executor), in); err != nil || target == domain.StatusInProgress {
		return wrap("start", err)
	}

	actual := estimate + 0.5
	if _, err := p.svc.Complete(ctxutil.WithActor(ctx, executor), workflow.CompleteInput{
		TransitionInput: in,
		ActualHours:     &actual,
	}); err != nil || target == domain.StatusCompleted {
		return wrap("complete", err)
	}

	if target == domain.StatusRejected {
		_, err := p.svc.Reject(ctxutil.WithActor(ctx, approver), in)
		return wrap("reject", err)
	}
	_, err = p.svc.Approve(ctxutil.WithActor(ctx, approver), in)
	return wrap("approve", err)
}

func (p *Pipeline) actor(id int64, role domain.Role) domain.Actor {
	return domain.Actor{ID: id, DisplayName: string(role) + "-" + strconv.FormatInt(id, 10), Role: role}
}

func wrap(step string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", step, err)
}
