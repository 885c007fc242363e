package onboarding

import (
	"context"
	"fmt"
	"govconnect/internal/config"
	"govconnect/internal/matcher"
	"govconnect/internal/session"
	"govconnect/internal/signal"
	"govconnect/pkg/domain"
	"govconnect/pkg/logger"
	"govconnect/pkg/metrics"
	"govconnect/pkg/serrors"
	"govconnect/pkg/storage"
	"slices"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// MsgSaveFailed is notified when Finish could not commit the profile.
const MsgSaveFailed = "Could not save your business profile"

// Options tunes a Flow.
type Options struct {
	// CommitLatency is waited before the profile is committed.
	CommitLatency time.Duration
	// StrictIndustryCodes rejects custom codes that are not 2 to 6 digits.
	StrictIndustryCodes bool
	// MatchMaxAttempts is passed on to the tender matching job.
	MatchMaxAttempts int
	Metrics          *metrics.Metrics
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config, m *metrics.Metrics) Options {
	return Options{
		CommitLatency:       cfg.Onboarding.CommitLatency,
		StrictIndustryCodes: cfg.Onboarding.StrictIndustryCodes,
		MatchMaxAttempts:    cfg.Worker.MatchMaxAttempts,
		Metrics:             m,
	}
}

// Flow is the Controller implementation. It holds a single draft which
// belongs to the current session user; when the session changes hands the
// draft is dropped and the flow starts over at step 1.
type Flow struct {
	storage storage.Storage
	session session.Manager
	signals session.Signals
	opts    Options

	mu         sync.Mutex
	owner      domain.UserID
	step       Step
	draft      Draft
	submitting bool
}

func New(s storage.Storage, sessions session.Manager, signals session.Signals, opts Options) *Flow {
	return &Flow{
		storage: s,
		session: sessions,
		signals: signals,
		opts:    opts,
		step:    FirstStep,
		draft:   NewDraft(),
	}
}

var _ Controller = (*Flow)(nil)

func (f *Flow) State(_ context.Context) State {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.syncOwner()

	return f.state()
}

func (f *Flow) SetDescription(ctx context.Context, description string) (State, error) {
	return f.edit(ctx, StepDescription, func() error {
		f.draft.Description = description

		return nil
	})
}

func (f *Flow) ToggleIndustryCode(ctx context.Context, code string) (State, error) {
	return f.edit(ctx, StepIndustry, func() error {
		code, err := f.normalizeCode(code)
		if err != nil || code == "" {
			return err
		}

		if i := slices.Index(f.draft.IndustryCodes, code); i >= 0 {
			f.draft.IndustryCodes = slices.Delete(f.draft.IndustryCodes, i, i+1)
		} else {
			f.draft.IndustryCodes = append(f.draft.IndustryCodes, code)
		}

		return nil
	})
}

func (f *Flow) AddIndustryCode(ctx context.Context, code string) (State, error) {
	return f.edit(ctx, StepIndustry, func() error {
		code, err := f.normalizeCode(code)
		if err != nil || code == "" {
			return err
		}

		if !slices.Contains(f.draft.IndustryCodes, code) {
			f.draft.IndustryCodes = append(f.draft.IndustryCodes, code)
		}

		return nil
	})
}

func (f *Flow) RemoveIndustryCode(ctx context.Context, code string) (State, error) {
	return f.edit(ctx, StepIndustry, func() error {
		code = strings.TrimSpace(code)
		f.draft.IndustryCodes = slices.DeleteFunc(f.draft.IndustryCodes, func(c string) bool { return c == code })

		return nil
	})
}

func (f *Flow) SetValueRange(ctx context.Context, valueRange domain.ValueRange) (State, error) {
	return f.edit(ctx, StepValue, func() error {
		if err := valueRange.Validate(); err != nil {
			return serrors.Wrap(serrors.ErrBadRequest, err, "Choose a contract value between %s and %s",
				domain.FormatCAD(domain.MinContractValue), domain.FormatCAD(domain.MaxContractValue))
		}
		f.draft.ValueRange = valueRange

		return nil
	})
}

func (f *Flow) SetRegion(ctx context.Context, region string) (State, error) {
	return f.edit(ctx, StepRegion, func() error {
		r, err := domain.ParseRegion(region)
		if err != nil {
			return serrors.Wrap(serrors.ErrBadRequest, err, "Unrecognized region %q", region)
		}
		f.draft.Region = r

		return nil
	})
}

func (f *Flow) Next(ctx context.Context) (State, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.syncOwner()

	if f.submitting {
		return f.state(), errSubmitting
	}
	if f.step == LastStep {
		return f.state(), serrors.With(serrors.ErrBadRequest, "Already on the last step")
	}
	if err := f.gate(); err != nil {
		return f.state(), err
	}

	f.step++
	f.moved(ctx, "next")

	return f.state(), nil
}

func (f *Flow) Back(ctx context.Context) (State, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.syncOwner()

	if f.submitting {
		return f.state(), errSubmitting
	}
	if f.step == FirstStep {
		return f.state(), serrors.With(serrors.ErrBadRequest, "Already on the first step")
	}

	f.step--
	f.moved(ctx, "back")

	return f.state(), nil
}

func (f *Flow) Finish(ctx context.Context) (*domain.BusinessProfile, error) {
	// the commit is all or nothing, so it is not abandoned halfway
	ctx = logger.WithFields(context.WithoutCancel(ctx), zap.String("op", "finish_onboarding"))

	f.mu.Lock()
	user, ok := f.session.Current()
	if !ok {
		f.mu.Unlock()

		return nil, serrors.With(serrors.ErrUnauthorized, "Log in to finish onboarding")
	}
	f.syncOwner()
	if f.submitting {
		f.mu.Unlock()

		return nil, errSubmitting
	}
	if f.step != LastStep {
		f.mu.Unlock()

		return nil, serrors.With(serrors.ErrBadRequest, "Finish is only available on the last step")
	}
	profile := f.draft.Profile(user.ID)
	if err := profile.Validate(f.opts.StrictIndustryCodes); err != nil {
		f.mu.Unlock()

		return nil, serrors.Wrap(serrors.ErrStepIncomplete, err, "Your business profile is incomplete")
	}
	f.submitting = true
	f.mu.Unlock()

	ctx = logger.WithFields(ctx, logger.UserID(user.ID.String()))
	saved, err := f.commit(ctx, user.ID, profile)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false

	if err != nil {
		logger.Error(ctx, "could not finish onboarding", zap.Error(err))
		f.opts.Metrics.OnboardingCompleted(ctx, metrics.OutcomeFailure)
		f.signals.Notify(ctx, signal.LevelError, MsgSaveFailed)

		return nil, err
	}

	logger.Info(ctx, "onboarding finished",
		zap.Strings("industry_codes", saved.IndustryCodes),
		zap.String("region", string(saved.Region)))
	f.opts.Metrics.OnboardingCompleted(ctx, metrics.OutcomeSuccess)
	f.reset()
	f.signals.Navigate(ctx, signal.RouteDashboard)

	return saved, nil
}

func (f *Flow) Restart(ctx context.Context) State {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.syncOwner()

	if !f.submitting {
		f.reset()
		logger.Debug(ctx, "onboarding restarted")
	}

	return f.state()
}

// commit stores the profile, schedules tender matching and completes the
// account in one transaction. The transaction runs inside the session's
// CompleteProfile, so it only happens while userID still owns the session and
// the durable record follows its outcome.
func (f *Flow) commit(ctx context.Context,
	userID domain.UserID,
	profile domain.BusinessProfile) (*domain.BusinessProfile, error) {
	if f.opts.CommitLatency > 0 {
		time.Sleep(f.opts.CommitLatency)
	}

	var saved *domain.BusinessProfile
	_, err := f.session.CompleteProfile(ctx, userID, func(ctx context.Context, completed domain.User) error {
		return f.storage.WithTx(ctx, func(tx storage.AllStorage) error {
			stored, err := tx.StoreProfile(ctx, profile)
			if err != nil {
				return fmt.Errorf("could not store profile: %w", err)
			}

			added, err := tx.AddJob(ctx, matcher.NewJobArgs(*stored, f.opts.MatchMaxAttempts), nil)
			if err != nil {
				return fmt.Errorf("could not add job: %w", err)
			}
			if !added {
				logger.Debug(ctx, "tender matching already queued")
			}

			updated, err := tx.UpdateAccountUser(ctx, completed)
			if err != nil {
				return fmt.Errorf("could not complete account: %w", err)
			}
			if updated == nil {
				return serrors.With(serrors.ErrNotFound, "account not found")
			}

			saved = stored

			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("could not save business profile: %w", err)
	}

	return saved, nil
}

var errSubmitting = serrors.With(serrors.ErrConflict, "Your business profile is being saved")

// edit runs fn against the draft when the flow is on the step owning the field.
func (f *Flow) edit(ctx context.Context, owner Step, fn func() error) (State, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.syncOwner()

	if f.submitting {
		return f.state(), errSubmitting
	}
	if f.step != owner {
		logger.Debug(ctx, "edit rejected", zap.Stringer("step", f.step), zap.Stringer("owner", owner))

		return f.state(), serrors.With(serrors.ErrBadRequest, "This field belongs to step %d", owner)
	}

	if err := fn(); err != nil {
		return f.state(), err
	}

	return f.state(), nil
}

func (f *Flow) normalizeCode(code string) (string, error) {
	if strings.TrimSpace(code) == "" {
		return "", nil
	}

	code, err := domain.NormalizeIndustryCode(code, f.opts.StrictIndustryCodes)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrBadRequest, err, "Industry codes are 2 to 6 digits")
	}

	return code, nil
}

// gate checks the current step is complete.
func (f *Flow) gate() error {
	switch f.step {
	case StepDescription:
		if strings.TrimSpace(f.draft.Description) == "" {
			return serrors.Wrap(serrors.ErrStepIncomplete, domain.ErrEmptyDescription, "Describe your business to continue")
		}
	case StepIndustry:
		if len(f.draft.IndustryCodes) == 0 {
			return serrors.Wrap(serrors.ErrStepIncomplete, domain.ErrNoIndustryCodes, "Select at least one industry code")
		}
	case StepValue:
		if err := f.draft.ValueRange.Validate(); err != nil {
			return serrors.Wrap(serrors.ErrStepIncomplete, err, "Choose a valid contract value range")
		}
	case StepRegion:
		if _, err := domain.ParseRegion(string(f.draft.Region)); err != nil {
			return serrors.Wrap(serrors.ErrStepIncomplete, err, "Choose a region")
		}
	}

	return nil
}

func (f *Flow) moved(ctx context.Context, direction string) {
	logger.Debug(ctx, "onboarding step changed",
		zap.Stringer("step", f.step),
		zap.String("direction", direction))
	f.opts.Metrics.OnboardingStep(ctx, int(f.step), direction)
	f.signals.Navigate(ctx, f.step.Route())
}

// syncOwner drops the draft of a previous session user.
func (f *Flow) syncOwner() {
	var id domain.UserID
	if user, ok := f.session.Current(); ok {
		id = user.ID
	}
	if id != f.owner && !f.submitting {
		f.owner = id
		f.reset()
	}
}

func (f *Flow) reset() {
	f.step = FirstStep
	f.draft = NewDraft()
}

func (f *Flow) state() State {
	return State{
		Step:       f.step,
		Route:      f.step.Route(),
		Draft:      f.draft.clone(),
		CanProceed: f.gate() == nil,
		Submitting: f.submitting,
	}
}
