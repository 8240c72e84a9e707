package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/tipcalc/internal/metrics"
	"github.com/mmynk/tipcalc/internal/models"
	"github.com/mmynk/tipcalc/internal/storage"
	"github.com/mmynk/tipcalc/internal/tipform"
	"github.com/mmynk/tipcalc/pkg/api"
)

// Ensure TipService implements api.TipServiceHandler
var _ api.TipServiceHandler = (*TipService)(nil)

// TipService implements the Connect TipService. Each session hosts one
// tip form; events for a session are applied one at a time.
type TipService struct {
	store    storage.SessionStore
	defaults tipform.Options
}

// NewTipService creates a TipService backed by store. New sessions start
// from defaults unless the request overrides a field.
func NewTipService(store storage.SessionStore, defaults tipform.Options) *TipService {
	return &TipService{store: store, defaults: defaults}
}

// formOptions merges request overrides onto the service defaults.
func (s *TipService) formOptions(req *api.CreateSessionRequest) tipform.Options {
	opts := s.defaults
	opts.OnSubmit = nil
	opts.OnInputDone = nil

	if opts.SplitRange == (tipform.Range{}) {
		opts.SplitRange = tipform.DefaultRange
	}
	if lo, ok := req.GetSplitMin(); ok {
		opts.SplitRange.Min = lo
	}
	if hi, ok := req.GetSplitMax(); ok {
		opts.SplitRange.Max = hi
	}
	if bill, ok := req.GetInitialBill(); ok {
		opts.InitialBill = bill
	}
	if split, ok := req.GetInitialSplit(); ok {
		opts.InitialSplit = split
	}
	if fraction, ok := req.GetInitialTipFraction(); ok {
		opts.InitialTipFraction = fraction
	}
	if recompute, ok := req.GetRecomputeOnBillChange(); ok {
		opts.RecomputeOnBillChange = recompute
	}
	return opts
}

// CreateSession opens a new tip form and returns its initial view.
func (s *TipService) CreateSession(ctx context.Context, req *connect.Request[api.CreateSessionRequest]) (*connect.Response[api.SessionResponse], error) {
	opts := s.formOptions(req.Msg)

	var session *storage.Session
	opts.OnSubmit = func(bill string) {
		slog.Info("Bill submitted", "session_id", session.ID, "bill", bill)
	}

	form, err := tipform.New(opts)
	if err != nil {
		slog.Error("CreateSession failed", "error", err)
		if errors.Is(err, tipform.ErrInvalidRange) {
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	session = storage.NewSession(form)
	if err := s.store.Create(ctx, session); err != nil {
		slog.Error("CreateSession failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	metrics.ActiveSessions.Inc()

	slog.Info("Session created",
		"session_id", session.ID,
		"split_min", opts.SplitRange.Min,
		"split_max", opts.SplitRange.Max,
		"recompute_on_bill_change", opts.RecomputeOnBillChange,
	)

	var view models.View
	session.Do(func(form *tipform.Form) { view = form.View() })
	return connect.NewResponse(&api.SessionResponse{SessionID: session.ID, View: view}), nil
}

// GetSession returns the current view of a session.
func (s *TipService) GetSession(ctx context.Context, req *connect.Request[api.SessionRequest]) (*connect.Response[api.SessionResponse], error) {
	return s.apply(ctx, req.Msg.GetSessionID(), "", func(*tipform.Form) {})
}

// ChangeBill replaces the bill text.
func (s *TipService) ChangeBill(ctx context.Context, req *connect.Request[api.ChangeBillRequest]) (*connect.Response[api.SessionResponse], error) {
	return s.apply(ctx, req.Msg.GetSessionID(), metrics.EventChangeBill, func(form *tipform.Form) {
		form.ChangeBill(req.Msg.Text)
	})
}

// IncrementSplit adds one person to the split.
func (s *TipService) IncrementSplit(ctx context.Context, req *connect.Request[api.SessionRequest]) (*connect.Response[api.SessionResponse], error) {
	return s.apply(ctx, req.Msg.GetSessionID(), metrics.EventIncrementSplit, func(form *tipform.Form) {
		form.IncrementSplit()
	})
}

// DecrementSplit removes one person from the split.
func (s *TipService) DecrementSplit(ctx context.Context, req *connect.Request[api.SessionRequest]) (*connect.Response[api.SessionResponse], error) {
	return s.apply(ctx, req.Msg.GetSessionID(), metrics.EventDecrementSplit, func(form *tipform.Form) {
		form.DecrementSplit()
	})
}

// MoveSlider sets the tip slider position.
func (s *TipService) MoveSlider(ctx context.Context, req *connect.Request[api.MoveSliderRequest]) (*connect.Response[api.SessionResponse], error) {
	return s.apply(ctx, req.Msg.GetSessionID(), metrics.EventMoveSlider, func(form *tipform.Form) {
		form.MoveSlider(req.Msg.Fraction)
	})
}

// Submit confirms the bill. A blank bill is ignored, not rejected.
func (s *TipService) Submit(ctx context.Context, req *connect.Request[api.SessionRequest]) (*connect.Response[api.SubmitResponse], error) {
	session, err := s.lookup(ctx, req.Msg.GetSessionID())
	if err != nil {
		return nil, err
	}
	metrics.FormEvents.WithLabelValues(metrics.EventSubmit).Inc()

	resp := &api.SubmitResponse{SessionID: session.ID}
	session.Do(func(form *tipform.Form) {
		resp.Accepted = form.Submit()
		resp.View = form.View()
	})

	if resp.Accepted {
		resp.Bill = resp.View.BillText
		resp.InputDone = true
		metrics.Submissions.WithLabelValues(metrics.SubmitAccepted).Inc()
	} else {
		slog.Debug("Submit ignored", "session_id", session.ID)
		metrics.Submissions.WithLabelValues(metrics.SubmitIgnored).Inc()
	}
	return connect.NewResponse(resp), nil
}

// CloseSession tears down a session. Open watch streams end.
func (s *TipService) CloseSession(ctx context.Context, req *connect.Request[api.SessionRequest]) (*connect.Response[api.CloseSessionResponse], error) {
	id := req.Msg.GetSessionID()
	if id == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("session_id required"))
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return nil, storeError("CloseSession", id, err)
	}
	metrics.ActiveSessions.Dec()
	slog.Info("Session closed", "session_id", id)
	return connect.NewResponse(&api.CloseSessionResponse{}), nil
}

// WatchSession streams the session's view: the current one first, then one
// per change. A reader that falls behind receives only the latest view.
func (s *TipService) WatchSession(ctx context.Context, req *connect.Request[api.SessionRequest], stream *connect.ServerStream[api.SessionResponse]) error {
	session, err := s.lookup(ctx, req.Msg.GetSessionID())
	if err != nil {
		return err
	}

	var (
		mu     sync.Mutex
		latest models.View
	)
	pending := make(chan struct{}, 1)
	push := func(v models.View) {
		mu.Lock()
		latest = v
		mu.Unlock()
		select {
		case pending <- struct{}{}:
		default:
		}
	}

	var unsubscribe func()
	session.Do(func(form *tipform.Form) {
		push(form.View())
		unsubscribe = form.Subscribe(push)
	})
	defer session.Do(func(*tipform.Form) { unsubscribe() })

	slog.Debug("Watch started", "session_id", session.ID)
	for {
		select {
		case <-ctx.Done():
			slog.Debug("Watch ended by client", "session_id", session.ID)
			return nil
		case <-session.Done():
			slog.Debug("Watch ended, session closed", "session_id", session.ID)
			return nil
		case <-pending:
			mu.Lock()
			v := latest
			mu.Unlock()
			if err := stream.Send(&api.SessionResponse{SessionID: session.ID, View: v}); err != nil {
				return err
			}
		}
	}
}

// ExpireIdle removes sessions that have seen no events for longer than idle.
func (s *TipService) ExpireIdle(ctx context.Context, idle time.Duration) (int, error) {
	n, err := s.store.ExpireIdle(ctx, time.Now().Add(-idle))
	if err != nil {
		return 0, fmt.Errorf("failed to expire sessions: %w", err)
	}
	if n > 0 {
		metrics.ExpiredSessions.Add(float64(n))
		metrics.ActiveSessions.Sub(float64(n))
		slog.Info("Expired idle sessions", "count", n, "idle", idle, "remaining", s.store.Count(ctx))
	}
	return n, nil
}

// RunReaper calls ExpireIdle every interval until ctx is done.
func (s *TipService) RunReaper(ctx context.Context, interval, idle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.ExpireIdle(ctx, idle); err != nil && ctx.Err() == nil {
				slog.Error("Session reaper failed", "error", err)
			}
		}
	}
}

// apply runs fn against a session's form and returns the resulting view.
func (s *TipService) apply(ctx context.Context, id, event string, fn func(*tipform.Form)) (*connect.Response[api.SessionResponse], error) {
	session, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	if event != "" {
		metrics.FormEvents.WithLabelValues(event).Inc()
	}

	var view models.View
	session.Do(func(form *tipform.Form) {
		fn(form)
		view = form.View()
	})
	return connect.NewResponse(&api.SessionResponse{SessionID: session.ID, View: view}), nil
}

// lookup resolves a session ID to a live session.
func (s *TipService) lookup(ctx context.Context, id string) (*storage.Session, error) {
	if id == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("session_id required"))
	}
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, storeError("lookup", id, err)
	}
	return session, nil
}

// storeError maps a storage error to a Connect error.
func storeError(op, id string, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return connect.NewError(connect.CodeNotFound, err)
	}
	slog.Error(op+" failed", "session_id", id, "error", err)
	return connect.NewError(connect.CodeInternal, err)
}
