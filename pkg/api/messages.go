package api

import "github.com/mmynk/tipcalc/internal/models"

// CreateSessionRequest opens a new tip form. Unset fields fall back to the
// server's configured defaults. A field set to its zero value overrides the
// default with that zero value.
type CreateSessionRequest struct {
	SplitMin              *int     `json:"split_min,omitempty"`
	SplitMax              *int     `json:"split_max,omitempty"`
	InitialBill           *string  `json:"initial_bill,omitempty"`
	InitialSplit          *int     `json:"initial_split,omitempty"`
	InitialTipFraction    *float64 `json:"initial_tip_fraction,omitempty"`
	RecomputeOnBillChange *bool    `json:"recompute_on_bill_change,omitempty"`
}

// GetSplitMin returns the override and whether one was set.
func (r *CreateSessionRequest) GetSplitMin() (int, bool) {
	if r == nil {
		return 0, false
	}
	return deref(r.SplitMin)
}

// GetSplitMax returns the override and whether one was set.
func (r *CreateSessionRequest) GetSplitMax() (int, bool) {
	if r == nil {
		return 0, false
	}
	return deref(r.SplitMax)
}

// GetInitialBill returns the override and whether one was set.
func (r *CreateSessionRequest) GetInitialBill() (string, bool) {
	if r == nil {
		return "", false
	}
	return deref(r.InitialBill)
}

// GetInitialSplit returns the override and whether one was set.
func (r *CreateSessionRequest) GetInitialSplit() (int, bool) {
	if r == nil {
		return 0, false
	}
	return deref(r.InitialSplit)
}

// GetInitialTipFraction returns the override and whether one was set.
func (r *CreateSessionRequest) GetInitialTipFraction() (float64, bool) {
	if r == nil {
		return 0, false
	}
	return deref(r.InitialTipFraction)
}

// GetRecomputeOnBillChange returns the override and whether one was set.
func (r *CreateSessionRequest) GetRecomputeOnBillChange() (bool, bool) {
	if r == nil {
		return false, false
	}
	return deref(r.RecomputeOnBillChange)
}

func deref[T any](p *T) (T, bool) {
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}

// SessionRequest addresses an existing session.
type SessionRequest struct {
	SessionID string `json:"session_id"`
}

func (r *SessionRequest) GetSessionID() string {
	if r == nil {
		return ""
	}
	return r.SessionID
}

// ChangeBillRequest carries a bill text edit.
type ChangeBillRequest struct {
	SessionID string `json:"session_id"`
	Text      string `json:"text"`
}

func (r *ChangeBillRequest) GetSessionID() string {
	if r == nil {
		return ""
	}
	return r.SessionID
}

// MoveSliderRequest carries a new slider position in [0,1].
type MoveSliderRequest struct {
	SessionID string  `json:"session_id"`
	Fraction  float64 `json:"fraction"`
}

func (r *MoveSliderRequest) GetSessionID() string {
	if r == nil {
		return ""
	}
	return r.SessionID
}

// SessionResponse returns the session's view after the call.
type SessionResponse struct {
	SessionID string      `json:"session_id"`
	View      models.View `json:"view"`
}

func (r *SessionResponse) GetSessionID() string {
	if r == nil {
		return ""
	}
	return r.SessionID
}

// SubmitResponse reports whether the bill was accepted. InputDone tells the
// client to finish text entry (e.g. hide its keyboard).
type SubmitResponse struct {
	SessionID string      `json:"session_id"`
	Accepted  bool        `json:"accepted"`
	Bill      string      `json:"bill,omitempty"`
	InputDone bool        `json:"input_done"`
	View      models.View `json:"view"`
}

func (r *SubmitResponse) GetSessionID() string {
	if r == nil {
		return ""
	}
	return r.SessionID
}

// CloseSessionResponse is empty.
type CloseSessionResponse struct{}
