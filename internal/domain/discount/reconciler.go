// Package discount owns the single authoritative {coupon, points} state
// relative to a subtotal. Every change goes through a named operation on the
// Reconciler; there are no implicit recomputation chains.
package discount

import (
	"errors"
)

var (
	ErrNegativeSubtotal = errors.New("subtotal cannot be negative")
	ErrNegativePoints   = errors.New("points cannot be negative")
	ErrBalanceUnknown   = errors.New("points balance not observed yet")
)

// AppliedCoupon is the reconciler's snapshot of a resolved catalog entry.
// It carries enough of the rule to re-clamp deterministically when the
// subtotal changes. FromCode marks a coupon resolved from a typed code whose
// numeric id must be re-resolved at composition time.
type AppliedCoupon struct {
	ID            int64
	FromCode      bool
	Code          string
	Percent       bool
	Value         int64
	MinSpendCents int64
	AmountCents   int64
}

// State is the externally visible discount state. Rebuilding a Reconciler
// from an equal State and applying the same operations yields an equal State.
type State struct {
	SubtotalCents       int64
	Coupon              *AppliedCoupon
	PointsRequested     int64
	PointsApplied       int64
	PointsDiscountCents int64
}

func (s State) DiscountTotalCents() int64 {
	var total int64
	if s.Coupon != nil {
		total += s.Coupon.AmountCents
	}
	total += s.PointsDiscountCents
	return total
}

// PayableCents = max(0, subtotal - discounts + shipping).
func (s State) PayableCents(shippingCents int64) int64 {
	payable := s.SubtotalCents - s.DiscountTotalCents() + shippingCents
	if payable < 0 {
		payable = 0
	}
	return payable
}

type NoticeKind string

const (
	// NoticeCouponCleared: the subtotal dropped below the coupon's min spend
	// and the coupon was removed. Surfaced to the caller, never silent.
	NoticeCouponCleared NoticeKind = "coupon_cleared"
	// NoticePointsReduced: applied points were re-clamped below what the
	// shopper had chosen.
	NoticePointsReduced NoticeKind = "points_reduced"
)

type Notice struct {
	Kind         NoticeKind
	CouponCode   string
	PointsBefore int64
	PointsAfter  int64
}

type Reconciler struct {
	state      State
	pointValue int64

	balance      int64
	balanceKnown bool

	// issuance-order guard: remote reads carry the sequence they were issued
	// at; a response older than the latest local mutation is discarded.
	seq         uint64
	mutationSeq uint64

	notices []Notice
}

// NewReconciler starts from an empty discount state (fresh cart entry).
// pointValueCents is the cash value of one point; 1 by default upstream.
func NewReconciler(subtotalCents, pointValueCents int64) (*Reconciler, error) {
	if subtotalCents < 0 {
		return nil, ErrNegativeSubtotal
	}
	if pointValueCents < 1 {
		pointValueCents = 1
	}
	return &Reconciler{
		state:      State{SubtotalCents: subtotalCents},
		pointValue: pointValueCents,
	}, nil
}

// Rehydrate rebuilds a reconciler from persisted state, re-clamping against
// the given subtotal so stored state can never violate the invariants.
func Rehydrate(st State, subtotalCents, pointValueCents int64) (*Reconciler, error) {
	r, err := NewReconciler(st.SubtotalCents, pointValueCents)
	if err != nil {
		return nil, err
	}
	r.state = st
	r.SetSubtotal(subtotalCents)
	return r, nil
}

func (r *Reconciler) State() State {
	st := r.state
	if st.Coupon != nil {
		c := *st.Coupon
		st.Coupon = &c
	}
	return st
}

func (r *Reconciler) PointValueCents() int64 { return r.pointValue }

func (r *Reconciler) BalanceCents() (int64, bool) {
	return r.balance, r.balanceKnown
}

// Notices drains accumulated notices in order.
func (r *Reconciler) Notices() []Notice {
	out := r.notices
	r.notices = nil
	return out
}

func (r *Reconciler) bumpMutation() {
	r.seq++
	r.mutationSeq = r.seq
}

// IssueReadSeq tags an outgoing remote read with the current issuance order.
func (r *Reconciler) IssueReadSeq() uint64 {
	r.seq++
	return r.seq
}

// ObserveBalance merges a balance response issued at readSeq. A response
// issued before the latest local mutation is stale and is dropped; this keeps
// response-arrival order irrelevant.
func (r *Reconciler) ObserveBalance(balanceCents int64, readSeq uint64) bool {
	if readSeq < r.mutationSeq {
		return false
	}
	r.balance = balanceCents
	r.balanceKnown = true
	r.reclampPoints()
	return true
}

// ApplyCoupon installs a resolved coupon and recomputes its amount against
// the current subtotal. Points are re-clamped beneath the new coupon.
func (r *Reconciler) ApplyCoupon(c AppliedCoupon) {
	c.AmountCents = r.couponAmount(&c)
	r.state.Coupon = &c
	r.reclampPoints()
	r.bumpMutation()
}

func (r *Reconciler) RemoveCoupon() {
	r.state.Coupon = nil
	r.reclampPoints()
	r.bumpMutation()
}

// SetPointsRequested stages points locally with no remote effect, clamped to
// [0, min(balance, subtotal - couponDiscount)]. Applying the same n twice
// yields an identical state.
func (r *Reconciler) SetPointsRequested(n int64) error {
	if n < 0 {
		return ErrNegativePoints
	}
	r.state.PointsRequested = r.clampPoints(n)
	r.bumpMutation()
	return nil
}

// ApplyPoints converts the staged request into an applied discount:
// pointsDiscount = pointsApplied * pointValue, re-clamped so that
// couponDiscount + pointsDiscount <= subtotal.
func (r *Reconciler) ApplyPoints() error {
	if !r.balanceKnown {
		return ErrBalanceUnknown
	}
	applied := r.clampPoints(r.state.PointsRequested)
	r.state.PointsRequested = applied
	r.state.PointsApplied = applied
	r.state.PointsDiscountCents = applied * r.pointValue
	r.bumpMutation()
	return nil
}

// ClearAll resets coupon and points staging (explicit reset on fresh entry).
func (r *Reconciler) ClearAll() {
	r.state.Coupon = nil
	r.state.PointsRequested = 0
	r.state.PointsApplied = 0
	r.state.PointsDiscountCents = 0
	r.bumpMutation()
}

// SetSubtotal re-reconciles after the selection changed. A coupon whose min
// spend is no longer met is cleared with a NoticeCouponCleared; points are
// re-clamped with a NoticePointsReduced when lowered. Nothing is dropped or
// shrunk silently.
func (r *Reconciler) SetSubtotal(subtotalCents int64) {
	if subtotalCents < 0 {
		subtotalCents = 0
	}
	r.state.SubtotalCents = subtotalCents

	if c := r.state.Coupon; c != nil {
		if subtotalCents < c.MinSpendCents {
			r.notices = append(r.notices, Notice{Kind: NoticeCouponCleared, CouponCode: c.Code})
			r.state.Coupon = nil
		} else {
			c.AmountCents = r.couponAmount(c)
		}
	}

	r.reclampPoints()
	r.bumpMutation()
}

func (r *Reconciler) couponAmount(c *AppliedCoupon) int64 {
	subtotal := r.state.SubtotalCents
	if subtotal <= 0 {
		return 0
	}
	var amount int64
	if c.Percent {
		amount = (subtotal*c.Value + 50) / 100
	} else {
		amount = c.Value
	}
	if amount > subtotal {
		amount = subtotal
	}
	if amount < 0 {
		amount = 0
	}
	return amount
}

// pointsCap = min(availableBalance, (subtotal - couponDiscount) / pointValue).
func (r *Reconciler) pointsCap() int64 {
	room := r.state.SubtotalCents
	if c := r.state.Coupon; c != nil {
		room -= c.AmountCents
	}
	if room < 0 {
		room = 0
	}
	cap := room / r.pointValue
	if r.balanceKnown && r.balance < cap {
		cap = r.balance
	}
	return cap
}

func (r *Reconciler) clampPoints(n int64) int64 {
	if n < 0 {
		return 0
	}
	if cap := r.pointsCap(); n > cap {
		return cap
	}
	return n
}

func (r *Reconciler) reclampPoints() {
	cap := r.pointsCap()
	if r.state.PointsRequested > cap {
		r.state.PointsRequested = cap
	}
	if r.state.PointsApplied > cap {
		r.notices = append(r.notices, Notice{
			Kind:         NoticePointsReduced,
			PointsBefore: r.state.PointsApplied,
			PointsAfter:  cap,
		})
		r.state.PointsApplied = cap
		r.state.PointsDiscountCents = cap * r.pointValue
	}
}
