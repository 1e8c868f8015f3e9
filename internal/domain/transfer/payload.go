// Package transfer carries selection + discount state across the
// cart → checkout navigation boundary as a versioned, schema-checked payload.
package transfer

import (
	"encoding/json"
	"errors"

	"github.com/google/uuid"
)

// SchemaVersion is bumped on any incompatible payload change; decoding a
// payload from another version fails instead of guessing.
const SchemaVersion = 3

var (
	ErrSchemaVersion = errors.New("unsupported transfer schema version")
	ErrEmptyPayload  = errors.New("empty transfer payload")
)

// Payload carries the coupon's full rule (percent flag, value, min spend),
// not just the computed amount, so the receiving page can re-clamp the
// discount against its own live subtotal.
type Payload struct {
	SchemaVersion        int         `json:"schema_version"`
	SelectedItemIDs      []uuid.UUID `json:"selected_item_ids"`
	PointsToUse          int64       `json:"points_to_use"`
	PointsDiscountCents  int64       `json:"points_discount_cents"`
	CouponID             *int64      `json:"coupon_id,omitempty"`
	CouponFromCode       bool        `json:"coupon_from_code,omitempty"`
	CouponCode           string      `json:"coupon_code,omitempty"`
	CouponPercent        bool        `json:"coupon_percent,omitempty"`
	CouponValue          int64       `json:"coupon_value,omitempty"`
	CouponMinSpendCents  int64       `json:"coupon_min_spend_cents,omitempty"`
	CouponDiscountCents  int64       `json:"coupon_discount_cents"`
	SummarySubtotalCents int64       `json:"summary_subtotal_cents"`
	// Reset forces discount-state clearing on arrival (fresh cart entry).
	Reset bool `json:"reset,omitempty"`
}

func Encode(p Payload) ([]byte, error) {
	p.SchemaVersion = SchemaVersion
	return json.Marshal(p)
}

func Decode(raw []byte) (Payload, error) {
	if len(raw) == 0 {
		return Payload{}, ErrEmptyPayload
	}
	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return Payload{}, err
	}
	if p.SchemaVersion != SchemaVersion {
		return Payload{}, ErrSchemaVersion
	}
	return p, nil
}
