package contract

import (
	"context"

	"github.com/HiImDanix/hungry-shift-helper/internal/domain/entity"
)

// RawShift is one entry of the upstream shift listing, untouched except for
// JSON decoding. Field validation happens in the normalizer, not here.
type RawShift struct {
	ShiftID           int64  `json:"shift_id"`
	Start             string `json:"start"`
	End               string `json:"end"`
	Status            string `json:"status"`
	TimeZone          string `json:"time_zone"`
	StartingPointID   int64  `json:"starting_point_id"`
	StartingPointName string `json:"starting_point_name"`
}

// ShiftSource fetches the raw shift listing for the configured account.
type ShiftSource interface {
	FetchShifts(ctx context.Context) ([]RawShift, error)
}

// ClaimSink submits a claim for one shift. A nil error means the shift is
// ours; domain.ErrShiftTaken means another courier won (or the shift was
// withdrawn); any other error is transient.
type ClaimSink interface {
	SubmitClaim(ctx context.Context, shift *entity.Shift) error
}

// Notifier delivers one message to the courier's configured channel.
type Notifier interface {
	Notify(ctx context.Context, title, body string) error
}
