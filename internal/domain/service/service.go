package service

import (
	"log"

	"github.com/HiImDanix/hungry-shift-helper/internal/domain"
	"github.com/HiImDanix/hungry-shift-helper/internal/domain/contract"
	"github.com/HiImDanix/hungry-shift-helper/internal/domain/entity"
)

type Instance struct {
	Poller *pollerService
}

type Options struct {
	AutoTake bool
	Debug    bool
}

// NewInstance loads the courier's timeslots and wires up the polling
// pipeline. When no timeslots are configured, a catch-all slot covering every
// day and time is used so the helper still reports everything it finds.
func NewInstance(dm contract.DataManager, source contract.ShiftSource, sink contract.ClaimSink, notifier contract.Notifier, opts Options) (*Instance, error) {
	slots, err := dm.Timeslot().List()
	if err != nil {
		return nil, err
	}
	if len(slots) == 0 {
		log.Println("No timeslots configured, using a catch-all that covers every day and time")
		slots = []*entity.Timeslot{eternalTimeslot()}
	}

	ledger, err := newLedger(dm.Shift())
	if err != nil {
		return nil, err
	}

	return &Instance{
		Poller: &pollerService{
			source:   source,
			notifier: notifier,
			ledger:   ledger,
			claimer:  newClaimCoordinator(sink),
			slots:    slots,
			autoTake: opts.AutoTake,
			debug:    opts.Debug,
		},
	}, nil
}

func eternalTimeslot() *entity.Timeslot {
	return &entity.Timeslot{
		Days:      domain.AllWeekdays,
		StartTime: "00:00",
		EndTime:   "23:59",
	}
}
