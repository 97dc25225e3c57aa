package service

import (
	"fmt"

	"github.com/HiImDanix/hungry-shift-helper/internal/domain/entity"
	"go.uber.org/mock/gomock"
)

// gomockShift matches a *entity.Shift argument by id only.
func gomockShift(id int64) gomock.Matcher {
	return shiftIDMatcher{id: id}
}

type shiftIDMatcher struct {
	id int64
}

func (m shiftIDMatcher) Matches(x any) bool {
	shift, ok := x.(*entity.Shift)
	return ok && shift.ID == m.id
}

func (m shiftIDMatcher) String() string {
	return fmt.Sprintf("shift with id %d", m.id)
}
