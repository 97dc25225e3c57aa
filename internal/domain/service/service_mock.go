package service

import (
	"testing"

	"github.com/HiImDanix/hungry-shift-helper/mocks"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager  *mocks.MockDataManager
	mockTimeslotRepo *mocks.MockTimeslotRepo
	mockShiftRepo    *mocks.MockShiftRepo
	mockSessionRepo  *mocks.MockSessionRepo
	mockShiftSource  *mocks.MockShiftSource
	mockClaimSink    *mocks.MockClaimSink
	mockNotifier     *mocks.MockNotifier
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	timeslotRepo := mocks.NewMockTimeslotRepo(ctrl)
	dm.EXPECT().Timeslot().Return(timeslotRepo).AnyTimes()

	shiftRepo := mocks.NewMockShiftRepo(ctrl)
	dm.EXPECT().Shift().Return(shiftRepo).AnyTimes()

	sessionRepo := mocks.NewMockSessionRepo(ctrl)
	dm.EXPECT().Session().Return(sessionRepo).AnyTimes()

	m = allMocks{
		mockDataManager:  dm,
		mockTimeslotRepo: timeslotRepo,
		mockShiftRepo:    shiftRepo,
		mockSessionRepo:  sessionRepo,
		mockShiftSource:  mocks.NewMockShiftSource(ctrl),
		mockClaimSink:    mocks.NewMockClaimSink(ctrl),
		mockNotifier:     mocks.NewMockNotifier(ctrl),
	}

	return
}
