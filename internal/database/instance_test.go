package database

import (
	"context"
	"fmt"
	"testing"

	"github.com/HiImDanix/hungry-shift-helper/internal/domain"
	"github.com/HiImDanix/hungry-shift-helper/internal/domain/contract"
	"github.com/HiImDanix/hungry-shift-helper/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstance_WithTransaction_Commit(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	dm := NewInstance(db)

	err := dm.WithTransaction(context.Background(), func(tx contract.DataManager) error {
		return tx.Timeslot().Create(&entity.Timeslot{
			Days:      []int{domain.Monday},
			StartTime: "09:00",
			EndTime:   "17:00",
		})
	})
	require.NoError(t, err)

	slots, err := dm.Timeslot().List()
	require.NoError(t, err)
	assert.Len(t, slots, 1)
}

func TestInstance_WithTransaction_Rollback(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	dm := NewInstance(db)

	err := dm.WithTransaction(context.Background(), func(tx contract.DataManager) error {
		if err := tx.Timeslot().Create(&entity.Timeslot{
			Days:      []int{domain.Monday},
			StartTime: "09:00",
			EndTime:   "17:00",
		}); err != nil {
			return err
		}
		return fmt.Errorf("abort")
	})
	require.Error(t, err)

	slots, err := dm.Timeslot().List()
	require.NoError(t, err)
	assert.Empty(t, slots, "rolled back insert must not be visible")
}
