package audit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/testutil"
)

func TestDispatchWritesRow(t *testing.T) {
	db := testutil.NewDB(t)
	d := NewDispatcher(New(db), zap.NewNop())

	accountID, shopID := uint(3), uint(8)
	d.Dispatch(context.Background(), Event{
		AccountID: &accountID,
		Action:    "shop_created",
		Entity:    "shop",
		EntityID:  &shopID,
		Metadata:  map[string]string{"name": "Viking"},
	})

	var rows []models.AuditLog
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "shop_created", rows[0].Action)
	assert.Equal(t, shopID, *rows[0].EntityID)
	assert.JSONEq(t, `{"name":"Viking"}`, string(rows[0].Metadata))
}

func TestDispatchSwallowsFailures(t *testing.T) {
	db := testutil.NewDB(t)
	require.NoError(t, db.Migrator().DropTable(&models.AuditLog{}))

	d := NewDispatcher(New(db), zap.NewNop())
	assert.NotPanics(t, func() {
		d.Dispatch(context.Background(), Event{Action: "shop_deleted", Entity: "shop"})
	})

	err := New(db).Write(context.Background(), Event{Action: "x", Metadata: make(chan int)})
	assert.Error(t, err)

	var nilDispatcher *Dispatcher
	assert.NotPanics(t, func() {
		nilDispatcher.Dispatch(context.Background(), Event{Action: "x"})
	})
}
