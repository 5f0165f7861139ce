package repository

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rootdex/internal/model"
)

func deviceRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "model", "brand", "status"}).
		AddRow(5, "Pixel 6", "GB7N6", "Google", "supported")
}

func TestDeviceUpdateEmptyPatchReadsOnly(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDeviceRepository(db)

	// No UPDATE statement is expected: an empty patch is just a get.
	mock.ExpectQuery("SELECT (.+) FROM `devices` WHERE").
		WillReturnRows(deviceRows())

	device, err := repo.Update(context.Background(), 5, model.DevicePatch{})
	require.NoError(t, err)

	assert.Equal(t, uint64(5), device.ID)
	assert.Equal(t, "Pixel 6", device.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeviceUpdateWritesPresentFields(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDeviceRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `devices` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery("SELECT (.+) FROM `devices` WHERE").
		WillReturnRows(deviceRows())

	name := "Pixel 6"
	device, err := repo.Update(context.Background(), 5, model.DevicePatch{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "Pixel 6", device.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
