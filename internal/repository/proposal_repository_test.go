package repository

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"rootdex/internal/model"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db, mock
}

func proposalRows(status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "model", "brand", "os", "notes", "contact", "status"}).
		AddRow(1, "Pixel 6", "Google", "Android 15", "", "", status)
}

func TestProposalApprovePendingMaterializesDevice(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProposalRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `device_proposals` WHERE (.+)FOR UPDATE").
		WillReturnRows(proposalRows("pending"))
	mock.ExpectExec("INSERT INTO `devices`").
		WillReturnResult(sqlmock.NewResult(9, 1))
	mock.ExpectExec("UPDATE `device_proposals` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	proposal, err := repo.Approve(context.Background(), 1, "admin")
	require.NoError(t, err)

	assert.Equal(t, model.ProposalStatusApproved, proposal.Status)
	require.NotNil(t, proposal.DeviceID)
	assert.Equal(t, uint64(9), *proposal.DeviceID)
	require.NotNil(t, proposal.ApprovedBy)
	assert.Equal(t, "admin", *proposal.ApprovedBy)
	assert.NotNil(t, proposal.ApprovedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProposalApproveNonPendingIsNoOp(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProposalRepository(db)

	// Only the locked read and the commit: no device insert, no stamping.
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `device_proposals` WHERE (.+)FOR UPDATE").
		WillReturnRows(proposalRows("approved"))
	mock.ExpectCommit()

	proposal, err := repo.Approve(context.Background(), 1, "admin")
	require.NoError(t, err)

	assert.Equal(t, model.ProposalStatusApproved, proposal.Status)
	assert.Nil(t, proposal.DeviceID)
	assert.Nil(t, proposal.ApprovedBy)
	assert.Nil(t, proposal.ApprovedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProposalApproveMissingRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProposalRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `device_proposals` WHERE (.+)FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := repo.Approve(context.Background(), 99, "admin")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProposalRejectPendingStampsRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProposalRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `device_proposals` WHERE (.+)FOR UPDATE").
		WillReturnRows(proposalRows("pending"))
	mock.ExpectExec("UPDATE `device_proposals` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	proposal, err := repo.Reject(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, model.ProposalStatusRejected, proposal.Status)
	assert.NotNil(t, proposal.RejectedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProposalRejectNonPendingIsNoOp(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProposalRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `device_proposals` WHERE (.+)FOR UPDATE").
		WillReturnRows(proposalRows("rejected"))
	mock.ExpectCommit()

	proposal, err := repo.Reject(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, model.ProposalStatusRejected, proposal.Status)
	assert.Nil(t, proposal.RejectedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}
