package services

import (
	"context"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const toggleRoleSQL = `UPDATE users SET is_admin = NOT is_admin WHERE id = \$1`

func TestUserService_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, is_admin FROM users ORDER BY id")).
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "is_admin"}).
			AddRow(int64(1), "alice", true).
			AddRow(int64(2), "bob", false))

	svc := NewUserService(mock)
	users, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.True(t, users[0].IsAdmin)
	assert.Equal(t, "bob", users[1].Username)
	assert.False(t, users[1].IsAdmin)
}

func TestUserService_ToggleRole(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(toggleRoleSQL).
		WithArgs(int64(2)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	svc := NewUserService(mock)
	require.NoError(t, svc.ToggleRole(context.Background(), 2))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserService_ToggleRole_MissingRowIsIdempotent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(toggleRoleSQL).
		WithArgs(int64(99)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	svc := NewUserService(mock)
	assert.NoError(t, svc.ToggleRole(context.Background(), 99))
}

func TestUserService_ToggleRole_TwiceIsInvolution(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	// Both toggles run the same NOT-flip; two applications restore the
	// original value at the store
	mock.ExpectExec(toggleRoleSQL).WithArgs(int64(2)).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(toggleRoleSQL).WithArgs(int64(2)).WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	svc := NewUserService(mock)
	require.NoError(t, svc.ToggleRole(context.Background(), 2))
	require.NoError(t, svc.ToggleRole(context.Background(), 2))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserService_Delete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
		WithArgs(int64(2)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	svc := NewUserService(mock)
	require.NoError(t, svc.Delete(context.Background(), 2, 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserService_Delete_SelfIsRejected(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	svc := NewUserService(mock)
	err = svc.Delete(context.Background(), 1, 1)
	assert.ErrorIs(t, err, ErrSelfDelete)

	// The store is never touched
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT id, username, password_hash, is_admin, created_at FROM users WHERE id = \$1`).
		WithArgs(int64(99)).
		WillReturnError(assert.AnError)

	svc := NewUserService(mock)
	user, err := svc.GetByID(context.Background(), 99)
	assert.Nil(t, user)
	assert.Error(t, err)
}
