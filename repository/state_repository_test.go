package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindByNameIgnoresCaseAndAccents(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStateRepository(db)

	rows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "name"}).
			AddRow(1, "Pendiente").
			AddRow(2, "En revisión").
			AddRow(3, "CONFIRMADA").
			AddRow(4, "confirmada")
	}
	mock.ExpectQuery(`SELECT \* FROM "reservation_states" ORDER BY id ASC`).WillReturnRows(rows())
	mock.ExpectQuery(`SELECT \* FROM "reservation_states" ORDER BY id ASC`).WillReturnRows(rows())
	mock.ExpectQuery(`SELECT \* FROM "reservation_states" ORDER BY id ASC`).WillReturnRows(rows())

	state, err := repo.FindByName(context.Background(), "en revision")
	require.NoError(t, err)
	assert.Equal(t, uint(2), state.ID)

	state, err = repo.FindByName(context.Background(), " Confirmada ")
	require.NoError(t, err)
	assert.Equal(t, uint(3), state.ID)

	_, err = repo.FindByName(context.Background(), "cancelada")
	assert.True(t, IsNotFound(err))

	assert.NoError(t, mock.ExpectationsWereMet())
}
