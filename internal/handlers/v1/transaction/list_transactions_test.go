package transaction

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/analytics"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// -- parseListTransactionsInput unit tests --

func TestParseListTransactionsInput_NoCursor(t *testing.T) {
	cursor, err := parseListTransactionsInput(&ListTransactionsInput{})

	assert.NoError(t, err)
	assert.Nil(t, cursor)
}

func TestParseListTransactionsInput_WithCursor(t *testing.T) {
	cursorMaxTime := "2025-06-15T08:00:00.123456Z"

	cursor, err := parseListTransactionsInput(&ListTransactionsInput{
		Body: ListTransactionsBody{
			Cursor: &ListTransactionsCursor{
				Position:        40,
				Limit:           10,
				MaxCreationTime: cursorMaxTime,
			},
		},
	})

	require.NoError(t, err)
	expectedMax, _ := time.Parse(time.RFC3339Nano, cursorMaxTime)
	assert.Equal(t, 40, cursor.Position)
	assert.Equal(t, 10, cursor.Limit)
	assert.True(t, expectedMax.Equal(cursor.MaxCreationTime))
}

func TestParseListTransactionsInput_InvalidCursorMaxCreationTime(t *testing.T) {
	_, err := parseListTransactionsInput(&ListTransactionsInput{
		Body: ListTransactionsBody{
			Cursor: &ListTransactionsCursor{Limit: 10, MaxCreationTime: "not-a-date"},
		},
	})

	assert.Error(t, err)
}

// -- HTTP tests --

func TestHTTP_ListTransactions_FirstPage(t *testing.T) {
	categoryID := uuid.Must(uuid.NewV4())
	created := time.Date(2025, 6, 15, 8, 0, 0, 500, time.UTC)
	txs := []service.Transaction{
		{
			ID:              uuid.Must(uuid.NewV4()),
			CategoryID:      uuid.NullUUID{UUID: categoryID, Valid: true},
			Amount:          decimal.RequireFromString("7.5"),
			Description:     "Coffee",
			Type:            analytics.TransactionTypeExpense,
			TransactionDate: created,
			CreatedAt:       created,
		},
		{
			ID:              uuid.Must(uuid.NewV4()),
			Amount:          decimal.RequireFromString("3000"),
			Description:     "Salary",
			Type:            analytics.TransactionTypeIncome,
			TransactionDate: created,
			CreatedAt:       created,
		},
	}
	next := &service.TransactionCursor{Position: 2, Limit: 2, MaxCreationTime: created}

	mockSvc := new(mockTransactionService)
	mockSvc.On("ListTransactions", mock.Anything, (*service.TransactionCursor)(nil)).Return(txs, next, nil)

	resp := newTestAPI(t, mockSvc).Post("/v1/transaction/list", ListTransactionsBody{})

	require.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Transactions, 2)
	assert.Equal(t, "7.50", body.Transactions[0].Amount)
	assert.Equal(t, categoryID.String(), *body.Transactions[0].CategoryID)
	assert.Nil(t, body.Transactions[1].CategoryID)
	require.NotNil(t, body.NextCursor)
	assert.Equal(t, 2, body.NextCursor.Position)

	// The cursor round-trips without losing sub-second precision.
	parsed, err := time.Parse(time.RFC3339, body.NextCursor.MaxCreationTime)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(created))
}

func TestHTTP_ListTransactions_LimitOutOfRange(t *testing.T) {
	mockSvc := new(mockTransactionService)

	resp := newTestAPI(t, mockSvc).Post("/v1/transaction/list", ListTransactionsBody{
		Cursor: &ListTransactionsCursor{Position: 0, Limit: 500, MaxCreationTime: "2025-06-15T08:00:00Z"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "ListTransactions", mock.Anything, mock.Anything)
}

func TestHTTP_ListTransactions_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("ListTransactions", mock.Anything, mock.Anything).Return(nil, nil, errors.New("timeout"))

	resp := newTestAPI(t, mockSvc).Post("/v1/transaction/list", ListTransactionsBody{})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
