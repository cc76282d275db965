package journal

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
)

func TestPostgresJournal_Record(t *testing.T) {
	dbConn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer dbConn.Close()

	event := Event{
		ID:         uuid.NewString(),
		Kind:       KindPurchase,
		Selector:   "A",
		Amount:     150,
		Ejected:    50,
		OccurredAt: time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO vend_events").
		WithArgs(event.ID, event.Kind, event.Selector, event.Amount, event.Ejected, event.OccurredAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	jr := NewPostgres(dbConn)
	if err := jr.Record(event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresJournal_RecordError(t *testing.T) {
	dbConn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer dbConn.Close()

	mock.ExpectExec("INSERT INTO vend_events").
		WillReturnError(errors.New("connection reset"))

	jr := NewPostgres(dbConn)
	if err := jr.Record(Event{ID: uuid.NewString(), Kind: KindReset}); err == nil {
		t.Error("expected error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestNop_Record(t *testing.T) {
	if err := (Nop{}).Record(Event{Kind: KindCoinInserted}); err != nil {
		t.Errorf("nop journal returned error: %v", err)
	}
}
