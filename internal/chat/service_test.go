package chat

import (
	"context"
	"errors"
	"fmt"
	"testing"

	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&Message{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func TestSaveAllThenListAll(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(NewRepo(db))

	batch := []Inbound{
		{Content: "hello there", SentAt: 1000},
		{Content: "how is prep going", SentAt: 1001},
	}
	res, err := svc.SaveAll(context.Background(), "tok-1", batch)
	if err != nil {
		t.Fatalf("save all: %v", err)
	}
	if res.Inserted != 2 || res.Duplicates != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}

	msgs, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	seen := map[string]bool{}
	for _, m := range msgs {
		seen[m.Content] = true
		if m.MsgID == "" {
			t.Fatalf("expected msg id to be set")
		}
		if m.SenderToken != "tok-1" {
			t.Fatalf("unexpected sender token %q", m.SenderToken)
		}
	}
	if !seen["hello there"] || !seen["how is prep going"] {
		t.Fatalf("round-trip lost a message: %v", seen)
	}
}

func TestSaveAllResubmitIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(NewRepo(db))

	batch := []Inbound{
		{Content: "first", SentAt: 10},
		{Content: "second", SentAt: 11},
		{Content: "third", SentAt: 12},
	}

	if _, err := svc.SaveAll(context.Background(), "tok-2", batch); err != nil {
		t.Fatalf("first save: %v", err)
	}

	res, err := svc.SaveAll(context.Background(), "tok-2", batch)
	if err != nil {
		t.Fatalf("resubmit must not fail: %v", err)
	}
	if res.Inserted != 0 || res.Duplicates != 3 {
		t.Fatalf("expected 0 inserted / 3 duplicates, got %+v", res)
	}

	n, err := NewRepo(db).Count(context.Background())
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 3 {
		t.Fatalf("resubmit changed persisted set: %d rows", n)
	}
}

func TestSaveAllPartialDuplicates(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(NewRepo(db))

	if _, err := svc.SaveAll(context.Background(), "tok-3", []Inbound{{Content: "old", SentAt: 5}}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	res, err := svc.SaveAll(context.Background(), "tok-3", []Inbound{
		{Content: "old", SentAt: 5},
		{Content: "new", SentAt: 6},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if res.Inserted != 1 || res.Duplicates != 1 {
		t.Fatalf("expected 1 inserted / 1 duplicate, got %+v", res)
	}
}

func TestSameContentDifferentIdentityIsNotDuplicate(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(NewRepo(db))

	ctx := context.Background()
	if _, err := svc.SaveAll(ctx, "tok-a", []Inbound{{Content: "same words", SentAt: 100}}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// different timestamp
	res, err := svc.SaveAll(ctx, "tok-a", []Inbound{{Content: "same words", SentAt: 101}})
	if err != nil || res.Inserted != 1 {
		t.Fatalf("different sent_at should insert: res=%+v err=%v", res, err)
	}

	// different sender
	res, err = svc.SaveAll(ctx, "tok-b", []Inbound{{Content: "same words", SentAt: 100}})
	if err != nil || res.Inserted != 1 {
		t.Fatalf("different sender should insert: res=%+v err=%v", res, err)
	}
}

func TestSaveAllStoreFailureIsPersistenceError(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(NewRepo(db))

	// break the store out from under the service
	if err := db.Migrator().DropTable(&Message{}); err != nil {
		t.Fatalf("drop table: %v", err)
	}

	_, err := svc.SaveAll(context.Background(), "tok-x", []Inbound{{Content: "doomed", SentAt: 1}})
	if !errors.Is(err, ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}
}
