package database

import (
	"context"
	"log"
	"testing"
	"time"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	m "github.com/sudharson99/swipeHire/internal/model"
)

func TestMain(t *testing.M) {
	var err error
	teardownFn, _, err := GetTestDB()
	if err != nil {
		log.Fatalf("could not start postgres container: %v", err)
	}

	t.Run()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if teardownFn != nil {
		if err := teardownFn(ctx); err != nil {
			log.Fatalf("could not teardown postgres container: %v", err)
		}
	}
}

func TestHealth(t *testing.T) {
	_, db, err := GetTestDB()
	if err != nil {
		t.Fatalf("Database failed to initialize: %s", err)
	}
	stats := db.Health()

	if stats["status"] != "up" {
		t.Fatalf("expected status to be up, got %s", stats["status"])
	}

	if _, ok := stats["error"]; ok {
		t.Fatalf("expected error not to be present")
	}

	if stats["message"] != "It's healthy" {
		t.Fatalf("expected message to be 'It's healthy', got %s", stats["message"])
	}
}

func TestMigrateSeed(t *testing.T) {
	_, db, err := GetTestDB()
	if err != nil {
		t.Fatalf("Database failed to initialize: %s", err)
	}

	var jobCount int64
	if err := db.Model(&m.Job{}).Where("city = ? AND is_active", "toronto").Count(&jobCount).Error; err != nil {
		t.Fatalf("count jobs: %v", err)
	}
	if jobCount != 5 {
		t.Fatalf("expected 5 active toronto jobs, got %d", jobCount)
	}

	var userCount int64
	if err := db.Model(&m.User{}).Count(&userCount).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if userCount < 2 {
		t.Fatalf("expected at least 2 seeded users, got %d", userCount)
	}
}

func TestUniqueSwipeConstraint(t *testing.T) {
	_, db, err := GetTestDB()
	if err != nil {
		t.Fatalf("Database failed to initialize: %s", err)
	}

	swipe := m.UserSwipe{
		UserID: TestUser2.ID,
		JobID:  TestCalgaryJob.ID,
		Action: m.ActionPass,
	}
	if err := db.Create(&swipe).Error; err != nil {
		t.Fatalf("first swipe should insert: %v", err)
	}

	dup := m.UserSwipe{
		UserID: TestUser2.ID,
		JobID:  TestCalgaryJob.ID,
		Action: m.ActionApply,
	}
	if err := db.Create(&dup).Error; err == nil {
		t.Fatal("second swipe on same (user, job) should violate unique index")
	}

	var count int64
	db.Model(&m.UserSwipe{}).
		Where("user_id = ? AND job_id = ?", TestUser2.ID, TestCalgaryJob.ID).
		Count(&count)
	if count != 1 {
		t.Fatalf("expected exactly 1 swipe row, got %d", count)
	}
}
