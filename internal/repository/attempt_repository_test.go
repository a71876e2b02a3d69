package repository

import (
	"testing"
	"time"

	"competency_backend/internal/model"
)

func TestAttemptRecordAppendOnly(t *testing.T) {
	db := testDB(t)
	repo := NewAttemptRepository(db)

	uid := seedUser(t, db, "alice")
	qid := seedQuestion(t, db, "Was ist 2+2?")

	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.Local)
	for i, correct := range []bool{false, true} {
		rows, err := repo.Record(&model.UserQuestion{
			UserID:      uid,
			QuestionID:  qid,
			UserAnswer:  "4",
			IsCorrect:   correct,
			AttemptTime: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
		if rows != 1 {
			t.Fatalf("record %d affected %d rows", i, rows)
		}
	}

	attempts, err := repo.FindByUserAndQuestion(uid, qid)
	if err != nil {
		t.Fatalf("FindByUserAndQuestion: %v", err)
	}
	if len(attempts) != 2 {
		t.Fatalf("got %d attempts, want 2", len(attempts))
	}
	// 最新一次在前
	if !attempts[0].IsCorrect || attempts[1].IsCorrect {
		t.Fatalf("attempts not ordered newest first: %+v", attempts)
	}
	if attempts[0].QuestionDescription != "Was ist 2+2?" {
		t.Fatalf("question fields not joined: %+v", attempts[0])
	}
}

func TestAttemptRecordStampsServerTime(t *testing.T) {
	db := testDB(t)
	repo := NewAttemptRepository(db)

	uid := seedUser(t, db, "alice")
	qid := seedQuestion(t, db, "q")

	before := time.Now().Add(-2 * time.Second)
	attempt := model.UserQuestion{UserID: uid, QuestionID: qid, UserAnswer: "x"}
	if _, err := repo.Record(&attempt); err != nil {
		t.Fatalf("record: %v", err)
	}
	if attempt.AttemptTime.IsZero() {
		t.Fatal("attempt time not stamped")
	}
	if attempt.AttemptTime.Before(before) || attempt.AttemptTime.After(time.Now()) {
		t.Fatalf("stamped time %v outside expected window", attempt.AttemptTime)
	}
}

func TestAttemptCorrectIncorrectSplit(t *testing.T) {
	db := testDB(t)
	repo := NewAttemptRepository(db)

	uid := seedUser(t, db, "alice")
	q1 := seedQuestion(t, db, "q1")
	q2 := seedQuestion(t, db, "q2")

	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.Local)
	seed := []struct {
		qid     uint
		correct bool
	}{
		{q1, true},
		{q1, false},
		{q2, false},
	}
	for i, s := range seed {
		if _, err := repo.Record(&model.UserQuestion{
			UserID:      uid,
			QuestionID:  s.qid,
			IsCorrect:   s.correct,
			AttemptTime: base.Add(time.Duration(i) * time.Minute),
		}); err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
	}

	correct, err := repo.FindCorrectByUser(uid)
	if err != nil {
		t.Fatalf("FindCorrectByUser: %v", err)
	}
	if len(correct) != 1 {
		t.Fatalf("got %d correct attempts, want 1", len(correct))
	}

	incorrect, err := repo.FindIncorrectByUser(uid)
	if err != nil {
		t.Fatalf("FindIncorrectByUser: %v", err)
	}
	if len(incorrect) != 2 {
		t.Fatalf("got %d incorrect attempts, want 2", len(incorrect))
	}

	all, err := repo.FindByUser(uid)
	if err != nil {
		t.Fatalf("FindByUser: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d attempts, want 3", len(all))
	}
}
