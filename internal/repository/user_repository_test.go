package repository

import (
	"errors"
	"testing"

	"competency_backend/internal/model"

	"gorm.io/gorm"
)

func TestUserCreateDuplicateName(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)

	if _, err := repo.Create(&model.User{UserName: "alice"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := repo.Create(&model.User{UserName: "alice"})
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("second create: got %v, want ErrDuplicatedKey", err)
	}
}

func TestUserFindByName(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)

	id := seedUser(t, db, "bob")

	user, err := repo.FindByName("bob")
	if err != nil {
		t.Fatalf("FindByName: %v", err)
	}
	if user.ID != id {
		t.Fatalf("got id %d, want %d", user.ID, id)
	}

	if _, err := repo.FindByName("nobody"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("missing user: got %v, want ErrRecordNotFound", err)
	}
}

func TestUserFindAllOrdered(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)

	seedUser(t, db, "charlie")
	seedUser(t, db, "alice")
	seedUser(t, db, "bob")

	users, err := repo.FindAll()
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	want := []string{"alice", "bob", "charlie"}
	if len(users) != len(want) {
		t.Fatalf("got %d users, want %d", len(users), len(want))
	}
	for i, name := range want {
		if users[i].UserName != name {
			t.Fatalf("users[%d]=%q, want %q", i, users[i].UserName, name)
		}
	}
}
