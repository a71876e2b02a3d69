package repository

import (
	"errors"
	"testing"

	"competency_backend/internal/model"

	"gorm.io/gorm"
)

func TestRankingUpsertOverwrites(t *testing.T) {
	db := testDB(t)
	repo := NewRankingRepository(db)

	uid := seedUser(t, db, "alice")
	cid := seedCompetency(t, db, "E8", "Modellieren")

	if _, err := repo.Upsert(&model.UserSkill{UserID: uid, CompetencyID: cid, SkillRank: 1000}); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if _, err := repo.Upsert(&model.UserSkill{UserID: uid, CompetencyID: cid, SkillRank: 1200}); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	var count int64
	if err := db.Model(&model.UserSkill{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("got %d rows, want 1", count)
	}

	ranking, err := repo.FindByUserAndCompetency(uid, cid)
	if err != nil {
		t.Fatalf("FindByUserAndCompetency: %v", err)
	}
	if ranking.SkillRank != 1200 {
		t.Fatalf("got rank %d, want 1200", ranking.SkillRank)
	}
	if ranking.CompetencyName != "Modellieren" {
		t.Fatalf("competency fields not joined: %+v", ranking)
	}
}

func TestRankingFindByUserAndCompetencyNotFound(t *testing.T) {
	db := testDB(t)
	repo := NewRankingRepository(db)

	uid := seedUser(t, db, "alice")
	cid := seedCompetency(t, db, "E8", "Modellieren")

	_, err := repo.FindByUserAndCompetency(uid, cid)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("got %v, want ErrRecordNotFound", err)
	}
}

func TestRankingFindByUserOrdered(t *testing.T) {
	db := testDB(t)
	repo := NewRankingRepository(db)

	uid := seedUser(t, db, "alice")
	c1 := seedCompetency(t, db, "E8", "Modellieren")
	c2 := seedCompetency(t, db, "F9", "Argumentieren")

	if _, err := repo.Upsert(&model.UserSkill{UserID: uid, CompetencyID: c1, SkillRank: 800}); err != nil {
		t.Fatalf("upsert c1: %v", err)
	}
	if _, err := repo.Upsert(&model.UserSkill{UserID: uid, CompetencyID: c2, SkillRank: 1500}); err != nil {
		t.Fatalf("upsert c2: %v", err)
	}

	rankings, err := repo.FindByUser(uid)
	if err != nil {
		t.Fatalf("FindByUser: %v", err)
	}
	if len(rankings) != 2 {
		t.Fatalf("got %d rankings, want 2", len(rankings))
	}
	// 段位从高到低
	if rankings[0].SkillRank != 1500 || rankings[1].SkillRank != 800 {
		t.Fatalf("rankings not ordered: %+v", rankings)
	}
}

func TestRankingFindUsersByCompetencyFilters(t *testing.T) {
	db := testDB(t)
	repo := NewRankingRepository(db)

	cid := seedCompetency(t, db, "E8", "Modellieren")
	for _, u := range []struct {
		name string
		rank int
	}{
		{"low", 500},
		{"mid", 1000},
		{"high", 1500},
	} {
		uid := seedUser(t, db, u.name)
		if _, err := repo.Upsert(&model.UserSkill{UserID: uid, CompetencyID: cid, SkillRank: u.rank}); err != nil {
			t.Fatalf("upsert %s: %v", u.name, err)
		}
	}

	intPtr := func(i int) *int { return &i }

	cases := []struct {
		name     string
		min, max *int
		want     []string
	}{
		{"no_filter", nil, nil, []string{"high", "mid", "low"}},
		{"min_only", intPtr(1000), nil, []string{"high", "mid"}},
		{"max_only", nil, intPtr(1000), []string{"mid", "low"}},
		{"both", intPtr(600), intPtr(1400), []string{"mid"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			users, err := repo.FindUsersByCompetency(cid, c.min, c.max)
			if err != nil {
				t.Fatalf("FindUsersByCompetency: %v", err)
			}
			if len(users) != len(c.want) {
				t.Fatalf("got %d users, want %d", len(users), len(c.want))
			}
			for i, name := range c.want {
				if users[i].UserName != name {
					t.Fatalf("users[%d]=%q, want %q", i, users[i].UserName, name)
				}
			}
		})
	}
}
