package store

import (
	"testing"

	"recipehub/pkg/domain"
)

func ownedBy(id string) *string {
	return &id
}

func TestMemoryStoreInsertPrepends(t *testing.T) {
	m := NewMemoryStore()
	m.Seed()

	if err := m.InsertRecipe(domain.Recipe{ID: "r1", OwnerID: ownedBy("u1"), Title: "T1", ImageURL: "http://i/1", Description: "D1"}); err != nil {
		t.Fatalf("insert r1: %v", err)
	}
	if err := m.InsertRecipe(domain.Recipe{ID: "r2", OwnerID: ownedBy("u1"), Title: "T2", ImageURL: "http://i/2", Description: "D2"}); err != nil {
		t.Fatalf("insert r2: %v", err)
	}

	recipes, err := m.ListRecipes()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	wantOrder := []string{"r2", "r1", "1", "2"}
	if len(recipes) != len(wantOrder) {
		t.Fatalf("expected %d recipes, got %d", len(wantOrder), len(recipes))
	}
	for i, id := range wantOrder {
		if recipes[i].ID != id {
			t.Fatalf("position %d: got %q want %q", i, recipes[i].ID, id)
		}
	}
}

func TestMemoryStoreSeedRecipesHaveNoOwner(t *testing.T) {
	m := NewMemoryStore()
	m.Seed()

	for _, id := range []string{"1", "2"} {
		r, ok, err := m.GetRecipe(id)
		if err != nil || !ok {
			t.Fatalf("seed recipe %s missing (ok=%v err=%v)", id, ok, err)
		}
		if r.OwnerID != nil {
			t.Fatalf("seed recipe %s should have nil owner, got %q", id, *r.OwnerID)
		}
	}
}

func TestMemoryStoreSeedIsIdempotent(t *testing.T) {
	m := NewMemoryStore()
	m.Seed()
	m.Seed()
	recipes, err := m.ListRecipes()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recipes) != 2 {
		t.Fatalf("expected 2 seed recipes, got %d", len(recipes))
	}
}

func TestMemoryStoreUpdateKeepsPosition(t *testing.T) {
	m := NewMemoryStore()
	if err := m.InsertRecipe(domain.Recipe{ID: "a", Title: "A", ImageURL: "http://i/a", Description: "D"}); err != nil {
		t.Fatalf("insert a: %v", err)
	}
	if err := m.InsertRecipe(domain.Recipe{ID: "b", Title: "B", ImageURL: "http://i/b", Description: "D"}); err != nil {
		t.Fatalf("insert b: %v", err)
	}
	if err := m.UpdateRecipe(domain.Recipe{ID: "a", Title: "A2", ImageURL: "http://i/a", Description: "D2"}); err != nil {
		t.Fatalf("update a: %v", err)
	}
	recipes, _ := m.ListRecipes()
	if recipes[0].ID != "b" || recipes[1].ID != "a" {
		t.Fatalf("update changed listing order: %v", []string{recipes[0].ID, recipes[1].ID})
	}
	if recipes[1].Title != "A2" {
		t.Fatalf("update not applied, title = %q", recipes[1].Title)
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	m := NewMemoryStore()
	if err := m.InsertRecipe(domain.Recipe{ID: "a", Title: "A", ImageURL: "http://i/a", Description: "D"}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	deleted, err := m.DeleteRecipe("a")
	if err != nil || !deleted {
		t.Fatalf("expected delete to succeed (deleted=%v err=%v)", deleted, err)
	}
	deleted, err = m.DeleteRecipe("a")
	if err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if deleted {
		t.Fatalf("second delete should report not found")
	}
	recipes, _ := m.ListRecipes()
	if len(recipes) != 0 {
		t.Fatalf("expected empty listing, got %d", len(recipes))
	}
}

func TestMemoryStoreUserEmailIndex(t *testing.T) {
	m := NewMemoryStore()
	if err := m.SaveUser(domain.User{ID: "u1", Email: "a@x.com", Secret: "p1"}); err != nil {
		t.Fatalf("save user: %v", err)
	}
	exists, err := m.HasUserEmail("a@x.com")
	if err != nil || !exists {
		t.Fatalf("expected email to exist (exists=%v err=%v)", exists, err)
	}
	// Lookup is case-sensitive, matching the stored-as-given contract.
	exists, _ = m.HasUserEmail("A@x.com")
	if exists {
		t.Fatalf("email lookup should be case-sensitive")
	}
	u, ok, err := m.GetUserByEmail("a@x.com")
	if err != nil || !ok || u.ID != "u1" {
		t.Fatalf("get by email: ok=%v err=%v user=%+v", ok, err, u)
	}
	count, _ := m.UserCount()
	if count != 1 {
		t.Fatalf("expected 1 user, got %d", count)
	}
}
