package services

import (
	"context"
	"testing"

	"github.com/linknest/backend/src/models"
)

func TestCreateUser_RequiredFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	cases := []struct {
		name  string
		input CreateUserInput
	}{
		{"missing email", CreateUserInput{Password: "password123", FirstName: "A", LastName: "B"}},
		{"missing password", CreateUserInput{Email: "a@example.com", FirstName: "A", LastName: "B"}},
		{"missing first name", CreateUserInput{Email: "a@example.com", Password: "password123", LastName: "B"}},
		{"short password", CreateUserInput{Email: "a@example.com", Password: "abc", FirstName: "A", LastName: "B"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.CreateUser(context.Background(), tc.input); !IsValidation(err) {
				t.Errorf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestCreateUser_HashesPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	user, err := svc.CreateUser(context.Background(), CreateUserInput{
		Email:     "alice@example.com",
		Password:  "password123",
		FirstName: "Alice",
		LastName:  "Tester",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !user.IsActive {
		t.Error("new user should be active")
	}
	if user.PasswordHash == "" || user.PasswordHash == "password123" {
		t.Error("password must be stored hashed, never plaintext")
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	ctx := context.Background()

	input := CreateUserInput{
		Email:     "alice@example.com",
		Password:  "password123",
		FirstName: "Alice",
		LastName:  "Tester",
	}
	if _, err := svc.CreateUser(ctx, input); err != nil {
		t.Fatalf("first create: %v", err)
	}

	if _, err := svc.CreateUser(ctx, input); !IsConflict(err) {
		t.Errorf("expected ConflictError, got %v", err)
	}
}

func TestGetUserByEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	ctx := context.Background()
	a := createTestUser(t, db, "Alice")

	found, err := svc.GetUserByEmail(ctx, a.Email)
	if err != nil {
		t.Fatalf("getUserByEmail: %v", err)
	}
	if found.ID != a.ID {
		t.Errorf("expected user %d, got %d", a.ID, found.ID)
	}

	if _, err := svc.GetUserByEmail(ctx, "nobody@example.com"); !IsNotFound(err) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	ctx := context.Background()
	a := createTestUser(t, db, "Alice")

	user, err := svc.Authenticate(ctx, a.Email, "password123")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if user.ID != a.ID {
		t.Errorf("expected user %d, got %d", a.ID, user.ID)
	}

	if _, err := svc.Authenticate(ctx, a.Email, "wrong-password"); !IsAuthentication(err) {
		t.Errorf("wrong password: expected AuthenticationError, got %v", err)
	}
	if _, err := svc.Authenticate(ctx, "nobody@example.com", "password123"); !IsAuthentication(err) {
		t.Errorf("unknown email: expected AuthenticationError, got %v", err)
	}
}

func TestSearchUsers(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "Alice")
	bob := createTestUser(t, db, "Bob")
	if _, err := svc.UpdateProfile(ctx, bob.ID, profileUpdateHeadline("Senior Alchemist")); err != nil {
		t.Fatalf("update headline: %v", err)
	}

	// case-insensitive match across first name, last name and headline
	results, err := svc.SearchUsers(ctx, "aLiCe", 10)
	if err != nil {
		t.Fatalf("search first name: %v", err)
	}
	if !containsUserID(results, alice.ID) {
		t.Error("expected Alice in first-name search results")
	}

	results, err = svc.SearchUsers(ctx, "alchemist", 10)
	if err != nil {
		t.Fatalf("search headline: %v", err)
	}
	if !containsUserID(results, bob.ID) {
		t.Error("expected Bob in headline search results")
	}

	results, err = svc.SearchUsers(ctx, "tester", 1)
	if err != nil {
		t.Fatalf("search with limit: %v", err)
	}
	if len(results) != 1 {
		t.Errorf("expected limit to cap results at 1, got %d", len(results))
	}

	if _, err := svc.SearchUsers(ctx, "   ", 10); !IsValidation(err) {
		t.Errorf("blank query: expected ValidationError, got %v", err)
	}
}

func TestGetSuggestedConnections(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	connections := NewConnectionService(db)
	ctx := context.Background()

	a := createTestUser(t, db, "Alice")
	b := createTestUser(t, db, "Bob")
	c := createTestUser(t, db, "Carol")

	// a <-> b accepted, a -> c pending
	if _, err := connections.SendRequest(ctx, a.ID, b.ID); err != nil {
		t.Fatalf("send a->b: %v", err)
	}
	if _, err := connections.AcceptRequest(ctx, a.ID, b.ID); err != nil {
		t.Fatalf("accept a->b: %v", err)
	}
	if _, err := connections.SendRequest(ctx, a.ID, c.ID); err != nil {
		t.Fatalf("send a->c: %v", err)
	}

	suggestions, err := users.GetSuggestedConnections(ctx, a.ID, 10)
	if err != nil {
		t.Fatalf("suggestions: %v", err)
	}

	if containsUserID(suggestions, a.ID) {
		t.Error("suggestions must not include the user itself")
	}
	if containsUserID(suggestions, b.ID) {
		t.Error("suggestions must not include accepted partners")
	}
	if !containsUserID(suggestions, c.ID) {
		t.Error("pending partners may still be suggested")
	}
}

func TestGetSuggestedConnections_ReverseDirection(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	connections := NewConnectionService(db)
	ctx := context.Background()

	a := createTestUser(t, db, "Alice")
	b := createTestUser(t, db, "Bob")

	// accepted row where a is the receiver
	if _, err := connections.SendRequest(ctx, b.ID, a.ID); err != nil {
		t.Fatalf("send b->a: %v", err)
	}
	if _, err := connections.AcceptRequest(ctx, b.ID, a.ID); err != nil {
		t.Fatalf("accept b->a: %v", err)
	}

	suggestions, err := users.GetSuggestedConnections(ctx, a.ID, 10)
	if err != nil {
		t.Fatalf("suggestions: %v", err)
	}
	if containsUserID(suggestions, b.ID) {
		t.Error("accepted partner must be excluded regardless of direction")
	}
}

func profileUpdateHeadline(headline string) models.ProfileUpdate {
	return models.ProfileUpdate{Headline: &headline}
}
