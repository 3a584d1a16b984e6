package services

import (
	"testing"

	"fintrack/internal/testutil"
)

func TestCreateUser(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.CreateUser("Alice@Example.com", "password123", "Alice")
		testutil.AssertNoError(t, err)

		if user.ID == "" {
			t.Fatal("expected non-empty user ID")
		}
		if user.Email != "alice@example.com" {
			t.Errorf("expected lowercased email, got %s", user.Email)
		}
		if user.Password == "password123" {
			t.Error("password must be stored hashed")
		}
	})

	t.Run("duplicate_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("bob@example.com", "password123", "Bob")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateUser("BOB@example.com", "different", "Bob Again")
		testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
	})

	t.Run("missing_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("", "password123", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.CreateUser("carol@example.com", "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestVerifyPassword(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewUserService(db)

	user, err := svc.CreateUser("dave@example.com", "correct horse", "Dave")
	testutil.AssertNoError(t, err)

	if !svc.VerifyPassword(user, "correct horse") {
		t.Error("expected correct password to verify")
	}
	if svc.VerifyPassword(user, "battery staple") {
		t.Error("expected wrong password to fail")
	}
}

func TestGetUserByEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewUserService(db)

	created, err := svc.CreateUser("erin@example.com", "password123", "Erin")
	testutil.AssertNoError(t, err)

	user, err := svc.GetUserByEmail("ERIN@example.com")
	testutil.AssertNoError(t, err)
	if user.ID != created.ID {
		t.Errorf("expected user %s, got %s", created.ID, user.ID)
	}

	_, err = svc.GetUserByEmail("nobody@example.com")
	testutil.AssertAppError(t, err, "USER_NOT_FOUND")
}

func TestRefreshTokenHash(t *testing.T) {
	t.Run("store_and_get", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.CreateUser("ivy@example.com", "password123", "Ivy")
		testutil.AssertNoError(t, err)

		hash, err := svc.GetRefreshTokenHash(user.ID)
		testutil.AssertNoError(t, err)
		if hash != "" {
			t.Errorf("expected empty hash before first login, got %q", hash)
		}

		err = svc.StoreRefreshTokenHash(user.ID, "aaaa1111")
		testutil.AssertNoError(t, err)

		hash, err = svc.GetRefreshTokenHash(user.ID)
		testutil.AssertNoError(t, err)
		if hash != "aaaa1111" {
			t.Errorf("expected stored hash, got %q", hash)
		}

		// A newer hash overwrites the previous one
		err = svc.StoreRefreshTokenHash(user.ID, "bbbb2222")
		testutil.AssertNoError(t, err)
		hash, err = svc.GetRefreshTokenHash(user.ID)
		testutil.AssertNoError(t, err)
		if hash != "bbbb2222" {
			t.Errorf("expected rotated hash, got %q", hash)
		}
	})

	t.Run("unknown_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		err := svc.StoreRefreshTokenHash("0198f1a2-0000-7000-8000-000000000000", "cccc3333")
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")

		_, err = svc.GetRefreshTokenHash("0198f1a2-0000-7000-8000-000000000000")
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}

func TestUpdateProfile(t *testing.T) {
	t.Run("rename", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.CreateUser("frank@example.com", "password123", "Frank")
		testutil.AssertNoError(t, err)

		updated, err := svc.UpdateProfile(user.ID, "Franklin", "")
		testutil.AssertNoError(t, err)
		if updated.Name != "Franklin" {
			t.Errorf("expected name Franklin, got %s", updated.Name)
		}
	})

	t.Run("email_taken", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("grace@example.com", "password123", "Grace")
		testutil.AssertNoError(t, err)
		user, err := svc.CreateUser("heidi@example.com", "password123", "Heidi")
		testutil.AssertNoError(t, err)

		_, err = svc.UpdateProfile(user.ID, "", "grace@example.com")
		testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
	})

	t.Run("unknown_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.UpdateProfile("0198f1a2-0000-7000-8000-000000000000", "Nobody", "")
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}
