package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/srimandev/taskmate/internal/models"
	"gorm.io/gorm"
)

func newTestRepositories(t *testing.T) (*Repositories, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "taskmate-repo-test.db")
	database := openSQLiteForTest(t, databasePath)
	return NewRepositories(database), database
}

func seedUser(t *testing.T, repos *Repositories, username string) models.User {
	t.Helper()

	user := models.User{
		Username:       username,
		Email:          username + "@example.com",
		PasswordHash:   "x",
		FriendRequests: []uint{},
		CreatedAt:      time.Now().UTC(),
	}
	if err := repos.Users.Create(&user); err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

func TestUserEmailUniquenessIsEnforcedByTheStore(t *testing.T) {
	repos, _ := newTestRepositories(t)
	seedUser(t, repos, "alice")

	duplicate := models.User{
		Username:       "impostor",
		Email:          "alice@example.com",
		PasswordHash:   "y",
		FriendRequests: []uint{},
		CreatedAt:      time.Now().UTC(),
	}
	if err := repos.Users.Create(&duplicate); err == nil {
		t.Fatal("expected unique email constraint violation")
	}
}

func TestExistsByNormalizedEmailIgnoresCaseAndSpacing(t *testing.T) {
	repos, database := newTestRepositories(t)
	user := seedUser(t, repos, "alice")

	// Simulate a record stored before normalization was applied at the edge.
	if err := database.Model(&models.User{}).Where("id = ?", user.ID).Update("email", "  Alice@Example.com ").Error; err != nil {
		t.Fatalf("denormalize email: %v", err)
	}

	exists, err := repos.Users.ExistsByNormalizedEmail("alice@example.com")
	if err != nil {
		t.Fatalf("exists check: %v", err)
	}
	if !exists {
		t.Fatal("expected normalized lookup to match a denormalized record")
	}
}

func TestListWithoutFriendExcludesCallerAndLinkedUsers(t *testing.T) {
	repos, _ := newTestRepositories(t)
	alice := seedUser(t, repos, "alice")
	bob := seedUser(t, repos, "bob")
	carol := seedUser(t, repos, "carol")

	alice.FriendID = &bob.ID
	bob.FriendID = &alice.ID
	if err := repos.Users.SavePair(&alice, &bob); err != nil {
		t.Fatalf("link pair: %v", err)
	}

	candidates, err := repos.Users.ListWithoutFriend(carol.ID)
	if err != nil {
		t.Fatalf("list without friend: %v", err)
	}
	if len(candidates) != 0 {
		t.Fatalf("expected no candidates, got %v", candidates)
	}

	dave := seedUser(t, repos, "dave")
	candidates, err = repos.Users.ListWithoutFriend(carol.ID)
	if err != nil {
		t.Fatalf("list without friend: %v", err)
	}
	if len(candidates) != 1 || candidates[0].ID != dave.ID {
		t.Fatalf("expected only dave, got %v", candidates)
	}
}

func TestSavePairPersistsBothRecords(t *testing.T) {
	repos, _ := newTestRepositories(t)
	alice := seedUser(t, repos, "alice")
	bob := seedUser(t, repos, "bob")

	alice.FriendID = &bob.ID
	bob.FriendID = &alice.ID
	if err := repos.Users.SavePair(&alice, &bob); err != nil {
		t.Fatalf("save pair: %v", err)
	}

	reloadedAlice, err := repos.Users.FindByID(alice.ID)
	if err != nil {
		t.Fatalf("reload alice: %v", err)
	}
	reloadedBob, err := repos.Users.FindByID(bob.ID)
	if err != nil {
		t.Fatalf("reload bob: %v", err)
	}
	if reloadedAlice.FriendID == nil || *reloadedAlice.FriendID != bob.ID {
		t.Fatalf("expected alice linked, got %v", reloadedAlice.FriendID)
	}
	if reloadedBob.FriendID == nil || *reloadedBob.FriendID != alice.ID {
		t.Fatalf("expected bob linked, got %v", reloadedBob.FriendID)
	}
}

func TestUpdateDeviceTokenOverwrites(t *testing.T) {
	repos, _ := newTestRepositories(t)
	user := seedUser(t, repos, "alice")

	if err := repos.Users.UpdateDeviceToken(user.ID, "first-token"); err != nil {
		t.Fatalf("first update: %v", err)
	}
	if err := repos.Users.UpdateDeviceToken(user.ID, "second-token"); err != nil {
		t.Fatalf("second update: %v", err)
	}

	reloaded, err := repos.Users.FindByID(user.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.DeviceToken != "second-token" {
		t.Fatalf("expected overwritten token, got %q", reloaded.DeviceToken)
	}
}
