package repositories

import (
	"testing"

	"github.com/xgyuan/cookshare/backend/internal/models"
)

func TestFollowRepository(t *testing.T) {
	t.Run("follow then query both directions", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewPostgresFollowRepository(db)
		alice := createTestUser(t, db, "alice")
		bob := createTestUser(t, db, "bob")

		if err := repo.CreateFollow(&models.Follow{FollowerID: alice.ID, FollowedID: bob.ID}); err != nil {
			t.Fatalf("create follow: %v", err)
		}

		following, err := repo.IsFollowing(alice.ID, bob.ID)
		if err != nil || !following {
			t.Fatalf("IsFollowing = %v, %v; want true", following, err)
		}
		followedBy, err := repo.IsFollowedBy(bob.ID, alice.ID)
		if err != nil || !followedBy {
			t.Fatalf("IsFollowedBy = %v, %v; want true", followedBy, err)
		}
		reverse, err := repo.IsFollowing(bob.ID, alice.ID)
		if err != nil || reverse {
			t.Fatalf("reverse IsFollowing = %v, %v; want false", reverse, err)
		}
	})

	t.Run("unfollow without an edge reports not found", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewPostgresFollowRepository(db)
		alice := createTestUser(t, db, "alice")
		bob := createTestUser(t, db, "bob")

		if err := repo.DeleteFollow(alice.ID, bob.ID); err == nil {
			t.Fatal("DeleteFollow on missing edge should error")
		}
	})

	t.Run("follower and following lists and counts", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewPostgresFollowRepository(db)
		alice := createTestUser(t, db, "alice")
		bob := createTestUser(t, db, "bob")
		carol := createTestUser(t, db, "carol")

		repo.CreateFollow(&models.Follow{FollowerID: alice.ID, FollowedID: carol.ID})
		repo.CreateFollow(&models.Follow{FollowerID: bob.ID, FollowedID: carol.ID})
		repo.CreateFollow(&models.Follow{FollowerID: carol.ID, FollowedID: alice.ID})

		followers, err := repo.GetFollowers(carol.ID)
		if err != nil {
			t.Fatalf("GetFollowers: %v", err)
		}
		if len(followers) != 2 {
			t.Errorf("followers = %d, want 2", len(followers))
		}

		following, err := repo.GetFollowing(carol.ID)
		if err != nil {
			t.Fatalf("GetFollowing: %v", err)
		}
		if len(following) != 1 || following[0].ID != alice.ID {
			t.Errorf("following = %v, want just alice", following)
		}

		if n, _ := repo.GetFollowersCount(carol.ID); n != 2 {
			t.Errorf("followers count = %d, want 2", n)
		}
		if n, _ := repo.GetFollowingCount(carol.ID); n != 1 {
			t.Errorf("following count = %d, want 1", n)
		}
	})
}
