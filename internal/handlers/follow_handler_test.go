package handlers

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/xgyuan/cookshare/backend/internal/models"
	"github.com/xgyuan/cookshare/backend/internal/repositories"
)

func TestFollowUser(t *testing.T) {
	db := newTestDB(t)
	e := newTestEcho()
	h := NewFollowHandler(
		repositories.NewPostgresFollowRepository(db),
		repositories.NewPostgresUserRepository(db),
		repositories.NewPostgresNotificationRepository(db),
	)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	follow := func(t *testing.T, from, to *models.User) int {
		t.Helper()
		c, rec := newTestContext(e, http.MethodPost, "/users/:id/follow", "", from)
		c.SetParamNames("id")
		c.SetParamValues(strconv.Itoa(int(to.ID)))
		if err := h.FollowUser(c); err != nil {
			t.Fatalf("FollowUser: %v", err)
		}
		return rec.Code
	}

	t.Run("creates a single edge and notifies", func(t *testing.T) {
		if code := follow(t, alice, bob); code != http.StatusOK {
			t.Fatalf("expected 200, got %d", code)
		}

		var edges int64
		db.Model(&models.Follow{}).
			Where("follower_id = ? AND followed_id = ?", alice.ID, bob.ID).
			Count(&edges)
		if edges != 1 {
			t.Fatalf("expected 1 follow edge, got %d", edges)
		}

		var notifs int64
		db.Model(&models.Notification{}).Where("user_id = ?", bob.ID).Count(&notifs)
		if notifs != 1 {
			t.Fatalf("expected 1 notification for bob, got %d", notifs)
		}
	})

	t.Run("repeat follow is an informational conflict", func(t *testing.T) {
		if code := follow(t, alice, bob); code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", code)
		}

		var edges int64
		db.Model(&models.Follow{}).
			Where("follower_id = ? AND followed_id = ?", alice.ID, bob.ID).
			Count(&edges)
		if edges != 1 {
			t.Fatalf("expected 1 follow edge after repeat, got %d", edges)
		}

		var notifs int64
		db.Model(&models.Notification{}).Where("user_id = ?", bob.ID).Count(&notifs)
		if notifs != 1 {
			t.Fatalf("repeat follow must not notify again, got %d", notifs)
		}
	})

	t.Run("self-follow is rejected", func(t *testing.T) {
		c, _ := newTestContext(e, http.MethodPost, "/users/:id/follow", "", alice)
		c.SetParamNames("id")
		c.SetParamValues(strconv.Itoa(int(alice.ID)))
		err := h.FollowUser(c)
		assertHTTPError(t, err, http.StatusBadRequest)
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		c, _ := newTestContext(e, http.MethodPost, "/users/:id/follow", "", alice)
		c.SetParamNames("id")
		c.SetParamValues("9999")
		err := h.FollowUser(c)
		assertHTTPError(t, err, http.StatusNotFound)
	})
}

func TestUnfollowUser(t *testing.T) {
	db := newTestDB(t)
	e := newTestEcho()
	h := NewFollowHandler(
		repositories.NewPostgresFollowRepository(db),
		repositories.NewPostgresUserRepository(db),
		repositories.NewPostgresNotificationRepository(db),
	)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	if err := db.Create(&models.Follow{FollowerID: alice.ID, FollowedID: bob.ID}).Error; err != nil {
		t.Fatalf("seed follow: %v", err)
	}

	unfollow := func(t *testing.T) int {
		t.Helper()
		c, rec := newTestContext(e, http.MethodDelete, "/users/:id/follow", "", alice)
		c.SetParamNames("id")
		c.SetParamValues(strconv.Itoa(int(bob.ID)))
		if err := h.UnfollowUser(c); err != nil {
			t.Fatalf("UnfollowUser: %v", err)
		}
		return rec.Code
	}

	if code := unfollow(t); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	var edges int64
	db.Model(&models.Follow{}).Where("follower_id = ?", alice.ID).Count(&edges)
	if edges != 0 {
		t.Fatalf("expected edge removed, got %d", edges)
	}

	// Second unfollow is a no-op conflict
	if code := unfollow(t); code != http.StatusConflict {
		t.Fatalf("expected 409 on repeat unfollow, got %d", code)
	}
}
