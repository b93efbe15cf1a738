package models

import "testing"

func TestAddExp(t *testing.T) {
	t.Run("level is exp/100 + 1 after any sequence", func(t *testing.T) {
		u := &User{Level: 1}
		amounts := []int{10, 45, 45, 120, 0, 79, 1}
		total := 0
		for _, a := range amounts {
			u.AddExp(a)
			total += a
			if u.Exp != total {
				t.Fatalf("exp = %d, want %d", u.Exp, total)
			}
			if want := total/100 + 1; u.Level != want {
				t.Fatalf("level = %d, want %d after %d exp", u.Level, want, total)
			}
		}
	})

	t.Run("negative amounts are ignored", func(t *testing.T) {
		u := &User{Exp: 50, Level: 1}
		u.AddExp(-10)
		if u.Exp != 50 {
			t.Fatalf("exp = %d, want 50", u.Exp)
		}
	})

	t.Run("level never decreases", func(t *testing.T) {
		// A stored level ahead of the exp-derived one stays put.
		u := &User{Exp: 0, Level: 5}
		u.AddExp(100)
		if u.Level != 5 {
			t.Fatalf("level = %d, want 5", u.Level)
		}
		u.AddExp(400) // 500 exp -> derived level 6
		if u.Level != 6 {
			t.Fatalf("level = %d, want 6", u.Level)
		}
	})

	t.Run("exact boundary", func(t *testing.T) {
		u := &User{Level: 1}
		u.AddExp(99)
		if u.Level != 1 {
			t.Fatalf("level = %d, want 1 at 99 exp", u.Level)
		}
		u.AddExp(1)
		if u.Level != 2 {
			t.Fatalf("level = %d, want 2 at 100 exp", u.Level)
		}
	})
}
