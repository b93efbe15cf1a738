package gamification

// Rule kinds.
const (
	KindAchievement = "achievement"
	KindBadge       = "badge"
)

// Stats are the aggregate activity counts rules are evaluated over.
type Stats struct {
	Recipes     int64
	Posts       int64
	Comments    int64
	CookRecords int64
}

// Rule pairs a catalog entry with the predicate that earns it. New
// rules only need an entry here; the grant primitives are untouched.
type Rule struct {
	Kind string
	Name string
	Met  func(Stats) bool
}

// Catalog entry names referenced by the default rules. The seed step
// inserts the matching catalog rows.
const (
	AchievementFirstPost         = "First Post"
	AchievementProlificCommenter = "Prolific Commenter"
	BadgeMasterChef              = "Master Chef"
	BadgeKitchenRegular          = "Kitchen Regular"
)

// DefaultRules returns the built-in rule set.
func DefaultRules() []Rule {
	return []Rule{
		{
			Kind: KindAchievement,
			Name: AchievementFirstPost,
			// Threshold, not exact equality: the grant is idempotent,
			// so this still fires after a bulk import jumps the count
			// past one.
			Met: func(s Stats) bool { return s.Recipes+s.Posts >= 1 },
		},
		{
			Kind: KindAchievement,
			Name: AchievementProlificCommenter,
			Met:  func(s Stats) bool { return s.Comments >= 10 },
		},
		{
			Kind: KindBadge,
			Name: BadgeMasterChef,
			Met:  func(s Stats) bool { return s.Recipes >= 10 },
		},
		{
			Kind: KindBadge,
			Name: BadgeKitchenRegular,
			Met:  func(s Stats) bool { return s.CookRecords >= 5 },
		},
	}
}
