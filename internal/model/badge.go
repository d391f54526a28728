package model

type EarnedBadge struct {
	BadgeID    string `json:"badge_id"`
	UserID     string `json:"user_id"`
	Grade      string `json:"grade"`
	Category   string `json:"category"`
	EarnedAt   string `json:"earned_at"`
	EarnedDate string `json:"earned_date"`
}

type RefreshBadgesRequest struct{}

type RefreshBadgesResponse struct {
	// NewBadges lists awards that did not exist before this recompute, so
	// clients can pop a congratulation for each.
	NewBadges []EarnedBadge `json:"new_badges"`

	EarnedBadges []EarnedBadge `json:"earned_badges"`
}

type GetMyBadgesRequest struct{}

type GetMyBadgesResponse struct {
	EarnedBadges []EarnedBadge `json:"earned_badges"`
}

type GetBadgeCatalogRequest struct{}

type GetBadgeCatalogResponse struct {
	// Badges holds one descriptor map per visible catalog entry, ordered by
	// grade then id for display.
	Badges []map[string]any `json:"badges"`
}
