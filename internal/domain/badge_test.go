package domain

import (
	"context"
	"testing"
	"time"

	"github.com/homequest/backend/internal/domain/badge"
	"github.com/homequest/backend/internal/entity"
	"github.com/homequest/backend/internal/model"
	"github.com/homequest/backend/internal/repository"
	"github.com/homequest/backend/pkg/dateutil"
	"github.com/homequest/backend/pkg/testutil"
	"github.com/homequest/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func insertSummary(
	t *testing.T, ctx context.Context,
	userID string, date dateutil.Date, total, completed int,
) {
	t.Helper()
	err := repository.NewDaySummaryRepository().Upsert(ctx, &entity.DayTaskSummary{
		UserID:    userID,
		Date:      date,
		Total:     total,
		Completed: completed,
	})
	require.NoError(t, err)
}

func newBadgeDomain() *badgeDomain {
	return NewBadgeDomain(
		repository.NewUserRepository(),
		repository.NewDaySummaryRepository(),
		repository.NewEarnedBadgeRepository(),
		badge.NewEngine(badge.DefaultCatalog()),
	)
}

func Test_badgeDomain_RefreshAndGetMyBadges(t *testing.T) {
	ctx := testutil.MockContextWithUserID("user1")
	testutil.CreateFixtureDb(ctx)

	today := dateutil.Today()
	insertSummary(t, ctx, "user1", today.AddDays(-2), 2, 2)
	insertSummary(t, ctx, "user1", today.AddDays(-1), 2, 2)
	insertSummary(t, ctx, "user1", today, 2, 2)

	badgeDomain := newBadgeDomain()
	resp, err := badgeDomain.RefreshBadges(ctx, &model.RefreshBadgesRequest{})
	require.NoError(t, err)
	require.NotEmpty(t, resp.EarnedBadges)
	require.Equal(t, resp.EarnedBadges, resp.NewBadges)

	earnedIDs := map[string]int{}
	for _, b := range resp.EarnedBadges {
		earnedIDs[b.BadgeID]++
	}
	require.Equal(t, 1, earnedIDs["first_step"])
	require.Equal(t, 1, earnedIDs["streak_3"])
	require.Equal(t, 3, earnedIDs["all_clear"])

	// The stored set matches what the refresh returned.
	mine, err := badgeDomain.GetMyBadges(ctx, &model.GetMyBadgesRequest{})
	require.NoError(t, err)
	require.Len(t, mine.EarnedBadges, len(resp.EarnedBadges))

	// A second refresh over unchanged history reports nothing new.
	resp, err = badgeDomain.RefreshBadges(ctx, &model.RefreshBadgesRequest{})
	require.NoError(t, err)
	require.Empty(t, resp.NewBadges)
	require.Len(t, resp.EarnedBadges, len(mine.EarnedBadges))
}

func Test_badgeDomain_RefreshWithSibling(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	today := dateutil.Today()
	insertSummary(t, ctx, "user1", today, 2, 2)
	insertSummary(t, ctx, "user2", today, 3, 3)

	badgeDomain := newBadgeDomain()
	for _, userID := range []string{"user1", "user2"} {
		resp, err := badgeDomain.RefreshBadges(
			xcontext.WithRequestUserID(ctx, userID), &model.RefreshBadgesRequest{})
		require.NoError(t, err)

		found := false
		for _, b := range resp.EarnedBadges {
			if b.BadgeID == "sibling_harmony" {
				found = true
			}
		}
		require.True(t, found, "user %s should earn sibling_harmony", userID)
	}

	// user3 has no sibling and never earns the pair badge.
	insertSummary(t, ctx, "user3", today, 2, 2)
	resp, err := badgeDomain.RefreshBadges(
		xcontext.WithRequestUserID(ctx, "user3"), &model.RefreshBadgesRequest{})
	require.NoError(t, err)
	for _, b := range resp.EarnedBadges {
		require.NotEqual(t, "sibling_harmony", b.BadgeID)
	}
}

func Test_badgeDomain_RefreshRejectsMalformedHistory(t *testing.T) {
	ctx := testutil.MockContextWithUserID("user1")
	testutil.CreateFixtureDb(ctx)

	insertSummary(t, ctx, "user1", dateutil.Today(), 1, 2)

	_, err := newBadgeDomain().RefreshBadges(ctx, &model.RefreshBadgesRequest{})
	require.Error(t, err)
}

func Test_badgeDomain_RefreshUnknownUser(t *testing.T) {
	ctx := testutil.MockContextWithUserID("ghost")
	testutil.CreateFixtureDb(ctx)

	_, err := newBadgeDomain().RefreshBadges(ctx, &model.RefreshBadgesRequest{})
	require.Error(t, err)
}

func Test_badgeDomain_EarnedAtForPastAndToday(t *testing.T) {
	ctx := testutil.MockContextWithUserID("user1")
	testutil.CreateFixtureDb(ctx)

	today := dateutil.Today()
	yesterday := today.Prev()
	insertSummary(t, ctx, "user1", yesterday, 1, 1)
	insertSummary(t, ctx, "user1", today, 1, 1)

	before := time.Now()
	resp, err := newBadgeDomain().RefreshBadges(ctx, &model.RefreshBadgesRequest{})
	require.NoError(t, err)

	for _, b := range resp.EarnedBadges {
		earnedAt, err := time.Parse(time.RFC3339, b.EarnedAt)
		require.NoError(t, err)

		switch b.EarnedDate {
		case today.String():
			require.False(t, earnedAt.Before(before.Truncate(time.Second)))
		case yesterday.String():
			require.True(t, earnedAt.Equal(yesterday.Time(earnedAt.Location())))
		}
	}
}

func Test_badgeDomain_GetBadgeCatalogHidesUnearnedHidden(t *testing.T) {
	ctx := testutil.MockContextWithUserID("user1")
	testutil.CreateFixtureDb(ctx)

	badgeDomain := newBadgeDomain()
	resp, err := badgeDomain.GetBadgeCatalog(ctx, &model.GetBadgeCatalogRequest{})
	require.NoError(t, err)

	for _, b := range resp.Badges {
		require.NotEqual(t, "sibling_harmony", b["id"])
		require.NotEqual(t, "comeback", b["id"])
	}

	// Earn all_clear and sibling badges, then sibling_harmony shows up.
	today := dateutil.Today()
	insertSummary(t, ctx, "user1", today, 1, 1)
	insertSummary(t, ctx, "user2", today, 1, 1)
	_, err = badgeDomain.RefreshBadges(ctx, &model.RefreshBadgesRequest{})
	require.NoError(t, err)

	resp, err = badgeDomain.GetBadgeCatalog(ctx, &model.GetBadgeCatalogRequest{})
	require.NoError(t, err)

	found := false
	for _, b := range resp.Badges {
		if b["id"] == "sibling_harmony" {
			found = true
		}
	}
	require.True(t, found)
}

func Test_badgeDomain_RefreshWithReducedCatalog(t *testing.T) {
	ctx := testutil.MockContextWithUserID("user1")
	testutil.CreateFixtureDb(ctx)

	today := dateutil.Today()
	insertSummary(t, ctx, "user1", today.AddDays(-1), 3, 1)
	insertSummary(t, ctx, "user1", today, 3, 2)

	var checked int
	mock := &testutil.MockBadge{
		IDValue:         "any_progress",
		RepeatableValue: true,
		CheckFunc: func(bctx badge.Context) bool {
			checked++
			return bctx.TodayCompleted > 0
		},
	}

	badgeDomain := NewBadgeDomain(
		repository.NewUserRepository(),
		repository.NewDaySummaryRepository(),
		repository.NewEarnedBadgeRepository(),
		badge.NewEngine([]badge.Definition{mock}),
	)

	resp, err := badgeDomain.RefreshBadges(ctx, &model.RefreshBadgesRequest{})
	require.NoError(t, err)
	require.Equal(t, 2, checked)
	require.Len(t, resp.EarnedBadges, 2)
	for _, b := range resp.EarnedBadges {
		require.Equal(t, "any_progress", b.BadgeID)
	}
}
