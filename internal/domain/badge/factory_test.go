package badge

import (
	"testing"

	"github.com/homequest/backend/internal/entity"
	"github.com/stretchr/testify/require"
)

func TestNewDefinitionFromConfig(t *testing.T) {
	def, err := NewDefinition(map[string]any{
		"type":     "streak",
		"id":       "streak_5",
		"grade":    "rare",
		"category": "streak",
		"days":     5,
	})
	require.NoError(t, err)
	require.Equal(t, "streak_5", def.ID())
	require.Equal(t, entity.GradeRare, def.Grade())
	require.Equal(t, entity.CategoryStreak, def.Category())
	require.False(t, def.Repeatable())

	require.False(t, def.Check(Context{Streak: 4}))
	require.True(t, def.Check(Context{Streak: 5}))
}

func TestNewDefinitionRejectsBadConfig(t *testing.T) {
	testcases := []struct {
		name string
		data map[string]any
	}{
		{name: "missing type", data: map[string]any{"id": "x"}},
		{name: "unknown type", data: map[string]any{"type": "nope", "id": "x"}},
		{
			name: "missing id",
			data: map[string]any{"type": "all_clear", "grade": "common", "category": "daily"},
		},
		{
			name: "invalid grade",
			data: map[string]any{"type": "all_clear", "id": "x", "grade": "mythic", "category": "daily"},
		},
		{
			name: "invalid category",
			data: map[string]any{"type": "all_clear", "id": "x", "grade": "common", "category": "hourly"},
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewDefinition(tc.data)
			require.Error(t, err)
		})
	}
}

func TestNewCatalogRejectsDuplicatedID(t *testing.T) {
	entry := map[string]any{
		"type": "all_clear", "id": "dup", "grade": "common", "category": "daily",
	}

	_, err := NewCatalog([]map[string]any{entry, entry})
	require.Error(t, err)
}

func TestNewCatalogKeepsOrder(t *testing.T) {
	catalog, err := NewCatalog([]map[string]any{
		{"type": "all_clear", "id": "b", "grade": "common", "category": "daily", "repeatable": true},
		{"type": "first_tasks", "id": "a", "grade": "common", "category": "daily", "count": 1},
	})
	require.NoError(t, err)
	require.Len(t, catalog, 2)
	require.Equal(t, "b", catalog[0].ID())
	require.Equal(t, "a", catalog[1].ID())
}

func TestDefaultCatalogIsWellFormed(t *testing.T) {
	seen := map[string]struct{}{}
	for _, def := range DefaultCatalog() {
		require.NotEmpty(t, def.ID())
		require.NotContains(t, seen, def.ID())
		seen[def.ID()] = struct{}{}

		require.NotEqual(t, -1, entity.GradeRank(def.Grade()), "badge %s", def.ID())
	}
}

func TestDescribeExportsParameters(t *testing.T) {
	def, err := NewDefinition(map[string]any{
		"type": "total_completed", "id": "tasks_42",
		"grade": "rare", "category": "milestone", "count": 42,
	})
	require.NoError(t, err)

	m := Describe(def)
	require.Equal(t, "tasks_42", m["id"])
	require.Equal(t, "rare", m["grade"])
	require.Equal(t, 42, m["count"])
}
