package tool_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-api/internal/application/ordering"
	"portfolio-api/internal/application/ordering/orderingtest"
	"portfolio-api/internal/application/service"
	toolUC "portfolio-api/internal/application/usecase/tool"
	"portfolio-api/internal/domain/tool"
	"portfolio-api/pkg/logger"
)

func newToolUC() *toolUC.ToolUseCase {
	repo := orderingtest.NewRepo[*tool.Tool](func(t *tool.Tool) string { return t.Name })
	return toolUC.NewToolUseCase(repo, ordering.NewLocks(), service.NopInvalidator{}, logger.NewNop())
}

func seedTools(t *testing.T, uc *toolUC.ToolUseCase, profileID uuid.UUID) {
	t.Helper()
	for i, in := range []toolUC.CreateToolInput{
		{Name: "Docker", Category: "devops", KnowledgeLevel: "advanced"},
		{Name: "Kubernetes", Category: "devops"},
		{Name: "Postman", Category: "testing", KnowledgeLevel: "expert"},
	} {
		in.ProfileID = profileID
		in.OrderIndex = i
		_, err := uc.CreateTool(context.Background(), in)
		require.NoError(t, err)
	}
}

func TestGroupToolsByCategory(t *testing.T) {
	uc := newToolUC()
	profileID := uuid.New()
	seedTools(t, uc, profileID)

	grouped, err := uc.GroupToolsByCategory(context.Background(), profileID)
	require.NoError(t, err)
	require.Len(t, grouped, 2)
	require.Len(t, grouped["devops"], 2)
	assert.Len(t, grouped["testing"], 1)
	// Display order survives inside each bucket.
	assert.Equal(t, "Docker", grouped["devops"][0].Name)
	assert.Equal(t, "Kubernetes", grouped["devops"][1].Name)
}

func TestToolStats(t *testing.T) {
	uc := newToolUC()
	profileID := uuid.New()
	seedTools(t, uc, profileID)

	stats, err := uc.Stats(context.Background(), profileID)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, map[string]int{"devops": 2, "testing": 1}, stats.ByCategory)

	empty, err := uc.Stats(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Total)
	assert.Empty(t, empty.ByCategory)
}
