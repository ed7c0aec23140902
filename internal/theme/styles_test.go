package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/arlon/internal/domain"
)

func TestStatusStyle(t *testing.T) {
	tests := []struct {
		status   domain.FileChangeStatus
		expected Color
	}{
		{domain.StatusAdded, ColorAdded},
		{domain.StatusDeleted, ColorDeleted},
		{domain.StatusModified, ColorModified},
		{domain.StatusRenamed, ColorMoved},
		{domain.StatusCopied, ColorMoved},
		{domain.StatusTypechange, ColorOther},
		{domain.StatusConflicted, ColorOther},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusStyle(tt.status.String()).GetForeground())
		})
	}
}

func TestTableStyles(t *testing.T) {
	assert.Equal(t, ColorHash, HashStyle.GetForeground())
	assert.Equal(t, ColorMuted, MutedStyle.GetForeground())
	assert.Equal(t, ColorSecondary, BranchStyle.GetForeground())
	assert.True(t, TitleStyle.GetBold())
}
