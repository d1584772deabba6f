package drives

import (
	"context"

	"github.com/driveaudit/driveaudit/internal/api"
	"github.com/driveaudit/driveaudit/internal/types"
	"google.golang.org/api/drive/v3"
)

// Manager handles shared-drive metadata
type Manager struct {
	client *api.Client
}

// NewManager creates a new drives manager
func NewManager(client *api.Client) *Manager {
	return &Manager{client: client}
}

// Get retrieves shared-drive metadata by ID
func (m *Manager) Get(ctx context.Context, reqCtx *types.RequestContext, driveID string) (*types.SharedDrive, error) {
	call := m.client.Drive().Drives.Get(driveID)

	result, err := api.ExecuteWithRetry(ctx, m.client, "drive", reqCtx, func() (*drive.Drive, error) {
		return call.Do()
	})
	if err != nil {
		return nil, err
	}

	return &types.SharedDrive{
		ID:          result.Id,
		Name:        result.Name,
		CreatedTime: result.CreatedTime,
	}, nil
}
