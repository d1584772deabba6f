package auth

import (
	"context"

	"github.com/driveaudit/driveaudit/internal/types"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// GetDriveService creates a Drive API service from credentials
func (m *Manager) GetDriveService(ctx context.Context, creds *types.Credentials) (*drive.Service, error) {
	client := m.GetHTTPClient(ctx, creds)
	return drive.NewService(ctx, option.WithHTTPClient(client))
}

// GetSheetsService creates a Sheets API service from credentials
func (m *Manager) GetSheetsService(ctx context.Context, creds *types.Credentials) (*sheets.Service, error) {
	client := m.GetHTTPClient(ctx, creds)
	return sheets.NewService(ctx, option.WithHTTPClient(client))
}
