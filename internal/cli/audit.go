package cli

import (
	"context"
	"time"

	"github.com/driveaudit/driveaudit/internal/api"
	"github.com/driveaudit/driveaudit/internal/audit"
	"github.com/driveaudit/driveaudit/internal/auth"
	"github.com/driveaudit/driveaudit/internal/logging"
	"github.com/driveaudit/driveaudit/internal/utils"
	"github.com/spf13/cobra"
)

var auditCmd = &cobra.Command{
	Use:   "audit <credentials.json> <drive-id> <spreadsheet-id>",
	Short: "Audit a Shared Drive's file inventory into a spreadsheet",
	Long: `Audit recursively lists every file and folder in the Shared Drive,
resolves each item's folder path, and overwrites the target spreadsheet
with the resulting report.

The credentials file must be a service account key with access to both
the drive and the spreadsheet.`,
	Args: cobra.ExactArgs(3),
	RunE: runAudit,
}

var (
	auditListFolders bool
	auditListTrashed bool
	auditSheetOutput bool
	auditRootFolder  string
	auditPageSize    int
)

func init() {
	rootCmd.AddCommand(auditCmd)

	auditCmd.Flags().BoolVarP(&auditListFolders, "folders", "f", false, "List folders as well as files")
	auditCmd.Flags().BoolVarP(&auditListTrashed, "trashed", "t", false, "List trashed items")
	auditCmd.Flags().BoolVarP(&auditSheetOutput, "sheet", "s", false, "Output to a separate sheet tab named after the drive")
	auditCmd.Flags().StringVarP(&auditRootFolder, "root", "r", "", "Root folder ID to scope the report to")
	auditCmd.Flags().IntVar(&auditPageSize, "page-size", utils.DefaultPageSize, "Listing page size")
}

func runAudit(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	flags := GetGlobalFlags()
	credentialsFile, driveID, spreadsheetID := args[0], args[1], args[2]

	writer := NewOutputWriter(flags.OutputFormat, flags.Quiet, flags.Verbose)
	log := GetLogger()

	log.Info("Starting file audit on drive", logging.F("driveId", driveID))
	start := time.Now()

	client, err := getAPIClient(ctx, credentialsFile)
	if err != nil {
		return handleError(writer, "audit", err)
	}

	runner := audit.NewRunner(client)
	summary, err := runner.Run(ctx, audit.Options{
		DriveID:        driveID,
		SpreadsheetID:  spreadsheetID,
		IncludeFolders: auditListFolders,
		IncludeTrashed: auditListTrashed,
		SeparateSheet:  auditSheetOutput,
		RootFolderID:   auditRootFolder,
		PageSize:       auditPageSize,
	})
	if err != nil {
		return handleError(writer, "audit", err)
	}

	summary.ElapsedSecs = time.Since(start).Seconds()
	log.Info("File audit complete on drive",
		logging.F("driveId", driveID),
		logging.F("seconds", summary.ElapsedSecs),
	)

	return writer.WriteSuccess("audit", summary)
}

// getAPIClient builds an authenticated API client from a service account key
func getAPIClient(ctx context.Context, credentialsFile string) (*api.Client, error) {
	authMgr := auth.NewManager(GetLogger())

	creds, err := authMgr.LoadServiceAccount(ctx, credentialsFile, utils.AuditScopes)
	if err != nil {
		return nil, utils.NewAppError(utils.NewCLIError(utils.ErrCodeAuthRequired,
			"Failed to load service account credentials: "+err.Error()).Build())
	}

	driveService, err := authMgr.GetDriveService(ctx, creds)
	if err != nil {
		return nil, utils.NewAppError(utils.NewCLIError(utils.ErrCodeAuthRequired,
			"Failed to create Drive service: "+err.Error()).Build())
	}

	sheetsService, err := authMgr.GetSheetsService(ctx, creds)
	if err != nil {
		return nil, utils.NewAppError(utils.NewCLIError(utils.ErrCodeAuthRequired,
			"Failed to create Sheets service: "+err.Error()).Build())
	}

	return api.NewClient(driveService, sheetsService, utils.DefaultMaxRetries, utils.DefaultRetryDelayMs, GetLogger()), nil
}

// handleError writes the error envelope and propagates the error so the
// process exits with the taxonomy exit code. Log once, abort the run.
func handleError(writer *OutputWriter, command string, err error) error {
	if appErr, ok := err.(*utils.AppError); ok {
		writer.WriteError(command, appErr.CLIError)
		return appErr
	}
	cliErr := utils.NewCLIError(utils.ErrCodeUnknown, err.Error()).Build()
	writer.WriteError(command, cliErr)
	return utils.NewAppError(cliErr)
}
