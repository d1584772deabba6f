package errors

import (
	"github.com/driveaudit/driveaudit/internal/logging"
	"github.com/driveaudit/driveaudit/internal/types"
	"github.com/driveaudit/driveaudit/internal/utils"
	"google.golang.org/api/googleapi"
)

// ClassifyGoogleAPIError maps a googleapi.Error from the Drive or Sheets
// service to the tool's stable error taxonomy. The run aborts on whatever
// comes back; classification only decides the exit code and message.
func ClassifyGoogleAPIError(service string, err error, reqCtx *types.RequestContext, logger logging.Logger) error {
	apiErr, ok := err.(*googleapi.Error)
	if !ok {
		logger.Error("Non-API error",
			logging.F("error", err.Error()),
			logging.F("traceId", reqCtx.TraceID),
		)
		return utils.NewAppError(utils.NewCLIError(utils.ErrCodeNetworkError, err.Error()).
			WithRetryable(true).
			WithContext("traceId", reqCtx.TraceID).
			WithContext("service", service).
			Build())
	}

	var code string
	var retryable bool

	switch apiErr.Code {
	case 400:
		code = utils.ErrCodeInvalidArgument
	case 401:
		code = utils.ErrCodeAuthExpired
	case 403:
		code = utils.ErrCodePermissionDenied
		for _, e := range apiErr.Errors {
			switch e.Reason {
			case "storageQuotaExceeded":
				code = utils.ErrCodeQuotaExceeded
			case "userRateLimitExceeded", "rateLimitExceeded":
				code = utils.ErrCodeRateLimited
				retryable = true
			case "dailyLimitExceeded":
				code = utils.ErrCodeRateLimited
			case "domainPolicy":
				code = utils.ErrCodePolicyViolation
			case "insufficientPermissions":
				code = utils.ErrCodeScopeInsufficient
			}
		}
	case 404:
		code = utils.ErrCodeFileNotFound
	case 429:
		code = utils.ErrCodeRateLimited
		retryable = true
	case 500, 502, 503, 504:
		code = utils.ErrCodeNetworkError
		retryable = true
	default:
		code = utils.ErrCodeUnknown
		retryable = apiErr.Code >= 500
	}

	logger.Error("API error classified",
		logging.F("httpStatus", apiErr.Code),
		logging.F("errorCode", code),
		logging.F("retryable", retryable),
		logging.F("message", apiErr.Message),
		logging.F("traceId", reqCtx.TraceID),
		logging.F("service", service),
	)

	builder := utils.NewCLIError(code, apiErr.Message).
		WithHTTPStatus(apiErr.Code).
		WithRetryable(retryable).
		WithContext("traceId", reqCtx.TraceID).
		WithContext("requestType", string(reqCtx.RequestType)).
		WithContext("service", service)

	if len(apiErr.Errors) > 0 && service == "drive" {
		builder.WithDriveReason(apiErr.Errors[0].Reason)
	}

	switch code {
	case utils.ErrCodeAuthExpired:
		builder.WithContext("suggestedAction", "verify the service account key file is current")
	case utils.ErrCodeScopeInsufficient:
		builder.WithContext("suggestedAction", "grant the service account drive and spreadsheets scopes")
	case utils.ErrCodeFileNotFound:
		if reqCtx.DriveID != "" {
			builder.WithContext("driveId", reqCtx.DriveID)
		}
		builder.WithContext("suggestedAction", "verify the drive and spreadsheet IDs are correct and shared with the service account")
	case utils.ErrCodeRateLimited:
		builder.WithContext("suggestedAction", "rate limit exceeded, retrying with backoff")
	}

	if apiErr.Code >= 500 && apiErr.Code <= 504 {
		builder.WithContext("serverError", true).
			WithContext("suggestedAction", "temporary server error, retrying")
	}

	return utils.NewAppError(builder.Build())
}
