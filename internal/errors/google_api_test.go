package errors

import (
	goerrors "errors"
	"testing"

	"github.com/driveaudit/driveaudit/internal/logging"
	"github.com/driveaudit/driveaudit/internal/types"
	"github.com/driveaudit/driveaudit/internal/utils"
	"google.golang.org/api/googleapi"
)

func testRequestContext() *types.RequestContext {
	return &types.RequestContext{
		DriveID:     "drive123",
		RequestType: types.RequestTypeListOrSearch,
		TraceID:     "trace-abc",
	}
}

func classify(t *testing.T, err error) types.CLIError {
	t.Helper()
	result := ClassifyGoogleAPIError("drive", err, testRequestContext(), logging.NewNoOpLogger())
	appErr, ok := result.(*utils.AppError)
	if !ok {
		t.Fatalf("classified error is %T, want *utils.AppError", result)
	}
	return appErr.CLIError
}

func TestClassifyGoogleAPIError_StatusCodes(t *testing.T) {
	tests := []struct {
		name          string
		apiErr        *googleapi.Error
		wantCode      string
		wantRetryable bool
	}{
		{"bad request", &googleapi.Error{Code: 400}, utils.ErrCodeInvalidArgument, false},
		{"unauthorized", &googleapi.Error{Code: 401}, utils.ErrCodeAuthExpired, false},
		{"forbidden", &googleapi.Error{Code: 403}, utils.ErrCodePermissionDenied, false},
		{"not found", &googleapi.Error{Code: 404}, utils.ErrCodeFileNotFound, false},
		{"too many requests", &googleapi.Error{Code: 429}, utils.ErrCodeRateLimited, true},
		{"internal error", &googleapi.Error{Code: 500}, utils.ErrCodeNetworkError, true},
		{"service unavailable", &googleapi.Error{Code: 503}, utils.ErrCodeNetworkError, true},
		{"teapot", &googleapi.Error{Code: 418}, utils.ErrCodeUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cliErr := classify(t, tt.apiErr)
			if cliErr.Code != tt.wantCode {
				t.Errorf("Code = %s, want %s", cliErr.Code, tt.wantCode)
			}
			if cliErr.Retryable != tt.wantRetryable {
				t.Errorf("Retryable = %v, want %v", cliErr.Retryable, tt.wantRetryable)
			}
			if cliErr.HTTPStatus != tt.apiErr.Code {
				t.Errorf("HTTPStatus = %d, want %d", cliErr.HTTPStatus, tt.apiErr.Code)
			}
		})
	}
}

func TestClassifyGoogleAPIError_ForbiddenReasons(t *testing.T) {
	tests := []struct {
		reason   string
		wantCode string
	}{
		{"storageQuotaExceeded", utils.ErrCodeQuotaExceeded},
		{"userRateLimitExceeded", utils.ErrCodeRateLimited},
		{"rateLimitExceeded", utils.ErrCodeRateLimited},
		{"dailyLimitExceeded", utils.ErrCodeRateLimited},
		{"domainPolicy", utils.ErrCodePolicyViolation},
		{"insufficientPermissions", utils.ErrCodeScopeInsufficient},
		{"somethingElse", utils.ErrCodePermissionDenied},
	}

	for _, tt := range tests {
		t.Run(tt.reason, func(t *testing.T) {
			apiErr := &googleapi.Error{
				Code:   403,
				Errors: []googleapi.ErrorItem{{Reason: tt.reason}},
			}
			cliErr := classify(t, apiErr)
			if cliErr.Code != tt.wantCode {
				t.Errorf("Code = %s, want %s", cliErr.Code, tt.wantCode)
			}
			if cliErr.DriveReason != tt.reason {
				t.Errorf("DriveReason = %s, want %s", cliErr.DriveReason, tt.reason)
			}
		})
	}
}

func TestClassifyGoogleAPIError_NonAPIError(t *testing.T) {
	cliErr := classify(t, goerrors.New("dial tcp: connection refused"))

	if cliErr.Code != utils.ErrCodeNetworkError {
		t.Errorf("Code = %s, want %s", cliErr.Code, utils.ErrCodeNetworkError)
	}
	if !cliErr.Retryable {
		t.Error("network-level failures should be retryable")
	}
	if cliErr.Context["traceId"] != "trace-abc" {
		t.Errorf("Context[traceId] = %v", cliErr.Context["traceId"])
	}
}

func TestClassifyGoogleAPIError_NotFoundContext(t *testing.T) {
	cliErr := classify(t, &googleapi.Error{Code: 404, Message: "File not found"})

	if cliErr.Context["driveId"] != "drive123" {
		t.Errorf("Context[driveId] = %v", cliErr.Context["driveId"])
	}
	if cliErr.Context["suggestedAction"] == nil {
		t.Error("not-found errors should carry a suggested action")
	}
}
