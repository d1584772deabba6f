package utils

import "testing"

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{ErrCodeAuthRequired, ExitAuthRequired},
		{ErrCodeAuthExpired, ExitAuthExpired},
		{ErrCodeScopeInsufficient, ExitScopeInsufficient},
		{ErrCodeFileNotFound, ExitFileNotFound},
		{ErrCodePermissionDenied, ExitPermissionDenied},
		{ErrCodeQuotaExceeded, ExitQuotaExceeded},
		{ErrCodeNetworkError, ExitNetworkError},
		{ErrCodeTimeout, ExitTimeout},
		{ErrCodeRateLimited, ExitRateLimited},
		{ErrCodeInvalidArgument, ExitInvalidArgument},
		{ErrCodePolicyViolation, ExitPolicyViolation},
		{ErrCodeInternalError, ExitUnknown},
		{ErrCodeUnknown, ExitUnknown},
		{"SOMETHING_ELSE", ExitUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := GetExitCode(tt.code); got != tt.want {
				t.Errorf("GetExitCode(%s) = %d, want %d", tt.code, got, tt.want)
			}
		})
	}
}

func TestCLIErrorBuilder(t *testing.T) {
	err := NewCLIError(ErrCodeRateLimited, "Rate limit exceeded").
		WithHTTPStatus(429).
		WithDriveReason("rateLimitExceeded").
		WithRetryable(true).
		WithContext("driveId", "drive123").
		WithContext("suggested_action", "Retry with backoff").
		Build()

	if err.Code != ErrCodeRateLimited {
		t.Errorf("Code = %s", err.Code)
	}
	if err.HTTPStatus != 429 {
		t.Errorf("HTTPStatus = %d", err.HTTPStatus)
	}
	if err.DriveReason != "rateLimitExceeded" {
		t.Errorf("DriveReason = %s", err.DriveReason)
	}
	if !err.Retryable {
		t.Error("Retryable = false")
	}
	if err.Context["driveId"] != "drive123" {
		t.Errorf("Context[driveId] = %v", err.Context["driveId"])
	}
}

func TestAppError(t *testing.T) {
	appErr := NewAppError(NewCLIError(ErrCodeFileNotFound, "Drive not found").Build())

	want := "FILE_NOT_FOUND: Drive not found"
	if appErr.Error() != want {
		t.Errorf("Error() = %q, want %q", appErr.Error(), want)
	}
}
