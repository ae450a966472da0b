package resetpassword

import (
	"context"
	"net/http"
	"net/http/httptest"
	"passreset/internal/core/domain/user"
	service "passreset/internal/core/services/reset_password"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	s.input = &input
	return result, s.err
}

func TestResetPasswordHandler(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		serviceErr     error
		expectedStatus int
		expectedBody   string
		serviceCalled  bool
	}{
		{
			id:             "success",
			body:           `{"token": "test-token", "password": "newpassword123"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `"message":"Password has been reset"`,
			serviceCalled:  true,
		},
		{
			id:             "expired token",
			body:           `{"token": "test-token", "password": "newpassword123"}`,
			serviceErr:     user.ErrPasswordResetTokenExpired,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"Reset token has expired"`,
			serviceCalled:  true,
		},
		{
			id:             "invalid token",
			body:           `{"token": "not-a-real-token", "password": "newpassword123"}`,
			serviceErr:     user.ErrPasswordResetTokenInvalid,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"Invalid reset token"`,
			serviceCalled:  true,
		},
		{
			id:             "user not found",
			body:           `{"token": "test-token", "password": "newpassword123"}`,
			serviceErr:     user.ErrUserDoesNotExist,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"User not found"`,
			serviceCalled:  true,
		},
		{
			id:             "missing token",
			body:           `{"password": "newpassword123"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"Token and new password are required"`,
			serviceCalled:  false,
		},
		{
			id:             "missing password",
			body:           `{"token": "test-token"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"Token and new password are required"`,
			serviceCalled:  false,
		},
		{
			id:             "invalid json",
			body:           `{"token": `,
			expectedStatus: http.StatusBadRequest,
			serviceCalled:  false,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			stub := &stubService{err: testcase.serviceErr}
			handler := New(stub)

			request := httptest.NewRequest(http.MethodPost, "/auth/password-reset", strings.NewReader(testcase.body))
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			require.Equal(t, testcase.expectedStatus, recorder.Code)
			if testcase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testcase.expectedBody)
			}
			assert.Equal(t, testcase.serviceCalled, stub.input != nil)
		})
	}
}
