package register

import (
	c "authwall/internal/core/domain/common"
	"authwall/internal/core/domain/user"
	service "authwall/internal/core/services/register"
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	if s.err != nil {
		return result, s.err
	}
	s.input = &input
	result.User = user.User{
		ID:           user.ID(1),
		Email:        input.Email,
		PasswordHash: user.PasswordHash("hash"),
	}
	return result, nil
}

func TestRegisterHandler(t *testing.T) {
	cases := []struct {
		id             string
		form           url.Values
		serviceError   error
		expectedStatus int
		expectedInput  *service.Input
	}{
		{
			id:             "success",
			form:           url.Values{"email": {"test@test.test"}, "password": {"test-password"}},
			expectedStatus: http.StatusOK,
			expectedInput: &service.Input{
				Email:    c.NewEmail("test@test.test"),
				Password: user.RawPassword("test-password"),
			},
		},
		{
			id:             "email is lowercased",
			form:           url.Values{"email": {"Test@Test.Test"}, "password": {"test-password"}},
			expectedStatus: http.StatusOK,
			expectedInput: &service.Input{
				Email:    c.NewEmail("test@test.test"),
				Password: user.RawPassword("test-password"),
			},
		},
		{
			id:             "missing email",
			form:           url.Values{"password": {"test-password"}},
			expectedStatus: http.StatusBadRequest,
			expectedInput:  nil,
		},
		{
			id:             "invalid email",
			form:           url.Values{"email": {"not-an-email"}, "password": {"test-password"}},
			expectedStatus: http.StatusBadRequest,
			expectedInput:  nil,
		},
		{
			id:             "missing password",
			form:           url.Values{"email": {"test@test.test"}},
			expectedStatus: http.StatusBadRequest,
			expectedInput:  nil,
		},
		{
			id:             "email already registered",
			form:           url.Values{"email": {"test@test.test"}, "password": {"test-password"}},
			serviceError:   user.ErrEmailAlreadyExists,
			expectedStatus: http.StatusConflict,
			expectedInput:  nil,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			req, err := http.NewRequest("POST", "/users", strings.NewReader(testcase.form.Encode()))
			if err != nil {
				t.Fatal(err)
			}
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

			service := &stubService{err: testcase.serviceError}
			rr := httptest.NewRecorder()
			handler := New(service)
			handler.ServeHTTP(rr, req)

			assert.Equal(t, testcase.expectedStatus, rr.Code)
			assert.Equal(t, testcase.expectedInput, service.input)
		})
	}
}
