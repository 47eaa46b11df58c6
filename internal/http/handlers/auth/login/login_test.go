package login

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) Login(ctx context.Context, username, password string) (string, string, string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.String(1), args.String(2), args.Error(3)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestLoginHandler_ServeHTTP(t *testing.T) {
	authMock := new(AuthServiceMock)
	logger := newNoopLogger()

	handler := New(logger, authMock)

	token := "tok"
	refreshToken := "ref"
	role := "user"

	tests := []struct {
		name           string
		requestBody    interface{}
		mockConfigured bool
		mockErr        error
		wantStatusCode int
		wantData       map[string]any
		wantError      string
		wantStatus     string
	}{
		{
			name:           "valid login",
			requestBody:    Request{Username: "user1", Password: "password123"},
			mockConfigured: true,
			mockErr:        nil,
			wantStatusCode: http.StatusOK,
			wantData: map[string]any{
				"token":         token,
				"refresh_token": refreshToken,
				"role":          role,
				"username":      "user1",
			},
			wantError:  "",
			wantStatus: "OK",
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			wantStatusCode: http.StatusBadRequest,
			wantData:       nil,
			wantError:      "invalid request body",
			wantStatus:     "Error",
		},
		{
			name:           "validation error - missing password",
			requestBody:    Request{Username: "user1"},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantData:       nil,
			wantError:      "field Password is a required field",
			wantStatus:     "Error",
		},
		{
			name:           "login service error",
			requestBody:    Request{Username: "user1", Password: "password123"},
			mockConfigured: true,
			mockErr:        errors.New("invalid password"),
			wantStatusCode: http.StatusInternalServerError,
			wantData:       nil,
			wantError:      "invalid credentials",
			wantStatus:     "Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authMock.ExpectedCalls = nil
			authMock.Calls = nil

			if tt.mockConfigured {
				if tt.mockErr != nil {
					authMock.On("Login", mock.Anything, tt.requestBody.(Request).Username, tt.requestBody.(Request).Password).
						Return("", "", "", tt.mockErr).Once()
				} else {
					authMock.On("Login", mock.Anything, tt.requestBody.(Request).Username, tt.requestBody.(Request).Password).
						Return(token, refreshToken, role, nil).Once()
				}
			}

			var bodyBytes []byte
			var err error
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatal(err)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(bodyBytes))
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))

			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			err = json.NewDecoder(rec.Body).Decode(&got)
			assert.NoError(t, err)

			assert.Equal(t, tt.wantStatus, got["status"])

			if tt.wantError != "" {
				errStr, ok := got["error"].(string)
				assert.True(t, ok)
				assert.Equal(t, tt.wantError, errStr)
			} else {
				assert.Nil(t, got["error"])
			}

			if tt.wantData != nil {
				data, ok := got["data"].(map[string]any)
				assert.True(t, ok)
				for k, v := range tt.wantData {
					assert.Equal(t, v, data[k])
				}
			} else {
				assert.Nil(t, got["data"])
			}

			if tt.mockConfigured {
				authMock.AssertExpectations(t)
			}
		})
	}
}
