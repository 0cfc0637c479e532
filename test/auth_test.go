package test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/nandaputra/storefront-service/internal/dto"
)

func (s *IntegrationTestSuite) Test_RegisterAndLogin() {
	email := fmt.Sprintf("buyer-%d@store.com", time.Now().UnixNano())

	resp, body := s.doJSON(http.MethodPost, "/auth/register", dto.RegisterRequest{
		Email:    email,
		Password: "secret123",
		Name:     "Integration Buyer",
	})
	s.Equal(http.StatusCreated, resp.StatusCode)

	var registered dto.UserResponse
	s.Require().NoError(json.Unmarshal(body, &registered))
	s.NotZero(registered.ID)
	s.Equal("buyer", registered.Role)

	// The profile body never carries credentials.
	var raw map[string]interface{}
	s.Require().NoError(json.Unmarshal(body, &raw))
	s.NotContains(raw, "password")
	s.NotContains(raw, "hashedPassword")

	// Duplicate registration is rejected and only one account exists.
	resp, _ = s.doJSON(http.MethodPost, "/auth/register", dto.RegisterRequest{
		Email:    email,
		Password: "other",
		Name:     "Imposter",
	})
	s.Equal(http.StatusBadRequest, resp.StatusCode)

	testCases := []struct {
		Name           string
		Request        dto.LoginRequest
		ExpectedStatus int
	}{
		{
			Name:           "Valid credentials",
			Request:        dto.LoginRequest{Email: email, Password: "secret123"},
			ExpectedStatus: http.StatusOK,
		},
		{
			Name:           "Wrong password",
			Request:        dto.LoginRequest{Email: email, Password: "wrong"},
			ExpectedStatus: http.StatusUnauthorized,
		},
		{
			Name:           "Unknown email",
			Request:        dto.LoginRequest{Email: "nobody@store.com", Password: "secret123"},
			ExpectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.Name, func() {
			resp, _ := s.doJSON(http.MethodPost, "/auth/login", tc.Request)
			s.Equal(tc.ExpectedStatus, resp.StatusCode)
		})
	}
}

func (s *IntegrationTestSuite) Test_MissingRegistrationFields() {
	resp, _ := s.doJSON(http.MethodPost, "/auth/register", dto.RegisterRequest{
		Email:    fmt.Sprintf("incomplete-%d@store.com", time.Now().UnixNano()),
		Password: "secret123",
	})
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *IntegrationTestSuite) Test_RouteNotFound() {
	resp, body := s.doJSON(http.MethodGet, "/nope", nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.JSONEq(`{"error":"Route not found"}`, string(body))
}
