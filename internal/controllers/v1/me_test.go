package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/budget-buddy/backend/internal/controllers/v1"
	"github.com/budget-buddy/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestMeGet() {
	u := registerTestUser(suite.T())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/me", "", u.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var user v1.UserResponse
	test.DecodeResponse(suite.T(), &r, &user)
	suite.Assert().Equal(u.ID, user.Data.ID)
	suite.Assert().Equal(u.Email, user.Data.Email)
	suite.Assert().Equal("http://example.com/v1/me/export", user.Data.Links.Export)
}

func (suite *TestSuiteStandard) TestMeUpdate() {
	u := registerTestUser(suite.T())

	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/me", map[string]any{
		"firstName": "Amazing Grace",
		"email":     "  Grace.Hopper." + u.ID.String() + "@Example.com ",
		"currency":  "USD",
	}, u.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var user v1.UserResponse
	test.DecodeResponse(suite.T(), &r, &user)
	suite.Assert().Equal("Amazing Grace", user.Data.FirstName)
	suite.Assert().Equal("Hopper", user.Data.LastName, "Fields not in the body must not be changed")
	suite.Assert().Equal("grace.hopper."+u.ID.String()+"@example.com", user.Data.Email)
	suite.Assert().Equal("USD", user.Data.Currency)

	// The new email address is used to log in
	login(suite.T(), "grace.hopper."+u.ID.String()+"@example.com", testPassword)
}

func (suite *TestSuiteStandard) TestMeUpdateFails() {
	u := registerTestUser(suite.T())
	other := registerTestUser(suite.T())

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Empty body", "", http.StatusBadRequest},
		{"Broken body", `{ "firstName": 2 }`, http.StatusBadRequest},
		{"Empty first name", map[string]any{"firstName": ""}, http.StatusBadRequest},
		{"Invalid email", map[string]any{"email": "grace"}, http.StatusBadRequest},
		{"Email of other user", map[string]any{"email": other.Email}, http.StatusConflict},
		{"Invalid currency", map[string]any{"currency": "Dollar"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, "http://example.com/v1/me", tt.body, u.headers())
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestMeChangePassword() {
	u := registerTestUser(suite.T())

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/me/password", v1.PasswordEditable{
		Current:  "Not the password 1!",
		Password: "Battery staple horse 2?",
	}, u.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/me/password", v1.PasswordEditable{
		Current:  testPassword,
		Password: "weak",
	}, u.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/me/password", v1.PasswordEditable{
		Current:  testPassword,
		Password: "Battery staple horse 2?",
	}, u.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/login", v1.LoginEditable{
		Email:    u.Email,
		Password: testPassword,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)

	login(suite.T(), u.Email, "Battery staple horse 2?")
}

func (suite *TestSuiteStandard) TestMeExport() {
	u := registerTestUser(suite.T())
	createTestTransaction(suite.T(), u, v1.TransactionEditable{Note: "Salary"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/me/export", "", u.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var export v1.ExportResponse
	test.DecodeResponse(suite.T(), &r, &export)

	for _, key := range []string{"User", "Account", "Alert", "Category", "CategoryRule", "ScheduledPayment", "Transaction"} {
		suite.Assert().Contains(export.Data, key)
	}

	suite.Assert().NotContains(string(export.Data["User"]), "passwordHash", "The password hash must never be exported")
	suite.Assert().Contains(string(export.Data["Transaction"]), "Salary")
	suite.Assert().NotContains(string(export.Data["Category"]), "Leisure", "Default categories are not part of the export")
}

func (suite *TestSuiteStandard) TestMeExportIsolated() {
	u := registerTestUser(suite.T())
	other := registerTestUser(suite.T())
	createTestTransaction(suite.T(), other, v1.TransactionEditable{Note: "Secret bonus"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/me/export", "", u.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().NotContains(r.Body.String(), "Secret bonus")
	suite.Assert().NotContains(r.Body.String(), other.Email)
}

func (suite *TestSuiteStandard) TestMeDelete() {
	u := registerTestUser(suite.T())

	tests := []struct {
		name   string
		url    string
		status int
	}{
		{"No confirmation", "http://example.com/v1/me", http.StatusBadRequest},
		{"Wrong confirmation", "http://example.com/v1/me?confirm=yes", http.StatusBadRequest},
		{"Confirmed", "http://example.com/v1/me?confirm=yes-please-delete-everything", http.StatusNoContent},
		{"Already deleted", "http://example.com/v1/me?confirm=yes-please-delete-everything", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodDelete, tt.url, "", u.headers())
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/login", v1.LoginEditable{
		Email:    u.Email,
		Password: testPassword,
	})
	assert.Equal(suite.T(), http.StatusUnauthorized, r.Code, "Deleted users must not be able to log in")
}
