package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/budget-buddy/backend/internal/controllers/v1"
	"github.com/budget-buddy/backend/test"
	"github.com/stretchr/testify/assert"
)

// defaultCategory returns the default category with the name.
func defaultCategory(t *testing.T, u testUser, name string) v1.Category {
	r := test.Request(t, http.MethodGet, "http://example.com/v1/categories?default=true&name="+name, "", u.headers())
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var list v1.CategoryListResponse
	test.DecodeResponse(t, &r, &list)

	for _, c := range list.Data {
		if c.Name == name {
			return c
		}
	}

	assert.FailNow(t, "Default category not found", name)
	return v1.Category{}
}

func (suite *TestSuiteStandard) TestCategoriesDefaults() {
	u := registerTestUser(suite.T())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "", u.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Assert().Len(list.Data, 10)

	for _, c := range list.Data {
		suite.Assert().True(c.Default, "Category %s must be a default category", c.Name)
	}

	meals := defaultCategory(suite.T(), u, "Meals")
	path := "http://example.com/v1/categories/" + meals.ID.String()

	r = test.Request(suite.T(), http.MethodGet, path, "", u.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodPatch, path, map[string]any{"name": "Food"}, u.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodDelete, path, "", u.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategoriesCreate() {
	u := registerTestUser(suite.T())

	category := createTestCategory(suite.T(), u, v1.CategoryEditable{Name: "Subscriptions", Description: "Streaming and news"})
	suite.Assert().False(category.Data.Default)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/transactions?category=%s", category.Data.ID), category.Data.Links.Transactions)

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Broken body", `[{ "name": 2 }]`, http.StatusBadRequest},
		{"Empty name", []v1.CategoryEditable{{Name: "  "}}, http.StatusBadRequest},
		{"Duplicate name", []v1.CategoryEditable{{Name: "Subscriptions"}}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/categories", tt.body, u.headers())
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	// Other users can use the same name
	other := registerTestUser(suite.T())
	createTestCategory(suite.T(), other, v1.CategoryEditable{Name: "Subscriptions"})
}

func (suite *TestSuiteStandard) TestCategoriesGetFilter() {
	u := registerTestUser(suite.T())
	other := registerTestUser(suite.T())

	createTestCategory(suite.T(), u, v1.CategoryEditable{Name: "Subscriptions", Description: "Streaming and news"})
	createTestCategory(suite.T(), u, v1.CategoryEditable{Name: "Pets"})
	createTestCategory(suite.T(), other, v1.CategoryEditable{Name: "Garden"})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 12},
		{"Default", "default=true", 10},
		{"Own", "default=false", 2},
		{"Name", "name=Pet", 1},
		{"Description", "description=news", 1},
		{"Search", "search=stream", 1},
		{"Other user", "name=Garden", 0},
		{"Limit", "limit=5", 5},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/categories?"+tt.query, "", u.headers())
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var list v1.CategoryListResponse
			test.DecodeResponse(t, &r, &list)
			assert.Len(t, list.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesUpdateDelete() {
	u := registerTestUser(suite.T())
	other := registerTestUser(suite.T())

	category := createTestCategory(suite.T(), u, v1.CategoryEditable{Name: "Subscriptions"})
	path := "http://example.com/v1/categories/" + category.Data.ID.String()
	createTestCategoryRule(suite.T(), u, v1.CategoryRuleEditable{CategoryID: category.Data.ID, Match: "*netflix*"})

	r := test.Request(suite.T(), http.MethodPatch, path, map[string]any{"description": "Monthly fees"}, u.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal("Subscriptions", updated.Data.Name)
	suite.Assert().Equal("Monthly fees", updated.Data.Description)

	r = test.Request(suite.T(), http.MethodPatch, path, map[string]any{"name": ""}, u.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPatch, path, map[string]any{"name": "Stolen"}, other.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodDelete, path, "", other.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodDelete, path, "", u.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/category-rules", "", u.headers())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var rules v1.CategoryRuleListResponse
	test.DecodeResponse(suite.T(), &r, &rules)
	suite.Assert().Len(rules.Data, 0, "Rules must be deleted with their category")
}
