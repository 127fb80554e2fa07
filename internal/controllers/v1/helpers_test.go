package v1_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/budget-buddy/backend/internal/auth"
	v1 "github.com/budget-buddy/backend/internal/controllers/v1"
	"github.com/budget-buddy/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const testPassword = "Correct horse battery 1!"

// testUser is a registered user with a valid access token.
type testUser struct {
	ID        uuid.UUID
	Email     string
	Token     string
	AccountID uuid.UUID // ID of the account created on registration
}

// headers returns the Authorization header for the user.
func (u testUser) headers() map[string]string {
	return test.Bearer(u.Token)
}

// registerTestUser registers a user with a random email address and logs in.
func registerTestUser(t *testing.T) testUser {
	email := uuid.NewString() + "@example.com"

	r := test.Request(t, http.MethodPost, "http://example.com/v1/auth/register", auth.Registration{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     email,
		Password:  testPassword,
	})
	test.AssertHTTPStatus(t, &r, http.StatusCreated)

	var user v1.UserResponse
	test.DecodeResponse(t, &r, &user)

	u := testUser{
		ID:    user.Data.ID,
		Email: email,
		Token: login(t, email, testPassword),
	}

	accounts := test.Request(t, http.MethodGet, "http://example.com/v1/accounts", "", u.headers())
	test.AssertHTTPStatus(t, &accounts, http.StatusOK)

	var list v1.AccountListResponse
	test.DecodeResponse(t, &accounts, &list)
	require.Len(t, list.Data, 1, "registration must create exactly one account")
	u.AccountID = list.Data[0].ID

	return u
}

// login returns an access token for the credentials.
func login(t *testing.T, email, password string) string {
	r := test.Request(t, http.MethodPost, "http://example.com/v1/auth/login", v1.LoginEditable{
		Email:    email,
		Password: password,
	})
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var token v1.TokenResponse
	test.DecodeResponse(t, &r, &token)
	require.NotNil(t, token.Data)

	return token.Data.AccessToken
}

func createTestAccount(t *testing.T, u testUser, a v1.AccountEditable, expectedStatus ...int) v1.AccountResponse {
	if a.Name == "" {
		a.Name = uuid.NewString()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.AccountEditable{a}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/accounts", body, u.headers())
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var account v1.AccountCreateResponse
	test.DecodeResponse(t, &r, &account)

	if r.Code == http.StatusCreated {
		return account.Data[0]
	}

	return v1.AccountResponse{}
}

func createTestCategory(t *testing.T, u testUser, c v1.CategoryEditable, expectedStatus ...int) v1.CategoryResponse {
	if c.Name == "" {
		c.Name = uuid.NewString()
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.CategoryEditable{c}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/categories", body, u.headers())
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var category v1.CategoryCreateResponse
	test.DecodeResponse(t, &r, &category)

	if r.Code == http.StatusCreated {
		return category.Data[0]
	}

	return v1.CategoryResponse{}
}

func createTestCategoryRule(t *testing.T, u testUser, c v1.CategoryRuleEditable, expectedStatus ...int) v1.CategoryRuleResponse {
	if c.CategoryID == uuid.Nil {
		c.CategoryID = createTestCategory(t, u, v1.CategoryEditable{}).Data.ID
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.CategoryRuleEditable{c}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/category-rules", body, u.headers())
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var rule v1.CategoryRuleCreateResponse
	test.DecodeResponse(t, &r, &rule)

	if r.Code == http.StatusCreated {
		return rule.Data[0]
	}

	return v1.CategoryRuleResponse{}
}

// createTestTransaction posts a transaction. Unless set, it is a deposit
// of 10 to the account created on registration.
func createTestTransaction(t *testing.T, u testUser, c v1.TransactionEditable, expectedStatus ...int) v1.TransactionResponse {
	if c.AccountID == uuid.Nil {
		c.AccountID = u.AccountID
	}

	if c.Type == "" {
		c.Type = "DEPOSIT"
	}

	if c.Amount.IsZero() {
		c.Amount = decimal.NewFromFloat(10)
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.TransactionEditable{c}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/transactions", body, u.headers())
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var transaction v1.TransactionCreateResponse
	test.DecodeResponse(t, &r, &transaction)

	// Failed transactions carry the error
	if len(transaction.Data) > 0 {
		return transaction.Data[0]
	}

	return v1.TransactionResponse{}
}

// createTestScheduledPayment creates a scheduled payment. Unless set, it is a
// monthly payment of 25 from the account created on registration, due in a week.
func createTestScheduledPayment(t *testing.T, u testUser, c v1.ScheduledPaymentEditable, expectedStatus ...int) v1.ScheduledPaymentResponse {
	if c.AccountID == uuid.Nil {
		c.AccountID = u.AccountID
	}

	if c.Reference == "" {
		c.Reference = "Rent"
	}

	if c.Amount.IsZero() {
		c.Amount = decimal.NewFromFloat(25)
	}

	if c.Frequency == "" {
		c.Frequency = "MONTHLY"
	}

	if c.NextDate.IsZero() {
		c.NextDate = time.Now().AddDate(0, 0, 7)
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.ScheduledPaymentEditable{c}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/scheduled-payments", body, u.headers())
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var payment v1.ScheduledPaymentCreateResponse
	test.DecodeResponse(t, &r, &payment)

	if r.Code == http.StatusCreated {
		return payment.Data[0]
	}

	return v1.ScheduledPaymentResponse{}
}

// getAccount returns the current state of the account.
func getAccount(t *testing.T, u testUser, id uuid.UUID) v1.Account {
	r := test.Request(t, http.MethodGet, "http://example.com/v1/accounts/"+id.String(), "", u.headers())
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var account v1.AccountResponse
	test.DecodeResponse(t, &r, &account)

	return *account.Data
}
