// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/debt-manager/backend/internal/application/usecase/auth"
	"github.com/debt-manager/backend/internal/application/usecase/debt"
	"github.com/debt-manager/backend/internal/application/usecase/user"
	"github.com/debt-manager/backend/internal/infra/server/router"
	"github.com/debt-manager/backend/internal/integration/adapters"
	"github.com/debt-manager/backend/internal/integration/entrypoint/controller"
	"github.com/debt-manager/backend/internal/integration/entrypoint/middleware"
	"github.com/debt-manager/backend/internal/integration/persistence"
	"github.com/debt-manager/backend/test/integration/mock"
)

const testJWTSecret = "integration-test-secret"

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	engine       *gin.Engine
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Auth
	accessToken string

	// Last created resource id, captured from create responses.
	lastID string
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc := &TestContext{
			requestHeaders: make(map[string]string),
		}

		db := mock.NewDb()
		if err := db.ClearDB(); err != nil {
			return ctx, fmt.Errorf("failed to clear database: %w", err)
		}

		redisClient := mock.NewRedis()
		if err := mock.ClearRedis(redisClient); err != nil {
			return ctx, fmt.Errorf("failed to clear redis: %w", err)
		}

		idGenerator := adapters.NewIDGenerator()
		passwordService := adapters.NewPasswordService()
		tokenService := adapters.NewTokenService(testJWTSecret, time.Hour)

		userRepo := persistence.NewUserRepository(db.DbConn, idGenerator)
		debtRepo := persistence.NewDebtRepository(db.DbConn, idGenerator)
		statusRepo := persistence.NewStatusRepository(db.DbConn, idGenerator)
		if err := statusRepo.Seed(context.Background()); err != nil {
			return ctx, fmt.Errorf("failed to seed statuses: %w", err)
		}

		healthController := controller.NewHealthController(func() bool { return true })
		authController := controller.NewAuthController(
			auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService),
			auth.NewLoginUserUseCase(userRepo, passwordService, tokenService),
		)
		userController := controller.NewUserController(
			user.NewGetUserUseCase(userRepo),
			user.NewListUsersUseCase(userRepo),
			user.NewUpdateUserUseCase(userRepo, passwordService),
			user.NewDeleteUserUseCase(userRepo),
		)
		debtController := controller.NewDebtController(
			debt.NewCreateDebtUseCase(debtRepo, statusRepo),
			debt.NewGetDebtUseCase(debtRepo, statusRepo),
			debt.NewListDebtsUseCase(debtRepo, statusRepo),
			debt.NewUpdateDebtUseCase(debtRepo, statusRepo),
			debt.NewDeleteDebtUseCase(debtRepo),
		)

		loginRateLimiter := middleware.NewRateLimiterWithConfig(redisClient, 5, time.Minute)
		authMiddleware := middleware.NewAuthMiddleware(tokenService)

		r := router.NewRouter(healthController, authController, userController, debtController, loginRateLimiter, authMiddleware)
		tc.engine = r.Setup("test")
		tc.server = httptest.NewServer(tc.engine)

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I send (\d+) "([^"]*)" requests to "([^"]*)" with body:$`, iSendNRequestsToWithBody)
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeaderTo)
	ctx.Step(`^I am registered and authenticated as "([^"]*)" with password "([^"]*)"$`, iAmRegisteredAndAuthenticatedAs)
	ctx.Step(`^I am not authenticated$`, iAmNotAuthenticated)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response should not contain "([^"]*)"$`, theResponseShouldNotContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response should have (\d+) records$`, theResponseShouldHaveRecords)
}

// Step implementations

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

// expandPath substitutes {id} with the identifier captured from the last
// create response.
func (tc *TestContext) expandPath(endpoint string) string {
	return strings.ReplaceAll(endpoint, "{id}", tc.lastID)
}

func (tc *TestContext) doRequest(method, endpoint string, body io.Reader) error {
	url := tc.server.URL + tc.expandPath(endpoint)
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}
	if tc.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	tc.captureID()
	return nil
}

// captureID remembers the id of the last created or returned resource so
// later steps can address it via {id}.
func (tc *TestContext) captureID() {
	var data map[string]interface{}
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return
	}
	if id, ok := data["id"].(string); ok {
		tc.lastID = id
		return
	}
	if user, ok := data["user"].(map[string]interface{}); ok {
		if id, ok := user["id"].(string); ok {
			tc.lastID = id
		}
	}
}

func iSendARequestTo(ctx context.Context, method, endpoint string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if err := tc.doRequest(method, endpoint, nil); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if err := tc.doRequest(method, endpoint, bytes.NewBufferString(body.Content)); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iSendNRequestsToWithBody(ctx context.Context, count int, method, endpoint string, body *godog.DocString) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	for i := 0; i < count; i++ {
		if err := tc.doRequest(method, endpoint, bytes.NewBufferString(body.Content)); err != nil {
			return ctx, err
		}
	}
	return SetTestContext(ctx, tc), nil
}

func iSetHeaderTo(ctx context.Context, header, value string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	tc.requestHeaders[header] = value
	return SetTestContext(ctx, tc), nil
}

func iAmRegisteredAndAuthenticatedAs(ctx context.Context, email, password string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	username := strings.SplitN(email, "@", 2)[0]
	payload := map[string]string{
		"username": username,
		"email":    email,
		"name":     username,
		"password": password,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return ctx, err
	}

	if err := tc.doRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body)); err != nil {
		return ctx, err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return ctx, fmt.Errorf("registration failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}

	var authResp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(tc.responseBody, &authResp); err != nil {
		return ctx, fmt.Errorf("failed to parse auth response: %w", err)
	}
	if authResp.AccessToken == "" {
		return ctx, fmt.Errorf("registration returned no access token")
	}
	tc.accessToken = authResp.AccessToken

	return SetTestContext(ctx, tc), nil
}

func iAmNotAuthenticated(ctx context.Context) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	tc.accessToken = ""
	return SetTestContext(ctx, tc), nil
}

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldBeJSON(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	var js json.RawMessage
	if err := json.Unmarshal(tc.responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldNotContain(ctx context.Context, unexpected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if strings.Contains(string(tc.responseBody), unexpected) {
		return fmt.Errorf("response contains '%s'. Body: %s", unexpected, string(tc.responseBody))
	}
	return nil
}

// lookupField resolves a dot-separated path in the parsed response.
func lookupField(data interface{}, path string) (interface{}, bool) {
	current := data
	for _, part := range strings.Split(path, ".") {
		obj, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current, ok = obj[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var data interface{}
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return fmt.Errorf("failed to parse response JSON: %w", err)
	}

	value, ok := lookupField(data, field)
	if !ok {
		return fmt.Errorf("field '%s' not found in response. Body: %s", field, string(tc.responseBody))
	}

	var actual string
	switch v := value.(type) {
	case float64:
		actual = strconv.FormatFloat(v, 'f', -1, 64)
	default:
		actual = fmt.Sprintf("%v", v)
	}
	if actual != expected {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expected, actual)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var data interface{}
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return fmt.Errorf("failed to parse response JSON: %w", err)
	}

	if _, ok := lookupField(data, field); !ok {
		return fmt.Errorf("field '%s' not found in response. Body: %s", field, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldHaveRecords(ctx context.Context, expected int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var data struct {
		Records []json.RawMessage `json:"records"`
	}
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return fmt.Errorf("failed to parse response JSON: %w", err)
	}
	if len(data.Records) != expected {
		return fmt.Errorf("expected %d records, got %d. Body: %s", expected, len(data.Records), string(tc.responseBody))
	}
	return nil
}
