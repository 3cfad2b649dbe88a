//go:build integration

package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/budget-tracker/backend/config"
	"github.com/budget-tracker/backend/internal/domain/entity"
	"github.com/budget-tracker/backend/internal/infra/dependency"
	"github.com/budget-tracker/backend/internal/integration/persistence/model"
	"github.com/budget-tracker/backend/test/integration/mock"
)

const (
	testJWTSecret   = "test-jwt-secret-key-for-testing-purposes"
	testJWTAudience = "authenticated"
)

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		Name: "budget-tracker-api",
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:      "pretty",
			Paths:       []string{"../features"},
			Tags:        tags,
			Concurrency: 1,
			Strict:      true,
			TestingT:    t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri         string
	headers     map[string]string
	client      *http.Client
	response    *response
	db          *mock.Db
	timeMock    *mock.Time
	accessToken string

	currentUserID       uuid.UUID
	currentCategoryID   uuid.UUID
	lastTransactionID   uuid.UUID
	lastBudgetID        uuid.UUID
	categoriesByName    map[string]uuid.UUID
	createdTransactions int
}

type response struct {
	status  int
	headers http.Header
	raw     string
	body    any
}

var (
	serverInit     sync.Once
	portInit       sync.Once
	testDB         *mock.Db
	testClock      = mock.NewTime()
	testServerPort int
)

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:      fmt.Sprintf("http://localhost:%d", testServerPort),
		client:   &http.Client{Timeout: 10 * time.Second},
		timeMock: testClock,
		db:       mock.NewDb("budget_tracker", model.AllModels()...),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^today is "([^"]*)"$`, test.todayIs)

	// Identity steps
	ctx.Given(`^I am authenticated as a new user$`, test.iAmAuthenticatedAsANewUser)
	ctx.Given(`^my access token has expired$`, test.myAccessTokenHasExpired)

	// Data setup steps
	ctx.Given(`^an? "(expense|income)" category "([^"]*)" exists$`, test.aCategoryExists)
	ctx.Given(`^an? "(expense|income)" transaction of "([^"]*)" on "([^"]*)" described "([^"]*)"$`, test.aTransactionExists)
	ctx.Given(`^an? "(expense|income)" transaction of "([^"]*)" on "([^"]*)" described "(.*)" in category "([^"]*)"$`, test.aCategorizedTransactionExists)
	ctx.Given(`^a "(weekly|monthly|yearly)" budget of "([^"]*)" exists for category "([^"]*)"$`, test.aBudgetExists)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should be null$`, test.theResponseFieldShouldBeNull)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items?$`, test.theResponseFieldShouldHaveItems)
	ctx.Then(`^the response header "([^"]*)" should contain "([^"]*)"$`, test.theResponseHeaderShouldContain)
	ctx.Then(`^the response body should be:$`, test.theResponseBodyShouldBe)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.currentUserID = uuid.Nil
	t.currentCategoryID = uuid.Nil
	t.lastTransactionID = uuid.Nil
	t.lastBudgetID = uuid.Nil
	t.categoriesByName = make(map[string]uuid.UUID)
	t.createdTransactions = 0
	t.timeMock.Reset()

	if err := mock.ClearRedis(mock.NewRedis()); err != nil {
		return err
	}
	if t.db != nil {
		return t.db.ClearDB()
	}
	return nil
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		cfg := config.Load()
		cfg.JWT.Secret = testJWTSecret
		cfg.JWT.Audience = testJWTAudience
		// The limiter is process-wide and would leak state between scenarios.
		cfg.RateLimit.Enabled = false

		injector := dependency.NewInjector(cfg, testDB.DbConn, mock.NewRedis(), testClock)
		engine := injector.Router.Setup("test")

		server := &http.Server{
			Addr:    fmt.Sprintf(":%d", testServerPort),
			Handler: engine,
		}

		go func() {
			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) todayIs(date string) error {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return err
	}
	t.timeMock.SetCurrentTime(day.Add(12 * time.Hour))
	return nil
}

func (t *testContext) iAmAuthenticatedAsANewUser() error {
	t.currentUserID = uuid.New()
	token, err := signToken(t.currentUserID, time.Now().Add(time.Hour))
	if err != nil {
		return err
	}
	t.accessToken = token
	return nil
}

func (t *testContext) myAccessTokenHasExpired() error {
	if t.currentUserID == uuid.Nil {
		t.currentUserID = uuid.New()
	}
	token, err := signToken(t.currentUserID, time.Now().Add(-time.Minute))
	if err != nil {
		return err
	}
	t.accessToken = token
	return nil
}

func signToken(userID uuid.UUID, expiresAt time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   userID.String(),
		"aud":   testJWTAudience,
		"email": "tester@example.com",
		"exp":   expiresAt.Unix(),
		"iat":   time.Now().Unix(),
	})
	return token.SignedString([]byte(testJWTSecret))
}

func (t *testContext) requireUser() error {
	if t.currentUserID == uuid.Nil {
		return errors.New("no authenticated user; add \"I am authenticated as a new user\" first")
	}
	return nil
}

func (t *testContext) aCategoryExists(categoryType, name string) error {
	if err := t.requireUser(); err != nil {
		return err
	}

	category := entity.NewCategory(t.currentUserID, name, entity.CategoryType(categoryType), entity.DefaultCategoryColor)
	if err := t.db.DbConn.Create(model.CategoryFromEntity(category)).Error; err != nil {
		return err
	}

	t.categoriesByName[name] = category.ID
	t.currentCategoryID = category.ID
	return nil
}

func (t *testContext) aTransactionExists(transactionType, amount, date, description string) error {
	return t.createTransaction(transactionType, amount, date, description, nil)
}

func (t *testContext) aCategorizedTransactionExists(transactionType, amount, date, description, categoryName string) error {
	categoryID, ok := t.categoriesByName[categoryName]
	if !ok {
		return fmt.Errorf("category %q has not been created in this scenario", categoryName)
	}
	return t.createTransaction(transactionType, amount, date, description, &categoryID)
}

func (t *testContext) createTransaction(transactionType, amount, date, description string, categoryID *uuid.UUID) error {
	if err := t.requireUser(); err != nil {
		return err
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return err
	}

	transaction := entity.NewTransaction(t.currentUserID, day, description, value, entity.TransactionType(transactionType), categoryID)
	// Stagger creation times so ties on date keep a stable order.
	t.createdTransactions++
	transaction.CreatedAt = transaction.CreatedAt.Add(time.Duration(t.createdTransactions) * time.Millisecond)
	transaction.UpdatedAt = transaction.CreatedAt

	if err := t.db.DbConn.Create(model.TransactionFromEntity(transaction)).Error; err != nil {
		return err
	}

	t.lastTransactionID = transaction.ID
	return nil
}

func (t *testContext) aBudgetExists(period, amount, categoryName string) error {
	if err := t.requireUser(); err != nil {
		return err
	}

	categoryID, ok := t.categoriesByName[categoryName]
	if !ok {
		return fmt.Errorf("category %q has not been created in this scenario", categoryName)
	}
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	budget := entity.NewBudget(t.currentUserID, categoryID, value, entity.BudgetPeriod(period), t.timeMock.Now())
	if err := t.db.DbConn.Create(model.BudgetFromEntity(budget)).Error; err != nil {
		return err
	}

	t.lastBudgetID = budget.ID
	return nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = "" // Clear access token to simulate unauthenticated request
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

// replacePlaceholders substitutes {{category_id}}, {{transaction_id}},
// {{budget_id}}, {{user_id}} and {{category:<name>}} with ids from the scenario.
func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{category_id}}", t.currentCategoryID.String())
	content = strings.ReplaceAll(content, "{{transaction_id}}", t.lastTransactionID.String())
	content = strings.ReplaceAll(content, "{{budget_id}}", t.lastBudgetID.String())
	content = strings.ReplaceAll(content, "{{user_id}}", t.currentUserID.String())
	for name, id := range t.categoriesByName {
		content = strings.ReplaceAll(content, "{{category:"+name+"}}", id.String())
	}
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, t.uri+path, body)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status:  resp.StatusCode,
		headers: resp.Header,
		raw:     string(bodyBytes),
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody
	t.captureIDs(responseBody)

	return nil
}

// captureIDs remembers the id of a created resource so later steps can address it.
func (t *testContext) captureIDs(body map[string]any) {
	idStr, ok := body["id"].(string)
	if !ok {
		return
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return
	}

	_, hasPeriod := body["period"]
	_, hasDate := body["date"]
	name, hasName := body["name"].(string)

	switch {
	case hasPeriod:
		t.lastBudgetID = id
	case hasDate:
		t.lastTransactionID = id
	case hasName:
		t.currentCategoryID = id
		t.categoriesByName[name] = id
	}
}

func (t *testContext) jsonBody() (map[string]any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}
	body, ok := t.response.body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}
	return body, nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	_, err := t.jsonBody()
	return err
}

func (t *testContext) theResponseShouldContain(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}

	value := getFieldValue(body, t.replacePlaceholders(field))
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	expectedValue = t.replacePlaceholders(expectedValue)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}

	if getFieldValue(body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBeNull(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}

	if value := getFieldValue(body, field); value != nil {
		return fmt.Errorf("field '%s' expected null, got %v", field, value)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldHaveItems(field string, quantity int) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}

	items, ok := getFieldValue(body, field).([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list: %v", field, body)
	}
	if len(items) != quantity {
		return fmt.Errorf("field '%s' expected %d items, got %d: %v", field, quantity, len(items), items)
	}
	return nil
}

func (t *testContext) theResponseHeaderShouldContain(header, expected string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	actual := t.response.headers.Get(header)
	if !strings.Contains(actual, expected) {
		return fmt.Errorf("header '%s' expected to contain '%s', got '%s'", header, expected, actual)
	}
	return nil
}

func (t *testContext) theResponseBodyShouldBe(content *godog.DocString) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	expected := strings.TrimSpace(content.Content)
	actual := strings.TrimSpace(strings.ReplaceAll(t.response.raw, "\r\n", "\n"))
	if actual != expected {
		return fmt.Errorf("response body mismatch\nexpected:\n%s\ngot:\n%s", expected, actual)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if tableModel, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(tableModel).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	if tableModel, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(tableModel).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		query := t.db.DbConn.Unscoped()
		for key, value := range criteria {
			query = query.Where(fmt.Sprintf("%s = ?", key), value)
		}

		result := query.Find(entitySlicePtr.Interface())
		if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
