package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"edcstudio/internal/auth"
	"edcstudio/internal/config"
	"edcstudio/internal/edc"
	"edcstudio/internal/launcher"
	"edcstudio/internal/model"
	"edcstudio/internal/service"
	serviceMocks "edcstudio/internal/service/mocks"
)

const (
	testEDCID      = "65a000000000000000000001"
	testOtherEDCID = "65a000000000000000000002"
)

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(ctx context.Context, rp *readpref.ReadPref) error { return p.err }

func newTestApp(deps Dependencies) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	RegisterRoutes(app, deps)
	return app
}

func jsonRequest(method, target string, payload any) *http.Request {
	var body *bytes.Buffer
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewBuffer(raw)
	} else {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, target, body)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func decodeError(t *testing.T, resp *http.Response) errorPayload {
	t.Helper()
	var res errorPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	return res
}

func TestHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		app := newTestApp(Dependencies{Mongo: fakePinger{}})

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		app := newTestApp(Dependencies{Mongo: fakePinger{err: errors.New("down")}})

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "SERVICE_UNAVAILABLE", decodeError(t, resp).Error.Code)
	})

	t.Run("liveness", func(t *testing.T) {
		app := newTestApp(Dependencies{})

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestConnectorRoutes(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockConnectorService)
		mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(conn *model.Connector) bool {
			return conn.Name == "provider-a" && conn.Type == model.ConnectorTypeProvider
		})).Return(testEDCID, nil).Once()

		app := newTestApp(Dependencies{Connectors: mockSvc})
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/connectors", fiber.Map{
			"name": "provider-a",
			"type": model.ConnectorTypeProvider,
			"mode": model.ConnectorModeManaged,
		}))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, testEDCID, body["id"])
		mockSvc.AssertExpectations(t)
	})

	t.Run("get not found", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockConnectorService)
		mockSvc.On("Get", mock.Anything, testEDCID).Return(nil, service.ErrConnectorNotFound).Once()

		app := newTestApp(Dependencies{Connectors: mockSvc})
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/connectors/"+testEDCID, nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		res := decodeError(t, resp)
		assert.Equal(t, "NOT_FOUND", res.Error.Code)
		assert.Equal(t, "EDC not found", res.Error.Message)
	})

	t.Run("invalid id", func(t *testing.T) {
		app := newTestApp(Dependencies{Connectors: new(serviceMocks.MockConnectorService)})
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/connectors/not-hex", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_ID", decodeError(t, resp).Error.Code)
	})

	t.Run("start", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockConnectorService)
		mockSvc.On("Start", mock.Anything, testEDCID).Return(nil).Once()

		app := newTestApp(Dependencies{Connectors: mockSvc})
		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/connectors/"+testEDCID+"/start", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, model.ConnectorStateRunning, body["state"])
		mockSvc.AssertExpectations(t)
	})

	t.Run("stop without runtime", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockConnectorService)
		mockSvc.On("Stop", mock.Anything, testEDCID).Return(launcher.ErrRuntimeMissing).Once()

		app := newTestApp(Dependencies{Connectors: mockSvc})
		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/connectors/"+testEDCID+"/stop", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestAssetRoutes(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockAssetService)
		mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(a *model.Asset) bool {
			return a.AssetID == "asset-1" && a.EDC == testEDCID
		})).Return(map[string]any{"@id": "asset-1"}, nil).Once()

		app := newTestApp(Dependencies{Assets: mockSvc})
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/assets", fiber.Map{
			"asset_id": "asset-1",
			"edc":      testEDCID,
		}))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("upstream error relayed", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockAssetService)
		mockSvc.On("ListByEDC", mock.Anything, testEDCID).
			Return(nil, &edc.StatusError{Code: http.StatusConflict, Body: "already exists"}).Once()

		app := newTestApp(Dependencies{Assets: mockSvc})
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/assets/by-edc/"+testEDCID, nil))

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		res := decodeError(t, resp)
		assert.Equal(t, "EDC_UPSTREAM", res.Error.Code)
		assert.Equal(t, "already exists", res.Error.Message)
	})

	t.Run("connection error maps to bad gateway", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockAssetService)
		mockSvc.On("ListByEDC", mock.Anything, testEDCID).
			Return(nil, errors.New("edc request: connection refused")).Once()

		app := newTestApp(Dependencies{Assets: mockSvc})
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/assets/by-edc/"+testEDCID, nil))

		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
		assert.Equal(t, "EDC_UNREACHABLE", decodeError(t, resp).Error.Code)
	})

	t.Run("delete", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockAssetService)
		mockSvc.On("Delete", mock.Anything, testEDCID, "asset-1").Return(nil).Once()

		app := newTestApp(Dependencies{Assets: mockSvc})
		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/assets/asset-1/"+testEDCID, nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestTransferRoutes(t *testing.T) {
	t.Run("catalog request", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockTransferService)
		mockSvc.On("CatalogRequest", mock.Anything, testEDCID, testOtherEDCID).
			Return(map[string]any{"@type": "dcat:Catalog"}, nil).Once()

		app := newTestApp(Dependencies{Transfers: mockSvc})
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/transfers/catalog_request", fiber.Map{
			"consumer": testEDCID,
			"provider": testOtherEDCID,
		}))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("negotiate contract", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockTransferService)
		mockSvc.On("NegotiateContract", mock.Anything, testEDCID, testOtherEDCID, "offer-1", "asset-1").
			Return(map[string]any{"@id": "neg-1"}, nil).Once()

		app := newTestApp(Dependencies{Transfers: mockSvc})
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/transfers/negotiate_contract", fiber.Map{
			"consumer":          testEDCID,
			"provider":          testOtherEDCID,
			"contract_offer_id": "offer-1",
			"asset":             "asset-1",
		}))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("create record", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockTransferService)
		mockSvc.On("CreateRecord", mock.Anything, mock.MatchedBy(func(tr *model.Transfer) bool {
			return tr.Consumer == testEDCID && tr.TransferFlow == model.TransferFlowPush
		})).Return("65a000000000000000000003", nil).Once()

		app := newTestApp(Dependencies{Transfers: mockSvc})
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/transfers", fiber.Map{
			"consumer":      testEDCID,
			"provider":      testOtherEDCID,
			"asset":         "asset-1",
			"transfer_flow": model.TransferFlowPush,
		}))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("proxy pull requires uri", func(t *testing.T) {
		app := newTestApp(Dependencies{Transfers: new(serviceMocks.MockTransferService)})
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/transfers/proxy_pull", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "MISSING_URI", decodeError(t, resp).Error.Code)
	})

	t.Run("proxy pull relays authorization", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockTransferService)
		mockSvc.On("ProxyPull", mock.Anything, "http://edc-provider:19291/public", "token-123").
			Return([]byte(`{"data":1}`), fiber.MIMEApplicationJSON, nil).Once()

		app := newTestApp(Dependencies{Transfers: mockSvc})
		req := httptest.NewRequest(http.MethodGet, "/transfers/proxy_pull?uri=http%3A%2F%2Fedc-provider%3A19291%2Fpublic", nil)
		req.Header.Set(fiber.HeaderAuthorization, "token-123")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, fiber.MIMEApplicationJSON, resp.Header.Get(fiber.HeaderContentType))
		mockSvc.AssertExpectations(t)
	})

	t.Run("proxy http logger", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockTransferService)
		mockSvc.On("ProxyHTTPLogger", mock.Anything).
			Return([]byte("No data received yet."), "text/plain; charset=utf-8", nil).Once()

		app := newTestApp(Dependencies{Transfers: mockSvc})
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/transfers/proxy_http_logger", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestAuthRoutes(t *testing.T) {
	t.Run("register", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockUserService)
		mockSvc.On("Register", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.Username == "alice" && u.Email == "alice@example.com"
		}), "s3cret").Return(&model.User{ID: testEDCID, Username: "alice"}, nil).Once()

		app := newTestApp(Dependencies{Users: mockSvc})
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/auth/register", fiber.Map{
			"username": "alice",
			"email":    "alice@example.com",
			"password": "s3cret",
		}))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("register duplicate email", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockUserService)
		mockSvc.On("Register", mock.Anything, mock.Anything, "s3cret").
			Return(nil, service.ErrEmailTaken).Once()

		app := newTestApp(Dependencies{Users: mockSvc})
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/auth/register", fiber.Map{
			"username": "alice",
			"email":    "alice@example.com",
			"password": "s3cret",
		}))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "EMAIL_TAKEN", decodeError(t, resp).Error.Code)
	})

	t.Run("token", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockUserService)
		mockSvc.On("Login", mock.Anything, "alice", "s3cret").Return("signed-token", nil).Once()

		app := newTestApp(Dependencies{Users: mockSvc})
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/auth/token", fiber.Map{
			"username": "alice",
			"password": "s3cret",
		}))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "signed-token", body["access_token"])
		assert.Equal(t, "bearer", body["token_type"])
	})

	t.Run("token bad credentials", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockUserService)
		mockSvc.On("Login", mock.Anything, "alice", "nope").
			Return("", service.ErrInvalidCredentials).Once()

		app := newTestApp(Dependencies{Users: mockSvc})
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/auth/token", fiber.Map{
			"username": "alice",
			"password": "nope",
		}))

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "INVALID_CREDENTIALS", decodeError(t, resp).Error.Code)
	})
}

func TestUserRoutesRequireAdmin(t *testing.T) {
	tokens := auth.NewManager(config.AuthConfig{Secret: "test-secret", TokenTTLMins: 60})
	adminToken, err := tokens.IssueToken("root")
	require.NoError(t, err)
	userToken, err := tokens.IssueToken("alice")
	require.NoError(t, err)

	mockSvc := new(serviceMocks.MockUserService)
	mockSvc.On("ByUsername", mock.Anything, "root").Return(&model.User{Username: "root", IsAdmin: true}, nil)
	mockSvc.On("ByUsername", mock.Anything, "alice").Return(&model.User{Username: "alice"}, nil)
	mockSvc.On("List", mock.Anything).Return([]model.User{{Username: "root"}}, nil)

	app := newTestApp(Dependencies{Users: mockSvc, Tokens: tokens})

	t.Run("admin allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+adminToken)
		resp, _ := app.Test(req)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("non-admin forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+userToken)
		resp, _ := app.Test(req)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("anonymous unauthorized", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/users", nil))
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestDataPondRoutes(t *testing.T) {
	tokens := auth.NewManager(config.AuthConfig{Secret: "test-secret", TokenTTLMins: 60})
	token, err := tokens.IssueToken("alice")
	require.NoError(t, err)

	users := new(serviceMocks.MockUserService)
	users.On("ByUsername", mock.Anything, "alice").Return(&model.User{Username: "alice"}, nil)

	t.Run("upload", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockDataPondService)
		mockSvc.On("Upload", mock.Anything, "alice", mock.Anything, "report.csv", mock.Anything, mock.Anything).
			Return(&model.PondFile{Username: "alice", Filename: "report.csv", Size: 11}, nil).Once()

		app := newTestApp(Dependencies{Users: users, DataPond: mockSvc, Tokens: tokens})

		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		part, _ := writer.CreateFormFile("file", "report.csv")
		part.Write([]byte("a,b,c\n1,2,3"))
		writer.Close()

		req := httptest.NewRequest(http.MethodPost, "/data-pond/files/upload", body)
		req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("download missing", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockDataPondService)
		mockSvc.On("Download", mock.Anything, "alice", "ghost.csv").
			Return(nil, nil, service.ErrFileNotFound).Once()

		app := newTestApp(Dependencies{Users: users, DataPond: mockSvc, Tokens: tokens})
		req := httptest.NewRequest(http.MethodGet, "/data-pond/files/download/ghost.csv", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("download streams content", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockDataPondService)
		meta := &model.PondFile{Username: "alice", Filename: "report.csv", Size: 3}
		mockSvc.On("Download", mock.Anything, "alice", "report.csv").
			Return(readCloser("abc"), meta, nil).Once()

		app := newTestApp(Dependencies{Users: users, DataPond: mockSvc, Tokens: tokens})
		req := httptest.NewRequest(http.MethodGet, "/data-pond/files/download/report.csv", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "report.csv")
	})

	t.Run("anonymous rejected", func(t *testing.T) {
		app := newTestApp(Dependencies{Users: users, DataPond: new(serviceMocks.MockDataPondService), Tokens: tokens})
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/data-pond/files/", nil))
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestRouting(t *testing.T) {
	app := newTestApp(Dependencies{})

	t.Run("not found route", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/non-existent", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/health", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		assert.Equal(t, "METHOD_NOT_ALLOWED", decodeError(t, resp).Error.Code)
	})
}

func readCloser(s string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(s))
}
