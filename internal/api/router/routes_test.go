package router

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCRUDHandler trả về tên operation được gọi làm response body
type stubCRUDHandler struct{}

func (h *stubCRUDHandler) reply(c fiber.Ctx, name string) error {
	return c.SendString(name)
}

func (h *stubCRUDHandler) InsertOne(c fiber.Ctx) error          { return h.reply(c, "insert-one") }
func (h *stubCRUDHandler) InsertMany(c fiber.Ctx) error         { return h.reply(c, "insert-many") }
func (h *stubCRUDHandler) Find(c fiber.Ctx) error               { return h.reply(c, "find") }
func (h *stubCRUDHandler) FindOne(c fiber.Ctx) error            { return h.reply(c, "find-one") }
func (h *stubCRUDHandler) FindOneById(c fiber.Ctx) error        { return h.reply(c, "find-by-id") }
func (h *stubCRUDHandler) FindManyByIds(c fiber.Ctx) error      { return h.reply(c, "find-by-ids") }
func (h *stubCRUDHandler) FindWithPagination(c fiber.Ctx) error { return h.reply(c, "paginate") }
func (h *stubCRUDHandler) UpdateOne(c fiber.Ctx) error          { return h.reply(c, "update-one") }
func (h *stubCRUDHandler) UpdateMany(c fiber.Ctx) error         { return h.reply(c, "update-many") }
func (h *stubCRUDHandler) UpdateById(c fiber.Ctx) error         { return h.reply(c, "update-by-id") }
func (h *stubCRUDHandler) FindOneAndUpdate(c fiber.Ctx) error   { return h.reply(c, "find-upd") }
func (h *stubCRUDHandler) DeleteOne(c fiber.Ctx) error          { return h.reply(c, "delete-one") }
func (h *stubCRUDHandler) DeleteMany(c fiber.Ctx) error         { return h.reply(c, "delete-many") }
func (h *stubCRUDHandler) DeleteById(c fiber.Ctx) error         { return h.reply(c, "delete-by-id") }
func (h *stubCRUDHandler) FindOneAndDelete(c fiber.Ctx) error   { return h.reply(c, "find-del") }
func (h *stubCRUDHandler) CountDocuments(c fiber.Ctx) error     { return h.reply(c, "count") }
func (h *stubCRUDHandler) Distinct(c fiber.Ctx) error           { return h.reply(c, "distinct") }
func (h *stubCRUDHandler) Upsert(c fiber.Ctx) error             { return h.reply(c, "upsert") }
func (h *stubCRUDHandler) UpsertMany(c fiber.Ctx) error         { return h.reply(c, "upsert-many") }
func (h *stubCRUDHandler) DocumentExists(c fiber.Ctx) error     { return h.reply(c, "exists") }

func fetch(t *testing.T, app *fiber.App, method, target string) string {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, target, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return string(body)
}

// Các domain router đăng ký CRUD trước route param (GET /:id, PUT /:id, ...).
// Test này chốt thứ tự đó: path tĩnh của CRUD phải vào đúng handler CRUD,
// không bị route param đăng ký sau swallow.
func TestCRUDRoutesNotShadowedByParamRoutes(t *testing.T) {
	app := fiber.New()
	r := NewRouter(app)
	v1 := app.Group(NewRoutePrefix().V1)

	prefix := "/things"
	r.RegisterCRUDRoutes(v1, prefix, &stubCRUDHandler{}, ReadWriteConfig)

	// Route param đăng ký sau, như trong các domain router
	RegisterRouteWithMiddleware(v1, prefix, "GET", "/:id", nil, func(c fiber.Ctx) error {
		return c.SendString("param:" + c.Params("id"))
	})
	RegisterRouteWithMiddleware(v1, prefix, "PUT", "/:id", nil, func(c fiber.Ctx) error {
		return c.SendString("param:" + c.Params("id"))
	})
	RegisterRouteWithMiddleware(v1, prefix, "DELETE", "/:id", nil, func(c fiber.Ctx) error {
		return c.SendString("param:" + c.Params("id"))
	})

	base := "/api/v1/things"
	cases := []struct {
		method string
		path   string
		want   string
	}{
		{http.MethodGet, "/find", "find"},
		{http.MethodGet, "/find-one", "find-one"},
		{http.MethodGet, "/find-with-pagination", "paginate"},
		{http.MethodGet, "/count", "count"},
		{http.MethodGet, "/exists", "exists"},
		{http.MethodPut, "/update-one", "update-one"},
		{http.MethodPut, "/update-many", "update-many"},
		{http.MethodPut, "/find-one-and-update", "find-upd"},
		{http.MethodDelete, "/delete-one", "delete-one"},
		{http.MethodDelete, "/delete-many", "delete-many"},
		{http.MethodDelete, "/find-one-and-delete", "find-del"},
	}
	for _, tc := range cases {
		got := fetch(t, app, tc.method, base+tc.path)
		assert.Equal(t, tc.want, got, "%s %s phải vào handler CRUD, không bị route param swallow", tc.method, tc.path)
	}

	// Route param vẫn match các segment không phải path CRUD
	assert.Equal(t, "param:abc123", fetch(t, app, http.MethodGet, base+"/abc123"))
}
