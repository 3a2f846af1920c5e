package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestRouter_AddRoutes(t *testing.T) {
	var order []string
	track := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	rt := New(WithRoutes(Route{
		Path:   "/v1/items/:item_id",
		Method: http.MethodGet,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "handler")
			_, _ = w.Write([]byte(httprouter.ParamsFromContext(r.Context()).ByName("item_id")))
		}),
		Middlewares: []func(http.Handler) http.Handler{track("primeiro"), track("segundo")},
	}))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/items/42", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "42", rec.Body.String())
	assert.Equal(t, []string{"primeiro", "segundo", "handler"}, order)
}

func TestRouter_NotFound(t *testing.T) {
	rt := New()

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/nao-existe", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Endpoint not found"}`, rec.Body.String())
}
