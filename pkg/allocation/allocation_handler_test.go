package allocation

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) (*mux.Router, func()) {
	teardown := setup(t)
	handler := NewAllocationHandler(service)

	router := mux.NewRouter()
	router.HandleFunc("/api/project-allocations", handler.GetAll).Methods("GET")
	router.HandleFunc("/api/project-allocations", handler.Create).Methods("POST")
	router.HandleFunc("/api/project-allocations/{id}/shift", handler.Shift).Methods("PATCH")
	router.HandleFunc("/api/project-allocations/{id}/resize", handler.Resize).Methods("PATCH")
	return router, teardown
}

func performRequest(router *mux.Router, method, target, body string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, target, strings.NewReader(body))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestAllocationHandler_Create(t *testing.T) {
	t.Run("should create an allocation and return 201", func(t *testing.T) {
		router, teardown := setupRouter(t)
		defer teardown()

		response := performRequest(router, "POST", "/api/project-allocations",
			`{"employeeId":1,"projectId":2,"startDate":"2026-03-02","endDate":"2026-03-13","hoursPerDay":6}`)

		require.Equal(t, http.StatusCreated, response.Code)
		var dto AllocationDTO
		require.NoError(t, json.Unmarshal(response.Body.Bytes(), &dto))
		assert.NotZero(t, dto.ID)
		assert.Equal(t, "active", dto.Status)
	})

	t.Run("should return 409 for an overlapping allocation", func(t *testing.T) {
		router, teardown := setupRouter(t)
		defer teardown()

		first := performRequest(router, "POST", "/api/project-allocations",
			`{"employeeId":1,"projectId":2,"startDate":"2026-03-02","endDate":"2026-03-13","hoursPerDay":6}`)
		require.Equal(t, http.StatusCreated, first.Code)

		second := performRequest(router, "POST", "/api/project-allocations",
			`{"employeeId":1,"projectId":2,"startDate":"2026-03-10","endDate":"2026-03-20","hoursPerDay":4}`)

		assert.Equal(t, http.StatusConflict, second.Code)
	})

	t.Run("should return 400 for a malformed date", func(t *testing.T) {
		router, teardown := setupRouter(t)
		defer teardown()

		response := performRequest(router, "POST", "/api/project-allocations",
			`{"employeeId":1,"projectId":2,"startDate":"03/02/2026","endDate":"2026-03-13","hoursPerDay":6}`)

		assert.Equal(t, http.StatusBadRequest, response.Code)
	})
}

func TestAllocationHandler_Shift(t *testing.T) {
	t.Run("should shift the allocation range", func(t *testing.T) {
		router, teardown := setupRouter(t)
		defer teardown()

		created := performRequest(router, "POST", "/api/project-allocations",
			`{"employeeId":1,"projectId":2,"startDate":"2026-03-02","endDate":"2026-03-13","hoursPerDay":6}`)
		require.Equal(t, http.StatusCreated, created.Code)
		var dto AllocationDTO
		require.NoError(t, json.Unmarshal(created.Body.Bytes(), &dto))

		response := performRequest(router, "PATCH",
			fmt.Sprintf("/api/project-allocations/%d/shift", dto.ID), `{"days":7}`)

		require.Equal(t, http.StatusOK, response.Code)
		var shifted AllocationDTO
		require.NoError(t, json.Unmarshal(response.Body.Bytes(), &shifted))
		assert.Equal(t, "2026-03-09", shifted.StartDate)
		assert.Equal(t, "2026-03-20", shifted.EndDate)
	})

	t.Run("should return 404 for an unknown allocation", func(t *testing.T) {
		router, teardown := setupRouter(t)
		defer teardown()

		response := performRequest(router, "PATCH", "/api/project-allocations/42/shift", `{"days":7}`)

		assert.Equal(t, http.StatusNotFound, response.Code)
	})
}

func TestAllocationHandler_Resize(t *testing.T) {
	t.Run("should move one edge of the allocation", func(t *testing.T) {
		router, teardown := setupRouter(t)
		defer teardown()

		created := performRequest(router, "POST", "/api/project-allocations",
			`{"employeeId":1,"projectId":2,"startDate":"2026-03-02","endDate":"2026-03-13","hoursPerDay":6}`)
		require.Equal(t, http.StatusCreated, created.Code)
		var dto AllocationDTO
		require.NoError(t, json.Unmarshal(created.Body.Bytes(), &dto))

		response := performRequest(router, "PATCH",
			fmt.Sprintf("/api/project-allocations/%d/resize", dto.ID),
			`{"edge":"end","date":"2026-03-27"}`)

		require.Equal(t, http.StatusOK, response.Code)
		var resized AllocationDTO
		require.NoError(t, json.Unmarshal(response.Body.Bytes(), &resized))
		assert.Equal(t, "2026-03-02", resized.StartDate)
		assert.Equal(t, "2026-03-27", resized.EndDate)
	})

	t.Run("should return 400 when the resize inverts the range", func(t *testing.T) {
		router, teardown := setupRouter(t)
		defer teardown()

		created := performRequest(router, "POST", "/api/project-allocations",
			`{"employeeId":1,"projectId":2,"startDate":"2026-03-02","endDate":"2026-03-13","hoursPerDay":6}`)
		require.Equal(t, http.StatusCreated, created.Code)
		var dto AllocationDTO
		require.NoError(t, json.Unmarshal(created.Body.Bytes(), &dto))

		response := performRequest(router, "PATCH",
			fmt.Sprintf("/api/project-allocations/%d/resize", dto.ID),
			`{"edge":"end","date":"2026-02-20"}`)

		assert.Equal(t, http.StatusBadRequest, response.Code)
	})
}

func TestAllocationHandler_GetAll(t *testing.T) {
	t.Run("should filter by employee and project", func(t *testing.T) {
		router, teardown := setupRouter(t)
		defer teardown()

		first := performRequest(router, "POST", "/api/project-allocations",
			`{"employeeId":1,"projectId":2,"startDate":"2026-03-02","endDate":"2026-03-13","hoursPerDay":6}`)
		require.Equal(t, http.StatusCreated, first.Code)
		second := performRequest(router, "POST", "/api/project-allocations",
			`{"employeeId":9,"projectId":3,"startDate":"2026-03-02","endDate":"2026-03-13","hoursPerDay":4}`)
		require.Equal(t, http.StatusCreated, second.Code)

		response := performRequest(router, "GET", "/api/project-allocations?employeeId=9", "")

		require.Equal(t, http.StatusOK, response.Code)
		var dtos []AllocationDTO
		require.NoError(t, json.Unmarshal(response.Body.Bytes(), &dtos))
		require.Len(t, dtos, 1)
		assert.Equal(t, 9, dtos[0].EmployeeID)
	})
}
