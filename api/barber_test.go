package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"barbershop/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBarberHandler_List(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `barbers`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at", "updated_at", "deleted_at"}).
			AddRow(1, "Agus", time.Now(), time.Now(), nil).
			AddRow(2, "Budi", time.Now(), time.Now(), nil))

	router := gin.New()
	router.Use(setAuthMiddleware(1, models.RoleOwner))
	router.GET("/barbers", NewBarberHandler().List)

	req := httptest.NewRequest("GET", "/barbers", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	barbers := resp["data"].([]interface{})
	assert.Len(t, barbers, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBarberHandler_Create(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `barbers`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.Use(setAuthMiddleware(1, models.RoleOwner))
	router.POST("/barbers", NewBarberHandler().Create)

	body := `{"name":"Agus"}`
	req := httptest.NewRequest("POST", "/barbers", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "创建成功", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBarberHandler_Create_BlankName(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.Use(setAuthMiddleware(1, models.RoleOwner))
	router.POST("/barbers", NewBarberHandler().Create)

	// 纯空白姓名在去除空格后拦截
	body := `{"name":"   "}`
	req := httptest.NewRequest("POST", "/barbers", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "理发师姓名不能为空")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBarberHandler_Update_NotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `barbers`").
		WillReturnRows(sqlmock.NewRows([]string{}))

	router := gin.New()
	router.Use(setAuthMiddleware(1, models.RoleOwner))
	router.PUT("/barbers/:id", NewBarberHandler().Update)

	body := `{"name":"Agus"}`
	req := httptest.NewRequest("PUT", "/barbers/999", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBarberHandler_Delete(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `barbers`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at", "updated_at", "deleted_at"}).
			AddRow(1, "Agus", time.Now(), time.Now(), nil))

	// 软删除，历史交易仍保留对该理发师的引用
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `barbers`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.Use(setAuthMiddleware(1, models.RoleOwner))
	router.DELETE("/barbers/:id", NewBarberHandler().Delete)

	req := httptest.NewRequest("DELETE", "/barbers/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "删除成功", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}
