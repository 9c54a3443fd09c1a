package api

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"barbershop/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardHandler_GetStats(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	// 四个查询并发执行，到达顺序不固定
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `barbers`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `services`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `products`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(8))
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(total_price\\), 0\\) FROM `transactions`").
		WillReturnRows(sqlmock.NewRows([]string{"revenue"}).AddRow(185000))

	router := gin.New()
	router.Use(setAuthMiddleware(1, models.RoleOwner))
	router.GET("/dashboard", NewDashboardHandler().GetStats)

	req := httptest.NewRequest("GET", "/dashboard", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["total_barbers"])
	assert.Equal(t, float64(5), data["total_services"])
	assert.Equal(t, float64(8), data["total_products"])
	assert.Equal(t, float64(185000), data["today_revenue"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardHandler_GetStats_NoTransactionsToday(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `barbers`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `services`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `products`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	// 今日没有交易时 SUM 回落为 0
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(total_price\\), 0\\) FROM `transactions`").
		WillReturnRows(sqlmock.NewRows([]string{"revenue"}).AddRow(0))

	router := gin.New()
	router.Use(setAuthMiddleware(1, models.RoleOwner))
	router.GET("/dashboard", NewDashboardHandler().GetStats)

	req := httptest.NewRequest("GET", "/dashboard", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["today_revenue"])
	require.NoError(t, mock.ExpectationsWereMet())
}
