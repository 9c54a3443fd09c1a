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

func TestTransactionHandler_Create(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 查询理发师
	mock.ExpectQuery("SELECT .* FROM `barbers`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at", "updated_at", "deleted_at"}).
			AddRow(1, "Agus", time.Now(), time.Now(), nil))

	// 查询服务项目价格
	mock.ExpectQuery("SELECT .* FROM `services`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "service_name", "price", "created_at", "updated_at", "deleted_at"}).
			AddRow(2, "Potong Rambut", 50000, time.Now(), time.Now(), nil))

	// INSERT transaction
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `transactions`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.Use(setAuthMiddleware(5, models.RoleCashier))
	router.POST("/transactions", NewTransactionHandler().Create)

	body := `{"barber_id":1,"service_id":2}`
	req := httptest.NewRequest("POST", "/transactions", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "交易录入成功", resp["message"])

	// 总价取价目表价格
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(50000), data["total_price"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionHandler_Create_ServiceAndProduct(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `barbers`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "deleted_at"}).
			AddRow(1, "Agus", nil))
	mock.ExpectQuery("SELECT .* FROM `services`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "service_name", "price", "deleted_at"}).
			AddRow(2, "Potong Rambut", 50000, nil))
	mock.ExpectQuery("SELECT .* FROM `products`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_name", "price", "deleted_at"}).
			AddRow(3, "Pomade", 35000, nil))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `transactions`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.Use(setAuthMiddleware(5, models.RoleCashier))
	router.POST("/transactions", NewTransactionHandler().Create)

	body := `{"barber_id":1,"service_id":2,"product_id":3}`
	req := httptest.NewRequest("POST", "/transactions", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(85000), data["total_price"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionHandler_Create_NoItemSelected(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.Use(setAuthMiddleware(5, models.RoleCashier))
	router.POST("/transactions", NewTransactionHandler().Create)

	// 服务和商品都没选，任何数据库操作之前就应被拦截
	body := `{"barber_id":1}`
	req := httptest.NewRequest("POST", "/transactions", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "请至少选择一项服务或商品")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionHandler_Create_BarberNotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `barbers`").
		WillReturnRows(sqlmock.NewRows([]string{}))

	router := gin.New()
	router.Use(setAuthMiddleware(5, models.RoleCashier))
	router.POST("/transactions", NewTransactionHandler().Create)

	body := `{"barber_id":999,"service_id":2}`
	req := httptest.NewRequest("POST", "/transactions", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "理发师不存在")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionHandler_List_CashierScoped(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	mock.MatchExpectationsInOrder(false)

	// 收银员只能看到自己录入的交易
	mock.ExpectQuery("SELECT count").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectQuery("SELECT .* FROM `transactions`").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "barber_id", "service_id", "product_id", "total_price", "transaction_date", "recorded_by"}).
			AddRow(1, 1, 2, nil, 50000, time.Now(), 5))

	// 预加载关联名称（商品为空不触发查询）
	mock.ExpectQuery("SELECT .* FROM `barbers`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Agus"))
	mock.ExpectQuery("SELECT .* FROM `services`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "service_name", "price"}).AddRow(2, "Potong Rambut", 50000))

	router := gin.New()
	router.Use(setAuthMiddleware(5, models.RoleCashier))
	router.GET("/transactions", NewTransactionHandler().List)

	req := httptest.NewRequest("GET", "/transactions?page=1&page_size=10", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["total"])

	list := data["list"].([]interface{})
	require.Len(t, list, 1)
	first := list[0].(map[string]interface{})
	barber := first["barber"].(map[string]interface{})
	assert.Equal(t, "Agus", barber["name"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionHandler_List_OwnerSeesAll(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	mock.MatchExpectationsInOrder(false)

	// 老板不过滤 recorded_by
	mock.ExpectQuery("SELECT count").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("SELECT .* FROM `transactions`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "barber_id", "total_price", "transaction_date", "recorded_by"}))

	router := gin.New()
	router.Use(setAuthMiddleware(1, models.RoleOwner))
	router.GET("/transactions", NewTransactionHandler().List)

	req := httptest.NewRequest("GET", "/transactions", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
