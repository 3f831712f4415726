package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/wbonfim/DeliveryApp/configs"
	"github.com/wbonfim/DeliveryApp/entity"
	"github.com/wbonfim/DeliveryApp/routes"
)

// newTestRouter wires the full HTTP surface against an in-memory database.
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, configs.Migrate(db))

	cfg := &configs.Config{
		Env:       "test",
		JWTSecret: "test-secret",
		JWTTTL:    time.Hour,
	}
	r := gin.New()
	routes.Register(r, db, cfg)
	return r, db
}

type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func registerAndLogin(t *testing.T, r *gin.Engine, username string) string {
	t.Helper()

	w, _ := doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"username": username,
		"email":    username + "@example.com",
		"password": "segredo1",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, env := doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"username": username,
		"password": "segredo1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token
}

func seedRestaurantWithProduct(t *testing.T, db *gorm.DB, fee, minimum, price int64) (*entity.Restaurant, *entity.Product) {
	t.Helper()

	owner := &entity.User{
		Username: "owner-" + time.Now().Format("150405.000000000"),
		Email:    "owner-" + time.Now().Format("150405.000000000") + "@example.com",
		Password: "x",
		UserType: entity.UserTypeRestaurant,
		IsActive: true,
	}
	require.NoError(t, db.Create(owner).Error)

	rest := &entity.Restaurant{
		Name:         "Cantina",
		Street:       "Av. Paulista",
		Number:       "1500",
		Neighborhood: "Bela Vista",
		City:         "Sao Paulo",
		State:        "SP",
		ZipCode:      "01310-000",
		IsOnline:     true,
		IsActive:     true,
		DeliveryFee:  fee,
		MinimumOrder: minimum,
		OwnerID:      owner.ID,
	}
	require.NoError(t, db.Create(rest).Error)

	p := &entity.Product{
		Name:         "Marmita",
		Price:        price,
		IsAvailable:  true,
		IsActive:     true,
		RestaurantID: rest.ID,
	}
	require.NoError(t, db.Create(p).Error)
	return rest, p
}
