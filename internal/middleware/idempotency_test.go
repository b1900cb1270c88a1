package middleware_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Ashokvp-05/hr-management-system-sub001/internal/middleware"
)

// setUser stands in for AuthMiddleware, which runs before Idempotency
// on the real routes.
func setUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func postWithKey(router *gin.Engine, idempKey string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/leaves/request", nil)
	req.Header.Set("Idempotency-Key", idempKey)
	router.ServeHTTP(w, req)
	return w
}

func TestIdempotency(t *testing.T) {
	t.Run("cache key carries the authenticated user", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		userID := uuid.New().String()

		router := gin.New()
		router.POST("/leaves/request",
			setUser(userID),
			middleware.Idempotency(rdb),
			func(c *gin.Context) { c.JSON(http.StatusCreated, gin.H{"ok": true}) },
		)

		key := fmt.Sprintf("idemp:/leaves/request:%s:retry-1", userID)
		mock.ExpectGet(key).RedisNil()
		mock.ExpectSetNX(key+":lock", "locked", 30*time.Second).SetVal(true)

		w := postWithKey(router, "retry-1")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("same key from different users does not collide", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		userA := uuid.New().String()
		userB := uuid.New().String()

		handler := func(c *gin.Context) {
			c.JSON(http.StatusCreated, gin.H{"user": c.GetString("user_id")})
		}
		routerA := gin.New()
		routerA.POST("/leaves/request", setUser(userA), middleware.Idempotency(rdb), handler)
		routerB := gin.New()
		routerB.POST("/leaves/request", setUser(userB), middleware.Idempotency(rdb), handler)

		keyA := fmt.Sprintf("idemp:/leaves/request:%s:shared-key", userA)
		keyB := fmt.Sprintf("idemp:/leaves/request:%s:shared-key", userB)
		mock.ExpectGet(keyA).RedisNil()
		mock.ExpectSetNX(keyA+":lock", "locked", 30*time.Second).SetVal(true)
		mock.ExpectGet(keyB).RedisNil()
		mock.ExpectSetNX(keyB+":lock", "locked", 30*time.Second).SetVal(true)

		wA := postWithKey(routerA, "shared-key")
		wB := postWithKey(routerB, "shared-key")

		assert.Equal(t, http.StatusCreated, wA.Code)
		assert.Equal(t, http.StatusCreated, wB.Code)

		var gotB map[string]string
		assert.NoError(t, json.Unmarshal(wB.Body.Bytes(), &gotB))
		assert.Equal(t, userB, gotB["user"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("replays the user's own cached response", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		userID := uuid.New().String()

		router := gin.New()
		router.POST("/leaves/request",
			setUser(userID),
			middleware.Idempotency(rdb),
			func(c *gin.Context) {
				t.Error("handler must not run on a cached replay")
			},
		)

		key := fmt.Sprintf("idemp:/leaves/request:%s:retry-1", userID)
		mock.ExpectGet(key).SetVal(`{"id":"cached-leave"}`)

		w := postWithKey(router, "retry-1")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "cached-leave")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("concurrent retry while locked gets 409", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		userID := uuid.New().String()

		router := gin.New()
		router.POST("/leaves/request",
			setUser(userID),
			middleware.Idempotency(rdb),
			func(c *gin.Context) {
				t.Error("handler must not run while the first attempt holds the lock")
			},
		)

		key := fmt.Sprintf("idemp:/leaves/request:%s:retry-1", userID)
		mock.ExpectGet(key).RedisNil()
		mock.ExpectSetNX(key+":lock", "locked", 30*time.Second).SetVal(false)

		w := postWithKey(router, "retry-1")

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no key passes through untouched", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()

		router := gin.New()
		router.POST("/leaves/request",
			setUser(uuid.New().String()),
			middleware.Idempotency(rdb),
			func(c *gin.Context) { c.JSON(http.StatusCreated, gin.H{"ok": true}) },
		)

		w := postWithKey(router, "")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
