package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"CareSphere/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testSecret = "test-secret"

func testAccount(role string) *models.Account {
	return &models.Account{
		ID:       primitive.NewObjectID(),
		FullName: "Asha Rao",
		Email:    "asha@example.com",
		Role:     role,
	}
}

func TestIssueAndParseToken(t *testing.T) {
	account := testAccount(models.RoleDoctor)
	token, err := IssueToken(testSecret, time.Hour, account)
	require.NoError(t, err)

	claims, err := ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, account.ID.Hex(), claims.AccountID)
	assert.Equal(t, models.RoleDoctor, claims.Role)
	assert.Equal(t, "asha@example.com", claims.Email)
}

func TestParseToken_Rejections(t *testing.T) {
	account := testAccount(models.RolePatient)

	expired, err := IssueToken(testSecret, -time.Minute, account)
	require.NoError(t, err)
	_, err = ParseToken(testSecret, expired)
	assert.Error(t, err, "expired token must be rejected")

	token, err := IssueToken(testSecret, time.Hour, account)
	require.NoError(t, err)
	_, err = ParseToken("other-secret", token)
	assert.Error(t, err, "wrong secret must be rejected")

	_, err = ParseToken(testSecret, "not-a-token")
	assert.Error(t, err)
}

func protectedRouter(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/", JWTAuth(testSecret))
	if len(roles) > 0 {
		group.Use(RequireRole(roles...))
	}
	group.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": c.GetString(ContextRole)})
	})
	return r
}

func doRequest(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuth(t *testing.T) {
	r := protectedRouter()

	w := doRequest(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code, "missing token")

	w = doRequest(r, "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code, "invalid token")

	token, err := IssueToken(testSecret, time.Hour, testAccount(models.RoleAdmin))
	require.NoError(t, err)
	w = doRequest(r, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), models.RoleAdmin)
}

func TestRequireRole(t *testing.T) {
	r := protectedRouter(models.RoleAdmin)

	patientToken, err := IssueToken(testSecret, time.Hour, testAccount(models.RolePatient))
	require.NoError(t, err)
	w := doRequest(r, patientToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminToken, err := IssueToken(testSecret, time.Hour, testAccount(models.RoleAdmin))
	require.NoError(t, err)
	w = doRequest(r, adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole_MultipleRoles(t *testing.T) {
	r := protectedRouter(models.RoleDoctor, models.RoleAdmin)

	doctorToken, err := IssueToken(testSecret, time.Hour, testAccount(models.RoleDoctor))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, doRequest(r, doctorToken).Code)

	receptionistToken, err := IssueToken(testSecret, time.Hour, testAccount(models.RoleReceptionist))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, doRequest(r, receptionistToken).Code)
}
