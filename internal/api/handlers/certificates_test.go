package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dsyorkd/cert-agent/internal/errors"
	"github.com/dsyorkd/cert-agent/internal/logger"
	"github.com/dsyorkd/cert-agent/internal/models"
	"github.com/dsyorkd/cert-agent/internal/services"
)

func certificatesRouter(st *mockStore) *gin.Engine {
	lifecycle := services.NewLifecycle(st, logger.Default())
	handler := NewCertificatesHandler(lifecycle, logger.Default())

	router := gin.New()
	router.GET("/certificates", handler.List)
	router.GET("/certificates/expiring", handler.Expiring)
	router.GET("/certificates/:id", handler.Get)
	return router
}

func TestCertificatesHandler_List(t *testing.T) {
	t.Run("should list all records", func(t *testing.T) {
		st := new(mockStore)
		st.On("List", mock.Anything, models.CertificateStatus("")).Return([]*models.CertificateRecord{
			{ID: "a", Status: models.CertificateStatusActive},
			{ID: "b", Status: models.CertificateStatusRevoked},
		}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/certificates", nil)
		certificatesRouter(st).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Certificates []*models.CertificateRecord `json:"certificates"`
			Count        int                         `json:"count"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 2, response.Count)
		assert.Len(t, response.Certificates, 2)
	})

	t.Run("should filter by status", func(t *testing.T) {
		st := new(mockStore)
		st.On("List", mock.Anything, models.CertificateStatusActive).Return([]*models.CertificateRecord{
			{ID: "a", Status: models.CertificateStatusActive},
		}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/certificates?status=active", nil)
		certificatesRouter(st).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		st.AssertExpectations(t)
	})

	t.Run("should reject unknown status values", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/certificates?status=frozen", nil)
		certificatesRouter(new(mockStore)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCertificatesHandler_Get(t *testing.T) {
	t.Run("should return a single record", func(t *testing.T) {
		st := new(mockStore)
		st.On("Get", mock.Anything, "cert-1").Return(&models.CertificateRecord{
			ID:         "cert-1",
			CommonName: "svc.internal",
			Status:     models.CertificateStatusActive,
		}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/certificates/cert-1", nil)
		certificatesRouter(st).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var record models.CertificateRecord
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
		assert.Equal(t, "svc.internal", record.CommonName)
	})

	t.Run("should return 404 for unknown ids", func(t *testing.T) {
		st := new(mockStore)
		st.On("Get", mock.Anything, "missing").
			Return(nil, errors.Wrapf(errors.ErrNotFound, "certificate missing"))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/certificates/missing", nil)
		certificatesRouter(st).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCertificatesHandler_Expiring(t *testing.T) {
	t.Run("should return records inside the window", func(t *testing.T) {
		st := new(mockStore)
		st.On("List", mock.Anything, models.CertificateStatusActive).Return([]*models.CertificateRecord{
			{ID: "soon", Status: models.CertificateStatusActive, ExpiresAt: time.Now().Add(3 * 24 * time.Hour).Unix()},
			{ID: "later", Status: models.CertificateStatusActive, ExpiresAt: time.Now().Add(300 * 24 * time.Hour).Unix()},
		}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/certificates/expiring?days=7", nil)
		certificatesRouter(st).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Certificates []*models.CertificateRecord `json:"certificates"`
			Count        int                         `json:"count"`
			WithinDays   int                         `json:"within_days"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 1, response.Count)
		assert.Equal(t, 7, response.WithinDays)
		assert.Equal(t, "soon", response.Certificates[0].ID)
	})

	t.Run("should reject a non-positive window", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/certificates/expiring?days=0", nil)
		certificatesRouter(new(mockStore)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
