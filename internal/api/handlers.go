package api

import (
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Akshat3144/safespace-api/internal/storage"
)

type Handler struct {
	store  storage.Storage
	logger *logrus.Logger
}

func NewHandler(store storage.Storage, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	useJSONFieldNames()

	return &Handler{
		store:  store,
		logger: logger,
	}
}

// parseID reads an integer path parameter. It answers 400 and returns
// false when the value is not an integer.
func (h *Handler) parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return 0, false
	}
	return id, true
}

// serverError logs the cause and answers with a message that hides it.
func (h *Handler) serverError(c *gin.Context, err error, message string) {
	h.logger.WithError(err).WithField("request_id", c.GetString(requestIDKey)).Error(message)
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": message})
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}
