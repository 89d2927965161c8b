package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// respondWithError translates a service error into a status code and JSON body.
// Unexpected and persistence errors are logged and never leaked to the client.
func respondWithError(ctx *gin.Context, err error) {
	var validation *services.ValidationError
	var notFound *services.NotFoundError
	var persistence *services.PersistenceError

	switch {
	case errors.As(err, &validation):
		ctx.JSON(http.StatusBadRequest, models.NewValidationErrorResponse(validation.Messages...))
	case errors.As(err, &notFound):
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse(notFound.Resource+" not found"))
	case errors.As(err, &persistence):
		log.WithFields(log.Fields{
			"request_id": ctx.GetString("requestID"),
			"op":         persistence.Op,
		}).WithError(persistence.Err).Error("Persistence failure, transaction rolled back")
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse(models.MsgInternalServerError))
	default:
		log.WithField("request_id", ctx.GetString("requestID")).
			WithError(err).Error("Unexpected error while handling request")
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse(models.MsgInternalServerError))
	}
}

// pathID parses the :id path parameter. Routes only exist for integer ids, so
// a malformed id answers with the resource's not found body.
func pathID(ctx *gin.Context, notFoundMessage string) (int, bool) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse(notFoundMessage))
		return 0, false
	}
	return id, true
}
