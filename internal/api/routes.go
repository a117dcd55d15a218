package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/tsa-item-checker/internal/api/middleware"
	"github.com/povarna/tsa-item-checker/internal/models"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Info endpoint
	ws.
		Route(ws.GET("").
			To(handler.Root).
			Doc("Service info").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(models.InfoResponse{}).
			Returns(200, "OK", models.InfoResponse{}))

	// Health endpoint
	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(models.HealthResponse{}).
			Returns(200, "OK", models.HealthResponse{}))

	ws.
		Route(ws.POST("check-item").
			To(handler.CheckItem).
			Doc("Check whether an item is allowed in carry-on or checked baggage").
			Metadata(restfulspec.KeyOpenAPITags, []string{"check"}).
			Reads(models.ItemCheckRequest{}).
			Writes(models.ItemCheckResult{}).
			Returns(200, "OK", models.ItemCheckResult{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}).
			Returns(504, "Gateway Timeout", middleware.ErrorResponse{}))

	container.Add(ws)
}
