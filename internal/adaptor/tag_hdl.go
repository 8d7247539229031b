package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/AliHsynvv/airen-media-sub002/internal/dto/request"
	"github.com/AliHsynvv/airen-media-sub002/internal/usecase"
	"github.com/AliHsynvv/airen-media-sub002/pkg/utils"

	"go.uber.org/zap"
)

type TagHandler struct {
	service usecase.TagService
	log     *zap.Logger
}

func NewTagHandler(service usecase.TagService, log *zap.Logger) *TagHandler {
	return &TagHandler{
		service: service,
		log:     log.With(zap.String("handler", "tag")),
	}
}

// Create handles POST /api/tags (protected)
func (h *TagHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	tag, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create tag")
		return
	}

	utils.ResponseCreated(w, "success", tag)
}

// List handles GET /api/tags (public)
func (h *TagHandler) List(w http.ResponseWriter, r *http.Request) {
	tags, err := h.service.List(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "list tags")
		return
	}

	utils.ResponseSuccess(w, "success", tags)
}
