package response

import (
	"github.com/AliHsynvv/airen-media-sub002/internal/data/entity"
)

type TagResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func TagToResponse(tag *entity.Tag) TagResponse {
	return TagResponse{
		ID:   tag.ID.String(),
		Name: tag.Name,
		Slug: tag.Slug,
	}
}
