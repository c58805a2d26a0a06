package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/stencil/internal/designer/render"
)

type previewRequest struct {
	// Source overrides the canonical preview data when the caller wants
	// to see a real invoice through the template.
	Source *render.Source `json:"source"`
}

// @Summary      Preview Template
// @Description  Render a template's layout against preview or supplied data
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        id      path   string          true   "Template ID"
// @Param        target  query  string          false  "Render Target (edit|print)"
// @Param        format  query  string          false  "Output (fragments|html)"
// @Param        request body   previewRequest  false  "Preview Request"
// @Router       /templates/{id}/preview [post]
func (s *Server) PreviewTemplate(c *gin.Context) {
	if !s.previewRate.Allow(c.ClientIP()) {
		AbortWithError(c, ErrTooManyRequests)
		return
	}

	target := render.Target(c.DefaultQuery("target", string(render.TargetEdit)))
	if target != render.TargetEdit && target != render.TargetPrint {
		AbortWithError(c, newValidationError("target", "invalid_target", "target must be edit or print"))
		return
	}

	var req previewRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			AbortWithError(c, invalidRequestError())
			return
		}
	}

	tmpl, err := s.templateSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	source := render.PreviewSource()
	if req.Source != nil {
		source = *req.Source
	}
	tokens := render.Resolve(source)
	s.metrics.ObserveRender(string(target))

	if c.DefaultQuery("format", "fragments") == "html" {
		html, err := s.htmlRender.EmitHTML(tmpl.Layout, tokens, target)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
		return
	}

	fragments := render.RenderDocument(tmpl.Layout, tokens, target)
	c.JSON(http.StatusOK, gin.H{"data": fragments})
}
