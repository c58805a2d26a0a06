package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/stencil/internal/designer/catalog"
	designerdomain "github.com/smallbiznis/stencil/internal/designer/domain"
	templatedomain "github.com/smallbiznis/stencil/internal/invoicetemplate/domain"
)

// @Summary      List Templates
// @Description  List invoice templates for the organization
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        name        query  string  false  "Name"
// @Param        type        query  string  false  "Template Type"
// @Param        is_default  query  bool    false  "Default Only"
// @Success      200  {object}  []templatedomain.ListItem
// @Router       /templates [get]
func (s *Server) ListTemplates(c *gin.Context) {
	var query templatedomain.ListRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.templateSvc.List(c.Request.Context(), query)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary      Create Template
// @Description  Create a new invoice template
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        request body templatedomain.CreateRequest true "Create Template Request"
// @Success      200  {object}  templatedomain.Response
// @Router       /templates [post]
func (s *Server) CreateTemplate(c *gin.Context) {
	var req templatedomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		AbortWithError(c, newValidationError("template_name", "required", "template name is required"))
		return
	}

	resp, err := s.templateSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary      Get Template
// @Description  Get one template with its full layout document
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Template ID"
// @Success      200  {object}  templatedomain.Response
// @Router       /templates/{id} [get]
func (s *Server) GetTemplateByID(c *gin.Context) {
	resp, err := s.templateSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary      Update Template
// @Description  Patch template metadata or replace its layout
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        id      path  string                        true  "Template ID"
// @Param        request body  templatedomain.UpdateRequest  true  "Update Template Request"
// @Success      200  {object}  templatedomain.Response
// @Router       /templates/{id} [patch]
func (s *Server) UpdateTemplate(c *gin.Context) {
	var req templatedomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.ID = c.Param("id")

	resp, err := s.templateSvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// @Summary      Delete Template
// @Tags         templates
// @Produce      json
// @Param        id   path      string  true  "Template ID"
// @Success      200  {object}  map[string]string
// @Router       /templates/{id} [delete]
func (s *Server) DeleteTemplate(c *gin.Context) {
	if err := s.templateSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary      Set Default Template
// @Description  Make this template the organization default
// @Tags         templates
// @Produce      json
// @Param        id   path      string  true  "Template ID"
// @Success      200  {object}  templatedomain.Response
// @Router       /templates/{id}/default [post]
func (s *Server) SetDefaultTemplate(c *gin.Context) {
	resp, err := s.templateSvc.SetDefault(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type duplicateTemplateRequest struct {
	Name string `json:"template_name"`
}

// @Summary      Duplicate Template
// @Description  Deep-copy a template's layout into a new record
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        id      path  string                    true  "Template ID"
// @Param        request body  duplicateTemplateRequest  true  "Duplicate Request"
// @Success      200  {object}  templatedomain.Response
// @Router       /templates/{id}/duplicate [post]
func (s *Server) DuplicateTemplate(c *gin.Context) {
	var req duplicateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.templateSvc.Duplicate(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type saveLayoutRequest struct {
	Layout designerdomain.TemplateLayout `json:"layout_data"`
}

// @Summary      Save Layout
// @Description  Replace the layout document for a template
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        id      path  string             true  "Template ID"
// @Param        request body  saveLayoutRequest  true  "Layout Document"
// @Success      200  {object}  map[string]string
// @Router       /templates/{id}/layout [post]
func (s *Server) SaveTemplateLayout(c *gin.Context) {
	var req saveLayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	if err := s.templateSvc.SaveLayout(c.Request.Context(), c.Param("id"), req.Layout); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type catalogEntry struct {
	Type        designerdomain.ComponentType `json:"type"`
	Label       string                       `json:"label"`
	DefaultSize designerdomain.Size          `json:"default_size"`
	HasFields   bool                         `json:"has_fields"`
	HasColumns  bool                         `json:"has_columns"`
	HasFreeText bool                         `json:"has_free_text"`
}

// @Summary      Instantiate Component
// @Description  Create a fresh component of the given kind with catalog defaults
// @Tags         catalog
// @Produce      json
// @Param        type  path  string  true  "Component Type"
// @Success      200  {object}  designerdomain.TemplateComponent
// @Router       /catalog/{type}/instantiate [post]
func (s *Server) InstantiateComponent(c *gin.Context) {
	comp, err := s.catalog.Instantiate(designerdomain.ComponentType(c.Param("type")))
	if err != nil {
		AbortWithError(c, newValidationError("type", "unknown_component_type", "component type is not in the catalog"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": comp})
}

// @Summary      List Component Catalog
// @Description  The palette of component kinds the designer supports
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  []catalogEntry
// @Router       /catalog [get]
func (s *Server) ListCatalog(c *gin.Context) {
	entries := make([]catalogEntry, 0, len(designerdomain.ComponentTypes))
	for _, t := range designerdomain.ComponentTypes {
		def, err := catalog.DefinitionFor(t)
		if err != nil {
			continue
		}
		entries = append(entries, catalogEntry{
			Type:        t,
			Label:       def.Label,
			DefaultSize: def.DefaultSize,
			HasFields:   def.Capabilities.HasFields,
			HasColumns:  def.Capabilities.HasColumns,
			HasFreeText: def.Capabilities.HasFreeText,
		})
	}
	c.JSON(http.StatusOK, gin.H{"data": entries})
}
