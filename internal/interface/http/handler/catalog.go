package handler

import (
	"github.com/gin-gonic/gin"

	appcatalog "github.com/xiebiao/catalog/internal/application/catalog"
	"github.com/xiebiao/catalog/internal/domain/catalog"
	"github.com/xiebiao/catalog/internal/interface/http/dto"
	"github.com/xiebiao/catalog/pkg/response"
	"github.com/xiebiao/catalog/pkg/validation"
)

// CatalogHandler 作者/出版社/类型的HTTP处理器
// 一个实例对应一种资源，响应的key取自资源的命名信息
type CatalogHandler struct {
	kind catalog.Kind
	meta catalog.Meta
	uc   *appcatalog.UseCase
}

// NewCatalogHandler 创建指定资源类型的处理器
func NewCatalogHandler(kind catalog.Kind, uc *appcatalog.UseCase) *CatalogHandler {
	return &CatalogHandler{kind: kind, meta: kind.Meta(), uc: uc}
}

// Kind 资源类型
func (h *CatalogHandler) Kind() catalog.Kind {
	return h.kind
}

// List 列表
// @Summary      作者/出版社/类型列表
// @Tags         目录
// @Produce      json
// @Security     BearerAuth
// @Param        resource path string true "authors | editorials | genres"
// @Success      200 {object} map[string]interface{} "{authors: [...], ok: true}"
// @Router       /api/{resource} [get]
func (h *CatalogHandler) List(c *gin.Context) {
	items, err := h.uc.List(c.Request.Context(), h.kind)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, h.meta.Plural, items)
}

// Create 创建
// @Summary      创建作者/出版社/类型
// @Description  名称在所有记录（包括已删除的）中唯一
// @Tags         目录
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        resource path string true "authors | editorials | genres"
// @Param        request body dto.NameRequest true "名称"
// @Success      201 {object} map[string]interface{} "{author: {...}, ok: true}"
// @Failure      400 {object} response.ErrorBody
// @Failure      409 {object} response.ErrorBody "Author already exists"
// @Router       /api/{resource} [post]
func (h *CatalogHandler) Create(c *gin.Context) {
	var req dto.NameRequest
	if !validation.BindJSON(c, &req) {
		return
	}

	item, err := h.uc.Create(c.Request.Context(), h.kind, req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, h.meta.Singular, item)
}

// Get 详情
// @Summary      作者/出版社/类型详情
// @Tags         目录
// @Produce      json
// @Security     BearerAuth
// @Param        resource path string true "authors | editorials | genres"
// @Param        id path int true "ID"
// @Success      200 {object} map[string]interface{} "{author: {...}, ok: true}"
// @Failure      404 {object} response.ErrorBody "Author not found"
// @Router       /api/{resource}/{id} [get]
func (h *CatalogHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	item, err := h.uc.Get(c.Request.Context(), h.kind, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, h.meta.Singular, item)
}

// Update 修改名称
// @Summary      修改作者/出版社/类型
// @Tags         目录
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        resource path string true "authors | editorials | genres"
// @Param        id path int true "ID"
// @Param        request body dto.NameRequest true "新名称"
// @Success      200 {object} map[string]interface{} "{author: {...}, ok: true}"
// @Failure      404 {object} response.ErrorBody "Author not found"
// @Failure      409 {object} response.ErrorBody "Already exists author with this name"
// @Router       /api/{resource}/{id} [patch]
func (h *CatalogHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.NameRequest
	if !validation.BindJSON(c, &req) {
		return
	}

	item, err := h.uc.Rename(c.Request.Context(), h.kind, id, req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, h.meta.Singular, item)
}

// Delete 删除（软删除）
// @Summary      删除作者/出版社/类型
// @Tags         目录
// @Produce      json
// @Security     BearerAuth
// @Param        resource path string true "authors | editorials | genres"
// @Param        id path int true "ID"
// @Success      200 {object} response.MessageBody
// @Failure      404 {object} response.ErrorBody "Author does not exist"
// @Router       /api/{resource}/{id} [delete]
func (h *CatalogHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	msg, err := h.uc.Delete(c.Request.Context(), h.kind, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, msg)
}
