package handler

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/catalog/internal/application/book"
	"github.com/xiebiao/catalog/internal/interface/http/dto"
	"github.com/xiebiao/catalog/pkg/response"
	"github.com/xiebiao/catalog/pkg/validation"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	uc *appbook.UseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(uc *appbook.UseCase) *BookHandler {
	return &BookHandler{uc: uc}
}

// List 图书列表
// @Summary      图书列表
// @Description  所有有效图书，按标题排序
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]interface{} "{books: [...], ok: true}"
// @Failure      401 {object} response.ErrorBody
// @Router       /api/books [get]
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.uc.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "books", books)
}

// Create 创建图书
// @Summary      创建图书
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateBookRequest true "图书信息"
// @Success      201 {object} map[string]interface{} "{book: {...}, ok: true}"
// @Failure      400 {object} response.ErrorBody "参数错误或引用的作者/出版社/类型不存在"
// @Failure      401 {object} response.ErrorBody
// @Router       /api/books [post]
func (h *BookHandler) Create(c *gin.Context) {
	var req dto.CreateBookRequest
	if !validation.BindJSON(c, &req) {
		return
	}

	b, err := h.uc.Create(c.Request.Context(), appbook.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		IsAvailable: *req.IsAvailable,
		AuthorID:    req.AuthorID,
		EditorialID: req.EditorialID,
		GenreID:     req.GenreID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "book", b)
}

// Get 图书详情
// @Summary      图书详情
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Success      200 {object} map[string]interface{} "{book: {...}, ok: true}"
// @Failure      404 {object} response.ErrorBody "Book not found"
// @Router       /api/books/{id} [get]
func (h *BookHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	b, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "book", b)
}

// Update 部分更新图书
// @Summary      修改图书
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Param        request body dto.UpdateBookRequest true "需要修改的字段"
// @Success      200 {object} map[string]interface{} "{book: {...}, ok: true}"
// @Failure      400 {object} response.ErrorBody
// @Failure      404 {object} response.ErrorBody "Book not found"
// @Router       /api/books/{id} [patch]
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateBookRequest
	if !validation.BindJSON(c, &req) {
		return
	}

	b, err := h.uc.Update(c.Request.Context(), id, req.Patch())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "book", b)
}

// Delete 删除图书（软删除）
// @Summary      删除图书
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Success      200 {object} response.MessageBody
// @Failure      404 {object} response.ErrorBody "Book does not exist"
// @Router       /api/books/{id} [delete]
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	msg, err := h.uc.Delete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, msg)
}

// Search 条件搜索
// @Summary      搜索图书
// @Description  条件取交集；orderBy可重复，每个值为 field,direction（支持 author.name 等关联字段）
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        title       query string false "标题（不区分大小写的子串）"
// @Param        authorId    query int    false "作者ID"
// @Param        editorialId query int    false "出版社ID"
// @Param        genreId     query int    false "类型ID"
// @Param        isAvailable query string false "true为可借，其他值为不可借"
// @Param        orderBy     query []string false "排序" collectionFormat(multi)
// @Param        page        query int    false "页码，默认1"
// @Param        pageSize    query int    false "每页数量，默认10，最大100"
// @Success      200 {object} response.PageData
// @Failure      400 {object} response.ErrorBody "Unknown relation / Unknown sort field"
// @Router       /api/books/search [get]
func (h *BookHandler) Search(c *gin.Context) {
	var q dto.SearchBooksQuery
	if !validation.BindQuery(c, &q) {
		return
	}
	// axios等客户端把数组序列化为 orderBy[]=...
	orderBy := append(q.OrderBy, c.QueryArray("orderBy[]")...)
	page, pageSize := q.Pagination()

	res, err := h.uc.Search(c.Request.Context(), appbook.SearchInput{
		Title:       q.Title,
		AuthorID:    q.AuthorID,
		EditorialID: q.EditorialID,
		GenreID:     q.GenreID,
		IsAvailable: q.Available(),
		OrderBy:     orderBy,
		Page:        page,
		PageSize:    pageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPage(c, response.NewPageData(res.Books, res.Total, res.Page, res.PageSize))
}

// ExportCSV 导出CSV
// @Summary      导出图书CSV
// @Description  UTF-8（带BOM），列：ID,Título,Autor,Categoría,Editorial,Precio,Disponible
// @Tags         图书
// @Produce      text/csv
// @Security     BearerAuth
// @Success      200 {file} file
// @Router       /api/books/csv [get]
func (h *BookHandler) ExportCSV(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.uc.ExportCSV(c.Request.Context(), &buf); err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+appbook.CSVFilename)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
