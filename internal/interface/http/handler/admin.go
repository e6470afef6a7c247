package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appadmin "github.com/xiebiao/bookshop/internal/application/admin"
	"github.com/xiebiao/bookshop/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/response"
)

// AdminHandler 后台图书管理HTTP处理器
// 所有接口由RequireAuth+RequireStaff双重门禁保护
type AdminHandler struct {
	manageBooksUseCase *appadmin.ManageBooksUseCase
}

// NewAdminHandler 创建后台处理器
func NewAdminHandler(manageBooksUseCase *appadmin.ManageBooksUseCase) *AdminHandler {
	return &AdminHandler{manageBooksUseCase: manageBooksUseCase}
}

// Redirect 后台入口跳转
// @Summary      后台入口
// @Description  重定向到图书管理列表
// @Tags         后台
// @Success      302 {string} string "跳转到/admin/books/"
// @Router       /admin/ [get]
func (h *AdminHandler) Redirect(c *gin.Context) {
	c.Redirect(http.StatusFound, "/admin/books/")
}

// ListBooks 后台图书列表
// @Summary      后台图书列表
// @Description  分页展示全部图书,含库存(供管理页展示)
// @Tags         后台
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "页码"
// @Param        page_size query int false "每页数量"
// @Param        keyword query string false "搜索关键词"
// @Success      200 {object} response.Response{data=appadmin.AdminBookListResponse} "图书列表"
// @Failure      200 {object} response.Response "无权限(code=40104)"
// @Router       /admin/books/ [get]
func (h *AdminHandler) ListBooks(c *gin.Context) {
	var req dto.AdminListBooksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.manageBooksUseCase.List(c.Request.Context(), req.Page, req.PageSize, req.Keyword)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// CreateBook 上架新书
// @Summary      上架新书
// @Description  表单非法时返回字段级错误(code=40902,data.fields逐字段提示),不产生任何写入
// @Tags         后台
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.AdminBookForm true "图书表单"
// @Success      200 {object} response.Response{data=appadmin.AdminBookItem} "上架成功"
// @Failure      200 {object} response.Response "表单校验失败(code=40902)"
// @Router       /admin/books/add/ [post]
func (h *AdminHandler) CreateBook(c *gin.Context) {
	var form dto.AdminBookForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.manageBooksUseCase.Create(c.Request.Context(), toBookForm(form))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// UpdateBook 修改图书
// @Summary      修改图书
// @Description  校验失败时现有记录保持原样
// @Tags         后台
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Param        request body dto.AdminBookForm true "图书表单"
// @Success      200 {object} response.Response{data=appadmin.AdminBookItem} "修改成功"
// @Failure      200 {object} response.Response "图书不存在(code=40402)/表单校验失败(code=40902)"
// @Router       /admin/books/edit/{id}/ [post]
func (h *AdminHandler) UpdateBook(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "无效的图书ID")
		return
	}

	var form dto.AdminBookForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.manageBooksUseCase.Update(c.Request.Context(), id, toBookForm(form))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// DeleteBook 下架图书
// @Summary      下架图书
// @Description  硬删除图书并级联清理订单明细中的引用,无确认步骤
// @Tags         后台
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response "删除成功"
// @Failure      200 {object} response.Response "图书不存在(code=40402)"
// @Router       /admin/books/delete/{id}/ [post]
func (h *AdminHandler) DeleteBook(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "无效的图书ID")
		return
	}

	if err := h.manageBooksUseCase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"id": id})
}

func toBookForm(form dto.AdminBookForm) appadmin.BookForm {
	return appadmin.BookForm{
		Title:       form.Title,
		Author:      form.Author,
		Description: form.Description,
		Price:       form.Price,
		Stock:       form.Stock,
		CoverURL:    form.CoverURL,
	}
}
