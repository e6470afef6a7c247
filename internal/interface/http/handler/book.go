package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/bookshop/internal/application/book"
	"github.com/xiebiao/bookshop/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/response"
)

// BookHandler 图书HTTP处理器(商城前台)
// 设计说明:
// 1. Handler只负责HTTP相关的事情:解析请求、调用应用层、返回响应
// 2. 不包含业务逻辑(业务逻辑在domain和application层)
// 3. 首页与详情页无需登录即可访问
type BookHandler struct {
	listBooksUseCase *appbook.ListBooksUseCase
	getBookUseCase   *appbook.GetBookUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	listBooksUseCase *appbook.ListBooksUseCase,
	getBookUseCase *appbook.GetBookUseCase,
) *BookHandler {
	return &BookHandler{
		listBooksUseCase: listBooksUseCase,
		getBookUseCase:   getBookUseCase,
	}
}

// Home 商城首页(分页图书列表)
// @Summary      商城首页
// @Description  分页展示在售图书,默认每页8本,按上架时间倒序
// @Tags         商城
// @Produce      json
// @Param        page query int false "页码(从1开始)"
// @Param        page_size query int false "每页数量"
// @Param        keyword query string false "搜索关键词"
// @Success      200 {object} response.Response{data=appbook.ListBooksResponse} "图书列表"
// @Router       / [get]
func (h *BookHandler) Home(c *gin.Context) {
	var req dto.ListBooksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.listBooksUseCase.Execute(c.Request.Context(), appbook.ListBooksRequest{
		Page:     req.Page,
		PageSize: req.PageSize,
		Keyword:  req.Keyword,
		SortBy:   req.SortBy,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Detail 图书详情
// @Summary      图书详情
// @Description  展示单本图书的完整信息,含库存状态
// @Tags         商城
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{data=appbook.BookDetail} "图书详情"
// @Failure      200 {object} response.Response "图书不存在(code=40402)"
// @Router       /book/{id} [get]
func (h *BookHandler) Detail(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "无效的图书ID")
		return
	}

	result, err := h.getBookUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// parseIDParam 解析路径中的:id参数
func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
