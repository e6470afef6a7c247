package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	appcart "github.com/xiebiao/bookshop/internal/application/cart"
	"github.com/xiebiao/bookshop/internal/interface/http/dto"
	"github.com/xiebiao/bookshop/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/response"
)

// CartHandler 购物车HTTP处理器
// 所有接口都要求登录(RequireAuth),购物车按用户隔离
type CartHandler struct {
	addItemUseCase    *appcart.AddItemUseCase
	removeItemUseCase *appcart.RemoveItemUseCase
	viewCartUseCase   *appcart.ViewCartUseCase
}

// NewCartHandler 创建购物车处理器
func NewCartHandler(
	addItemUseCase *appcart.AddItemUseCase,
	removeItemUseCase *appcart.RemoveItemUseCase,
	viewCartUseCase *appcart.ViewCartUseCase,
) *CartHandler {
	return &CartHandler{
		addItemUseCase:    addItemUseCase,
		removeItemUseCase: removeItemUseCase,
		viewCartUseCase:   viewCartUseCase,
	}
}

// AddToCart 加入购物车
// @Summary      加入购物车
// @Description  将图书加入当前用户的购物车,重复加入时叠加数量;加入时不校验库存
// @Tags         购物车
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Param        request body dto.AddToCartRequest false "数量(省略按1件)"
// @Success      200 {object} response.Response{data=appcart.AddItemResponse} "加入成功"
// @Failure      200 {object} response.Response "图书不存在(code=40402)"
// @Router       /add-to-cart/{id} [post]
func (h *CartHandler) AddToCart(c *gin.Context) {
	bookID, err := parseIDParam(c)
	if err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "无效的图书ID")
		return
	}

	// 请求体可为空(按1件处理)
	var req dto.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.addItemUseCase.Execute(c.Request.Context(), appcart.AddItemRequest{
		UserID:   middleware.MustGetUserID(c),
		BookID:   bookID,
		Quantity: req.Quantity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ViewCart 查看购物车
// @Summary      查看购物车
// @Description  按实时价格展示购物车内容与总计
// @Tags         购物车
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=appcart.ViewCartResponse} "购物车内容"
// @Router       /cart [get]
func (h *CartHandler) ViewCart(c *gin.Context) {
	result, err := h.viewCartUseCase.Execute(c.Request.Context(), middleware.MustGetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// RemoveFromCart 移除购物车条目
// @Summary      移除购物车条目
// @Description  从购物车中整条移除某本图书;条目不存在时幂等成功
// @Tags         购物车
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{data=appcart.RemoveItemResponse} "移除成功"
// @Router       /remove-from-cart/{id} [post]
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	bookID, err := parseIDParam(c)
	if err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "无效的图书ID")
		return
	}

	result, err := h.removeItemUseCase.Execute(c.Request.Context(), middleware.MustGetUserID(c), bookID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
