package handler

import (
	"github.com/gin-gonic/gin"

	apporder "github.com/xiebiao/bookshop/internal/application/order"
	"github.com/xiebiao/bookshop/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/response"
)

// OrderHandler 订单HTTP处理器
type OrderHandler struct {
	checkoutUseCase *apporder.CheckoutUseCase
	getOrderUseCase *apporder.GetOrderUseCase
}

// NewOrderHandler 创建订单处理器
func NewOrderHandler(
	checkoutUseCase *apporder.CheckoutUseCase,
	getOrderUseCase *apporder.GetOrderUseCase,
) *OrderHandler {
	return &OrderHandler{
		checkoutUseCase: checkoutUseCase,
		getOrderUseCase: getOrderUseCase,
	}
}

// Checkout 购物车结算
// @Summary      购物车结算
// @Description  将当前购物车整车结算为订单.整车是原子操作:任何一本书库存不足则整单失败,
// @Description  不产生订单也不扣库存;结算价取下单时刻的实时价格.成功后清空购物车.
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=apporder.CheckoutResponse} "结算成功"
// @Failure      200 {object} response.Response "购物车为空(code=40006)/库存不足(code=40001)"
// @Router       /checkout [post]
//
// 防超卖说明:
// 事务内先SELECT FOR UPDATE锁定全部库存行(按图书ID升序,避免死锁),
// 逐本检查库存,全部充足才创建订单并扣减;并发结算同一本书时,
// 后到的事务会阻塞在行锁上,拿到锁后看到的是已扣减的库存
func (h *OrderHandler) Checkout(c *gin.Context) {
	result, err := h.checkoutUseCase.Execute(c.Request.Context(), middleware.MustGetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetOrder 订单详情
// @Summary      订单详情
// @Description  查看订单的明细与总额;只能查看本人订单,他人订单返回40403
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Success      200 {object} response.Response{data=apporder.OrderDetail} "订单详情"
// @Failure      200 {object} response.Response "订单不存在或无权查看(code=40403)"
// @Router       /order/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID, err := parseIDParam(c)
	if err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "无效的订单ID")
		return
	}

	result, err := h.getOrderUseCase.Execute(c.Request.Context(), middleware.MustGetUserID(c), orderID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
