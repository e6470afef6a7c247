package dto

// ListBooksRequest HTTP图书列表请求(首页分页浏览)
type ListBooksRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1" example:"1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100" example:"8"`
	Keyword  string `form:"keyword" binding:"omitempty,max=100" example:"Go"`
	SortBy   string `form:"sort_by" binding:"omitempty,oneof=price_asc price_desc created_at_desc created_at_asc" example:"created_at_desc"`
}

// AddToCartRequest HTTP加入购物车请求
// 数量可省略,省略时按1件处理
type AddToCartRequest struct {
	Quantity int `json:"quantity" binding:"omitempty,min=1,max=999" example:"1"`
}
