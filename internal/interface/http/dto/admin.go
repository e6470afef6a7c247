package dto

// AdminBookForm 后台图书表单(上架与修改共用)
// 设计说明:
// 1. price/stock以字符串接收,数值解析在应用层完成,
//    解析失败以字段级错误(40902)返回而非绑定错误
// 2. 标题/作者是否为空同样由应用层校验,保证一次提交
//    能拿到全部字段错误
type AdminBookForm struct {
	Title       string `json:"title" example:"Go程序设计语言"`
	Author      string `json:"author" example:"艾伦·多诺万"`
	Description string `json:"description" example:"Go语言圣经"`
	Price       string `json:"price" example:"99.00"` // 元,最多两位小数
	Stock       string `json:"stock" example:"50"`    // 非负整数
	CoverURL    string `json:"cover_url" binding:"omitempty,url,max=500" example:"https://example.com/gopl.jpg"`
}

// AdminListBooksRequest 后台图书列表请求
type AdminListBooksRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1" example:"1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100" example:"20"`
	Keyword  string `form:"keyword" binding:"omitempty,max=100"`
}
