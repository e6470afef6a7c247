package admin

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// BookForm 后台图书表单
// 设计说明:
// 1. Price/Stock以字符串接收,与表单提交的原始值保持一致
// 2. 解析与校验失败时逐字段返回错误提示,不产生任何写入
type BookForm struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
	Price       string `json:"price"` // 元,最多两位小数,如"59.00"
	Stock       string `json:"stock"` // 非负整数
	CoverURL    string `json:"cover_url"`
}

// parse 解析表单为领域值
// 数值解析失败先行拦截,标题/作者等规则由领域服务继续校验
func (f *BookForm) parse() (priceFen int64, stock int, err error) {
	fields := map[string]string{}

	priceFen, perr := parsePriceYuan(f.Price)
	if perr != nil {
		fields["price"] = "价格格式不正确"
	}

	stock, serr := strconv.Atoi(strings.TrimSpace(f.Stock))
	if serr != nil {
		fields["stock"] = "库存必须为整数"
	}

	if len(fields) > 0 {
		return 0, 0, apperrors.NewValidation(fields)
	}
	return priceFen, stock, nil
}

// parsePriceYuan 解析"元"字符串为"分"
// 接受"59"、"59.9"、"59.90"三种形式;拒绝负号以外的非法字符
func parsePriceYuan(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("价格为空")
	}

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	parts := strings.SplitN(s, ".", 2)
	yuan, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, err
	}

	var fen int64
	if len(parts) == 2 {
		frac := parts[1]
		if len(frac) > 2 {
			return 0, fmt.Errorf("价格最多两位小数")
		}
		for len(frac) < 2 {
			frac += "0"
		}
		fen, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, err
		}
	}

	total := yuan*100 + fen
	if neg {
		total = -total
	}
	return total, nil
}
