package integration

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 后台管理集成测试
// 覆盖：管理员门禁、表单字段级校验、下架级联

// fieldsData 字段级校验错误的data载荷
type fieldsData struct {
	Fields map[string]string `json:"fields"`
}

// TestAdminAccessControl 测试后台门禁
func TestAdminAccessControl(t *testing.T) {
	skipUnlessIntegration(t)

	t.Run("未登录拒绝", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/admin/books/", "")
		assert.Equal(t, 40100, resp.Code)
	})

	t.Run("普通用户拒绝", func(t *testing.T) {
		_, token := RegisterTestUser(t, "admin_wannabe")
		resp := GetJSON(t, BaseURL+"/admin/books/", token)
		assert.Equal(t, 40104, resp.Code, "非管理员不应进入后台")
	})
}

// TestAdminBookForm 测试后台表单校验
func TestAdminBookForm(t *testing.T) {
	skipUnlessIntegration(t)
	adminEmail, adminPassword := adminCredentials(t)
	adminToken := LoginAs(t, adminEmail, adminPassword)

	t.Run("非法数值逐字段报错", func(t *testing.T) {
		form := map[string]interface{}{
			"title":  "《校验测试》",
			"author": "作者",
			"price":  "abc",
			"stock":  "-1.5",
		}

		resp := PostJSON(t, BaseURL+"/admin/books/add/", form, adminToken)
		assert.Equal(t, 40902, resp.Code)

		var data fieldsData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Contains(t, data.Fields, "price")
		assert.Contains(t, data.Fields, "stock")
	})

	t.Run("校验失败不修改现有记录", func(t *testing.T) {
		bookID := CreateTestBook(t, adminToken, "《改前》", "20.00", 3)

		badForm := map[string]interface{}{
			"title":  "《改后》",
			"author": "作者",
			"price":  "not-a-price",
			"stock":  "3",
		}
		resp := PostJSON(t, fmt.Sprintf("%s/admin/books/edit/%d/", BaseURL, bookID), badForm, adminToken)
		assert.Equal(t, 40902, resp.Code)

		// 前台详情仍是旧值
		detail := GetJSON(t, fmt.Sprintf("%s/book/%d", BaseURL, bookID), "")
		require.Equal(t, 0, detail.Code)
		assert.Contains(t, string(detail.Data), "《改前》")
	})
}

// TestAdminDeleteCascade 测试下架后前台与订单的表现
func TestAdminDeleteCascade(t *testing.T) {
	skipUnlessIntegration(t)
	adminEmail, adminPassword := adminCredentials(t)
	adminToken := LoginAs(t, adminEmail, adminPassword)

	_, token := RegisterTestUser(t, "cascade_buyer")

	bookID := CreateTestBook(t, adminToken, "《即将下架》", "15.00", 10)

	// 买家下单后管理员下架
	resp := AddToCart(t, token, bookID, 1)
	require.Equal(t, 0, resp.Code)
	checkoutResp := PostJSON(t, BaseURL+"/checkout", nil, token)
	require.Equal(t, 0, checkoutResp.Code, "结算失败: %s", checkoutResp.Message)

	var checkoutData CheckoutData
	require.NoError(t, json.Unmarshal(checkoutResp.Data, &checkoutData))

	deleteResp := PostJSON(t, fmt.Sprintf("%s/admin/books/delete/%d/", BaseURL, bookID), nil, adminToken)
	require.Equal(t, 0, deleteResp.Code, "下架失败: %s", deleteResp.Message)

	// 前台详情404
	detail := GetJSON(t, fmt.Sprintf("%s/book/%d", BaseURL, bookID), "")
	assert.Equal(t, 40402, detail.Code)

	// 订单仍可查，明细随级联删除一并消失，总额保留
	orderResp := GetJSON(t, fmt.Sprintf("%s/order/%d", BaseURL, checkoutData.OrderID), token)
	require.Equal(t, 0, orderResp.Code)

	var orderData OrderDetailData
	require.NoError(t, json.Unmarshal(orderResp.Data, &orderData))
	assert.Empty(t, orderData.Items, "下架级联删除订单明细")
	assert.Equal(t, int64(1500), orderData.Total, "订单总额不受下架影响")

	// 重复下架404
	again := PostJSON(t, fmt.Sprintf("%s/admin/books/delete/%d/", BaseURL, bookID), nil, adminToken)
	assert.Equal(t, 40402, again.Code)
}
