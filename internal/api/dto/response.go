package dto

// Response 统一返回结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// PageDTO 分页参数
type PageDTO struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}
