package httpresp

import "github.com/gin-gonic/gin"

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

// Envelope carries a payload plus an optional non-blocking warning. A
// warning means the request was applied locally but the external mirror
// is out of sync — distinct from a failure, which never reaches here.
type Envelope struct {
	Data    any    `json:"data"`
	Warning string `json:"warning,omitempty"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func Created(c *gin.Context, data any, warning string) {
	c.JSON(201, Envelope{Data: data, Warning: warning})
}

func OKWarn(c *gin.Context, data any, warning string) {
	c.JSON(200, Envelope{Data: data, Warning: warning})
}

func List[T any](c *gin.Context, data []T) {
	c.JSON(200, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}
