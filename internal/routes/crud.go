package routes

import (
	"github.com/gin-gonic/gin"
)

// CRUDHandler is the page set every catalogue resource offers.
type CRUDHandler interface {
	List(c *gin.Context)
	Detail(c *gin.Context)
	CreateForm(c *gin.Context)
	Create(c *gin.Context)
	UpdateForm(c *gin.Context)
	Update(c *gin.Context)
	DeleteConfirm(c *gin.Context)
	Delete(c *gin.Context)
}

type CRUDRoutes struct {
	singular string
	plural   string
	handler  CRUDHandler
}

func NewCRUDRoutes(singular, plural string, handler CRUDHandler) *CRUDRoutes {
	return &CRUDRoutes{singular: singular, plural: plural, handler: handler}
}

// RegisterRoutes mounts /<plural>/list and /<singular>/create|:id|:id/update|:id/delete.
func (r *CRUDRoutes) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/"+r.plural+"/list", r.handler.List)

	item := router.Group("/" + r.singular)
	{
		item.GET("/create", r.handler.CreateForm)
		item.POST("/create", r.handler.Create)
		item.GET("/:id", r.handler.Detail)
		item.GET("/:id/update", r.handler.UpdateForm)
		item.POST("/:id/update", r.handler.Update)
		item.GET("/:id/delete", r.handler.DeleteConfirm)
		item.POST("/:id/delete", r.handler.Delete)
	}
}
