package handlers

import "github.com/gin-gonic/gin"

func Home() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Redirect(302, "/brand/login")
	}
}

func BrandLoginPage(c *gin.Context) {
	c.HTML(200, "login.html", gin.H{})
}

func BrandProductsPage(c *gin.Context) {
	c.HTML(200, "products.html", gin.H{})
}

func BrandOrdersPage(c *gin.Context) {
	c.HTML(200, "orders.html", gin.H{})
}

func BrandProfilePage(c *gin.Context) {
	c.HTML(200, "profile.html", gin.H{})
}
