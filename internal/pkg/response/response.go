package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The envelope shapes here are a wire contract with the public form UI:
// {ok:true} on success, {ok:false, message, [fields]} on failure.

func OK(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func Fail(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"ok":      false,
		"message": message,
	})
}

func FailFields(c *gin.Context, statusCode int, message string, fields []string) {
	c.JSON(statusCode, gin.H{
		"ok":      false,
		"message": message,
		"fields":  fields,
	})
}
