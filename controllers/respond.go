package controllers

import "github.com/gin-gonic/gin"

// respond writes the API's standard response envelope:
// {status, message} plus an optional data or error payload.
func respond(c *gin.Context, httpStatus int, ok bool, message string, data interface{}) {
	body := gin.H{"status": ok, "message": message}
	if data != nil {
		if ok {
			body["data"] = data
		} else {
			body["error"] = data
		}
	}
	c.JSON(httpStatus, body)
}
