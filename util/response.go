package util

import "github.com/gin-gonic/gin"

/*
* Uniform response envelopes for the controllers
* Failed wraps the error message, Success wraps the payload
 */

func SuccessResponse(data interface{}) gin.H {
	return gin.H{
		"success": true,
		"data":    data,
	}
}

func FailedResponse(err error) gin.H {
	return gin.H{
		"success": false,
		"error":   err.Error(),
	}
}

func FailedMessage(msg string) gin.H {
	return gin.H{
		"success": false,
		"error":   msg,
	}
}
