package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Page is the envelope every page route answers with: the name of the
// front-end component to render and the props it receives.
type Page struct {
	Component string `json:"component" example:"blog/index"`
	Props     any    `json:"props"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error" example:"Post not found"`
}

func renderPage(c *gin.Context, component string, props any) {
	c.JSON(http.StatusOK, Page{Component: component, Props: props})
}

// internalError answers 500 with msg and attaches err to the context for
// middleware.ErrorHandler to log.
func internalError(c *gin.Context, msg string, err error) {
	_ = c.Error(err).SetMeta(msg)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msg})
}
