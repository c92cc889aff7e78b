// Package errors renders error pages and provides the ErrorLogger used
// by handlers to convert failures into a visible error state. No data
// client error crashes the process; everything lands here.
package errors

import (
	"net/http"

	"github.com/xunman0/BarrierLog/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// pageData is the view model for error pages.
type pageData struct {
	viewdata.BaseVM
	Message string
	BackURL string
}

// Handler is the errors feature handler. It holds no dependencies; it
// just renders templates.
type Handler struct{}

// NewHandler constructs an errors Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// NotFound renders a friendly "page not found" page.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Page not found"),
		Message: "That page does not exist.",
		BackURL: "/",
	}
	templates.Render(w, r, "error_page", data)
}
