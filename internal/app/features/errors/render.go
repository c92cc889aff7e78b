package errors

import (
	"net/http"

	"github.com/xunman0/BarrierLog/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// RenderServerError shows a friendly error page with a message. If
// backURL is empty it defaults to the dashboard.
func RenderServerError(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if backURL == "" {
		backURL = "/dashboard"
	}
	w.WriteHeader(http.StatusServiceUnavailable)
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Something went wrong"),
		Message: msg,
		BackURL: backURL,
	}
	templates.Render(w, r, "error_page", data)
}
