// Package viewdata holds the view-model fields shared by every page.
package viewdata

import (
	"net/http"
)

// BaseVM contains common fields for all view models. Embed it in
// feature-specific view models:
//
//	type pageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
type BaseVM struct {
	Title       string
	CurrentPath string
	FormURL     string // public link to the live referral form
}

// formURL is set once at startup from configuration.
var formURL string

// Init sets the public form link shown in page headers. Call once from
// bootstrap.
func Init(publicFormURL string) {
	formURL = publicFormURL
}

// NewBaseVM creates a populated BaseVM for a page.
func NewBaseVM(r *http.Request, title string) BaseVM {
	return BaseVM{
		Title:       title,
		CurrentPath: r.URL.Path,
		FormURL:     formURL,
	}
}
