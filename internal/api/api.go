package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// CompoundReq is the body of POST /compounds.
type CompoundReq struct {
	Words  []string `json:"words"`
	Target int      `json:"target"`
}

// CompoundRun is the outcome of one search.
type CompoundRun struct {
	RunId          *string  `json:"runId,omitempty"`
	Target         int      `json:"target"`
	VocabularySize int      `json:"vocabularySize"`
	Results        []string `json:"results"`
}

// RunSummary describes a stored run without its results.
type RunSummary struct {
	RunId          string `json:"runId"`
	Target         int    `json:"target"`
	VocabularySize int    `json:"vocabularySize"`
	CreatedAt      string `json:"createdAt"`
}

// FindCompoundsParams defines parameters for FindCompounds.
type FindCompoundsParams struct {
	Target int `form:"target" json:"target"`
}

// ListRunsParams defines parameters for ListRuns.
type ListRunsParams struct {
	Limit *int `form:"limit,omitempty" json:"limit,omitempty"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Search the preloaded vocabulary
	// (GET /compounds)
	FindCompounds(w http.ResponseWriter, r *http.Request, params FindCompoundsParams)
	// Search a vocabulary sent in the request
	// (POST /compounds)
	CreateCompounds(w http.ResponseWriter, r *http.Request)
	// List recent runs
	// (GET /runs)
	ListRuns(w http.ResponseWriter, r *http.Request, params ListRunsParams)
	// Fetch a stored run
	// (GET /runs/{runId})
	GetRun(w http.ResponseWriter, r *http.Request, runId string)
}

// InvalidParamFormatError is reported when a request parameter cannot be bound.
type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("Invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error {
	return e.Err
}

// ServerInterfaceWrapper converts contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler          ServerInterface
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

// FindCompounds operation middleware
func (siw *ServerInterfaceWrapper) FindCompounds(w http.ResponseWriter, r *http.Request) {
	var params FindCompoundsParams

	err := runtime.BindQueryParameter("form", true, true, "target", r.URL.Query(), &params.Target)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "target", Err: err})
		return
	}

	siw.Handler.FindCompounds(w, r, params)
}

// CreateCompounds operation middleware
func (siw *ServerInterfaceWrapper) CreateCompounds(w http.ResponseWriter, r *http.Request) {
	siw.Handler.CreateCompounds(w, r)
}

// ListRuns operation middleware
func (siw *ServerInterfaceWrapper) ListRuns(w http.ResponseWriter, r *http.Request) {
	var params ListRunsParams

	err := runtime.BindQueryParameter("form", true, false, "limit", r.URL.Query(), &params.Limit)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "limit", Err: err})
		return
	}

	siw.Handler.ListRuns(w, r, params)
}

// GetRun operation middleware
func (siw *ServerInterfaceWrapper) GetRun(w http.ResponseWriter, r *http.Request) {
	var runId string

	err := runtime.BindStyledParameterWithOptions("simple", "runId", chi.URLParam(r, "runId"), &runId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "runId", Err: err})
		return
	}

	siw.Handler.GetRun(w, r, runId)
}

// HandlerFromMux creates http.Handler with routing matching the API,
// registered on the given router.
func HandlerFromMux(si ServerInterface, r chi.Router) http.Handler {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
		ErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			writeError(w, http.StatusBadRequest, err.Error())
		},
	}

	r.Group(func(r chi.Router) {
		r.Get("/compounds", wrapper.FindCompounds)
	})
	r.Group(func(r chi.Router) {
		r.Post("/compounds", wrapper.CreateCompounds)
	})
	r.Group(func(r chi.Router) {
		r.Get("/runs", wrapper.ListRuns)
	})
	r.Group(func(r chi.Router) {
		r.Get("/runs/{runId}", wrapper.GetRun)
	})

	return r
}
