package http

import "net/http"

func (api StegoServer) ApiInfo(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, toApiInfo(api.GetCapabilitiesUseCase.Execute(r.Context())))
}

func (api StegoServer) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthResp{
		Status:              "healthy",
		PerceptualAvailable: api.GetCapabilitiesUseCase.Execute(r.Context()).PerceptualAvailable,
	})
}
