package http

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func (api StegoServer) CreateArtifact(w http.ResponseWriter, r *http.Request) {
	params, ok := api.readEncodeParams(w, r)
	if !ok {
		return
	}

	artifact, err := api.CreateArtifactUseCase.Execute(r.Context(), params)
	if err != nil {
		api.Logger.Printf("Error creating artifact: %v", err)
		respondError(w, toError(err))
		return
	}

	w.Header().Set("Location", "/api/v1/artifacts/"+artifact.ID.String())
	respondJSON(w, http.StatusCreated, toArtifact(artifact))
}

// GetArtifact streams the stored stego image with the content type of its format.
func (api StegoServer) GetArtifact(w http.ResponseWriter, r *http.Request) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", r.PathValue("id"), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		respondBadRequest(w, fmt.Sprintf("invalid format for parameter id: %v", err))
		return
	}

	artifact, err := api.GetArtifactUseCase.Execute(r.Context(), uuid.UUID(id))
	if err != nil {
		api.Logger.Printf("Error getting artifact: %v", err)
		respondError(w, toError(err))
		return
	}

	respondImage(w, artifact.Format.ContentType(), artifact.Image)
}
