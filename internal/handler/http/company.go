package http

import (
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/company"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/handler/http/middleware"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/handler/http/response"
)

type CompanyHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetMine(w http.ResponseWriter, r *http.Request)
	UpdateDocuments(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type CompanyHandlerImpl struct {
	companyService company.CompanyService
}

func NewCompanyHandler(companyService company.CompanyService) CompanyHandler {
	return &CompanyHandlerImpl{companyService: companyService}
}

func formFile(r *http.Request, field string) (multipart.File, *multipart.FileHeader) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, nil
	}
	return file, header
}

// Create implements CompanyHandler. Expects a multipart form with name,
// address and the business_proof / id_proof / logo file fields.
func (h *CompanyHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	req := company.CreateCompanyRequest{
		Name: r.FormValue("name"),
	}
	if address := r.FormValue("address"); address != "" {
		req.Address = &address
	}

	req.BusinessProofFile, req.BusinessProofHeader = formFile(r, "business_proof")
	req.IDProofFile, req.IDProofHeader = formFile(r, "id_proof")
	req.LogoFile, req.LogoHeader = formFile(r, "logo")

	for _, f := range []multipart.File{req.BusinessProofFile, req.IDProofFile, req.LogoFile} {
		if f != nil {
			defer f.Close()
		}
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	companyResp, err := h.companyService.Create(r.Context(), middleware.UserID(r), req)
	if err != nil {
		slog.Error("Create company service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Company registered and queued for review", companyResp)
}

// GetMine implements CompanyHandler.
func (h *CompanyHandlerImpl) GetMine(w http.ResponseWriter, r *http.Request) {
	companyResp, err := h.companyService.GetMine(r.Context(), middleware.UserID(r))
	if err != nil {
		slog.Error("GetMine company service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, companyResp)
}

// UpdateDocuments implements CompanyHandler.
func (h *CompanyHandlerImpl) UpdateDocuments(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	var req company.UploadDocumentsRequest
	req.BusinessProofFile, req.BusinessProofHeader = formFile(r, "business_proof")
	req.IDProofFile, req.IDProofHeader = formFile(r, "id_proof")
	req.LogoFile, req.LogoHeader = formFile(r, "logo")

	for _, f := range []multipart.File{req.BusinessProofFile, req.IDProofFile, req.LogoFile} {
		if f != nil {
			defer f.Close()
		}
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	companyResp, err := h.companyService.UpdateDocuments(r.Context(), middleware.UserID(r), req)
	if err != nil {
		slog.Error("UpdateDocuments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Documents updated, company queued for review", companyResp)
}

// Delete implements CompanyHandler.
func (h *CompanyHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.companyService.Delete(r.Context(), middleware.UserID(r)); err != nil {
		slog.Error("Delete company service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Company deleted", nil)
}
