package company

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/company"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/user"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/pkg/database"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/service/file"
)

const maxDocumentSize = 5 << 20 // 5 MB

type CompanyServiceImpl struct {
	db *database.DB
	company.CompanyRepository
	user.UserRepository
	fileService file.FileService
}

func NewCompanyService(
	db *database.DB,
	companyRepository company.CompanyRepository,
	userRepository user.UserRepository,
	fileService file.FileService,
) company.CompanyService {
	return &CompanyServiceImpl{
		db:                db,
		CompanyRepository: companyRepository,
		UserRepository:    userRepository,
		fileService:       fileService,
	}
}

// Create implements company.CompanyService.
func (s *CompanyServiceImpl) Create(ctx context.Context, recruiterID string, req company.CreateCompanyRequest) (company.CompanyResponse, error) {
	userData, err := s.UserRepository.GetByID(ctx, recruiterID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.CompanyResponse{}, user.ErrUserNotFound
		}
		return company.CompanyResponse{}, fmt.Errorf("failed to get user: %w", err)
	}
	if !userData.IsEmployer() {
		return company.CompanyResponse{}, user.ErrEmployerRoleRequired
	}

	exists, err := s.CompanyRepository.ExistsByRecruiterID(ctx, recruiterID)
	if err != nil {
		return company.CompanyResponse{}, fmt.Errorf("failed to check existing company: %w", err)
	}
	if exists {
		return company.CompanyResponse{}, company.ErrCompanyExists
	}

	if req.BusinessProofHeader.Size > maxDocumentSize || req.IDProofHeader.Size > maxDocumentSize {
		return company.CompanyResponse{}, fmt.Errorf("document exceeds 5MB limit")
	}

	businessProofPath, err := s.fileService.UploadCompanyDocument(ctx, recruiterID, req.BusinessProofFile, req.BusinessProofHeader.Filename, "business-proof")
	if err != nil {
		return company.CompanyResponse{}, err
	}
	idProofPath, err := s.fileService.UploadCompanyDocument(ctx, recruiterID, req.IDProofFile, req.IDProofHeader.Filename, "id-proof")
	if err != nil {
		return company.CompanyResponse{}, err
	}

	var logoPath *string
	if req.LogoFile != nil && req.LogoHeader != nil {
		if req.LogoHeader.Size > maxDocumentSize {
			return company.CompanyResponse{}, fmt.Errorf("logo exceeds 5MB limit")
		}
		p, err := s.fileService.UploadCompanyLogo(ctx, recruiterID, req.LogoFile, req.LogoHeader.Filename)
		if err != nil {
			return company.CompanyResponse{}, err
		}
		logoPath = &p
	}

	newCompany := company.Company{
		RecruiterID:       recruiterID,
		Name:              req.Name,
		Address:           req.Address,
		BusinessProofPath: businessProofPath,
		IDProofPath:       idProofPath,
		LogoPath:          logoPath,
		Status:            company.StatusPending,
	}

	created, err := s.CompanyRepository.Create(ctx, newCompany)
	if err != nil {
		return company.CompanyResponse{}, fmt.Errorf("failed to create company: %w", err)
	}

	return company.ToResponse(created), nil
}

// GetMine implements company.CompanyService.
func (s *CompanyServiceImpl) GetMine(ctx context.Context, recruiterID string) (company.CompanyResponse, error) {
	companyData, err := s.CompanyRepository.GetByRecruiterID(ctx, recruiterID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.CompanyResponse{}, company.ErrCompanyMissing
		}
		return company.CompanyResponse{}, fmt.Errorf("failed to get company: %w", err)
	}

	return company.ToResponse(companyData), nil
}

// UpdateDocuments implements company.CompanyService. Replacing a proof
// document sends the company back through moderation; a logo-only change
// leaves the status alone.
func (s *CompanyServiceImpl) UpdateDocuments(ctx context.Context, recruiterID string, req company.UploadDocumentsRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	companyData, err := s.CompanyRepository.GetByRecruiterID(ctx, recruiterID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.CompanyResponse{}, company.ErrCompanyMissing
		}
		return company.CompanyResponse{}, fmt.Errorf("failed to get company: %w", err)
	}

	update := company.UpdateDocumentsRequest{}

	if req.BusinessProofFile != nil && req.BusinessProofHeader != nil {
		if req.BusinessProofHeader.Size > maxDocumentSize {
			return company.CompanyResponse{}, fmt.Errorf("document exceeds 5MB limit")
		}
		p, err := s.fileService.UploadCompanyDocument(ctx, recruiterID, req.BusinessProofFile, req.BusinessProofHeader.Filename, "business-proof")
		if err != nil {
			return company.CompanyResponse{}, err
		}
		update.BusinessProofPath = &p
	}
	if req.IDProofFile != nil && req.IDProofHeader != nil {
		if req.IDProofHeader.Size > maxDocumentSize {
			return company.CompanyResponse{}, fmt.Errorf("document exceeds 5MB limit")
		}
		p, err := s.fileService.UploadCompanyDocument(ctx, recruiterID, req.IDProofFile, req.IDProofHeader.Filename, "id-proof")
		if err != nil {
			return company.CompanyResponse{}, err
		}
		update.IDProofPath = &p
	}
	if req.LogoFile != nil && req.LogoHeader != nil {
		if req.LogoHeader.Size > maxDocumentSize {
			return company.CompanyResponse{}, fmt.Errorf("logo exceeds 5MB limit")
		}
		p, err := s.fileService.UploadCompanyLogo(ctx, recruiterID, req.LogoFile, req.LogoHeader.Filename)
		if err != nil {
			return company.CompanyResponse{}, err
		}
		update.LogoPath = &p
	}

	if err := s.CompanyRepository.UpdateDocuments(ctx, companyData.ID, update); err != nil {
		return company.CompanyResponse{}, fmt.Errorf("failed to update documents: %w", err)
	}

	updated, err := s.CompanyRepository.GetByID(ctx, companyData.ID)
	if err != nil {
		return company.CompanyResponse{}, fmt.Errorf("failed to reload company: %w", err)
	}

	return company.ToResponse(updated), nil
}

// Delete implements company.CompanyService.
func (s *CompanyServiceImpl) Delete(ctx context.Context, recruiterID string) error {
	companyData, err := s.CompanyRepository.GetByRecruiterID(ctx, recruiterID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.ErrCompanyMissing
		}
		return fmt.Errorf("failed to get company: %w", err)
	}

	if err := s.CompanyRepository.Delete(ctx, companyData.ID); err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}

	return nil
}
