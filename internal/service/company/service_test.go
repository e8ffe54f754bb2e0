package company

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/company"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/user"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/pkg/validator"
)

type fakeCompanyRepo struct {
	companies map[string]company.Company
}

func (f *fakeCompanyRepo) GetByID(ctx context.Context, id string) (company.Company, error) {
	c, ok := f.companies[id]
	if !ok {
		return company.Company{}, pgx.ErrNoRows
	}
	return c, nil
}

func (f *fakeCompanyRepo) GetByRecruiterID(ctx context.Context, recruiterID string) (company.Company, error) {
	for _, c := range f.companies {
		if c.RecruiterID == recruiterID {
			return c, nil
		}
	}
	return company.Company{}, pgx.ErrNoRows
}

func (f *fakeCompanyRepo) Create(ctx context.Context, newCompany company.Company) (company.Company, error) {
	newCompany.ID = "c" + newCompany.RecruiterID
	f.companies[newCompany.ID] = newCompany
	return newCompany, nil
}

func (f *fakeCompanyRepo) ExistsByRecruiterID(ctx context.Context, recruiterID string) (bool, error) {
	_, err := f.GetByRecruiterID(ctx, recruiterID)
	return err == nil, nil
}

func (f *fakeCompanyRepo) UpdateStatus(ctx context.Context, id string, status company.Status) error {
	c, ok := f.companies[id]
	if !ok {
		return pgx.ErrNoRows
	}
	c.Status = status
	f.companies[id] = c
	return nil
}

func (f *fakeCompanyRepo) UpdateDocuments(ctx context.Context, id string, req company.UpdateDocumentsRequest) error {
	c, ok := f.companies[id]
	if !ok {
		return pgx.ErrNoRows
	}
	if req.BusinessProofPath != nil {
		c.BusinessProofPath = *req.BusinessProofPath
	}
	if req.IDProofPath != nil {
		c.IDProofPath = *req.IDProofPath
	}
	if req.LogoPath != nil {
		c.LogoPath = req.LogoPath
	}
	// Mirrors the SQL: only a proof document replacement re-enters moderation
	if req.BusinessProofPath != nil || req.IDProofPath != nil {
		c.Status = company.StatusPending
	}
	f.companies[id] = c
	return nil
}

func (f *fakeCompanyRepo) UpdatePlanExpiry(ctx context.Context, id string, expiresAt time.Time) error {
	c := f.companies[id]
	c.PlanExpiresAt = &expiresAt
	f.companies[id] = c
	return nil
}

func (f *fakeCompanyRepo) ListByStatus(ctx context.Context, status company.Status) ([]company.Company, error) {
	var out []company.Company
	for _, c := range f.companies {
		if c.Status == status {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCompanyRepo) Delete(ctx context.Context, id string) error {
	delete(f.companies, id)
	return nil
}

type fakeUserRepo struct {
	users map[string]user.User
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, newUser user.User) (user.User, error) {
	f.users[newUser.ID] = newUser
	return newUser, nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	return err == nil, nil
}

func (f *fakeUserRepo) UpdateAccountStatus(ctx context.Context, id string, status user.AccountStatus) error {
	u := f.users[id]
	u.AccountStatus = status
	f.users[id] = u
	return nil
}

func (f *fakeUserRepo) UpdateResume(ctx context.Context, id string, resumePath string) error {
	u := f.users[id]
	u.ResumePath = &resumePath
	u.ResumeStatus = user.ResumePending
	f.users[id] = u
	return nil
}

func (f *fakeUserRepo) UpdateResumeStatus(ctx context.Context, id string, status user.ResumeStatus) error {
	u := f.users[id]
	u.ResumeStatus = status
	f.users[id] = u
	return nil
}

func (f *fakeUserRepo) UpdateProfile(ctx context.Context, id string, req user.UpdateProfileRequest) error {
	return nil
}

func (f *fakeUserRepo) ListByResumeStatus(ctx context.Context, status user.ResumeStatus) ([]user.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	delete(f.users, id)
	return nil
}

// fakeFileService returns deterministic paths without touching storage.
type fakeFileService struct{}

func (f *fakeFileService) UploadResume(ctx context.Context, userID string, file io.Reader, filename string) (string, error) {
	return "resumes/" + userID + "/" + filename, nil
}

func (f *fakeFileService) UploadCompanyDocument(ctx context.Context, recruiterID string, file io.Reader, filename string, documentType string) (string, error) {
	return "companies/" + recruiterID + "/" + documentType + "/" + filename, nil
}

func (f *fakeFileService) UploadCompanyLogo(ctx context.Context, recruiterID string, file io.Reader, filename string) (string, error) {
	return "companies/" + recruiterID + "/logo/" + filename, nil
}

func (f *fakeFileService) DeleteFile(ctx context.Context, path string) error {
	return nil
}

func (f *fakeFileService) GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return "https://files.example.com/" + path, nil
}

type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }

func newTestFile(t *testing.T, name string) (multipart.File, *multipart.FileHeader) {
	t.Helper()
	content := []byte("file content")
	return memFile{bytes.NewReader(content)}, &multipart.FileHeader{
		Filename: name,
		Size:     int64(len(content)),
	}
}

func newTestService(t *testing.T) (company.CompanyService, *fakeCompanyRepo) {
	t.Helper()

	companyRepo := &fakeCompanyRepo{companies: map[string]company.Company{
		"c1": {
			ID:                "c1",
			RecruiterID:       "emp-1",
			Name:              "QuickShip Logistics",
			BusinessProofPath: "companies/emp-1/business-proof/original.pdf",
			IDProofPath:       "companies/emp-1/id-proof/original.pdf",
			Status:            company.StatusApproved,
		},
	}}
	userRepo := &fakeUserRepo{users: map[string]user.User{
		"emp-1": {
			ID:            "emp-1",
			Name:          "Employer One",
			Email:         "employer@example.com",
			Role:          user.RoleEmployer,
			AccountStatus: user.AccountActive,
		},
	}}

	return NewCompanyService(nil, companyRepo, userRepo, &fakeFileService{}), companyRepo
}

func TestUpdateDocuments_ProofResetsApproval(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	proofFile, proofHeader := newTestFile(t, "new-proof.pdf")
	resp, err := svc.UpdateDocuments(ctx, "emp-1", company.UploadDocumentsRequest{
		BusinessProofFile:   proofFile,
		BusinessProofHeader: proofHeader,
	})

	require.NoError(t, err)
	assert.Equal(t, company.StatusPending, resp.Status)
	assert.Equal(t, "companies/emp-1/business-proof/new-proof.pdf", repo.companies["c1"].BusinessProofPath)
}

func TestUpdateDocuments_LogoOnlyKeepsApproval(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	logoFile, logoHeader := newTestFile(t, "logo.png")
	resp, err := svc.UpdateDocuments(ctx, "emp-1", company.UploadDocumentsRequest{
		LogoFile:   logoFile,
		LogoHeader: logoHeader,
	})

	require.NoError(t, err)
	assert.Equal(t, company.StatusApproved, resp.Status)
	require.NotNil(t, resp.LogoPath)
	assert.Equal(t, "companies/emp-1/logo/logo.png", *resp.LogoPath)
	// Proof documents are untouched
	assert.Equal(t, "companies/emp-1/business-proof/original.pdf", repo.companies["c1"].BusinessProofPath)
}

func TestUpdateDocuments_NoFiles(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	_, err := svc.UpdateDocuments(ctx, "emp-1", company.UploadDocumentsRequest{})

	var vErrs validator.ValidationErrors
	require.ErrorAs(t, err, &vErrs)
	assert.Equal(t, company.StatusApproved, repo.companies["c1"].Status)
}

func TestUpdateDocuments_NoCompany(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	proofFile, proofHeader := newTestFile(t, "proof.pdf")
	_, err := svc.UpdateDocuments(ctx, "emp-2", company.UploadDocumentsRequest{
		BusinessProofFile:   proofFile,
		BusinessProofHeader: proofHeader,
	})

	assert.ErrorIs(t, err, company.ErrCompanyMissing)
}

func TestUpdateDocuments_OversizeDocument(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	proofFile, proofHeader := newTestFile(t, "huge.pdf")
	proofHeader.Size = maxDocumentSize + 1
	_, err := svc.UpdateDocuments(ctx, "emp-1", company.UploadDocumentsRequest{
		BusinessProofFile:   proofFile,
		BusinessProofHeader: proofHeader,
	})

	assert.Error(t, err)
	assert.Equal(t, company.StatusApproved, repo.companies["c1"].Status)
}
