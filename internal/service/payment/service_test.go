package payment

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaamsetu/kaamsetu-backend-go/internal/config"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/company"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/payment"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/user"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/pkg/xendit"
)

type fakeOrderRepo struct {
	orders map[string]payment.Order
}

func (f *fakeOrderRepo) Create(ctx context.Context, newOrder payment.Order) (payment.Order, error) {
	newOrder.ID = newOrder.ExternalID
	newOrder.CreatedAt = time.Now()
	f.orders[newOrder.ExternalID] = newOrder
	return newOrder, nil
}

func (f *fakeOrderRepo) GetByExternalID(ctx context.Context, externalID string) (payment.Order, error) {
	o, ok := f.orders[externalID]
	if !ok {
		return payment.Order{}, pgx.ErrNoRows
	}
	return o, nil
}

func (f *fakeOrderRepo) MarkPaid(ctx context.Context, externalID string, paidAt time.Time) error {
	o, ok := f.orders[externalID]
	if !ok {
		return pgx.ErrNoRows
	}
	o.Status = payment.StatusPaid
	o.PaidAt = &paidAt
	f.orders[externalID] = o
	return nil
}

func (f *fakeOrderRepo) ConsumePaidOrder(ctx context.Context, userID string, purpose payment.Purpose) (bool, error) {
	for id, o := range f.orders {
		if o.UserID == userID && o.Purpose == purpose && o.Status == payment.StatusPaid {
			o.Status = payment.StatusConsumed
			f.orders[id] = o
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeOrderRepo) HasPaidOrder(ctx context.Context, userID string, purpose payment.Purpose) (bool, error) {
	for _, o := range f.orders {
		if o.UserID == userID && o.Purpose == purpose && o.Status == payment.StatusPaid {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeOrderRepo) ExpireStale(ctx context.Context, olderThan time.Duration) (int64, error) {
	return 0, nil
}

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
	f.companies[newCompany.ID] = newCompany
	return newCompany, nil
}

func (f *fakeCompanyRepo) ExistsByRecruiterID(ctx context.Context, recruiterID string) (bool, error) {
	_, err := f.GetByRecruiterID(ctx, recruiterID)
	return err == nil, nil
}

func (f *fakeCompanyRepo) UpdateStatus(ctx context.Context, id string, status company.Status) error {
	c := f.companies[id]
	c.Status = status
	f.companies[id] = c
	return nil
}

func (f *fakeCompanyRepo) UpdateDocuments(ctx context.Context, id string, req company.UpdateDocumentsRequest) error {
	return nil
}

func (f *fakeCompanyRepo) UpdatePlanExpiry(ctx context.Context, id string, expiresAt time.Time) error {
	c, ok := f.companies[id]
	if !ok {
		return pgx.ErrNoRows
	}
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
	return nil
}

func (f *fakeUserRepo) UpdateResume(ctx context.Context, id string, resumePath string) error {
	return nil
}

func (f *fakeUserRepo) UpdateResumeStatus(ctx context.Context, id string, status user.ResumeStatus) error {
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

const webhookToken = "test-callback-token"

func newTestService() (payment.PaymentService, *fakeOrderRepo, *fakeCompanyRepo) {
	orderRepo := &fakeOrderRepo{orders: map[string]payment.Order{}}
	companyRepo := &fakeCompanyRepo{companies: map[string]company.Company{}}
	userRepo := &fakeUserRepo{users: map[string]user.User{}}

	userRepo.users["emp-1"] = user.User{
		ID:            "emp-1",
		Email:         "emp@example.com",
		Role:          user.RoleEmployer,
		AccountStatus: user.AccountActive,
	}
	companyRepo.companies["c1"] = company.Company{
		ID:          "c1",
		RecruiterID: "emp-1",
		Name:        "Sharma Constructions",
		Status:      company.StatusApproved,
	}

	orderRepo.orders["kaamsetu-job_post-1"] = payment.Order{
		ID:         "kaamsetu-job_post-1",
		ExternalID: "kaamsetu-job_post-1",
		UserID:     "emp-1",
		Purpose:    payment.PurposeJobPost,
		Amount:     decimal.NewFromInt(99),
		Status:     payment.StatusPending,
	}
	orderRepo.orders["kaamsetu-plan-1"] = payment.Order{
		ID:         "kaamsetu-plan-1",
		ExternalID: "kaamsetu-plan-1",
		UserID:     "emp-1",
		Purpose:    payment.PurposePlan,
		Amount:     decimal.NewFromInt(999),
		Status:     payment.StatusPending,
	}

	billing := config.BillingConfig{JobPostFee: 99, PlanFee: 999, PlanDays: 30, InvoiceExpirySeconds: 86400}
	svc := NewPaymentService(nil, orderRepo, companyRepo, userRepo, nil, xendit.NewWebhookVerifier(webhookToken), billing)
	return svc, orderRepo, companyRepo
}

func paidPayload(externalID string) xendit.InvoiceWebhookPayload {
	return xendit.InvoiceWebhookPayload{
		ID:         "inv-" + externalID,
		ExternalID: externalID,
		Status:     xendit.InvoiceStatusPaid,
		PaidAt:     time.Now().UTC().Format(time.RFC3339),
	}
}

func TestWebhookRejectsBadToken(t *testing.T) {
	svc, orderRepo, _ := newTestService()

	err := svc.HandleInvoiceWebhook(context.Background(), "wrong-token", paidPayload("kaamsetu-job_post-1"))

	assert.ErrorIs(t, err, payment.ErrInvalidWebhookToken)
	assert.Equal(t, payment.StatusPending, orderRepo.orders["kaamsetu-job_post-1"].Status)
}

func TestWebhookMarksOrderPaid(t *testing.T) {
	svc, orderRepo, _ := newTestService()

	err := svc.HandleInvoiceWebhook(context.Background(), webhookToken, paidPayload("kaamsetu-job_post-1"))

	require.NoError(t, err)
	paid := orderRepo.orders["kaamsetu-job_post-1"]
	assert.Equal(t, payment.StatusPaid, paid.Status)
	require.NotNil(t, paid.PaidAt)
}

func TestWebhookReplayIsIdempotent(t *testing.T) {
	svc, orderRepo, _ := newTestService()

	require.NoError(t, svc.HandleInvoiceWebhook(context.Background(), webhookToken, paidPayload("kaamsetu-job_post-1")))
	firstPaidAt := *orderRepo.orders["kaamsetu-job_post-1"].PaidAt

	err := svc.HandleInvoiceWebhook(context.Background(), webhookToken, paidPayload("kaamsetu-job_post-1"))

	require.NoError(t, err)
	assert.Equal(t, firstPaidAt, *orderRepo.orders["kaamsetu-job_post-1"].PaidAt)
}

func TestWebhookUnknownOrder(t *testing.T) {
	svc, _, _ := newTestService()

	err := svc.HandleInvoiceWebhook(context.Background(), webhookToken, paidPayload("kaamsetu-job_post-missing"))

	assert.ErrorIs(t, err, payment.ErrOrderNotFound)
}

func TestPaidPlanExtendsCompanyPlan(t *testing.T) {
	svc, _, companyRepo := newTestService()

	err := svc.HandleInvoiceWebhook(context.Background(), webhookToken, paidPayload("kaamsetu-plan-1"))

	require.NoError(t, err)
	expiry := companyRepo.companies["c1"].PlanExpiresAt
	require.NotNil(t, expiry)
	assert.WithinDuration(t, time.Now().UTC().AddDate(0, 0, 30), *expiry, time.Minute)
}

func TestPaidPlanStacksOnRemainingTime(t *testing.T) {
	svc, _, companyRepo := newTestService()
	current := time.Now().UTC().AddDate(0, 0, 10)
	c := companyRepo.companies["c1"]
	c.PlanExpiresAt = &current
	companyRepo.companies["c1"] = c

	err := svc.HandleInvoiceWebhook(context.Background(), webhookToken, paidPayload("kaamsetu-plan-1"))

	require.NoError(t, err)
	expiry := companyRepo.companies["c1"].PlanExpiresAt
	require.NotNil(t, expiry)
	assert.WithinDuration(t, current.AddDate(0, 0, 30), *expiry, time.Minute)
}

func TestExpiredInvoiceIsAcknowledged(t *testing.T) {
	svc, orderRepo, _ := newTestService()

	payload := xendit.InvoiceWebhookPayload{
		ExternalID: "kaamsetu-job_post-1",
		Status:     xendit.InvoiceStatusExpired,
	}

	require.NoError(t, svc.HandleInvoiceWebhook(context.Background(), webhookToken, payload))
	assert.Equal(t, payment.StatusPending, orderRepo.orders["kaamsetu-job_post-1"].Status)
}

func TestGetOrderHidesOtherUsersOrders(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.GetOrder(context.Background(), "someone-else", "kaamsetu-job_post-1")
	assert.ErrorIs(t, err, payment.ErrOrderNotFound)

	order, err := svc.GetOrder(context.Background(), "emp-1", "kaamsetu-job_post-1")
	require.NoError(t, err)
	assert.Equal(t, payment.PurposeJobPost, order.Purpose)
}

func TestGetCreditReportsPaidOrder(t *testing.T) {
	svc, orderRepo, _ := newTestService()
	require.NoError(t, orderRepo.MarkPaid(context.Background(), "kaamsetu-job_post-1", time.Now()))

	credit, err := svc.GetCredit(context.Background(), "emp-1", payment.PurposeJobPost)

	require.NoError(t, err)
	assert.Equal(t, payment.PurposeJobPost, credit.Purpose)
	assert.True(t, credit.Available)
}

func TestGetCreditEmptyWithoutPayment(t *testing.T) {
	svc, _, _ := newTestService()

	credit, err := svc.GetCredit(context.Background(), "emp-1", payment.PurposeJobPost)

	require.NoError(t, err)
	assert.False(t, credit.Available)
}

func TestGetCreditSpentAfterConsumption(t *testing.T) {
	svc, orderRepo, _ := newTestService()
	require.NoError(t, orderRepo.MarkPaid(context.Background(), "kaamsetu-job_post-1", time.Now()))

	consumed, err := orderRepo.ConsumePaidOrder(context.Background(), "emp-1", payment.PurposeJobPost)
	require.NoError(t, err)
	require.True(t, consumed)

	credit, err := svc.GetCredit(context.Background(), "emp-1", payment.PurposeJobPost)
	require.NoError(t, err)
	assert.False(t, credit.Available)
}
