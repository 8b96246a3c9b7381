package services

import (
	"context"

	apperrors "github.com/crestview/estates-api/internal/errors"
	"github.com/crestview/estates-api/internal/logger"
	"github.com/crestview/estates-api/internal/models"
	"github.com/crestview/estates-api/internal/pagination"
	"github.com/crestview/estates-api/internal/repository"
)

// EnquiryService defines business logic for contact-form enquiries.
type EnquiryService interface {
	Create(ctx context.Context, e *models.Enquiry) error
	List(ctx context.Context, filter repository.EnquiryFilter, params pagination.Params) ([]models.Enquiry, pagination.Page, error)
	Delete(ctx context.Context, id int64) error
}

type enquiryService struct {
	repo repository.EnquiryRepository
	log  *logger.Logger
}

// NewEnquiryService creates a new instance of EnquiryService.
func NewEnquiryService(repo repository.EnquiryRepository, log *logger.Logger) EnquiryService {
	return &enquiryService{repo: repo, log: log}
}

func (s *enquiryService) Create(ctx context.Context, e *models.Enquiry) error {
	// PropertyID is a weak reference kept for display; it is stored
	// without checking the property still exists.
	if err := s.repo.Create(ctx, e); err != nil {
		s.log.Error("Failed to create enquiry", err, nil)
		return apperrors.Wrap(apperrors.KindUnexpected, "Failed to submit enquiry", err)
	}

	s.log.Info("Enquiry received", map[string]interface{}{"id": e.ID, "type": e.Type})
	return nil
}

func (s *enquiryService) List(ctx context.Context, filter repository.EnquiryFilter, params pagination.Params) ([]models.Enquiry, pagination.Page, error) {
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count enquiries", err, nil)
		return nil, pagination.Page{}, apperrors.Wrap(apperrors.KindUnexpected, "Failed to list enquiries", err)
	}

	enquiries, err := s.repo.List(ctx, filter, params.Limit, pagination.Offset(params.Page, params.Limit))
	if err != nil {
		s.log.Error("Failed to list enquiries", err, nil)
		return nil, pagination.Page{}, apperrors.Wrap(apperrors.KindUnexpected, "Failed to list enquiries", err)
	}

	return enquiries, pagination.Paginate(params.Page, params.Limit, total), nil
}

func (s *enquiryService) Delete(ctx context.Context, id int64) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.Error("Failed to delete enquiry", err, map[string]interface{}{"id": id})
		return apperrors.Wrap(apperrors.KindUnexpected, "Failed to delete enquiry", err)
	}
	if !found {
		return apperrors.New(apperrors.KindNotFound, "Enquiry not found")
	}
	return nil
}

// CareerService defines business logic for job applications.
type CareerService interface {
	Create(ctx context.Context, a *models.CareerApplication) error
	List(ctx context.Context, filter repository.CareerFilter, params pagination.Params) ([]models.CareerApplication, pagination.Page, error)
	Delete(ctx context.Context, id int64) error
}

type careerService struct {
	repo repository.CareerRepository
	log  *logger.Logger
}

// NewCareerService creates a new instance of CareerService.
func NewCareerService(repo repository.CareerRepository, log *logger.Logger) CareerService {
	return &careerService{repo: repo, log: log}
}

func (s *careerService) Create(ctx context.Context, a *models.CareerApplication) error {
	// referral_other is meaningful only with an OTHER source.
	if a.ReferralSource == models.ReferralSourceOther {
		if a.ReferralOther == nil || *a.ReferralOther == "" {
			return apperrors.New(apperrors.KindValidation, "Please describe how you heard about us")
		}
	} else {
		a.ReferralOther = nil
	}

	if err := s.repo.Create(ctx, a); err != nil {
		if repository.IsUniqueViolation(err) {
			return apperrors.New(apperrors.KindConflict, "An application with this email already exists")
		}
		s.log.Error("Failed to create career application", err, nil)
		return apperrors.Wrap(apperrors.KindUnexpected, "Failed to submit application", err)
	}

	s.log.Info("Career application received", map[string]interface{}{"id": a.ID})
	return nil
}

func (s *careerService) List(ctx context.Context, filter repository.CareerFilter, params pagination.Params) ([]models.CareerApplication, pagination.Page, error) {
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count career applications", err, nil)
		return nil, pagination.Page{}, apperrors.Wrap(apperrors.KindUnexpected, "Failed to list applications", err)
	}

	apps, err := s.repo.List(ctx, filter, params.Limit, pagination.Offset(params.Page, params.Limit))
	if err != nil {
		s.log.Error("Failed to list career applications", err, nil)
		return nil, pagination.Page{}, apperrors.Wrap(apperrors.KindUnexpected, "Failed to list applications", err)
	}

	return apps, pagination.Paginate(params.Page, params.Limit, total), nil
}

func (s *careerService) Delete(ctx context.Context, id int64) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.Error("Failed to delete career application", err, map[string]interface{}{"id": id})
		return apperrors.Wrap(apperrors.KindUnexpected, "Failed to delete application", err)
	}
	if !found {
		return apperrors.New(apperrors.KindNotFound, "Application not found")
	}
	return nil
}

// TACService defines business logic for The Advisors Club registrations.
type TACService interface {
	Create(ctx context.Context, reg *models.TACRegistration) error
	List(ctx context.Context, filter repository.TACFilter, params pagination.Params) ([]models.TACRegistration, pagination.Page, error)
	Delete(ctx context.Context, id int64) error
}

type tacService struct {
	repo repository.TACRepository
	log  *logger.Logger
}

// NewTACService creates a new instance of TACService.
func NewTACService(repo repository.TACRepository, log *logger.Logger) TACService {
	return &tacService{repo: repo, log: log}
}

func (s *tacService) Create(ctx context.Context, reg *models.TACRegistration) error {
	if err := s.repo.Create(ctx, reg); err != nil {
		s.log.Error("Failed to create TAC registration", err, nil)
		return apperrors.Wrap(apperrors.KindUnexpected, "Failed to submit registration", err)
	}

	s.log.Info("TAC registration received", map[string]interface{}{"id": reg.ID})
	return nil
}

func (s *tacService) List(ctx context.Context, filter repository.TACFilter, params pagination.Params) ([]models.TACRegistration, pagination.Page, error) {
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count TAC registrations", err, nil)
		return nil, pagination.Page{}, apperrors.Wrap(apperrors.KindUnexpected, "Failed to list registrations", err)
	}

	regs, err := s.repo.List(ctx, filter, params.Limit, pagination.Offset(params.Page, params.Limit))
	if err != nil {
		s.log.Error("Failed to list TAC registrations", err, nil)
		return nil, pagination.Page{}, apperrors.Wrap(apperrors.KindUnexpected, "Failed to list registrations", err)
	}

	return regs, pagination.Paginate(params.Page, params.Limit, total), nil
}

func (s *tacService) Delete(ctx context.Context, id int64) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.Error("Failed to delete TAC registration", err, map[string]interface{}{"id": id})
		return apperrors.Wrap(apperrors.KindUnexpected, "Failed to delete registration", err)
	}
	if !found {
		return apperrors.New(apperrors.KindNotFound, "Registration not found")
	}
	return nil
}
