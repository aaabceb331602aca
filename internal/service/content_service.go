package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"crystalis-cms/internal/domain"
	"crystalis-cms/internal/email"
	"crystalis-cms/internal/repository"
)

// ContentRepos agrupa los repositorios que usa el servicio de contenido.
type ContentRepos struct {
	Blogs        repository.BlogRepository
	News         repository.NewsRepository
	Events       repository.EventRepository
	Careers      repository.CareerRepository
	Partners     repository.PartnerRepository
	Team         repository.TeamRepository
	Testimonials repository.TestimonialRepository
	Inquiries    repository.InquiryRepository
	Activities   repository.ActivityRepository
	Stats        repository.StatsRepository
}

// ContentService coordina reglas de negocio para el contenido del sitio.
// Cada escritura de un admin deja una entrada en el feed de actividad;
// fallas al registrar actividad o al mandar avisos por correo se loguean
// y no cortan la operación principal.
type ContentService struct {
	logger       *zap.Logger
	repos        ContentRepos
	emailSender  email.Sender
	contactInbox string
}

var ErrInvalidInput = errors.New("invalid input")

func NewContentService(logger *zap.Logger, repos ContentRepos, emailSender email.Sender, contactInbox string) *ContentService {
	return &ContentService{
		logger:       logger,
		repos:        repos,
		emailSender:  emailSender,
		contactInbox: contactInbox,
	}
}

// --- Blogs ---

func (s *ContentService) ListBlogs(ctx context.Context) ([]domain.Blog, error) {
	return s.repos.Blogs.List(ctx)
}

func (s *ContentService) GetBlog(ctx context.Context, id string) (domain.Blog, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Blog{}, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	return s.repos.Blogs.GetByID(ctx, id)
}

func (s *ContentService) CreateBlog(ctx context.Context, actor string, blog domain.Blog) (domain.Blog, error) {
	if strings.TrimSpace(blog.Title) == "" {
		return domain.Blog{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	now := time.Now().UTC()
	blog.ID = uuid.NewString()
	if blog.Status == "" {
		blog.Status = domain.PublishStatusDraft
	}
	blog.CreatedAt = now
	blog.UpdatedAt = now
	if err := s.repos.Blogs.Create(ctx, blog); err != nil {
		return domain.Blog{}, err
	}
	s.recordActivity(ctx, actor, "created", "blog", blog.ID)
	return blog, nil
}

func (s *ContentService) UpdateBlog(ctx context.Context, actor string, blog domain.Blog) (domain.Blog, error) {
	if strings.TrimSpace(blog.ID) == "" {
		return domain.Blog{}, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	blog.UpdatedAt = time.Now().UTC()
	if err := s.repos.Blogs.Update(ctx, blog); err != nil {
		return domain.Blog{}, err
	}
	s.recordActivity(ctx, actor, "updated", "blog", blog.ID)
	return blog, nil
}

func (s *ContentService) DeleteBlog(ctx context.Context, actor, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	if err := s.repos.Blogs.Delete(ctx, id); err != nil {
		return err
	}
	s.recordActivity(ctx, actor, "deleted", "blog", id)
	return nil
}

// --- News ---

func (s *ContentService) ListNews(ctx context.Context) ([]domain.NewsItem, error) {
	return s.repos.News.List(ctx)
}

func (s *ContentService) GetNewsItem(ctx context.Context, id string) (domain.NewsItem, error) {
	if strings.TrimSpace(id) == "" {
		return domain.NewsItem{}, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	return s.repos.News.GetByID(ctx, id)
}

func (s *ContentService) CreateNews(ctx context.Context, actor string, item domain.NewsItem) (domain.NewsItem, error) {
	if strings.TrimSpace(item.Title) == "" {
		return domain.NewsItem{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	now := time.Now().UTC()
	item.ID = uuid.NewString()
	if item.Status == "" {
		item.Status = domain.PublishStatusDraft
	}
	item.CreatedAt = now
	item.UpdatedAt = now
	if err := s.repos.News.Create(ctx, item); err != nil {
		return domain.NewsItem{}, err
	}
	s.recordActivity(ctx, actor, "created", "news", item.ID)
	return item, nil
}

func (s *ContentService) UpdateNews(ctx context.Context, actor string, item domain.NewsItem) (domain.NewsItem, error) {
	if strings.TrimSpace(item.ID) == "" {
		return domain.NewsItem{}, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	item.UpdatedAt = time.Now().UTC()
	if err := s.repos.News.Update(ctx, item); err != nil {
		return domain.NewsItem{}, err
	}
	s.recordActivity(ctx, actor, "updated", "news", item.ID)
	return item, nil
}

func (s *ContentService) DeleteNews(ctx context.Context, actor, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	if err := s.repos.News.Delete(ctx, id); err != nil {
		return err
	}
	s.recordActivity(ctx, actor, "deleted", "news", id)
	return nil
}

// --- Events ---

func (s *ContentService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	return s.repos.Events.List(ctx)
}

func (s *ContentService) GetEvent(ctx context.Context, id string) (domain.Event, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Event{}, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	return s.repos.Events.GetByID(ctx, id)
}

func (s *ContentService) CreateEvent(ctx context.Context, actor string, event domain.Event) (domain.Event, error) {
	if strings.TrimSpace(event.Title) == "" {
		return domain.Event{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	now := time.Now().UTC()
	event.ID = uuid.NewString()
	if event.Status == "" {
		event.Status = "Upcoming"
	}
	event.CreatedAt = now
	event.UpdatedAt = now
	if err := s.repos.Events.Create(ctx, event); err != nil {
		return domain.Event{}, err
	}
	s.recordActivity(ctx, actor, "created", "event", event.ID)
	return event, nil
}

func (s *ContentService) UpdateEvent(ctx context.Context, actor string, event domain.Event) (domain.Event, error) {
	if strings.TrimSpace(event.ID) == "" {
		return domain.Event{}, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	event.UpdatedAt = time.Now().UTC()
	if err := s.repos.Events.Update(ctx, event); err != nil {
		return domain.Event{}, err
	}
	s.recordActivity(ctx, actor, "updated", "event", event.ID)
	return event, nil
}

func (s *ContentService) DeleteEvent(ctx context.Context, actor, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	if err := s.repos.Events.Delete(ctx, id); err != nil {
		return err
	}
	s.recordActivity(ctx, actor, "deleted", "event", id)
	return nil
}

// --- Careers ---

func (s *ContentService) ListCareers(ctx context.Context) ([]domain.Career, error) {
	return s.repos.Careers.List(ctx)
}

func (s *ContentService) GetCareer(ctx context.Context, id string) (domain.Career, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Career{}, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	return s.repos.Careers.GetByID(ctx, id)
}

func (s *ContentService) CreateCareer(ctx context.Context, actor string, career domain.Career) (domain.Career, error) {
	if strings.TrimSpace(career.Title) == "" {
		return domain.Career{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	now := time.Now().UTC()
	career.ID = uuid.NewString()
	if career.Status == "" {
		career.Status = "Active"
	}
	if career.PostedDate == "" {
		career.PostedDate = now.Format("2006-01-02")
	}
	career.CreatedAt = now
	career.UpdatedAt = now
	if err := s.repos.Careers.Create(ctx, career); err != nil {
		return domain.Career{}, err
	}
	s.recordActivity(ctx, actor, "created", "career", career.ID)
	return career, nil
}

func (s *ContentService) UpdateCareer(ctx context.Context, actor string, career domain.Career) (domain.Career, error) {
	if strings.TrimSpace(career.ID) == "" {
		return domain.Career{}, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	career.UpdatedAt = time.Now().UTC()
	if err := s.repos.Careers.Update(ctx, career); err != nil {
		return domain.Career{}, err
	}
	s.recordActivity(ctx, actor, "updated", "career", career.ID)
	return career, nil
}

func (s *ContentService) DeleteCareer(ctx context.Context, actor, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	if err := s.repos.Careers.Delete(ctx, id); err != nil {
		return err
	}
	s.recordActivity(ctx, actor, "deleted", "career", id)
	return nil
}

// --- Partners ---

func (s *ContentService) ListPartners(ctx context.Context) ([]domain.Partner, error) {
	return s.repos.Partners.List(ctx)
}

func (s *ContentService) GetPartner(ctx context.Context, id string) (domain.Partner, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Partner{}, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	return s.repos.Partners.GetByID(ctx, id)
}

func (s *ContentService) CreatePartner(ctx context.Context, actor string, partner domain.Partner) (domain.Partner, error) {
	if strings.TrimSpace(partner.Name) == "" {
		return domain.Partner{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	now := time.Now().UTC()
	partner.ID = uuid.NewString()
	if partner.Status == "" {
		partner.Status = "Active"
	}
	partner.CreatedAt = now
	partner.UpdatedAt = now
	if err := s.repos.Partners.Create(ctx, partner); err != nil {
		return domain.Partner{}, err
	}
	s.recordActivity(ctx, actor, "created", "partner", partner.ID)
	return partner, nil
}

func (s *ContentService) UpdatePartner(ctx context.Context, actor string, partner domain.Partner) (domain.Partner, error) {
	if strings.TrimSpace(partner.ID) == "" {
		return domain.Partner{}, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	partner.UpdatedAt = time.Now().UTC()
	if err := s.repos.Partners.Update(ctx, partner); err != nil {
		return domain.Partner{}, err
	}
	s.recordActivity(ctx, actor, "updated", "partner", partner.ID)
	return partner, nil
}

func (s *ContentService) DeletePartner(ctx context.Context, actor, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	if err := s.repos.Partners.Delete(ctx, id); err != nil {
		return err
	}
	s.recordActivity(ctx, actor, "deleted", "partner", id)
	return nil
}

// --- Team ---

func (s *ContentService) ListTeam(ctx context.Context) ([]domain.TeamMember, error) {
	return s.repos.Team.List(ctx)
}

func (s *ContentService) GetTeamMember(ctx context.Context, id string) (domain.TeamMember, error) {
	if strings.TrimSpace(id) == "" {
		return domain.TeamMember{}, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	return s.repos.Team.GetByID(ctx, id)
}

func (s *ContentService) CreateTeamMember(ctx context.Context, actor string, member domain.TeamMember) (domain.TeamMember, error) {
	if strings.TrimSpace(member.Name) == "" {
		return domain.TeamMember{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	now := time.Now().UTC()
	member.ID = uuid.NewString()
	if member.Status == "" {
		member.Status = "Active"
	}
	member.CreatedAt = now
	member.UpdatedAt = now
	if err := s.repos.Team.Create(ctx, member); err != nil {
		return domain.TeamMember{}, err
	}
	s.recordActivity(ctx, actor, "created", "team_member", member.ID)
	return member, nil
}

func (s *ContentService) UpdateTeamMember(ctx context.Context, actor string, member domain.TeamMember) (domain.TeamMember, error) {
	if strings.TrimSpace(member.ID) == "" {
		return domain.TeamMember{}, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	member.UpdatedAt = time.Now().UTC()
	if err := s.repos.Team.Update(ctx, member); err != nil {
		return domain.TeamMember{}, err
	}
	s.recordActivity(ctx, actor, "updated", "team_member", member.ID)
	return member, nil
}

func (s *ContentService) DeleteTeamMember(ctx context.Context, actor, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	if err := s.repos.Team.Delete(ctx, id); err != nil {
		return err
	}
	s.recordActivity(ctx, actor, "deleted", "team_member", id)
	return nil
}

// --- Testimonials ---

func (s *ContentService) ListTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	return s.repos.Testimonials.List(ctx)
}

func (s *ContentService) GetTestimonial(ctx context.Context, id string) (domain.Testimonial, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Testimonial{}, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	return s.repos.Testimonials.GetByID(ctx, id)
}

func (s *ContentService) CreateTestimonial(ctx context.Context, actor string, testimonial domain.Testimonial) (domain.Testimonial, error) {
	if strings.TrimSpace(testimonial.Name) == "" || strings.TrimSpace(testimonial.Message) == "" {
		return domain.Testimonial{}, fmt.Errorf("%w: name and message are required", ErrInvalidInput)
	}
	now := time.Now().UTC()
	testimonial.ID = uuid.NewString()
	if testimonial.Status == "" {
		testimonial.Status = "Pending"
	}
	if testimonial.Date == "" {
		testimonial.Date = now.Format("2006-01-02")
	}
	testimonial.CreatedAt = now
	testimonial.UpdatedAt = now
	if err := s.repos.Testimonials.Create(ctx, testimonial); err != nil {
		return domain.Testimonial{}, err
	}
	s.recordActivity(ctx, actor, "created", "testimonial", testimonial.ID)
	return testimonial, nil
}

func (s *ContentService) UpdateTestimonial(ctx context.Context, actor string, testimonial domain.Testimonial) (domain.Testimonial, error) {
	if strings.TrimSpace(testimonial.ID) == "" {
		return domain.Testimonial{}, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	testimonial.UpdatedAt = time.Now().UTC()
	if err := s.repos.Testimonials.Update(ctx, testimonial); err != nil {
		return domain.Testimonial{}, err
	}
	s.recordActivity(ctx, actor, "updated", "testimonial", testimonial.ID)
	return testimonial, nil
}

func (s *ContentService) DeleteTestimonial(ctx context.Context, actor, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	if err := s.repos.Testimonials.Delete(ctx, id); err != nil {
		return err
	}
	s.recordActivity(ctx, actor, "deleted", "testimonial", id)
	return nil
}

// --- Contact inquiries ---

func (s *ContentService) ListInquiries(ctx context.Context) ([]domain.ContactInquiry, error) {
	return s.repos.Inquiries.List(ctx)
}

func (s *ContentService) GetInquiry(ctx context.Context, id string) (domain.ContactInquiry, error) {
	if strings.TrimSpace(id) == "" {
		return domain.ContactInquiry{}, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	return s.repos.Inquiries.GetByID(ctx, id)
}

// SubmitInquiry recibe una consulta del formulario público de contacto.
// El aviso al buzón del sitio es mejor esfuerzo.
func (s *ContentService) SubmitInquiry(ctx context.Context, inquiry domain.ContactInquiry) (domain.ContactInquiry, error) {
	if strings.TrimSpace(inquiry.Name) == "" || strings.TrimSpace(inquiry.Message) == "" {
		return domain.ContactInquiry{}, fmt.Errorf("%w: name and message are required", ErrInvalidInput)
	}
	if normalizeEmail(inquiry.Email) == "" {
		return domain.ContactInquiry{}, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	now := time.Now().UTC()
	inquiry.ID = uuid.NewString()
	inquiry.Email = normalizeEmail(inquiry.Email)
	inquiry.Status = domain.InquiryStatusNew
	inquiry.CreatedAt = now
	inquiry.UpdatedAt = now
	if err := s.repos.Inquiries.Create(ctx, inquiry); err != nil {
		return domain.ContactInquiry{}, err
	}

	if s.emailSender != nil && s.contactInbox != "" {
		notice := email.InquiryNotice{
			Name:    inquiry.Name,
			Email:   inquiry.Email,
			Subject: inquiry.Subject,
			Message: inquiry.Message,
		}
		if err := s.emailSender.SendInquiryNotice(ctx, s.contactInbox, notice); err != nil {
			s.logger.Warn("inquiry notice failed", zap.String("inquiry_id", inquiry.ID), zap.Error(err))
		}
	}
	return inquiry, nil
}

func (s *ContentService) UpdateInquiry(ctx context.Context, actor string, inquiry domain.ContactInquiry) (domain.ContactInquiry, error) {
	if strings.TrimSpace(inquiry.ID) == "" {
		return domain.ContactInquiry{}, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	inquiry.UpdatedAt = time.Now().UTC()
	if err := s.repos.Inquiries.Update(ctx, inquiry); err != nil {
		return domain.ContactInquiry{}, err
	}
	s.recordActivity(ctx, actor, "updated", "inquiry", inquiry.ID)
	return inquiry, nil
}

func (s *ContentService) DeleteInquiry(ctx context.Context, actor, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	if err := s.repos.Inquiries.Delete(ctx, id); err != nil {
		return err
	}
	s.recordActivity(ctx, actor, "deleted", "inquiry", id)
	return nil
}

// --- Dashboard ---

func (s *ContentService) DashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	return s.repos.Stats.Counts(ctx)
}

func (s *ContentService) RecentActivity(ctx context.Context, limit int) ([]domain.Activity, error) {
	return s.repos.Activities.ListRecent(ctx, limit)
}

func (s *ContentService) recordActivity(ctx context.Context, actor, action, entity, entityID string) {
	if s.repos.Activities == nil {
		return
	}
	activity := domain.Activity{
		ID:        uuid.NewString(),
		Actor:     actor,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repos.Activities.Insert(ctx, activity); err != nil {
		s.logger.Warn("activity insert failed",
			zap.String("entity", entity),
			zap.String("action", action),
			zap.Error(err),
		)
	}
}
