// Package cv assembles the complete CV document: the profile plus every
// owned collection in display order. The assembled document is cached in
// Redis and invalidated by every mutating use case.
package cv

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"portfolio-api/internal/domain/certification"
	"portfolio-api/internal/domain/contactinfo"
	"portfolio-api/internal/domain/education"
	"portfolio-api/internal/domain/experience"
	"portfolio-api/internal/domain/language"
	"portfolio-api/internal/domain/profile"
	"portfolio-api/internal/domain/proglang"
	"portfolio-api/internal/domain/project"
	"portfolio-api/internal/domain/skill"
	"portfolio-api/internal/domain/social"
	"portfolio-api/internal/domain/tool"
	"portfolio-api/internal/domain/training"
	"portfolio-api/pkg/apperror"
	"portfolio-api/pkg/logger"
)

// CompleteCV is the full portfolio document served to public readers.
type CompleteCV struct {
	Profile              *profile.Profile                  `json:"profile"`
	ContactInfo          *contactinfo.ContactInformation   `json:"contact_info,omitempty"`
	Skills               []*skill.Skill                    `json:"skills"`
	Tools                []*tool.Tool                      `json:"tools"`
	WorkExperience       []*experience.WorkExperience      `json:"work_experience"`
	Education            []*education.Education            `json:"education"`
	AdditionalTraining   []*training.AdditionalTraining    `json:"additional_training"`
	Projects             []*project.Project                `json:"projects"`
	Certifications       []*certification.Certification    `json:"certifications"`
	Languages            []*language.Language              `json:"languages"`
	ProgrammingLanguages []*proglang.ProgrammingLanguage   `json:"programming_languages"`
	SocialNetworks       []*social.SocialNetwork           `json:"social_networks"`
	GeneratedAt          time.Time                         `json:"generated_at"`
}

// Cache stores assembled CV documents keyed by profile ID.
type Cache interface {
	GetCV(ctx context.Context, profileID uuid.UUID) (*CompleteCV, bool, error)
	SetCV(ctx context.Context, profileID uuid.UUID, doc *CompleteCV) error
	InvalidateCV(ctx context.Context, profileID uuid.UUID) error
}

// Repos bundles the read side of every collection the CV aggregates.
type Repos struct {
	Profile        profile.Repository
	ContactInfo    contactinfo.Repository
	Skills         skill.Repository
	Tools          tool.Repository
	Experience     experience.Repository
	Education      education.Repository
	Training       training.Repository
	Projects       project.Repository
	Certifications certification.Repository
	Languages      language.Repository
	ProgLangs      proglang.Repository
	Socials        social.Repository
}

type CVUseCase struct {
	repos  Repos
	cache  Cache
	logger logger.Logger
}

func NewCVUseCase(repos Repos, cache Cache, log logger.Logger) *CVUseCase {
	return &CVUseCase{repos: repos, cache: cache, logger: log}
}

var tracer = otel.Tracer("cv_usecase")

// GetCompleteCV serves the cached document when present, otherwise assembles
// it from storage and fills the cache. A cache failure degrades to a plain
// storage read.
func (uc *CVUseCase) GetCompleteCV(ctx context.Context) (*CompleteCV, error) {
	ctx, span := tracer.Start(ctx, "GetCompleteCV")
	defer span.End()

	p, err := uc.repos.Profile.GetProfile(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if p == nil {
		return nil, apperror.NewNotFound("profile", "singleton")
	}
	span.SetAttributes(attribute.String("profile_id", p.ID.String()))

	if uc.cache != nil {
		doc, hit, err := uc.cache.GetCV(ctx, p.ID)
		if err != nil {
			uc.logger.Warn("CV cache read failed", zap.Error(err))
		} else if hit {
			span.SetAttributes(attribute.Bool("cache_hit", true))
			return doc, nil
		}
	}

	doc, err := uc.assemble(ctx, p)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.SetCV(ctx, p.ID, doc); err != nil {
			uc.logger.Warn("CV cache write failed", zap.Error(err))
		}
	}
	return doc, nil
}

func (uc *CVUseCase) assemble(ctx context.Context, p *profile.Profile) (*CompleteCV, error) {
	doc := &CompleteCV{
		Profile:     p,
		GeneratedAt: time.Now().UTC(),
	}

	contact, err := uc.repos.ContactInfo.GetByProfileID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	doc.ContactInfo = contact

	if doc.Skills, err = uc.repos.Skills.ListByOwner(ctx, p.ID, true); err != nil {
		return nil, err
	}
	if doc.Tools, err = uc.repos.Tools.ListByOwner(ctx, p.ID, true); err != nil {
		return nil, err
	}
	if doc.WorkExperience, err = uc.repos.Experience.ListByOwner(ctx, p.ID, true); err != nil {
		return nil, err
	}
	if doc.Education, err = uc.repos.Education.ListByOwner(ctx, p.ID, true); err != nil {
		return nil, err
	}
	if doc.AdditionalTraining, err = uc.repos.Training.ListByOwner(ctx, p.ID, true); err != nil {
		return nil, err
	}
	if doc.Projects, err = uc.repos.Projects.ListByOwner(ctx, p.ID, true); err != nil {
		return nil, err
	}
	if doc.Certifications, err = uc.repos.Certifications.ListByOwner(ctx, p.ID, true); err != nil {
		return nil, err
	}
	if doc.Languages, err = uc.repos.Languages.ListByOwner(ctx, p.ID, true); err != nil {
		return nil, err
	}
	if doc.ProgrammingLanguages, err = uc.repos.ProgLangs.ListByOwner(ctx, p.ID, true); err != nil {
		return nil, err
	}
	if doc.SocialNetworks, err = uc.repos.Socials.ListByOwner(ctx, p.ID, true); err != nil {
		return nil, err
	}
	return doc, nil
}
