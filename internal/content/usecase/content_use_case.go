package usecase

import (
	"context"

	"go.uber.org/zap"

	"orientalgroup/internal/domain"
	"orientalgroup/internal/dto"
)

type ServiceRepository interface {
	List(ctx context.Context) ([]domain.SiteService, error)
	Insert(ctx context.Context, s domain.SiteService) (int, error)
	Update(ctx context.Context, id int, s domain.SiteService) error
	Delete(ctx context.Context, id int) error
}

type PartnerRepository interface {
	List(ctx context.Context) ([]domain.Partner, error)
	Insert(ctx context.Context, p domain.Partner) (int, error)
	Update(ctx context.Context, id int, p domain.Partner) error
	Delete(ctx context.Context, id int) error
}

type MissionPointRepository interface {
	List(ctx context.Context) ([]domain.MissionPoint, error)
	Insert(ctx context.Context, p domain.MissionPoint) (int, error)
	Update(ctx context.Context, id int, p domain.MissionPoint) error
	Delete(ctx context.Context, id int) error
}

type ContentUseCase struct {
	services ServiceRepository
	partners PartnerRepository
	mission  MissionPointRepository
	logger   *zap.Logger
}

func NewContentUseCase(services ServiceRepository, partners PartnerRepository, mission MissionPointRepository, logger *zap.Logger) *ContentUseCase {
	return &ContentUseCase{services: services, partners: partners, mission: mission, logger: logger}
}

func (uc *ContentUseCase) ListServices(ctx context.Context) ([]dto.SiteServiceDTO, error) {
	services, err := uc.services.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.SiteServiceDTO, 0, len(services))
	for _, s := range services {
		out = append(out, dto.SiteServiceDTO{
			ID: s.ID, Title: s.Title, Description: s.Description,
			IconName: s.IconName, DisplayOrder: s.DisplayOrder,
			CreatedAt: s.CreatedAt, UpdatedAt: s.UpdatedAt,
		})
	}
	return out, nil
}

func (uc *ContentUseCase) CreateService(ctx context.Context, req dto.SaveSiteServiceRequest) (int, error) {
	id, err := uc.services.Insert(ctx, domain.SiteService{
		Title: req.Title, Description: req.Description,
		IconName: req.IconName, DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		return 0, err
	}
	uc.logger.Info("service created", zap.Int("serviceId", id))
	return id, nil
}

func (uc *ContentUseCase) UpdateService(ctx context.Context, id int, req dto.SaveSiteServiceRequest) error {
	return uc.services.Update(ctx, id, domain.SiteService{
		Title: req.Title, Description: req.Description,
		IconName: req.IconName, DisplayOrder: req.DisplayOrder,
	})
}

func (uc *ContentUseCase) DeleteService(ctx context.Context, id int) error {
	return uc.services.Delete(ctx, id)
}

func (uc *ContentUseCase) ListPartners(ctx context.Context) ([]dto.PartnerDTO, error) {
	partners, err := uc.partners.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.PartnerDTO, 0, len(partners))
	for _, p := range partners {
		out = append(out, dto.PartnerDTO{
			ID: p.ID, Name: p.Name, LogoPath: p.LogoPath, WebsiteURL: p.WebsiteURL,
			DisplayOrder: p.DisplayOrder, CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt,
		})
	}
	return out, nil
}

func (uc *ContentUseCase) CreatePartner(ctx context.Context, req dto.SavePartnerRequest) (int, error) {
	id, err := uc.partners.Insert(ctx, domain.Partner{
		Name: req.Name, LogoPath: req.LogoPath,
		WebsiteURL: req.WebsiteURL, DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		return 0, err
	}
	uc.logger.Info("partner created", zap.Int("partnerId", id))
	return id, nil
}

func (uc *ContentUseCase) UpdatePartner(ctx context.Context, id int, req dto.SavePartnerRequest) error {
	return uc.partners.Update(ctx, id, domain.Partner{
		Name: req.Name, LogoPath: req.LogoPath,
		WebsiteURL: req.WebsiteURL, DisplayOrder: req.DisplayOrder,
	})
}

func (uc *ContentUseCase) DeletePartner(ctx context.Context, id int) error {
	return uc.partners.Delete(ctx, id)
}

func (uc *ContentUseCase) ListMissionPoints(ctx context.Context) ([]dto.MissionPointDTO, error) {
	points, err := uc.mission.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.MissionPointDTO, 0, len(points))
	for _, p := range points {
		out = append(out, dto.MissionPointDTO{
			ID: p.ID, Text: p.Text, IconName: p.IconName,
			DisplayOrder: p.DisplayOrder, CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt,
		})
	}
	return out, nil
}

func (uc *ContentUseCase) CreateMissionPoint(ctx context.Context, req dto.SaveMissionPointRequest) (int, error) {
	id, err := uc.mission.Insert(ctx, domain.MissionPoint{
		Text: req.Text, IconName: req.IconName, DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		return 0, err
	}
	uc.logger.Info("mission point created", zap.Int("missionPointId", id))
	return id, nil
}

func (uc *ContentUseCase) UpdateMissionPoint(ctx context.Context, id int, req dto.SaveMissionPointRequest) error {
	return uc.mission.Update(ctx, id, domain.MissionPoint{
		Text: req.Text, IconName: req.IconName, DisplayOrder: req.DisplayOrder,
	})
}

func (uc *ContentUseCase) DeleteMissionPoint(ctx context.Context, id int) error {
	return uc.mission.Delete(ctx, id)
}
