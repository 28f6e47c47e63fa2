package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	model "worklog-system.com/worklog-system/internal/models"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) FindByOwner(ctx context.Context, ownerID string) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.WithContext(ctx).First(&profile, "owner_id = ?", ownerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) Create(ctx context.Context, profile *model.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *ProfileRepository) Update(ctx context.Context, profile *model.Profile) error {
	return r.db.WithContext(ctx).Model(&model.Profile{}).
		Where("owner_id = ?", profile.OwnerID).
		Updates(map[string]interface{}{
			"email":        profile.Email,
			"document":     profile.Document,
			"company_name": profile.CompanyName,
			"company_cnpj": profile.CompanyCNPJ,
			"phone":        profile.Phone,
		}).Error
}
