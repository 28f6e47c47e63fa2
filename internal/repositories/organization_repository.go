package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	model "worklog-system.com/worklog-system/internal/models"
)

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

func (r *OrganizationRepository) Create(ctx context.Context, org *model.Organization) error {
	return r.db.WithContext(ctx).Create(org).Error
}

// FindByID returns nil without error when no organization matches under the
// owner's scope.
func (r *OrganizationRepository) FindByID(ctx context.Context, id, ownerID string) (*model.Organization, error) {
	var org model.Organization
	err := r.db.WithContext(ctx).First(&org, "id = ? AND created_by = ?", id, ownerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *OrganizationRepository) List(ctx context.Context, ownerID string) ([]model.Organization, error) {
	var orgs []model.Organization
	err := r.db.WithContext(ctx).
		Where("created_by = ?", ownerID).
		Order("created_at desc").
		Find(&orgs).Error
	return orgs, err
}

func (r *OrganizationRepository) Update(ctx context.Context, org *model.Organization) error {
	return r.db.WithContext(ctx).Model(&model.Organization{}).
		Where("id = ? AND created_by = ?", org.ID, org.CreatedBy).
		Updates(map[string]interface{}{
			"name":  org.Name,
			"cnpj":  org.CNPJ,
			"email": org.Email,
			"phone": org.Phone,
		}).Error
}

func (r *OrganizationRepository) Delete(ctx context.Context, id, ownerID string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND created_by = ?", id, ownerID).
		Delete(&model.Organization{}).Error
}
