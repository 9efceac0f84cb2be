package repository

import (
	"context"
	"errors"

	"devlink/internal/cache"
	"devlink/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileRepository defines persistence operations for profiles and their
// experience and education sub-records.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uint) (*models.Profile, error)
	List(ctx context.Context) ([]models.Profile, error)
	Create(ctx context.Context, profile *models.Profile) error
	Save(ctx context.Context, profile *models.Profile) error
	Delete(ctx context.Context, userID uint) error

	GetExperience(ctx context.Context, profileID, expID uint) (*models.Experience, error)
	CreateExperience(ctx context.Context, exp *models.Experience) error
	SaveExperience(ctx context.Context, exp *models.Experience) error
	DeleteExperience(ctx context.Context, profileID, expID uint) error

	GetEducation(ctx context.Context, profileID, eduID uint) (*models.Education, error)
	CreateEducation(ctx context.Context, edu *models.Education) error
	SaveEducation(ctx context.Context, edu *models.Education) error
	DeleteEducation(ctx context.Context, profileID, eduID uint) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository returns a new ProfileRepository implementation.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// GetByUserID loads the full profile with its user and sub-records.
// Returns (nil, nil) when the user has no profile so callers can pick the
// route-specific not-found message.
func (r *profileRepository) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	var profile models.Profile
	err := cache.Aside(ctx, cache.ProfileKey(userID), &profile, cache.ProfileTTL, func() error {
		return r.profileQuery(ctx).Where("user_id = ?", userID).First(&profile).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &profile, nil
}

func (r *profileRepository) List(ctx context.Context) ([]models.Profile, error) {
	var profiles []models.Profile
	err := cache.Aside(ctx, cache.ProfileListKey, &profiles, cache.ListTTL, func() error {
		if err := r.profileQuery(ctx).Order("last_updated DESC").Find(&profiles).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *profileRepository) profileQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("User").
		Preload("Experience", func(db *gorm.DB) *gorm.DB {
			return db.Order("\"from\" DESC")
		}).
		Preload("Education", func(db *gorm.DB) *gorm.DB {
			return db.Order("\"from\" DESC")
		})
}

func (r *profileRepository) Create(ctx context.Context, profile *models.Profile) error {
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateProfile(ctx, profile.UserID)
	return nil
}

// Save writes the profile row itself. Sub-records are managed through their
// own repository methods, so associations are omitted here.
func (r *profileRepository) Save(ctx context.Context, profile *models.Profile) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(profile).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateProfile(ctx, profile.UserID)
	return nil
}

// Delete removes the user's profile and its sub-records. Idempotent: a
// missing profile is not an error.
func (r *profileRepository) Delete(ctx context.Context, userID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var profile models.Profile
		if err := tx.Where("user_id = ?", userID).First(&profile).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if err := tx.Where("profile_id = ?", profile.ID).Delete(&models.Experience{}).Error; err != nil {
			return err
		}
		if err := tx.Where("profile_id = ?", profile.ID).Delete(&models.Education{}).Error; err != nil {
			return err
		}
		return tx.Delete(&profile).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}

	cache.InvalidateProfile(ctx, userID)
	return nil
}

// GetExperience returns (nil, nil) when the entry does not exist or belongs
// to another profile.
func (r *profileRepository) GetExperience(ctx context.Context, profileID, expID uint) (*models.Experience, error) {
	var exp models.Experience
	err := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", expID, profileID).
		First(&exp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &exp, nil
}

func (r *profileRepository) CreateExperience(ctx context.Context, exp *models.Experience) error {
	if err := r.db.WithContext(ctx).Create(exp).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *profileRepository) SaveExperience(ctx context.Context, exp *models.Experience) error {
	if err := r.db.WithContext(ctx).Save(exp).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *profileRepository) DeleteExperience(ctx context.Context, profileID, expID uint) error {
	err := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", expID, profileID).
		Delete(&models.Experience{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// GetEducation returns (nil, nil) when the entry does not exist or belongs
// to another profile.
func (r *profileRepository) GetEducation(ctx context.Context, profileID, eduID uint) (*models.Education, error) {
	var edu models.Education
	err := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", eduID, profileID).
		First(&edu).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &edu, nil
}

func (r *profileRepository) CreateEducation(ctx context.Context, edu *models.Education) error {
	if err := r.db.WithContext(ctx).Create(edu).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *profileRepository) SaveEducation(ctx context.Context, edu *models.Education) error {
	if err := r.db.WithContext(ctx).Save(edu).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *profileRepository) DeleteEducation(ctx context.Context, profileID, eduID uint) error {
	err := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", eduID, profileID).
		Delete(&models.Education{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
