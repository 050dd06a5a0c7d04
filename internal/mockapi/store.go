package mockapi

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("not the owner")
)

// Owner is a restaurant owner account.
type Owner struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Email     string `json:"email" gorm:"uniqueIndex;not null"`
	FirstName string `json:"firstName"`
}

// Restaurant mirrors the backend restaurant resource, trimmed to what the owner list shows.
type Restaurant struct {
	ID                    uint      `json:"id" gorm:"primaryKey"`
	OwnerID               uint      `json:"userId" gorm:"index;not null"`
	Name                  string    `json:"name" gorm:"not null"`
	Description           string    `json:"description"`
	Logo                  string    `json:"logo,omitempty"`
	AverageServiceMinutes *float64  `json:"averageServiceMinutes"`
	ShippingCosts         float64   `json:"shippingCosts" gorm:"not null;default:0"`
	CreatedAt             time.Time `json:"createdAt"`
}

// Store keeps owners and restaurants in an in-memory sqlite database.
type Store struct {
	db *gorm.DB
}

// OpenStore opens a private in-memory database and migrates it.
func OpenStore() (*Store, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	// every connection to :memory: is a new database
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&Owner{}, &Restaurant{}); err != nil {
		return nil, fmt.Errorf("migrate store: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) CreateOwner(ctx context.Context, o *Owner) error {
	o.Email = strings.ToLower(strings.TrimSpace(o.Email))
	if err := s.db.WithContext(ctx).Create(o).Error; err != nil {
		return fmt.Errorf("create owner: %w", err)
	}
	return nil
}

func (s *Store) OwnerByEmail(ctx context.Context, email string) (Owner, error) {
	var o Owner
	err := s.db.WithContext(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Owner{}, ErrNotFound
	}
	if err != nil {
		return Owner{}, fmt.Errorf("find owner: %w", err)
	}
	return o, nil
}

func (s *Store) CreateRestaurant(ctx context.Context, r *Restaurant) error {
	if err := s.db.WithContext(ctx).Create(r).Error; err != nil {
		return fmt.Errorf("create restaurant: %w", err)
	}
	return nil
}

// ListByOwner returns the owner's restaurants in creation order.
func (s *Store) ListByOwner(ctx context.Context, ownerID uint) ([]Restaurant, error) {
	out := []Restaurant{}
	if err := s.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("id").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	return out, nil
}

// Delete removes restaurant id if ownerID owns it.
func (s *Store) Delete(ctx context.Context, ownerID, id uint) error {
	var r Restaurant
	err := s.db.WithContext(ctx).First(&r, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("find restaurant: %w", err)
	}
	if r.OwnerID != ownerID {
		return ErrForbidden
	}
	if err := s.db.WithContext(ctx).Delete(&r).Error; err != nil {
		return fmt.Errorf("delete restaurant: %w", err)
	}
	return nil
}
